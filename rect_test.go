package casteljau

import "testing"

func TestRectAbs(t *testing.T) {
	r := Rect{10, 10, 0, -5}.Abs()
	diff(t, Rect{0, -5, 10, 10}, r)
	diff(t, r, NewRectFromPoints(Pt(10, -5), Pt(0, 10)))
	if w, h := r.Width(), r.Height(); w != 10 || h != 15 {
		t.Errorf("got size %gx%g, want 10x15", w, h)
	}
	diff(t, Pt(5, 2.5), r.Center())
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 0), true},
		{Pt(10, 10), true},
		{Pt(10, 0), true},
		{Pt(-0.001, 5), false},
		{Pt(5, 10.001), false},
		{Pt(20, 20), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestRectInflate(t *testing.T) {
	diff(t, Rect{-1, -2, 11, 12}, Rect{0, 0, 10, 10}.Inflate(1, 2))
}
