package casteljau

import (
	"errors"
	"testing"
)

func TestModelAdd(t *testing.T) {
	var m Model
	m.Add(Pt(300, 50))
	m.Add(Pt(350, 100))
	// Add doesn't filter by region.
	m.Add(Pt(-1, -1))
	diff(t, []Point{Pt(300, 50), Pt(350, 100), Pt(-1, -1)}, m.Points())
	if m.Len() != 3 {
		t.Errorf("got %d points, want 3", m.Len())
	}
	diff(t, Pt(350, 100), m.At(1))
}

func TestModelPointsIsCopy(t *testing.T) {
	var m Model
	m.Add(Pt(1, 1))
	pts := m.Points()
	pts[0] = Pt(2, 2)
	diff(t, Pt(1, 1), m.At(0))
}

func TestModelRemoveNearFirstMatch(t *testing.T) {
	var m Model
	m.Add(Pt(300, 50))
	m.Add(Pt(302, 52)) // also within radius of the click
	m.Add(Pt(380, 120))

	if !m.RemoveNear(Pt(301, 51), DefaultRadius) {
		t.Fatal("expected a point to be removed")
	}
	// Only the lower index one is gone.
	diff(t, []Point{Pt(302, 52), Pt(380, 120)}, m.Points())

	if m.RemoveNear(Pt(200, 200), DefaultRadius) {
		t.Error("removed a point although none was near")
	}
	if m.Len() != 2 {
		t.Errorf("got %d points, want 2", m.Len())
	}
}

func TestModelRemoveShiftsIndices(t *testing.T) {
	var m Model
	for _, pt := range []Point{Pt(210, 10), Pt(250, 10), Pt(290, 10)} {
		m.Add(pt)
	}
	m.RemoveNear(Pt(250, 10), DefaultRadius)
	i, ok := m.FindNear(Pt(290, 10), DefaultRadius)
	if !ok || i != 1 {
		t.Errorf("got index (%d, %t), want (1, true)", i, ok)
	}
}

func TestModelFindNear(t *testing.T) {
	var m Model
	if _, ok := m.FindNear(Pt(0, 0), DefaultRadius); ok {
		t.Error("found a point in an empty model")
	}
	m.Add(Pt(300, 50))
	m.Add(Pt(303, 50))
	i, ok := m.FindNear(Pt(302, 50), DefaultRadius)
	if !ok || i != 0 {
		t.Errorf("got index (%d, %t), want (0, true)", i, ok)
	}
	if m.Len() != 2 {
		t.Error("FindNear modified the model")
	}
	i, ok = m.FindNear(Pt(309, 50), DefaultRadius)
	if !ok || i != 1 {
		t.Errorf("got index (%d, %t), want (1, true)", i, ok)
	}
}

func TestModelReplace(t *testing.T) {
	var m Model
	m.Add(Pt(300, 50))
	m.Add(Pt(350, 100))
	if err := m.Replace(0, Pt(310, 60)); err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(310, 60), Pt(350, 100)}, m.Points())

	for _, i := range []int{-1, 2, 10} {
		if err := m.Replace(i, Pt(0, 0)); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Replace(%d): got error %v, want %v", i, err, ErrIndexOutOfRange)
		}
	}
	diff(t, []Point{Pt(310, 60), Pt(350, 100)}, m.Points())
}

func TestModelClear(t *testing.T) {
	var m Model
	m.Add(Pt(300, 50))
	m.ComputeXProjection(400)
	m.ComputeYProjection(400)
	m.Clear()
	if m.Len() != 0 {
		t.Errorf("got %d points after Clear, want 0", m.Len())
	}
	x, y := m.Projections()
	if len(x) != 0 || len(y) != 0 {
		t.Errorf("got projections of length %d and %d after Clear, want 0", len(x), len(y))
	}
}

func TestModelAll(t *testing.T) {
	var m Model
	m.Add(Pt(1, 2))
	m.Add(Pt(3, 4))
	var idx []int
	var pts []Point
	for i, pt := range m.All() {
		idx = append(idx, i)
		pts = append(pts, pt)
	}
	diff(t, []int{0, 1}, idx)
	diff(t, []Point{Pt(1, 2), Pt(3, 4)}, pts)
}
