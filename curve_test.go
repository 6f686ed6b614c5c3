package casteljau

import (
	"slices"
	"testing"
)

func TestSubdivideCurve(t *testing.T) {
	curves := []ParametricCurve{
		Line{Pt(0, 0), Pt(10, 20)},
		Bezier{Pt(0, 0), Pt(5, 10), Pt(10, 0)},
		Bezier{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)},
	}
	for _, c := range curves {
		a, b := c.SubdivideCurve()
		diff(t, c.Start(), a.Start())
		diff(t, c.End(), b.End())
		diff(t, a.End(), b.Start())
		assertNear(t, c.Eval(0.5), a.End(), 1e-12)
		assertNear(t, c.Eval(0.25), a.Eval(0.5), 1e-12)
		assertNear(t, c.Eval(0.75), b.Eval(0.5), 1e-12)
	}
}

func TestSampleCurve(t *testing.T) {
	l := Line{Pt(0, 0), Pt(4, 8)}
	got := slices.Collect(SampleCurve(l, SampleRange{Start: 0, End: 1, Step: 0.25}))
	diff(t, []Point{Pt(0, 0), Pt(1, 2), Pt(2, 4), Pt(3, 6), Pt(4, 8)}, got)

	if n := len(slices.Collect(SampleCurve(l, SampleRange{}))); n != 0 {
		t.Errorf("invalid range yielded %d samples", n)
	}

	b := Bezier{Pt(250, 150), Pt(300, 0), Pt(350, 150)}
	want := slices.Collect(Sample(b, DefaultSampleRange))
	diff(t, want, slices.Collect(SampleCurve(b, DefaultSampleRange)))
}
