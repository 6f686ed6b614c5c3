package casteljau

import (
	"math"
)

// SampleRange describes the parameters at which a curve is sampled: Start,
// Start+Step, Start+2·Step, … up to and including End.
type SampleRange struct {
	Start float64
	End   float64
	Step  float64
}

// DefaultSampleRange samples the whole curve in steps of 0.001, producing 1001
// points.
var DefaultSampleRange = SampleRange{Start: 0, End: 1, Step: 0.001}

// Valid reports whether r describes at least one sample.
func (r SampleRange) Valid() bool {
	if math.IsNaN(r.Start) || math.IsNaN(r.End) || math.IsNaN(r.Step) {
		return false
	}
	if math.IsInf(r.Start, 0) || math.IsInf(r.End, 0) || math.IsInf(r.Step, 0) {
		return false
	}
	return r.Step > 0 && r.End >= r.Start
}

// Count returns the number of samples in r.
//
// Parameters are computed from their index rather than by accumulating Step,
// and a final step that falls short of End by no more than a rounding error
// still counts as reaching it. The default range thus has exactly 1001
// samples instead of 1000 or 1002.
func (r SampleRange) Count() int {
	if !r.Valid() {
		return 0
	}
	steps := (r.End - r.Start) / r.Step
	return int(math.Floor(steps+1e-9*max(1, steps))) + 1
}

// At returns the i-th parameter of r, clamped to End.
func (r SampleRange) At(i int) float64 {
	return min(r.Start+float64(i)*r.Step, r.End)
}
