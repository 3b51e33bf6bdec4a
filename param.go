package curvefit

import (
	"math"

	"github.com/npillmayer/arithm"
)

// Compact cleans a trace of digitized points for fitting: it drops points
// with non-finite coordinates and collapses runs of consecutive equal
// points into one. The input slice is left untouched; the result is a
// fresh slice, possibly empty.
func Compact(points []arithm.Pair) []arithm.Pair {
	out := make([]arithm.Pair, 0, len(points))
	i := 0
	for ; i < len(points); i++ { // find a first usable point
		if isFinitePair(points[i]) {
			out = append(out, points[i])
			i++
			break
		}
	}
	for ; i < len(points); i++ {
		pt := points[i]
		if isFinitePair(pt) && pt != out[len(out)-1] {
			out = append(out, pt)
		}
	}
	return out
}

// chordLengthParameterize assigns a parameter value to every point of a
// trace, proportional to the accumulated chord length. u must be of the
// same length as points. The first parameter value is 0 and the last one
// is snapped to exactly 1. If the accumulated length overflows, the
// parameter values fall back to uniform spacing. A totally degenerate
// trace (all points coincide) leaves all parameter values at 0.
func chordLengthParameterize(points []arithm.Pair, u []float64) {
	last := len(points) - 1
	u[0] = 0
	for i := 1; i <= last; i++ {
		u[i] = u[i-1] + l2(points[i]-points[i-1])
	}
	total := u[last]
	if total == 0 {
		return
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		for i := 1; i <= last; i++ {
			u[i] = float64(i) / float64(last)
		}
	} else {
		for i := 1; i <= last; i++ {
			u[i] /= total
		}
	}
	if u[last] != 1.0 {
		if diff := u[last] - 1.0; math.Abs(diff) > 1e-13 {
			tracer().Errorf("chord length parameterization misses far end: u[%d] = 1%+g", last, diff)
		}
		u[last] = 1.0
	}
}
