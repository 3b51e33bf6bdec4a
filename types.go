package curvefit

import (
	"errors"
	"fmt"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvefit'
func tracer() tracing.Trace {
	return tracing.Select("curvefit")
}

// MaxSegments is the exclusive upper bound for segment budgets: fitting
// functions accept budgets in the range 1 <= maxSegments < MaxSegments.
const MaxSegments = 1 << 28

// HookFactor scales corner sensitivity. Between curve points at
// neighboring parameter values, the curve may stray from the chord
// midpoint by HookFactor times the chord length (plus the tolerance)
// before the deviation reads as a corner. Every top-level fitting call
// snapshots the value, so changing it mid-fit has no effect. HookFactor
// is not synchronized; set it before fitting from multiple goroutines.
var HookFactor float64 = 0.2

// Unconstrained is the zero tangent. Fitting functions take it to mean
// "no tangent prescribed here, estimate one from the points". Tangent
// arguments are compared against it exactly, which keeps every true unit
// tangent distinguishable from it.
var Unconstrained = arithm.P(0, 0)

var (
	// ErrNoPoints indicates an empty input slice.
	ErrNoPoints = errors.New("no points to fit")
	// ErrNegativeTolerance indicates a negative (or NaN) squared error tolerance.
	ErrNegativeTolerance = errors.New("error tolerance must not be negative")
	// ErrSegmentBudget indicates a segment budget outside [1, MaxSegments).
	ErrSegmentBudget = errors.New("segment budget out of range")
	// ErrBudgetExhausted indicates the recursion ran out of segments before
	// reaching the error tolerance everywhere.
	ErrBudgetExhausted = errors.New("segment budget exhausted")
)

// CubicSegment is one cubic Bézier curve of a fit: 4 control points, of
// which the outer two interpolate input points exactly.
type CubicSegment [4]arithm.Pair

// Start returns the first point of the segment. It is identical, bit for
// bit, to the first point of the range the segment was fitted to.
func (seg CubicSegment) Start() arithm.Pair {
	return seg[0]
}

// End returns the last point of the segment. It is identical, bit for
// bit, to the last point of the range the segment was fitted to.
func (seg CubicSegment) End() arithm.Pair {
	return seg[3]
}

// Eval evaluates the segment at parameter value t in [0,1]. Values
// outside of [0,1] extrapolate the polynomial. Eval(0) and Eval(1)
// return the exact endpoints.
func (seg CubicSegment) Eval(t float64) arithm.Pair {
	return Bezier(3, seg[:], t)
}

// String renders the segment in a MetaFont-like format, e.g.
//
//	(0,0) .. controls (1.3333,0.0000) and (2.6667,0.0000) .. (4,0)
func (seg CubicSegment) String() string {
	return fmt.Sprintf("%s .. controls %s and %s .. %s",
		ptstring(seg[0], false), ptstring(seg[1], true), ptstring(seg[2], true), ptstring(seg[3], false))
}
