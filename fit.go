package curvefit

import (
	"fmt"
	"math"

	"github.com/npillmayer/arithm"
)

// Number of extra fitting rounds to spend on a segment whose error ratio
// looks close enough (at most 3x over tolerance) to be iterated away.
const maxIterations = 4

// fitter carries the state of one top-level fitting call through the
// recursion.
type fitter struct {
	maxErr     float64   // squared error tolerance
	tol        float64   // tolerance in plain distance units
	hookFactor float64   // HookFactor, frozen for this call
	u          []float64 // scratch buffer for parameter values
	prof       *Profile  // optional diagnostics collector
}

func newFitter(maxErr float64, prof *Profile) *fitter {
	return &fitter{
		maxErr:     maxErr,
		tol:        math.Sqrt(maxErr + 1e-9),
		hookFactor: HookFactor,
		prof:       prof,
	}
}

// params returns the parameter scratch buffer, re-sliced to n entries.
// The buffer is allocated once, by the outermost range, and shared
// downwards: a range is done with its parameter values before it
// recurses.
func (f *fitter) params(n int) []float64 {
	if cap(f.u) < n {
		f.u = make([]float64, n)
	}
	return f.u[:n]
}

// Fit fits a single cubic Bézier segment to a trace of digitized points.
// The trace is preprocessed with Compact first. maxErr is the maximum
// allowed squared distance between any (cleaned) point and the fitted
// curve at the point's parameter value.
//
// A degenerate trace -- fewer than 2 distinct finite points -- yields a
// nil segment slice and no error. If a single segment cannot approximate
// the trace within maxErr, Fit returns ErrBudgetExhausted.
func Fit(points []arithm.Pair, maxErr float64) ([]CubicSegment, error) {
	return FitBounded(points, maxErr, 1)
}

// MustFit is a convenience helper which panics where Fit would return an
// error.
func MustFit(points []arithm.Pair, maxErr float64) []CubicSegment {
	segs, err := Fit(points, maxErr)
	if err != nil {
		panic(err)
	}
	return segs
}

// FitBounded fits a trace of digitized points with up to maxSegments
// cubic Bézier segments. The trace is preprocessed with Compact first,
// then recursively split at corners and at points of maximal error until
// every piece fits within the squared tolerance maxErr. The budget is a
// cap, not a target: smooth traces come back with fewer segments.
//
// A degenerate trace yields a nil segment slice and no error. If the
// budget does not suffice, FitBounded returns ErrBudgetExhausted.
func FitBounded(points []arithm.Pair, maxErr float64, maxSegments int) ([]CubicSegment, error) {
	if err := checkArgs(points, maxErr, maxSegments); err != nil {
		return nil, err
	}
	segs, _, err := run(nil, Compact(points), Unconstrained, Unconstrained, maxErr, maxSegments, false)
	return segs, err
}

// FitFull is the fully parameterized fitting call. It accepts prescribed
// unit tangents for both ends of the trace (or Unconstrained to have them
// estimated) and additionally returns the indices at which the trace was
// split, ascending, one less than the number of segments: segment i
// covers the points from split index i-1 through split index i.
//
// FitFull performs no preprocessing; the caller guarantees a sequence of
// finite points without consecutive duplicates (see Compact).
func FitFull(points []arithm.Pair, tHat1, tHat2 arithm.Pair, maxErr float64,
	maxSegments int) ([]CubicSegment, []int, error) {
	//
	if err := checkArgs(points, maxErr, maxSegments); err != nil {
		return nil, nil, err
	}
	return run(nil, points, tHat1, tHat2, maxErr, maxSegments, true)
}

func checkArgs(points []arithm.Pair, maxErr float64, maxSegments int) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if math.IsNaN(maxErr) || maxErr < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeTolerance, maxErr)
	}
	if maxSegments < 1 || maxSegments >= MaxSegments {
		return fmt.Errorf("%w: got %d, want 1 <= n < %d", ErrSegmentBudget, maxSegments, MaxSegments)
	}
	return nil
}

// run drives a fitting call with already validated arguments.
func run(prof *Profile, points []arithm.Pair, tHat1, tHat2 arithm.Pair, maxErr float64,
	maxSegments int, wantSplits bool) ([]CubicSegment, []int, error) {
	//
	if len(points) < 2 {
		return nil, nil, nil // nothing to fit
	}
	f := newFitter(maxErr, prof)
	segs := make([]CubicSegment, maxSegments)
	var splits []int
	if wantSplits && maxSegments > 1 {
		splits = make([]int, maxSegments-1)
	}
	n, err := f.fitCubic(segs, splits, points, 0, tHat1, tHat2, maxSegments)
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, nil, nil
	}
	tracer().P("op", "fit").Infof("%d points fitted with %d cubic segment(s)", len(points), n)
	tracer().Infof("%s", AsString(segs[:n]))
	if !wantSplits {
		return segs[:n], nil, nil
	}
	return segs[:n], splits[:n-1], nil
}

// fitCubic fits one range of points, writing accepted segments to the
// front of segs and, for every split, the absolute index of the split
// point to splits (one entry per boundary between adjacent segments;
// splits may be nil if the caller has no use for them). base is the index
// of points[0] within the top-level trace, budget the number of segments
// this range may still produce. fitCubic returns the number of segments
// written.
//
// The strategy follows Schneider: try a single least-squares segment; if
// the error ratio is at most 3, alternate re-parameterization and
// re-fitting a few times; otherwise, or if that fails, split at the worst
// point and recurse. A corner at an end of the range first unconstrains
// the respective tangent and retries; a corner in the interior splits
// without smoothing the joint.
func (f *fitter) fitCubic(segs []CubicSegment, splits []int, points []arithm.Pair, base int,
	tHat1, tHat2 arithm.Pair, budget int) (int, error) {
	//
	if len(points) < 2 {
		return 0, nil
	}
	if len(points) == 2 {
		trivialPair(&segs[0], points[0], points[1], tHat1, tHat2)
		f.record(base, base+1, 0, 0)
		return 1, nil
	}

	u := f.params(len(points))
	chordLengthParameterize(points, u)
	if u[len(points)-1] == 0.0 {
		return 0, nil // all points coincide
	}

	bez := &segs[0]
	f.generateBezier(bez, points, u, tHat1, tHat2)
	reparameterize(points, u, *bez)
	ratio, splitPoint := f.maxErrorRatio(points, u, *bez)
	attempts := 1
	tracer().Debugf("fit attempt %d on [%d,%d]: error ratio %.4g", attempts, base, base+len(points)-1, ratio)
	if math.Abs(ratio) <= 1.0 {
		f.record(base, base+len(points)-1, attempts, ratio)
		return 1, nil
	}

	// The segment is off, but an error ratio within 3x the tolerance may
	// well be ironed out by re-parameterizing and fitting again.
	if 0.0 <= ratio && ratio <= 3.0 {
		for i := 0; i < maxIterations; i++ {
			f.generateBezier(bez, points, u, tHat1, tHat2)
			reparameterize(points, u, *bez)
			ratio, splitPoint = f.maxErrorRatio(points, u, *bez)
			attempts++
			tracer().Debugf("fit attempt %d on [%d,%d]: error ratio %.4g", attempts, base, base+len(points)-1, ratio)
			if math.Abs(ratio) <= 1.0 {
				f.record(base, base+len(points)-1, attempts, ratio)
				return 1, nil
			}
		}
	}
	isCorner := ratio < 0

	if isCorner {
		if splitPoint == 0 {
			if tHat1 == Unconstrained {
				splitPoint++ // the spike persists even without a start constraint
			} else {
				tracer().Debugf("corner at start of range, retrying with free start tangent")
				return f.fitCubic(segs, splits, points, base, Unconstrained, tHat2, budget)
			}
		} else if splitPoint == len(points)-1 {
			if tHat2 == Unconstrained {
				splitPoint--
			} else {
				tracer().Debugf("corner at end of range, retrying with free end tangent")
				return f.fitCubic(segs, splits, points, base, tHat1, Unconstrained, budget)
			}
		}
	}

	if budget <= 1 {
		tracer().Errorf("segment budget exhausted, %d points left unfitted", len(points))
		return 0, fmt.Errorf("%w: %d points do not fit a single segment", ErrBudgetExhausted, len(points))
	}

	// Fit both halves recursively, sharing the split point. A corner split
	// leaves the boundary tangents free; a regular split prescribes a
	// smooth joint along the center tangent.
	var recT1, recT2 arithm.Pair
	if isCorner {
		if splitPoint <= 0 || splitPoint >= len(points)-1 {
			panic("curvefit: corner split out of range")
		}
	} else {
		recT2 = CenterTangent(points, splitPoint)
		recT1 = -recT2
	}
	tracer().P("range", fmt.Sprintf("[%d,%d]", base, base+len(points)-1)).
		Debugf("splitting %d points at %d", len(points), base+splitPoint)

	nsegs1, err := f.fitCubic(segs, splits, points[:splitPoint+1], base, tHat1, recT2, budget-1)
	if err != nil {
		tracer().Debugf("fit of first half failed")
		return 0, err
	}
	if nsegs1 == 0 {
		panic("curvefit: split produced an empty first half")
	}
	if splits != nil {
		splits[nsegs1-1] = base + splitPoint
	}
	var tail []int
	if splits != nil {
		tail = splits[nsegs1:]
	}
	nsegs2, err := f.fitCubic(segs[nsegs1:], tail, points[splitPoint:], base+splitPoint,
		recT1, tHat2, budget-nsegs1)
	if err != nil {
		tracer().Debugf("fit of second half failed")
		return 0, err
	}
	return nsegs1 + nsegs2, nil
}

// trivialPair fits a 2-point range: the endpoints are interpolated, the
// interior control points sit at a third of the chord, along the
// prescribed tangents if any. A non-finite chord length degrades the
// segment to a pile of endpoints.
func trivialPair(bez *CubicSegment, p0, p3 arithm.Pair, tHat1, tHat2 arithm.Pair) {
	bez[0] = p0
	bez[3] = p3
	dist := l2(p3-p0) / 3.0
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		bez[1] = bez[0]
		bez[2] = bez[3]
		return
	}
	if tHat1 == Unconstrained {
		bez[1] = div(scale(2, bez[0])+bez[3], 3.0)
	} else {
		bez[1] = bez[0] + scale(dist, tHat1)
	}
	if tHat2 == Unconstrained {
		bez[2] = div(bez[0]+scale(2, bez[3]), 3.0)
	} else {
		bez[2] = bez[3] + scale(dist, tHat2)
	}
}
