package curvefit

import (
	"math"

	"github.com/npillmayer/arithm"
)

// maxErrorRatio analyzes how far a fitted segment strays from the run of
// points it approximates. The returned ratio is the maximum distance of a
// point from the curve at its parameter value, divided by the tolerance:
// a magnitude of at most 1 means the fit is acceptable. A negative ratio
// signals a corner: somewhere between two parameter values the curve
// bulges away from its own chord by more than the hook metric allows.
// splitPoint is the index to split at, should the caller decide to.
func (f *fitter) maxErrorRatio(points []arithm.Pair, u []float64, bez CubicSegment) (ratio float64, splitPoint int) {
	last := len(points) - 1
	if bez[0] != points[0] || bez[3] != points[last] || u[0] != 0.0 || u[last] != 1.0 {
		panic("curvefit: segment lost its endpoint anchoring")
	}
	var maxDistSq float64    // squared distance of the worst point
	var maxHookRatio float64 // worst bulge between two curve points
	snapEnd := 0
	prev := bez[0]
	for i := 1; i <= last; i++ {
		curr := Bezier(3, bez[:], u[i])
		distSq := lensq(curr - points[i])
		if distSq > maxDistSq {
			maxDistSq = distSq
			splitPoint = i
		}
		hookRatio := f.hook(prev, curr, 0.5*(u[i-1]+u[i]), bez)
		if maxHookRatio < hookRatio {
			maxHookRatio = hookRatio
			snapEnd = i
		}
		prev = curr
	}

	distRatio := math.Sqrt(maxDistSq) / f.tol
	if maxHookRatio <= distRatio {
		ratio = distRatio
	} else {
		ratio = -maxHookRatio
		splitPoint = snapEnd - 1
	}
	if !(ratio == 0.0 || (splitPoint < last && (splitPoint != 0 || ratio < 0.0))) {
		panic("curvefit: split point out of range")
	}
	return ratio, splitPoint
}

// hook measures how much the curve bulges out between two of its points a
// and b, evaluated at the parameter value u halfway between theirs: the
// distance of the curve from the chord midpoint, relative to what the
// chord length allows. A ratio above 1 reads as a corner. Distances below
// the tolerance never count.
func (f *fitter) hook(a, b arithm.Pair, u float64, bez CubicSegment) float64 {
	p := Bezier(3, bez[:], u)
	dist := l2(scale(0.5, a+b) - p)
	if dist < f.tol {
		return 0
	}
	allowed := l2(b-a)*f.hookFactor + f.tol
	return dist / allowed
}
