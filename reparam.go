package curvefit

import (
	"math"

	"github.com/npillmayer/arithm"
)

// reparameterize refines the parameter values of a run of points against
// a fitted segment, one Newton-Raphson step per interior point. The
// outermost parameter values stay anchored at 0 and 1.
//
// BUG(norbert@pillmayer.com): A Newton-Raphson step may leapfrog a
// neighboring parameter value, so monotonicity of the parameter array is
// not guaranteed for extremely noisy traces. The error analysis is not
// affected, but split points chosen from such a trace can be suboptimal.
func reparameterize(points []arithm.Pair, u []float64, bez CubicSegment) {
	last := len(points) - 1
	if bez[0] != points[0] || bez[3] != points[last] || u[0] != 0.0 || u[last] != 1.0 {
		panic("curvefit: segment lost its endpoint anchoring")
	}
	for i := 1; i < last; i++ {
		u[i] = newtonRaphson(bez, points[i], u[i])
	}
}

// newtonRaphson performs one Newton-Raphson iteration on the parameter
// value of a single point: the root searched for is the derivative of the
// squared distance between point and curve. The result is clamped to
// [0,1] and blended back towards u whenever the step would move the curve
// point away from pt.
func newtonRaphson(bez CubicSegment, pt arithm.Pair, u float64) float64 {
	// control polygons of the first and second derivative
	var q1 [3]arithm.Pair
	for i := 0; i < 3; i++ {
		q1[i] = scale(3, bez[i+1]-bez[i])
	}
	var q2 [2]arithm.Pair
	for i := 0; i < 2; i++ {
		q2[i] = scale(2, q1[i+1]-q1[i])
	}

	qu := Bezier(3, bez[:], u)
	q1u := Bezier(2, q1[:], u)
	q2u := Bezier(1, q2[:], u)

	diff := qu - pt
	num := dot(diff, q1u)
	den := dot(q1u, q1u) + dot(diff, q2u)

	improved := u
	if den > 0 {
		improved = u - num/den
	} else if num > 0 {
		// A non-positive denominator means a local maximum of the distance
		// separates u from the nearest point; nudge downhill.
		improved = u*0.98 - 0.01
	} else if num < 0 {
		// Nudge uphill, asymmetrically to the downhill case, so that
		// repeated calls cannot cycle.
		improved = 0.031 + u*0.98
	}

	if math.IsNaN(improved) || math.IsInf(improved, 0) {
		improved = u
	} else if improved < 0 {
		improved = 0
	} else if improved > 1 {
		improved = 1
	}

	// Accept the step only if it does not move the curve point away from
	// pt; otherwise blend back towards u in steps of 1/8, reverting
	// completely beyond proportion 1.
	distSq := lensq(diff)
	for proportion := 0.125; ; proportion += 0.125 {
		if lensq(Bezier(3, bez[:], improved)-pt) > distSq {
			if proportion > 1.0 {
				improved = u
				break
			}
			improved = (1-proportion)*improved + proportion*u
		} else {
			break
		}
	}
	return improved
}
