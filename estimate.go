package curvefit

import (
	"github.com/npillmayer/arithm"
)

// generateBezier computes a cubic segment for a run of points with
// pre-computed parameter values. The endpoints are interpolated exactly;
// the interior control points are placed along the given unit tangents at
// distances found by least squares. Passing Unconstrained for a tangent
// makes generateBezier estimate it from the points themselves and refine
// the start-side control point with a second pass.
func (f *fitter) generateBezier(bez *CubicSegment, points []arithm.Pair, u []float64, tHat1, tHat2 arithm.Pair) {
	est1 := tHat1 == Unconstrained
	est2 := tHat2 == Unconstrained
	estT1, estT2 := tHat1, tHat2
	if est1 {
		estT1 = LeftTangent(points, f.maxErr)
	}
	if est2 {
		estT2 = RightTangent(points, f.maxErr)
	}
	estimateLengths(bez, points, u, estT1, estT2)
	if est1 {
		// A second pass improves the start side once an approximation of
		// the whole segment exists. The end side does not profit: the
		// backward tangent estimate is already good enough for traced
		// input.
		estimateInterior(bez, 1, points, u)
		if bez[1] != bez[0] {
			estT1 = unitVector(bez[1] - bez[0])
		}
		estimateLengths(bez, points, u, estT1, estT2)
	}
}

// estimateLengths solves for the distances of the two interior control
// points from their respective endpoints, along the given unit tangents,
// by a least-squares fit over all points. It writes all four control
// points of bez; the endpoints are taken from the outermost points as is.
//
// A singular system degrades to a single combined distance. If that fails
// too, or produces distances of no use (non-positive distances collapse
// the control polygon and divide by zero in a later newtonRaphson call),
// the control points default to a third of the chord length, following
// Wu/Barsky.
func estimateLengths(bez *CubicSegment, points []arithm.Pair, u []float64, tHat1, tHat2 arithm.Pair) {
	var c00, c01, c11 float64 // consolidated matrix C of tangent products
	var x0, x1 float64        // consolidated vector X of residuals

	last := len(points) - 1
	bez[0] = points[0]
	bez[3] = points[last]

	for i := 0; i <= last; i++ {
		b0, b1, b2, b3 := bernstein(u[i])
		a1 := scale(b1, tHat1)
		a2 := scale(b2, tHat2)

		c00 += dot(a1, a1)
		c01 += dot(a1, a2)
		c11 += dot(a2, a2)

		// the error remaining after placing both control points onto
		// their anchoring endpoints
		shortfall := points[i] - scale(b0+b1, bez[0]) - scale(b2+b3, bez[3])
		x0 += dot(a1, shortfall)
		x1 += dot(a2, shortfall)
	}

	// Cramer's rule for alpha.l and alpha.r, the distances of the control
	// points from their endpoints
	var alphaL, alphaR float64
	if detC0C1 := c00*c11 - c01*c01; detC0C1 != 0 {
		detC0X := c00*x1 - c01*x0
		detXC1 := x0*c11 - x1*c01
		alphaL = detXC1 / detC0C1
		alphaR = detC0X / detC0C1
	} else if c0 := c00 + c01; c0 != 0 {
		alphaL = x0 / c0
		alphaR = alphaL
	} else if c1 := c01 + c11; c1 != 0 {
		alphaL = x1 / c1
		alphaR = alphaL
	}
	tracer().Debugf("alpha.l = %.4g, alpha.r = %.4g", alphaL, alphaR)

	if alphaL < 1.0e-6 || alphaR < 1.0e-6 {
		dist := l2(bez[3]-bez[0]) / 3.0
		alphaL = dist
		alphaR = dist
	}

	bez[1] = bez[0] + scale(alphaL, tHat1)
	bez[2] = bez[3] + scale(alphaR, tHat2)
}

// estimateInterior refines a single interior control point bez[ei] (ei is
// 1 or 2), keeping the other three control points fixed: the new position
// minimizes the squared residuals of all points against the partial
// curve. A vanishing denominator leaves the control point at the familiar
// blend of the endpoints at a third of the chord.
func estimateInterior(bez *CubicSegment, ei int, points []arithm.Pair, u []float64) {
	oi := 3 - ei
	var num arithm.Pair
	var den float64

	for i := range points {
		b0, b1, b2, b3 := bernstein(u[i])
		b := [4]float64{b0, b1, b2, b3}
		predicted := scale(b[0], bez[0]) + scale(b[oi], bez[oi]) + scale(b[3], bez[3])
		num += scale(b[ei], predicted-points[i])
		den -= b[ei] * b[ei]
	}
	if den != 0 {
		bez[ei] = div(num, den)
	} else {
		bez[ei] = div(scale(float64(oi), bez[0])+scale(float64(ei), bez[3]), 3.0)
	}
}
