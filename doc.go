// Package curvefit fits traces of digitized points with cubic Bézier
// curves. It provides an implementation of Philip J. Schneider's
// curve-fitting algorithm, extended by corner detection and a segment
// budget.
/*

Reducing a polyline of digitized points -- mouse movements, tablet
strokes, traced outlines -- to a small number of cubic Bézier segments is
a classic problem of computer graphics. The primary source of information
for the algorithm implemented here is:

   An Algorithm for Automatically Fitting Digitized Curves
   Philip J. Schneider
   Graphics Gems (ed. Andrew S. Glassner), Academic Press 1990, p. 612 ff.

This package follows the variant that grew out of Schneider's recipe in
the free vector editors, which added tolerance-aware tangent estimation,
corner ("hook") detection and a budget for the number of segments:

   (1) bezier-utils by Lauris Kaplinski and Peter Moulder,
       written for Sodipodi/Inkscape (GNU license)

   (2) the freehand tracing facilities of scientific plotting tools,
       which in turn transcribed (1)

This Go implementation is not the result of transcoding any of these
implementations, but it is of course inspired by them. The numeric
behavior sticks closely to the lineage: least-squares estimation of the
control point distances along the end tangents, Newton-Raphson
re-parameterization, and a split-and-retry recursion wherever the error
bound cannot be met by a single cubic.

Usage

Clients hand a slice of points to one of the fitting functions and get
back cubic Bézier segments (package qualifiers omitted for clarity and
brevity):

   segs, err := Fit(points, 0.01)

Fit cleans up the input (see Compact) and fits a single cubic segment.
FitBounded is additionally given a budget of segments to spend: it
recursively splits the trace at corners and at points of largest error
until every piece is matched within the given tolerance, or the budget
is exhausted:

   segs, err := FitBounded(points, 0.01, 32)

FitFull exposes all knobs of the recursion: prescribed unit tangents for
both ends of the trace (or Unconstrained), no input preprocessing, and
the split indices chosen during recursion:

   segs, splits, err := FitFull(points, tHat1, tHat2, 0.01, 32)

A fitted segment knows its polynomial: CubicSegment.Eval evaluates it at
a parameter value in [0,1], with Eval(0) and Eval(1) reproducing the
outermost input points bit for bit.

Caveats

(1) Tolerances are squared distances, as in the original algorithm.
Clients who think in plain distance units must square first.

(2) The Newton-Raphson refinement does not enforce monotonicity of the
parameter values along a segment; see the BUG note.

(3) Corner detection is driven by the heuristic HookFactor and is
deliberately conservative. Very noisy traces are better cleaned up
before fitting.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curvefit

import "fmt"

// AsString returns a slice of fitted segments as a (debugging) string.
// The string contains newlines between segments. Adjacent segments of a
// fit share their boundary knot, which is printed only once.
//
// Example, two segments meeting at (2,0):
//
//	(0,0) .. controls (0.6667,0.0000) and (1.3333,0.0000)
//	  .. (2,0) .. controls (2.0000,0.6667) and (2.0000,1.3333)
//	  .. (2,2)
//
// The format is not fully equivalent to MetaFont's, but close.
func AsString(segs []CubicSegment) string {
	if len(segs) == 0 {
		return ""
	}
	s := ptstring(segs[0][0], false)
	for _, seg := range segs {
		s += fmt.Sprintf(" .. controls %s and %s\n  .. %s",
			ptstring(seg[1], true), ptstring(seg[2], true), ptstring(seg[3], false))
	}
	return s
}
