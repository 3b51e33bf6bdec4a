// Package polyline deals with open and cyclic traces of straight line
// segments. It is a lightweight companion to the curve fitter: traces
// collect digitized points, report their bounds, render as strings, and
// clip against boxes before their points are handed over for fitting.
/*

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polyline

import (
	"math"
	"strings"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to a trace with key 'polyline'.
func L() tracing.Trace {
	return tracing.Select("polyline")
}

// Trace is an open or cyclic sequence of knots, connected by straight
// lines. To construct a trace, start with NullTrace(), which creates an
// empty one, and then extend it.
type Trace struct {
	points []arithm.Pair // knot i
	cycle  bool          // is this trace cyclic ?
}

// NullTrace creates an empty trace. Part of builder functionality.
func NullTrace() *Trace {
	return &Trace{}
}

// Knot appends a point to a trace. Part of builder functionality.
func (tr *Trace) Knot(p arithm.Pair) *Trace {
	tr.points = append(tr.points, p)
	return tr
}

// End ends an open trace. Part of builder functionality.
func (tr *Trace) End() *Trace {
	return tr
}

// Cycle closes a cyclic trace: the last knot connects back to the first
// one. Part of builder functionality.
func (tr *Trace) Cycle() *Trace {
	tr.cycle = true
	return tr
}

// Box creates a cyclic trace for a rectangle, given by two opposite
// corner points (in any order). The resulting trace has 4 knots and winds
// counter-clockwise from the lower left corner.
func Box(p1, p2 arithm.Pair) *Trace {
	xmin, xmax := math.Min(p1.X(), p2.X()), math.Max(p1.X(), p2.X())
	ymin, ymax := math.Min(p1.Y(), p2.Y()), math.Max(p1.Y(), p2.Y())
	return NullTrace().
		Knot(arithm.P(xmin, ymin)).
		Knot(arithm.P(xmax, ymin)).
		Knot(arithm.P(xmax, ymax)).
		Knot(arithm.P(xmin, ymax)).
		Cycle()
}

// IsCycle returns true if the trace is cyclic.
func (tr *Trace) IsCycle() bool {
	return tr.cycle
}

// N returns the length of this trace (knot count). For cyclic traces, the
// connecting segment back to knot 0 does not add to the count.
func (tr *Trace) N() int {
	return len(tr.points)
}

// Z returns the knot at position (i mod N).
func (tr *Trace) Z(i int) arithm.Pair {
	if i < 0 || i >= tr.N() {
		i = i % tr.N()
	}
	z := tr.points[i]
	return z
}

// Points returns a copy of the trace's knots, free for the caller to
// modify or hand over to a fitter.
func (tr *Trace) Points() []arithm.Pair {
	points := make([]arithm.Pair, len(tr.points))
	copy(points, tr.points)
	return points
}

// Bounds returns the corners of the bounding box of a trace: lower left
// and upper right. An empty trace sits at the origin.
func (tr *Trace) Bounds() (arithm.Pair, arithm.Pair) {
	if tr.N() == 0 {
		return arithm.Origin, arithm.Origin
	}
	xmin, ymin := tr.points[0].X(), tr.points[0].Y()
	xmax, ymax := xmin, ymin
	for _, p := range tr.points[1:] {
		xmin = math.Min(xmin, p.X())
		xmax = math.Max(xmax, p.X())
		ymin = math.Min(ymin, p.Y())
		ymax = math.Max(ymax, p.Y())
	}
	return arithm.P(xmin, ymin), arithm.P(xmax, ymax)
}

// AsString returns a trace as a (debugging) string. Knots are joined by
// the straight-join operator, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(tr *Trace) string {
	var sb strings.Builder
	for i, p := range tr.points {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(p.String())
	}
	if tr.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
