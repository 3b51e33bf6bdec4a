package polyline

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/arithm"
)

// Clip clips a trace against a rectangle, given by two opposite corner
// points (in any order). An open trace is cut into the runs of segments
// that lie within the rectangle; segments with a non-finite endpoint are
// dropped, cutting the trace there. A cyclic trace is treated as a
// polygon outline and intersected with the rectangle, which may split it
// into several cycles; cyclic traces with non-finite knots are
// unclippable and come back as nil, with an error logged. A trace
// completely outside the rectangle clips to an empty slice.
func (tr *Trace) Clip(p1, p2 arithm.Pair) []*Trace {
	if tr.N() == 0 {
		return nil
	}
	min := arithm.P(math.Min(p1.X(), p2.X()), math.Min(p1.Y(), p2.Y()))
	max := arithm.P(math.Max(p1.X(), p2.X()), math.Max(p1.Y(), p2.Y()))
	if tr.cycle {
		return tr.clipCycle(min, max)
	}
	return tr.clipOpen(min, max)
}

// clipOpen walks the segments of an open trace and collects the clipped
// runs, starting a new part wherever the trace leaves the rectangle.
func (tr *Trace) clipOpen(min, max arithm.Pair) []*Trace {
	var parts []*Trace
	var cur *Trace
	var cont bool
	for i := 1; i < len(tr.points); i++ {
		if !finitePair(tr.points[i-1]) || !finitePair(tr.points[i]) {
			cont = false
			continue
		}
		v0, v1, ok := clipSegment(tr.points[i-1], tr.points[i], min, max)
		if !ok {
			cont = false
			continue
		}
		if v0 != tr.points[i-1] || !cont {
			cur = NullTrace().Knot(v0)
			parts = append(parts, cur)
		}
		cur.Knot(v1)
		cont = v1 == tr.points[i]
	}
	// remove parts with 0 or 1 knots, if any
	j := 0
	for i := 0; i < len(parts); i++ {
		if parts[i].N() < 2 {
			continue
		}
		parts[j] = parts[i]
		j++
	}
	return parts[:j]
}

// clipCycle intersects a cyclic trace with the clipping rectangle.
func (tr *Trace) clipCycle(min, max arithm.Pair) []*Trace {
	if tr.N() < 3 {
		return nil // a cycle needs area to clip
	}
	subject := make(polyclip.Contour, 0, len(tr.points))
	for i, p := range tr.points {
		if !finitePair(p) {
			L().Errorf("cannot clip cyclic trace: knot %d is not finite", i)
			return nil
		}
		subject = append(subject, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	clip := polyclip.Polygon{{
		{X: min.X(), Y: min.Y()},
		{X: max.X(), Y: min.Y()},
		{X: max.X(), Y: max.Y()},
		{X: min.X(), Y: max.Y()},
	}}
	result := polyclip.Polygon{subject}.Construct(polyclip.INTERSECTION, clip)
	var out []*Trace
	for _, contour := range result {
		if len(contour) < 3 {
			continue
		}
		part := NullTrace()
		for _, p := range contour {
			part.Knot(arithm.P(p.X, p.Y))
		}
		out = append(out, part.Cycle())
	}
	return out
}

// Outcodes of the Cohen-Sutherland line clipping scheme.
type outcode uint

const (
	inside outcode = 0
	left   outcode = 1
	right  outcode = 2
	bottom outcode = 4
	top    outcode = 8
)

func computeOutcode(v, min, max arithm.Pair) outcode {
	var c outcode
	if v.X() < min.X() {
		c |= left
	} else if v.X() > max.X() {
		c |= right
	}
	if v.Y() < min.Y() {
		c |= bottom
	} else if v.Y() > max.Y() {
		c |= top
	}
	return c
}

// clipSegment clips a single straight segment against a rectangle,
// following the classic Cohen-Sutherland scheme: endpoints outside the
// rectangle move inwards, onto the border lines flagged by their
// outcodes, until the segment is either trivially inside or trivially
// rejected.
func clipSegment(v0, v1, min, max arithm.Pair) (arithm.Pair, arithm.Pair, bool) {
	outcode0 := computeOutcode(v0, min, max)
	outcode1 := computeOutcode(v1, min, max)
	for {
		if outcode0 == 0 && outcode1 == 0 {
			return v0, v1, true
		} else if outcode0&outcode1 != 0 {
			return v0, v1, false
		}
		outcodeOut := outcode1
		if outcode0 > outcode1 {
			outcodeOut = outcode0
		}
		var v arithm.Pair
		switch {
		case outcodeOut&top != 0:
			v = arithm.P(v0.X()+(v1.X()-v0.X())*(max.Y()-v0.Y())/(v1.Y()-v0.Y()), max.Y())
		case outcodeOut&bottom != 0:
			v = arithm.P(v0.X()+(v1.X()-v0.X())*(min.Y()-v0.Y())/(v1.Y()-v0.Y()), min.Y())
		case outcodeOut&right != 0:
			v = arithm.P(max.X(), v0.Y()+(v1.Y()-v0.Y())*(max.X()-v0.X())/(v1.X()-v0.X()))
		case outcodeOut&left != 0:
			v = arithm.P(min.X(), v0.Y()+(v1.Y()-v0.Y())*(min.X()-v0.X())/(v1.X()-v0.X()))
		}
		if outcodeOut == outcode0 {
			v0 = v
			outcode0 = computeOutcode(v0, min, max)
		} else {
			v1 = v
			outcode1 = computeOutcode(v1, min, max)
		}
	}
}

func finitePair(p arithm.Pair) bool {
	x, y := p.X(), p.Y()
	return !(math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0))
}
