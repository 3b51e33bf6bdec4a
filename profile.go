package curvefit

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/arithm"
)

// A Span describes one accepted segment of a profiled fitting call: the
// range of points the segment covers, how many fitting rounds it took,
// and the final signed error ratio (negative means the hook metric was
// dominant during the final analysis, see maxErrorRatio). Trivial 2-point
// ranges are accepted without analysis and report zero attempts.
type Span struct {
	Start, End int     // absolute point indices, inclusive
	Attempts   int     // fitting rounds spent on the accepted segment
	Ratio      float64 // signed error ratio of the accepted segment
	Corner     bool    // was the hook metric dominant?
}

func (s Span) String() string {
	corner := ""
	if s.Corner {
		corner = ", corner"
	}
	return fmt.Sprintf("points %d..%d: %d attempt(s), error ratio %.4g%s",
		s.Start, s.End, s.Attempts, s.Ratio, corner)
}

// A Profile collects per-segment diagnostics of a fitting call. Create
// one with NewProfile, then use its Fit method in place of FitFull.
// Profiles are for sequential use: a profile must not drive concurrent
// fits.
type Profile struct {
	spans  *treemap.Map // span start index -> Span
	failed bool         // did the profiled call return an error?
}

// NewProfile creates an empty fitting profile.
func NewProfile() *Profile {
	return &Profile{spans: treemap.NewWithIntComparator()}
}

// Fit fits points exactly like FitFull does, recording diagnostics on the
// way. Re-using a profile clears the spans of the previous call. After a
// failed call the profile keeps the spans accepted before the failure
// surfaced.
func (p *Profile) Fit(points []arithm.Pair, tHat1, tHat2 arithm.Pair, maxErr float64,
	maxSegments int) ([]CubicSegment, []int, error) {
	//
	if err := checkArgs(points, maxErr, maxSegments); err != nil {
		return nil, nil, err
	}
	p.spans.Clear()
	p.failed = false
	segs, splits, err := run(p, points, tHat1, tHat2, maxErr, maxSegments, true)
	if err != nil {
		p.failed = true
	}
	return segs, splits, err
}

// N returns the number of recorded spans.
func (p *Profile) N() int {
	return p.spans.Size()
}

// Spans returns the recorded spans, ordered by start index. Adjacent
// spans of a completed fit share their boundary index.
func (p *Profile) Spans() []Span {
	spans := make([]Span, 0, p.spans.Size())
	it := p.spans.Iterator()
	for it.Next() {
		spans = append(spans, it.Value().(Span))
	}
	return spans
}

func (p *Profile) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "fit profile, %d span(s)", p.N())
	if p.failed {
		sb.WriteString(" (failed run)")
	}
	return sb.String()
}

// Dump logs all recorded spans, one line each, through the package
// tracer.
func (p *Profile) Dump() {
	tracer().Infof("---------- %s ----------", p)
	it := p.spans.Iterator()
	for it.Next() {
		tracer().Infof("\t%s", it.Value().(Span))
	}
	tracer().Infof("----------------------------------------")
}

// record is called by the fitting recursion whenever a segment is
// accepted.
func (f *fitter) record(start, end, attempts int, ratio float64) {
	if f.prof == nil {
		return
	}
	f.prof.spans.Put(start, Span{
		Start:    start,
		End:      end,
		Attempts: attempts,
		Ratio:    ratio,
		Corner:   ratio < 0,
	})
}
