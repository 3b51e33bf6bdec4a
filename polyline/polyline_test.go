package polyline

import (
	"math"
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/curvefit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(0, 0)).Knot(arithm.P(1, 3)).Knot(arithm.P(3, 0)).Cycle()
	L().Infof("tr = %s", AsString(tr))
	if tr.N() != 3 {
		t.Fail()
	}
	if !tr.IsCycle() {
		t.Fail()
	}
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(arithm.P(0, 5), arithm.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	if !box.IsCycle() {
		t.Fail()
	}
	if got, want := AsString(box), "(0,1) -- (4,1) -- (4,5) -- (0,5) -- cycle"; got != want {
		t.Fatalf("box AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestAsStringOpen(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(0, 0)).Knot(arithm.P(1, 3)).End()
	if got, want := AsString(tr), "(0,0) -- (1,3)"; got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestPadding(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(0, 0)).Knot(arithm.P(1, 3)).Knot(arithm.P(3, 0)).Cycle()
	if tr.Z(1) != tr.Z(tr.N()+1) {
		t.Fail()
	}
}

func TestPointsAreACopy(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(1, 1)).Knot(arithm.P(2, 2)).End()
	points := tr.Points()
	points[0] = arithm.P(9, 9)
	if tr.Z(0) != arithm.P(1, 1) {
		t.Fatalf("mutating the copy changed the trace: %v", tr.Z(0))
	}
}

func TestBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(-1, 2)).Knot(arithm.P(3, -4)).Knot(arithm.P(0, 0)).End()
	ll, ur := tr.Bounds()
	if ll != arithm.P(-1, -4) || ur != arithm.P(3, 2) {
		t.Fatalf("unexpected bounds: %v %v", ll, ur)
	}
	ll, ur = NullTrace().Bounds()
	if ll != arithm.Origin || ur != arithm.Origin {
		t.Fatalf("unexpected bounds of empty trace: %v %v", ll, ur)
	}
}

func TestClipOpenCrossing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(-2, 1)).Knot(arithm.P(6, 1)).End()
	parts := tr.Clip(arithm.P(0, 0), arithm.P(4, 2))
	if len(parts) != 1 {
		t.Fatalf("unexpected part count: got %d, want 1", len(parts))
	}
	if got, want := AsString(parts[0]), "(0,1) -- (4,1)"; got != want {
		t.Fatalf("clipped part mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestClipOpenLeavesAndReenters(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(1, 1)).Knot(arithm.P(5, 1)).Knot(arithm.P(3, 1)).End()
	parts := tr.Clip(arithm.P(0, 0), arithm.P(4, 2))
	if len(parts) != 2 {
		t.Fatalf("unexpected part count: got %d, want 2", len(parts))
	}
	if got, want := AsString(parts[0]), "(1,1) -- (4,1)"; got != want {
		t.Fatalf("first part mismatch:\n got: %s\nwant: %s", got, want)
	}
	if got, want := AsString(parts[1]), "(4,1) -- (3,1)"; got != want {
		t.Fatalf("second part mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestClipOpenInside(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(1, 1)).Knot(arithm.P(2, 1)).Knot(arithm.P(3, 1)).End()
	parts := tr.Clip(arithm.P(0, 0), arithm.P(4, 2))
	if len(parts) != 1 {
		t.Fatalf("unexpected part count: got %d, want 1", len(parts))
	}
	if got, want := AsString(parts[0]), "(1,1) -- (2,1) -- (3,1)"; got != want {
		t.Fatalf("part mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestClipOpenOutside(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(5, 5)).Knot(arithm.P(7, 7)).End()
	parts := tr.Clip(arithm.P(0, 0), arithm.P(1, 1))
	if len(parts) != 0 {
		t.Fatalf("unexpected part count: got %d, want 0", len(parts))
	}
}

func TestClipOpenCutsAtNonFiniteKnot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().
		Knot(arithm.P(0.5, math.NaN())).
		Knot(arithm.P(1, 1)).
		Knot(arithm.P(2, 1)).End()
	parts := tr.Clip(arithm.P(0, 0), arithm.P(4, 2))
	if len(parts) != 1 {
		t.Fatalf("unexpected part count: got %d, want 1", len(parts))
	}
	if got, want := AsString(parts[0]), "(1,1) -- (2,1)"; got != want {
		t.Fatalf("part mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestClipCycle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(1, 1)).Knot(arithm.P(3, 1)).Knot(arithm.P(3, 3)).Knot(arithm.P(1, 3)).Cycle()
	parts := tr.Clip(arithm.P(0, 0), arithm.P(2, 2))
	if len(parts) != 1 {
		t.Fatalf("unexpected part count: got %d, want 1", len(parts))
	}
	part := parts[0]
	L().Infof("clipped cycle = %s", AsString(part))
	if !part.IsCycle() {
		t.Fatalf("clipped part lost its cycle")
	}
	if part.N() != 4 {
		t.Fatalf("unexpected knot count: got %d, want 4", part.N())
	}
	ll, ur := part.Bounds()
	if ll != arithm.P(1, 1) || ur != arithm.P(2, 2) {
		t.Fatalf("unexpected bounds: %v %v", ll, ur)
	}
}

func TestClipCycleOutside(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(5, 5)).Knot(arithm.P(6, 5)).Knot(arithm.P(6, 6)).Knot(arithm.P(5, 6)).Cycle()
	parts := tr.Clip(arithm.P(0, 0), arithm.P(1, 1))
	if len(parts) != 0 {
		t.Fatalf("unexpected part count: got %d, want 0", len(parts))
	}
}

func TestClipCycleRejectsNonFinite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(0, 0)).Knot(arithm.P(math.NaN(), 1)).Knot(arithm.P(1, 1)).Cycle()
	if parts := tr.Clip(arithm.P(0, 0), arithm.P(4, 4)); parts != nil {
		t.Fatalf("expected nil for unclippable cycle, got %v parts", len(parts))
	}
}

func TestClipDegenerateTraces(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if parts := NullTrace().End().Clip(arithm.P(0, 0), arithm.P(1, 1)); parts != nil {
		t.Fatalf("expected nil for empty trace")
	}
	pair := NullTrace().Knot(arithm.P(0, 0)).Knot(arithm.P(1, 1)).Cycle()
	if parts := pair.Clip(arithm.P(0, 0), arithm.P(4, 4)); parts != nil {
		t.Fatalf("expected nil for cycle without area")
	}
}

func TestClipThenFit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tr := NullTrace().Knot(arithm.P(-1, -1)).Knot(arithm.P(5, 5)).End()
	parts := tr.Clip(arithm.P(0, 0), arithm.P(4, 4))
	if len(parts) != 1 {
		t.Fatalf("unexpected part count: got %d, want 1", len(parts))
	}
	if got, want := AsString(parts[0]), "(0,0) -- (4,4)"; got != want {
		t.Fatalf("clipped part mismatch:\n got: %s\nwant: %s", got, want)
	}
	segs, err := curvefit.Fit(parts[0].Points(), 0.01)
	if err != nil {
		t.Fatalf("fitting the clipped part failed: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("unexpected segment count: got %d, want 1", len(segs))
	}
	if segs[0].Start() != arithm.P(0, 0) || segs[0].End() != arithm.P(4, 4) {
		t.Fatalf("unexpected fitted segment: %s", segs[0])
	}
}
