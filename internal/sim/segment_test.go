package sim

import (
	"math"
	"testing"
)

func seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: NewPoint(x1, y1), End: NewPoint(x2, y2)}
}

func TestIntersectionCrossing(t *testing.T) {
	p, ok := Intersection(seg(0, 0, 10, 10), seg(0, 10, 10, 0))
	if !ok {
		t.Fatal("expected an intersection")
	}
	if !p.Equals(NewPoint(5, 5)) {
		t.Errorf("intersection = %v, want (5, 5)", p)
	}
}

func TestIntersectionParallel(t *testing.T) {
	if _, ok := Intersection(seg(0, 0, 10, 0), seg(0, 1, 10, 1)); ok {
		t.Error("parallel segments must not intersect")
	}
}

func TestIntersectionCoincidentLine(t *testing.T) {
	// Same infinite line: the determinant is zero, so no crossing point is
	// reported even though the segments overlap. Overlap is a separate test.
	if _, ok := Intersection(seg(0, 0, 10, 0), seg(5, 0, 15, 0)); ok {
		t.Error("coincident segments must not report a crossing point")
	}
}

func TestIntersectionOutsideSegments(t *testing.T) {
	// Lines y=x and y=3-x cross at (1.5, 1.5), outside both segments.
	if _, ok := Intersection(seg(0, 0, 1, 1), seg(0, 3, 1, 2)); ok {
		t.Error("line crossing outside both segments must be rejected")
	}
}

func TestIntersectionAtSharedEndpoint(t *testing.T) {
	p, ok := Intersection(seg(0, 0, 10, 0), seg(10, 0, 10, 10))
	if !ok {
		t.Fatal("expected a crossing at the shared endpoint")
	}
	if !p.Equals(NewPoint(10, 0)) {
		t.Errorf("intersection = %v, want (10, 0)", p)
	}
}

func TestOverlapsCollinear(t *testing.T) {
	a := seg(0, 0, 10, 0)
	cases := []struct {
		name string
		b    Segment
		want bool
	}{
		{"overlapping", seg(5, 0, 15, 0), true},
		{"contained", seg(2, 0, 8, 0), true},
		{"touching at endpoint", seg(10, 0, 20, 0), true},
		{"disjoint collinear", seg(11, 0, 20, 0), false},
		{"parallel offset", seg(0, 1, 10, 1), false},
		{"crossing but not collinear", seg(5, -5, 5, 5), false},
	}
	for _, c := range cases {
		if got := Overlaps(a, c.b); got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestOverlapsVerticalProjectsOnY(t *testing.T) {
	if !Overlaps(seg(0, 0, 0, 10), seg(0, 5, 0, 20)) {
		t.Error("vertical overlapping segments must overlap")
	}
	if Overlaps(seg(0, 0, 0, 10), seg(0, 11, 0, 20)) {
		t.Error("vertical disjoint segments must not overlap")
	}
}

func TestOverlapsEndpointOrderInvariant(t *testing.T) {
	a := seg(0, 0, 10, 0)
	b := seg(5, 0, 15, 0)
	want := Overlaps(a, b)
	flips := []struct{ a, b Segment }{
		{seg(10, 0, 0, 0), b},
		{a, seg(15, 0, 5, 0)},
		{seg(10, 0, 0, 0), seg(15, 0, 5, 0)},
	}
	for i, f := range flips {
		if got := Overlaps(f.a, f.b); got != want {
			t.Errorf("flip %d: Overlaps = %v, want %v", i, got, want)
		}
	}
}

func TestIntersectionOfSteepSegments(t *testing.T) {
	// Near-vertical against near-horizontal; result stays within tolerance.
	p, ok := Intersection(seg(5, -100, 5.00001, 100), seg(-100, 0, 100, 0.00001))
	if !ok {
		t.Fatal("expected an intersection")
	}
	if math.Abs(p.X-5) > 0.001 || math.Abs(p.Y) > 0.001 {
		t.Errorf("intersection = %v, want near (5, 0)", p)
	}
}
