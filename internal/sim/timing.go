package sim

import "math"

// boatVsBoat returns the earliest time two boats occupy the same point, or
// false if they never do within the horizon.
//
// A geometric path crossing only counts when both boats reach the crossing
// point at the same simulation time; paths that cross in space but not in
// time are not collisions. Collinear overlapping paths are classified as
// shared-start, overtaking (same heading) or head-on (opposite direction).
func boatVsBoat(a, b Boat) (float64, bool) {
	if p, ok := Intersection(a.Path, b.Path); ok {
		ta := fix(a.Start.DistanceTo(p) / a.Speed)
		tb := fix(b.Start.DistanceTo(p) / b.Speed)
		if math.Abs(ta-tb) < Epsilon && ta <= Horizon+Epsilon {
			return ta, true
		}
		return 0, false
	}

	if !Overlaps(a.Path, b.Path) {
		return 0, false
	}

	separation := a.Start.DistanceTo(b.Start)
	if separation < Epsilon {
		// Same start point, immediate contact.
		return 0, true
	}

	if math.Abs(a.Heading-b.Heading) < Epsilon {
		// Overtaking: a faster boat closing the gap from behind.
		relativeSpeed := math.Abs(a.Speed - b.Speed)
		if relativeSpeed < Epsilon {
			return 0, false // constant separation
		}
		t := fix(separation / relativeSpeed)
		if t <= Horizon+Epsilon {
			return t, true
		}
		return 0, false
	}

	// Head-on: closing at the combined speed.
	t := fix(separation / (a.Speed + b.Speed))
	if t <= Horizon+Epsilon {
		return t, true
	}
	return 0, false
}

// boatVsIsland returns the time the boat first touches the island's
// boundary, or false if its path never reaches it.
func boatVsIsland(b Boat, island Island) (float64, bool) {
	points := b.Path.CircleIntersections(island.Circle())
	if len(points) == 0 {
		return 0, false
	}

	best := math.MaxFloat64
	for _, p := range points {
		if t := fix(b.Start.DistanceTo(p) / b.Speed); t < best {
			best = t
		}
	}
	return best, true
}
