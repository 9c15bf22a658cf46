package sim

import "math"

// Circle is a stationary disc boundary, used for island outlines.
type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// CircleIntersections returns the points where the segment crosses the
// circle's boundary: zero, one (tangent), or two points.
//
// The segment is parameterized as start + t·(end−start), t ∈ [0,1], and
// substituted into the circle equation, giving a·t² + b·t + c = 0 with
// a = |dir|², b = 2·(offset·dir), c = |offset|² − r², offset = start−center.
// Roots outside [0,1] are discarded.
func (s Segment) CircleIntersections(c Circle) []Point {
	dir := s.End.Sub(s.Start)
	offset := s.Start.Sub(c.Center)

	qa := fix(dir.Dot(dir))
	qb := fix(2 * offset.Dot(dir))
	qc := fix(offset.Dot(offset) - c.Radius*c.Radius)

	disc := fix(qb*qb - 4*qa*qc)
	if disc < -Epsilon {
		return nil
	}

	// Zero-length segment: no motion term, nothing to cross.
	if math.Abs(qa) < Epsilon && math.Abs(qb) < Epsilon {
		return nil
	}

	if math.Abs(disc) < Epsilon {
		// Tangential contact, a single root.
		t := fix(-qb / (2 * qa))
		if t < -Epsilon || t > 1+Epsilon {
			return nil
		}
		return []Point{s.pointAt(t, dir)}
	}

	sqrtDisc := math.Sqrt(disc)
	var points []Point
	for _, t := range [2]float64{
		fix((-qb - sqrtDisc) / (2 * qa)),
		fix((-qb + sqrtDisc) / (2 * qa)),
	} {
		if t < -Epsilon || t > 1+Epsilon {
			continue
		}
		points = append(points, s.pointAt(t, dir))
	}
	return points
}

func (s Segment) pointAt(t float64, dir Point) Point {
	return NewPoint(s.Start.X+t*dir.X, s.Start.Y+t*dir.Y)
}
