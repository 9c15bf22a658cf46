package sim

import "math"

// Segment is a directed line segment: a boat's projected path over the
// simulation window. Immutable once built.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Intersection returns the point where two segments cross, if any. Each
// segment is expressed as a line a·x + b·y = c; a near-zero determinant means
// parallel or coincident lines and reports no crossing (collinear overlap is
// a separate test, see Overlaps). The infinite-line solution is bounded down
// to the segments via an inclusive bounding-box check.
func Intersection(s, o Segment) (Point, bool) {
	a1 := s.End.Y - s.Start.Y
	b1 := s.Start.X - s.End.X
	c1 := a1*s.Start.X + b1*s.Start.Y

	a2 := o.End.Y - o.Start.Y
	b2 := o.Start.X - o.End.X
	c2 := a2*o.Start.X + b2*o.Start.Y

	det := fix(a1*b2 - a2*b1)
	if math.Abs(det) < Epsilon {
		return Point{}, false
	}

	p := Point{
		X: fix((b2*c1 - b1*c2) / det),
		Y: fix((a1*c2 - a2*c1) / det),
	}

	if !s.inBounds(p) || !o.inBounds(p) {
		return Point{}, false
	}
	return p, true
}

// inBounds reports whether p lies within the segment's bounding box,
// inclusive of the edges under the shared tolerance.
func (s Segment) inBounds(p Point) bool {
	return p.X >= math.Min(s.Start.X, s.End.X)-Epsilon &&
		p.X <= math.Max(s.Start.X, s.End.X)+Epsilon &&
		p.Y >= math.Min(s.Start.Y, s.End.Y)-Epsilon &&
		p.Y <= math.Max(s.Start.Y, s.End.Y)+Epsilon
}

// Overlaps reports whether two collinear segments share any points. Segments
// on distinct lines never overlap. Collinear segments are projected onto
// whichever axis spans more of s, which keeps the projection stable for
// near-vertical and near-horizontal segments.
func Overlaps(s, o Segment) bool {
	dir := s.End.Sub(s.Start)
	if math.Abs(dir.Cross(o.Start.Sub(s.Start))) > Epsilon ||
		math.Abs(dir.Cross(o.End.Sub(s.Start))) > Epsilon {
		return false
	}

	var sLo, sHi, oLo, oHi float64
	if math.Abs(dir.X) >= math.Abs(dir.Y) {
		sLo, sHi = orderRange(s.Start.X, s.End.X)
		oLo, oHi = orderRange(o.Start.X, o.End.X)
	} else {
		sLo, sHi = orderRange(s.Start.Y, s.End.Y)
		oLo, oHi = orderRange(o.Start.Y, o.End.Y)
	}

	return math.Max(sLo, oLo) <= math.Min(sHi, oHi)+Epsilon
}

func orderRange(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}
