package sim

import "math"

const (
	// Horizon is the length of the simulation window, in minutes. Collisions
	// past the horizon are ignored.
	Horizon = 120.0

	// Epsilon is the absolute tolerance used for every equality and zero test.
	Epsilon = 1e-10

	// precisionScale rounds to 5 fractional digits.
	precisionScale = 1e5
)

// Point is a 2D point/vector with fixed-precision coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// fix rounds to 5 decimal places, half away from zero. Every derived
// geometric value is rounded exactly once through this helper; intermediate
// terms inside a single expression are not re-rounded.
func fix(n float64) float64 {
	if math.IsNaN(n) {
		return 0
	}
	return math.Round(n*precisionScale) / precisionScale
}

func NewPoint(x, y float64) Point {
	return Point{X: fix(x), Y: fix(y)}
}

func (p Point) Add(o Point) Point {
	return Point{X: fix(p.X + o.X), Y: fix(p.Y + o.Y)}
}

func (p Point) Sub(o Point) Point {
	return Point{X: fix(p.X - o.X), Y: fix(p.Y - o.Y)}
}

func (p Point) Scale(s float64) Point {
	return Point{X: fix(p.X * s), Y: fix(p.Y * s)}
}

func (p Point) Dot(o Point) float64 {
	return fix(p.X*o.X + p.Y*o.Y)
}

// Cross returns the scalar 2D cross product. Sign follows the usual
// right-hand convention; collinearity tests compare its magnitude to Epsilon.
func (p Point) Cross(o Point) float64 {
	return fix(p.X*o.Y - p.Y*o.X)
}

func (p Point) Magnitude() float64 {
	return fix(math.Sqrt(p.X*p.X + p.Y*p.Y))
}

func (p Point) DistanceTo(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return fix(math.Sqrt(dx*dx + dy*dy))
}

// Equals compares coordinates under the shared tolerance.
func (p Point) Equals(o Point) bool {
	return math.Abs(p.X-o.X) < Epsilon && math.Abs(p.Y-o.Y) < Epsilon
}
