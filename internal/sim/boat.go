package sim

import "math"

// headingOffset converts a compass bearing (0° = north, clockwise) into a
// standard math angle before trigonometric use.
const headingOffset = 90.0

// Boat is a vessel travelling in a straight line at constant speed for the
// whole simulation window. End and Path are derived from the inputs at
// construction and never change.
type Boat struct {
	ID      int     `json:"id"`
	Start   Point   `json:"start"`
	Heading float64 `json:"heading"` // compass degrees
	Speed   float64 `json:"speed"`   // distance units per minute, > 0
	End     Point   `json:"end"`
	Path    Segment `json:"path"`
}

// NewBoat projects the boat's end position at the horizon and fixes its path
// segment. North is +y, so the y component uses −sin of the converted angle.
func NewBoat(id int, start Point, heading, speed float64) Boat {
	theta := (heading - headingOffset) * math.Pi / 180
	travel := speed * Horizon
	end := NewPoint(
		start.X+travel*math.Cos(theta),
		start.Y-travel*math.Sin(theta),
	)
	return Boat{
		ID:      id,
		Start:   start,
		Heading: heading,
		Speed:   speed,
		End:     end,
		Path:    Segment{Start: start, End: end},
	}
}

// Island is a stationary circular obstacle.
type Island struct {
	ID     int     `json:"id"`
	Center Point   `json:"center"`
	Radius float64 `json:"radius"` // >= 0
}

func (i Island) Circle() Circle {
	return Circle{Center: i.Center, Radius: i.Radius}
}
