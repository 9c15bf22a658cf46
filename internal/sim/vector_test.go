package sim

import (
	"math"
	"testing"
)

func TestFixRoundsToFiveDigits(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1.234564, 1.23456},
		{1.234566, 1.23457},
		{-1.234566, -1.23457},
		{0, 0},
		{120, 120},
	}
	for _, c := range cases {
		if got := fix(c.in); got != c.want {
			t.Errorf("fix(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFixNaN(t *testing.T) {
	if got := fix(math.NaN()); got != 0 {
		t.Errorf("fix(NaN) = %v, want 0", got)
	}
}

func TestPointArithmetic(t *testing.T) {
	a := NewPoint(3, 4)
	b := NewPoint(1, -2)

	if got := a.Add(b); got != (Point{4, 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Point{2, 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Point{6, 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := a.Magnitude(); got != 5 {
		t.Errorf("Magnitude = %v, want 5", got)
	}
}

func TestCrossSign(t *testing.T) {
	// Unit x cross unit y is +1; reversed order flips the sign.
	x := NewPoint(1, 0)
	y := NewPoint(0, 1)
	if got := x.Cross(y); got != 1 {
		t.Errorf("x cross y = %v, want 1", got)
	}
	if got := y.Cross(x); got != -1 {
		t.Errorf("y cross x = %v, want -1", got)
	}
}

func TestDistanceTo(t *testing.T) {
	if got := NewPoint(0, 0).DistanceTo(NewPoint(3, 4)); got != 5 {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
	if got := NewPoint(-1, -1).DistanceTo(NewPoint(-1, -1)); got != 0 {
		t.Errorf("DistanceTo self = %v, want 0", got)
	}
}
