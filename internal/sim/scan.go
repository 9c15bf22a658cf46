package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCase reads one simulation case from the plain-text exchange format:
// a boat count and an island count, then per boat "x y heading speed" and
// per island "x y radius", whitespace separated. Malformed input is rejected
// here, at the boundary; the simulation core never sees it.
func ParseCase(text string) ([]Boat, []Island, error) {
	tokens := strings.Fields(text)
	pos := 0

	next := func(what string) (float64, error) {
		if pos >= len(tokens) {
			return 0, fmt.Errorf("unexpected end of input reading %s", what)
		}
		v, err := strconv.ParseFloat(tokens[pos], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q", what, tokens[pos])
		}
		pos++
		return v, nil
	}

	nextCount := func(what string) (int, error) {
		v, err := next(what)
		if err != nil {
			return 0, err
		}
		n := int(v)
		if float64(n) != v || n < 0 {
			return 0, fmt.Errorf("invalid %s %v", what, v)
		}
		return n, nil
	}

	boatCount, err := nextCount("boat count")
	if err != nil {
		return nil, nil, err
	}
	islandCount, err := nextCount("island count")
	if err != nil {
		return nil, nil, err
	}

	boats := make([]Boat, 0, boatCount)
	for i := 0; i < boatCount; i++ {
		x, err := next(fmt.Sprintf("boat %d x", i))
		if err != nil {
			return nil, nil, err
		}
		y, err := next(fmt.Sprintf("boat %d y", i))
		if err != nil {
			return nil, nil, err
		}
		heading, err := next(fmt.Sprintf("boat %d heading", i))
		if err != nil {
			return nil, nil, err
		}
		speed, err := next(fmt.Sprintf("boat %d speed", i))
		if err != nil {
			return nil, nil, err
		}
		if speed <= 0 {
			return nil, nil, fmt.Errorf("boat %d: speed must be positive, got %v", i, speed)
		}
		boats = append(boats, NewBoat(i, NewPoint(x, y), heading, speed))
	}

	islands := make([]Island, 0, islandCount)
	for i := 0; i < islandCount; i++ {
		x, err := next(fmt.Sprintf("island %d x", i))
		if err != nil {
			return nil, nil, err
		}
		y, err := next(fmt.Sprintf("island %d y", i))
		if err != nil {
			return nil, nil, err
		}
		radius, err := next(fmt.Sprintf("island %d radius", i))
		if err != nil {
			return nil, nil, err
		}
		if radius < 0 {
			return nil, nil, fmt.Errorf("island %d: radius must be non-negative, got %v", i, radius)
		}
		islands = append(islands, Island{ID: i, Center: NewPoint(x, y), Radius: radius})
	}

	if pos != len(tokens) {
		return nil, nil, fmt.Errorf("trailing input after case: %d extra tokens", len(tokens)-pos)
	}
	return boats, islands, nil
}

// FormatVerdicts renders one verdict line per boat, in input order.
func FormatVerdicts(verdicts []Verdict) string {
	var sb strings.Builder
	for _, v := range verdicts {
		sb.WriteString(v.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
