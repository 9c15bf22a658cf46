package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCase(t *testing.T) {
	boats, islands, err := ParseCase("2 1\n0 0 90 5\n10 0 90 10\n40 0 10\n")
	require.NoError(t, err)
	require.Len(t, boats, 2)
	require.Len(t, islands, 1)

	assert.Equal(t, 0, boats[0].ID)
	assert.Equal(t, NewPoint(0, 0), boats[0].Start)
	assert.Equal(t, 90.0, boats[0].Heading)
	assert.Equal(t, 5.0, boats[0].Speed)
	assert.Equal(t, NewPoint(600, 0), boats[0].End)

	assert.Equal(t, NewPoint(40, 0), islands[0].Center)
	assert.Equal(t, 10.0, islands[0].Radius)
}

func TestParseCaseEmptyCounts(t *testing.T) {
	boats, islands, err := ParseCase("0 0")
	require.NoError(t, err)
	assert.Empty(t, boats)
	assert.Empty(t, islands)
}

func TestParseCaseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"non-numeric count", "two 1"},
		{"fractional count", "1.5 0"},
		{"negative count", "-1 0"},
		{"truncated boat", "1 0\n0 0 90"},
		{"non-numeric field", "1 0\n0 0 north 5"},
		{"zero speed", "1 0\n0 0 90 0"},
		{"negative radius", "0 1\n5 5 -1"},
		{"trailing tokens", "1 0\n0 0 90 5 extra"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := ParseCase(c.input)
			assert.Error(t, err)
		})
	}
}

func TestFormatVerdicts(t *testing.T) {
	out := FormatVerdicts([]Verdict{VerdictSafe, VerdictCrashedIntoBoat, VerdictCrashedIntoIsland})
	assert.Equal(t, "SAFE\nCRASHED_INTO_BOAT\nCRASHED_INTO_ISLAND\n", out)
}

func TestParseCaseRoundTripSimulation(t *testing.T) {
	// Overtaking scenario straight from the wire format.
	boats, islands, err := ParseCase("2 0\n0 0 90 10\n10 0 90 5\n")
	require.NoError(t, err)

	verdicts, events := Simulate(boats, islands)
	require.Len(t, events, 1)
	assert.InDelta(t, 2.0, events[0].Time, 1e-9)
	assert.Equal(t, "CRASHED_INTO_BOAT\nCRASHED_INTO_BOAT\n", FormatVerdicts(verdicts))
}
