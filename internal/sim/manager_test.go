package sim

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborwatch/backend/internal/config"
)

func newTestManager() *Manager {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewManager(nil, nil, &config.Config{MaxBoatsPerScenario: 10}, log)
}

func TestBuildScenario(t *testing.T) {
	m := newTestManager()

	boats, islands, err := m.BuildScenario(ScenarioInput{
		Boats:   []BoatInput{{X: 0, Y: 0, Heading: 90, Speed: 5}},
		Islands: []IslandInput{{X: 40, Y: 0, Radius: 10}},
	})
	require.NoError(t, err)
	require.Len(t, boats, 1)
	require.Len(t, islands, 1)
	assert.Equal(t, NewPoint(600, 0), boats[0].End)
	assert.Equal(t, NewPoint(40, 0), islands[0].Center)
}

func TestBuildScenarioRejectsBadInputs(t *testing.T) {
	m := newTestManager()

	cases := []struct {
		name string
		in   ScenarioInput
	}{
		{"no boats", ScenarioInput{}},
		{"zero speed", ScenarioInput{Boats: []BoatInput{{Speed: 0}}}},
		{"negative radius", ScenarioInput{
			Boats:   []BoatInput{{Speed: 1}},
			Islands: []IslandInput{{Radius: -1}},
		}},
		{"too many boats", ScenarioInput{Boats: make([]BoatInput, 11)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := m.BuildScenario(c.in)
			assert.Error(t, err)
		})
	}
}

func TestRunScenarioWithoutStores(t *testing.T) {
	// Persistence is best-effort; a storeless manager still simulates.
	m := newTestManager()

	result, err := m.RunScenario(context.Background(), ScenarioInput{
		Boats: []BoatInput{
			{X: 0, Y: 0, Heading: 90, Speed: 10},
			{X: 10, Y: 0, Heading: 90, Speed: 5},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "COMPLETED", result.Status)
	assert.Equal(t, []string{"CRASHED_INTO_BOAT", "CRASHED_INTO_BOAT"}, result.Verdicts)
	require.Len(t, result.Events, 1)
	assert.InDelta(t, 2.0, result.Events[0].Time, 1e-9)
}

func TestQueueScenarioRequiresDatabase(t *testing.T) {
	m := newTestManager()
	_, err := m.QueueScenario(context.Background(), ScenarioInput{
		Boats: []BoatInput{{Speed: 1}},
	})
	assert.Error(t, err)
}
