package sim

import (
	"context"
	"time"

	"github.com/harborwatch/backend/internal/models"
)

// StartRunWorker runs a background job that executes queued scenario runs.
// Completed run tokens are published on RunCompleteChannel.
func (m *Manager) StartRunWorker(ctx context.Context) {
	if m.db == nil {
		m.log.Warnf("[RUNWORKER] No database configured, worker not started")
		return
	}

	interval := time.Duration(m.cfg.RunWorkerPollSecs) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.log.Infof("[RUNWORKER] Starting run worker (poll every %v)", interval)

	for {
		select {
		case <-ctx.Done():
			m.log.Infof("[RUNWORKER] Worker stopped")
			return
		case <-ticker.C:
			for m.processNextRun(ctx) {
			}
		}
	}
}

// processNextRun claims and executes one queued run. Returns true when a run
// was claimed, so the caller can drain the queue within a single tick.
func (m *Manager) processNextRun(ctx context.Context) bool {
	var run models.ScenarioRun
	err := m.db.Get(&run, `
		UPDATE scenario_runs SET status='RUNNING'
		WHERE id = (
			SELECT id FROM scenario_runs
			WHERE status='QUEUED'
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, token, scenario_id, status, error, created_at, completed_at
	`)
	if err != nil {
		return false
	}

	if err := m.executeQueuedRun(ctx, run); err != nil {
		m.log.Errorf("[RUNWORKER] Run %s failed: %v", run.Token, err)
		if _, derr := m.db.Exec(
			`UPDATE scenario_runs SET status='FAILED', error=$1, completed_at=NOW() WHERE id=$2`,
			err.Error(), run.ID,
		); derr != nil {
			m.log.Errorf("[RUNWORKER] Failed to mark run %s failed: %v", run.Token, derr)
		}
	}
	return true
}

func (m *Manager) executeQueuedRun(ctx context.Context, run models.ScenarioRun) error {
	boats, islands, err := m.loadScenario(run.ScenarioID)
	if err != nil {
		return err
	}

	verdicts, events := Simulate(boats, islands)
	result := &RunResult{
		Token:       run.Token,
		ScenarioID:  run.ScenarioID,
		Status:      "COMPLETED",
		Verdicts:    verdictStrings(verdicts),
		Events:      events,
		CompletedAt: time.Now().UTC(),
	}

	tx, err := m.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE scenario_runs SET status='COMPLETED', completed_at=NOW() WHERE id=$1`,
		run.ID,
	); err != nil {
		return err
	}
	if err := insertOutcome(tx, run.ID, result); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	m.cacheResult(ctx, result)

	if m.rdb != nil {
		if err := m.rdb.Publish(ctx, RunCompleteChannel, run.Token).Err(); err != nil {
			m.log.Warnf("[RUNWORKER] Failed to publish completion of %s: %v", run.Token, err)
		}
	}

	m.log.Infof("[RUNWORKER] Completed run %s (%d boats, %d events)",
		run.Token, len(boats), len(events))
	return nil
}

func (m *Manager) loadScenario(scenarioID int) ([]Boat, []Island, error) {
	var boatRows []models.ScenarioBoat
	if err := m.db.Select(&boatRows, `
		SELECT id, scenario_id, boat_index, start_x, start_y, heading, speed
		FROM scenario_boats WHERE scenario_id=$1 ORDER BY boat_index
	`, scenarioID); err != nil {
		return nil, nil, err
	}

	var islandRows []models.ScenarioIsland
	if err := m.db.Select(&islandRows, `
		SELECT id, scenario_id, island_index, center_x, center_y, radius
		FROM scenario_islands WHERE scenario_id=$1 ORDER BY island_index
	`, scenarioID); err != nil {
		return nil, nil, err
	}

	boats := make([]Boat, len(boatRows))
	for i, b := range boatRows {
		boats[i] = NewBoat(b.BoatIndex, NewPoint(b.StartX, b.StartY), b.Heading, b.Speed)
	}
	islands := make([]Island, len(islandRows))
	for i, is := range islandRows {
		islands[i] = Island{ID: is.IslandIndex, Center: NewPoint(is.CenterX, is.CenterY), Radius: is.Radius}
	}
	return boats, islands, nil
}
