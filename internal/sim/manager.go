package sim

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/harborwatch/backend/internal/config"
	"github.com/harborwatch/backend/internal/models"
)

// RunCompleteChannel carries run tokens of finished queued runs over Redis
// pub/sub.
const RunCompleteChannel = "run_complete"

// BoatInput is one boat of a submitted scenario.
type BoatInput struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
	Speed   float64 `json:"speed" binding:"required,gt=0"`
}

// IslandInput is one island of a submitted scenario.
type IslandInput struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius" binding:"gte=0"`
}

// ScenarioInput is a full submitted case.
type ScenarioInput struct {
	Name    string        `json:"name"`
	Boats   []BoatInput   `json:"boats" binding:"required,min=1,dive"`
	Islands []IslandInput `json:"islands" binding:"dive"`
}

// RunResult is the outcome of one simulation run: a verdict per boat in
// input order plus the chronological collision timeline.
type RunResult struct {
	Token       string           `json:"token"`
	ScenarioID  int              `json:"scenario_id,omitempty"`
	Status      string           `json:"status"`
	Verdicts    []string         `json:"verdicts"`
	Events      []CollisionEvent `json:"events"`
	CompletedAt time.Time        `json:"completed_at"`
}

// Manager runs scenarios and owns their persistence: scenarios and runs in
// Postgres, finished results cached in Redis. Both stores are optional; with
// neither configured the manager still simulates.
type Manager struct {
	db  *sqlx.DB
	rdb *redis.Client
	cfg *config.Config
	log *logrus.Logger
}

func NewManager(db *sqlx.DB, rdb *redis.Client, cfg *config.Config, log *logrus.Logger) *Manager {
	return &Manager{db: db, rdb: rdb, cfg: cfg, log: log}
}

// BuildScenario validates an input and constructs the simulation entities.
func (m *Manager) BuildScenario(in ScenarioInput) ([]Boat, []Island, error) {
	if len(in.Boats) == 0 {
		return nil, nil, fmt.Errorf("scenario needs at least one boat")
	}
	if max := m.cfg.MaxBoatsPerScenario; max > 0 && len(in.Boats) > max {
		return nil, nil, fmt.Errorf("scenario exceeds the %d boat limit", max)
	}

	boats := make([]Boat, len(in.Boats))
	for i, b := range in.Boats {
		if b.Speed <= 0 {
			return nil, nil, fmt.Errorf("boat %d: speed must be positive", i)
		}
		boats[i] = NewBoat(i, NewPoint(b.X, b.Y), b.Heading, b.Speed)
	}

	islands := make([]Island, len(in.Islands))
	for i, is := range in.Islands {
		if is.Radius < 0 {
			return nil, nil, fmt.Errorf("island %d: radius must be non-negative", i)
		}
		islands[i] = Island{ID: i, Center: NewPoint(is.X, is.Y), Radius: is.Radius}
	}
	return boats, islands, nil
}

// RunScenario executes a scenario synchronously, persisting the scenario and
// its run when a database is configured.
func (m *Manager) RunScenario(ctx context.Context, in ScenarioInput) (*RunResult, error) {
	boats, islands, err := m.BuildScenario(in)
	if err != nil {
		return nil, err
	}

	verdicts, events := Simulate(boats, islands)

	result := &RunResult{
		Token:       uuid.NewString(),
		Status:      "COMPLETED",
		Verdicts:    verdictStrings(verdicts),
		Events:      events,
		CompletedAt: time.Now().UTC(),
	}

	if m.db != nil {
		scenarioID, err := m.persistScenario(in)
		if err != nil {
			m.log.Warnf("[RUN] Failed to persist scenario: %v", err)
		} else {
			result.ScenarioID = scenarioID
			if err := m.persistRun(scenarioID, result); err != nil {
				m.log.Warnf("[RUN] Failed to persist run %s: %v", result.Token, err)
			}
		}
	}

	m.cacheResult(ctx, result)
	return result, nil
}

// QueueScenario persists a scenario and a QUEUED run for the background
// worker to pick up. Requires a database.
func (m *Manager) QueueScenario(ctx context.Context, in ScenarioInput) (string, error) {
	if m.db == nil {
		return "", fmt.Errorf("queueing requires a database")
	}
	if _, _, err := m.BuildScenario(in); err != nil {
		return "", err
	}

	scenarioID, err := m.persistScenario(in)
	if err != nil {
		return "", fmt.Errorf("failed to persist scenario: %w", err)
	}

	token := uuid.NewString()
	if _, err := m.db.Exec(
		`INSERT INTO scenario_runs (token, scenario_id, status, created_at) VALUES ($1, $2, 'QUEUED', NOW())`,
		token, scenarioID,
	); err != nil {
		return "", fmt.Errorf("failed to enqueue run: %w", err)
	}

	m.log.Infof("[RUN] Queued run %s for scenario %d (%d boats, %d islands)",
		token, scenarioID, len(in.Boats), len(in.Islands))
	return token, nil
}

// GetRun fetches a run result, trying the Redis cache before Postgres.
func (m *Manager) GetRun(ctx context.Context, token string) (*RunResult, error) {
	if m.rdb != nil {
		raw, err := m.rdb.Get(ctx, runCacheKey(token)).Result()
		if err == nil {
			var result RunResult
			if err := json.Unmarshal([]byte(raw), &result); err == nil {
				return &result, nil
			}
			m.log.Warnf("[RUN] Corrupt cache entry for %s, falling back to DB", token)
		}
	}

	if m.db == nil {
		return nil, sql.ErrNoRows
	}
	return m.loadRun(token)
}

// ListRuns returns the most recent runs, newest first.
func (m *Manager) ListRuns(ctx context.Context, limit int) ([]models.ScenarioRun, error) {
	if m.db == nil {
		return nil, fmt.Errorf("listing runs requires a database")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var runs []models.ScenarioRun
	err := m.db.Select(&runs, `
		SELECT id, token, scenario_id, status, error, created_at, completed_at
		FROM scenario_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	return runs, err
}

func (m *Manager) persistScenario(in ScenarioInput) (int, error) {
	tx, err := m.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var scenarioID int
	if err := tx.QueryRowx(
		`INSERT INTO scenarios (name, boat_count, island_count, created_at) VALUES (NULLIF($1, ''), $2, $3, NOW()) RETURNING id`,
		in.Name, len(in.Boats), len(in.Islands),
	).Scan(&scenarioID); err != nil {
		return 0, err
	}

	for i, b := range in.Boats {
		if _, err := tx.Exec(
			`INSERT INTO scenario_boats (scenario_id, boat_index, start_x, start_y, heading, speed) VALUES ($1,$2,$3,$4,$5,$6)`,
			scenarioID, i, b.X, b.Y, b.Heading, b.Speed,
		); err != nil {
			return 0, err
		}
	}
	for i, is := range in.Islands {
		if _, err := tx.Exec(
			`INSERT INTO scenario_islands (scenario_id, island_index, center_x, center_y, radius) VALUES ($1,$2,$3,$4,$5)`,
			scenarioID, i, is.X, is.Y, is.Radius,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return scenarioID, nil
}

func (m *Manager) persistRun(scenarioID int, result *RunResult) error {
	tx, err := m.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var runID int
	if err := tx.QueryRowx(
		`INSERT INTO scenario_runs (token, scenario_id, status, created_at, completed_at) VALUES ($1, $2, 'COMPLETED', NOW(), NOW()) RETURNING id`,
		result.Token, scenarioID,
	).Scan(&runID); err != nil {
		return err
	}

	if err := insertOutcome(tx, runID, result); err != nil {
		return err
	}
	return tx.Commit()
}

// insertOutcome writes a completed run's verdicts and timeline.
func insertOutcome(tx *sqlx.Tx, runID int, result *RunResult) error {
	for i, v := range result.Verdicts {
		if _, err := tx.Exec(
			`INSERT INTO run_verdicts (run_id, boat_index, verdict) VALUES ($1, $2, $3)`,
			runID, i, v,
		); err != nil {
			return err
		}
	}
	for _, ev := range result.Events {
		if _, err := tx.Exec(
			`INSERT INTO run_events (run_id, event_time, subject_id, object_kind, object_id) VALUES ($1,$2,$3,$4,$5)`,
			runID, ev.Time, ev.A.ID, ev.B.Kind.String(), ev.B.ID,
		); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) loadRun(token string) (*RunResult, error) {
	var run models.ScenarioRun
	if err := m.db.Get(&run, `
		SELECT id, token, scenario_id, status, error, created_at, completed_at
		FROM scenario_runs WHERE token=$1
	`, token); err != nil {
		return nil, err
	}

	result := &RunResult{
		Token:      run.Token,
		ScenarioID: run.ScenarioID,
		Status:     run.Status,
	}
	if run.CompletedAt.Valid {
		result.CompletedAt = run.CompletedAt.Time
	}
	if run.Status != "COMPLETED" {
		return result, nil
	}

	var verdicts []models.RunVerdict
	if err := m.db.Select(&verdicts, `
		SELECT id, run_id, boat_index, verdict FROM run_verdicts
		WHERE run_id=$1 ORDER BY boat_index
	`, run.ID); err != nil {
		return nil, err
	}
	for _, v := range verdicts {
		result.Verdicts = append(result.Verdicts, v.Verdict)
	}

	var events []models.RunEvent
	if err := m.db.Select(&events, `
		SELECT id, run_id, event_time, subject_id, object_kind, object_id FROM run_events
		WHERE run_id=$1 ORDER BY event_time, id
	`, run.ID); err != nil {
		return nil, err
	}
	for _, ev := range events {
		kind := KindBoat
		if ev.ObjectKind == KindIsland.String() {
			kind = KindIsland
		}
		result.Events = append(result.Events, CollisionEvent{
			Time: ev.EventTime,
			A:    Collidable{Kind: KindBoat, ID: ev.SubjectID},
			B:    Collidable{Kind: kind, ID: ev.ObjectID},
		})
	}
	return result, nil
}

func (m *Manager) cacheResult(ctx context.Context, result *RunResult) {
	if m.rdb == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		m.log.Warnf("[RUN] Failed to marshal result %s: %v", result.Token, err)
		return
	}
	ttl := time.Duration(m.cfg.RunCacheTTLMinutes) * time.Minute
	if err := m.rdb.Set(ctx, runCacheKey(result.Token), data, ttl).Err(); err != nil {
		m.log.Warnf("[RUN] Failed to cache result %s: %v", result.Token, err)
	}
}

func runCacheKey(token string) string {
	return "run:" + token + ":result"
}

func verdictStrings(verdicts []Verdict) []string {
	out := make([]string, len(verdicts))
	for i, v := range verdicts {
		out[i] = v.String()
	}
	return out
}
