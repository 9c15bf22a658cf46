package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// Scenario is a submitted simulation case.
type Scenario struct {
	ID          int            `db:"id" json:"id"`
	Name        sql.NullString `db:"name" json:"name,omitempty"`
	BoatCount   int            `db:"boat_count" json:"boat_count"`
	IslandCount int            `db:"island_count" json:"island_count"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// ScenarioBoat is one boat row of a scenario, in input order.
type ScenarioBoat struct {
	ID         int     `db:"id" json:"id"`
	ScenarioID int     `db:"scenario_id" json:"scenario_id"`
	BoatIndex  int     `db:"boat_index" json:"boat_index"`
	StartX     float64 `db:"start_x" json:"start_x"`
	StartY     float64 `db:"start_y" json:"start_y"`
	Heading    float64 `db:"heading" json:"heading"`
	Speed      float64 `db:"speed" json:"speed"`
}

// ScenarioIsland is one island row of a scenario, in input order.
type ScenarioIsland struct {
	ID          int     `db:"id" json:"id"`
	ScenarioID  int     `db:"scenario_id" json:"scenario_id"`
	IslandIndex int     `db:"island_index" json:"island_index"`
	CenterX     float64 `db:"center_x" json:"center_x"`
	CenterY     float64 `db:"center_y" json:"center_y"`
	Radius      float64 `db:"radius" json:"radius"`
}

// ScenarioRun is one execution of a scenario.
type ScenarioRun struct {
	ID          int            `db:"id" json:"id"`
	Token       string         `db:"token" json:"token"`
	ScenarioID  int            `db:"scenario_id" json:"scenario_id"`
	Status      string         `db:"status" json:"status"` // QUEUED, RUNNING, COMPLETED, FAILED
	Error       sql.NullString `db:"error" json:"error,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	CompletedAt sql.NullTime   `db:"completed_at" json:"completed_at,omitempty"`
}

// RunVerdict is the final classification of one boat in a run.
type RunVerdict struct {
	ID        int    `db:"id" json:"id"`
	RunID     int    `db:"run_id" json:"run_id"`
	BoatIndex int    `db:"boat_index" json:"boat_index"`
	Verdict   string `db:"verdict" json:"verdict"`
}

// RunEvent is one timed collision record of a run's timeline. The subject is
// always a boat; the object is the other boat or the island it met.
type RunEvent struct {
	ID          int     `db:"id" json:"id"`
	RunID       int     `db:"run_id" json:"run_id"`
	EventTime   float64 `db:"event_time" json:"event_time"`
	SubjectID   int     `db:"subject_id" json:"subject_id"`
	ObjectKind  string  `db:"object_kind" json:"object_kind"`
	ObjectID    int     `db:"object_id" json:"object_id"`
}

// AdminAccount is an operator login for the admin API.
type AdminAccount struct {
	Username  string         `db:"username" json:"username"`
	TokenHash string         `db:"token_hash" json:"-"`
	Roles     pq.StringArray `db:"roles" json:"roles"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}
