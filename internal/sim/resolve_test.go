package sim

import (
	"math"
	"testing"
)

func TestSimulateAllSafe(t *testing.T) {
	boats := []Boat{
		NewBoat(0, NewPoint(0, 0), 90, 1),
		NewBoat(1, NewPoint(0, 50), 90, 1),
	}
	islands := []Island{{ID: 0, Center: NewPoint(50, 25), Radius: 5}}

	verdicts, events := Simulate(boats, islands)
	if len(events) != 0 {
		t.Fatalf("expected no events, got %v", events)
	}
	for i, v := range verdicts {
		if v != VerdictSafe {
			t.Errorf("boat %d: verdict %v, want SAFE", i, v)
		}
	}
}

func TestSimulateExactlyOneVerdictPerBoat(t *testing.T) {
	boats := []Boat{
		NewBoat(0, NewPoint(0, 0), 90, 1),
		NewBoat(1, NewPoint(10, -10), 0, 1),
		NewBoat(2, NewPoint(0, 30), 90, 1),
		NewBoat(3, NewPoint(-500, -500), 0, 1),
	}
	islands := []Island{{ID: 0, Center: NewPoint(40, 30), Radius: 10}}

	verdicts, _ := Simulate(boats, islands)
	if len(verdicts) != len(boats) {
		t.Fatalf("got %d verdicts for %d boats", len(verdicts), len(boats))
	}
	for i, v := range verdicts {
		switch v {
		case VerdictSafe, VerdictCrashedIntoBoat, VerdictCrashedIntoIsland:
		default:
			t.Errorf("boat %d: unknown verdict %d", i, v)
		}
	}
}

func TestSimulateCrashedBoatExcludedFromLaterEvents(t *testing.T) {
	// Boat 0 hits the island at t=30. Its crossing with boat 1 at t=60 is
	// void: boat 1 must stay safe.
	boats := []Boat{
		NewBoat(0, NewPoint(0, 0), 90, 1),
		NewBoat(1, NewPoint(60, -60), 0, 1),
	}
	islands := []Island{{ID: 0, Center: NewPoint(40, 0), Radius: 10}}

	verdicts, events := Simulate(boats, islands)
	if verdicts[0] != VerdictCrashedIntoIsland {
		t.Errorf("boat 0: verdict %v, want CRASHED_INTO_ISLAND", verdicts[0])
	}
	if verdicts[1] != VerdictSafe {
		t.Errorf("boat 1: verdict %v, want SAFE", verdicts[1])
	}

	// The voided pair event is still materialized in the timeline.
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if math.Abs(events[0].Time-30) > Epsilon || events[0].B.Kind != KindIsland {
		t.Errorf("first event = %+v, want island contact at t=30", events[0])
	}
	if math.Abs(events[1].Time-60) > Epsilon || events[1].B.Kind != KindBoat {
		t.Errorf("second event = %+v, want boat crossing at t=60", events[1])
	}
}

func TestSimulateEarlierCrashKeepsItsVerdict(t *testing.T) {
	// Boats 0 and 1 collide at t=10; boat 0's island contact at t=30 must
	// not rewrite its verdict.
	boats := []Boat{
		NewBoat(0, NewPoint(0, 0), 90, 1),
		NewBoat(1, NewPoint(10, -10), 0, 1),
	}
	islands := []Island{{ID: 0, Center: NewPoint(40, 0), Radius: 10}}

	verdicts, _ := Simulate(boats, islands)
	if verdicts[0] != VerdictCrashedIntoBoat {
		t.Errorf("boat 0: verdict %v, want CRASHED_INTO_BOAT", verdicts[0])
	}
	if verdicts[1] != VerdictCrashedIntoBoat {
		t.Errorf("boat 1: verdict %v, want CRASHED_INTO_BOAT", verdicts[1])
	}
}

func TestSimulateSimultaneousTieBreak(t *testing.T) {
	// At t=30, boat 0 simultaneously reaches boat 1's crossing and the
	// island's edge. Boat pairs are enumerated before island contacts per
	// boat, so both boats crash into each other and the island events are
	// voided. This pins the documented enumeration order.
	boats := []Boat{
		NewBoat(0, NewPoint(0, 0), 90, 1),
		NewBoat(1, NewPoint(30, -30), 0, 1),
	}
	islands := []Island{{ID: 0, Center: NewPoint(40, 0), Radius: 10}}

	verdicts, events := Simulate(boats, islands)
	if verdicts[0] != VerdictCrashedIntoBoat {
		t.Errorf("boat 0: verdict %v, want CRASHED_INTO_BOAT", verdicts[0])
	}
	if verdicts[1] != VerdictCrashedIntoBoat {
		t.Errorf("boat 1: verdict %v, want CRASHED_INTO_BOAT", verdicts[1])
	}
	for _, ev := range events {
		if math.Abs(ev.Time-30) > Epsilon {
			t.Errorf("event %+v not at t=30", ev)
		}
	}
}

func TestCollisionEventsEnumerationOrder(t *testing.T) {
	boats := []Boat{
		NewBoat(0, NewPoint(0, 0), 90, 1),
		NewBoat(1, NewPoint(30, -30), 0, 1),
	}
	islands := []Island{{ID: 0, Center: NewPoint(40, 0), Radius: 10}}

	events := CollisionEvents(boats, islands)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d: %+v", len(events), events)
	}
	// Boat 0's scan: pair (0,1) first, then (0, island); boat 1's scan last.
	if events[0].B.Kind != KindBoat {
		t.Errorf("event 0 = %+v, want the boat pair", events[0])
	}
	if events[1].A.ID != 0 || events[1].B.Kind != KindIsland {
		t.Errorf("event 1 = %+v, want boat 0 vs island", events[1])
	}
	if events[2].A.ID != 1 || events[2].B.Kind != KindIsland {
		t.Errorf("event 2 = %+v, want boat 1 vs island", events[2])
	}
}

func TestResolveIslandFirstWhenEarlier(t *testing.T) {
	// Boat 0 reaches the island around t=5 and would cross boat 1 at t=45:
	// the island wins on time alone.
	boats := []Boat{
		NewBoat(0, NewPoint(0, 0), 90, 1),
		NewBoat(1, NewPoint(45, -45), 0, 1),
	}
	islands := []Island{{ID: 0, Center: NewPoint(10, 0), Radius: 5}}

	verdicts, _ := Simulate(boats, islands)
	if verdicts[0] != VerdictCrashedIntoIsland {
		t.Errorf("boat 0: verdict %v, want CRASHED_INTO_ISLAND", verdicts[0])
	}
	if verdicts[1] != VerdictSafe {
		t.Errorf("boat 1: verdict %v, want SAFE", verdicts[1])
	}
}
