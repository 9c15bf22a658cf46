package sim

import "sort"

// Kind discriminates collision participants.
type Kind int

const (
	KindBoat Kind = iota
	KindIsland
)

func (k Kind) String() string {
	if k == KindIsland {
		return "island"
	}
	return "boat"
}

// Collidable references a collision participant by kind and identity.
type Collidable struct {
	Kind Kind `json:"kind"`
	ID   int  `json:"id"`
}

// CollisionEvent is a timed contact between two participants. A is always a
// boat; B is either the other boat or an island.
type CollisionEvent struct {
	Time float64    `json:"time"`
	A    Collidable `json:"a"`
	B    Collidable `json:"b"`
}

// Verdict is the final per-boat classification.
type Verdict int

const (
	VerdictSafe Verdict = iota
	VerdictCrashedIntoBoat
	VerdictCrashedIntoIsland
)

func (v Verdict) String() string {
	switch v {
	case VerdictCrashedIntoBoat:
		return "CRASHED_INTO_BOAT"
	case VerdictCrashedIntoIsland:
		return "CRASHED_INTO_ISLAND"
	default:
		return "SAFE"
	}
}

// CollisionEvents computes every potential collision within the horizon.
//
// Enumeration order is part of the contract: for each boat i in input order,
// boat pairs (i, j) with j > i come first, then (i, island) in island input
// order. Resolve sorts events with a stable sort, so simultaneous events are
// settled in exactly this order.
func CollisionEvents(boats []Boat, islands []Island) []CollisionEvent {
	var events []CollisionEvent
	for i, a := range boats {
		for _, b := range boats[i+1:] {
			if t, ok := boatVsBoat(a, b); ok {
				events = append(events, CollisionEvent{
					Time: t,
					A:    Collidable{Kind: KindBoat, ID: a.ID},
					B:    Collidable{Kind: KindBoat, ID: b.ID},
				})
			}
		}
		for _, island := range islands {
			if t, ok := boatVsIsland(a, island); ok {
				events = append(events, CollisionEvent{
					Time: t,
					A:    Collidable{Kind: KindBoat, ID: a.ID},
					B:    Collidable{Kind: KindIsland, ID: island.ID},
				})
			}
		}
	}
	return events
}

// Resolve replays events in time order and assigns exactly one verdict per
// boat. A crashed boat is excluded from every later event: an island contact
// only crashes a still-sailing boat, and a boat-boat contact crashes both
// participants only when neither has crashed yet.
func Resolve(boats []Boat, events []CollisionEvent) map[int]Verdict {
	sorted := make([]CollisionEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	verdicts := make(map[int]Verdict, len(boats))
	for _, b := range boats {
		verdicts[b.ID] = VerdictSafe
	}

	crashed := make(map[int]bool)
	for _, ev := range sorted {
		if ev.B.Kind == KindIsland {
			if !crashed[ev.A.ID] {
				crashed[ev.A.ID] = true
				verdicts[ev.A.ID] = VerdictCrashedIntoIsland
			}
			continue
		}
		if crashed[ev.A.ID] || crashed[ev.B.ID] {
			continue
		}
		crashed[ev.A.ID] = true
		crashed[ev.B.ID] = true
		verdicts[ev.A.ID] = VerdictCrashedIntoBoat
		verdicts[ev.B.ID] = VerdictCrashedIntoBoat
	}
	return verdicts
}

// Simulate runs the full window for one case and returns verdicts in boat
// input order, alongside the chronological event timeline that produced them.
func Simulate(boats []Boat, islands []Island) ([]Verdict, []CollisionEvent) {
	events := CollisionEvents(boats, islands)
	byID := Resolve(boats, events)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})

	verdicts := make([]Verdict, len(boats))
	for i, b := range boats {
		verdicts[i] = byID[b.ID]
	}
	return verdicts, events
}
