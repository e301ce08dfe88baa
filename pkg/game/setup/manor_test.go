package setup

import (
	"testing"

	"spookymanor/pkg/engine/world"
	"spookymanor/pkg/game/gameplay"
	"spookymanor/pkg/game/state"
)

func TestBuildManorStartsInFoyer(t *testing.T) {
	s := state.NewSession()
	m := BuildManor(s)

	if s.GetCurrentRoom() != m.Foyer {
		t.Errorf("player should start in the Foyer, got %v", s.GetCurrentRoom())
	}
	if got := s.RemainingFriendCount(); got != 3 {
		t.Errorf("registered friends = %d, want 3", got)
	}
}

func TestBuildManorAdjacencyIsSymmetric(t *testing.T) {
	s := state.NewSession()
	m := BuildManor(s)

	rooms := []*world.Room{
		m.Foyer, m.Library, m.DiningRoom, m.Kitchen,
		m.Conservatory, m.Cellar, m.Attic, m.MasterBedroom,
	}
	for _, r := range rooms {
		for _, dir := range world.AllDirections() {
			if n := r.Neighbor(dir); n != nil {
				if n.Neighbor(dir.Opposite()) != r {
					t.Errorf("%s -> %s -> %s is not symmetric", r.Name, dir, n.Name)
				}
			}
		}
	}
}

func TestBuildManorLockedRooms(t *testing.T) {
	s := state.NewSession()
	m := BuildManor(s)

	for _, r := range []*world.Room{m.Cellar, m.Attic, m.MasterBedroom} {
		if !r.IsLocked() {
			t.Errorf("%s should start locked", r.Name)
		}
	}
	for _, r := range []*world.Room{m.Foyer, m.Library, m.DiningRoom, m.Kitchen, m.Conservatory} {
		if r.IsLocked() {
			t.Errorf("%s should start unlocked", r.Name)
		}
	}
}

// TestManorIsSolvable walks the intended route and checks that every
// friend can be found: each key is discoverable before its door.
func TestManorIsSolvable(t *testing.T) {
	s := state.NewSession()
	m := BuildManor(s)

	route := []struct {
		dir  world.Direction
		want *world.Room
	}{
		{world.North, m.Library},  // pick up the Cellar key
		{world.South, m.Foyer},
		{world.West, m.Conservatory}, // pick up the Attic key
		{world.East, m.Foyer},
		{world.East, m.DiningRoom},
		{world.South, m.Cellar}, // Alex, Master Bedroom key
		{world.North, m.DiningRoom},
		{world.West, m.Foyer},
		{world.North, m.Library},
		{world.North, m.Attic}, // Riley
		{world.South, m.Library},
		{world.South, m.Foyer},
		{world.East, m.DiningRoom},
		{world.East, m.Kitchen},
		{world.North, m.MasterBedroom}, // Jordan
	}

	gameplay.LookAround(s)
	for i, step := range route {
		if res := gameplay.Move(s, step.dir); res != gameplay.Moved {
			t.Fatalf("step %d: Move(%v) = %v, want Moved (in %s)",
				i, step.dir, res, s.GetCurrentRoom().Name)
		}
		if s.GetCurrentRoom() != step.want {
			t.Fatalf("step %d: in %s, want %s", i, s.GetCurrentRoom().Name, step.want.Name)
		}
		gameplay.LookAround(s)
	}

	if got := s.RemainingFriendCount(); got != 0 {
		t.Errorf("remaining friends after full route = %d, want 0", got)
	}
	if len(s.FoundFriends) != 3 {
		t.Errorf("found friends = %d, want 3", len(s.FoundFriends))
	}
}
