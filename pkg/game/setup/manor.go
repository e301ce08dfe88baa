// Package setup builds the manor: the rooms, their links, and the
// keys and friends hidden through the house.
package setup

import (
	"spookymanor/pkg/engine/world"
	"spookymanor/pkg/game/state"
)

// Manor holds the built house by room, mostly for tests and callers
// that want to place extra content.
type Manor struct {
	Foyer         *world.Room
	Library       *world.Room
	DiningRoom    *world.Room
	Kitchen       *world.Room
	Conservatory  *world.Room
	Cellar        *world.Room
	Attic         *world.Room
	MasterBedroom *world.Room
}

// BuildManor constructs the house, hides the keys and the three
// friends, registers the friends with the session, and places the
// player in the foyer.
func BuildManor(s *state.Session) *Manor {
	m := &Manor{
		Foyer:         world.NewRoom("Foyer", "You stand in the dim foyer of the old house. Dust hangs in the moonlight, and a grandfather clock ticks somewhere out of sight."),
		Library:       world.NewRoom("Library", "Shelves upon shelves of old books rise to the ceiling. One of them seems to be watching you."),
		DiningRoom:    world.NewRoom("Dining Room", "A long table is set for a dinner that never happened. The candles are still warm."),
		Kitchen:       world.NewRoom("Kitchen", "Copper pots sway gently on their hooks, though there is no breeze."),
		Conservatory:  world.NewRoom("Conservatory", "Moonlight pours through the glass roof onto rows of strange, whispering plants."),
		Cellar:        world.NewRoom("Cellar", "The air is cold and damp. Something skitters away between the wine racks."),
		Attic:         world.NewRoom("Attic", "Cobwebs drape over broken furniture and a dressmaker's dummy that was not there a moment ago."),
		MasterBedroom: world.NewRoom("Master Bedroom", "A four-poster bed looms under a dusty canopy. The portrait above the mantel follows you with its eyes."),
	}

	world.Link(m.Foyer, world.North, m.Library)
	world.Link(m.Foyer, world.East, m.DiningRoom)
	world.Link(m.Foyer, world.West, m.Conservatory)
	world.Link(m.DiningRoom, world.East, m.Kitchen)
	world.Link(m.DiningRoom, world.South, m.Cellar)
	world.Link(m.Library, world.North, m.Attic)
	world.Link(m.Kitchen, world.North, m.MasterBedroom)

	// Key chain: Library opens the Cellar, Conservatory opens the
	// Attic, and the Cellar opens the Master Bedroom.
	m.Library.AddKeyFor(m.Cellar)
	m.Conservatory.AddKeyFor(m.Attic)
	m.Cellar.AddKeyFor(m.MasterBedroom)

	s.PlaceFriend(m.Cellar, "Alex")
	s.PlaceFriend(m.Attic, "Riley")
	s.PlaceFriend(m.MasterBedroom, "Jordan")

	s.SetCurrentRoom(m.Foyer)
	return m
}
