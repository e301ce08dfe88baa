// Package world provides the room-graph primitives for the manor:
// rooms, directional links, and the lock/key placement model.
package world

// Room represents a single location the player can occupy.
//
// The four directional fields are maintained exclusively through Link
// and Unlink so that adjacency stays symmetric: whenever A.North is B,
// B.South is A. Mutating the fields directly breaks that invariant.
type Room struct {
	Name        string
	Description string

	// Navigation - links to adjacent rooms
	North *Room
	South *Room
	East  *Room
	West  *Room

	// Locked rooms refuse entry until the player holds this room's key
	Locked bool

	// Keys lists rooms whose entry keys are discoverable here.
	// Friends lists the names of friends hiding here.
	// Both are emptied by the first look-around.
	Keys    []*Room
	Friends []string
}

// NewRoom creates a new room with the given name and description
func NewRoom(name, description string) *Room {
	return &Room{
		Name:        name,
		Description: description,
	}
}

// Neighbor returns the adjacent room in the given direction
func (r *Room) Neighbor(dir Direction) *Room {
	if r == nil {
		return nil
	}
	switch dir {
	case North:
		return r.North
	case South:
		return r.South
	case East:
		return r.East
	case West:
		return r.West
	default:
		return nil
	}
}

func (r *Room) setNeighbor(dir Direction, neighbor *Room) {
	if r == nil {
		return
	}
	switch dir {
	case North:
		r.North = neighbor
	case South:
		r.South = neighbor
	case East:
		r.East = neighbor
	case West:
		r.West = neighbor
	}
}

// Link places b in the given direction from a and a in the opposite
// direction from b. Any room previously occupying either slot is
// unlinked on both sides first, so a slot holds at most one neighbor.
func Link(a *Room, dir Direction, b *Room) {
	if a == nil || b == nil || !dir.IsValid() {
		return
	}
	Unlink(a, dir)
	Unlink(b, dir.Opposite())
	a.setNeighbor(dir, b)
	b.setNeighbor(dir.Opposite(), a)
}

// Unlink clears the link in the given direction from r, clearing the
// paired slot on the neighbor as well. A missing neighbor is a no-op.
func Unlink(r *Room, dir Direction) {
	if r == nil || !dir.IsValid() {
		return
	}
	if neighbor := r.Neighbor(dir); neighbor != nil {
		neighbor.setNeighbor(dir.Opposite(), nil)
	}
	r.setNeighbor(dir, nil)
}

// SetLocked sets whether this room is locked. To lock a room behind a
// discoverable key, use AddKeyFor instead.
func (r *Room) SetLocked(locked bool) {
	r.Locked = locked
}

// IsLocked returns true if this room refuses entry without a key
func (r *Room) IsLocked() bool {
	return r.Locked
}

// AddKeyFor places the key for target in this room and locks target.
// Placing the same key twice is a no-op: a room holds at most one key
// per target.
func (r *Room) AddKeyFor(target *Room) {
	if target == nil {
		return
	}
	for _, key := range r.Keys {
		if key == target {
			target.SetLocked(true)
			return
		}
	}
	r.Keys = append(r.Keys, target)
	target.SetLocked(true)
}

// AddFriend hides a friend with the given name in this room. The
// session learns about registered friends through state registration,
// which happens during world building.
func (r *Room) AddFriend(name string) {
	r.Friends = append(r.Friends, name)
}

// OpenDirections returns the directions that currently lead somewhere,
// in menu order
func (r *Room) OpenDirections() []Direction {
	var dirs []Direction
	for _, dir := range AllDirections() {
		if r.Neighbor(dir) != nil {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Neighbors returns all non-nil adjacent rooms in menu order
func (r *Room) Neighbors() []*Room {
	var neighbors []*Room
	for _, dir := range AllDirections() {
		if n := r.Neighbor(dir); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
