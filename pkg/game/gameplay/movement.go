// Package gameplay provides the core game logic: moving between
// rooms and looking around to collect keys and find friends.
package gameplay

import (
	"go.uber.org/zap"

	"spookymanor/pkg/engine/world"
	"spookymanor/pkg/game/renderer"
	"spookymanor/pkg/game/state"
)

// MoveResult is the outcome of a move attempt
type MoveResult int

// Move outcomes. Illegal moves are values, not errors: they are
// reported to the player and leave the session unchanged.
const (
	Moved MoveResult = iota
	NoSuchRoom
	Locked
)

// String returns the string representation of a move result
func (r MoveResult) String() string {
	switch r {
	case Moved:
		return "Moved"
	case NoSuchRoom:
		return "NoSuchRoom"
	case Locked:
		return "Locked"
	default:
		return "Unknown"
	}
}

// CanEnter checks whether the player can enter the given room. A
// locked room is passable while the session holds its key; passing
// through never clears the lock, so the key is checked on every
// entry.
func CanEnter(s *state.Session, room *world.Room) bool {
	if room == nil {
		return false
	}
	if room.IsLocked() {
		return s.HasKey(room)
	}
	return true
}

// MoveDirection resolves a direction name (case-insensitive) and
// moves the player. An unparseable name reports like a missing room.
func MoveDirection(s *state.Session, direction string) MoveResult {
	dir, ok := world.ParseDirection(direction)
	if !ok {
		logMessage(s, "GT{You can't move there}")
		return NoSuchRoom
	}
	return Move(s, dir)
}

// Move attempts to relocate the player one room in the given
// direction. On failure the session is unchanged apart from the
// message explaining why.
func Move(s *state.Session, dir world.Direction) MoveResult {
	current := s.GetCurrentRoom()
	room := current.Neighbor(dir)

	if room == nil {
		logMessage(s, "GT{You can't move there}")
		s.Logger.Debug("move blocked, no room",
			zap.String("from", roomName(current)),
			zap.Stringer("direction", dir))
		return NoSuchRoom
	}

	if room.IsLocked() {
		if !s.HasKey(room) {
			logMessage(s, "\U0001F512 You turn the handle, but the door is DENIED{locked}! You need a key to enter this room.")
			s.Logger.Debug("move blocked, locked",
				zap.String("from", roomName(current)),
				zap.String("to", room.Name),
				zap.Stringer("direction", dir))
			return Locked
		}
		logMessage(s, "\U0001F5DD GOOD{ You unlocked the door with the "+room.Name+" key.}")
	}

	logMessage(s, "You walk into the "+room.Name+". DENIED{The door slams shut behind you.}\n"+room.Description)
	s.SetCurrentRoom(room)
	s.Logger.Debug("moved",
		zap.String("to", room.Name),
		zap.Stringer("direction", dir))
	return Moved
}

// LookAround reveals the current room: its description, the named
// neighbors, and anything discoverable here. Keys transfer into the
// session's key set and friends move from remaining to found; both
// are one-time pickups, so a second look finds nothing.
func LookAround(s *state.Session) {
	room := s.GetCurrentRoom()
	if room == nil {
		return
	}

	logMessage(s, room.Description)

	for _, dir := range world.AllDirections() {
		if n := room.Neighbor(dir); n != nil {
			logMessage(s, "The "+n.Name+" is to the "+dir.String()+".")
		}
	}

	if len(room.Keys) > 0 {
		logMessage(s, "")
		for _, key := range room.Keys {
			logMessage(s, "\U0001F389 PRIZE{Congratulations! As you look around, you find the "+key.Name+" key!}")
			s.CollectKey(key)
			s.Logger.Debug("key collected", zap.String("key", key.Name), zap.String("in", room.Name))
		}
		room.Keys = nil
	}

	if len(room.Friends) > 0 {
		logMessage(s, "")
		for _, friend := range room.Friends {
			logMessage(s, "\U0001F388 PRIZE{You found your friend, "+friend+"!}")
			logMessage(s, friend+" is now following you.")
			s.FindFriend(friend)
			s.Logger.Debug("friend found", zap.String("friend", friend), zap.String("in", room.Name))
		}
		room.Friends = nil
	}

	logMessage(s, "")
}

// WhereAmI reports the description of the current room
func WhereAmI(s *state.Session) {
	if room := s.GetCurrentRoom(); room != nil {
		logMessage(s, room.Description)
	}
}

// logMessage adds a formatted message to the session's message log
func logMessage(s *state.Session, msg string, a ...any) {
	s.AddMessage(renderer.FormatString(msg, a...))
}

func roomName(r *world.Room) string {
	if r == nil {
		return ""
	}
	return r.Name
}
