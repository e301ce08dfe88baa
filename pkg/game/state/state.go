// Package state holds the per-playthrough session record: where the
// player is, which keys they hold, and which friends remain hidden.
package state

import (
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"spookymanor/pkg/engine/world"
)

// KeySet is the set of room keys the player has collected
type KeySet = mapset.Set[*world.Room]

// Session represents one playthrough. Each session owns its state;
// nothing is process-wide, so independent sessions never interfere.
type Session struct {
	CurrentRoom *world.Room

	// Keys collected so far. A key is the destination room itself;
	// holding it grants passage into that room while it stays locked.
	Keys KeySet

	// A registered friend's name lives in exactly one of these two
	// lists at any time.
	RemainingFriends []string
	FoundFriends     []string

	// Messages produced by the last action, drained by the driver.
	Messages []string

	Logger *zap.Logger
}

// NewSession creates an empty session with a no-op logger
func NewSession() *Session {
	return &Session{
		Keys:   mapset.New[*world.Room](),
		Logger: zap.NewNop(),
	}
}

// SetCurrentRoom places the player in the given room
func (s *Session) SetCurrentRoom(room *world.Room) {
	s.CurrentRoom = room
}

// GetCurrentRoom returns the room the player currently occupies
func (s *Session) GetCurrentRoom() *world.Room {
	return s.CurrentRoom
}

// CollectKey adds a room key to the session. Returns false if the key
// was already held.
func (s *Session) CollectKey(room *world.Room) bool {
	if s.Keys.Has(room) {
		return false
	}
	s.Keys.Put(room)
	return true
}

// HasKey reports whether the player holds the key for the given room
func (s *Session) HasKey(room *world.Room) bool {
	return s.Keys.Has(room)
}

// PlaceFriend hides a friend in the given room and registers the name
// with this session. Registration happens during world building,
// before the session starts consuming friends.
func (s *Session) PlaceFriend(room *world.Room, name string) {
	room.AddFriend(name)
	s.RemainingFriends = append(s.RemainingFriends, name)
}

// FindFriend moves a name from the remaining list to the found list.
// Returns false if the name was not registered or already found.
func (s *Session) FindFriend(name string) bool {
	for i, remaining := range s.RemainingFriends {
		if remaining == name {
			s.RemainingFriends = append(s.RemainingFriends[:i], s.RemainingFriends[i+1:]...)
			s.FoundFriends = append(s.FoundFriends, name)
			return true
		}
	}
	return false
}

// RemainingFriendCount returns how many friends are still hidden
func (s *Session) RemainingFriendCount() int {
	return len(s.RemainingFriends)
}

// AddMessage appends a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)
}

// DrainMessages returns the pending messages and clears the log
func (s *Session) DrainMessages() []string {
	msgs := s.Messages
	s.Messages = nil
	return msgs
}
