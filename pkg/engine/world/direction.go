package world

import "strings"

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	South
	East
	West
)

// AllDirections returns all valid directions in menu order
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// ParseDirection parses a direction name, ignoring case and surrounding
// whitespace. Returns false for anything that is not one of the four
// cardinal directions.
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "north":
		return North, true
	case "south":
		return South, true
	case "east":
		return East, true
	case "west":
		return West, true
	default:
		return Direction(-1), false
	}
}
