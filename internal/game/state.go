// Package game runs one dungeon session: levels, turns, combat, items,
// monster behaviors and the exit portal.
package game

import "fmt"

// Status is the outcome state of a session.
type Status int

const (
	// StatusPlaying means the player is alive and still in the dungeon.
	StatusPlaying Status = iota
	// StatusDead means the player died. No further turns are accepted.
	StatusDead
	// StatusWon means the player left through the open portal.
	StatusWon
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusDead:
		return "dead"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Over reports whether the session has ended.
func (s Status) Over() bool {
	return s == StatusDead || s == StatusWon
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	name := s.String()
	if name == "unknown" {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "playing":
		*s = StatusPlaying
	case "dead":
		*s = StatusDead
	case "won":
		*s = StatusWon
	default:
		return fmt.Errorf("unknown status %q", string(text))
	}
	return nil
}
