package srt

import (
	"fmt"
	"strings"
)

// Direction selects the sign of a timestamp shift.
type Direction int

const (
	// Forward is the default direction.
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// ParseDirection maps a CLI argument to a Direction. The empty string
// means the default, Forward.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	default:
		return Forward, fmt.Errorf(
			"invalid direction %q: use forward or backward", s)
	}
}
