package engine

import (
	"fmt"
	"strings"
)

// ParseColour maps a colour name to its value, case-insensitively
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "yellow":
		return Yellow, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	case "grey", "gray":
		return Grey, nil
	case "white":
		return White, nil
	}
	return 0, fmt.Errorf("unknown colour %q", s)
}

// ParseDestination maps a port name to its value, case-insensitively
func ParseDestination(s string) (Destination, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "london":
		return London, nil
	case "malmo":
		return Malmo, nil
	case "norway":
		return Norway, nil
	case "hamburg":
		return Hamburg, nil
	case "copenhagen":
		return Copenhagen, nil
	}
	return 0, fmt.Errorf("unknown destination %q", s)
}

// ParseSide maps a side name to its value. An empty string means the
// left side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}
