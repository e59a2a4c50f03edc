package model

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is the sense of rotation of an orbiting body, seen from above the orbital plane.
type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counter-clockwise"
)

// ParseDirection accepts the canonical names plus the common cw/ccw shorthands.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clockwise", "cw":
		return Clockwise, nil
	case "counter-clockwise", "counterclockwise", "anticlockwise", "ccw":
		return CounterClockwise, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// MaxSpeed bounds the angular speed so that a single propagation step can
// leave (-180, 180] by at most one turn.
const MaxSpeed = 180

// Body names of the fixed system.
const (
	Ferengi   = "FERENGI"
	Betasoide = "BETASOIDE"
	Vulcano   = "VULCANO"
	Sun       = "SOL"
)

// Body is one of the orbiting bodies or the fixed center.
// Units:
// - Radius: km from the center
// - Speed: degrees per day (orbiting bodies only)
type Body struct {
	Name      string
	Radius    float64
	Speed     int
	Direction Direction
}

func (b Body) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return errors.New("body name is required")
	}
	if b.Radius < 0 {
		return fmt.Errorf("body %s: radius must be >= 0", b.Name)
	}
	if b.Speed < 1 || b.Speed > MaxSpeed {
		return fmt.Errorf("body %s: speed must be in [1, %d] degrees/day", b.Name, MaxSpeed)
	}
	if b.Direction != Clockwise && b.Direction != CounterClockwise {
		return fmt.Errorf("body %s: direction must be %q or %q", b.Name, Clockwise, CounterClockwise)
	}
	return nil
}

// DefaultBodies returns the fixed three-body system in day slot order.
// The weather predicates read the slots positionally, so the order matters.
func DefaultBodies() [3]Body {
	return [3]Body{
		{Name: Betasoide, Radius: 2000, Speed: 3, Direction: Clockwise},
		{Name: Ferengi, Radius: 500, Speed: 1, Direction: Clockwise},
		{Name: Vulcano, Radius: 1000, Speed: 5, Direction: CounterClockwise},
	}
}

// Center is the fixed central body at the origin.
func Center() Body {
	return Body{Name: Sun}
}
