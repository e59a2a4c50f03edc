package simulation

import (
	"planet-weather/internal/model"
	"planet-weather/internal/orbit"
)

// Day is one simulated day. Positions are in slot order and are only ever
// built from propagated angles.
type Day struct {
	Index     int
	Positions [3]model.Position
	Perimeter float64
	Category  model.Category
}

func newDay(index int, positions [3]model.Position) Day {
	return Day{
		Index:     index,
		Positions: positions,
		Perimeter: orbit.Perimeter(positions[0], positions[1], positions[2]),
		Category:  model.Undefined,
	}
}

// BodyState is the externally reported view of one body on one day.
type BodyState struct {
	Body  string
	Angle int
	X     float64
	Y     float64
}

// Bodies projects the day's positions with their derived coordinates.
func (d Day) Bodies() []BodyState {
	out := make([]BodyState, 0, len(d.Positions))
	for _, p := range d.Positions {
		pt := orbit.Cartesian(p)
		out = append(out, BodyState{
			Body:  p.Body().Name,
			Angle: p.Degrees(),
			X:     pt.X,
			Y:     pt.Y,
		})
	}
	return out
}
