// Package weather classifies a simulated day from the relative geometry of
// the three orbiting bodies and the center.
package weather

import (
	"planet-weather/internal/model"
	"planet-weather/internal/orbit"
)

// Classifier applies the Drought, Optimal, Rain decision chain; the first
// match wins and anything else is Undefined.
type Classifier struct {
	center model.Position
}

func NewClassifier(center model.Body) *Classifier {
	return &Classifier{center: model.NewPosition(center, 0)}
}

// Classify reads the positions in day slot order.
func (c *Classifier) Classify(p [3]model.Position) model.Category {
	switch {
	case IsDrought(p):
		return model.Drought
	case c.IsOptimal(p):
		return model.Optimal
	case c.IsRain(p):
		return model.Rain
	default:
		return model.Undefined
	}
}

// IsDrought holds when every body is aligned with the center.
func IsDrought(p [3]model.Position) bool {
	return orbit.SymmetricOpposite(p[0], p[1]) && orbit.SymmetricOpposite(p[1], p[2])
}

// IsOptimal holds when the bodies are aligned with each other on a line that
// misses the center.
func (c *Classifier) IsOptimal(p [3]model.Position) bool {
	return orbit.Collinear(p[0], p[1], p[2]) && !orbit.Collinear(p[0], c.center, p[1])
}

func (c *Classifier) IsRain(p [3]model.Position) bool {
	return !sameQuadrant(p) && !sameHemisphere(p) && c.centerInside(p)
}

func sameQuadrant(p [3]model.Position) bool {
	q := orbit.QuadrantOf(p[0])
	return q == orbit.QuadrantOf(p[1]) && q == orbit.QuadrantOf(p[2])
}

func sameHemisphere(p [3]model.Position) bool {
	for _, in := range []func(model.Position) bool{orbit.North, orbit.South, orbit.East, orbit.West} {
		if in(p[0]) && in(p[1]) && in(p[2]) {
			return true
		}
	}
	return false
}

// centerInside picks the first body that has a partner in the opposite
// quadrant as apex and runs the slope test from there. This is a half-plane
// approximation, not a point-in-triangle test.
func (c *Classifier) centerInside(p [3]model.Position) bool {
	switch {
	case orbit.OppositeQuadrants(p[0], p[1]) || orbit.OppositeQuadrants(p[0], p[2]):
		return c.centerBetweenSlopes(p[0], p[1], p[2])
	case orbit.OppositeQuadrants(p[1], p[0]) || orbit.OppositeQuadrants(p[1], p[2]):
		return c.centerBetweenSlopes(p[1], p[0], p[2])
	case orbit.OppositeQuadrants(p[2], p[0]) || orbit.OppositeQuadrants(p[2], p[1]):
		return c.centerBetweenSlopes(p[2], p[0], p[1])
	}
	return false
}

// centerBetweenSlopes holds when slope(apex, first) > slope(apex, center) > slope(apex, second).
// Any undefined slope fails the test.
func (c *Classifier) centerBetweenSlopes(apex, first, second model.Position) bool {
	toCenter, err := orbit.Slope(apex, c.center)
	if err != nil {
		return false
	}
	toFirst, err := orbit.Slope(apex, first)
	if err != nil {
		return false
	}
	toSecond, err := orbit.Slope(apex, second)
	if err != nil {
		return false
	}
	return toFirst > toCenter && toCenter > toSecond
}
