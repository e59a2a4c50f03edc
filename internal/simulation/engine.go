package simulation

import (
	"errors"
	"fmt"

	"planet-weather/internal/model"
	"planet-weather/internal/orbit"
	"planet-weather/internal/weather"
)

// MaxHorizonDays caps a single run at a thousand years.
const MaxHorizonDays = 365 * 1000

var ErrInvalidHorizon = errors.New("invalid horizon")

type Engine struct {
	bodies     [3]model.Body
	classifier *weather.Classifier
}

// New builds an engine over three orbiting bodies in slot order.
func New(bodies [3]model.Body) (*Engine, error) {
	for i, b := range bodies {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("slot %d: %w", i+1, err)
		}
	}
	return &Engine{
		bodies:     bodies,
		classifier: weather.NewClassifier(model.Center()),
	}, nil
}

// NewDefault builds an engine over the fixed three-body system.
func NewDefault() *Engine {
	e, err := New(model.DefaultBodies())
	if err != nil {
		panic(err)
	}
	return e
}

// Simulate runs the fixed system for totalDays.
func Simulate(totalDays int) (*Result, error) {
	return NewDefault().Run(totalDays)
}

func (e *Engine) Bodies() [3]model.Body { return e.bodies }

// Run simulates days 1..totalDays in order. Day 1 starts from a virtual day 0
// with every body at 0°.
func (e *Engine) Run(totalDays int) (*Result, error) {
	if totalDays <= 0 || totalDays > MaxHorizonDays {
		return nil, fmt.Errorf("%w: %d days, must be in [1, %d]", ErrInvalidHorizon, totalDays, MaxHorizonDays)
	}

	var prev [3]int
	t := newTally(totalDays)

	for idx := 1; idx <= totalDays; idx++ {
		var positions [3]model.Position
		for slot, b := range e.bodies {
			positions[slot] = model.NewPosition(b, orbit.NextAngle(prev[slot], b.Speed, b.Direction))
		}

		d := newDay(idx, positions)
		d.Category = e.classifier.Classify(positions)
		t.add(d)

		for slot, p := range positions {
			prev[slot] = p.Degrees()
		}
	}

	return t.result(), nil
}
