package weather

import (
	"testing"

	"planet-weather/internal/model"
	"planet-weather/internal/orbit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// day builds slot-ordered positions: Betasoide (r=2000), Ferengi (r=500), Vulcano (r=1000).
func day(b, f, v int) [3]model.Position {
	bodies := model.DefaultBodies()
	return [3]model.Position{
		model.NewPosition(bodies[0], b),
		model.NewPosition(bodies[1], f),
		model.NewPosition(bodies[2], v),
	}
}

func TestClassifyDrought(t *testing.T) {
	c := NewClassifier(model.Center())

	assert.Equal(t, model.Drought, c.Classify(day(0, 0, 0)))
	assert.Equal(t, model.Drought, c.Classify(day(90, -90, 90)))
	assert.Equal(t, model.Drought, c.Classify(day(0, 180, 0)))
	assert.Equal(t, model.Drought, c.Classify(day(30, -150, 30)))
}

func TestClassifyOptimal(t *testing.T) {
	c := NewClassifier(model.Center())

	// (2000,0), (0,500), (965,258): slopes from Betasoide both floor to -0.3,
	// slope to the center is 0.
	p := day(0, 90, 15)
	assert.False(t, IsDrought(p))
	assert.True(t, c.IsOptimal(p))
	assert.Equal(t, model.Optimal, c.Classify(p))
}

func TestClassifyRain(t *testing.T) {
	c := NewClassifier(model.Center())

	// Betasoide Q1 (1414,1414), Ferengi Q3 (-87,-493), Vulcano Q2 (-708,707).
	// From Betasoide: slope to Ferengi 1.2 > slope to center 1.0 > slope to Vulcano 0.3.
	p := day(45, -100, 135)
	assert.True(t, c.IsRain(p))
	assert.Equal(t, model.Rain, c.Classify(p))
}

func TestRainRejectsSameHemisphere(t *testing.T) {
	c := NewClassifier(model.Center())

	// All north of the x axis.
	assert.False(t, c.IsRain(day(45, 100, 135)))
	// All west of the y axis.
	assert.False(t, c.IsRain(day(135, -100, 170)))
}

func TestRainRejectsSameQuadrant(t *testing.T) {
	c := NewClassifier(model.Center())
	assert.False(t, c.IsRain(day(10, 20, 30)))
}

func TestRainNeedsOppositeQuadrants(t *testing.T) {
	c := NewClassifier(model.Center())
	// Q1, Q2 and on-axis: no diagonal pair.
	assert.False(t, c.IsRain(day(45, 135, -90)))
}

func TestRainRejectsVerticalSlopeFromApex(t *testing.T) {
	c := NewClassifier(model.Center())

	// Betasoide (1000,1732) in Q1 is the apex opposite Ferengi (-354,-354) in Q3.
	// Vulcano (1000,0) shares the apex x, so slope(apex, Vulcano) is undefined
	// even though the center lies inside the triangle.
	p := day(60, -135, 0)
	assert.Equal(t, model.Point{X: 1000, Y: 1732}, orbit.Cartesian(p[0]))
	assert.Equal(t, model.Point{X: 1000, Y: 0}, orbit.Cartesian(p[2]))
	_, err := orbit.Slope(p[0], p[2])
	require.ErrorIs(t, err, orbit.ErrUndefinedSlope)

	assert.False(t, c.IsRain(p))
	assert.Equal(t, model.Undefined, c.Classify(p))
}

func TestClassifyUndefined(t *testing.T) {
	c := NewClassifier(model.Center())
	assert.Equal(t, model.Undefined, c.Classify(day(10, 20, 30)))
}
