package orbit

import (
	"testing"

	"planet-weather/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNextAngleFirstStepFromZero(t *testing.T) {
	assert.Equal(t, -1, NextAngle(0, 1, model.Clockwise))
	assert.Equal(t, -3, NextAngle(0, 3, model.Clockwise))
	assert.Equal(t, 5, NextAngle(0, 5, model.CounterClockwise))
}

func TestNextAngleFoldsBack(t *testing.T) {
	assert.Equal(t, -177, NextAngle(178, 5, model.CounterClockwise))
	assert.Equal(t, 179, NextAngle(-178, 3, model.Clockwise))
	assert.Equal(t, 180, NextAngle(-177, 3, model.Clockwise))
	assert.Equal(t, 180, NextAngle(175, 5, model.CounterClockwise))
	assert.Equal(t, -179, NextAngle(180, 1, model.CounterClockwise))
	assert.Equal(t, 179, NextAngle(180, 1, model.Clockwise))
}

func TestNextAngleStaysInRange(t *testing.T) {
	for _, dir := range []model.Direction{model.Clockwise, model.CounterClockwise} {
		for _, speed := range []int{1, 3, 5} {
			for prev := -179; prev <= 180; prev++ {
				got := NextAngle(prev, speed, dir)
				assert.True(t, got > -180 && got <= 180, "prev=%d speed=%d dir=%s got=%d", prev, speed, dir, got)
			}
		}
	}
}

func TestNextAngleFullTurnReturnsHome(t *testing.T) {
	for _, speed := range []int{1, 3, 5} {
		angle := 0
		for i := 0; i < 360; i++ {
			angle = NextAngle(angle, speed, model.Clockwise)
		}
		assert.Equal(t, 0, angle, "speed %d", speed)
	}
}
