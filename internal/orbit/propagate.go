package orbit

import "planet-weather/internal/model"

// NextAngle advances prev by one day of motion and folds the result back into
// (-180, 180]. The fold is a single step: prev must already be in range and
// speed must not exceed model.MaxSpeed.
func NextAngle(prev, speed int, dir model.Direction) int {
	next := prev + speed
	if dir == model.Clockwise {
		next = prev - speed
	}
	if next > 180 {
		next = -360 + abs(next)
	}
	if next < -180 {
		next = 360 - abs(next)
	}
	if next == -180 {
		return 180
	}
	return next
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
