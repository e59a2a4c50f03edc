package model

// Position is a body's angular placement in whole degrees.
type Position struct {
	angle int
	body  Body
}

func NewPosition(body Body, angle int) Position {
	return Position{angle: angle, body: body}
}

// Degrees reports the angle in (-180, 180]; a stored -180 reads as 180.
func (p Position) Degrees() int {
	if p.angle == -180 {
		return 180
	}
	return p.angle
}

func (p Position) Body() Body { return p.body }

// Point is a Cartesian coordinate pair in km.
type Point struct {
	X float64
	Y float64
}
