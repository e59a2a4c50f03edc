package orbit

import (
	"errors"
	"math"

	"planet-weather/internal/model"

	"github.com/shopspring/decimal"
)

// ErrUndefinedSlope is returned when two points share the same x coordinate.
var ErrUndefinedSlope = errors.New("slope undefined: points share the same x coordinate")

// Quadrant is one of the four open 90° sectors, or OnAxis at their boundaries.
type Quadrant int

const (
	OnAxis Quadrant = iota
	First
	Second
	Third
	Fourth
)

func (q Quadrant) String() string {
	switch q {
	case First:
		return "Q1"
	case Second:
		return "Q2"
	case Third:
		return "Q3"
	case Fourth:
		return "Q4"
	default:
		return "ON_AXIS"
	}
}

// floorTo floors v to the given number of decimal places toward negative
// infinity, working on the shortest decimal representation of v.
func floorTo(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).RoundFloor(places).Float64()
	return f
}

// Cartesian converts a position to floored planar coordinates.
func Cartesian(p model.Position) model.Point {
	rad := float64(p.Degrees()) * (math.Pi / 180)
	r := p.Body().Radius
	return model.Point{
		X: floorTo(math.Cos(rad)*r, 0),
		Y: floorTo(math.Sin(rad)*r, 0),
	}
}

// Slope returns the slope of the line through a and b floored to one decimal.
func Slope(a, b model.Position) (float64, error) {
	pa, pb := Cartesian(a), Cartesian(b)
	dx := pa.X - pb.X
	if dx == 0 {
		return 0, ErrUndefinedSlope
	}
	return floorTo((pa.Y-pb.Y)/dx, 1), nil
}

// QuadrantOf classifies the normalized angle. Exactly 180 counts as Q3.
func QuadrantOf(p model.Position) Quadrant {
	deg := p.Degrees()
	switch {
	case deg > 0 && deg < 90:
		return First
	case deg > 90 && deg < 180:
		return Second
	case (deg > -180 && deg < -90) || deg == 180:
		return Third
	case deg > -90 && deg < 0:
		return Fourth
	default:
		return OnAxis
	}
}

func North(p model.Position) bool {
	q := QuadrantOf(p)
	return q == First || q == Second
}

func South(p model.Position) bool {
	q := QuadrantOf(p)
	return q == Third || q == Fourth
}

func East(p model.Position) bool {
	q := QuadrantOf(p)
	return q == First || q == Fourth
}

func West(p model.Position) bool {
	q := QuadrantOf(p)
	return q == Second || q == Third
}

// OppositeQuadrants reports whether a and b sit in diagonally opposite quadrants.
func OppositeQuadrants(a, b model.Position) bool {
	qa, qb := QuadrantOf(a), QuadrantOf(b)
	return (qa == First && qb == Third) ||
		(qa == Second && qb == Fourth) ||
		(qa == Third && qb == First) ||
		(qa == Fourth && qb == Second)
}

// SymmetricOpposite reports whether a and b are collinear with the center,
// either on the same ray or on opposite rays.
func SymmetricOpposite(a, b model.Position) bool {
	da, db := a.Degrees(), b.Degrees()
	return da == db ||
		(da == 0 && db == 180) ||
		(da > 0 && db == da-180) ||
		(da < 0 && db == da+180)
}

// Collinear compares the floored slopes a->b and a->c for exact equality.
// Two undefined slopes share the vertical line through a; one undefined
// slope never matches a defined one.
func Collinear(a, b, c model.Position) bool {
	ab, errAB := Slope(a, b)
	ac, errAC := Slope(a, c)
	if errAB != nil || errAC != nil {
		return errAB != nil && errAC != nil
	}
	return ab == ac
}

// Perimeter is the sum of the three pairwise distances between the floored points.
func Perimeter(a, b, c model.Position) float64 {
	pa, pb, pc := Cartesian(a), Cartesian(b), Cartesian(c)
	return math.Hypot(pa.X-pb.X, pa.Y-pb.Y) +
		math.Hypot(pa.X-pc.X, pa.Y-pc.Y) +
		math.Hypot(pb.X-pc.X, pb.Y-pc.Y)
}
