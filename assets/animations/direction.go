package animations

import (
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// Direction is one of the four diagonal facings a directional sheet provides.
type Direction int

const (
	UpLeft Direction = iota
	UpRight
	DownLeft
	DownRight
)

// DefaultDirection is the facing of a freshly spawned entity.
const DefaultDirection = DownRight

const (
	// directionEpsilon is the speed below which velocity carries no facing.
	directionEpsilon = 0.1
	// upBias is the minimum y velocity counted as "up". Anything flatter faces
	// down, so mostly horizontal movement reads as a down-facing walk.
	upBias = 0.5
)

func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "up_left"
	case UpRight:
		return "up_right"
	case DownLeft:
		return "down_left"
	case DownRight:
		return "down_right"
	}
	return "unknown"
}

// Classify maps a world-space (y-up) velocity to a facing. ok is false when
// the velocity is too small to express a preference.
func Classify(v math.Vec2) (d Direction, ok bool) {
	if speed(v) < directionEpsilon {
		return DefaultDirection, false
	}
	right := v.X >= 0
	up := v.Y >= upBias
	switch {
	case right && up:
		return UpRight, true
	case !right && up:
		return UpLeft, true
	case right:
		return DownRight, true
	default:
		return DownLeft, true
	}
}

// Follow returns the facing for velocity v, keeping d unless the new
// classification differs and the entity moves faster than the epsilon.
func (d Direction) Follow(v math.Vec2) Direction {
	next, ok := Classify(v)
	if !ok || next == d || speed(v) <= directionEpsilon {
		return d
	}
	return next
}

func speed(v math.Vec2) float64 {
	return gomath.Hypot(v.X, v.Y)
}

func speedSquared(v math.Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}
