package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// VelocityData is the world-space (y-up) velocity of an entity in units per
// second. Last holds the value seen by the previous velocity-state pass.
type VelocityData struct {
	Velocity math.Vec2
	Last     math.Vec2
}

// Changed reports whether the velocity moved since the last pass.
func (v *VelocityData) Changed() bool {
	return v.Velocity != v.Last
}

var Velocity = donburi.NewComponentType[VelocityData]()
