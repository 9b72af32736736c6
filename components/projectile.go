package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Damage float64
	// Remaining enemies this projectile can pass through after the first hit
	Pierce   int
	Origin   math.Vec2
	MaxRange float64
	// Enemies already struck; each is hit at most once
	Hit map[donburi.Entity]struct{}
}

var Projectile = donburi.NewComponentType[ProjectileData]()
