package factory

import (
	"math"

	"github.com/automoto/quiverfall/archetypes"
	"github.com/automoto/quiverfall/components"
	"github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Shot describes how an arrow flies and hits.
type Shot struct {
	Speed  float64
	Damage float64
	Pierce int
}

// DefaultShot is the arrow of a player without upgrades.
func DefaultShot() Shot {
	return Shot{
		Speed:  config.Player.ProjectileSpeed,
		Damage: config.Player.ProjectileDamage,
		Pierce: config.Player.ProjectilePierce,
	}
}

// CreateProjectile spawns an arrow at start flying toward target.
func CreateProjectile(ecs *ecs.ECS, start, target dmath.Vec2, shot Shot) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	size := config.Combat.ProjectileSize
	obj := resolv.NewObject(start.X-size/2, start.Y-size/2, size, size, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = p
	components.Object.Set(p, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	dx := target.X - start.X
	dy := target.Y - start.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length > 0 {
		dx /= length
		dy /= length
	} else {
		dx = 1
	}

	components.Velocity.Set(p, &components.VelocityData{
		Velocity: dmath.Vec2{X: dx * shot.Speed, Y: dy * shot.Speed},
	})
	components.Projectile.Set(p, &components.ProjectileData{
		Damage:   shot.Damage,
		Pierce:   shot.Pierce,
		Origin:   start,
		MaxRange: config.Combat.ProjectileRange,
		Hit:      make(map[donburi.Entity]struct{}),
	})

	return p
}
