package systems

import (
	"github.com/automoto/quiverfall/components"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates velocity over the tick. Characters are kept
// inside the arena; projectiles are not. Run UpdateObjects afterwards.
func UpdateMovement(ecs *ecs.ECS) {
	dt := delta(ecs).Seconds()
	width, height, bounded := arenaBounds(ecs)

	components.Velocity.Each(ecs.World, func(e *donburi.Entry) {
		// Dying entities freeze in place while the death animation plays
		if e.HasComponent(components.Death) || !e.HasComponent(components.Object) {
			return
		}
		vel := components.Velocity.Get(e).Velocity
		obj := components.Object.Get(e)

		obj.X += vel.X * dt
		obj.Y += vel.Y * dt

		if bounded && !e.HasComponent(tags.Projectile) {
			obj.X = clamp(obj.X, 0, width-obj.W)
			obj.Y = clamp(obj.Y, 0, height-obj.H)
		}
	})
}

// arenaBounds returns the playfield size, if the scene has an arena.
func arenaBounds(ecs *ecs.ECS) (width, height float64, ok bool) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	arena := components.Arena.Get(arenaEntry)
	return arena.Width, arena.Height, arena.Width > 0 && arena.Height > 0
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
