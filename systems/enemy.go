package systems

import (
	"github.com/automoto/quiverfall/components"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateEnemies steers every living enemy toward the player.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := delta(ecs).Seconds()

	var target math.Vec2
	hasTarget := false
	if playerEntry, ok := tags.Player.First(ecs.World); ok && IsAlive(playerEntry) {
		target = components.Object.Get(playerEntry).Center()
		hasTarget = true
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		enemy := components.Enemy.Get(e)
		if enemy.TypeConfig == nil {
			return
		}
		vel := components.Velocity.Get(e)

		if !hasTarget {
			vel.Velocity = math.Vec2{}
			return
		}

		center := components.Object.Get(e).Center()
		dir, ok := normalize(math.Vec2{X: target.X - center.X, Y: target.Y - center.Y})
		if !ok {
			return
		}
		accel := enemy.TypeConfig.Acceleration * dt
		v := math.Vec2{
			X: vel.Velocity.X + dir.X*accel,
			Y: vel.Velocity.Y + dir.Y*accel,
		}
		vel.Velocity = clampLength(v, enemy.TypeConfig.MaxSpeed)
	})
}

// clampLength shortens v to at most limit.
func clampLength(v math.Vec2, limit float64) math.Vec2 {
	n, ok := normalize(v)
	if !ok {
		return v
	}
	if v.X*v.X+v.Y*v.Y <= limit*limit {
		return v
	}
	return math.Vec2{X: n.X * limit, Y: n.Y * limit}
}
