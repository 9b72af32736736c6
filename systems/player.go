package systems

import (
	gomath "math"

	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/systems/factory"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer turns input into player velocity and fires arrows from the
// quiver. Must run AFTER UpdateInput.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !IsAlive(playerEntry) {
		return
	}
	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	vel := components.Velocity.Get(playerEntry)
	stats := components.PlayerStats.Get(playerEntry)

	move := movementInput(input)
	vel.Velocity = math.Vec2{X: move.X * stats.MoveSpeed, Y: move.Y * stats.MoveSpeed}

	center := components.Object.Get(playerEntry).Center()
	if input.HasAim {
		if dir, ok := normalize(math.Vec2{X: input.Aim.X - center.X, Y: input.Aim.Y - center.Y}); ok {
			player.Aim = dir
		}
	} else if dir, ok := normalize(move); ok {
		player.Aim = dir
	}

	if GetAction(input, cfg.ActionAttack).JustPressed && components.Quiver.Get(playerEntry).Take() {
		target := math.Vec2{X: center.X + player.Aim.X, Y: center.Y + player.Aim.Y}
		factory.CreateProjectile(ecs, center, target, shotOf(stats))
		Attack(playerEntry)
	}
}

func shotOf(stats *components.PlayerStatsData) factory.Shot {
	return factory.Shot{
		Speed:  stats.ProjectileSpeed,
		Damage: stats.ProjectileDamage,
		Pierce: stats.ProjectilePierce,
	}
}

// movementInput returns the unit-or-shorter move direction, y-up. The
// analog stick wins over digital input when it is held.
func movementInput(input *components.InputData) math.Vec2 {
	if input.Stick != (math.Vec2{}) {
		if l := gomath.Hypot(input.Stick.X, input.Stick.Y); l > 1 {
			return math.Vec2{X: input.Stick.X / l, Y: input.Stick.Y / l}
		}
		return input.Stick
	}

	var dir math.Vec2
	if input.Current[cfg.ActionMoveLeft] {
		dir.X--
	}
	if input.Current[cfg.ActionMoveRight] {
		dir.X++
	}
	if input.Current[cfg.ActionMoveUp] {
		dir.Y++
	}
	if input.Current[cfg.ActionMoveDown] {
		dir.Y--
	}
	if n, ok := normalize(dir); ok {
		return n
	}
	return math.Vec2{}
}

// normalize scales v to length 1. ok is false for the zero vector.
func normalize(v math.Vec2) (math.Vec2, bool) {
	l := gomath.Hypot(v.X, v.Y)
	if l == 0 {
		return math.Vec2{}, false
	}
	return math.Vec2{X: v.X / l, Y: v.Y / l}, true
}
