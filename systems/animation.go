package systems

import (
	"log"

	"github.com/automoto/quiverfall/assets/animations"
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDirections turns every animated entity toward its velocity.
func UpdateDirections(ecs *ecs.ECS) {
	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Velocity) {
			return
		}
		components.Animator.Get(e).Face(components.Velocity.Get(e).Velocity)
	})
}

// UpdateVelocityStates switches opted-in entities between Idle and Walking
// when their velocity changed since the last pass.
func UpdateVelocityStates(ecs *ecs.ECS) {
	tags.VelocityStateTransition.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Animator) || !e.HasComponent(components.Velocity) {
			return
		}
		vel := components.Velocity.Get(e)
		if !vel.Changed() {
			return
		}
		vel.Last = vel.Velocity
		components.Animator.Get(e).ApplyVelocity(vel.Velocity, cfg.Animation.WalkThresholdSq)
	})
}

// UpdateAnimations rebinds changed sprites and then advances their frames.
// A finished death animation marks the entity Dead.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := delta(ecs)
	var died []*donburi.Entry

	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animator.Get(e)
		sprite := &components.Sprite.Get(e).Sprite

		anim.Sync(sprite)
		if anim.Tick(dt, sprite).Died {
			died = append(died, e)
		}
	})

	for _, e := range died {
		markDead(e)
	}
}

func markDead(e *donburi.Entry) {
	if !e.HasComponent(components.Death) {
		log.Printf("Warning: entity %v finished a death animation without dying", e.Entity())
		donburi.Add(e, components.Death, &components.DeathData{State: components.Dead})
		return
	}
	components.Death.Get(e).State = components.Dead
}

// ForceMode asks e to play mode, subject to the interruption rule. It
// reports whether the mode was installed.
func ForceMode(e *donburi.Entry, mode animations.StateMode) bool {
	if !e.Valid() || !e.HasComponent(components.Animator) {
		return false
	}
	return components.Animator.Get(e).SetMode(mode)
}

// Attack plays the attack animation once, then returns to Idle or Walking
// depending on how fast e is moving.
func Attack(e *donburi.Entry) bool {
	if !e.Valid() || !e.HasComponent(components.Animator) {
		return false
	}
	if !components.Animator.Get(e).HasState(cfg.Attack) {
		return false
	}
	after := cfg.Idle
	if e.HasComponent(components.Velocity) {
		v := components.Velocity.Get(e).Velocity
		if v.X*v.X+v.Y*v.Y >= cfg.Animation.WalkThresholdSq {
			after = cfg.Walking
		}
	}
	return ForceMode(e, animations.OneShot(cfg.Attack, true, animations.ReturnTo(after)))
}

// SetAnimationsPlaying freezes or resumes every animator in the world.
func SetAnimationsPlaying(ecs *ecs.ECS, playing bool) {
	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animator.Get(e)
		if playing {
			anim.Resume()
		} else {
			anim.Pause()
		}
	})
}
