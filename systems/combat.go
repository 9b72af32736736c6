package systems

import (
	"github.com/automoto/quiverfall/assets/animations"
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// QueueDamage adds amount to the damage e takes on the next combat pass.
func QueueDamage(e *donburi.Entry, amount float64) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(e).Amount += amount
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{Amount: amount})
}

// UpdateCombat applies queued damage and starts the death sequence of
// anything whose health ran out.
func UpdateCombat(ecs *ecs.ECS) {
	// --------------------------------------------------------------------
	// 1. Process queued damage events
	// --------------------------------------------------------------------
	var damaged []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		damaged = append(damaged, e)
	})
	for _, e := range damaged {
		dmg := components.DamageEvent.Get(e)
		// Dying entities take no further hits.
		if e.HasComponent(components.Health) && !e.HasComponent(components.Death) {
			hp := components.Health.Get(e)
			hp.Current -= dmg.Amount
			TriggerFlash(e)
		}

		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	// --------------------------------------------------------------------
	// 2. Clamp health ranges (0..Max) and collect the newly dead
	// --------------------------------------------------------------------
	var dying []*donburi.Entry
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		if hp.Current <= 0 && !e.HasComponent(components.Death) {
			dying = append(dying, e)
		}
	})

	for _, e := range dying {
		StartDying(e)
	}
}

// StartDying moves a living entity into Dying: the death animation replaces
// whatever was playing and the entity leaves the collision space. It does
// nothing for an entity that is already dying or dead.
func StartDying(e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}
	donburi.Add(e, components.Death, &components.DeathData{State: components.Dying})

	if e.HasComponent(components.Animator) {
		components.Animator.Get(e).Force(animations.OneShot(cfg.Death, false, animations.Die()))
	}
	if e.HasComponent(components.Velocity) {
		components.Velocity.Get(e).Velocity = math.Vec2{}
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
			obj.Space = nil
		}
	}
	if e.HasComponent(components.Flash) {
		components.Flash.Get(e).Tween = nil
	}
}

// IsAlive reports whether e exists and has not started dying.
func IsAlive(e *donburi.Entry) bool {
	return e != nil && e.Valid() && !e.HasComponent(components.Death)
}
