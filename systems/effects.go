package systems

import (
	"github.com/automoto/quiverfall/components"
	"github.com/automoto/quiverfall/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances visual effect tweens by the tick delta.
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
}

// updateFlashEffects fades hit flashes and clears finished ones
func updateFlashEffects(ecs *ecs.ECS) {
	dt := float32(delta(ecs).Seconds())
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		strength, finished := flash.Tween.Update(dt)
		flash.Strength = strength
		if finished {
			flash.Tween = nil
			flash.Strength = 0
		}
	})
}

// TriggerFlash restarts the hit flash of e.
func TriggerFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	flash.Tween = gween.New(1, 0, float32(config.Combat.FlashDuration.Seconds()), ease.OutQuad)
	flash.Strength = 1
}
