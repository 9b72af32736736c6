package systems

import (
	"github.com/automoto/quiverfall/components"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths reports every Dead entity exactly once and removes it from
// the world in the same tick.
func UpdateDeaths(ecs *ecs.ECS) {
	queue := GetOrCreateDeathEvents(ecs)
	var dead []*donburi.Entry

	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.State != components.Dead || death.Reported {
			return
		}
		death.Reported = true

		ev := components.DeathEvent{
			Entity: e.Entity(),
			Enemy:  e.HasComponent(tags.Enemy),
		}
		if e.HasComponent(components.Object) {
			ev.Position = components.Object.Get(e).Center()
		}
		switch {
		case ev.Enemy && e.HasComponent(components.Enemy):
			if tc := components.Enemy.Get(e).TypeConfig; tc != nil {
				ev.Experience = tc.Experience
			}
		case e.HasComponent(components.Player):
			ev.Kills = components.Player.Get(e).Kills
			if e.HasComponent(components.Experience) {
				ev.Experience = components.Experience.Get(e).Total
			}
		}
		queue.Push(ev)
		dead = append(dead, e)
	})

	for _, e := range dead {
		removeEntity(e)
	}
}

// removeEntity takes e out of the collision space and the world.
func removeEntity(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
			obj.Space = nil
		}
	}
	e.Remove()
}
