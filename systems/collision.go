package systems

import (
	"github.com/automoto/quiverfall/components"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContactDamage hurts the player when it touches an enemy whose
// contact cooldown has run out.
func UpdateContactDamage(ecs *ecs.ECS) {
	dt := delta(ecs)
	components.ContactDamage.Each(ecs.World, func(e *donburi.Entry) {
		contact := components.ContactDamage.Get(e)
		contact.Remaining -= dt
		if contact.Remaining < 0 {
			contact.Remaining = 0
		}
	})

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !IsAlive(playerEntry) {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object

	check := playerObj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}
	for _, enemyObj := range check.Objects {
		enemyEntry, ok := enemyObj.Data.(*donburi.Entry)
		if !ok || !IsAlive(enemyEntry) || !enemyEntry.HasComponent(components.ContactDamage) {
			continue
		}
		if !overlaps(playerObj, enemyObj) {
			continue
		}
		contact := components.ContactDamage.Get(enemyEntry)
		if contact.Remaining > 0 {
			continue
		}
		QueueDamage(playerEntry, contact.Damage)
		contact.Remaining = contact.Cooldown
	}
}
