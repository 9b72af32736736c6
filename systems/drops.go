package systems

import (
	"fmt"

	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/systems/factory"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDrops consumes the death events of the tick. Enemies leave an
// experience gem and count as a kill; the player's death ends the run.
func UpdateDrops(ecs *ecs.ECS) {
	events := GetOrCreateDeathEvents(ecs).Drain()
	if len(events) == 0 {
		return
	}

	var player *components.PlayerData
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player = components.Player.Get(playerEntry)
	}

	// Kills of this batch, for a player that died on the same tick
	kills := 0
	for _, ev := range events {
		if !ev.Enemy {
			startGameOver(ecs, ev.Kills+kills, ev.Experience)
			continue
		}
		kills++
		if player != nil {
			player.Kills++
		}
		if ev.Experience > 0 {
			factory.CreateDrop(ecs, ev.Position, ev.Experience)
		}
	}
}

// UpdatePickups collects every gem the player touches and queues a card
// choice for every level gained.
func UpdatePickups(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !IsAlive(playerEntry) {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object
	check := playerObj.Check(0, 0, tags.ResolvDrop)
	if check == nil {
		return
	}

	xp := components.Experience.Get(playerEntry)
	var collected []*donburi.Entry
	for _, dropObj := range check.Objects {
		dropEntry, ok := dropObj.Data.(*donburi.Entry)
		if !ok || !dropEntry.Valid() || !overlaps(playerObj, dropObj) {
			continue
		}
		xp.Total += components.Drop.Get(dropEntry).Experience
		collected = append(collected, dropEntry)
	}
	if level := levelFor(xp.Total); level > xp.Level {
		// Every level gained earns one card choice
		GetOrCreateLevelUp(ecs).Pending += level - xp.Level
		xp.Level = level
		ShowMessage(ecs, fmt.Sprintf("Level %d!", level))
	}

	for _, e := range collected {
		removeEntity(e)
	}
}

// levelFor is the player level reached with total experience.
func levelFor(total int) int {
	if cfg.Drop.LevelUpEveryXP <= 0 {
		return 0
	}
	return total / cfg.Drop.LevelUpEveryXP
}
