package systems

import (
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateQuiver starts reloads on request and refills the quiver once the
// reload time has passed. The reload time follows the player's stats.
func UpdateQuiver(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !IsAlive(playerEntry) {
		return
	}
	quiver := components.Quiver.Get(playerEntry)
	quiver.Reload.SetDuration(components.PlayerStats.Get(playerEntry).ReloadTime)

	if GetAction(getOrCreateInput(ecs), cfg.ActionReload).JustPressed {
		quiver.StartReload()
	}
	if quiver.Reload.Tick(delta(ecs)) {
		quiver.Current = quiver.Max
	}
}
