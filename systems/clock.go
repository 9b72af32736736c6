package systems

import (
	"time"

	"github.com/automoto/quiverfall/archetypes"
	"github.com/automoto/quiverfall/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
	}
	return components.Clock.Get(entry)
}

// AdvanceClock sets the time step for the coming tick. Scenes call it
// before ecs.Update.
func AdvanceClock(ecs *ecs.ECS, dt time.Duration) {
	clock := GetOrCreateClock(ecs)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Tick++
}

// delta is the time step of the current tick.
func delta(ecs *ecs.ECS) time.Duration {
	return GetOrCreateClock(ecs).Delta
}

// GetOrCreateDeathEvents returns the singleton death event queue.
func GetOrCreateDeathEvents(ecs *ecs.ECS) *components.DeathEventQueue {
	entry, ok := components.DeathEvents.First(ecs.World)
	if !ok {
		entry = archetypes.Events.Spawn(ecs)
	}
	return components.DeathEvents.Get(entry)
}
