package factory

import (
	"github.com/automoto/quiverfall/archetypes"
	"github.com/automoto/quiverfall/components"
	"github.com/automoto/quiverfall/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateArena stores the spawn layout and seeds the enemy spawner with it.
func CreateArena(ecs *ecs.ECS, spawns *leveldata.SpawnData) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.Set(arena, &components.ArenaData{
		Width:  spawns.MapWidth,
		Height: spawns.MapHeight,
		Spawns: spawns,
	})

	spawner := &components.SpawnerData{
		Points:     make([]math.Vec2, 0, len(spawns.Enemies)),
		EnemyTypes: make([]string, 0, len(spawns.Enemies)),
	}
	for _, p := range spawns.Enemies {
		spawner.Points = append(spawner.Points, math.Vec2{X: p.X, Y: p.Y})
		spawner.EnemyTypes = append(spawner.EnemyTypes, p.EnemyType)
	}
	components.Spawner.Set(arena, spawner)

	return arena
}
