package systems

import (
	"log"
	"math/rand"

	"github.com/automoto/quiverfall/assets"
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/systems/factory"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewUpdateSpawner creates the enemy spawner system. Every interval it
// samples a few spawn points and uses the first one far enough from the
// player, as long as the enemy cap allows.
func NewUpdateSpawner(textures assets.TextureProvider, rng *rand.Rand) ecs.System {
	return func(ecs *ecs.ECS) {
		arenaEntry, ok := components.Spawner.First(ecs.World)
		if !ok {
			return
		}
		spawner := components.Spawner.Get(arenaEntry)
		spawner.Elapsed += delta(ecs)
		if spawner.Elapsed < cfg.Spawner.Interval {
			return
		}
		spawner.Elapsed -= cfg.Spawner.Interval

		if len(spawner.Points) == 0 || livingEnemies(ecs) >= cfg.Spawner.MaxEnemies {
			return
		}
		playerEntry, ok := tags.Player.First(ecs.World)
		if !ok || !IsAlive(playerEntry) {
			return
		}
		playerPos := components.Object.Get(playerEntry).Center()

		i, ok := pickSpawnPoint(spawner.Points, playerPos, rng)
		if !ok {
			return
		}
		p := spawner.Points[i]
		if _, err := factory.CreateEnemy(ecs, textures, p.X, p.Y, spawner.EnemyTypes[i]); err != nil {
			log.Printf("Warning: Could not spawn enemy: %v", err)
		}
	}
}

// pickSpawnPoint samples up to cfg.Spawner.Candidates points and returns the
// first one at least MinDistance from the player.
func pickSpawnPoint(points []math.Vec2, player math.Vec2, rng *rand.Rand) (int, bool) {
	minSq := cfg.Spawner.MinDistance * cfg.Spawner.MinDistance
	for n := 0; n < cfg.Spawner.Candidates; n++ {
		i := rng.Intn(len(points))
		dx, dy := points[i].X-player.X, points[i].Y-player.Y
		if dx*dx+dy*dy >= minSq {
			return i, true
		}
	}
	return 0, false
}

func livingEnemies(ecs *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			n++
		}
	})
	return n
}
