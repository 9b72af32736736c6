package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type SpawnerData struct {
	Elapsed time.Duration
	Points  []math.Vec2
	// EnemyTypes maps spawn points to an enemy type, "" for the default
	EnemyTypes []string
}

var Spawner = donburi.NewComponentType[SpawnerData]()
