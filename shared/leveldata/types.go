// Package leveldata reads arena spawn layouts from Tiled maps.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

// SpawnData holds the spawn layout of an arena in world space (y-up).
type SpawnData struct {
	Player    SpawnPoint
	HasPlayer bool
	Enemies   []SpawnPoint
	MapWidth  float64
	MapHeight float64
}

// SpawnPoint is a spawn location. EnemyType is empty for the default type.
type SpawnPoint struct {
	X, Y      float64
	EnemyType string
}
