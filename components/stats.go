package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// PlayerStatsData holds the player parameters that level up cards improve.
// Max health lives in HealthData.
type PlayerStatsData struct {
	MoveSpeed        float64
	ProjectileSpeed  float64
	ProjectileDamage float64
	ProjectilePierce int
	ReloadTime       time.Duration
}

var PlayerStats = donburi.NewComponentType[PlayerStatsData]()
