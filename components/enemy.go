package components

import (
	"time"

	"github.com/automoto/quiverfall/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Slime" etc...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
}

var Enemy = donburi.NewComponentType[EnemyData]()

// ContactDamageData hurts the player on overlap, at most once per Cooldown.
type ContactDamageData struct {
	Damage    float64
	Cooldown  time.Duration
	Remaining time.Duration
}

var ContactDamage = donburi.NewComponentType[ContactDamageData]()
