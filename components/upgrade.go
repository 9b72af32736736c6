package components

import (
	"math"
	"time"

	cfg "github.com/automoto/quiverfall/config"
	"github.com/yohamta/donburi"
)

// CardKind is the player parameter a level up card improves.
type CardKind int

const (
	IncreaseHealth CardKind = iota
	IncreaseDamage
	IncreaseSpeed
	IncreaseReloadRate
	IncreasePenetration
	CardKindCount // Must be last
)

func (k CardKind) String() string {
	switch k {
	case IncreaseHealth:
		return "Vitality"
	case IncreaseDamage:
		return "Sharpened Tips"
	case IncreaseSpeed:
		return "Light Boots"
	case IncreaseReloadRate:
		return "Quick Hands"
	case IncreasePenetration:
		return "Piercing Shot"
	}
	return "Unknown"
}

func (k CardKind) Description() string {
	switch k {
	case IncreaseHealth:
		return "Increase your maximum health."
	case IncreaseDamage:
		return "Increase your damage output."
	case IncreaseSpeed:
		return "Increase your movement speed."
	case IncreaseReloadRate:
		return "Decrease your reload time."
	case IncreasePenetration:
		return "Increase projectile penetration."
	}
	return ""
}

type CardRarity int

const (
	Common CardRarity = iota
	Rare
	Epic
	Legendary
)

func (r CardRarity) String() string {
	switch r {
	case Rare:
		return "Rare"
	case Epic:
		return "Epic"
	case Legendary:
		return "Legendary"
	}
	return "Common"
}

// Multiplier scales the fractional bonuses of a card.
func (r CardRarity) Multiplier() float64 {
	switch r {
	case Rare:
		return 1.2
	case Epic:
		return 1.5
	case Legendary:
		return 2.0
	}
	return 1.0
}

// Steps scales the whole-number bonuses of a card.
func (r CardRarity) Steps() int {
	return int(r) + 1
}

type Card struct {
	Kind   CardKind
	Rarity CardRarity
}

// Apply improves the player's parameters. Health cards raise the current
// health along with the maximum.
func (c Card) Apply(stats *PlayerStatsData, health *HealthData) {
	m := c.Rarity.Multiplier()
	switch c.Kind {
	case IncreaseHealth:
		bonus := cfg.Upgrade.HealthBonus * m
		health.Max += bonus
		health.Current += bonus
	case IncreaseDamage:
		stats.ProjectileDamage *= cfg.Upgrade.DamageFactor * m
	case IncreaseSpeed:
		stats.MoveSpeed *= cfg.Upgrade.SpeedFactor * m
	case IncreaseReloadRate:
		stats.ReloadTime = time.Duration(math.Round(float64(stats.ReloadTime) * cfg.Upgrade.ReloadFactor / m))
	case IncreasePenetration:
		stats.ProjectilePierce += cfg.Upgrade.PierceBonus * c.Rarity.Steps()
	}
}

// LevelUpData tracks level ups waiting for a card choice. While Options is
// non-empty the cards are on screen and play is frozen.
type LevelUpData struct {
	Pending  int
	Options  []Card
	Selected int
	// Screen cursor position seen last tick, so hovering only moves the
	// selection when the mouse moves
	LastCursor [2]int
}

func (l *LevelUpData) Choosing() bool {
	return len(l.Options) > 0
}

var LevelUp = donburi.NewComponentType[LevelUpData]()
