package factory

import (
	"fmt"

	"github.com/automoto/quiverfall/archetypes"
	"github.com/automoto/quiverfall/assets"
	"github.com/automoto/quiverfall/assets/animations"
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, textures assets.TextureProvider, x, y float64) (*donburi.Entry, error) {
	player, err := CreateAnimated(ecs, textures, AnimatedConfig{
		Key:        "player",
		Initial:    cfg.Idle,
		Position:   math.Vec2{X: x, Y: y},
		Width:      cfg.Player.CollisionWidth,
		Height:     cfg.Player.CollisionHeight,
		ResolvTags: []string{tags.ResolvPlayer},
	}, archetypes.Player.Components()...)
	if err != nil {
		return nil, err
	}

	components.Player.SetValue(player, components.PlayerData{
		Aim: math.Vec2{X: 1, Y: 0},
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	components.PlayerStats.SetValue(player, components.PlayerStatsData{
		MoveSpeed:        cfg.Player.Speed,
		ProjectileSpeed:  cfg.Player.ProjectileSpeed,
		ProjectileDamage: cfg.Player.ProjectileDamage,
		ProjectilePierce: cfg.Player.ProjectilePierce,
		ReloadTime:       cfg.Player.ReloadTime,
	})
	components.Quiver.SetValue(player, components.QuiverData{
		Current: cfg.Player.QuiverSize,
		Max:     cfg.Player.QuiverSize,
		Reload:  animations.NewCooldown(cfg.Player.ReloadTime),
	})
	components.SkillSlots.SetValue(player, NewSkillSlots())

	// Flash stays attached to avoid archetype thrashing; a nil tween is idle
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 0.2, B: 0.2})

	return player, nil
}

// NewSkillSlots is the starting loadout: the arrow volley in the first slot,
// empty unlocked slots after it, and locked slots past cfg.Skills.UnlockedSlots.
func NewSkillSlots() components.SkillSlotsData {
	var slots components.SkillSlotsData
	for i := range slots.Slots {
		slots.Slots[i].Locked = i >= cfg.Skills.UnlockedSlots
	}
	slots.Slots[0].Skill = &components.Skill{
		Name:        "Arrow Volley",
		Description: fmt.Sprintf("Fire %d arrows in every direction.", cfg.Skills.VolleyArrows),
		Effect:      components.ArrowVolley,
		ArrowCount:  cfg.Skills.VolleyArrows,
		Cooldown:    animations.NewCooldown(cfg.Skills.VolleyCooldown),
	}
	return slots
}
