package factory

import (
	"log"

	"github.com/automoto/quiverfall/archetypes"
	"github.com/automoto/quiverfall/assets"
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateEnemy(ecs *ecs.ECS, textures assets.TextureProvider, x, y float64, enemyTypeName string) (*donburi.Entry, error) {
	// Use the requested enemy type, fall back to the default if unknown
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		if enemyTypeName != "" {
			log.Printf("Warning: unknown enemy type %q, using %s", enemyTypeName, cfg.Enemy.DefaultType)
		}
		enemyTypeName = cfg.Enemy.DefaultType
		enemyType = cfg.Enemy.Types[enemyTypeName]
	}

	enemy, err := CreateAnimated(ecs, textures, AnimatedConfig{
		Key:        enemyType.SpriteSheetKey,
		Initial:    cfg.Walking,
		Position:   math.Vec2{X: x, Y: y},
		Width:      enemyType.CollisionWidth,
		Height:     enemyType.CollisionHeight,
		ResolvTags: []string{tags.ResolvEnemy},
	}, archetypes.Enemy.Components()...)
	if err != nil {
		return nil, err
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   enemyTypeName,
		TypeConfig: &enemyType,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.ContactDamage.SetValue(enemy, components.ContactDamageData{
		Damage:   enemyType.ContactDamage,
		Cooldown: enemyType.ContactCooldown,
	})

	// Pre-calculate and cache color tint
	sprite := components.Sprite.Get(enemy)
	sprite.Tint.Reset()
	if enemyType.TintColor.R != 255 || enemyType.TintColor.G != 255 || enemyType.TintColor.B != 255 || enemyType.TintColor.A != 255 {
		r := float32(enemyType.TintColor.R) / 255.0
		g := float32(enemyType.TintColor.G) / 255.0
		b := float32(enemyType.TintColor.B) / 255.0
		a := float32(enemyType.TintColor.A) / 255.0
		sprite.Tint.Scale(r, g, b, a)
	}

	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})

	return enemy, nil
}
