package config

import (
	"image"
	"image/color"
	"time"
)

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	// Squared speed at which velocity-driven entities switch Idle -> Walking
	WalkThresholdSq float64
	// Size of one cell in every directional sprite sheet
	TileSize image.Point
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed  float64 // units per second
	Health float64

	// Shooting
	ProjectileSpeed  float64
	ProjectileDamage float64
	ProjectilePierce int

	// Quiver
	QuiverSize int
	ReloadTime time.Duration

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name         string
	Health       float64
	MaxSpeed     float64
	Acceleration float64

	// Contact damage dealt to the player
	ContactDamage   float64
	ContactCooldown time.Duration

	// Experience dropped on death
	Experience int

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Visual
	SpriteSheetKey string
	TintColor      color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig
	DefaultType string
}

// SpawnerConfig controls periodic enemy spawning
type SpawnerConfig struct {
	Interval    time.Duration
	MaxEnemies  int
	MinDistance float64 // spawn only this far from the player
	Candidates  int     // spawn points sampled per attempt
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	FlashDuration  time.Duration
	ProjectileSize float64
	// Projectiles are discarded once this far from where they were fired
	ProjectileRange float64
}

// DropConfig contains reward drop configuration
type DropConfig struct {
	Size           float64
	LevelUpEveryXP int
}

// UpgradeConfig controls the cards offered on level up
type UpgradeConfig struct {
	Options int // cards per level up
	// Relative odds of common, rare, epic and legendary cards
	RarityWeights [4]int

	HealthBonus  float64 // max health added, times the rarity multiplier
	DamageFactor float64
	SpeedFactor  float64
	ReloadFactor float64 // reload time is multiplied by this, divided by the rarity multiplier
	PierceBonus  int     // per rarity step
}

// SkillConfig describes the skills the player starts with
type SkillConfig struct {
	VolleyArrows   int
	VolleyCooldown time.Duration
	// Slots past the unlocked ones start locked
	UnlockedSlots int
}

// ArenaConfig describes the playfield used when no map is loaded
type ArenaConfig struct {
	Width, Height float64
	CellSize      int // resolv space cell size
	SpawnPoints   int // enemy spawn points laid on a ring
}

// CameraConfig contains camera follow settings
type CameraConfig struct {
	FollowSmoothing float64
}

// OverlayConfig holds the colors of full-screen overlays
type OverlayConfig struct {
	PauseColor    color.RGBA
	GameOverColor color.RGBA
	LevelUpColor  color.RGBA
	// Card backgrounds by rarity, common first
	CardColors [4]color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Animation AnimationConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Spawner SpawnerConfig
var Combat CombatConfig
var Drop DropConfig
var Upgrade UpgradeConfig
var Skills SkillConfig
var Arena ArenaConfig
var Camera CameraConfig
var Overlay OverlayConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawColliders bool
}

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	SlimeTint = color.RGBA{R: 120, G: 220, B: 120, A: 255}
	GemColor  = color.RGBA{R: 180, G: 100, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Animation = AnimationConfig{
		WalkThresholdSq: 2.0,
		TileSize:        image.Pt(32, 32),
	}

	Player = PlayerConfig{
		Speed:  50.0,
		Health: 10.0,

		ProjectileSpeed:  70.0,
		ProjectileDamage: 10.0,
		ProjectilePierce: 1,

		QuiverSize: 6,
		ReloadTime: 1500 * time.Millisecond,

		CollisionWidth:  5.0,
		CollisionHeight: 10.0,
	}

	slime := EnemyTypeConfig{
		Name:            "Slime",
		Health:          10.0,
		MaxSpeed:        50.0,
		Acceleration:    100.0,
		ContactDamage:   1.0,
		ContactCooldown: time.Second,
		Experience:      10,
		CollisionWidth:  6.0,
		CollisionHeight: 8.0,
		SpriteSheetKey:  "slime",
		TintColor:       SlimeTint,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Slime": slime,
		},
		DefaultType: "Slime",
	}

	Spawner = SpawnerConfig{
		Interval:    2 * time.Second,
		MaxEnemies:  10,
		MinDistance: 200.0,
		Candidates:  4,
	}

	Combat = CombatConfig{
		FlashDuration:   200 * time.Millisecond,
		ProjectileSize:  4.0,
		ProjectileRange: 600.0,
	}

	Arena = ArenaConfig{
		Width:       1280,
		Height:      720,
		CellSize:    16,
		SpawnPoints: 12,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Overlay = OverlayConfig{
		PauseColor:    color.RGBA{R: 0, G: 0, B: 0, A: 150},
		GameOverColor: color.RGBA{R: 20, G: 0, B: 0, A: 200},
		LevelUpColor:  color.RGBA{R: 0, G: 0, B: 0, A: 200},
		CardColors: [4]color.RGBA{
			{R: 70, G: 70, B: 80, A: 255},
			{R: 40, G: 80, B: 160, A: 255},
			{R: 120, G: 50, B: 160, A: 255},
			{R: 190, G: 130, B: 20, A: 255},
		},
	}

	Drop = DropConfig{
		Size:           6.0,
		LevelUpEveryXP: 100,
	}

	Upgrade = UpgradeConfig{
		Options:       3,
		RarityWeights: [4]int{50, 30, 15, 5},
		HealthBonus:   5.0,
		DamageFactor:  1.2,
		SpeedFactor:   1.2,
		ReloadFactor:  0.8,
		PierceBonus:   1,
	}

	Skills = SkillConfig{
		VolleyArrows:   8,
		VolleyCooldown: 5 * time.Second,
		UnlockedSlots:  2,
	}
}
