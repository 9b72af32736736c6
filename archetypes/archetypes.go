package archetypes

import (
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Animated is the bundle every directionally animated entity carries.
	Animated = newArchetype(
		components.Animator,
		components.Sprite,
		components.Object,
		components.Velocity,
	)
	Player = newArchetype(
		tags.Player,
		tags.VelocityStateTransition,
		components.Player,
		components.Health,
		components.Experience,
		components.Flash,
		components.PlayerStats,
		components.Quiver,
		components.SkillSlots,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Health,
		components.ContactDamage,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Velocity,
	)
	Drop = newArchetype(
		tags.Drop,
		components.Drop,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Arena = newArchetype(
		components.Arena,
		components.Spawner,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Events = newArchetype(
		components.DeathEvents,
	)
	LevelUp = newArchetype(
		components.LevelUp,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

// Components returns the archetype's components, for layering onto another
// archetype's Spawn.
func (a *archetype) Components() []donburi.IComponentType {
	return a.components
}
