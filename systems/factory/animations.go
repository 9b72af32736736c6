package factory

import (
	"fmt"

	"github.com/automoto/quiverfall/archetypes"
	"github.com/automoto/quiverfall/assets"
	"github.com/automoto/quiverfall/assets/animations"
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// AnimatedConfig describes a directionally animated entity.
type AnimatedConfig struct {
	Key           string // key into cfg.DirectionalAnimations and the texture provider
	Initial       cfg.StateID
	Position      math.Vec2 // center of the collision box, world space
	Width, Height float64
	ResolvTags    []string
}

// CreateAnimated spawns the animated bundle (animator, sprite, collision
// object, velocity) plus extra components. Nothing is spawned when the
// initial state cannot be bound.
func CreateAnimated(ecs *ecs.ECS, textures assets.TextureProvider, ac AnimatedConfig, extra ...donburi.IComponentType) (*donburi.Entry, error) {
	def, ok := cfg.DirectionalAnimations[ac.Key]
	if !ok {
		return nil, fmt.Errorf("spawn %s: %w: no animation descriptor", ac.Key, animations.ErrMissingLayout)
	}

	anim, sprite, err := animations.NewAnimator(
		assets.LoadTextures(textures, ac.Key, def),
		def,
		ac.Initial,
		cfg.Animation.TileSize,
	)
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", ac.Key, err)
	}

	entry := archetypes.Animated.Spawn(ecs, extra...)
	components.Animator.Set(entry, anim)
	components.Sprite.SetValue(entry, components.SpriteData{Sprite: sprite})

	obj := resolv.NewObject(ac.Position.X-ac.Width/2, ac.Position.Y-ac.Height/2, ac.Width, ac.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, ac.Width, ac.Height))
	obj.AddTags(ac.ResolvTags...)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return entry, nil
}
