package factory

import (
	"errors"
	"testing"

	"github.com/automoto/quiverfall/assets"
	"github.com/automoto/quiverfall/assets/animations"
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func TestCreateAnimatedUnknownKey(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	_, err := CreateAnimated(e, assets.NewPlaceholderProvider(cfg.Animation.TileSize), AnimatedConfig{
		Key:     "ghost",
		Initial: cfg.Idle,
	})
	if !errors.Is(err, animations.ErrMissingLayout) {
		t.Fatalf("err = %v, want ErrMissingLayout", err)
	}
	if n := e.World.Len(); n != 0 {
		t.Errorf("failed spawn left %d entities", n)
	}
}

func TestCreateAnimatedMissingInitialState(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	// Slimes have no idle sheet
	_, err := CreateAnimated(e, assets.NewPlaceholderProvider(cfg.Animation.TileSize), AnimatedConfig{
		Key:     "slime",
		Initial: cfg.Idle,
	})
	if !errors.Is(err, animations.ErrMissingLayout) {
		t.Fatalf("err = %v, want ErrMissingLayout", err)
	}
}

func TestCreateEnemyUnknownTypeFallsBack(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 320, 320, 16, 16)
	en, err := CreateEnemy(e, assets.NewPlaceholderProvider(cfg.Animation.TileSize), 50, 60, "Dragon")
	if err != nil {
		t.Fatalf("CreateEnemy: %v", err)
	}
	if got := components.Enemy.Get(en).TypeName; got != cfg.Enemy.DefaultType {
		t.Errorf("type = %q, want %q", got, cfg.Enemy.DefaultType)
	}
	obj := components.Object.Get(en)
	if obj.Center() != (math.Vec2{X: 50, Y: 60}) || obj.Space == nil {
		t.Errorf("enemy object at %+v in space %t", obj.Center(), obj.Space != nil)
	}
	if !obj.HasTags(tags.ResolvEnemy) {
		t.Errorf("enemy object missing its collision tag")
	}
	if components.Animator.Get(en).Mode.State() != cfg.Walking {
		t.Errorf("enemy does not start walking")
	}
}

func TestCreateProjectileAimsAtTarget(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	p := CreateProjectile(e, math.Vec2{X: 0, Y: 0}, math.Vec2{X: 0, Y: 10}, DefaultShot())
	v := components.Velocity.Get(p).Velocity
	if v.X != 0 || v.Y != cfg.Player.ProjectileSpeed {
		t.Errorf("velocity = %+v, want straight up at %v", v, cfg.Player.ProjectileSpeed)
	}
}
