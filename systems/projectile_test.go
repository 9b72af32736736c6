package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/systems/factory"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestProjectilePierce(t *testing.T) {
	cases := []struct {
		name      string
		pierce    int
		enemies   int
		wantHits  int
		wantSpent bool
	}{
		{"no_pierce", 0, 3, 1, true},
		{"pierce_one", 1, 3, 2, true},
		{"pierce_left_over", 5, 2, 2, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestECS(t)
			at := math.Vec2{X: 200, Y: 200}
			for i := 0; i < c.enemies; i++ {
				mustEnemy(t, e, at.X, at.Y)
			}
			shot := factory.DefaultShot()
			shot.Pierce = c.pierce
			arrow := factory.CreateProjectile(e, at, math.Vec2{X: 300, Y: 200}, shot)

			step(e, time.Millisecond, UpdateProjectiles)

			hits := 0
			components.DamageEvent.Each(e.World, func(*donburi.Entry) { hits++ })
			if hits != c.wantHits {
				t.Errorf("hit %d enemies, want %d", hits, c.wantHits)
			}
			if arrow.Valid() == c.wantSpent {
				t.Errorf("arrow valid = %t, want spent = %t", arrow.Valid(), c.wantSpent)
			}
		})
	}
}

func TestProjectileHitsEnemyOnce(t *testing.T) {
	e := newTestECS(t)
	en := mustEnemy(t, e, 200, 200)
	arrow := factory.CreateProjectile(e, math.Vec2{X: 200, Y: 200}, math.Vec2{X: 300, Y: 200}, factory.DefaultShot())
	components.Projectile.Get(arrow).Pierce = 10

	for i := 0; i < 3; i++ {
		step(e, time.Millisecond, UpdateProjectiles)
	}
	if got := components.DamageEvent.Get(en).Amount; got != cfg.Player.ProjectileDamage {
		t.Errorf("queued damage = %v, want a single hit of %v", got, cfg.Player.ProjectileDamage)
	}
}

func TestProjectileIgnoresDyingEnemies(t *testing.T) {
	e := newTestECS(t)
	en := mustEnemy(t, e, 200, 200)
	StartDying(en)
	arrow := factory.CreateProjectile(e, math.Vec2{X: 200, Y: 200}, math.Vec2{X: 300, Y: 200}, factory.DefaultShot())

	step(e, time.Millisecond, UpdateProjectiles)
	if en.HasComponent(components.DamageEvent) || !arrow.Valid() {
		t.Errorf("arrow hit a dying enemy")
	}
}

func TestProjectileRange(t *testing.T) {
	e := newTestECS(t)
	arrow := factory.CreateProjectile(e, math.Vec2{X: 10, Y: 10}, math.Vec2{X: 20, Y: 10}, factory.DefaultShot())
	travel := time.Duration(cfg.Combat.ProjectileRange/cfg.Player.ProjectileSpeed*float64(time.Second)) + time.Second

	step(e, travel, UpdateMovement, UpdateObjects, UpdateProjectiles)
	if arrow.Valid() {
		t.Errorf("arrow survived past its range")
	}
}

func TestUpdateDropsFromEvents(t *testing.T) {
	e := newTestECS(t)
	p := mustPlayer(t, e, 100, 100)
	queue := GetOrCreateDeathEvents(e)
	queue.Push(components.DeathEvent{Enemy: true, Position: math.Vec2{X: 50, Y: 60}, Experience: 10})
	queue.Push(components.DeathEvent{Enemy: true, Position: math.Vec2{X: 70, Y: 60}})

	UpdateDrops(e)

	var drops []*donburi.Entry
	tags.Drop.Each(e.World, func(d *donburi.Entry) { drops = append(drops, d) })
	if len(drops) != 1 {
		t.Fatalf("got %d drops, want 1", len(drops))
	}
	if got := components.Object.Get(drops[0]).Center(); got.X != 50 || got.Y != 60 {
		t.Errorf("drop at %+v, want (50, 60)", got)
	}
	if kills := components.Player.Get(p).Kills; kills != 2 {
		t.Errorf("kills = %d, want 2", kills)
	}
	if queue.Len() != 0 {
		t.Errorf("queue not drained")
	}
}

func TestPlayerDeathEndsRun(t *testing.T) {
	e := newTestECS(t)
	queue := GetOrCreateDeathEvents(e)
	queue.Push(components.DeathEvent{Enemy: true, Position: math.Vec2{X: 5, Y: 5}})
	queue.Push(components.DeathEvent{Kills: 4, Experience: 120})

	UpdateDrops(e)

	ent, ok := components.GameOver.First(e.World)
	if !ok {
		t.Fatalf("player death did not end the run")
	}
	over := components.GameOver.Get(ent)
	if over.Kills != 5 || over.Experience != 120 {
		t.Errorf("game over = %+v, want 5 kills and 120 xp", *over)
	}
}

func TestPickupsGrantExperience(t *testing.T) {
	e := newTestECS(t)
	p := mustPlayer(t, e, 100, 100)
	gem := factory.CreateDrop(e, math.Vec2{X: 100, Y: 100}, cfg.Drop.LevelUpEveryXP+5)
	far := factory.CreateDrop(e, math.Vec2{X: 400, Y: 400}, 10)

	UpdatePickups(e)

	xp := components.Experience.Get(p)
	if xp.Total != cfg.Drop.LevelUpEveryXP+5 || xp.Level != 1 {
		t.Errorf("experience = %+v", *xp)
	}
	if gem.Valid() {
		t.Errorf("collected gem still in the world")
	}
	if !far.Valid() {
		t.Errorf("distant gem collected")
	}
	if getOrCreateMessageState(e).Text == "" {
		t.Errorf("level up not announced")
	}
	if pending := GetOrCreateLevelUp(e).Pending; pending != 1 {
		t.Errorf("pending card choices = %d, want 1", pending)
	}
}

func TestPickupsQueueOneChoicePerLevel(t *testing.T) {
	e := newTestECS(t)
	mustPlayer(t, e, 100, 100)
	factory.CreateDrop(e, math.Vec2{X: 100, Y: 100}, 3*cfg.Drop.LevelUpEveryXP)

	UpdatePickups(e)

	if pending := GetOrCreateLevelUp(e).Pending; pending != 3 {
		t.Errorf("pending card choices = %d, want 3", pending)
	}
}

func TestPickSpawnPoint(t *testing.T) {
	player := math.Vec2{X: 0, Y: 0}
	near := []math.Vec2{{X: 10, Y: 0}, {X: 0, Y: 10}}
	far := []math.Vec2{{X: cfg.Spawner.MinDistance + 1, Y: 0}, {X: 0, Y: -cfg.Spawner.MinDistance - 1}}
	rng := rand.New(rand.NewSource(1))

	if _, ok := pickSpawnPoint(near, player, rng); ok {
		t.Errorf("picked a spawn point next to the player")
	}
	if i, ok := pickSpawnPoint(far, player, rng); !ok || i < 0 || i >= len(far) {
		t.Errorf("pickSpawnPoint = %d, %t", i, ok)
	}
}

func TestSpawnerRespectsInterval(t *testing.T) {
	e := newTestECS(t)
	mustPlayer(t, e, 0, 0)
	spawns := leveldataSpawns(640, 640)
	spawns.Enemies = append(spawns.Enemies, spawnAt(600, 600))
	factory.CreateArena(e, spawns)
	spawn := NewUpdateSpawner(testTextures(), rand.New(rand.NewSource(1)))

	step(e, cfg.Spawner.Interval-time.Millisecond, spawn)
	if n := livingEnemies(e); n != 0 {
		t.Fatalf("spawned %d enemies before the interval", n)
	}
	step(e, time.Millisecond, spawn)
	if n := livingEnemies(e); n != 1 {
		t.Fatalf("spawned %d enemies after the interval, want 1", n)
	}
}
