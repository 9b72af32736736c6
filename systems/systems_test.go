package systems

import (
	"testing"
	"time"

	"github.com/automoto/quiverfall/assets"
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/shared/leveldata"
	"github.com/automoto/quiverfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 640, 16, 16)
	return e
}

func testTextures() assets.TextureProvider {
	return assets.NewPlaceholderProvider(cfg.Animation.TileSize)
}

// step advances the clock by dt and runs each system once, in order.
func step(e *ecs.ECS, dt time.Duration, run ...ecs.System) {
	AdvanceClock(e, dt)
	for _, s := range run {
		s(e)
	}
}

func mustPlayer(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	p, err := factory.CreatePlayer(e, testTextures(), x, y)
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	return p
}

func mustEnemy(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	en, err := factory.CreateEnemy(e, testTextures(), x, y, "Slime")
	if err != nil {
		t.Fatalf("CreateEnemy: %v", err)
	}
	return en
}

// leveldataSpawns is an empty arena of the given size.
func leveldataSpawns(w, h float64) *leveldata.SpawnData {
	return &leveldata.SpawnData{MapWidth: w, MapHeight: h}
}

func spawnAt(x, y float64) leveldata.SpawnPoint {
	return leveldata.SpawnPoint{X: x, Y: y}
}

func TestClockAdvances(t *testing.T) {
	e := newTestECS(t)
	for i := 0; i < 3; i++ {
		AdvanceClock(e, 20*time.Millisecond)
	}
	clock := GetOrCreateClock(e)
	if clock.Delta != 20*time.Millisecond || clock.Elapsed != 60*time.Millisecond || clock.Tick != 3 {
		t.Errorf("clock = %+v", *clock)
	}
}

func TestClampAxis(t *testing.T) {
	cases := []struct {
		name             string
		v, screen, level float64
		want             float64
	}{
		{"inside", 500, 640, 1280, 500},
		{"left_edge", 10, 640, 1280, 320},
		{"right_edge", 1270, 640, 1280, 960},
		{"small_level", 10, 640, 400, 200},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := clampAxis(c.v, c.screen, c.level); got != c.want {
				t.Errorf("clampAxis = %v, want %v", got, c.want)
			}
		})
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	e := newTestECS(t)
	factory.CreateCamera(e, math.Vec2{X: 300, Y: 200})

	w := ScreenToWorld(e, 0, 0)
	// Top-left of the screen is up and to the left of the camera in a y-up world
	if w.X >= 300 || w.Y <= 200 {
		t.Fatalf("ScreenToWorld(0,0) = %+v", w)
	}
	sx, sy := WorldToScreen(math.Vec2{X: 300, Y: 200}, w, cfg.C.Width, cfg.C.Height)
	if sx != 0 || sy != 0 {
		t.Errorf("round trip = (%v, %v), want (0, 0)", sx, sy)
	}
}

func TestMovementClampsToArena(t *testing.T) {
	e := newTestECS(t)
	factory.CreateArena(e, leveldataSpawns(200, 200))
	p := mustPlayer(t, e, 190, 100)
	components.Velocity.Get(p).Velocity = math.Vec2{X: 1000, Y: 0}

	step(e, time.Second, UpdateMovement, UpdateObjects)

	obj := components.Object.Get(p)
	if obj.X+obj.W != 200 {
		t.Errorf("player right edge = %v, want 200", obj.X+obj.W)
	}
}

func TestMovementFreezesDying(t *testing.T) {
	e := newTestECS(t)
	en := mustEnemy(t, e, 100, 100)
	components.Velocity.Get(en).Velocity = math.Vec2{X: 50, Y: 0}
	StartDying(en)
	before := components.Object.Get(en).Center()

	step(e, time.Second, UpdateMovement)

	if got := components.Object.Get(en).Center(); got != before {
		t.Errorf("dying enemy moved from %+v to %+v", before, got)
	}
}

func TestEnemyChasesPlayer(t *testing.T) {
	e := newTestECS(t)
	mustPlayer(t, e, 300, 100)
	en := mustEnemy(t, e, 100, 100)

	for i := 0; i < 100; i++ {
		step(e, 100*time.Millisecond, UpdateEnemies)
	}
	v := components.Velocity.Get(en).Velocity
	if v.X <= 0 {
		t.Errorf("enemy velocity %+v does not point at the player", v)
	}
	limit := cfg.Enemy.Types["Slime"].MaxSpeed
	if v.X*v.X+v.Y*v.Y > limit*limit+1e-9 {
		t.Errorf("enemy speed exceeds %v: %+v", limit, v)
	}
}

func TestPauseFreezesAnimations(t *testing.T) {
	e := newTestECS(t)
	p := mustPlayer(t, e, 100, 100)
	input := getOrCreateInput(e)
	input.Current[cfg.ActionPause] = true

	UpdatePause(e)
	if !GetOrCreatePause(e).IsPaused {
		t.Fatalf("pause not toggled")
	}
	anim := components.Animator.Get(p)
	if anim.IsPlaying() {
		t.Fatalf("animator still playing while paused")
	}
	offset := anim.Cursor.Offset()
	for i := 0; i < 5; i++ {
		step(e, time.Second, UpdateAnimations)
	}
	if anim.Cursor.Offset() != offset {
		t.Errorf("paused animation advanced")
	}

	// Release, then press again to resume
	input.Previous = input.Current
	input.Current[cfg.ActionPause] = false
	UpdatePause(e)
	input.Previous = input.Current
	input.Current[cfg.ActionPause] = true
	UpdatePause(e)
	if GetOrCreatePause(e).IsPaused || !anim.IsPlaying() {
		t.Errorf("second press did not resume")
	}
}

func TestGameplayChecksSkipWhenPaused(t *testing.T) {
	e := newTestECS(t)
	calls := 0
	sys := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	sys(e)
	GetOrCreatePause(e).IsPaused = true
	sys(e)
	GetOrCreatePause(e).IsPaused = false
	startGameOver(e, 0, 0)
	sys(e)

	if calls != 1 {
		t.Errorf("system ran %d times, want 1", calls)
	}
}

func TestMessageExpires(t *testing.T) {
	e := newTestECS(t)
	ShowMessage(e, "Level 1!")
	step(e, messageDuration-time.Millisecond, UpdateMessage)
	if getOrCreateMessageState(e).Text == "" {
		t.Fatalf("message cleared early")
	}
	step(e, time.Millisecond, UpdateMessage)
	if getOrCreateMessageState(e).Text != "" {
		t.Errorf("message still shown after its duration")
	}
}

func TestRunRecordMerge(t *testing.T) {
	cases := []struct {
		name      string
		record    RunRecord
		kills, xp int
		wantBest  bool
		wantKills int
	}{
		{"first_run", RunRecord{}, 3, 30, true, 3},
		{"worse_run", RunRecord{BestKills: 5, BestExperience: 50}, 3, 30, false, 5},
		{"more_xp", RunRecord{BestKills: 5, BestExperience: 50}, 1, 60, true, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := c.record
			if got := r.Merge(c.kills, c.xp); got != c.wantBest {
				t.Errorf("Merge best = %t, want %t", got, c.wantBest)
			}
			if r.BestKills != c.wantKills || r.Runs != c.record.Runs+1 {
				t.Errorf("record = %+v", r)
			}
		})
	}
}
