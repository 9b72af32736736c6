package scenes

import (
	"image/color"
	"io/fs"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/quiverfall/assets"
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/shared/leveldata"
	"github.com/automoto/quiverfall/systems"
	"github.com/automoto/quiverfall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ArenaOptions selects the map and sprite sheets of an arena run.
type ArenaOptions struct {
	Textures assets.TextureProvider
	// MapFS and MapPath locate a Tiled map with spawn points. A nil MapFS
	// lays the spawn points on a ring instead.
	MapFS   fs.FS
	MapPath string
	Seed    int64
}

type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         ArenaOptions
	once         sync.Once
}

// NewArenaScene creates a new arena run
func NewArenaScene(sc SceneChanger, opts ArenaOptions) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, opts: opts}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	systems.AdvanceClock(as.ecs, time.Second/time.Duration(cfg.C.TPS))
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	rng := rand.New(rand.NewSource(as.opts.Seed))

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and game over checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateQuiver))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSkills))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMovement))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDirections))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateVelocityStates))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateContactDamage))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	// Animators are frozen through SetAnimationsPlaying while paused
	ecs.AddSystem(systems.UpdateAnimations)
	// Dying entities keep animating after the run ends, so deaths are only
	// held back by the pause
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDrops))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePickups))
	// Deals cards and freezes play by itself
	ecs.AddSystem(systems.NewUpdateLevelUp(rng))
	ecs.AddSystem(systems.WithGameplayChecks(systems.NewUpdateSpawner(as.opts.Textures, rng)))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMessage))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	createArenaScene := func() interface{} {
		return NewArenaScene(as.sceneChanger, as.opts)
	}
	ecs.AddSystem(systems.NewUpdateGameOver(as.sceneChanger, createArenaScene))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawProjectiles)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelUp)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	as.ecs = ecs

	spawns := as.loadSpawns()

	// Now create the space for collision detection using the arena's dimensions.
	factory.CreateSpace(as.ecs,
		int(spawns.MapWidth),
		int(spawns.MapHeight),
		cfg.Arena.CellSize, cfg.Arena.CellSize,
	)
	factory.CreateArena(as.ecs, spawns)

	start := math.Vec2{X: spawns.MapWidth / 2, Y: spawns.MapHeight / 2}
	if spawns.HasPlayer {
		start = math.Vec2{X: spawns.Player.X, Y: spawns.Player.Y}
	}

	// Snap camera to the player's start position to prevent panning from (0,0)
	factory.CreateCamera(as.ecs, start)

	if _, err := factory.CreatePlayer(as.ecs, as.opts.Textures, start.X, start.Y); err != nil {
		panic("failed to create player: " + err.Error())
	}

	// The first enemy arrives on the first tick
	if spawner, ok := components.Spawner.First(as.ecs.World); ok {
		components.Spawner.Get(spawner).Elapsed = cfg.Spawner.Interval
	}
}

// loadSpawns reads the configured map, falling back to a ring of spawn
// points around the center of the default arena.
func (as *ArenaScene) loadSpawns() *leveldata.SpawnData {
	if as.opts.MapFS != nil {
		spawns, err := leveldata.LoadSpawnData(as.opts.MapFS, as.opts.MapPath)
		if err == nil {
			return spawns
		}
		log.Printf("Warning: Could not load map %s: %v", as.opts.MapPath, err)
	}
	return leveldata.RingSpawnData(cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.SpawnPoints)
}
