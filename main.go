package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/quiverfall/assets"
	"github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/scenes"
	"github.com/automoto/quiverfall/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.ArenaOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	animationsPath := flag.String("animations", "", "YAML file overriding the built-in animation descriptors")
	mapPath := flag.String("map", "", "Tiled map with PlayerSpawn and EnemySpawn object groups")
	builtinMap := flag.Bool("builtin-map", true, "use the embedded arena map when -map is not set")
	debug := flag.Bool("debug", false, "draw collision boxes")
	flag.Parse()

	config.Debug.DrawColliders = *debug

	if *animationsPath != "" {
		dir, file := filepath.Split(*animationsPath)
		if dir == "" {
			dir = "."
		}
		defs, err := config.LoadDirectionalAnimations(os.DirFS(dir), file)
		if err != nil {
			log.Fatalf("Failed to load animations: %v", err)
		}
		for key, def := range defs {
			config.DirectionalAnimations[key] = def
		}
	}

	opts := scenes.ArenaOptions{
		Textures: assets.NewPlaceholderProvider(config.Animation.TileSize),
		Seed:     time.Now().UnixNano(),
	}
	switch {
	case *mapPath != "":
		dir, file := filepath.Split(*mapPath)
		if dir == "" {
			dir = "."
		}
		opts.MapFS, opts.MapPath = os.DirFS(dir), file
	case *builtinMap:
		opts.MapFS, opts.MapPath = assets.LevelFS, assets.ArenaMapPath
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Quiverfall")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence for the run record
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	// Load shaders for hit flashes; sprites fall back to color scaling
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
