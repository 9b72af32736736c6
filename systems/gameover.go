package systems

import (
	"fmt"

	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger swaps the running scene
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// startGameOver ends the run once. The result is merged into the stored run
// record.
func startGameOver(e *ecs.ECS, kills, experience int) {
	if _, ok := components.GameOver.First(e.World); ok {
		return
	}

	newBest := false
	if record, err := LoadRunRecord(); err == nil {
		newBest = record.Merge(kills, experience)
		_ = SaveRunRecord(record)
	}

	ent := e.World.Entry(e.World.Create(components.GameOver))
	components.GameOver.SetValue(ent, components.GameOverData{
		Kills:      kills,
		Experience: experience,
		NewBest:    newBest,
	})
}

// IsGameOver reports whether the run has ended
func IsGameOver(e *ecs.ECS) bool {
	_, ok := components.GameOver.First(e.World)
	return ok
}

// NewUpdateGameOver creates an UpdateGameOver system that restarts the arena
// on attack once the run has ended
func NewUpdateGameOver(sceneChanger SceneChanger, createArenaScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if !IsGameOver(e) {
			return
		}
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionAttack).JustPressed {
			sceneChanger.ChangeScene(createArenaScene())
		}
	}
}

// DrawGameOver renders the game over overlay
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	ent, ok := components.GameOver.First(e.World)
	if !ok {
		return
	}
	gameOver := components.GameOver.Get(ent)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Overlay.GameOverColor,
		false,
	)

	lines := []string{
		"YOU DIED",
		fmt.Sprintf("Kills: %d", gameOver.Kills),
		fmt.Sprintf("Experience: %d", gameOver.Experience),
	}
	if gameOver.NewBest {
		lines = append(lines, "New best!")
	}
	lines = append(lines, "", "Attack to try again")

	drawCenteredLines(screen, lines)
}

// drawCenteredLines prints lines in the middle of the screen with the debug
// font
func drawCenteredLines(screen *ebiten.Image, lines []string) {
	const charWidth, lineHeight = 6, 16
	width := screen.Bounds().Dx()
	startY := (screen.Bounds().Dy() - len(lines)*lineHeight) / 2
	for i, line := range lines {
		x := (width - len(line)*charWidth) / 2
		ebitenutil.DebugPrintAt(screen, line, x, startY+i*lineHeight)
	}
}
