package systems

import (
	"time"

	"github.com/automoto/quiverfall/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

const messageDuration = 2 * time.Second

// ShowMessage replaces the current banner with text
func ShowMessage(ecs *ecs.ECS, text string) {
	state := getOrCreateMessageState(ecs)
	state.Text = text
	state.Remaining = messageDuration
}

// UpdateMessage counts down the active banner
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" {
		return
	}
	state.Remaining -= delta(ecs)
	if state.Remaining <= 0 {
		state.Text = ""
		state.Remaining = 0
	}
}

// DrawMessage renders the active banner at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" {
		return
	}
	x := (screen.Bounds().Dx() - len(state.Text)*6) / 2
	ebitenutil.DebugPrintAt(screen, state.Text, x, 24)
}

func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
