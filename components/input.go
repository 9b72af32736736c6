package components

import (
	cfg "github.com/automoto/quiverfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// Analog movement in world space (y-up), zero when no stick is held
	Stick math.Vec2
	// Aim is the world-space point under the cursor
	Aim    math.Vec2
	HasAim bool
	// Cursor is the mouse position in screen pixels
	Cursor [2]int
}

var Input = donburi.NewComponentType[InputData]()
