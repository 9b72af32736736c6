package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state of the running scene.
type PauseData struct {
	IsPaused bool
	// Set while a level up card is being chosen. The pause toggle is
	// ignored meanwhile.
	Upgrading bool
}

// Frozen reports whether gameplay is stopped for any reason.
func (p *PauseData) Frozen() bool {
	return p.IsPaused || p.Upgrading
}

var Pause = donburi.NewComponentType[PauseData]()
