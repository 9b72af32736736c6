package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the per-tick time step. The scene sets Delta before the
// systems run; nothing reads wall-clock time.
type ClockData struct {
	Delta   time.Duration
	Elapsed time.Duration
	Tick    uint64
}

var Clock = donburi.NewComponentType[ClockData]()
