package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// MessageStateData is a singleton tracking the banner shown at the top of
// the screen
type MessageStateData struct {
	Text      string        // "" when nothing is shown
	Remaining time.Duration // display time left
}

var MessageState = donburi.NewComponentType[MessageStateData]()
