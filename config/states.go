package config

import (
	"fmt"
	"strings"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render/update layer used by every scene.
const Default ecs.LayerID = 0

// StateID identifies which texture, atlas and frame table a character uses.
type StateID int

const (
	Idle StateID = iota
	Walking
	Death
	Attack
)

const StateNone StateID = -1

// StateToFileName maps StateID to the corresponding sprite sheet name.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Walking: "walk",
	Death:   "death",
	Attack:  "attack",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ParseState resolves a sheet name (case-insensitive) back to its StateID.
func ParseState(name string) (StateID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range StateToFileName {
		if n == name {
			return id, nil
		}
	}
	// Long form used by the sheet exporter.
	if name == "walking" {
		return Walking, nil
	}
	return StateNone, fmt.Errorf("unknown character state %q", name)
}
