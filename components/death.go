package components

import "github.com/yohamta/donburi"

// LifecycleState is the death stage of an entity. Living entities carry no
// Death component at all.
type LifecycleState int

const (
	// Dying plays the death animation; the entity no longer collides.
	Dying LifecycleState = iota
	// Dead is set once the death animation wrapped. The entity is removed
	// on the same tick.
	Dead
)

func (s LifecycleState) String() string {
	if s == Dead {
		return "dead"
	}
	return "dying"
}

type DeathData struct {
	State    LifecycleState
	Reported bool // death event already emitted
}

var Death = donburi.NewComponentType[DeathData]()
