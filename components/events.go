package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DeathEvent announces that an entity finished dying at Position.
type DeathEvent struct {
	Entity   donburi.Entity
	Position math.Vec2
	Enemy    bool
	// Experience dropped by a dead enemy, or the player's total
	Experience int
	// Kills scored by the player, set on the player's event only
	Kills int
}

// DeathEventQueue collects death events during a tick. Consumers drain it
// once per tick.
type DeathEventQueue struct {
	events []DeathEvent
}

func (q *DeathEventQueue) Push(ev DeathEvent) {
	q.events = append(q.events, ev)
}

// Drain returns the queued events and empties the queue.
func (q *DeathEventQueue) Drain() []DeathEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

func (q *DeathEventQueue) Len() int {
	return len(q.events)
}

var DeathEvents = donburi.NewComponentType[DeathEventQueue]()
