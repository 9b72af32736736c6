package components

import (
	"github.com/automoto/quiverfall/assets/animations"
	"github.com/yohamta/donburi"
)

// QuiverData is the player's ammunition. An empty quiver reloads on its own;
// a reload always refills it completely.
type QuiverData struct {
	Current int
	Max     int
	Reload  animations.Cooldown
}

func (q *QuiverData) IsReloading() bool {
	return !q.Reload.Ready()
}

// Take removes one arrow. It fails while reloading or when empty, and starts
// a reload when the last arrow leaves.
func (q *QuiverData) Take() bool {
	if q.IsReloading() || q.Current <= 0 {
		return false
	}
	q.Current--
	if q.Current == 0 {
		q.Reload.Start()
	}
	return true
}

// StartReload begins a reload unless the quiver is full or already reloading.
func (q *QuiverData) StartReload() bool {
	if q.Current >= q.Max {
		return false
	}
	return q.Reload.Start()
}

// Pct is the filled fraction of the quiver.
func (q *QuiverData) Pct() float64 {
	if q.Max <= 0 {
		return 0
	}
	return float64(q.Current) / float64(q.Max)
}

var Quiver = donburi.NewComponentType[QuiverData]()
