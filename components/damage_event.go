package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on a victim and consumed by the combat system.
type DamageEventData struct {
	Amount float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
