package components

import "github.com/yohamta/donburi"

// DropData is an experience gem left behind by a dead enemy.
type DropData struct {
	Experience int
}

var Drop = donburi.NewComponentType[DropData]()
