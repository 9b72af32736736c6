package components

import (
	"github.com/automoto/quiverfall/shared/leveldata"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Width, Height float64
	Spawns        *leveldata.SpawnData
}

var Arena = donburi.NewComponentType[ArenaData]()
