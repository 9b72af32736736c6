package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Aim   math.Vec2 // last non-zero aim direction
	Kills int
}

var Player = donburi.NewComponentType[PlayerData]()

// ExperienceData accumulates experience from collected drops.
type ExperienceData struct {
	Total int
	Level int
}

var Experience = donburi.NewComponentType[ExperienceData]()
