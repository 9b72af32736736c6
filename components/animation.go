package components

import (
	"github.com/automoto/quiverfall/assets/animations"
	"github.com/yohamta/donburi"
)

// Animator holds the whole directional animation record of an entity:
// mode, facing, cursor and frame timer are mutated together.
var Animator = donburi.NewComponentType[animations.Animator]()
