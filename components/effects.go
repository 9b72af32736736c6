package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tints an entity after it takes a hit. Tween runs the tint
// strength from 1 back to 0.
type FlashData struct {
	Tween    *gween.Tween
	Strength float32
	R, G, B  float32 // color the sprite is pushed toward
}

var Flash = donburi.NewComponentType[FlashData]()
