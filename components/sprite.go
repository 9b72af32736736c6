package components

import (
	"github.com/automoto/quiverfall/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	animations.Sprite
	Tint ebiten.ColorScale // cached per-type color tint
}

var Sprite = donburi.NewComponentType[SpriteData]()
