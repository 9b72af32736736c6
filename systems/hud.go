package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	hudGap       = 4
)

// DrawHUD renders the player's health, experience and quiver bars, the kill
// counter in the top-left corner and the skill slots along the bottom.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	xp := components.Experience.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	quiver := components.Quiver.Get(playerEntry)

	row := func(i int) float32 {
		return float32(hudMargin + i*(hudBarHeight+hudGap))
	}

	ratio := float32(0)
	if hp.Max > 0 {
		ratio = float32(hp.Current / hp.Max)
	}
	drawBar(screen, row(0), ratio, color.RGBA{40, 220, 40, 255})

	xpRatio := float32(0)
	if step := cfg.Drop.LevelUpEveryXP; step > 0 {
		xpRatio = float32(xp.Total%step) / float32(step)
	}
	drawBar(screen, row(1), xpRatio, cfg.GemColor)

	drawBar(screen, row(2), float32(quiver.Pct()), color.RGBA{160, 60, 200, 255})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d/%d", quiver.Current, quiver.Max),
		hudMargin+hudBarWidth+hudGap, int(row(2))-2)

	text := 3
	if quiver.IsReloading() {
		drawBar(screen, row(3), float32(quiver.Reload.Progress()), color.RGBA{230, 200, 40, 255})
		ebitenutil.DebugPrintAt(screen, "Reloading...", hudMargin+hudBarWidth+hudGap, int(row(3))-2)
		text = 4
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("LV %d  Kills %d", xp.Level, player.Kills),
		hudMargin, int(row(text)))

	drawSkillSlots(screen, components.SkillSlots.Get(playerEntry))
}

const skillSlotSize = 28

var skillKeys = [components.SkillSlotCount]string{"Q", "E", "F", "C"}

// drawSkillSlots draws one square per slot. A cooling skill fills up from
// the bottom; locked slots are crossed out.
func drawSkillSlots(screen *ebiten.Image, slots *components.SkillSlotsData) {
	y := float32(screen.Bounds().Dy() - hudMargin - skillSlotSize)
	for i := range slots.Slots {
		slot := &slots.Slots[i]
		x := float32(hudMargin + i*(skillSlotSize+hudGap))
		vector.FillRect(screen, x, y, skillSlotSize, skillSlotSize, color.RGBA{40, 40, 40, 255}, false)

		switch {
		case slot.Locked:
			vector.StrokeLine(screen, x, y, x+skillSlotSize, y+skillSlotSize, 2, color.RGBA{120, 40, 40, 255}, false)
			vector.StrokeLine(screen, x+skillSlotSize, y, x, y+skillSlotSize, 2, color.RGBA{120, 40, 40, 255}, false)
		case slot.Skill != nil:
			fill := float32(slot.Skill.Cooldown.Progress()) * skillSlotSize
			c := color.RGBA{70, 120, 200, 255}
			if slot.Ready() {
				c = color.RGBA{90, 170, 255, 255}
			}
			vector.FillRect(screen, x, y+skillSlotSize-fill, skillSlotSize, fill, c, false)
		}
		vector.StrokeRect(screen, x, y, skillSlotSize, skillSlotSize, 1, cfg.White, false)
		ebitenutil.DebugPrintAt(screen, skillKeys[i], int(x)+2, int(y))
	}
}

func drawBar(screen *ebiten.Image, y float32, ratio float32, fill color.Color) {
	// Background (dark gray)
	vector.FillRect(screen,
		hudMargin, y,
		hudBarWidth, hudBarHeight,
		color.RGBA{40, 40, 40, 255}, false)

	vector.FillRect(screen,
		hudMargin, y,
		hudBarWidth*ratio, hudBarHeight,
		fill, false)
}
