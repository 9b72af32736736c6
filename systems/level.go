package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const arenaGridStep = 64.0

var (
	arenaFloorColor = color.RGBA{24, 28, 36, 255}
	arenaGridColor  = color.RGBA{36, 42, 54, 255}
)

// DrawArena renders the arena floor with a grid so movement reads on
// screen.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h, ok := arenaBounds(ecs)
	if !ok {
		return
	}
	cam := cameraPosition(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// The top-left corner of a y-up arena is (0, h)
	x0, y0 := WorldToScreen(cam, math.Vec2{X: 0, Y: h}, width, height)
	vector.FillRect(screen, float32(x0), float32(y0), float32(w), float32(h), arenaFloorColor, false)

	for x := arenaGridStep; x < w; x += arenaGridStep {
		vector.StrokeLine(screen, float32(x0+x), float32(y0), float32(x0+x), float32(y0+h), 1, arenaGridColor, false)
	}
	for y := arenaGridStep; y < h; y += arenaGridStep {
		vector.StrokeLine(screen, float32(x0), float32(y0+y), float32(x0+w), float32(y0+y), 1, arenaGridColor, false)
	}
}
