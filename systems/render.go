package systems

import (
	"image/color"

	"github.com/automoto/quiverfall/assets"
	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp  = &ebiten.DrawImageOptions{}
	flashOp = &ebiten.DrawRectShaderOptions{}
)

// Sprites further than this off-screen are culled
const cullPadding = 64.0

// DrawAnimated renders every animated entity at the current cell of its
// sheet, centered on its collision box.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cam := cameraPosition(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		sx, sy := WorldToScreen(cam, o.Center(), width, height)
		frame := sprite.Frame()
		if frame == nil {
			// Fallback to rectangle if nothing is bound
			drawBox(screen, cam, o, cfg.White)
			return
		}

		fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
		x := sx - float64(fw)/2
		y := sy - float64(fh)/2

		// Viewport Culling
		if x+float64(fw) < -cullPadding || x > float64(width)+cullPadding ||
			y+float64(fh) < -cullPadding || y > float64(height)+cullPadding {
			return
		}

		var flash *components.FlashData
		// Skip flash for dying entities to prevent visual artifacts
		if e.HasComponent(components.Flash) && !e.HasComponent(components.Death) {
			if f := components.Flash.Get(e); f.Strength > 0 {
				flash = f
			}
		}

		if flash != nil && assets.FlashShader != nil {
			flashOp.GeoM.Reset()
			flashOp.GeoM.Translate(x, y)
			flashOp.ColorScale = sprite.Tint
			flashOp.Images[0] = frame
			flashOp.Uniforms = map[string]any{
				"FlashColor": []float32{flash.R, flash.G, flash.B},
				"Strength":   flash.Strength,
			}
			screen.DrawRectShader(fw, fh, assets.FlashShader, flashOp)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(x, y)
		drawOp.ColorScale = sprite.Tint
		if flash != nil {
			// No shader: approximate the flash with a color scale
			drawOp.ColorScale.Scale(
				lerp32(1, flash.R, flash.Strength),
				lerp32(1, flash.G, flash.Strength),
				lerp32(1, flash.B, flash.Strength),
				1,
			)
		}
		screen.DrawImage(frame, drawOp)
	})
}

// DrawProjectiles renders arrows and experience gems as filled boxes.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	cam := cameraPosition(ecs)
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		drawFilledBox(screen, cam, components.Object.Get(e), cfg.White)
	})
	tags.Drop.Each(ecs.World, func(e *donburi.Entry) {
		drawFilledBox(screen, cam, components.Object.Get(e), cfg.GemColor)
	})
}

// boxOnScreen returns the screen-space top-left corner of a y-up box.
func boxOnScreen(cam math.Vec2, o *components.ObjectData, width, height int) (float32, float32) {
	x, y := WorldToScreen(cam, math.Vec2{X: o.X, Y: o.Y + o.H}, width, height)
	return float32(x), float32(y)
}

func drawFilledBox(screen *ebiten.Image, cam math.Vec2, o *components.ObjectData, c color.Color) {
	x, y := boxOnScreen(cam, o, screen.Bounds().Dx(), screen.Bounds().Dy())
	vector.FillRect(screen, x, y, float32(o.W), float32(o.H), c, false)
}

func drawBox(screen *ebiten.Image, cam math.Vec2, o *components.ObjectData, c color.Color) {
	x, y := boxOnScreen(cam, o, screen.Bounds().Dx(), screen.Bounds().Dy())
	vector.StrokeRect(screen, x, y, float32(o.W), float32(o.H), 1, c, false)
}

func lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}
