package systems

import (
	"math"

	"github.com/automoto/quiverfall/components"
	"github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player, keep the camera where it is
	}
	target := components.Object.Get(playerEntry).Center()

	// Constrain the target so the arena always fills the screen
	if width, height, ok := arenaBounds(e); ok {
		target.X = clampAxis(target.X, float64(config.C.Width), width)
		target.Y = clampAxis(target.Y, float64(config.C.Height), height)
	}

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps a camera coordinate inside the level. A level smaller than
// the screen is centered.
func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}

// ScreenToWorld converts a screen pixel into world space (y-up).
func ScreenToWorld(e *ecs.ECS, sx, sy float64) dmath.Vec2 {
	cam := cameraPosition(e)
	return dmath.Vec2{
		X: cam.X + sx - float64(config.C.Width)/2,
		Y: cam.Y - (sy - float64(config.C.Height)/2),
	}
}

// WorldToScreen converts a world point into screen pixels for a screen of
// the given size.
func WorldToScreen(cam dmath.Vec2, p dmath.Vec2, width, height int) (float64, float64) {
	return float64(width)/2 + p.X - cam.X, float64(height)/2 - (p.Y - cam.Y)
}

func cameraPosition(e *ecs.ECS) dmath.Vec2 {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return dmath.Vec2{}
	}
	return components.Camera.Get(cameraEntry).Position
}
