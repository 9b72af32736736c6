package factory

import (
	"github.com/automoto/quiverfall/archetypes"
	"github.com/automoto/quiverfall/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera already centered on start.
func CreateCamera(ecs *ecs.ECS, start math.Vec2) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: start})
}
