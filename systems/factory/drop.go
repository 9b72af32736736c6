package factory

import (
	"github.com/automoto/quiverfall/archetypes"
	"github.com/automoto/quiverfall/components"
	"github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateDrop leaves an experience gem centered on pos.
func CreateDrop(ecs *ecs.ECS, pos math.Vec2, experience int) *donburi.Entry {
	d := archetypes.Drop.Spawn(ecs)

	size := config.Drop.Size
	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, tags.ResolvDrop)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = d
	components.Object.Set(d, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Drop.Set(d, &components.DropData{Experience: experience})
	return d
}
