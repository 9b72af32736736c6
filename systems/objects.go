package systems

import (
	"github.com/automoto/quiverfall/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers moved objects with their space cells. Objects
// that left the space are skipped.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil || obj.Space == nil {
			continue
		}
		obj.Update()
	}
}
