package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	cam := cameraPosition(ecs)

	// Draw all collision objects in the space (Entities)
	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255} // Blue
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255} // Red
		case obj.HasTags(tags.ResolvProjectile):
			c = color.RGBA{0, 255, 0, 255} // Green
		}
		drawBox(screen, cam, &components.ObjectData{Object: obj}, c)
	}

	clock := GetOrCreateClock(ecs)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  tick %d  objects %d",
		ebiten.ActualTPS(), clock.Tick, len(space.Objects())), 4, screen.Bounds().Dy()-16)
}
