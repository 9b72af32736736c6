package systems

import (
	"github.com/automoto/quiverfall/components"
	"github.com/automoto/quiverfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles resolves arrow hits and discards spent arrows. Each
// arrow hits an enemy at most once and passes through Pierce more.
func UpdateProjectiles(ecs *ecs.ECS) {
	width, height, bounded := arenaBounds(ecs)
	var arrows, spent []*donburi.Entry

	// Hits add components to enemies, so resolve them outside the query
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		arrows = append(arrows, e)
	})

	for _, e := range arrows {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)
		pos := obj.Center()

		dx, dy := pos.X-p.Origin.X, pos.Y-p.Origin.Y
		if p.MaxRange > 0 && dx*dx+dy*dy > p.MaxRange*p.MaxRange {
			spent = append(spent, e)
			continue
		}
		if bounded && (obj.X+obj.W < 0 || obj.Y+obj.H < 0 || obj.X > width || obj.Y > height) {
			spent = append(spent, e)
			continue
		}

		if hitEnemies(p, obj.Object) {
			spent = append(spent, e)
		}
	}

	for _, e := range spent {
		removeEntity(e)
	}
}

// hitEnemies damages every new enemy under the arrow. It reports whether the
// arrow is used up.
func hitEnemies(p *components.ProjectileData, obj *resolv.Object) bool {
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return false
	}
	for _, enemyObj := range check.Objects {
		enemyEntry, ok := enemyObj.Data.(*donburi.Entry)
		if !ok || !IsAlive(enemyEntry) || !overlaps(obj, enemyObj) {
			continue
		}
		if _, seen := p.Hit[enemyEntry.Entity()]; seen {
			continue
		}
		p.Hit[enemyEntry.Entity()] = struct{}{}
		QueueDamage(enemyEntry, p.Damage)

		if p.Pierce <= 0 {
			return true
		}
		p.Pierce--
	}
	return false
}

// overlaps reports whether two boxes intersect. Check only narrows the
// search to shared cells.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
