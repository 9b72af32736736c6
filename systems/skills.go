package systems

import (
	gomath "math"

	"github.com/automoto/quiverfall/components"
	cfg "github.com/automoto/quiverfall/config"
	"github.com/automoto/quiverfall/systems/factory"
	"github.com/automoto/quiverfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var skillActions = [components.SkillSlotCount]cfg.ActionID{
	cfg.ActionSkill1,
	cfg.ActionSkill2,
	cfg.ActionSkill3,
	cfg.ActionSkill4,
}

// UpdateSkills counts down skill cooldowns and fires the skills whose key
// was pressed.
func UpdateSkills(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !IsAlive(playerEntry) {
		return
	}
	slots := components.SkillSlots.Get(playerEntry)
	dt := delta(ecs)
	for i := range slots.Slots {
		if s := slots.Slots[i].Skill; s != nil {
			s.Cooldown.Tick(dt)
		}
	}

	input := getOrCreateInput(ecs)
	for i, action := range skillActions {
		if GetAction(input, action).JustPressed {
			TriggerSkill(ecs, playerEntry, i)
		}
	}
}

// TriggerSkill fires the skill in slot i of the player if it is ready and
// starts its cooldown.
func TriggerSkill(ecs *ecs.ECS, playerEntry *donburi.Entry, i int) bool {
	slots := components.SkillSlots.Get(playerEntry)
	if i < 0 || i >= len(slots.Slots) || !slots.Slots[i].Ready() {
		return false
	}
	skill := slots.Slots[i].Skill
	skill.Cooldown.Start()

	switch skill.Effect {
	case components.ArrowVolley:
		fireVolley(ecs, playerEntry, skill.ArrowCount)
	}
	return true
}

// fireVolley spreads n arrows evenly around the circle, the first one along
// the player's aim. Volleys do not use the quiver.
func fireVolley(ecs *ecs.ECS, playerEntry *donburi.Entry, n int) {
	if n <= 0 {
		return
	}
	center := components.Object.Get(playerEntry).Center()
	aim := components.Player.Get(playerEntry).Aim
	shot := shotOf(components.PlayerStats.Get(playerEntry))

	step := 2 * gomath.Pi / float64(n)
	for i := 0; i < n; i++ {
		sin, cos := gomath.Sincos(step * float64(i))
		dir := math.Vec2{X: aim.X*cos - aim.Y*sin, Y: aim.X*sin + aim.Y*cos}
		factory.CreateProjectile(ecs, center, math.Vec2{X: center.X + dir.X, Y: center.Y + dir.Y}, shot)
	}
	Attack(playerEntry)
}
