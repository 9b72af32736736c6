package components

import (
	"github.com/automoto/quiverfall/assets/animations"
	"github.com/yohamta/donburi"
)

type SkillEffect int

const (
	// ArrowVolley fires ArrowCount arrows evenly spread around the player.
	ArrowVolley SkillEffect = iota
)

type Skill struct {
	Name        string
	Description string
	Effect      SkillEffect
	ArrowCount  int
	Cooldown    animations.Cooldown
}

// SkillSlot is empty when Skill is nil. A locked slot cannot be used even
// if it holds a skill.
type SkillSlot struct {
	Locked bool
	Skill  *Skill
}

// Ready reports whether the slot can fire right now.
func (s *SkillSlot) Ready() bool {
	return !s.Locked && s.Skill != nil && s.Skill.Cooldown.Ready()
}

const SkillSlotCount = 4

type SkillSlotsData struct {
	Slots [SkillSlotCount]SkillSlot
}

var SkillSlots = donburi.NewComponentType[SkillSlotsData]()
