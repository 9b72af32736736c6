package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Drop       = donburi.NewTag().SetName("Drop")

	// VelocityStateTransition opts an animated entity into switching between
	// Idle and Walking from its velocity.
	VelocityStateTransition = donburi.NewTag().SetName("VelocityStateTransition")
)

// Resolv tags for collision checks
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
	ResolvDrop       = "Drop"
)
