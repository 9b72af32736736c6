package components

import "github.com/yohamta/donburi"

// GameOverData is added to the world once the player finished dying.
type GameOverData struct {
	Kills      int
	Experience int
	NewBest    bool
}

var GameOver = donburi.NewComponentType[GameOverData]()
