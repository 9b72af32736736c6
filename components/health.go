package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

var Health = donburi.NewComponentType[HealthData]()
