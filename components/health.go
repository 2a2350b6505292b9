package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
	// Dead is set once, by the damage call that drops Current to zero or below.
	Dead bool
}

var Health = donburi.NewComponentType[HealthData]()
