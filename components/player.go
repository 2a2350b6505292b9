package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PlayerData struct {
	MoveSpeed  float64
	ShotsFired int
}

var Player = donburi.NewComponentType[PlayerData]()
