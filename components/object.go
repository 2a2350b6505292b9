package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the midpoint of the object's bounding box.
func (o *ObjectData) Center() math.Vec2 {
	return math.NewVec2(o.X+o.W/2, o.Y+o.H/2)
}

// SetCenter moves the object so its midpoint sits at p.
func (o *ObjectData) SetCenter(p math.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space every live body is registered in.
var Space = donburi.NewComponentType[resolv.Space]()
