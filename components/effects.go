package components

import "github.com/yohamta/donburi"

// FlashData makes a body render highlighted for a few ticks after a hit.
type FlashData struct {
	Duration int // ticks remaining
}

var Flash = donburi.NewComponentType[FlashData]()
