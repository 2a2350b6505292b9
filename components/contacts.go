package components

import "github.com/yohamta/donburi"

// PairKey identifies an unordered pair of bodies. A is always the lower entity id.
type PairKey struct {
	A, B donburi.Entity
}

// NewPairKey orders the two entities so that (a,b) and (b,a) map to the same key.
func NewPairKey(a, b donburi.Entity) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// ContactsData remembers which pairs overlapped on the previous tick so that a
// contact is only reported on the tick it begins.
type ContactsData struct {
	Active map[PairKey]struct{}
}

var Contacts = donburi.NewComponentType[ContactsData]()
