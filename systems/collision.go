package systems

import (
	"github.com/automoto/shuriken/components"
	"github.com/automoto/shuriken/shared/gamemath"
	"github.com/automoto/shuriken/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contact is a begin-contact event waiting to be routed.
type contact struct {
	a, b Body
}

// UpdateCollisions finds monster contacts through the collision space and routes
// each pair once, on the tick it starts overlapping. Pairs that stay in contact
// are not routed again until they separate.
func UpdateCollisions(ecs *ecs.ECS) {
	dirEntry, ok := components.Director.First(ecs.World)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(dirEntry)

	touching := make(map[components.PairKey]struct{}, len(contacts.Active))
	var begun []contact

	components.Monster.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)

		check := obj.Check(0, 0, tags.ResolvProjectile, tags.ResolvPlayer)
		if check == nil {
			return
		}

		candidates := check.ObjectsByTags(tags.ResolvProjectile)
		candidates = append(candidates, check.ObjectsByTags(tags.ResolvPlayer)...)
		for _, other := range candidates {
			otherEntry, ok := other.Data.(*donburi.Entry)
			if !ok || otherEntry == nil || !otherEntry.Valid() {
				continue
			}
			if !overlapping(obj.Object, other) {
				continue
			}

			key := components.NewPairKey(e.Entity(), otherEntry.Entity())
			if _, seen := touching[key]; seen {
				continue
			}
			touching[key] = struct{}{}

			if _, active := contacts.Active[key]; active {
				continue
			}
			begun = append(begun, contact{a: BodyOf(e), b: BodyOf(otherEntry)})
		}
	})

	contacts.Active = touching

	for _, c := range begun {
		ResolveContact(ecs, c.a, c.b)
	}
}

// overlapping confirms that two broadphase candidates' boxes actually intersect.
func overlapping(a, b *resolv.Object) bool {
	return gamemath.Overlaps(a.X, a.Y, a.W, a.H, b.X, b.Y, b.W, b.H)
}
