package systems

import (
	"log"

	"github.com/automoto/shuriken/components"
	"github.com/automoto/shuriken/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Category classifies a collision body. Categories are disjoint.
type Category int

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryMonster
	CategoryProjectile
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryMonster:
		return "monster"
	case CategoryProjectile:
		return "projectile"
	default:
		return "none"
	}
}

// Body is one side of a contact: what it is and how to find it again.
type Body struct {
	Category Category
	Handle   donburi.Entity
}

// ResolutionKind names the rule a contact matched.
type ResolutionKind int

const (
	ResolveNone ResolutionKind = iota
	// ResolveProjectileHitsMonster destroys the projectile and damages the monster.
	ResolveProjectileHitsMonster
	// ResolveMonsterTouchesPlayer damages the player with the monster's attack.
	ResolveMonsterTouchesPlayer
)

// Resolution is the routed form of a contact. Monster is the monster's handle and
// Other the projectile or player it touched.
type Resolution struct {
	Kind    ResolutionKind
	Monster donburi.Entity
	Other   donburi.Entity
}

// Route classifies an unordered pair of bodies. Route(a, b) == Route(b, a).
func Route(a, b Body) Resolution {
	var monster, other Body
	switch {
	case a.Category == CategoryMonster && b.Category != CategoryMonster:
		monster, other = a, b
	case b.Category == CategoryMonster && a.Category != CategoryMonster:
		monster, other = b, a
	default:
		return Resolution{}
	}

	switch other.Category {
	case CategoryProjectile:
		return Resolution{Kind: ResolveProjectileHitsMonster, Monster: monster.Handle, Other: other.Handle}
	case CategoryPlayer:
		return Resolution{Kind: ResolveMonsterTouchesPlayer, Monster: monster.Handle, Other: other.Handle}
	}
	return Resolution{}
}

// CategoryOf reads the category tag of an entry.
func CategoryOf(e *donburi.Entry) Category {
	switch {
	case e.HasComponent(tags.Monster):
		return CategoryMonster
	case e.HasComponent(tags.Projectile):
		return CategoryProjectile
	case e.HasComponent(tags.Player):
		return CategoryPlayer
	}
	return CategoryNone
}

// BodyOf builds the collision body for an entry.
func BodyOf(e *donburi.Entry) Body {
	return Body{Category: CategoryOf(e), Handle: e.Entity()}
}

// ResolveContact routes a contact and applies its effect. Handles that no longer
// resolve to live entries (destroyed earlier in the same tick) are ignored.
func ResolveContact(ecs *ecs.ECS, a, b Body) {
	res := Route(a, b)
	if res.Kind == ResolveNone {
		return
	}

	monster := lookup(ecs, res.Monster)
	other := lookup(ecs, res.Other)
	if monster == nil || other == nil {
		return
	}

	switch res.Kind {
	case ResolveProjectileHitsMonster:
		damage := components.Projectile.Get(other).Damage
		spawnTick := components.Monster.Get(monster).SpawnTick
		destroyEntity(ecs, other)

		result, err := ApplyDamage(ecs, monster, damage)
		if err != nil {
			log.Printf("Warning: projectile hit: %v", err)
			return
		}
		if result.Died {
			OnMonsterDeath(ecs, spawnTick)
		}

	case ResolveMonsterTouchesPlayer:
		if _, err := OnPlayerContact(ecs, monster, other); err != nil {
			log.Printf("Warning: monster contact: %v", err)
		}
	}
}
