package components

import "github.com/yohamta/donburi"

type MonsterData struct {
	MoveSpeed    float64 // pixels per tick
	AttackDamage int
	SpawnTick    int
}

var Monster = donburi.NewComponentType[MonsterData]()
