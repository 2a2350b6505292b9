package components

import (
	"math/rand"

	cfg "github.com/automoto/shuriken/config"
	"github.com/yohamta/donburi"
)

// Outcome is the terminal result of a session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// DirectorData owns spawn cadence and win/lose arbitration (singleton).
type DirectorData struct {
	KillCount    int
	WinThreshold int

	SpawnInterval  float64 // seconds
	SpawnCountdown int     // ticks until the next spawn
	SpawnMode      cfg.SpawnMode
	Spawned        int

	Tick      int
	KillTicks int // monster lifetimes summed over all kills
	Outcome   Outcome

	Rand *rand.Rand
}

// Finished reports whether the session already has an outcome.
func (d *DirectorData) Finished() bool {
	return d.Outcome != OutcomeNone
}

var Director = donburi.NewComponentType[DirectorData]()
