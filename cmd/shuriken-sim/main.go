// Command shuriken-sim plays sessions without a window, with the autopilot at
// the controls, and logs how each one ended.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/automoto/shuriken/components"
	"github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/systems"
	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	maxTicks  int
	seed      int64
	spawnMode string
	fireEvery int
	sessions  int
)

var rootCmd = &cobra.Command{
	Use:   "shuriken-sim",
	Short: "Run headless shuriken sessions",
	RunE:  runSim,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&maxTicks, "ticks", 300*config.C.TPS, "tick limit per session")
	flags.Int64Var(&seed, "seed", 1, "seed of the first session; later sessions add one")
	flags.StringVar(&spawnMode, "spawn-mode", string(config.SpawnEdge), "where monsters appear: edge or anywhere")
	flags.IntVar(&fireEvery, "fire-every", config.Autopilot.FireEveryTicks, "ticks between autopilot shots")
	flags.IntVar(&sessions, "sessions", 1, "number of sessions to run")
}

func runSim(cmd *cobra.Command, args []string) error {
	mode, err := config.ParseSpawnMode(spawnMode)
	if err != nil {
		return err
	}
	if fireEvery <= 0 {
		return fmt.Errorf("--fire-every must be positive, got %d", fireEvery)
	}
	config.Director.SpawnMode = mode
	config.Autopilot.FireEveryTicks = fireEvery

	wins := 0
	for i := 0; i < sessions; i++ {
		stats := runSession(seed + int64(i))
		log.Printf("session %d (seed %d): %s kills=%d spawned=%d shots=%d health=%d ticks=%d mean-kill=%.2fs",
			i+1, seed+int64(i), stats.Outcome, stats.Kills, stats.Spawned, stats.ShotsFired, stats.Health, stats.Ticks,
			stats.MeanKillTicks/float64(config.C.TPS))
		if stats.Outcome == components.OutcomeWin {
			wins++
		}
	}
	log.Printf("%d/%d sessions won", wins, sessions)
	return nil
}

func runSession(seed int64) systems.SessionStats {
	e := ecs.NewECS(donburi.NewWorld())
	systems.SetupSession(e, seed)

	e.AddSystem(systems.UpdateAutopilot)
	systems.AddGameplaySystems(e)
	e.AddSystem(systems.DiscardSFX)

	for tick := 0; tick < maxTicks && systems.SessionOutcome(e) == components.OutcomeNone; tick++ {
		e.Update()
	}
	return systems.Stats(e)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
