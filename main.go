package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/automoto/shuriken/config"
	"github.com/automoto/shuriken/fonts"
	"github.com/automoto/shuriken/scenes"
	"github.com/automoto/shuriken/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var spawnMode string

var rootCmd = &cobra.Command{
	Use:   "shuriken",
	Short: "Throw shuriken at the monsters before they reach you",
	RunE:  runGame,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start a game immediately")
	flags.BoolVar(&config.Debug.DrawHitboxes, "hitboxes", false, "outline collision boxes")
	flags.StringVar(&spawnMode, "spawn-mode", string(config.SpawnEdge), "where monsters appear: edge or anywhere")
	flags.Int64Var(&config.Director.Seed, "seed", 0, "spawn RNG seed (0 seeds from the clock)")
}

func runGame(cmd *cobra.Command, args []string) error {
	mode, err := config.ParseSpawnMode(spawnMode)
	if err != nil {
		return err
	}
	config.Director.SpawnMode = mode

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load the saved score
	if err := systems.InitPersistence(); err == nil {
		if _, err := systems.LoadBestScore(); err != nil {
			log.Printf("Warning: Could not load saved score: %v", err)
		}
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
