package config

import (
	"fmt"
	"image/color"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Combat
	Health int

	// Movement (joystick / arrow keys), pixels per tick
	MoveSpeed float64

	// Spawn position as a fraction of the screen size
	SpawnXRatio float64
	SpawnYRatio float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// MonsterConfig contains monster configuration values
type MonsterConfig struct {
	Health       int
	MoveSpeed    float64 // pixels per tick, seek toward the player
	AttackDamage int     // damage dealt to the player on contact

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// ProjectileConfig contains projectile (shuriken) configuration values
type ProjectileConfig struct {
	Radius         float64
	TravelDistance float64 // distance from the player to the flight destination
	FlightSeconds  float32 // time to reach the destination
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	ProjectileDamage int
	HitFlashTicks    int // how long a damaged body flashes
}

// SpawnMode selects where the director places new monsters
type SpawnMode string

const (
	// SpawnEdge spawns just past the right screen edge at a random height.
	SpawnEdge SpawnMode = "edge"
	// SpawnAnywhere spawns at a random position inside the screen.
	SpawnAnywhere SpawnMode = "anywhere"
)

// DirectorConfig contains spawn cadence and win/lose configuration
type DirectorConfig struct {
	SpawnIntervalSeconds float64
	WinThreshold         int
	SpawnMode            SpawnMode
	Seed                 int64 // 0 = seed from the clock
}

// AutopilotConfig drives the player when no human is at the controls
type AutopilotConfig struct {
	FireEveryTicks int     // ticks between shots at the nearest monster
	TrackDeadzone  float64 // vertical distance ignored when tracking a target
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64

	BackgroundColor color.RGBA
	PlayerColor     color.RGBA
	MonsterColor    color.RGBA
	ProjectileColor color.RGBA
	HUDTextColor    color.RGBA
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA

	HintSeconds float64 // how long the control hint stays on screen
}

// GameOverConfig contains outcome screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TextColor         color.RGBA
	WinMessage        string
	LoseMessage       string
	DisplaySeconds    float32 // time before restarting
	TransitionSeconds float32 // fade-in duration
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Message      string
}

// MenuConfig contains title screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	DrawHitboxes bool // Outline collision boxes
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // simulation ticks per second
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Monster MonsterConfig
var Projectile ProjectileConfig
var Combat CombatConfig
var Director DirectorConfig
var Autopilot AutopilotConfig
var UI UIConfig
var GameOver GameOverConfig
var Menu MenuConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGray    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Purple      = color.RGBA{R: 128, G: 0, B: 255, A: 255}
)

// Dt returns the duration of one simulation tick in seconds.
func Dt() float64 {
	return 1.0 / float64(C.TPS)
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		Health:          30,
		MoveSpeed:       3.0,
		SpawnXRatio:     0.1,
		SpawnYRatio:     0.5,
		CollisionWidth:  24,
		CollisionHeight: 32,
	}

	Monster = MonsterConfig{
		Health:          30,
		MoveSpeed:       1.0,
		AttackDamage:    10,
		CollisionWidth:  28,
		CollisionHeight: 28,
	}

	Projectile = ProjectileConfig{
		Radius:         6,
		TravelDistance: 1000,
		FlightSeconds:  2.0,
	}

	Combat = CombatConfig{
		ProjectileDamage: 10,
		HitFlashTicks:    6,
	}

	Director = DirectorConfig{
		SpawnIntervalSeconds: 1.0,
		WinThreshold:         30,
		SpawnMode:            SpawnEdge,
	}

	Autopilot = AutopilotConfig{
		FireEveryTicks: 20,
		TrackDeadzone:  4,
	}

	UI = UIConfig{
		HealthBarWidth:  130,
		HealthBarHeight: 13,
		HealthBarMargin: 10,
		BackgroundColor: color.RGBA{R: 245, G: 245, B: 245, A: 255},
		PlayerColor:     LightBlue,
		MonsterColor:    Purple,
		ProjectileColor: DarkGray,
		HUDTextColor:    Black,
		HealthBarBg:     DarkGray,
		HealthBarFg:     color.RGBA{R: 40, G: 220, B: 40, A: 255},
		HintSeconds:     6,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   Black,
		TextColor:         White,
		WinMessage:        "You WON!",
		LoseMessage:       "You LOSE! >:D",
		DisplaySeconds:    3.0,
		TransitionSeconds: 0.5,
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 160},
		TextColor:    White,
		Message:      "PAUSED",
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		Title:           "SHURIKEN",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}

// ParseSpawnMode validates a spawn mode name from the command line.
func ParseSpawnMode(s string) (SpawnMode, error) {
	switch mode := SpawnMode(s); mode {
	case SpawnEdge, SpawnAnywhere:
		return mode, nil
	}
	return "", fmt.Errorf("unknown spawn mode %q (want %q or %q)", s, SpawnEdge, SpawnAnywhere)
}
