package components

import (
	cfg "github.com/automoto/shuriken/config"
	"github.com/yohamta/donburi"
)

// MusicRequest asks UpdateAudio to change the background music.
type MusicRequest int

const (
	MusicKeep MusicRequest = iota
	MusicStart
	MusicFadeOut
)

// AudioData queues sound effects raised by gameplay systems (singleton component)
type AudioData struct {
	SFXVolume    float64 // 0.0 - 1.0
	MusicVolume  float64 // 0.0 - 1.0
	PendingSFX   []cfg.SoundID
	MusicRequest MusicRequest
}

var Audio = donburi.NewComponentType[AudioData]()
