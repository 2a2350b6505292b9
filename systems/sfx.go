package systems

import (
	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound effect to be played by UpdateAudio
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:   cfg.Audio.DefaultSFXVol,
			MusicVolume: cfg.Audio.DefaultMusicVol,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// PlayMusic asks UpdateAudio to start the background loop
func PlayMusic(e *ecs.ECS) {
	GetOrCreateAudio(e).MusicRequest = components.MusicStart
}

// FadeOutMusic asks UpdateAudio to fade the background loop out over
// cfg.Audio.MusicFadeDuration ticks
func FadeOutMusic(e *ecs.ECS) {
	GetOrCreateAudio(e).MusicRequest = components.MusicFadeOut
}

// DiscardSFX drops queued sounds and music requests. Used when running
// without an audio device.
func DiscardSFX(e *ecs.ECS) {
	if entry, ok := components.Audio.First(e.World); ok {
		audioData := components.Audio.Get(entry)
		audioData.PendingSFX = audioData.PendingSFX[:0]
		audioData.MusicRequest = components.MusicKeep
	}
}
