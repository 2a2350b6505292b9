package systems

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"sync"

	"github.com/automoto/shuriken/components"
	cfg "github.com/automoto/shuriken/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	toneCache          map[cfg.SoundID][]byte
	musicPCM           []byte
	globalMusic        musicTrack
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		toneCache = make(map[cfg.SoundID][]byte, len(cfg.Sound.Tones))
		for id, tone := range cfg.Sound.Tones {
			toneCache[id] = synthesizeTone(tone, cfg.Audio.SampleRate)
		}
		for _, note := range cfg.Sound.Music {
			musicPCM = append(musicPCM, synthesizeTone(note, cfg.Audio.SampleRate)...)
		}
	})
}

// UpdateAudio plays the sound effects queued this tick and runs the music.
// The music outlives the scene that started it, so every scene with audio
// adds this system to keep a fade moving.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if entry, ok := components.Audio.First(e.World); ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID, audioData.SFXVolume)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]

		if globalMusic.apply(audioData.MusicRequest, audioData.MusicVolume) {
			globalMusic.open(newMusicPlayer())
		}
		audioData.MusicRequest = components.MusicKeep
	}

	globalMusic.step()
}

// newMusicPlayer loops the synthesized background track forever.
func newMusicPlayer() *audio.Player {
	if len(musicPCM) == 0 {
		return nil
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(musicPCM), int64(len(musicPCM)))
	player, err := globalAudioContext.NewPlayer(loop)
	if err != nil {
		log.Printf("Warning: Could not start music: %v", err)
		return nil
	}
	return player
}

// musicTrack is the background music state. The player may be nil when no
// audio device is available; the state still advances.
type musicTrack struct {
	player    *audio.Player
	playing   bool
	volume    float64
	fadeTimer int
	fadeTotal int
}

// apply handles a music request and reports whether a player must be opened.
func (m *musicTrack) apply(req components.MusicRequest, volume float64) bool {
	switch req {
	case components.MusicStart:
		m.volume = volume
		m.fadeTimer = 0
		if m.playing {
			// Restarted mid-fade: back to full volume
			if m.player != nil {
				m.player.SetVolume(volume)
			}
			return false
		}
		m.playing = true
		return true
	case components.MusicFadeOut:
		if m.playing && m.fadeTimer == 0 {
			m.fadeTotal = cfg.Audio.MusicFadeDuration
			m.fadeTimer = max(m.fadeTotal, 1)
		}
	}
	return false
}

func (m *musicTrack) open(player *audio.Player) {
	m.player = player
	if player == nil {
		return
	}
	player.SetVolume(m.volume)
	player.Play()
}

// step advances a fade by one tick and stops the music when it ends.
func (m *musicTrack) step() {
	if m.fadeTimer <= 0 {
		return
	}
	m.fadeTimer--
	if m.player != nil && m.fadeTotal > 0 {
		m.player.SetVolume(m.volume * float64(m.fadeTimer) / float64(m.fadeTotal))
	}
	if m.fadeTimer == 0 {
		m.stop()
	}
}

func (m *musicTrack) stop() {
	if m.player != nil {
		_ = m.player.Close()
		m.player = nil
	}
	m.playing = false
	m.fadeTimer = 0
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if volume <= 0 {
		return
	}
	pcm, ok := toneCache[soundID]
	if !ok {
		return
	}

	player, err := globalAudioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return
	}
	player.SetVolume(volume)
	player.Play()
}

// synthesizeTone renders a square wave with a linear pitch slide as 16-bit
// little-endian stereo PCM, the format audio.Player expects.
func synthesizeTone(tone cfg.ToneConfig, sampleRate int) []byte {
	samples := int(tone.Duration * float64(sampleRate))
	buf := make([]byte, samples*4)

	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		freq := math.Max(tone.Frequency+tone.Slide*t, 20)
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		amp := tone.Volume
		if phase >= 0.5 {
			amp = -amp
		}
		// Linear release avoids a click at the end of the blip.
		amp *= 1 - float64(i)/float64(samples)

		v := uint16(int16(amp * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}
