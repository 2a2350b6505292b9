package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShoot
	SoundHit
	SoundMonsterDeath
	SoundPlayerHurt
	SoundWin
	SoundLose
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultSFXVol     float64
	DefaultMusicVol   float64
	MusicFadeDuration int // ticks for music fade out (60 = 1 second at 60 TPS)
}

// ToneConfig describes a synthesized square-wave blip
type ToneConfig struct {
	Frequency float64 // Hz at the start of the blip
	Slide     float64 // Hz added per second (negative = falling pitch)
	Duration  float64 // seconds
	Volume    float64 // 0.0 - 1.0
}

// SoundConfig maps sound IDs to their synthesized tones. Music is the
// session's background loop, played note after note and then repeated.
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
	Music []ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultSFXVol:     0.6,
		DefaultMusicVol:   0.35,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundShoot:        {Frequency: 880, Slide: -1200, Duration: 0.08, Volume: 0.4},
			SoundHit:          {Frequency: 320, Slide: -400, Duration: 0.05, Volume: 0.5},
			SoundMonsterDeath: {Frequency: 220, Slide: -600, Duration: 0.18, Volume: 0.6},
			SoundPlayerHurt:   {Frequency: 140, Slide: -100, Duration: 0.2, Volume: 0.7},
			SoundWin:          {Frequency: 523, Slide: 900, Duration: 0.5, Volume: 0.6},
			SoundLose:         {Frequency: 330, Slide: -500, Duration: 0.6, Volume: 0.6},
		},
		// A minor arpeggio, two bars at 120 BPM
		Music: []ToneConfig{
			{Frequency: 220.00, Duration: 0.25, Volume: 0.3},
			{Frequency: 261.63, Duration: 0.25, Volume: 0.25},
			{Frequency: 329.63, Duration: 0.25, Volume: 0.25},
			{Frequency: 261.63, Duration: 0.25, Volume: 0.25},
			{Frequency: 196.00, Duration: 0.25, Volume: 0.3},
			{Frequency: 246.94, Duration: 0.25, Volume: 0.25},
			{Frequency: 293.66, Duration: 0.25, Volume: 0.25},
			{Frequency: 246.94, Duration: 0.25, Volume: 0.25},
		},
	}
}
