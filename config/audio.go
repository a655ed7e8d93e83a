package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundOrb
	SoundPad
	SoundInteract
	SoundUnlock
	SoundTimeStop
	SoundDeath
	SoundClear
	SoundMenuSelect
)

// ToneConfig describes a generated sound effect: a square-ish sweep from
// StartHz to EndHz over Seconds.
type ToneConfig struct {
	StartHz float64
	EndHz   float64
	Seconds float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int     `yaml:"sample_rate"`
	DefaultMusicVol   float64 `yaml:"default_music_vol"`
	DefaultSFXVol     float64 `yaml:"default_sfx_vol"`
	MusicFadeDuration int     `yaml:"music_fade_duration"` // frames
}

// SoundConfig maps sound IDs to generated tones
type SoundConfig struct {
	SFX               map[SoundID]ToneConfig
	VolumeMultipliers map[SoundID]float64

	// Looping bed played while an unlock cutscene runs.
	Cutscene ToneConfig
	// One-shot cue that ends a power-out.
	PowerOut ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.5,
		DefaultSFXVol:     0.8,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		SFX: map[SoundID]ToneConfig{
			SoundJump:       {StartHz: 440, EndHz: 660, Seconds: 0.08},
			SoundOrb:        {StartHz: 660, EndHz: 990, Seconds: 0.12},
			SoundPad:        {StartHz: 330, EndHz: 880, Seconds: 0.15},
			SoundInteract:   {StartHz: 880, EndHz: 880, Seconds: 0.05},
			SoundUnlock:     {StartHz: 220, EndHz: 440, Seconds: 0.6},
			SoundTimeStop:   {StartHz: 990, EndHz: 110, Seconds: 0.8},
			SoundDeath:      {StartHz: 300, EndHz: 60, Seconds: 0.35},
			SoundClear:      {StartHz: 523, EndHz: 1046, Seconds: 0.5},
			SoundMenuSelect: {StartHz: 700, EndHz: 700, Seconds: 0.04},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundInteract: 0.6,
			SoundDeath:    1.2,
		},
		Cutscene: ToneConfig{StartHz: 110, EndHz: 165, Seconds: 2},
		PowerOut: ToneConfig{StartHz: 180, EndHz: 40, Seconds: 4},
	}
}
