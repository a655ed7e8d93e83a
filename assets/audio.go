package assets

import (
	"encoding/binary"
	"math"

	"github.com/automoto/dietowin/config"
)

// bytesPerFrame is one 16-bit little-endian sample for each of two channels,
// the layout ebitengine audio players consume.
const bytesPerFrame = 4

// AudioLoader synthesizes sound effects and caches the PCM bytes so repeat
// plays cost nothing.
type AudioLoader struct {
	sfxCache   map[config.SoundID][]byte
	sampleRate int
}

// NewAudioLoader creates a loader for the given output sample rate
func NewAudioLoader(sampleRate int) *AudioLoader {
	return &AudioLoader{
		sfxCache:   make(map[config.SoundID][]byte),
		sampleRate: sampleRate,
	}
}

// PreloadSFX renders every configured effect. Call this at startup to avoid
// a hitch on first play.
func (l *AudioLoader) PreloadSFX() {
	for id := range config.Sound.SFX {
		l.SFX(id)
	}
}

// SFX returns the rendered effect for id, or nil when id has no tone.
func (l *AudioLoader) SFX(id config.SoundID) []byte {
	if cached, ok := l.sfxCache[id]; ok {
		return cached
	}
	tone, ok := config.Sound.SFX[id]
	if !ok {
		return nil
	}
	vol := 1.0
	if m, ok := config.Sound.VolumeMultipliers[id]; ok {
		vol = m
	}
	pcm := Tone(tone, l.sampleRate, vol)
	l.sfxCache[id] = pcm
	return pcm
}

// Cutscene returns the bed played under unlock animations.
func (l *AudioLoader) Cutscene() []byte {
	return Tone(config.Sound.Cutscene, l.sampleRate, 0.5)
}

// PowerOutCue returns the descending drone that ends a power-out.
func (l *AudioLoader) PowerOutCue() []byte {
	return Tone(config.Sound.PowerOut, l.sampleRate, 0.8)
}

// Tone renders a frequency sweep from StartHz to EndHz as stereo PCM. The
// wave is half square, half sine, with a short attack and a linear tail.
// volume is clamped to [0, 1].
func Tone(t config.ToneConfig, sampleRate int, volume float64) []byte {
	n := int(t.Seconds * float64(sampleRate))
	if n <= 0 || sampleRate <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(volume, 1))

	out := make([]byte, n*bytesPerFrame)
	attack := sampleRate / 200
	release := n * 3 / 10
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		hz := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += 2 * math.Pi * hz / float64(sampleRate)

		s := math.Sin(phase)
		wave := 0.4 * s
		if s >= 0 {
			wave += 0.6
		} else {
			wave -= 0.6
		}

		env := 1.0
		if i < attack {
			env = float64(i) / float64(attack)
		}
		if tail := n - i; tail < release {
			env *= float64(tail) / float64(release)
		}

		v := int16(wave * env * volume * 0.5 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(v))
	}
	return out
}
