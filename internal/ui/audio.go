package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType identifies a sound effect.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCheck
	SoundCastle
	SoundPromote
	SoundInvalid
	SoundGameEnd
)

const sampleRate = 44100

// envelope returns the gain at a point in the sound, given elapsed seconds and
// progress in [0,1).
type envelope func(t, progress float64) float64

// wave returns the raw signal at elapsed time t for sample index i.
type wave func(t float64, i int) float64

func decay(rate float64) envelope {
	return func(t, _ float64) float64 { return math.Exp(-t * rate) }
}

// attackRelease ramps up over attack and fades out over the last release fraction.
func attackRelease(attack, release float64) envelope {
	return func(_, p float64) float64 {
		switch {
		case p < attack:
			return p / attack
		case p > 1-release:
			return (1 - p) / release
		default:
			return 1
		}
	}
}

func sine(freqs ...float64) wave {
	return func(t float64, _ int) float64 {
		s := 0.0
		for _, f := range freqs {
			s += math.Sin(2 * math.Pi * f * t)
		}
		return s / float64(len(freqs))
	}
}

// synth renders a stereo 16-bit little-endian buffer.
func synth(duration, amplitude float64, env envelope, w wave) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		s := w(t, i) * env(t, t/duration) * amplitude
		s = math.Max(-1, math.Min(1, s))
		v := int16(s * 32767)
		data[i*4] = byte(v)
		data[i*4+1] = byte(v >> 8)
		data[i*4+2] = byte(v)
		data[i*4+3] = byte(v >> 8)
	}
	return data
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func silence(seconds float64) []byte {
	return make([]byte, int(sampleRate*seconds)*4)
}

// woodClick is a sine with a little detuned noise, like a piece set on a board.
func woodClick(freq float64) wave {
	return func(t float64, i int) float64 {
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		return math.Sin(2*math.Pi*freq*t) + noise
	}
}

// AudioManager plays the generated sound effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates an audio manager with every effect pre-rendered.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		enabled: true,
		volume:  0.5,
	}
	am.sounds = map[SoundType][]byte{
		SoundMove:    synth(0.08, 0.3, decay(30), woodClick(440)),
		SoundCapture: synth(0.12, 0.5, decay(25), woodClick(330)),
		SoundCheck:   synth(0.15, 0.4, attackRelease(0.1, 0.9), sine(880)),
		SoundCastle: concat(
			synth(0.06, 0.3, decay(30), woodClick(400)),
			silence(0.05),
			synth(0.06, 0.25, decay(30), woodClick(440)),
		),
		SoundPromote: synth(0.25, 0.35, attackRelease(0.05, 0.6), sine(523.25, 783.99)),
		SoundInvalid: synth(0.1, 0.15, attackRelease(0.01, 0.99), func(t float64, _ int) float64 {
			return math.Sin(2*math.Pi*150*t) + 0.3*math.Sin(4*math.Pi*150*t)
		}),
		SoundGameEnd: synth(0.4, 0.5, attackRelease(0.1, 0.3), sine(261.63, 329.63, 392.00)),
	}
	return am
}

// Play starts a sound. Each call gets its own player so sounds may overlap.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}
