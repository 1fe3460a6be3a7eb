package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHit
	SoundKO
	SoundFight
	SoundMenuSelect
)

// ToneConfig describes a synthesized sound effect. There are no audio
// assets; every effect is generated from these parameters at startup.
type ToneConfig struct {
	StartHz  float64
	EndHz    float64 // linear sweep from StartHz
	Seconds  float64
	Noise    float64 // 0..1 mix of white noise
	Volume   float64
	Harmonic float64 // amplitude of the octave above, 0 disables
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Tones         map[SoundID]ToneConfig
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
		Tones: map[SoundID]ToneConfig{
			SoundHit:        {StartHz: 220, EndHz: 90, Seconds: 0.12, Noise: 0.55, Volume: 0.9},
			SoundKO:         {StartHz: 440, EndHz: 70, Seconds: 0.7, Noise: 0.15, Volume: 1.0, Harmonic: 0.3},
			SoundFight:      {StartHz: 330, EndHz: 660, Seconds: 0.25, Volume: 0.7, Harmonic: 0.2},
			SoundMenuSelect: {StartHz: 880, EndHz: 990, Seconds: 0.06, Volume: 0.5},
		},
	}
}
