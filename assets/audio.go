package assets

import (
	"fmt"

	cfg "github.com/automoto/crab-arena/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound effects from their tone settings and caches
// the PCM so each play only creates a player.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a
// player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Audio.Tones[id]
	if !ok {
		return fmt.Errorf("no tone configured for sound %d", id)
	}
	l.sfxCache[id] = SynthesizeTone(tone, l.context.SampleRate(), uint64(id))
	return nil
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}
