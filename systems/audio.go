package systems

import (
	"log"
	"sync"

	"github.com/automoto/crab-arena/assets"
	"github.com/automoto/crab-arena/battle"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every sound effect at startup to avoid a hitch on
// first play.
func PreloadAllSFX() {
	if cfg.Debug.Mute {
		return
	}
	initGlobalAudio()

	for id := range cfg.Audio.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the sounds the simulation queued this frame.
func UpdateAudio(e *ecs.ECS) {
	for _, id := range battle.DrainSounds(e.World) {
		PlaySFX(id)
	}
}

// PlaySFX plays a sound effect immediately
func PlaySFX(sound cfg.SoundID) {
	if cfg.Debug.Mute || globalSFXVolume <= 0 {
		return
	}
	initGlobalAudio()

	player, err := globalAudioLoader.LoadSFX(sound)
	if err != nil {
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}
