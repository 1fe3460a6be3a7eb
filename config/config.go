package config

import (
	"image/color"
)

// ArenaConfig contains the default arena geometry. Arena maps may override
// bounds and start positions, but every shipped arena uses these values.
type ArenaConfig struct {
	MinX    float64
	MaxX    float64
	GroundY float64 // cosmetic ground line fighters stand on
	StartX  [2]float64

	// Bubble spawn area for underwater arenas
	BubbleY     float64
	BubbleWidth float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	StartingHealth int
	MeleeRange     float64 // strict: a hit needs |dx| < MeleeRange
	AttackCooldown int     // frames

	// Transient animation flags (frames). 12 frames ~ 200ms, 9 frames ~ 150ms at 60fps.
	HitFlagFrames    int
	AttackFlagFrames int

	// Hit marker offset from the defender position
	MarkerOffsetX float64
	MarkerOffsetY float64

	// Combo label only appears above this count
	ComboLabelMin int
}

// EffectsConfig contains transient visual effect configuration
type EffectsConfig struct {
	LifetimeFrames       int     // effects older than this are pruned (~2000ms)
	BubbleIntervalFrames int     // underwater bubble spawn period (~500ms)
	BubbleRiseSpeed      float64 // pixels per frame, purely visual
	MarkerTweenSeconds   float32
	MarkerStartScale     float32
	MarkerEndScale       float32
}

// HealthBarConfig contains HUD health bar configuration
type HealthBarConfig struct {
	Width, Height float64
	Margin        float64
	HighThreshold float64 // percent above which the bar is green
	LowThreshold  float64 // percent above which the bar is yellow, red otherwise
	HighColor     color.RGBA
	MidColor      color.RGBA
	LowColor      color.RGBA
	BgColor       color.RGBA
}

// MenuConfig contains menu screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	Subtitle        string
}

// GameOverConfig contains winner overlay configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Combat CombatConfig
var Effects EffectsConfig
var HealthBar HealthBarConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Start directly in character select
	Mute     bool // Disable sound effects
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 107, B: 53, A: 255}
	Green        = color.RGBA{R: 74, G: 222, B: 128, A: 255}
	Amber        = color.RGBA{R: 251, G: 191, B: 36, A: 255}
	Red          = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	Cyan         = color.RGBA{R: 0, G: 206, B: 209, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkGray     = color.RGBA{R: 17, G: 24, B: 39, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Arena = ArenaConfig{
		MinX:        50,
		MaxX:        750,
		GroundY:     300,
		StartX:      [2]float64{150, 650},
		BubbleY:     500,
		BubbleWidth: 800,
	}

	Combat = CombatConfig{
		StartingHealth:   100,
		MeleeRange:       120,
		AttackCooldown:   30,
		HitFlagFrames:    12,
		AttackFlagFrames: 9,
		MarkerOffsetX:    40,
		MarkerOffsetY:    -20,
		ComboLabelMin:    2,
	}

	Effects = EffectsConfig{
		LifetimeFrames:       120,
		BubbleIntervalFrames: 30,
		BubbleRiseSpeed:      2.5,
		MarkerTweenSeconds:   0.3,
		MarkerStartScale:     0.4,
		MarkerEndScale:       1.6,
	}

	HealthBar = HealthBarConfig{
		Width:         128,
		Height:        14,
		Margin:        16,
		HighThreshold: 60,
		LowThreshold:  30,
		HighColor:     Green,
		MidColor:      Amber,
		LowColor:      Red,
		BgColor:       DarkGray,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Gold,
		TextColor:       White,
		Title:           "CRAB ARENA",
		Subtitle:        "Battle of the Claws!",
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   Gold,
	}
}
