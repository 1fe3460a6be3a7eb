package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AnimFlagsData tracks the transient isHit/isAttacking flags as frame
// counters. A flag is set while its counter is positive.
type AnimFlagsData struct {
	HitFrames    int
	AttackFrames int
}

func (a *AnimFlagsData) IsHit() bool       { return a.HitFrames > 0 }
func (a *AnimFlagsData) IsAttacking() bool { return a.AttackFrames > 0 }

var AnimFlags = donburi.NewComponentType[AnimFlagsData]()

// EffectKind identifies a transient visual effect record
type EffectKind int

const (
	EffectHit    EffectKind = iota // "POW!" marker at a landed hit
	EffectBubble                   // ambient bubble in underwater arenas
)

// EffectData is a transient visual effect record. Age counts frames since
// spawn; the frame loop removes records once they expire.
type EffectData struct {
	Kind  EffectKind
	X, Y  float64
	Color color.RGBA
	Age   int

	// Marker scale animation, nil for bubbles
	Tween *gween.Tween
	Scale float32
}

var Effect = donburi.NewComponentType[EffectData]()
