package battle

import (
	"image/color"
	"math/rand/v2"

	"github.com/automoto/crab-arena/archetypes"
	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SpawnHitMarker emits the "POW!" record for a landed hit.
func SpawnHitMarker(w donburi.World, x, y float64, c color.RGBA) *donburi.Entry {
	e := archetypes.Effect.Spawn(w)
	components.Effect.SetValue(e, components.EffectData{
		Kind:  components.EffectHit,
		X:     x,
		Y:     y,
		Color: c,
		Tween: gween.New(cfg.Effects.MarkerStartScale, cfg.Effects.MarkerEndScale, cfg.Effects.MarkerTweenSeconds, ease.OutBack),
		Scale: cfg.Effects.MarkerStartScale,
	})
	return e
}

// SpawnBubble emits an ambient bubble at a random x along the sea floor.
func SpawnBubble(w donburi.World, rng *rand.Rand) *donburi.Entry {
	e := archetypes.Effect.Spawn(w)
	components.Effect.SetValue(e, components.EffectData{
		Kind:  components.EffectBubble,
		X:     rng.Float64() * cfg.Arena.BubbleWidth,
		Y:     cfg.Arena.BubbleY,
		Color: cfg.Cyan,
	})
	return e
}

// ageEffects advances every effect by one frame and removes the expired
// ones in insertion order.
func ageEffects(w donburi.World) {
	var expired []*donburi.Entry

	tags.Effect.Each(w, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		fx.Age++
		if fx.Age >= cfg.Effects.LifetimeFrames {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		e.Remove()
	}
}

// ClearEffects removes every effect record.
func ClearEffects(w donburi.World) {
	var all []*donburi.Entry
	tags.Effect.Each(w, func(e *donburi.Entry) {
		all = append(all, e)
	})
	for _, e := range all {
		e.Remove()
	}
}

// CountEffects returns how many records of kind exist.
func CountEffects(w donburi.World, kind components.EffectKind) int {
	n := 0
	tags.Effect.Each(w, func(e *donburi.Entry) {
		if components.Effect.Get(e).Kind == kind {
			n++
		}
	})
	return n
}
