package systems

import (
	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the visual side of effect records: marker scale
// tweens and rising bubbles. Expiry belongs to the battle step.
func UpdateEffects(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok || components.Match.Get(matchEntry).State != cfg.MatchStatePlaying {
		return
	}

	dt := 1 / float32(cfg.C.TPS)
	components.Effect.Each(e.World, func(entry *donburi.Entry) {
		fx := components.Effect.Get(entry)
		switch fx.Kind {
		case components.EffectHit:
			if fx.Tween != nil {
				fx.Scale, _ = fx.Tween.Update(dt)
			}
		case components.EffectBubble:
			fx.Y -= cfg.Effects.BubbleRiseSpeed
		}
	})
}

// effectAlpha fades an effect out over its lifetime.
func effectAlpha(fx *components.EffectData) float32 {
	a := 1 - float32(fx.Age)/float32(cfg.Effects.LifetimeFrames)
	return max(0, min(1, a))
}
