package battle

import (
	"math/rand/v2"

	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/tags"
	"github.com/yohamta/donburi"
)

// Step advances the battle by one frame: movement from held keys,
// cooldown and flag countdown, effect expiry and ambient bubbles. It does
// nothing unless the match is playing.
func Step(w donburi.World, in *Tracker, arena cfg.ArenaDef, rng *rand.Rand) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStatePlaying {
		return
	}
	match.Frame++

	tags.Fighter.Each(w, func(e *donburi.Entry) {
		stepFighter(e, in, arena)
	})

	ageEffects(w)

	if arena.Underwater && match.Frame%cfg.Effects.BubbleIntervalFrames == 0 {
		SpawnBubble(w, rng)
	}
}

// stepFighter applies both movement checks independently; holding left and
// right together moves back and forth within the same frame.
func stepFighter(e *donburi.Entry, in *Tracker, arena cfg.ArenaDef) {
	f := components.Fighter.Get(e)
	if f.Slot < 1 || f.Slot > 2 {
		return
	}
	bindings := cfg.Input.Players[f.Slot-1]

	if in.AnyHeld(bindings[cfg.ActionMoveLeft].Keys...) {
		f.X = arena.ClampX(f.X - f.Speed)
		f.Facing = cfg.FacingLeft
	}
	if in.AnyHeld(bindings[cfg.ActionMoveRight].Keys...) {
		f.X = arena.ClampX(f.X + f.Speed)
		f.Facing = cfg.FacingRight
	}

	if f.Cooldown > 0 {
		f.Cooldown--
	}

	flags := components.AnimFlags.Get(e)
	if flags.HitFrames > 0 {
		flags.HitFrames--
	}
	if flags.AttackFrames > 0 {
		flags.AttackFrames--
	}
}
