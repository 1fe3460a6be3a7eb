package battle

import (
	"math"

	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/yohamta/donburi"
)

// InRange reports whether the fighters stand strictly closer than the
// melee range.
func InRange(a, b *components.FighterData) bool {
	return math.Abs(a.X-b.X) < cfg.Combat.MeleeRange
}

// Attempt resolves one melee attack. The hit lands only when the attacker
// is off cooldown and in range; otherwise nothing changes. A landed hit
// that empties the defender's health ends the match in the same call.
func Attempt(w donburi.World, attacker, defender *donburi.Entry) bool {
	if attacker == nil || defender == nil || !attacker.Valid() || !defender.Valid() {
		return false
	}
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return false
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStatePlaying {
		return false
	}

	atk := components.Fighter.Get(attacker)
	def := components.Fighter.Get(defender)
	if atk.Cooldown != 0 || !InRange(atk, def) {
		return false
	}

	hp := components.Health.Get(defender)
	hp.Current = ApplyDamage(hp, atk.Damage)
	components.AnimFlags.Get(defender).HitFrames = cfg.Combat.HitFlagFrames

	match.Combo++

	atk.Cooldown = cfg.Combat.AttackCooldown
	components.AnimFlags.Get(attacker).AttackFrames = cfg.Combat.AttackFlagFrames

	queueSound(w, cfg.SoundHit)
	if hp.Current == 0 {
		match.State = cfg.MatchStateGameOver
		match.Winner = atk.Slot
		match.WinnerName = atk.Name
		queueSound(w, cfg.SoundKO)
	}

	SpawnHitMarker(w, def.X+cfg.Combat.MarkerOffsetX, def.Y+cfg.Combat.MarkerOffsetY, atk.Color)
	return true
}

// ApplyDamage returns the health left after taking amount, clamped to
// [0, Max]. Negative amounts heal.
func ApplyDamage(hp *components.HealthData, amount int) int {
	next := hp.Current - amount
	if next < 0 {
		return 0
	}
	if next > hp.Max {
		return hp.Max
	}
	return next
}
