package battle

import (
	"github.com/automoto/crab-arena/archetypes"
	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/yohamta/donburi"
)

// SpawnFighter creates a fighter entity for slot (1 or 2) from a character
// template, at full health and standing at x.
func SpawnFighter(w donburi.World, tmpl cfg.CharacterTemplate, templateIndex, slot int, x, groundY float64) *donburi.Entry {
	e := archetypes.Fighter.Spawn(w)

	components.Fighter.SetValue(e, components.FighterData{
		Slot:       slot,
		Template:   templateIndex,
		Name:       tmpl.Name,
		Color:      tmpl.Color,
		ShellColor: tmpl.ShellColor,
		EyeColor:   tmpl.EyeColor,
		Weapon:     tmpl.Weapon,
		Ability:    tmpl.Ability,
		X:          x,
		Y:          groundY,
		Facing:     startFacing(slot),
		Speed:      tmpl.Speed,
		Damage:     tmpl.Damage,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: cfg.Combat.StartingHealth,
		Max:     cfg.Combat.StartingHealth,
	})
	return e
}

// ResetFighter restores full health, the start position and clears
// cooldown and animation flags. Template stats are kept.
func ResetFighter(e *donburi.Entry, x, groundY float64) {
	f := components.Fighter.Get(e)
	f.X = x
	f.Y = groundY
	f.Facing = startFacing(f.Slot)
	f.Cooldown = 0

	hp := components.Health.Get(e)
	hp.Max = cfg.Combat.StartingHealth
	hp.Current = hp.Max

	components.AnimFlags.SetValue(e, components.AnimFlagsData{})
}

// Player 1 starts on the left looking right, player 2 the opposite.
func startFacing(slot int) cfg.Facing {
	if slot == 2 {
		return cfg.FacingLeft
	}
	return cfg.FacingRight
}
