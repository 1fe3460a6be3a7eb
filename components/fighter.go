package components

import (
	"image/color"

	cfg "github.com/automoto/crab-arena/config"
	"github.com/yohamta/donburi"
)

// FighterData is a combatant's stats and live battle state. It carries no
// behavior; the battle package mutates it.
type FighterData struct {
	Slot     int // 1 or 2
	Template int // index into the roster the fighter was built from

	// Cosmetic
	Name       string
	Color      color.RGBA
	ShellColor color.RGBA
	EyeColor   color.RGBA
	Weapon     string
	Ability    string

	X, Y     float64
	Facing   cfg.Facing
	Speed    float64 // pixels per frame while a movement key is held
	Damage   int     // health removed per landed hit
	Cooldown int     // frames until the next attack is allowed
}

var Fighter = donburi.NewComponentType[FighterData]()
