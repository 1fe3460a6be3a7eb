package systems

import (
	"strings"

	"github.com/automoto/crab-arena/battle"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable key slices to avoid allocations
var (
	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
)

// keyNames maps ebiten keys to the names the bindings use. Letters are
// lowercase here and shifted in KeyName.
var keyNames = map[ebiten.Key]cfg.KeyID{
	ebiten.KeyA:           "a",
	ebiten.KeyD:           "d",
	ebiten.KeyW:           "w",
	ebiten.KeySpace:       cfg.KeySpace,
	ebiten.KeyEnter:       cfg.KeyEnter,
	ebiten.KeyNumpadEnter: cfg.KeyEnter,
	ebiten.KeyArrowLeft:   cfg.KeyArrowLeft,
	ebiten.KeyArrowRight:  cfg.KeyArrowRight,
	ebiten.KeyArrowUp:     cfg.KeyArrowUp,
	ebiten.KeyEscape:      cfg.KeyEscape,
}

// KeyName translates an ebiten key into its binding name. Letter keys are
// reported uppercase while shift is held. ok is false for unbound keys.
func KeyName(k ebiten.Key, shift bool) (cfg.KeyID, bool) {
	name, ok := keyNames[k]
	if !ok {
		return "", false
	}
	if shift && len(name) == 1 && name[0] >= 'a' && name[0] <= 'z' {
		name = cfg.KeyID(strings.ToUpper(string(name)))
	}
	return name, true
}

// UpdateInput buffers this frame's key transitions into the world.
// Must run BEFORE the battle system in the system order.
func UpdateInput(e *ecs.ECS) {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	for _, k := range pressedKeys {
		if name, ok := KeyName(k, shift); ok {
			battle.QueueKey(e.World, name, true)
		}
	}

	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])
	for _, k := range releasedKeys {
		// Shift may have changed while the key was down, so release both
		// spellings of a letter.
		for _, s := range []bool{false, true} {
			if name, ok := KeyName(k, s); ok {
				battle.QueueKey(e.World, name, false)
			}
		}
	}
}
