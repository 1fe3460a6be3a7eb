package systems

import (
	"testing"

	cfg "github.com/automoto/crab-arena/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key    ebiten.Key
		shift  bool
		want   cfg.KeyID
		wantOK bool
	}{
		{ebiten.KeyA, false, "a", true},
		{ebiten.KeyA, true, "A", true},
		{ebiten.KeyW, true, "W", true},
		{ebiten.KeySpace, false, cfg.KeySpace, true},
		{ebiten.KeySpace, true, cfg.KeySpace, true},
		{ebiten.KeyEnter, false, cfg.KeyEnter, true},
		{ebiten.KeyNumpadEnter, false, cfg.KeyEnter, true},
		{ebiten.KeyArrowLeft, true, cfg.KeyArrowLeft, true},
		{ebiten.KeyQ, false, "", false},
	}

	for _, tt := range tests {
		got, ok := KeyName(tt.key, tt.shift)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("KeyName(%v, %v) = %q, %v; want %q, %v", tt.key, tt.shift, got, ok, tt.want, tt.wantOK)
		}
	}
}

// Every key a player is bound to must be reachable from the keyboard.
func TestBindingsAreReachable(t *testing.T) {
	reachable := map[cfg.KeyID]bool{}
	for k := range keyNames {
		for _, shift := range []bool{false, true} {
			if name, ok := KeyName(k, shift); ok {
				reachable[name] = true
			}
		}
	}

	for p, bindings := range cfg.Input.Players {
		for action, b := range bindings {
			for _, key := range b.Keys {
				if !reachable[key] {
					t.Errorf("player %d action %d: key %q has no ebiten key", p+1, action, key)
				}
			}
		}
	}
}
