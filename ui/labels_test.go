package ui

import (
	"image/color"
	"testing"

	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
)

func TestCharacterLabel(t *testing.T) {
	pete := cfg.CharacterTemplate{Name: "Pincer Pete", Speed: 5, Damage: 20}

	tests := []struct {
		name     string
		selected bool
		want     string
	}{
		{"idle", false, "Pincer Pete  SPD 5  DMG 20"},
		{"selected", true, "> Pincer Pete  SPD 5  DMG 20 <"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CharacterLabel(pete, tt.selected); got != tt.want {
				t.Errorf("CharacterLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPickInfo(t *testing.T) {
	roster := []cfg.CharacterTemplate{
		{Name: "Pincer Pete", Weapon: "Claw Hammer", Ability: "Quick Strike"},
	}

	tests := []struct {
		name  string
		index int
		want  string
	}{
		{"no pick", components.NoSelection, "Pick a crab"},
		{"stale pick", 3, "Pick a crab"},
		{"picked", 0, "Pincer Pete: Claw Hammer, Quick Strike"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PickInfo(roster, tt.index); got != tt.want {
				t.Errorf("PickInfo(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestArenaLabel(t *testing.T) {
	tests := []struct {
		arena    cfg.ArenaDef
		selected bool
		want     string
	}{
		{cfg.ArenaDef{Name: "Sunny Beach"}, false, "Sunny Beach"},
		{cfg.ArenaDef{Name: "Sunny Beach"}, true, "> Sunny Beach <"},
		{cfg.ArenaDef{Name: "Coral Reef", Underwater: true}, false, "Coral Reef (underwater)"},
	}

	for _, tt := range tests {
		if got := ArenaLabel(tt.arena, tt.selected); got != tt.want {
			t.Errorf("ArenaLabel(%q, %v) = %q, want %q", tt.arena.Name, tt.selected, got, tt.want)
		}
	}
}

func TestShade(t *testing.T) {
	base := color.RGBA{R: 60, G: 60, B: 80, A: 255}

	lighter := shade(base, 0.2)
	darker := shade(base, -0.25)
	if lum(lighter) <= lum(base) {
		t.Errorf("shade(+0.2) = %v, not lighter than %v", lighter, base)
	}
	if lum(darker) >= lum(base) {
		t.Errorf("shade(-0.25) = %v, not darker than %v", darker, base)
	}
	if got := shade(base, 0); got != base {
		t.Errorf("shade(0) = %v, want %v", got, base)
	}
	if lighter.A != 255 || darker.A != 255 {
		t.Error("shaded colors must stay opaque")
	}
}

func lum(c color.RGBA) int {
	return int(c.R) + int(c.G) + int(c.B)
}
