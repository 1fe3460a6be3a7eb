package battle

import (
	"image/color"
	"testing"

	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
)

func testRoster() []cfg.CharacterTemplate {
	return []cfg.CharacterTemplate{
		{Name: "Pincer Pete", Color: color.RGBA{R: 255, A: 255}, Speed: 5, Damage: 20},
		{Name: "Shelldon", Color: color.RGBA{B: 255, A: 255}, Speed: 3, Damage: 35},
	}
}

func testArenas() []cfg.ArenaDef {
	return []cfg.ArenaDef{
		{Name: "Beach", MinX: 50, MaxX: 750, GroundY: 300, StartX: [2]float64{150, 650}},
		{Name: "Deep", MinX: 50, MaxX: 750, GroundY: 300, StartX: [2]float64{150, 650}, Underwater: true},
	}
}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	c, err := NewController(testRoster(), testArenas(), WithSeed(1))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

// startFight drives a fresh controller into playing on the given arena and
// empties the sound queue.
func startFight(t *testing.T, arena int) *Controller {
	t.Helper()
	c := newTestController(t)
	steps := []struct {
		name string
		ok   bool
	}{
		{"start", c.Start()},
		{"select p1", c.SelectCharacter(1, 0)},
		{"select p2", c.SelectCharacter(2, 1)},
		{"confirm", c.ConfirmCharacters()},
		{"arena", c.SelectArena(arena)},
		{"fight", c.Fight()},
	}
	for _, s := range steps {
		if !s.ok {
			t.Fatalf("%s: transition rejected", s.name)
		}
	}
	if c.State() != cfg.MatchStatePlaying {
		t.Fatalf("state = %v, want playing", c.State())
	}
	DrainSounds(c.World())
	return c
}

func fighter(c *Controller, slot int) *components.FighterData {
	return components.Fighter.Get(c.Fighter(slot))
}

func health(c *Controller, slot int) *components.HealthData {
	return components.Health.Get(c.Fighter(slot))
}

func flags(c *Controller, slot int) *components.AnimFlagsData {
	return components.AnimFlags.Get(c.Fighter(slot))
}

func ticks(c *Controller, n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}
