package battle

import (
	"slices"
	"testing"

	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestNewControllerRejectsEmptyData(t *testing.T) {
	if _, err := NewController(nil, testArenas()); err == nil {
		t.Error("expected error for empty roster")
	}
	if _, err := NewController(testRoster(), nil); err == nil {
		t.Error("expected error for empty arena list")
	}
}

func TestNewControllerStartsAtMenu(t *testing.T) {
	c := newTestController(t)
	if c.State() != cfg.MatchStateMenu {
		t.Fatalf("state = %v, want menu", c.State())
	}
	for slot := 1; slot <= 2; slot++ {
		if c.Selection(slot) != components.NoSelection || c.Fighter(slot) != nil {
			t.Errorf("slot %d starts with a pick", slot)
		}
	}
	if slot, _ := c.Winner(); slot != components.NoSelection {
		t.Errorf("winner = %d, want none", slot)
	}
}

func TestInvalidTransitionsAreIgnored(t *testing.T) {
	c := newTestController(t)

	menuOnly := []struct {
		name string
		call func() bool
	}{
		{"select character", func() bool { return c.SelectCharacter(1, 0) }},
		{"confirm", c.ConfirmCharacters},
		{"select arena", func() bool { return c.SelectArena(1) }},
		{"fight", c.Fight},
		{"rematch", c.Rematch},
	}
	for _, tt := range menuOnly {
		if tt.call() {
			t.Errorf("%s accepted in menu", tt.name)
		}
		if c.State() != cfg.MatchStateMenu {
			t.Fatalf("%s moved state to %v", tt.name, c.State())
		}
	}

	if !c.Start() {
		t.Fatal("start rejected in menu")
	}
	if c.Start() {
		t.Error("start accepted twice")
	}

	inSelect := []struct {
		name string
		call func() bool
	}{
		{"slot 0", func() bool { return c.SelectCharacter(0, 0) }},
		{"slot 3", func() bool { return c.SelectCharacter(3, 0) }},
		{"negative index", func() bool { return c.SelectCharacter(1, -1) }},
		{"index past roster", func() bool { return c.SelectCharacter(1, 2) }},
		{"confirm with no picks", c.ConfirmCharacters},
		{"select arena", func() bool { return c.SelectArena(0) }},
		{"fight", c.Fight},
	}
	for _, tt := range inSelect {
		if tt.call() {
			t.Errorf("%s accepted in select", tt.name)
		}
	}

	c.SelectCharacter(1, 0)
	if c.CanConfirmCharacters() || c.ConfirmCharacters() {
		t.Fatal("confirm accepted with one pick")
	}
	c.SelectCharacter(2, 1)
	if !c.CanConfirmCharacters() {
		t.Fatal("both picked but cannot confirm")
	}
	if !c.ConfirmCharacters() {
		t.Fatal("confirm rejected")
	}

	if c.SelectArena(2) || c.SelectArena(-1) {
		t.Error("out of range arena accepted")
	}
	if c.SelectCharacter(1, 1) {
		t.Error("character pick accepted in arena select")
	}
	if c.State() != cfg.MatchStateArenaSelect {
		t.Fatalf("state = %v, want arena-select", c.State())
	}
}

func TestSelectCharacterReplacesFighter(t *testing.T) {
	c := newTestController(t)
	c.Start()

	c.SelectCharacter(1, 0)
	first := c.Fighter(1).Entity()
	c.SelectCharacter(1, 1)

	if c.World().Valid(first) {
		t.Error("replaced fighter still in the world")
	}
	if got := fighter(c, 1).Name; got != "Shelldon" {
		t.Errorf("fighter = %q, want Shelldon", got)
	}
	if n := donburi.NewQuery(filter.Contains(tags.Fighter)).Count(c.World()); n != 1 {
		t.Errorf("fighters in world = %d, want 1", n)
	}

	// Both players may pick the same crab.
	if !c.SelectCharacter(2, 1) {
		t.Fatal("mirror pick rejected")
	}
	f2 := fighter(c, 2)
	if f2.Slot != 2 || f2.X != 650 || f2.Facing != cfg.FacingLeft {
		t.Errorf("p2 = slot %d x %v facing %v", f2.Slot, f2.X, f2.Facing)
	}
}

func TestFightResetsFighters(t *testing.T) {
	c := startFight(t, 1)
	if c.ArenaIndex() != 1 || c.Arena().Name != "Deep" {
		t.Fatalf("arena = %d %q", c.ArenaIndex(), c.Arena().Name)
	}

	for slot, want := range map[int]float64{1: 150, 2: 650} {
		f := fighter(c, slot)
		if f.X != want || f.Cooldown != 0 {
			t.Errorf("p%d x=%v cooldown=%d", slot, f.X, f.Cooldown)
		}
		if hp := health(c, slot); hp.Current != 100 || hp.Max != 100 {
			t.Errorf("p%d health %d/%d", slot, hp.Current, hp.Max)
		}
	}
	if c.Combo() != 0 {
		t.Errorf("combo = %d", c.Combo())
	}
}

func TestFightQueuesSound(t *testing.T) {
	c := newTestController(t)
	c.Start()
	c.SelectCharacter(1, 0)
	c.SelectCharacter(2, 0)
	c.ConfirmCharacters()
	c.Fight()

	if got := DrainSounds(c.World()); !slices.Equal(got, []cfg.SoundID{cfg.SoundFight}) {
		t.Fatalf("sounds = %v, want fight", got)
	}
	if got := DrainSounds(c.World()); got != nil {
		t.Fatalf("queue not emptied: %v", got)
	}
}

func TestRematchKeepsChoicesAndResets(t *testing.T) {
	c := startFight(t, 1)
	fighter(c, 1).X, fighter(c, 2).X = 300, 350
	health(c, 1).Current = 5
	c.Attack(2)
	if c.State() != cfg.MatchStateGameOver {
		t.Fatalf("state = %v, want gameover", c.State())
	}

	old := c.Fighter(1).Entity()
	if !c.Rematch() {
		t.Fatal("rematch rejected")
	}
	if c.State() != cfg.MatchStateSelect {
		t.Fatalf("state = %v, want select", c.State())
	}
	if c.World().Valid(old) {
		t.Error("previous fighter survived the rematch")
	}
	if c.Selection(1) != 0 || c.Selection(2) != 1 || c.ArenaIndex() != 1 {
		t.Errorf("choices lost: %d %d arena %d", c.Selection(1), c.Selection(2), c.ArenaIndex())
	}
	if n := CountEffects(c.World(), components.EffectHit); n != 0 {
		t.Errorf("%d markers survived the rematch", n)
	}

	if !c.ConfirmCharacters() || !c.Fight() {
		t.Fatal("could not restart the match")
	}
	if hp := health(c, 1).Current; hp != 100 {
		t.Errorf("health = %d, want 100", hp)
	}
	if c.Combo() != 0 {
		t.Errorf("combo = %d, want 0", c.Combo())
	}
	if slot, name := c.Winner(); slot != components.NoSelection || name != "" {
		t.Errorf("winner = %d %q, want cleared", slot, name)
	}
}

func TestAttackKeyDoesNotAutoRepeat(t *testing.T) {
	c := startFight(t, 0)
	a := fighter(c, 1)
	a.X, fighter(c, 2).X = 150, 200

	c.KeyDown(cfg.KeySpace)
	if got := health(c, 2).Current; got != 80 {
		t.Fatalf("health = %d after first press, want 80", got)
	}

	// Held: auto-repeat key-downs must not attack even off cooldown.
	a.Cooldown = 0
	c.KeyDown(cfg.KeySpace)
	c.KeyDown(cfg.KeySpace)
	if got := health(c, 2).Current; got != 80 {
		t.Fatalf("health = %d after repeats, want 80", got)
	}

	c.KeyUp(cfg.KeySpace)
	c.KeyDown(cfg.KeySpace)
	if got := health(c, 2).Current; got != 60 {
		t.Fatalf("health = %d after re-press, want 60", got)
	}
}

func TestAttackKeysPerPlayer(t *testing.T) {
	tests := []struct {
		key      cfg.KeyID
		attacker int
	}{
		{cfg.KeySpace, 1},
		{"w", 1},
		{"W", 1},
		{cfg.KeyEnter, 2},
		{cfg.KeyArrowUp, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			c := startFight(t, 0)
			fighter(c, 1).X, fighter(c, 2).X = 300, 350

			c.KeyDown(tt.key)
			defender := 3 - tt.attacker
			if health(c, defender).Current == 100 {
				t.Errorf("key %q did not make p%d attack", tt.key, tt.attacker)
			}
			if health(c, tt.attacker).Current != 100 {
				t.Errorf("key %q hurt the attacker", tt.key)
			}
		})
	}
}

func TestKeysOutsidePlayingHaveNoEffect(t *testing.T) {
	c := newTestController(t)
	c.Start()
	c.SelectCharacter(1, 0)
	c.SelectCharacter(2, 1)
	fighter(c, 1).X, fighter(c, 2).X = 300, 350

	c.KeyDown(cfg.KeySpace)
	c.KeyDown("d")
	ticks(c, 10)

	if got := health(c, 2).Current; got != 100 {
		t.Errorf("attack applied in select: health %d", got)
	}
	if got := fighter(c, 1).X; got != 300 {
		t.Errorf("fighter moved in select: x %v", got)
	}
}

func TestKeyHeldIntoFightDoesNotAttack(t *testing.T) {
	c := newTestController(t)
	c.Start()
	c.SelectCharacter(1, 0)
	c.SelectCharacter(2, 1)
	c.ConfirmCharacters()
	c.KeyDown(cfg.KeySpace)
	c.KeyDown("d")
	c.Fight()

	fighter(c, 1).X, fighter(c, 2).X = 300, 350
	c.KeyDown(cfg.KeySpace)
	if got := health(c, 2).Current; got != 100 {
		t.Errorf("held attack key fired on fight start: health %d", got)
	}

	// Movement is level-sensitive, so the held key moves on the first tick.
	c.Tick()
	if got := fighter(c, 1).X; got != 305 {
		t.Errorf("x = %v, want 305", got)
	}
}

func TestUpdateDrainsQueuedKeys(t *testing.T) {
	c := startFight(t, 0)
	p1 := fighter(c, 1)
	p1.X, fighter(c, 2).X = 300, 350

	w := c.World()
	QueueKey(w, "d", true)
	QueueKey(w, "w", true)
	QueueKey(w, "w", false)
	c.Update()

	if got := health(c, 2).Current; got != 80 {
		t.Errorf("health = %d, want 80", got)
	}
	if p1.X != 305 {
		t.Errorf("x = %v, want 305", p1.X)
	}
	if c.Frame() != 1 {
		t.Errorf("frame = %d, want 1", c.Frame())
	}

	// Events are consumed; the held key keeps moving.
	c.Update()
	if p1.X != 310 {
		t.Errorf("x = %v, want 310", p1.X)
	}
	if got := health(c, 2).Current; got != 80 {
		t.Errorf("health = %d after replay, want 80", got)
	}
}

func TestSetRoster(t *testing.T) {
	bigger := append(testRoster(), cfg.CharacterTemplate{Name: "Bubbles", Speed: 7, Damage: 15})
	smaller := []cfg.CharacterTemplate{{Name: "Coral Queen", Speed: 4, Damage: 25}}

	t.Run("empty rejected", func(t *testing.T) {
		c := newTestController(t)
		if c.SetRoster(nil) {
			t.Fatal("empty roster accepted")
		}
		if len(c.Roster()) != 2 {
			t.Fatalf("roster len = %d", len(c.Roster()))
		}
	})

	t.Run("select rebuilds picks", func(t *testing.T) {
		c := newTestController(t)
		c.Start()
		c.SelectCharacter(1, 0)
		c.SelectCharacter(2, 1)
		c.ConfirmCharacters()

		gen := c.RosterGeneration()
		if !c.SetRoster(smaller) {
			t.Fatal("roster rejected")
		}
		if c.RosterGeneration() == gen {
			t.Error("generation unchanged after swap")
		}
		if c.Selection(1) != 0 || fighter(c, 1).Name != "Coral Queen" {
			t.Errorf("p1 not rebuilt: %d", c.Selection(1))
		}
		if c.Selection(2) != components.NoSelection || c.Fighter(2) != nil {
			t.Errorf("p2 pick past the roster kept: %d", c.Selection(2))
		}
		if c.State() != cfg.MatchStateSelect {
			t.Errorf("state = %v, want select", c.State())
		}
	})

	t.Run("deferred during battle", func(t *testing.T) {
		c := startFight(t, 0)
		if !c.SetRoster(bigger) {
			t.Fatal("roster rejected")
		}
		if len(c.Roster()) != 2 || fighter(c, 1).Damage != 20 || c.RosterGeneration() != 0 {
			t.Fatal("roster swapped mid-battle")
		}

		fighter(c, 1).X, fighter(c, 2).X = 300, 350
		health(c, 2).Current = 1
		c.Attack(1)
		c.Rematch()

		if len(c.Roster()) != 3 {
			t.Fatalf("roster len = %d after rematch, want 3", len(c.Roster()))
		}
		if c.Selection(1) != 0 || c.Selection(2) != 1 {
			t.Errorf("picks lost: %d %d", c.Selection(1), c.Selection(2))
		}
		if !c.SelectCharacter(1, 2) || fighter(c, 1).Name != "Bubbles" {
			t.Error("new character not selectable")
		}
	})
}

func TestArenaAccessors(t *testing.T) {
	c := newTestController(t)

	if c.ArenaIndex() != 0 || c.Arena().Name != "Beach" {
		t.Errorf("default arena = %d %q, want 0 Beach", c.ArenaIndex(), c.Arena().Name)
	}
	if len(c.Arenas()) != 2 || len(c.Roster()) != 2 {
		t.Fatalf("arenas = %d, roster = %d; want 2 and 2", len(c.Arenas()), len(c.Roster()))
	}

	c.Start()
	c.SelectCharacter(1, 0)
	c.SelectCharacter(2, 1)
	c.ConfirmCharacters()
	if !c.SelectArena(1) {
		t.Fatal("arena pick rejected")
	}
	if c.ArenaIndex() != 1 || c.Arena().Name != "Deep" || !c.Arena().Underwater {
		t.Errorf("arena = %d %+v, want 1 Deep underwater", c.ArenaIndex(), c.Arena())
	}
}
