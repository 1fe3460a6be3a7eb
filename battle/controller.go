package battle

import (
	"errors"
	"math/rand/v2"

	"github.com/automoto/crab-arena/archetypes"
	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/yohamta/donburi"
)

// Controller owns the whole game state and exposes one method per user
// action. Actions that are not valid in the current state are ignored and
// report false; nothing here returns an error to the player.
type Controller struct {
	world    donburi.World
	match    *donburi.Entry
	fighters [2]*donburi.Entry
	tracker  *Tracker
	rng      *rand.Rand

	roster        []cfg.CharacterTemplate
	pendingRoster []cfg.CharacterTemplate
	rosterGen     int
	arenas        []cfg.ArenaDef
}

// Option configures a Controller
type Option func(*Controller)

// WithSeed makes bubble placement reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Controller) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithWorld runs the simulation inside an existing world, e.g. one shared
// with a scene's ECS.
func WithWorld(w donburi.World) Option {
	return func(c *Controller) {
		c.world = w
	}
}

// NewController creates a controller sitting at the main menu.
func NewController(roster []cfg.CharacterTemplate, arenas []cfg.ArenaDef, opts ...Option) (*Controller, error) {
	if len(roster) == 0 {
		return nil, errors.New("battle: empty roster")
	}
	if len(arenas) == 0 {
		return nil, errors.New("battle: no arenas")
	}

	c := &Controller{
		tracker: NewTracker(),
		roster:  roster,
		arenas:  arenas,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.world == nil {
		c.world = donburi.NewWorld()
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	c.match = archetypes.Match.Spawn(c.world)
	components.Match.SetValue(c.match, components.MatchData{
		State:      cfg.MatchStateMenu,
		Selected:   [2]int{components.NoSelection, components.NoSelection},
		ArenaIndex: 0,
		Winner:     components.NoSelection,
	})
	return c, nil
}

func (c *Controller) data() *components.MatchData {
	return components.Match.Get(c.match)
}

// Start leaves the title screen for character select.
func (c *Controller) Start() bool {
	return c.transition(cfg.MatchStateMenu, cfg.MatchStateSelect)
}

// SelectCharacter builds slot's fighter from roster entry index, replacing
// any previous pick for that slot.
func (c *Controller) SelectCharacter(slot, index int) bool {
	if c.State() != cfg.MatchStateSelect || !validSlot(slot) || index < 0 || index >= len(c.roster) {
		return false
	}
	c.buildFighter(slot, index)
	return true
}

// CanConfirmCharacters reports whether both players have picked.
func (c *Controller) CanConfirmCharacters() bool {
	return c.data().HasBothSelections()
}

// ConfirmCharacters moves on to arena select once both players picked.
func (c *Controller) ConfirmCharacters() bool {
	if !c.CanConfirmCharacters() {
		return false
	}
	return c.transition(cfg.MatchStateSelect, cfg.MatchStateArenaSelect)
}

// SelectArena picks the battleground.
func (c *Controller) SelectArena(index int) bool {
	if c.State() != cfg.MatchStateArenaSelect || index < 0 || index >= len(c.arenas) {
		return false
	}
	c.data().ArenaIndex = index
	return true
}

// Fight starts the battle: both fighters back to full health at their
// start positions, combo and winner cleared.
func (c *Controller) Fight() bool {
	if c.State() != cfg.MatchStateArenaSelect || c.fighters[0] == nil || c.fighters[1] == nil {
		return false
	}

	arena := c.Arena()
	for i, e := range c.fighters {
		ResetFighter(e, arena.StartX[i], arena.GroundY)
	}
	ClearEffects(c.world)

	m := c.data()
	m.Combo = 0
	m.Winner = components.NoSelection
	m.WinnerName = ""
	m.Frame = 0
	m.State = cfg.MatchStatePlaying

	queueSound(c.world, cfg.SoundFight)
	return true
}

// Rematch returns to character select keeping both picks and the arena.
// The old fighters are discarded and rebuilt from the kept picks.
func (c *Controller) Rematch() bool {
	if !c.transition(cfg.MatchStateGameOver, cfg.MatchStateSelect) {
		return false
	}
	ClearEffects(c.world)
	if c.pendingRoster != nil {
		c.applyPendingRoster()
	} else {
		c.rebuildSelections()
	}
	return true
}

// KeyDown feeds a key press. A fresh press of an attack key during a
// battle resolves the attack immediately.
func (c *Controller) KeyDown(key cfg.KeyID) {
	if !c.tracker.Press(key) {
		return
	}
	if c.State() != cfg.MatchStatePlaying {
		return
	}
	for slot := 1; slot <= 2; slot++ {
		if cfg.Input.Players[slot-1][cfg.ActionAttack].Matches(key) {
			c.Attack(slot)
		}
	}
}

// KeyUp feeds a key release.
func (c *Controller) KeyUp(key cfg.KeyID) {
	c.tracker.Release(key)
}

// ReleaseAll drops every held key.
func (c *Controller) ReleaseAll() {
	c.tracker.Reset()
}

// Attack makes slot's fighter swing at the other one.
func (c *Controller) Attack(slot int) bool {
	if !validSlot(slot) {
		return false
	}
	return Attempt(c.world, c.fighters[slot-1], c.fighters[2-slot])
}

// Tick runs one frame of the battle. Outside of playing it does nothing.
func (c *Controller) Tick() {
	Step(c.world, c.tracker, c.Arena(), c.rng)
}

// Update forwards the key events buffered in the world since the last
// frame, in arrival order, then ticks.
func (c *Controller) Update() {
	entry, ok := components.Input.First(c.world)
	if ok {
		in := components.Input.Get(entry)
		events := in.Events
		in.Events = nil
		for _, ev := range events {
			if ev.Down {
				c.KeyDown(ev.Key)
			} else {
				c.KeyUp(ev.Key)
			}
		}
	}
	c.Tick()
}

// QueueKey buffers a key transition in w for the next Update.
func QueueKey(w donburi.World, key cfg.KeyID, down bool) {
	entry, ok := components.Input.First(w)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	in.Events = append(in.Events, components.KeyEventData{Key: key, Down: down})
}

// SetRoster swaps the character templates. During a battle or on the
// result screen the swap waits until the players are back at select.
func (c *Controller) SetRoster(roster []cfg.CharacterTemplate) bool {
	if len(roster) == 0 {
		return false
	}
	c.pendingRoster = roster
	switch c.State() {
	case cfg.MatchStatePlaying, cfg.MatchStateGameOver:
		return true
	}
	c.applyPendingRoster()
	return true
}

func (c *Controller) applyPendingRoster() {
	if c.pendingRoster == nil {
		return
	}
	c.roster = c.pendingRoster
	c.pendingRoster = nil
	c.rosterGen++
	c.rebuildSelections()
}

// rebuildSelections respawns the picked fighters from the current roster,
// dropping picks the roster no longer has.
func (c *Controller) rebuildSelections() {
	m := c.data()
	for slot := 1; slot <= 2; slot++ {
		idx := m.Selected[slot-1]
		if idx == components.NoSelection {
			continue
		}
		if idx < len(c.roster) {
			c.buildFighter(slot, idx)
			continue
		}
		c.dropFighter(slot)
	}
	if m.State == cfg.MatchStateArenaSelect && !m.HasBothSelections() {
		m.State = cfg.MatchStateSelect
	}
}

func (c *Controller) buildFighter(slot, index int) {
	c.dropFighter(slot)
	arena := c.Arena()
	c.fighters[slot-1] = SpawnFighter(c.world, c.roster[index], index, slot, arena.StartX[slot-1], arena.GroundY)
	c.data().Selected[slot-1] = index
}

func (c *Controller) dropFighter(slot int) {
	if e := c.fighters[slot-1]; e != nil && e.Valid() {
		e.Remove()
	}
	c.fighters[slot-1] = nil
	c.data().Selected[slot-1] = components.NoSelection
}

func (c *Controller) transition(from, to cfg.MatchStateID) bool {
	m := c.data()
	if m.State != from {
		return false
	}
	m.State = to
	return true
}

func validSlot(slot int) bool {
	return slot == 1 || slot == 2
}

// State returns the current match state.
func (c *Controller) State() cfg.MatchStateID {
	return c.data().State
}

// Fighter returns slot's fighter entity, nil before the player picked.
func (c *Controller) Fighter(slot int) *donburi.Entry {
	if !validSlot(slot) {
		return nil
	}
	return c.fighters[slot-1]
}

// Selection returns slot's roster index or components.NoSelection.
func (c *Controller) Selection(slot int) int {
	if !validSlot(slot) {
		return components.NoSelection
	}
	return c.data().Selected[slot-1]
}

// Combo returns the number of hits landed this match.
func (c *Controller) Combo() int {
	return c.data().Combo
}

// Winner returns the winning slot and fighter name; slot is
// components.NoSelection while the match is undecided.
func (c *Controller) Winner() (int, string) {
	m := c.data()
	return m.Winner, m.WinnerName
}

// ArenaIndex returns the chosen arena, 0 until one is picked.
func (c *Controller) ArenaIndex() int {
	return c.data().ArenaIndex
}

// Arena returns the chosen arena definition.
func (c *Controller) Arena() cfg.ArenaDef {
	return c.arenas[c.data().ArenaIndex]
}

// Roster returns the templates players currently pick from.
func (c *Controller) Roster() []cfg.CharacterTemplate {
	return c.roster
}

// RosterGeneration changes every time a new roster takes effect.
func (c *Controller) RosterGeneration() int {
	return c.rosterGen
}

// Arenas returns every arena that can be picked.
func (c *Controller) Arenas() []cfg.ArenaDef {
	return c.arenas
}

// World exposes the entity store for renderers.
func (c *Controller) World() donburi.World {
	return c.world
}

// Frame returns the number of ticks since the battle started.
func (c *Controller) Frame() int {
	return c.data().Frame
}
