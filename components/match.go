package components

import (
	cfg "github.com/automoto/crab-arena/config"
	"github.com/yohamta/donburi"
)

// NoSelection marks a player slot or winner that has not been decided
const NoSelection = -1

// MatchData stores the current match state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State      cfg.MatchStateID
	Selected   [2]int // roster index chosen per player, NoSelection if none
	ArenaIndex int
	Combo      int // landed hits this match, display only
	Winner     int // slot (1 or 2) of the winner, NoSelection while undecided
	WinnerName string
	Frame      int // ticks since the match entered playing
}

var Match = donburi.NewComponentType[MatchData]()

// HasBothSelections reports whether both players picked a character.
func (m *MatchData) HasBothSelections() bool {
	return m.Selected[0] != NoSelection && m.Selected[1] != NoSelection
}
