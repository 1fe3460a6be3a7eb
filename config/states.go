package config

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStateMenu        MatchStateID = iota // Title screen
	MatchStateSelect                          // Character select
	MatchStateArenaSelect                     // Arena select
	MatchStatePlaying                         // Active battle
	MatchStateGameOver                        // Winner shown, waiting for rematch
)

var matchStateNames = map[MatchStateID]string{
	MatchStateMenu:        "menu",
	MatchStateSelect:      "select",
	MatchStateArenaSelect: "arena-select",
	MatchStatePlaying:     "playing",
	MatchStateGameOver:    "gameover",
}

func (s MatchStateID) String() string {
	if name, ok := matchStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Facing is the horizontal direction a fighter looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Sign returns -1 for left and 1 for right, for mirroring sprites.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}
