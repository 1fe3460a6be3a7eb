package config

// KeyID identifies a keyboard key by the name browsers report for it
// ("a", "ArrowLeft", " ", "Enter"). Frontends translate their native
// key codes into these names.
type KeyID string

const (
	KeySpace      KeyID = " "
	KeyEnter      KeyID = "Enter"
	KeyArrowLeft  KeyID = "ArrowLeft"
	KeyArrowRight KeyID = "ArrowRight"
	KeyArrowUp    KeyID = "ArrowUp"
	KeyEscape     KeyID = "Escape"
)

// ActionID represents a logical fighter action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionAttack
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists every key that triggers an action. Letter keys are
// listed in both cases because the reported name depends on shift state.
type InputBinding struct {
	Keys []KeyID
}

// PlayerBindings maps actions to keys for one player slot
type PlayerBindings [ActionCount]InputBinding

// InputConfig holds the key layout for both players
type InputConfig struct {
	Players [2]PlayerBindings
}

// Input is the global input configuration
var Input InputConfig

// Matches reports whether key is bound to the action.
func (b InputBinding) Matches(key KeyID) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

func init() {
	Input = InputConfig{
		Players: [2]PlayerBindings{
			{
				ActionMoveLeft:  {Keys: []KeyID{"a", "A"}},
				ActionMoveRight: {Keys: []KeyID{"d", "D"}},
				ActionAttack:    {Keys: []KeyID{KeySpace, "w", "W"}},
			},
			{
				ActionMoveLeft:  {Keys: []KeyID{KeyArrowLeft}},
				ActionMoveRight: {Keys: []KeyID{KeyArrowRight}},
				ActionAttack:    {Keys: []KeyID{KeyEnter, KeyArrowUp}},
			},
		},
	}
}
