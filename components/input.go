package components

import (
	cfg "github.com/automoto/crab-arena/config"
	"github.com/yohamta/donburi"
)

// KeyEventData is one raw key transition collected by a frontend during a
// frame, in arrival order.
type KeyEventData struct {
	Key  cfg.KeyID
	Down bool
}

// InputData buffers the key transitions of the current frame (singleton
// component). The battle input system forwards them to the controller.
type InputData struct {
	Events []KeyEventData
}

var Input = donburi.NewComponentType[InputData]()
