package components

import (
	cfg "github.com/automoto/crab-arena/config"
	"github.com/yohamta/donburi"
)

// SoundQueueData collects sound effects requested by the simulation during
// a frame (singleton component). The audio system drains it.
type SoundQueueData struct {
	Pending []cfg.SoundID
}

var SoundQueue = donburi.NewComponentType[SoundQueueData]()
