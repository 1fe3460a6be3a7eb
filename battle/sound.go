package battle

import (
	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/yohamta/donburi"
)

func queueSound(w donburi.World, id cfg.SoundID) {
	entry, ok := components.SoundQueue.First(w)
	if !ok {
		return
	}
	q := components.SoundQueue.Get(entry)
	q.Pending = append(q.Pending, id)
}

// DrainSounds returns the sounds queued since the last call and empties
// the queue.
func DrainSounds(w donburi.World) []cfg.SoundID {
	entry, ok := components.SoundQueue.First(w)
	if !ok {
		return nil
	}
	q := components.SoundQueue.Get(entry)
	if len(q.Pending) == 0 {
		return nil
	}
	out := make([]cfg.SoundID, len(q.Pending))
	copy(out, q.Pending)
	q.Pending = q.Pending[:0]
	return out
}
