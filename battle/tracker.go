package battle

import cfg "github.com/automoto/crab-arena/config"

// Tracker records which keys are currently held. Movement reads it every
// frame (level-sensitive); attacks use the edge reported by Press.
type Tracker struct {
	held map[cfg.KeyID]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{held: make(map[cfg.KeyID]struct{})}
}

// Press marks key as held. It returns true only for a fresh press, so
// auto-repeated key-downs of a held key report false.
func (t *Tracker) Press(key cfg.KeyID) bool {
	if _, ok := t.held[key]; ok {
		return false
	}
	t.held[key] = struct{}{}
	return true
}

// Release marks key as no longer held. Releasing an unheld key is a no-op.
func (t *Tracker) Release(key cfg.KeyID) {
	delete(t.held, key)
}

func (t *Tracker) Held(key cfg.KeyID) bool {
	_, ok := t.held[key]
	return ok
}

// AnyHeld reports whether at least one of keys is held.
func (t *Tracker) AnyHeld(keys ...cfg.KeyID) bool {
	for _, k := range keys {
		if t.Held(k) {
			return true
		}
	}
	return false
}

// Len returns the number of held keys.
func (t *Tracker) Len() int {
	return len(t.held)
}

// Reset releases every key, e.g. when the window loses focus.
func (t *Tracker) Reset() {
	clear(t.held)
}
