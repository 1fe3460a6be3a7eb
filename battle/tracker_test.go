package battle

import (
	"testing"

	cfg "github.com/automoto/crab-arena/config"
)

func TestTrackerPressIsEdgeTriggered(t *testing.T) {
	tr := NewTracker()

	if !tr.Press("a") {
		t.Fatal("first press should be fresh")
	}
	if tr.Press("a") {
		t.Fatal("repeated press of a held key should not be fresh")
	}
	if !tr.Held("a") || tr.Len() != 1 {
		t.Fatalf("held=%v len=%d, want held and 1", tr.Held("a"), tr.Len())
	}

	tr.Release("a")
	if tr.Held("a") {
		t.Fatal("released key still held")
	}
	if !tr.Press("a") {
		t.Fatal("press after release should be fresh again")
	}
}

func TestTrackerReleaseUnheldIsNoop(t *testing.T) {
	tr := NewTracker()
	tr.Release(cfg.KeyEnter)
	if tr.Len() != 0 {
		t.Fatalf("len = %d, want 0", tr.Len())
	}
}

func TestTrackerAnyHeld(t *testing.T) {
	tests := []struct {
		name string
		held []cfg.KeyID
		keys []cfg.KeyID
		want bool
	}{
		{"none held", nil, []cfg.KeyID{"a", "A"}, false},
		{"lowercase", []cfg.KeyID{"a"}, []cfg.KeyID{"a", "A"}, true},
		{"uppercase", []cfg.KeyID{"A"}, []cfg.KeyID{"a", "A"}, true},
		{"other key", []cfg.KeyID{cfg.KeyArrowLeft}, []cfg.KeyID{"a", "A"}, false},
		{"no keys asked", []cfg.KeyID{"a"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			for _, k := range tt.held {
				tr.Press(k)
			}
			if got := tr.AnyHeld(tt.keys...); got != tt.want {
				t.Errorf("AnyHeld(%v) = %v, want %v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.Press("a")
	tr.Press(cfg.KeyArrowRight)
	tr.Reset()
	if tr.Len() != 0 || tr.Held("a") {
		t.Fatalf("reset left %d keys held", tr.Len())
	}
}
