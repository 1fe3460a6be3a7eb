package assets

import (
	"bytes"
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/crab-arena/config"
)

func TestSynthesizeToneLength(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    int
	}{
		{"tenth of a second", 0.1, 4410 * 4},
		{"one second", 1, 44100 * 4},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm := SynthesizeTone(cfg.ToneConfig{StartHz: 440, EndHz: 440, Seconds: tt.seconds, Volume: 1}, 44100, 1)
			if len(pcm) != tt.want {
				t.Errorf("len = %d, want %d", len(pcm), tt.want)
			}
		})
	}
}

func TestSynthesizeToneShape(t *testing.T) {
	tone := cfg.ToneConfig{StartHz: 220, EndHz: 90, Seconds: 0.2, Noise: 0.5, Volume: 0.9, Harmonic: 0.3}
	pcm := SynthesizeTone(tone, 44100, 7)

	if !bytes.Equal(pcm, SynthesizeTone(tone, 44100, 7)) {
		t.Fatal("same seed rendered different samples")
	}

	sample := func(i int) (int16, int16) {
		l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		return l, r
	}

	if l, _ := sample(0); l != 0 {
		t.Errorf("first sample = %d, want silence under the attack", l)
	}

	var peak int16
	for i := 0; i < len(pcm)/4; i++ {
		l, r := sample(i)
		if l != r {
			t.Fatalf("sample %d: channels differ (%d, %d)", i, l, r)
		}
		if l < 0 {
			l = -l
		}
		peak = max(peak, l)
	}
	if peak == 0 {
		t.Fatal("tone rendered as silence")
	}
	if limit := int16(tone.Volume*32767) + 1; peak > limit {
		t.Errorf("peak %d exceeds volume limit %d", peak, limit)
	}
}

func TestEveryConfiguredSoundRenders(t *testing.T) {
	for id, tone := range cfg.Audio.Tones {
		if pcm := SynthesizeTone(tone, cfg.Audio.SampleRate, uint64(id)); len(pcm) == 0 {
			t.Errorf("sound %d rendered empty", id)
		}
	}
}
