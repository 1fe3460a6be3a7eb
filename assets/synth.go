package assets

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	cfg "github.com/automoto/crab-arena/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// attackTime is the fade-in applied to every tone to avoid a click.
const attackTime = 5 * time.Millisecond

// sweep is a sine oscillator whose frequency moves linearly from start to
// end over length samples.
type sweep struct {
	start, end float64
	rate       beep.SampleRate
	length     int
	position   int
	phase      float64
}

func newSweep(start, end float64, length int, rate beep.SampleRate) beep.Streamer {
	return &sweep{start: start, end: end, rate: rate, length: length}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.length)
		s.phase += 2 * math.Pi * (s.start + (s.end-s.start)*t) / float64(s.rate)
		v := math.Sin(s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise streams seeded white noise so a tone renders the same every time.
type noise struct {
	rng      *rand.Rand
	length   int
	position int
}

func newNoise(seed uint64, length int) beep.Streamer {
	return &noise{rng: rand.New(rand.NewPCG(seed, 0x5eed)), length: length}
}

func (s *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		v := s.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
		s.position++
	}
	return len(samples), true
}

func (s *noise) Err() error { return nil }

// decay shapes a stream with a short linear attack followed by a linear
// fade to silence at the end of length samples.
type decay struct {
	streamer beep.Streamer
	attack   int
	length   int
	position int
}

func newDecay(s beep.Streamer, attack, length int) beep.Streamer {
	return &decay{streamer: s, attack: attack, length: length}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.length {
			return i, i > 0
		}
		vol := 1 - float64(e.position)/float64(e.length)
		if e.position < e.attack {
			vol *= float64(e.position) / float64(e.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. A zero volume is silent since
// log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// toneLength is the number of samples a tone lasts at rate.
func toneLength(tone cfg.ToneConfig, rate beep.SampleRate) int {
	return rate.N(time.Duration(tone.Seconds * float64(time.Second)))
}

// NewToneStreamer builds the streamer graph for a tone: a sweeping sine
// with an optional octave harmonic, blended with seeded noise, under the
// attack and decay envelope.
func NewToneStreamer(tone cfg.ToneConfig, rate beep.SampleRate, seed uint64) beep.Streamer {
	n := toneLength(tone, rate)

	voice := newSweep(tone.StartHz, tone.EndHz, n, rate)
	if tone.Harmonic > 0 {
		voice = newVolume(beep.Mix(
			voice,
			newVolume(newSweep(2*tone.StartHz, 2*tone.EndHz, n, rate), tone.Harmonic),
		), 1/(1+tone.Harmonic))
	}
	if tone.Noise > 0 {
		voice = beep.Mix(
			newVolume(voice, 1-tone.Noise),
			newVolume(newNoise(seed, n), tone.Noise),
		)
	}

	shaped := newDecay(voice, rate.N(attackTime), n)
	return beep.Take(n, newVolume(shaped, tone.Volume))
}

// SynthesizeTone renders a tone as 16-bit little-endian stereo PCM, the
// format ebiten's audio context plays.
func SynthesizeTone(tone cfg.ToneConfig, sampleRate int, seed uint64) []byte {
	rate := beep.SampleRate(sampleRate)
	n := toneLength(tone, rate)
	if n <= 0 {
		return nil
	}
	return renderPCM(NewToneStreamer(tone, rate, seed), n)
}

// renderPCM drains up to n samples from s. Anything the streamer does not
// fill stays silent.
func renderPCM(s beep.Streamer, n int) []byte {
	buf := make([]byte, n*4)
	chunk := make([][2]float64, 512)
	for pos := 0; pos < n; {
		want := min(len(chunk), n-pos)
		got, ok := s.Stream(chunk[:want])
		for i := 0; i < got; i++ {
			l := int16(clampUnit(chunk[i][0]) * math.MaxInt16)
			r := int16(clampUnit(chunk[i][1]) * math.MaxInt16)
			binary.LittleEndian.PutUint16(buf[(pos+i)*4:], uint16(l))
			binary.LittleEndian.PutUint16(buf[(pos+i)*4+2:], uint16(r))
		}
		pos += got
		if !ok || got == 0 {
			break
		}
	}
	return buf
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
