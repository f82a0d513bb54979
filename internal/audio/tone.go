package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/samdwyer/lampdelve/internal/game"
)

// wave shapes for tone.
type wave int

const (
	waveSine wave = iota
	waveSquare
)

// tone is a fixed-length oscillator with a linear fade-out over its
// last quarter.
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	shape    wave
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, shape wave, rate beep.SampleRate) *tone {
	return &tone{freq: freq, length: rate.N(d), shape: shape, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	fadeFrom := t.length * 3 / 4
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		var v float64
		switch t.shape {
		case waveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		if t.position > fadeFrom {
			v *= float64(t.length-t.position) / float64(t.length-fadeFrom)
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// note is one step of a cue melody.
type note struct {
	freq  float64 // 0 is a rest
	dur   time.Duration
	shape wave
}

// melodies maps cues to the notes they play.
var melodies = map[game.Cue][]note{
	game.CueHit:    {{180, 60 * time.Millisecond, waveSquare}},
	game.CueDeath:  {{440, 150 * time.Millisecond, waveSine}, {330, 150 * time.Millisecond, waveSine}, {220, 300 * time.Millisecond, waveSine}},
	game.CuePickup: {{660, 50 * time.Millisecond, waveSine}, {880, 70 * time.Millisecond, waveSine}},
	game.CueWin:    {{523, 120 * time.Millisecond, waveSine}, {0, 30 * time.Millisecond, waveSine}, {659, 120 * time.Millisecond, waveSine}, {0, 30 * time.Millisecond, waveSine}, {784, 250 * time.Millisecond, waveSine}},
}

// melody chains the notes and scales them by volume in [0, 1].
func melody(notes []note, rate beep.SampleRate, volume float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(rate.N(n.dur)))
			continue
		}
		parts = append(parts, newTone(n.freq, n.dur, n.shape, rate))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// withVolume converts a linear volume to beep's logarithmic scale.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	if vol > 1 {
		vol = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// length returns the total sample count of a melody.
func length(notes []note, rate beep.SampleRate) int {
	n := 0
	for _, nt := range notes {
		n += rate.N(nt.dur)
	}
	return n
}
