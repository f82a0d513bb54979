// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/samdwyer/lampdelve/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cue sounds onto the speaker. The zero value is silent until
// Init succeeds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	log         *slog.Logger
}

var _ game.Sounder = (*Player)(nil)

// NewPlayer returns a player at the given linear volume in [0, 1].
func NewPlayer(volume float64, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{mixer: &beep.Mixer{}, volume: volume, log: logger.With("component", "audio")}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the sound for a cue. Unknown cues and an uninitialized
// speaker are ignored.
func (p *Player) Play(c game.Cue) {
	notes, ok := melodies[c]
	if !ok {
		p.log.Debug("no sound for cue", "cue", c.String())
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	s := melody(notes, sampleRate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every queued sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
