// Package sound plays short tones for arena events through the system
// speaker.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tank-arena/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a single sine tone.
type Cue struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // Linear gain in (0, 1]
}

var cues = map[core.EventKind]Cue{
	core.EventShot:           {Freq: 880, Duration: 40 * time.Millisecond, Volume: 0.25},
	core.EventEnemyShot:      {Freq: 330, Duration: 40 * time.Millisecond, Volume: 0.15},
	core.EventEnemyDestroyed: {Freq: 220, Duration: 90 * time.Millisecond, Volume: 0.4},
	core.EventPlayerHit:      {Freq: 150, Duration: 80 * time.Millisecond, Volume: 0.4},
	core.EventLifeLost:       {Freq: 110, Duration: 250 * time.Millisecond, Volume: 0.5},
	core.EventPickup:         {Freq: 1320, Duration: 60 * time.Millisecond, Volume: 0.3},
	core.EventLevelUp:        {Freq: 660, Duration: 150 * time.Millisecond, Volume: 0.4},
	core.EventGameOver:       {Freq: 80, Duration: 400 * time.Millisecond, Volume: 0.5},
	core.EventRestart:        {Freq: 523, Duration: 100 * time.Millisecond, Volume: 0.3},
}

// CueFor returns the tone played for an event kind.
func CueFor(kind core.EventKind) (Cue, bool) {
	c, ok := cues[kind]
	return c, ok
}

// Player mixes event cues into the speaker. A Player whose speaker failed
// to open stays silent.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	enabled bool
	logger  *log.Logger
}

// New opens the speaker. Audio is optional, so a failure is logged and a
// silent Player is returned.
func New(logger *log.Logger) *Player {
	p := &Player{rate: sampleRate, mixer: &beep.Mixer{}, logger: logger}

	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p
}

// Enabled reports whether the speaker is open.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues one cue per distinct event kind.
func (p *Player) Play(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	streams := p.streams(events)
	if len(streams) == 0 {
		return
	}
	speaker.Lock()
	p.mixer.Add(streams...)
	speaker.Unlock()
}

// Close releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	p.enabled = false
	speaker.Close()
}

func (p *Player) streams(events []core.Event) []beep.Streamer {
	seen := make(map[core.EventKind]bool, len(events))
	out := make([]beep.Streamer, 0, len(events))
	for _, e := range events {
		if seen[e.Kind] {
			continue
		}
		seen[e.Kind] = true
		c, ok := CueFor(e.Kind)
		if !ok {
			continue
		}
		s, err := p.tone(c)
		if err != nil {
			if p.logger != nil {
				p.logger.Debug("cue skipped", "event", e.Kind, "err", err)
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// tone renders a cue as a finite streamer.
func (p *Player) tone(c Cue) (beep.Streamer, error) {
	sine, err := generators.SineTone(p.rate, c.Freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(p.rate.N(c.Duration), sine),
		Base:     2,
		Volume:   math.Log2(c.Volume),
	}, nil
}
