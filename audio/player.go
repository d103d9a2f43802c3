package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/swordfall/config"
	"github.com/lixenwraith/swordfall/event"
	"github.com/lixenwraith/swordfall/parameter"
)

// CuePlayer plays event cues through the beep speaker
// Safe for concurrent use; degrades to silence when the speaker is unavailable
type CuePlayer struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	enabled bool
	mixer   *beep.Mixer

	// add hands a streamer to the output, nil until initialized
	add func(s beep.Streamer)

	last   [cueCount]time.Time
	now    func() time.Time
	logger zerolog.Logger
}

func NewCuePlayer(cfg config.Audio, logger zerolog.Logger) *CuePlayer {
	return &CuePlayer{
		rate:    beep.SampleRate(parameter.AudioSampleRate),
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		mixer:   &beep.Mixer{},
		now:     time.Now,
		logger:  logger,
	}
}

// Initialize opens the speaker and starts streaming the mixer
// A disabled player stays silent without touching the device
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.add != nil {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	speaker.Play(p.mixer)

	p.add = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.logger.Info().Int("rate", int(p.rate)).Float64("volume", p.volume).Msg("audio initialized")
	return nil
}

// Close stops all cues and releases the speaker
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.add == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.add = nil
}

// Play starts a cue unless the same cue played within MinCueGap
func (p *CuePlayer) Play(c Cue) bool {
	if c < 0 || c >= cueCount {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.add == nil {
		return false
	}

	now := p.now()
	if now.Sub(p.last[c]) < parameter.MinCueGap {
		return false
	}
	p.last[c] = now

	p.add(Synthesize(c, p.rate, p.volume))
	return true
}

// EventTypes implements event.Handler
func (p *CuePlayer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventHit,
		event.EventClash,
		event.EventKick,
		event.EventJump,
		event.EventMatchStart,
		event.EventMatchEnd,
	}
}

// HandleEvent implements event.Handler
func (p *CuePlayer) HandleEvent(ev event.GameEvent) {
	if c, ok := CueFor(ev); ok {
		p.Play(c)
	}
}
