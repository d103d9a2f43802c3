package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/swordfall/input"
)

// DrawFunc renders one frame after the match has advanced
type DrawFunc func(m *Match)

// Runner drives a Match from a frame ticker
// Elapsed time is measured on a pausable clock; held-key expiry uses the real source
type Runner struct {
	match    *Match
	snapshot *input.Snapshot
	source   TimeProvider
	clock    *PausableClock
	interval time.Duration
	draw     DrawFunc
	logger   zerolog.Logger

	last time.Time
}

func NewRunner(match *Match, snapshot *input.Snapshot, source TimeProvider, interval time.Duration, draw DrawFunc, logger zerolog.Logger) *Runner {
	clock := NewPausableClock(source)
	return &Runner{
		match:    match,
		snapshot: snapshot,
		source:   source,
		clock:    clock,
		interval: interval,
		draw:     draw,
		logger:   logger,
		last:     clock.Now(),
	}
}

// Run ticks until the context is cancelled
func (r *Runner) Run(ctx context.Context) error {
	frameTicker := time.NewTicker(r.interval)
	defer frameTicker.Stop()

	r.logger.Info().Dur("interval", r.interval).Msg("runner started")
	defer r.logger.Info().Int64("frames", r.match.Frame()).Msg("runner stopped")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-frameTicker.C:
			r.Tick()
		}
	}
}

// Tick runs one frame: consume input, advance the match, draw
// Confirm starts an idle match and restarts an ended one
func (r *Runner) Tick() {
	now := r.clock.Now()
	elapsed := now.Sub(r.last)
	r.last = now

	in := r.snapshot.Consume(r.source.Now())

	// During pause: skip updates but still render
	if r.clock.IsPaused() {
		r.render()
		return
	}

	if in.Confirm {
		switch r.match.State() {
		case StateIdle:
			r.match.Start()
		case StateEnded:
			r.match.Reset()
		}
	}

	r.match.Step(elapsed, in)
	r.render()
}

// Pause freezes simulation time, e.g. while the terminal has lost focus
func (r *Runner) Pause() {
	r.clock.Pause()
}

func (r *Runner) Resume() {
	r.clock.Resume()
}

func (r *Runner) Paused() bool {
	return r.clock.IsPaused()
}

func (r *Runner) render() {
	if r.draw != nil {
		r.draw(r.match)
	}
}
