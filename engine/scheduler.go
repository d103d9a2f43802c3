package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/config"
	"github.com/lixenwraith/swordfall/physics"
	"github.com/lixenwraith/swordfall/telemetry"
	"github.com/lixenwraith/swordfall/vmath"
)

// ContactHandler consumes the contacts of one physics step before the next step runs
type ContactHandler func(contacts []physics.Contact)

// RenderPose is the interpolated pose of one tracked body
type RenderPose struct {
	Label string
	Pose  component.Pose
}

type trackedBody struct {
	body *physics.Body
	prev component.Pose
}

// Scheduler decouples physics stepping from the render frame rate
// Real time accumulates and is consumed in whole fixed steps; the remainder
// becomes the interpolation factor for render poses
type Scheduler struct {
	world    *physics.World
	step     time.Duration
	maxSteps int

	accumulator time.Duration
	alpha       float64
	halted      bool

	tracked    []trackedBody
	onContacts ContactHandler

	metrics *telemetry.Instruments
	logger  zerolog.Logger
}

func NewScheduler(world *physics.World, cfg config.Physics, metrics *telemetry.Instruments, logger zerolog.Logger) *Scheduler {
	if metrics == nil {
		metrics = telemetry.Noop()
	}
	return &Scheduler{
		world:    world,
		step:     cfg.FixedStep,
		maxSteps: cfg.MaxStepsPerFrame,
		metrics:  metrics,
		logger:   logger,
	}
}

// SetContactHandler installs the per-step contact consumer
// Without one, contacts are discarded after each step
func (s *Scheduler) SetContactHandler(h ContactHandler) {
	s.onContacts = h
}

// Track adds a body to the render pose export
func (s *Scheduler) Track(body *physics.Body) {
	s.tracked = append(s.tracked, trackedBody{body: body, prev: component.PoseOf(body)})
}

// Advance consumes elapsed real time in fixed steps
// Returns the number of steps run and the interpolation factor in [0,1)
func (s *Scheduler) Advance(elapsed time.Duration) (steps int, alpha float64) {
	if s.halted {
		return 0, s.alpha
	}
	if elapsed > 0 {
		s.accumulator += elapsed
	}

	// Stall guard
	limit := time.Duration(s.maxSteps) * s.step
	if s.accumulator > limit {
		dropped := s.accumulator - limit
		s.accumulator = limit
		s.metrics.DroppedSteps.Add(int64(dropped / s.step))
		s.logger.Debug().Dur("dropped", dropped).Msg("stall clamped")
	}

	dt := s.step.Seconds()
	for s.accumulator >= s.step {
		s.snapshot()
		s.world.Step(dt)
		s.accumulator -= s.step
		steps++

		contacts := s.world.DrainContacts()
		if s.onContacts != nil && len(contacts) > 0 {
			s.onContacts(contacts)
		}

		// Contact handling may end the match mid-frame
		if s.halted {
			s.accumulator = 0
			s.snapshot()
			break
		}
	}

	s.metrics.Steps.Add(int64(steps))
	s.alpha = float64(s.accumulator) / float64(s.step)
	return steps, s.alpha
}

// Alpha returns the interpolation factor of the last Advance
func (s *Scheduler) Alpha() float64 {
	return s.alpha
}

// Halt stops stepping until Reset
func (s *Scheduler) Halt() {
	s.halted = true
}

// Halted reports whether stepping is stopped
func (s *Scheduler) Halted() bool {
	return s.halted
}

// Reset zeroes accumulated time, re-snapshots poses and discards pending contacts
func (s *Scheduler) Reset() {
	s.accumulator = 0
	s.alpha = 0
	s.halted = false
	s.snapshot()
	s.world.ClearContacts()
}

// RenderPoses interpolates every tracked body between its previous and current pose
func (s *Scheduler) RenderPoses() []RenderPose {
	out := make([]RenderPose, len(s.tracked))
	for i, t := range s.tracked {
		out[i] = RenderPose{
			Label: t.body.Label,
			Pose: component.Pose{
				Position:    vmath.Lerp3(t.prev.Position, t.body.Position, s.alpha),
				Orientation: vmath.Slerp(t.prev.Orientation, t.body.Orientation, s.alpha),
			},
		}
	}
	return out
}

func (s *Scheduler) snapshot() {
	for i := range s.tracked {
		s.tracked[i].prev = component.PoseOf(s.tracked[i].body)
	}
}
