package engine

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swordfall/config"
	"github.com/lixenwraith/swordfall/physics"
	"github.com/lixenwraith/swordfall/telemetry"
)

func newTestScheduler(gravity float64) (*Scheduler, *physics.World, *telemetry.Instruments) {
	world := physics.NewWorld(mgl64.Vec3{0, gravity, 0})
	metrics := telemetry.Noop()
	return NewScheduler(world, config.Default().Physics, metrics, zerolog.Nop()), world, metrics
}

func TestSchedulerStepsMatchAccumulatedTime(t *testing.T) {
	tests := []struct {
		name   string
		chunks []time.Duration
	}{
		{"exact steps", []time.Duration{time.Second / 60, time.Second / 60}},
		{"below one step", []time.Duration{10 * time.Millisecond}},
		{"uneven frames", []time.Duration{7 * time.Millisecond, 23 * time.Millisecond, 16 * time.Millisecond, 31 * time.Millisecond}},
		{"many small frames", repeat(3*time.Millisecond, 250)},
		{"zero frame", []time.Duration{0, 0, 17 * time.Millisecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, metrics := newTestScheduler(0)
			step := config.Default().Physics.FixedStep

			var total time.Duration
			steps := 0
			for _, c := range tt.chunks {
				total += c
				n, alpha := s.Advance(c)
				steps += n
				assert.GreaterOrEqual(t, alpha, 0.0)
				assert.Less(t, alpha, 1.0)
			}

			assert.Equal(t, int(total/step), steps)
			assert.Equal(t, int64(steps), metrics.Steps.Load())
		})
	}
}

func repeat(d time.Duration, n int) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = d
	}
	return out
}

func TestSchedulerStallClamp(t *testing.T) {
	s, _, metrics := newTestScheduler(0)

	steps, alpha := s.Advance(time.Second)

	assert.Equal(t, 5, steps)
	assert.Zero(t, alpha)
	assert.Equal(t, int64(55), metrics.DroppedSteps.Load())

	// Subsequent normal frames are unaffected
	steps, _ = s.Advance(time.Second / 60)
	assert.Equal(t, 1, steps)
}

func TestSchedulerNegativeElapsedIgnored(t *testing.T) {
	s, _, _ := newTestScheduler(0)
	steps, alpha := s.Advance(-time.Second)
	assert.Zero(t, steps)
	assert.Zero(t, alpha)
}

func TestSchedulerInterpolatesRenderPoses(t *testing.T) {
	s, world, _ := newTestScheduler(0)
	box := world.Add(physics.NewBox("box", mgl64.Vec3{0.5, 0.5, 0.5}, 1, mgl64.Vec3{}))
	box.Velocity = mgl64.Vec3{6, 0, 0}
	s.Track(box)

	step := config.Default().Physics.FixedStep
	steps, alpha := s.Advance(step + step/2)
	require.Equal(t, 1, steps)
	assert.InDelta(t, 0.5, alpha, 1e-6)

	poses := s.RenderPoses()
	require.Len(t, poses, 1)
	assert.Equal(t, "box", poses[0].Label)
	// Halfway between 0 and one step of travel
	assert.InDelta(t, 6*step.Seconds()/2, poses[0].Pose.Position.X(), 1e-6)
	assert.InDelta(t, 6*step.Seconds(), box.Position.X(), 1e-12)
}

func TestSchedulerInterpolationEndpoints(t *testing.T) {
	step := config.Default().Physics.FixedStep
	travel := 6 * step.Seconds()

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"alpha zero shows previous pose", step, 0},
		{"quarter step", step + step/4, travel / 4},
		{"just short of next step shows current pose", 2*step - time.Nanosecond, travel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, world, _ := newTestScheduler(0)
			box := world.Add(physics.NewBox("box", mgl64.Vec3{0.5, 0.5, 0.5}, 1, mgl64.Vec3{}))
			box.Velocity = mgl64.Vec3{6, 0, 0}
			s.Track(box)

			steps, _ := s.Advance(tt.elapsed)
			require.Equal(t, 1, steps)
			require.InDelta(t, travel, box.Position.X(), 1e-12)

			assert.InDelta(t, tt.want, s.RenderPoses()[0].Pose.Position.X(), 1e-6)
		})
	}
}

// restingBox drops a monitored box slightly into a ground plane
func restingBox(world *physics.World) *physics.Body {
	ground := world.Add(physics.NewPlane("ground", 0))
	box := world.Add(physics.NewBox("box", mgl64.Vec3{0.5, 0.5, 0.5}, 1, mgl64.Vec3{0, 0.45, 0}))
	ground.Group, ground.Mask = 1, 1
	box.Group, box.Mask = 1, 1
	box.Monitor = true
	return box
}

func TestSchedulerHandsContactsPerStep(t *testing.T) {
	s, world, _ := newTestScheduler(-10)
	box := restingBox(world)

	var batches [][]physics.Contact
	s.SetContactHandler(func(c []physics.Contact) {
		batches = append(batches, c)
	})

	steps, _ := s.Advance(3 * time.Second / 60)
	require.Equal(t, 3, steps)
	require.Len(t, batches, 3)
	for _, b := range batches {
		require.Len(t, b, 1)
		assert.True(t, b[0].Involves(box))
	}
}

func TestSchedulerHaltStopsMidFrame(t *testing.T) {
	s, world, _ := newTestScheduler(-10)
	box := restingBox(world)
	s.Track(box)

	calls := 0
	s.SetContactHandler(func([]physics.Contact) {
		calls++
		s.Halt()
	})

	steps, alpha := s.Advance(4 * time.Second / 60)
	assert.Equal(t, 1, steps)
	assert.Equal(t, 1, calls)
	assert.Zero(t, alpha)
	assert.True(t, s.Halted())

	steps, _ = s.Advance(time.Second / 10)
	assert.Zero(t, steps)

	// Render poses hold still while halted
	assert.Equal(t, box.Position, s.RenderPoses()[0].Pose.Position)

	s.Reset()
	assert.False(t, s.Halted())
	steps, _ = s.Advance(time.Second / 60)
	assert.Equal(t, 1, steps)
}

func TestSchedulerResetClearsAccumulatorAndContacts(t *testing.T) {
	s, world, _ := newTestScheduler(0)
	box := world.Add(physics.NewBox("box", mgl64.Vec3{0.5, 0.5, 0.5}, 1, mgl64.Vec3{}))
	s.Track(box)

	s.Advance(10 * time.Millisecond)
	box.Position = mgl64.Vec3{3, 0, 0}
	s.Reset()

	assert.Zero(t, s.Alpha())
	steps, _ := s.Advance(10 * time.Millisecond)
	assert.Zero(t, steps)
	assert.Equal(t, box.Position, s.RenderPoses()[0].Pose.Position)
	assert.Empty(t, world.DrainContacts())
}
