package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TimeProvider is a source of monotonic time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// PausableClock is simulation time over a real source, frozen while paused
// Pause and Resume may be called from the input goroutine
type PausableClock struct {
	mu     sync.RWMutex
	source TimeProvider

	start time.Time

	paused      atomic.Bool
	pauseStart  time.Time
	totalPaused time.Duration
}

func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Now returns simulation time: real elapsed minus every pause
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused.Load() {
		return pc.start.Add(pc.pauseStart.Sub(pc.start) - pc.totalPaused)
	}
	return pc.start.Add(pc.source.Now().Sub(pc.start) - pc.totalPaused)
}

// RealTime returns the source time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused.CompareAndSwap(false, true) {
		pc.pauseStart = pc.source.Now()
	}
}

func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused.CompareAndSwap(true, false) {
		pc.totalPaused += pc.source.Now().Sub(pc.pauseStart)
		pc.pauseStart = time.Time{}
	}
}

func (pc *PausableClock) IsPaused() bool {
	return pc.paused.Load()
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused.Load() && !pc.pauseStart.IsZero() {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
