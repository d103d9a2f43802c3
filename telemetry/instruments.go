package telemetry

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/lixenwraith/swordfall"

// Counter pairs an OTel counter with a process-local total
// The local total feeds the HUD debug line without an exporter
type Counter struct {
	name  string
	otel  metric.Int64Counter
	total atomic.Int64
}

// Add increments both sinks
func (c *Counter) Add(n int64) {
	c.total.Add(n)
	c.otel.Add(context.Background(), n)
}

// Load returns the local total
func (c *Counter) Load() int64 {
	return c.total.Load()
}

// Instruments is the set of simulation counters
type Instruments struct {
	Steps        *Counter
	DroppedSteps *Counter
	Hits         *Counter
	Blocks       *Counter
	Clashes      *Counter
	Kicks        *Counter
	Jumps        *Counter
	Matches      *Counter

	all []*Counter
}

// New creates instruments on the given meter
func New(meter metric.Meter) (*Instruments, error) {
	i := &Instruments{}

	specs := []struct {
		target **Counter
		name   string
		desc   string
	}{
		{&i.Steps, "sim.steps", "Fixed physics steps executed"},
		{&i.DroppedSteps, "sim.steps.dropped", "Steps discarded by the stall guard"},
		{&i.Hits, "combat.hits", "Damaging weapon hits"},
		{&i.Blocks, "combat.blocks", "Hits reduced by guarding"},
		{&i.Clashes, "combat.clashes", "Non-damaging weapon impacts"},
		{&i.Kicks, "combat.kicks", "Kick attempts"},
		{&i.Jumps, "combat.jumps", "Successful jumps"},
		{&i.Matches, "match.started", "Matches started, resets included"},
	}

	for _, s := range specs {
		c, err := meter.Int64Counter(s.name, metric.WithDescription(s.desc))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", s.name, err)
		}
		*s.target = &Counter{name: s.name, otel: c}
		i.all = append(i.all, *s.target)
	}
	sort.Slice(i.all, func(a, b int) bool { return i.all[a].name < i.all[b].name })

	return i, nil
}

// NewGlobal creates instruments on the global meter provider
// No-op export unless the host installed a provider
func NewGlobal() (*Instruments, error) {
	return New(otel.Meter(instrumentationName))
}

// Noop returns instruments that only keep local totals
func Noop() *Instruments {
	i, err := New(noop.Meter{})
	if err != nil {
		// noop meter never fails
		panic(err)
	}
	return i
}

// Range visits every counter total in name order
func (i *Instruments) Range(fn func(name string, total int64)) {
	for _, c := range i.all {
		fn(c.name, c.Load())
	}
}
