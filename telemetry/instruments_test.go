package telemetry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAccumulate(t *testing.T) {
	i := Noop()
	i.Hits.Add(1)
	i.Hits.Add(2)
	i.Steps.Add(60)

	assert.Equal(t, int64(3), i.Hits.Load())
	assert.Equal(t, int64(60), i.Steps.Load())
	assert.Zero(t, i.Clashes.Load())
}

func TestRangeSorted(t *testing.T) {
	i := Noop()
	i.Kicks.Add(4)

	var names []string
	got := map[string]int64{}
	i.Range(func(name string, total int64) {
		names = append(names, name)
		got[name] = total
	})

	require.Len(t, names, 8)
	assert.IsIncreasing(t, names)
	assert.Equal(t, "combat.blocks", names[0])
	assert.Equal(t, int64(4), got["combat.kicks"])
}

func TestNewGlobal(t *testing.T) {
	i, err := NewGlobal()
	require.NoError(t, err)
	i.Matches.Add(1)
	assert.Equal(t, int64(1), i.Matches.Load())
}

func TestCounterConcurrentAdd(t *testing.T) {
	i := Noop()
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				i.Blocks.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), i.Blocks.Load())
}
