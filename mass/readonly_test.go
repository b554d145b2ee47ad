package mass_test

import (
	"maps"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-mass-utils/mass"
)

func TestSnapshot(t *testing.T) {
	t.Parallel()
	ro := mass.Snapshot(func(m map[string]int) {
		m["a"] = 1
		m["b"] = 2
	})

	assert.Equal(t, 2, ro.Len())
	v, ok := ro.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, ro.Has("z"))
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, maps.Collect(ro.All()))

	clone := ro.Clone()
	clone["c"] = 3
	assert.False(t, ro.Has("c"), "mutating a clone must not leak into the snapshot")

	empty := mass.Snapshot[string, int](nil)
	assert.Equal(t, 0, empty.Len())
}

func TestOnceSnapshotInitializesOnce(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	defaults := mass.OnceSnapshot(func(m map[string]int) {
		calls.Add(1)
		m["retries"] = 3
	})
	assert.Equal(t, int32(0), calls.Load(), "initialization is deferred to first use")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, _ := defaults().Get("retries")
			assert.Equal(t, 3, n)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}
