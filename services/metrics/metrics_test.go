package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotAverages(t *testing.T) {
	r := NewRecorder("create", "list")

	r.Observe("create", 2*time.Millisecond, nil)
	r.Observe("create", 4*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot()
	assert.Equal(t, int64(2), snap.TotalCalls)
	require.Len(t, snap.Operations, 2)

	create, ok := snap.Operation("create")
	require.True(t, ok)
	assert.Equal(t, int64(2), create.Count)
	assert.Equal(t, int64(1), create.Errors)
	assert.InDelta(t, 3.0, create.AverageMs, 0.001)

	list, ok := snap.Operation("list")
	require.True(t, ok)
	assert.Zero(t, list.Count)
	assert.Zero(t, list.AverageMs)
}

func TestSnapshotSortedByName(t *testing.T) {
	r := NewRecorder("zeta", "alpha", "mid")

	snap := r.Snapshot()
	names := []string{}
	for _, op := range snap.Operations {
		names = append(names, op.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestConcurrentObserve(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			done := r.Time("search")
			done(nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), r.Count("search"))
	assert.Zero(t, r.Count("unknown"))
}
