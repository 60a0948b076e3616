// Package metrics keeps lock-free operation counters and rough latency averages.
package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

type opStats struct {
	count      atomic.Int64
	errors     atomic.Int64
	totalNanos atomic.Int64
}

// Recorder counts operations and accumulates their durations
type Recorder struct {
	startedAt time.Time
	ops       sync.Map // string -> *opStats
}

// OperationStats is the snapshot of a single operation
type OperationStats struct {
	Name      string  `json:"name"`
	Count     int64   `json:"count"`
	Errors    int64   `json:"errors"`
	AverageMs float64 `json:"average_ms"`
}

// Snapshot is a point-in-time copy of every counter
type Snapshot struct {
	Uptime     time.Duration    `json:"-"`
	UptimeSecs float64          `json:"uptime_seconds"`
	TotalCalls int64            `json:"total_calls"`
	Operations []OperationStats `json:"operations"`
}

// NewRecorder creates a recorder with the given operations pre-registered so
// they show up in snapshots before their first call.
func NewRecorder(ops ...string) *Recorder {
	r := &Recorder{startedAt: time.Now()}
	for _, op := range ops {
		r.stats(op)
	}
	return r
}

func (r *Recorder) stats(op string) *opStats {
	if s, ok := r.ops.Load(op); ok {
		return s.(*opStats)
	}
	s, _ := r.ops.LoadOrStore(op, &opStats{})
	return s.(*opStats)
}

// Observe records one call of op
func (r *Recorder) Observe(op string, elapsed time.Duration, err error) {
	s := r.stats(op)
	s.count.Add(1)
	s.totalNanos.Add(int64(elapsed))
	if err != nil {
		s.errors.Add(1)
	}
}

// Time starts a stopwatch for op; call the returned func with the outcome.
func (r *Recorder) Time(op string) func(err error) {
	start := time.Now()
	return func(err error) {
		r.Observe(op, time.Since(start), err)
	}
}

// Count returns how many times op was observed
func (r *Recorder) Count(op string) int64 {
	if s, ok := r.ops.Load(op); ok {
		return s.(*opStats).count.Load()
	}
	return 0
}

// Snapshot copies the counters, operations sorted by name
func (r *Recorder) Snapshot() Snapshot {
	uptime := time.Since(r.startedAt)
	snap := Snapshot{
		Uptime:     uptime,
		UptimeSecs: uptime.Seconds(),
		Operations: []OperationStats{},
	}

	r.ops.Range(func(key, value any) bool {
		s := value.(*opStats)
		count := s.count.Load()
		stat := OperationStats{
			Name:   key.(string),
			Count:  count,
			Errors: s.errors.Load(),
		}
		if count > 0 {
			stat.AverageMs = float64(s.totalNanos.Load()) / float64(count) / float64(time.Millisecond)
		}
		snap.TotalCalls += count
		snap.Operations = append(snap.Operations, stat)
		return true
	})

	sort.Slice(snap.Operations, func(i, j int) bool {
		return snap.Operations[i].Name < snap.Operations[j].Name
	})
	return snap
}

// Operation looks up one operation in the snapshot
func (s Snapshot) Operation(name string) (OperationStats, bool) {
	for _, op := range s.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return OperationStats{}, false
}
