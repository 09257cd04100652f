package gvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordPush is called after each PushBack. err is nil if successful.
	RecordPush(err error)

	// RecordPop is called after each PopBack. err is nil if successful.
	RecordPop(err error)

	// RecordGrow is called after each attempt to enlarge the backing store.
	// from and to are the old and requested capacities, duration covers
	// allocation and the element move.
	RecordGrow(from, to int, duration time.Duration, err error)

	// RecordDestroy is called when a vector is destroyed with the number of
	// elements it still held.
	RecordDestroy(size int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPush(error)                          {}
func (NoopMetricsCollector) RecordPop(error)                           {}
func (NoopMetricsCollector) RecordGrow(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDestroy(int)                         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PushCount      atomic.Int64
	PushErrors     atomic.Int64
	PopCount       atomic.Int64
	PopErrors      atomic.Int64
	GrowCount      atomic.Int64
	GrowErrors     atomic.Int64
	GrowTotalNanos atomic.Int64
	MaxCapacity    atomic.Int64
	DestroyCount   atomic.Int64
	DestroyedItems atomic.Int64
}

// RecordPush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPush(err error) {
	b.PushCount.Add(1)
	if err != nil {
		b.PushErrors.Add(1)
	}
}

// RecordPop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPop(err error) {
	b.PopCount.Add(1)
	if err != nil {
		b.PopErrors.Add(1)
	}
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(from, to int, duration time.Duration, err error) {
	b.GrowCount.Add(1)
	b.GrowTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GrowErrors.Add(1)
		return
	}
	for {
		current := b.MaxCapacity.Load()
		if int64(to) <= current || b.MaxCapacity.CompareAndSwap(current, int64(to)) {
			return
		}
	}
}

// RecordDestroy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDestroy(size int) {
	b.DestroyCount.Add(1)
	b.DestroyedItems.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PushCount:      b.PushCount.Load(),
		PushErrors:     b.PushErrors.Load(),
		PopCount:       b.PopCount.Load(),
		PopErrors:      b.PopErrors.Load(),
		GrowCount:      b.GrowCount.Load(),
		GrowErrors:     b.GrowErrors.Load(),
		GrowAvgNanos:   b.getAvgGrowNanos(),
		MaxCapacity:    b.MaxCapacity.Load(),
		DestroyCount:   b.DestroyCount.Load(),
		DestroyedItems: b.DestroyedItems.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgGrowNanos() int64 {
	count := b.GrowCount.Load()
	if count == 0 {
		return 0
	}
	return b.GrowTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PushCount      int64
	PushErrors     int64
	PopCount       int64
	PopErrors      int64
	GrowCount      int64
	GrowErrors     int64
	GrowAvgNanos   int64
	MaxCapacity    int64
	DestroyCount   int64
	DestroyedItems int64
}
