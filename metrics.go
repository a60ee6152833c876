package govec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A collector may be shared by many vectors, so implementations must be safe
// for concurrent use even though a single Vector is not.
type MetricsCollector interface {
	// RecordGrow is called after each buffer reallocation.
	RecordGrow(oldCapacity, newCapacity int)

	// RecordAccessError is called whenever an indexed access is rejected.
	RecordAccessError(kind AccessKind)

	// RecordSort is called after each sort with the number of elements and
	// the time taken.
	RecordSort(n int, duration time.Duration)

	// RecordRemove is called after each removal by value or by positions.
	RecordRemove(removed int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)           {}
func (NoopMetricsCollector) RecordAccessError(AccessKind)  {}
func (NoopMetricsCollector) RecordSort(int, time.Duration) {}
func (NoopMetricsCollector) RecordRemove(int)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount         atomic.Int64
	PeakCapacity      atomic.Int64
	EmptyAccessErrors atomic.Int64
	OutOfBoundsErrors atomic.Int64
	SortCount         atomic.Int64
	SortedElements    atomic.Int64
	SortTotalNanos    atomic.Int64
	RemoveCount       atomic.Int64
	RemovedElements   atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCapacity, newCapacity int) {
	b.GrowCount.Add(1)
	for {
		peak := b.PeakCapacity.Load()
		if int64(newCapacity) <= peak || b.PeakCapacity.CompareAndSwap(peak, int64(newCapacity)) {
			return
		}
	}
}

// RecordAccessError implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAccessError(kind AccessKind) {
	if kind == EmptyAccess {
		b.EmptyAccessErrors.Add(1)
		return
	}
	b.OutOfBoundsErrors.Add(1)
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(n int, duration time.Duration) {
	b.SortCount.Add(1)
	b.SortedElements.Add(int64(n))
	b.SortTotalNanos.Add(duration.Nanoseconds())
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(removed int) {
	b.RemoveCount.Add(1)
	b.RemovedElements.Add(int64(removed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:         b.GrowCount.Load(),
		PeakCapacity:      b.PeakCapacity.Load(),
		EmptyAccessErrors: b.EmptyAccessErrors.Load(),
		OutOfBoundsErrors: b.OutOfBoundsErrors.Load(),
		SortCount:         b.SortCount.Load(),
		SortedElements:    b.SortedElements.Load(),
		SortAvgNanos:      b.getAvgSortNanos(),
		RemoveCount:       b.RemoveCount.Load(),
		RemovedElements:   b.RemovedElements.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSortNanos() int64 {
	count := b.SortCount.Load()
	if count == 0 {
		return 0
	}
	return b.SortTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount         int64
	PeakCapacity      int64
	EmptyAccessErrors int64
	OutOfBoundsErrors int64
	SortCount         int64
	SortedElements    int64
	SortAvgNanos      int64
	RemoveCount       int64
	RemovedElements   int64
}
