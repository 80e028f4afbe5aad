package exercise

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting evaluation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordTask is called after each task evaluation.
	// err is nil if the task succeeded.
	RecordTask(op Op, duration time.Duration, err error)

	// RecordRun is called after each batch run.
	// count is the number of tasks attempted, failed is the number that failed.
	RecordRun(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTask(Op, time.Duration, error) {}
func (NoopMetricsCollector) RecordRun(int, int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TaskCount      atomic.Int64
	TaskErrors     atomic.Int64
	TaskTotalNanos atomic.Int64
	RunCount       atomic.Int64
	RunTasks       atomic.Int64
	RunFailed      atomic.Int64
}

// RecordTask implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTask(_ Op, duration time.Duration, err error) {
	b.TaskCount.Add(1)
	b.TaskTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TaskErrors.Add(1)
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(count, failed int, _ time.Duration) {
	b.RunCount.Add(1)
	b.RunTasks.Add(int64(count))
	b.RunFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TaskCount:    b.TaskCount.Load(),
		TaskErrors:   b.TaskErrors.Load(),
		TaskAvgNanos: b.getAvgTaskNanos(),
		RunCount:     b.RunCount.Load(),
		RunTasks:     b.RunTasks.Load(),
		RunFailed:    b.RunFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgTaskNanos() int64 {
	count := b.TaskCount.Load()
	if count == 0 {
		return 0
	}
	return b.TaskTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TaskCount    int64
	TaskErrors   int64
	TaskAvgNanos int64
	RunCount     int64
	RunTasks     int64
	RunFailed    int64
}
