package govec

import "log/slog"

// DefaultCapacity is the number of slots a new, empty vector reserves.
const DefaultCapacity = 10

type options struct {
	capacity         int
	cloner           any // func(T) T, checked by New
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Vector.
type Option func(*options)

// WithCapacity sets the initial capacity of an empty vector.
// Negative values are treated as zero. It has no effect on FromSlice.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity < 0 {
			capacity = 0
		}
		o.capacity = capacity
	}
}

// WithCloner makes Slice and Copy duplicate every element through clone
// instead of copying it bitwise. Use it for element types that hold pointers,
// slices or maps that must not be shared between the source and the copy.
// Vectors derived by Slice and Copy inherit the cloner.
//
// New panics if clone's element type differs from the vector's.
//
// Example:
//
//	v := govec.New[*Node](govec.WithCloner(func(n *Node) *Node {
//	    c := *n
//	    return &c
//	}))
func WithCloner[T any](clone func(T) T) Option {
	return func(o *options) {
		o.cloner = clone
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &govec.BasicMetricsCollector{}
//	v := govec.New[int](govec.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Grows: %d, peak capacity: %d\n", stats.GrowCount, stats.PeakCapacity)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := govec.NewJSONLogger(slog.LevelDebug)
//	v := govec.New[int](govec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		capacity:         DefaultCapacity,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
