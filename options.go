package gvec

import (
	"github.com/hupe1980/gvec/store"
)

// DefaultCapacity is the slot count of a newly created vector.
const DefaultCapacity = 8

type options struct {
	initialCapacity  int
	acquirer         store.MemoryAcquirer
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Vector.
type Option func(*options)

// WithInitialCapacity sets the number of slots allocated by New.
//
// Values below 1 make New fail with ErrInvalidArgument.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithMemoryAcquirer charges every backing buffer against acquirer,
// typically a *resource.Controller shared by several vectors.
//
// A refused charge surfaces as ErrAllocation from New or PushBack.
func WithMemoryAcquirer(acquirer store.MemoryAcquirer) Option {
	return func(o *options) {
		o.acquirer = acquirer
	}
}

// WithMetricsCollector configures a metrics collector for observability.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		initialCapacity:  DefaultCapacity,
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
