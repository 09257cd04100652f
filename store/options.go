package store

// MemoryAcquirer is an interface for acquiring memory.
type MemoryAcquirer interface {
	AcquireMemory(amount int64) error
	ReleaseMemory(amount int64)
}

type options struct {
	acquirer MemoryAcquirer
}

// Option is a configuration option for Store.
type Option func(*options)

// WithMemoryAcquirer sets the memory acquirer charged for the store's buffer.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(o *options) {
		o.acquirer = acquirer
	}
}
