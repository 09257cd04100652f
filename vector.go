package gvec

import (
	"fmt"
	"time"

	"github.com/hupe1980/gvec/internal/conv"
	"github.com/hupe1980/gvec/store"
)

// Vector is a growable, bounds-checked sequence of T backed by a store.Store.
//
// The backing store doubles whenever a push would leave it without a free
// slot (size+1 >= capacity), so size < capacity holds after every push.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	size       int
	store      *store.Store[T]
	destructor func(T)
	acquirer   store.MemoryAcquirer
	metrics    MetricsCollector
	logger     *Logger
	destroyed  bool
}

// New creates an empty Vector.
//
// If destructor is non-nil the vector owns its elements: Destroy calls the
// destructor once on every element still held. Pass nil to keep ownership
// with the caller.
//
// New fails with ErrInvalidArgument when T occupies zero bytes or the
// initial capacity is below 1, and with ErrAllocation when the buffer
// cannot be obtained.
func New[T any](destructor func(T), opts ...Option) (*Vector[T], error) {
	o := applyOptions(opts)

	s, err := store.New[T](o.initialCapacity, destructor, store.WithMemoryAcquirer(o.acquirer))
	if err != nil {
		return nil, translateError(err)
	}

	return &Vector[T]{
		store:      s,
		destructor: destructor,
		acquirer:   o.acquirer,
		metrics:    o.metricsCollector,
		logger:     o.logger,
	}, nil
}

// Destroy releases the vector. Elements still held are passed to the
// destructor, if one is configured, in index order.
//
// A destroyed vector rejects every further operation with ErrDestroyed.
func (v *Vector[T]) Destroy() error {
	if v == nil {
		return nil
	}
	if v.destroyed {
		return ErrDestroyed
	}

	size, capacity := v.size, v.store.Cap()
	if err := v.store.Destroy(); err != nil {
		return translateError(err)
	}
	v.destroyed = true
	v.size = 0

	v.logger.LogDestroy(size, capacity, v.Owning())
	v.metrics.RecordDestroy(size)
	return nil
}

// PushBack appends value, growing the backing store first if needed.
//
// If growth fails the vector is left unchanged and ErrAllocation is returned.
func (v *Vector[T]) PushBack(value T) error {
	err := v.pushBack(value)
	v.metrics.RecordPush(err)
	return err
}

func (v *Vector[T]) pushBack(value T) error {
	if v.destroyed {
		return ErrDestroyed
	}

	if v.size+1 >= v.store.Cap() {
		if err := v.grow(); err != nil {
			return err
		}
	}

	if err := v.store.Set(v.size, value); err != nil {
		return translateError(err)
	}
	v.size++
	return nil
}

// grow doubles the backing store and moves the live prefix across.
func (v *Vector[T]) grow() error {
	start := time.Now()
	from := v.store.Cap()

	to, err := conv.DoubleInt(from)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrAllocation, err)
		v.recordGrow(from, to, start, err)
		return err
	}

	next, err := store.New[T](to, v.destructor, store.WithMemoryAcquirer(v.acquirer))
	if err != nil {
		err = translateError(err)
		v.recordGrow(from, to, start, err)
		return err
	}

	if err := v.store.MoveTo(next, v.size); err != nil {
		_ = next.Release()
		err = translateError(err)
		v.recordGrow(from, to, start, err)
		return err
	}

	_ = v.store.Release()
	v.store = next

	v.recordGrow(from, to, start, nil)
	return nil
}

func (v *Vector[T]) recordGrow(from, to int, start time.Time, err error) {
	v.logger.LogGrow(from, to, v.size, err)
	v.metrics.RecordGrow(from, to, time.Since(start), err)
}

// PopBack removes the last element and returns it.
//
// The vacated slot is cleared, so the caller takes ownership of the returned
// value: a later Destroy will not pass it to the destructor. PopBack fails
// with ErrNotFound on an empty vector.
func (v *Vector[T]) PopBack() (T, error) {
	value, err := v.popBack()
	v.metrics.RecordPop(err)
	return value, err
}

func (v *Vector[T]) popBack() (T, error) {
	var zero T
	if v.destroyed {
		return zero, ErrDestroyed
	}
	if v.size == 0 {
		return zero, fmt.Errorf("%w: vector is empty", ErrNotFound)
	}

	value, err := v.store.Take(v.size - 1)
	if err != nil {
		return zero, translateError(err)
	}
	v.size--
	return value, nil
}

// Get returns the element at index.
func (v *Vector[T]) Get(index int) (T, error) {
	if err := v.check(index); err != nil {
		var zero T
		return zero, err
	}

	value, err := v.store.Get(index)
	if err != nil {
		return value, translateError(err)
	}
	return value, nil
}

// Set overwrites the element at index.
//
// The previous element is not passed to the destructor; releasing it is up
// to the caller.
func (v *Vector[T]) Set(index int, value T) error {
	if err := v.check(index); err != nil {
		return err
	}
	return translateError(v.store.Set(index, value))
}

func (v *Vector[T]) check(index int) error {
	if v.destroyed {
		return ErrDestroyed
	}
	if index < 0 || index >= v.size {
		return &ErrIndexOutOfRange{Index: index, Size: v.size}
	}
	return nil
}

// Size returns the number of elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v.destroyed {
		return 0
	}
	return v.store.Cap()
}

// Owning reports whether the vector releases its elements on Destroy.
func (v *Vector[T]) Owning() bool {
	return v.destructor != nil
}

// SetDestructor replaces the element destructor. Passing nil hands
// ownership of the elements back to the caller.
func (v *Vector[T]) SetDestructor(destructor func(T)) {
	v.destructor = destructor
	if !v.destroyed {
		v.store.SetDestructor(destructor)
	}
}

func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector{size: %d, cap: %d, owning: %t}", v.size, v.Cap(), v.Owning())
}
