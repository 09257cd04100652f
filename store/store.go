package store

import (
	"fmt"
	"unsafe"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/gvec/internal/conv"
)

// Store is a fixed-capacity array of T with optional ownership of its live values.
type Store[T any] struct {
	slots      []T
	live       *bitset.BitSet
	elemSize   uintptr
	bytes      int64
	destructor func(T)
	acquirer   MemoryAcquirer
	destroyed  bool
}

// New creates a Store with room for capacity elements of T.
//
// If destructor is non-nil the store owns its live values and calls the
// destructor on each of them when destroyed. Pass nil to leave ownership
// with the caller.
func New[T any](capacity int, destructor func(T), opts ...Option) (*Store[T], error) {
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		return nil, ErrInvalidElementSize
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	bytes, err := conv.ByteSize(capacity, elemSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	if o.acquirer != nil {
		if err := o.acquirer.AcquireMemory(bytes); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
		}
	}

	slots, live, err := allocate[T](capacity)
	if err != nil {
		if o.acquirer != nil {
			o.acquirer.ReleaseMemory(bytes)
		}
		return nil, err
	}

	return &Store[T]{
		slots:      slots,
		live:       live,
		elemSize:   elemSize,
		bytes:      bytes,
		destructor: destructor,
		acquirer:   o.acquirer,
	}, nil
}

// allocate turns the runtime's "len out of range" panic for oversized
// buffers into an error.
func allocate[T any](capacity int) (slots []T, live *bitset.BitSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			slots, live = nil, nil
			err = fmt.Errorf("%w: %v", ErrAllocationFailed, r)
		}
	}()

	n, err := conv.IntToUint(capacity)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	return make([]T, capacity), bitset.New(n), nil
}

func (s *Store[T]) check(index int) error {
	if s.destroyed {
		return ErrDestroyed
	}
	if index < 0 || index >= len(s.slots) {
		return &IndexError{Index: index, Capacity: len(s.slots)}
	}
	return nil
}

// Get returns the value at index. Slots that were never written hold the zero value.
func (s *Store[T]) Get(index int) (T, error) {
	if err := s.check(index); err != nil {
		var zero T
		return zero, err
	}
	return s.slots[index], nil
}

// Set stores value at index and marks the slot live.
func (s *Store[T]) Set(index int, value T) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.slots[index] = value
	s.live.Set(uint(index))
	return nil
}

// Take removes the value at index and returns it. The slot is zeroed and no
// longer live, so ownership of the value passes to the caller.
func (s *Store[T]) Take(index int) (T, error) {
	var zero T
	if err := s.check(index); err != nil {
		return zero, err
	}
	v := s.slots[index]
	s.slots[index] = zero
	s.live.Clear(uint(index))
	return v, nil
}

// Occupied reports whether the slot at index holds a live value.
func (s *Store[T]) Occupied(index int) bool {
	if s.check(index) != nil {
		return false
	}
	return s.live.Test(uint(index))
}

// Live returns the number of live slots.
func (s *Store[T]) Live() int {
	if s.destroyed {
		return 0
	}
	n, _ := conv.UintToInt(s.live.Count()) // Count <= capacity
	return n
}

// MoveTo moves slots [0, n) into dst, together with their live marks.
// The moved slots are zeroed in s and the values become dst's responsibility.
func (s *Store[T]) MoveTo(dst *Store[T], n int) error {
	if s.destroyed || dst == nil || dst.destroyed {
		return ErrDestroyed
	}
	if n < 0 || n > len(s.slots) {
		return &IndexError{Index: n, Capacity: len(s.slots)}
	}
	if n > len(dst.slots) {
		return &IndexError{Index: n, Capacity: len(dst.slots)}
	}

	copy(dst.slots[:n], s.slots[:n])
	clear(s.slots[:n])

	limit := uint(n)
	for i, ok := s.live.NextSet(0); ok && i < limit; i, ok = s.live.NextSet(i + 1) {
		dst.live.Set(i)
		s.live.Clear(i)
	}
	return nil
}

// Destroy calls the destructor (if any) once for every live slot, in index
// order, and then releases the buffer.
func (s *Store[T]) Destroy() error {
	if s.destroyed {
		return ErrDestroyed
	}
	if s.destructor != nil {
		for i, ok := s.live.NextSet(0); ok; i, ok = s.live.NextSet(i + 1) {
			s.destructor(s.slots[i])
		}
	}
	return s.Release()
}

// Release drops the buffer and refunds the memory acquirer without calling
// the destructor. Use it after the contents were moved out with MoveTo.
func (s *Store[T]) Release() error {
	if s.destroyed {
		return ErrDestroyed
	}
	s.destroyed = true
	s.slots = nil
	s.live = nil
	if s.acquirer != nil {
		s.acquirer.ReleaseMemory(s.bytes)
	}
	return nil
}

// Cap returns the number of slots.
func (s *Store[T]) Cap() int {
	return len(s.slots)
}

// ElementSize returns the width of one slot in bytes.
func (s *Store[T]) ElementSize() uintptr {
	return s.elemSize
}

// Bytes returns the number of bytes charged for the buffer.
func (s *Store[T]) Bytes() int64 {
	return s.bytes
}

// Owning reports whether the store releases its live values on Destroy.
func (s *Store[T]) Owning() bool {
	return s.destructor != nil
}

// SetDestructor replaces the destructor. Passing nil gives up ownership.
func (s *Store[T]) SetDestructor(destructor func(T)) {
	s.destructor = destructor
}

// Destroyed reports whether Destroy or Release has been called.
func (s *Store[T]) Destroyed() bool {
	return s.destroyed
}

func (s *Store[T]) String() string {
	return fmt.Sprintf(
		"Store{cap: %d, live: %d, elem: %dB, reserved: %dB, owning: %t}",
		s.Cap(),
		s.Live(),
		s.elemSize,
		s.bytes,
		s.Owning(),
	)
}
