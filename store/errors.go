package store

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidElementSize is returned when the element type occupies zero bytes.
	ErrInvalidElementSize = errors.New("store: invalid element size")
	// ErrInvalidCapacity is returned when the requested capacity is not positive.
	ErrInvalidCapacity = errors.New("store: invalid capacity")
	// ErrAllocationFailed is returned when the buffer cannot be obtained.
	ErrAllocationFailed = errors.New("store: allocation failed")
	// ErrOutOfRange is returned for indices outside [0, capacity).
	ErrOutOfRange = errors.New("store: index out of range")
	// ErrDestroyed is returned when a destroyed or released store is used.
	ErrDestroyed = errors.New("store: destroyed")
)

// IndexError reports an index outside a store's capacity.
type IndexError struct {
	Index    int
	Capacity int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("store: index %d out of range [0, %d)", e.Index, e.Capacity)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }
