package gvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gvec/store"
)

var (
	// ErrAllocation is returned when memory for a vector or its growth cannot be obtained.
	ErrAllocation = errors.New("allocation failed")
	// ErrNotFound is returned when an index is outside the vector or the vector is empty.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned when a vector cannot be built from its arguments.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDestroyed is returned when a destroyed vector is used.
	ErrDestroyed = errors.New("vector destroyed")
)

// ErrIndexOutOfRange indicates an index outside [0, size).
//
// It matches ErrNotFound via errors.Is.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrNotFound }

// translateError maps store errors onto the vector's error vocabulary.
// The original error stays reachable through errors.Unwrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrAllocationFailed):
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	case errors.Is(err, store.ErrInvalidElementSize), errors.Is(err, store.ErrInvalidCapacity):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	case errors.Is(err, store.ErrDestroyed):
		return fmt.Errorf("%w: %w", ErrDestroyed, err)
	}

	var ie *store.IndexError
	if errors.As(err, &ie) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
