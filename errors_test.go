package gvec

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/gvec/store"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "allocation", in: store.ErrAllocationFailed, want: ErrAllocation},
		{name: "element size", in: store.ErrInvalidElementSize, want: ErrInvalidArgument},
		{name: "capacity", in: store.ErrInvalidCapacity, want: ErrInvalidArgument},
		{name: "destroyed", in: store.ErrDestroyed, want: ErrDestroyed},
		{name: "index", in: &store.IndexError{Index: 9, Capacity: 8}, want: ErrNotFound},
		{name: "unrelated", in: io.EOF, want: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in)
		})
	}

	assert.NoError(t, translateError(nil))
}

func TestErrIndexOutOfRange(t *testing.T) {
	err := error(&ErrIndexOutOfRange{Index: 5, Size: 3})

	assert.EqualError(t, err, "index 5 out of range [0, 3)")
	assert.True(t, errors.Is(err, ErrNotFound))
}
