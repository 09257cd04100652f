package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInts(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Ints(64, 10)

	assert.Len(t, v, 64)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, 0)
		assert.Less(t, x, 10)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	assert.Equal(t, int64(4711), rng.Seed())

	first := rng.Ints(16, 1000)
	rng.Reset()
	second := rng.Ints(16, 1000)

	assert.Equal(t, first, second)
}

func TestOps(t *testing.T) {
	rng := NewRNG(4711)

	ops := rng.Ops(1000, 0.6)
	assert.Len(t, ops, 1000)

	depth := 0
	pops := 0
	for _, op := range ops {
		switch op.Kind {
		case OpPush:
			depth++
		case OpPop:
			pops++
			depth--
		}
		assert.GreaterOrEqual(t, depth, 0)
	}
	assert.Positive(t, pops)
}
