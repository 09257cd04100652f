package testutil

import (
	"math/rand"
	"sync"
)

// OpKind is the kind of a generated workload step.
type OpKind int

const (
	// OpPush appends Op.Value.
	OpPush OpKind = iota
	// OpPop removes the last element.
	OpPop
)

// Op is one step of a generated workload.
type Op struct {
	Kind  OpKind
	Value int
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns num pseudo-random values in [0,n).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(num, n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, num)
	for i := range out {
		out[i] = r.rand.Intn(n)
	}
	return out
}

// Ops returns a workload of num steps where each step is a push with
// probability pushRatio. A pop is only generated while the simulated
// vector is non-empty, so replaying the workload never pops from empty.
func (r *RNG) Ops(num int, pushRatio float64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, 0, num)
	depth := 0
	for len(ops) < num {
		if depth == 0 || r.rand.Float64() < pushRatio {
			ops = append(ops, Op{Kind: OpPush, Value: r.rand.Int()})
			depth++
			continue
		}
		ops = append(ops, Op{Kind: OpPop})
		depth--
	}
	return ops
}
