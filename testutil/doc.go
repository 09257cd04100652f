// Package testutil provides testing utilities for gvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, reproducible RNG for generating element values and
// random push/pop workloads.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Ints(1000, 1<<20) // 1000 values in [0, 1<<20)
//
// # Random Workloads
//
//	ops := rng.Ops(500, 0.7) // ~70% pushes, never pops past empty
//	for _, op := range ops {
//	    switch op.Kind {
//	    case testutil.OpPush: ...
//	    case testutil.OpPop:  ...
//	    }
//	}
package testutil
