// Package gvec provides a generic, growable, bounds-checked vector.
//
// A Vector stores its elements in a fixed-capacity store.Store and replaces
// that store with one twice as large whenever a push would leave no free
// slot. Every accessor checks its index against the logical size and reports
// failures as errors; nothing panics on a bad index.
//
// # Quick Start
//
//	v, _ := gvec.New[int](nil)
//	defer v.Destroy()
//
//	_ = v.PushBack(2)
//	_ = v.PushBack(4)
//	x, _ := v.Get(1)      // 4
//	_ = v.Set(0, 150)
//	last, _ := v.PopBack() // 4
//
// # Ownership
//
// Pass a destructor to New to make the vector own its elements:
//
//	v, _ := gvec.New(func(f *os.File) { f.Close() })
//
// Destroy then calls the destructor once for every element still held.
// Elements removed with PopBack belong to the caller and are never passed
// to the destructor. Set does not release the element it overwrites.
// With a nil destructor the vector never releases anything.
//
// # Errors
//
//   - ErrNotFound: index outside [0, size) or pop from an empty vector
//     (*ErrIndexOutOfRange carries the index and size)
//   - ErrAllocation: the buffer, or its growth, could not be obtained; a
//     failed push leaves the vector unchanged
//   - ErrInvalidArgument: zero-sized element type or initial capacity below 1
//   - ErrDestroyed: use after Destroy
//
// # Memory Limits
//
// Backing buffers can be charged against a shared resource.Controller:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
//	v, _ := gvec.New[int64](nil, gvec.WithMemoryAcquirer(rc))
//
// # Thread Safety
//
// Vectors are not safe for concurrent use.
package gvec
