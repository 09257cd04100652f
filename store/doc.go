// Package store provides a fixed-capacity generic array used as the backing
// storage of growable containers.
//
// A Store holds capacity slots of one element type. Slots start out as the
// zero value. Every slot written through Set is marked live in a bitmap, and
// Take hands a value back to the caller and clears the mark. When a
// destructor is configured the Store owns the resources of its live values:
// Destroy calls the destructor exactly once per live slot before releasing
// the buffer. Slots that were never written, or were taken out, are skipped.
//
// # Memory Accounting
//
// Buffers are charged against an optional MemoryAcquirer (for example a
// *resource.Controller) at creation and refunded on Destroy or Release. A
// refused charge surfaces as ErrAllocationFailed; nothing stays charged.
//
// # Thread Safety
//
// A Store is not safe for concurrent use.
package store
