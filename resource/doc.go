// Package resource implements memory accounting for container buffers.
//
// A Controller tracks how many bytes the buffers created against it hold and,
// when configured with a hard limit, refuses reservations that would exceed
// it. Refusal is non-blocking and fail-fast: AcquireMemory returns
// ErrMemoryLimitExceeded immediately and the caller decides what to do.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 20, // 1MB limit
//	})
//
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(4096)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one controller can
// be shared by many containers.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops and
// never refuse a reservation.
package resource
