// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned integer types and when sizing
// buffers from a slot count and an element width.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices below a validated capacity), use direct type casts instead.
package conv
