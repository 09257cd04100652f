package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// IntToUint converts int to uint safely.
func IntToUint(v int) (uint, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint (negative)", v)
	}
	return uint(v), nil
}

// UintToInt converts uint to int safely.
func UintToInt(v uint) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// ByteSize returns count*width as an int64, failing if count is negative or
// the product does not fit.
func ByteSize(count int, width uintptr) (int64, error) {
	c, err := IntToUint64(count)
	if err != nil {
		return 0, err
	}
	hi, lo := bits.Mul64(c, uint64(width))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d * %d does not fit in int64", count, width)
	}
	return int64(lo), nil
}

// DoubleInt returns 2*v, failing if v is not positive or the result overflows int.
func DoubleInt(v int) (int, error) {
	if v <= 0 {
		return 0, fmt.Errorf("cannot double non-positive value %d", v)
	}
	if v > math.MaxInt/2 {
		return 0, fmt.Errorf("integer overflow: 2 * %d does not fit in int", v)
	}
	return v * 2, nil
}
