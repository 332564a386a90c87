package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// CheckedMul multiplies two non-negative int operands in 64-bit space,
// failing instead of wrapping. The result is returned as uint64 so that
// products above math.MaxInt survive for a separate narrowing decision.
func CheckedMul(a, b int) (uint64, error) {
	if a < 0 {
		return 0, fmt.Errorf("integer overflow: negative operand %d", a)
	}
	if b < 0 {
		return 0, fmt.Errorf("integer overflow: negative operand %d", b)
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds 64 bits", a, b)
	}
	return lo, nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
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
