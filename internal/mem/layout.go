package mem

import (
	"errors"
	"math"
)

var (
	// ErrAlignNotPow2 is returned when the alignment is zero, negative, or
	// not a power of two.
	ErrAlignNotPow2 = errors.New("mem: alignment is not a power of two")
	// ErrSizeOutOfRange is returned when the size is negative or cannot be
	// rounded up to the alignment without overflowing.
	ErrSizeOutOfRange = errors.New("mem: size out of range for alignment")
)

// Layout describes an allocation request: a byte size and the alignment the
// base address must satisfy.
type Layout struct {
	Size  int
	Align int
}

// NewLayout validates a (size, alignment) pair. The alignment must be a
// power of two and the size must leave room to round up to the next
// alignment boundary, mirroring the constraints a system allocator imposes.
func NewLayout(size, align int) (Layout, error) {
	if align <= 0 || align&(align-1) != 0 {
		return Layout{}, ErrAlignNotPow2
	}
	if size < 0 || size > math.MaxInt-(align-1) {
		return Layout{}, ErrSizeOutOfRange
	}
	return Layout{Size: size, Align: align}, nil
}
