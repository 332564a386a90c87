package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferSizeOverflow is returned when capacity * stride exceeds the
	// 64-bit unsigned range, or when either operand is negative.
	ErrBufferSizeOverflow = errors.New("buffer size overflows")

	// ErrAllocCapacityOverflow is returned when the computed byte total fits
	// in 64 bits but exceeds the platform's maximum addressable object size.
	ErrAllocCapacityOverflow = errors.New("allocation exceeds addressable capacity")

	// ErrInvalidLayout is returned when the (size, alignment) pair cannot
	// form a valid allocation request.
	ErrInvalidLayout = errors.New("invalid allocation layout")

	// ErrInsufficientMemory is returned when the backing allocation cannot
	// be obtained, fails the zero-fill sanity check, or is denied by a
	// resource controller.
	ErrInsufficientMemory = errors.New("insufficient memory")

	// ErrZeroBufferNotSupported is returned when the resolved total size is
	// zero (zero capacity, or a zero-size element under the none policy).
	// A degenerate empty buffer is deliberately unsupported.
	ErrZeroBufferNotSupported = errors.New("zero-sized buffer not supported")

	// ErrClosed is returned by Entry on a buffer that has been closed.
	ErrClosed = errors.New("buffer is closed")

	// ErrOutOfRange is returned by Entry for a slot index outside [0, Cap).
	ErrOutOfRange = errors.New("slot index out of range")
)

// LayoutError describes a (size, alignment) pair rejected by layout
// validation. It matches ErrInvalidLayout under errors.Is.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type LayoutError struct {
	Size  int
	Align int
	cause error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("invalid layout: size=%d align=%d: %v", e.Size, e.Align, e.cause)
}

func (e *LayoutError) Unwrap() []error { return []error{ErrInvalidLayout, e.cause} }
