package mem

import (
	"unsafe"
)

// AllocZeroed allocates a zero-initialized byte slice of layout.Size bytes
// whose base address is divisible by layout.Align. The layout must have been
// produced by NewLayout. Returns nil for a zero-size layout.
//
// Note: this allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice, and
// the slice is capped so appends cannot spill into the alignment slack.
func AllocZeroed(layout Layout) []byte {
	if layout.Size == 0 {
		return nil
	}

	// Allocate size + align so an aligned offset always exists within the
	// region. make() guarantees the zero fill.
	buf := make([]byte, layout.Size+layout.Align)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	align := uintptr(layout.Align)
	offset := (align - (addr & (align - 1))) & (align - 1)

	end := offset + uintptr(layout.Size)
	return buf[offset:end:end]
}

// ZeroFilled reports whether the leading bytes of the region read as zero.
// It inspects at most the first two bytes, so it is a cheap sanity probe for
// a failed zero fill, not a full scan.
func ZeroFilled(data []byte) bool {
	n := len(data)
	if n > 2 {
		n = 2
	}
	for _, b := range data[:n] {
		if b != 0 {
			return false
		}
	}
	return true
}
