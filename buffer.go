package buffer

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/omnivers3/buffer/internal/conv"
	"github.com/omnivers3/buffer/internal/mem"
	"github.com/omnivers3/buffer/internal/mmap"
	"github.com/omnivers3/buffer/resource"
)

// Buffer owns one contiguous, zero-initialized allocation partitioned into
// fixed-stride slots of T. It is created by one of the constructors and
// released at most once by Close.
type Buffer[T any] struct {
	data    []byte
	entries []*T
	mapping *mmap.Mapping // non-nil for off-heap buffers
	cap     int
	size    int // natural element size
	stride  int
	closed  atomic.Bool

	ctrl     *resource.Controller
	reserved int64
	log      *Logger
}

// New creates a Buffer of capacity slots with no padding: the stride equals
// the element's natural size.
func New[T any](capacity int, opts ...Option) (*Buffer[T], error) {
	return newBuffer[T](capacity, PadNone(), opts...)
}

// NewPadded creates a Buffer whose stride is at least minStride bytes. The
// stride never drops below the element size or 1.
//
// A minStride that is not a multiple of T's alignment puts slots past the
// first at unaligned addresses. Such access works on amd64 and arm64 but is
// not portable to alignment-strict targets.
func NewPadded[T any](capacity, minStride int, opts ...Option) (*Buffer[T], error) {
	return newBuffer[T](capacity, PadTo(minStride), opts...)
}

// NewCacheAligned creates a Buffer whose stride is rounded up to a multiple
// of LineSize, so no two slots share a cache line.
func NewCacheAligned[T any](capacity int, opts ...Option) (*Buffer[T], error) {
	return newBuffer[T](capacity, PadCacheAligned(), opts...)
}

func newBuffer[T any](capacity int, pad Padding, opts ...Option) (*Buffer[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))
	stride := pad.Resolve(size)

	total64, err := conv.CheckedMul(capacity, stride)
	if err != nil {
		return nil, fmt.Errorf("%w: capacity=%d stride=%d", ErrBufferSizeOverflow, capacity, stride)
	}
	total, err := conv.Uint64ToInt(total64)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocCapacityOverflow, total64)
	}
	if total == 0 {
		return nil, ErrZeroBufferNotSupported
	}

	layout, err := mem.NewLayout(total, align)
	if err != nil {
		o.logger.LogAlloc(capacity, stride, total, err)
		return nil, &LayoutError{Size: total, Align: align, cause: err}
	}

	if !o.ctrl.AdmitAlloc() {
		return nil, fmt.Errorf("%w: allocation rate limit exceeded", ErrInsufficientMemory)
	}
	if err := o.ctrl.TryAcquireMemory(int64(total)); err != nil {
		o.logger.LogAlloc(capacity, stride, total, err)
		return nil, fmt.Errorf("%w: %v", ErrInsufficientMemory, err)
	}

	data, mapping, err := allocate(o, layout)
	if err != nil {
		o.ctrl.ReleaseMemory(int64(total))
		o.logger.LogAlloc(capacity, stride, total, err)
		return nil, err
	}

	b := &Buffer[T]{
		data:    data,
		mapping: mapping,
		cap:     capacity,
		size:    size,
		stride:  stride,
		ctrl:    o.ctrl,
		log:     o.logger,
	}
	if o.ctrl != nil {
		b.reserved = int64(total)
	}

	// Partition the region into typed views: slot i starts at byte offset
	// i*stride. This is the single unsafe reinterpretation point; every
	// byte-level accessor computes the same offsets.
	b.entries = make([]*T, capacity)
	base := unsafe.Pointer(&data[0]) //nolint:gosec // unsafe is required for slot views
	for i := 0; i < capacity; i++ {
		b.entries[i] = (*T)(unsafe.Add(base, i*stride)) //nolint:gosec // unsafe is required for slot views
	}

	o.logger.LogAlloc(capacity, stride, total, nil)
	return b, nil
}

// allocate obtains a zeroed region for the layout from the selected backend.
func allocate(o options, layout mem.Layout) ([]byte, *mmap.Mapping, error) {
	if o.offHeap {
		mapping, err := mmap.MapAnon(layout.Size)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInsufficientMemory, err)
		}
		data := mapping.Bytes()
		if o.zeroCheck && !mem.ZeroFilled(data) {
			_ = mapping.Close()
			return nil, nil, fmt.Errorf("%w: region not zero-filled", ErrInsufficientMemory)
		}
		return data, mapping, nil
	}

	data := mem.AllocZeroed(layout)
	if data == nil {
		return nil, nil, ErrInsufficientMemory
	}
	if o.zeroCheck && !mem.ZeroFilled(data) {
		return nil, nil, fmt.Errorf("%w: region not zero-filled", ErrInsufficientMemory)
	}
	return data, nil, nil
}

// Cap returns the number of slots, fixed at creation.
func (b *Buffer[T]) Cap() int {
	return b.cap
}

// ElementSize returns the natural (unpadded) size of T in bytes.
func (b *Buffer[T]) ElementSize() int {
	return b.size
}

// Stride returns the byte distance between the starts of consecutive slots.
func (b *Buffer[T]) Stride() int {
	return b.stride
}

// TotalSize returns the exact byte length of the backing allocation,
// Cap() * Stride().
func (b *Buffer[T]) TotalSize() int {
	return b.cap * b.stride
}

// Entries returns the typed mutable views in slot order, one per slot.
// Mutation through a view writes directly into the backing allocation at
// that slot's offset. Returns nil after Close.
func (b *Buffer[T]) Entries() []*T {
	if b.closed.Load() {
		return nil
	}
	return b.entries
}

// Entry returns the typed view for slot i with bounds checking.
func (b *Buffer[T]) Entry(i int) (*T, error) {
	if b.closed.Load() {
		return nil, ErrClosed
	}
	if i < 0 || i >= b.cap {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, b.cap)
	}
	return b.entries[i], nil
}

// SlotBytes returns one byte view per slot, each exactly ElementSize bytes
// long. Padding bytes between slots are never exposed here, only the live
// element bytes. Returns nil after Close.
func (b *Buffer[T]) SlotBytes() [][]byte {
	if b.closed.Load() {
		return nil
	}
	views := make([][]byte, b.cap)
	for i := range views {
		off := i * b.stride
		views[i] = b.data[off : off+b.size : off+b.size]
	}
	return views
}

// Bytes returns one byte view of length TotalSize covering the full
// allocation, inter-slot padding included. Returns nil after Close.
func (b *Buffer[T]) Bytes() []byte {
	if b.closed.Load() {
		return nil
	}
	return b.data
}

// Close releases the backing allocation and invalidates all views. It is
// idempotent and safe on a nil receiver. Off-heap buffers must be closed to
// unmap their pages; heap-backed buffers may instead be dropped for the
// garbage collector, though Close still returns any controller reservation
// promptly.
func (b *Buffer[T]) Close() error {
	if b == nil {
		return nil
	}
	if b.closed.Swap(true) {
		return nil
	}

	var firstErr error
	if b.mapping != nil {
		if err := b.mapping.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		b.mapping = nil
	}
	b.data = nil
	b.entries = nil

	if b.reserved > 0 {
		b.ctrl.ReleaseMemory(b.reserved)
		b.reserved = 0
	}

	b.log.LogRelease(b.cap*b.stride, firstErr)
	return firstErr
}

func (b *Buffer[T]) String() string {
	return fmt.Sprintf("Buffer{cap: %d, elementSize: %d, stride: %d, totalSize: %d}",
		b.cap, b.size, b.stride, b.TotalSize())
}
