// Package buffer provides a fixed-capacity, padded slot-buffer allocator.
//
// A Buffer reserves one contiguous, zero-initialized region of memory and
// partitions it into capacity-many slots of a fixed stride. Each slot is
// exposed both as a typed mutable view and as a raw byte view over the same
// bytes, so callers can populate data in place without copying.
//
// # Quick Start
//
//	// One slot per worker, each on its own cache line to avoid false sharing.
//	buf, err := buffer.NewCacheAligned[Counter](numWorkers)
//	if err != nil { ... }
//	defer buf.Close()
//
//	for i, c := range buf.Entries() {
//	    c.Value = uint64(i)
//	}
//
// # Padding Policies
//
// The stride between slots is resolved from the element's natural size by a
// padding policy:
//
//	buffer.New[T](n)              // stride == sizeof(T)
//	buffer.NewPadded[T](n, min)   // stride == max(min, sizeof(T), 1)
//	buffer.NewCacheAligned[T](n)  // stride rounded up to a 64-byte line
//
// # Observation Modes
//
// The same allocation is observable three ways, all sharing one offset
// computation:
//
//	buf.Entries()   // []*T, one mutable view per slot
//	buf.SlotBytes() // [][]byte, per slot, truncated to sizeof(T)
//	buf.Bytes()     // []byte over the whole region, padding included
//
// A write through Entries()[i] is immediately visible at byte offset
// i*Stride() of Bytes() and in SlotBytes()[i].
//
// # Ownership
//
// A Buffer is a single-owner resource with no internal synchronization
// beyond its closed flag. Sharing entry views across goroutines requires
// caller-supplied synchronization. Close is idempotent; after Close all view
// accessors return nil. Heap-backed buffers may also simply be dropped for
// the garbage collector to reclaim, but off-heap buffers (see WithOffHeap)
// must be closed to unmap their pages.
//
// # Zero Representation
//
// Slots start life as all-zero bytes reinterpreted as T. Every Go type has a
// valid zero value, but types whose invariants are established by a
// constructor (e.g. initialized sync primitives, non-nil maps) get none of
// that here; the design targets plain-old-data layouts.
package buffer
