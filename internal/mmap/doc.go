// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// MapAnon creates read-write anonymous mappings outside the Go garbage
// collector's control. Anonymous pages are zero-filled by the kernel, which
// makes them a natural backing store for allocations that must start life
// all-zero.
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): Uses mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: Uses VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Ownership
//
// A Mapping owns its pages until Close() is called. Close is idempotent and
// protected by an atomic flag, but callers must ensure nothing reads the
// slice returned by Bytes() after Close() returns.
package mmap
