// Package mem provides memory allocation utilities.
//
// # Layout
//
// A Layout pairs an allocation size with a power-of-two alignment and is
// validated once, before any memory is requested.
//
// # Aligned Allocation
//
// AllocZeroed returns zero-initialized memory whose base address satisfies
// the layout's alignment, by over-allocating and shifting to the first
// aligned offset.
package mem
