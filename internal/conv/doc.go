// Package conv provides overflow-checked size arithmetic.
//
// These functions perform bounds checking to prevent integer overflow or
// silent truncation when computing allocation sizes from caller-supplied
// counts and strides.
//
// Use cases:
//   - Multiplying a slot count by a per-slot stride before allocating
//   - Narrowing a 64-bit byte total to Go's platform-dependent int
//
// For arithmetic that is provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct operations instead to avoid
// overhead.
package conv
