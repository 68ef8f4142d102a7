// Package slice provides bounds-checked views over shared backing buffers.
//
// A Slice[T] behaves like a Go slice with the language's stricter rules:
// Make with a negative length yields an empty slice, Append always returns
// a fresh buffer so the source is never written through, and every index
// or range violation panics with an out-of-bounds *errors.Error.
//
// Sub-slices share storage with their parent. No synchronization is
// provided for concurrent writers to overlapping ranges.
package slice
