// Package errors provides structured error types for the julert runtime.
//
// Errors are categorized by Phase (which runtime layer raised them) and Kind
// (error category). Runtime failures that the language defines as panics
// (allocation failure, bounds violations) are raised with these values, so a
// recovering handler can inspect them with errors.As.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseSlice, errors.KindOutOfBounds).
//		Path("buf").
//		Value(7).
//		Detail("index %d out of bounds (length %d)", 7, 4).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseSlice, 7, 4)
//	err := errors.AllocationFailed(errors.PhaseHeap, 1, 64)
//
// User-raised errors that should print verbatim use Message:
//
//	rt.Panic(errors.Message("boom")) // panic: boom
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
