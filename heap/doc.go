// Package heap provides reference counted heap handles.
//
// A Ref[T] is either a heap ref, sharing a cell whose count is adjusted
// atomically by Retain and Release, or an inline ref wrapping storage the
// caller owns (Addr). MustHeap promotes an inline ref to a heap ref.
//
// The count is what decides lifetime:
//
//	r := heap.New(Node{})   // count 1
//	s := r.Retain()         // count 2, s aliases r
//	r.Release()             // count 1
//	s.Release()             // count 0, value destroyed
//
// Allocations are accounted in a Space, which enforces optional limits on
// live handles and bytes and publishes lifecycle events to observers.
// Exceeding a limit panics with an allocation error.
//
// Counting does not detect cycles. Values that reference each other through
// heap refs are never destroyed unless one side is released explicitly.
package heap
