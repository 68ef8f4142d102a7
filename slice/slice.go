package slice

import (
	"iter"
	"reflect"
	"strings"

	"github.com/wippyai/julert/errors"
	"github.com/wippyai/julert/heap"
	"github.com/wippyai/julert/rt"
)

// Slice is a bounds-checked view over a backing buffer. The zero value is
// the nil slice.
type Slice[T any] struct {
	s []T
}

// Make returns a slice of n zero elements. A negative n yields an empty
// slice. The backing buffer is checked against the default heap space and
// an unsatisfiable request panics with an allocation error.
func Make[T any](n int) Slice[T] {
	if n < 0 {
		n = 0
	}
	heap.Default().Reserve(n, reflect.TypeFor[T]().Size())
	return Slice[T]{s: make([]T, n)}
}

// Of returns a slice holding a copy of items.
func Of[T any](items ...T) Slice[T] {
	if items == nil {
		return Slice[T]{}
	}
	s := make([]T, len(items))
	copy(s, items)
	return Slice[T]{s: s}
}

// Wrap returns a slice view over s without copying.
func Wrap[T any](s []T) Slice[T] {
	return Slice[T]{s: s}
}

// Copy copies min(dst.Len(), src.Len()) elements from src into dst and
// returns the count. Overlapping ranges are handled.
func Copy[T any](dst, src Slice[T]) int {
	if len(dst.s) == 0 || len(src.s) == 0 {
		return 0
	}
	return copy(dst.s, src.s)
}

// Append returns a new slice of length src.Len()+len(items) holding the
// elements of src followed by items. src is never modified, even when its
// buffer has spare capacity.
func Append[T any](src Slice[T], items ...T) Slice[T] {
	n := len(src.s) + len(items)
	heap.Default().Reserve(n, reflect.TypeFor[T]().Size())
	out := make([]T, n)
	copy(out, src.s)
	copy(out[len(src.s):], items)
	return Slice[T]{s: out}
}

// Concat is Append taking the items from another slice.
func Concat[T any](src, items Slice[T]) Slice[T] {
	return Append(src, items.s...)
}

// Len returns the number of elements.
func (v Slice[T]) Len() int {
	return len(v.s)
}

// Cap returns the capacity of the backing buffer from the view's start.
func (v Slice[T]) Cap() int {
	return cap(v.s)
}

// Empty reports whether the slice has no elements.
func (v Slice[T]) Empty() bool {
	return len(v.s) == 0
}

// IsNil reports whether v is the nil slice.
func (v Slice[T]) IsNil() bool {
	return v.s == nil
}

// Sub returns the view [lo, hi) sharing v's backing buffer.
func (v Slice[T]) Sub(lo, hi int) Slice[T] {
	if lo < 0 || hi > len(v.s) || lo > hi {
		rt.Panic(errors.SliceBounds(errors.PhaseSlice, lo, hi, len(v.s)))
	}
	return Slice[T]{s: v.s[lo:hi:hi]}
}

// At returns the element at i.
func (v Slice[T]) At(i int) T {
	v.check(i)
	return v.s[i]
}

// Set stores x at i.
func (v Slice[T]) Set(i int, x T) {
	v.check(i)
	v.s[i] = x
}

// Ptr returns the address of the element at i.
func (v Slice[T]) Ptr(i int) *T {
	v.check(i)
	return &v.s[i]
}

func (v Slice[T]) check(i int) {
	if i < 0 || i >= len(v.s) {
		rt.Panic(errors.OutOfBounds(errors.PhaseSlice, i, len(v.s)))
	}
}

// Each calls fn with every index and element in order.
func (v Slice[T]) Each(fn func(i int, x T)) {
	for i, x := range v.s {
		fn(i, x)
	}
}

// EachIndex calls fn with every index in order.
func (v Slice[T]) EachIndex(fn func(i int)) {
	for i := range v.s {
		fn(i)
	}
}

// All returns an iterator over index and element pairs.
func (v Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.s {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns the elements as a Go slice sharing the backing buffer.
// Callers must not append to it.
func (v Slice[T]) Values() []T {
	return v.s
}

// String renders the slice as [a b c].
func (v Slice[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(rt.ToString(x))
	}
	b.WriteByte(']')
	return b.String()
}
