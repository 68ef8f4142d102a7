package heap

import (
	"reflect"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/julert/errors"
	"github.com/wippyai/julert/rt"
)

// cell is the shared allocation behind heap refs.
type cell[T any] struct {
	value    T
	space    *Space
	typeName string
	refs     atomic.Int64
	id       Handle
}

// Ref is a handle to a value of type T. A heap ref shares a reference
// counted cell; an inline ref points at caller-owned storage and carries no
// count. The zero Ref is the nil handle.
//
// Copying a Ref does not retain it. Every language-level copy must call
// Retain and every owner must call Release exactly once.
type Ref[T any] struct {
	ptr *T
	c   *cell[T]
}

// New allocates v in the default space with a reference count of one.
func New[T any](v T) Ref[T] {
	return NewIn(Default(), v)
}

// NewIn allocates v in s with a reference count of one. It panics with an
// allocation error when s cannot satisfy the request.
func NewIn[T any](s *Space, v T) Ref[T] {
	typ := reflect.TypeFor[T]()
	c := &cell[T]{value: v, space: s, typeName: typ.String()}
	c.refs.Store(1)
	c.id = s.alloc(typ.Size(), c.typeName)
	return Ref[T]{ptr: &c.value, c: c}
}

// Nil returns the nil handle of type T.
func Nil[T any]() Ref[T] {
	return Ref[T]{}
}

// Addr wraps caller-owned storage without a reference count.
func Addr[T any](p *T) Ref[T] {
	return Ref[T]{ptr: p}
}

// MustHeap returns a heap ref for r. A heap ref is returned as is with its
// count unchanged; an inline ref is promoted to a fresh heap cell holding a
// copy of its value. Promoting the nil handle panics.
func MustHeap[T any](r Ref[T]) Ref[T] {
	return MustHeapIn(Default(), r)
}

// MustHeapIn is MustHeap allocating promoted values in s.
func MustHeapIn[T any](s *Space, r Ref[T]) Ref[T] {
	if r.c != nil {
		return r
	}
	return NewIn(s, *r.deref())
}

// IsNil reports whether r is the nil handle.
func (r Ref[T]) IsNil() bool {
	return r.ptr == nil
}

// IsHeap reports whether r references a counted heap cell.
func (r Ref[T]) IsHeap() bool {
	return r.c != nil
}

// Handle returns the allocation handle of a heap ref, or 0.
func (r Ref[T]) Handle() Handle {
	if r.c == nil {
		return 0
	}
	return r.c.id
}

// Count returns the current reference count. Inline and nil refs report 0.
func (r Ref[T]) Count() int64 {
	if r.c == nil {
		return 0
	}
	return r.c.refs.Load()
}

// Same reports whether a and b reference the same storage.
func Same[T any](a, b Ref[T]) bool {
	return a.ptr == b.ptr
}

// Retain increments the reference count and returns the aliasing ref.
// Retaining an inline ref is a no-op.
func (r Ref[T]) Retain() Ref[T] {
	c := r.c
	if c == nil {
		return r
	}
	for {
		n := c.refs.Load()
		if n <= 0 {
			rt.Panic(errors.Dangling(errors.PhaseHeap, uint32(c.id)))
		}
		if c.refs.CompareAndSwap(n, n+1) {
			c.space.notify(Event{Type: EventRetained, Handle: c.id, TypeName: c.typeName, Refs: n + 1})
			return r
		}
	}
}

// Release decrements the reference count. The owner that drops the count
// to zero destroys the value: Drop is called if T or *T implements Dropper,
// the value is zeroed and the allocation is returned to its space.
// Releasing more times than retained panics.
func (r Ref[T]) Release() {
	c := r.c
	if c == nil {
		return
	}
	n := c.refs.Add(-1)
	switch {
	case n > 0:
		c.space.notify(Event{Type: EventReleased, Handle: c.id, TypeName: c.typeName, Refs: n})
	case n == 0:
		c.destroy()
	default:
		c.refs.Add(1)
		rt.Panic(errors.DoubleRelease(errors.PhaseHeap, uint32(c.id)))
	}
}

func (c *cell[T]) destroy() {
	defer c.space.free(c.id)

	var v any = &c.value
	if d, ok := v.(Dropper); ok {
		d.Drop()
	} else if d, ok := any(c.value).(Dropper); ok && !isNilRef(d) {
		d.Drop()
	}
	var zero T
	c.value = zero
	c.space.log.Debug("handle destroyed", zap.Uint32("handle", uint32(c.id)))
}

// isNilRef reports whether v holds a nil pointer-like value. Dropping one
// would dereference nil.
func isNilRef(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Get returns a copy of the referenced value.
func (r Ref[T]) Get() T {
	return *r.deref()
}

// Set replaces the referenced value.
func (r Ref[T]) Set(v T) {
	*r.deref() = v
}

// Ptr returns a pointer to the referenced storage. The pointer is valid only
// while the ref is alive.
func (r Ref[T]) Ptr() *T {
	return r.deref()
}

func (r Ref[T]) deref() *T {
	if r.ptr == nil {
		rt.Panic(errors.NilHandle(errors.PhaseHeap, "Ref["+reflect.TypeFor[T]().String()+"]"))
	}
	if r.c != nil && r.c.refs.Load() <= 0 {
		rt.Panic(errors.Dangling(errors.PhaseHeap, uint32(r.c.id)))
	}
	return r.ptr
}
