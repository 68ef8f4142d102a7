package omap

import (
	"cmp"
	"iter"
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/google/btree"

	"github.com/wippyai/julert/errors"
	"github.com/wippyai/julert/rt"
)

const degree = 32

type entry[K, V any] struct {
	key   K
	value V
}

// Map is an ordered associative container. Maps must be created with New
// or NewFunc; the nil *Map reads as empty and panics on writes.
type Map[K, V any] struct {
	tree    *btree.BTreeG[entry[K, V]]
	compare func(a, b K) int
	visits  atomic.Int32
}

// New returns an empty map ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty map ordered by compare.
func NewFunc[K, V any](compare func(a, b K) int) *Map[K, V] {
	less := func(a, b entry[K, V]) bool {
		return compare(a.key, b.key) < 0
	}
	return &Map[K, V]{
		tree:    btree.NewG[entry[K, V]](degree, less),
		compare: compare,
	}
}

// empty reports whether m has no backing tree: the nil *Map or the zero Map.
func (m *Map[K, V]) empty() bool {
	return m == nil || m.tree == nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m.empty() {
		return 0
	}
	return m.tree.Len()
}

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if m.empty() {
		var zero V
		return zero, false
	}
	e, ok := m.tree.Get(entry[K, V]{key: k})
	return e.value, ok
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	if m.empty() {
		return false
	}
	return m.tree.Has(entry[K, V]{key: k})
}

// Set stores v for k, replacing any previous value.
func (m *Map[K, V]) Set(k K, v V) {
	if m.empty() {
		rt.Panic(errors.NilHandle(errors.PhaseMap, "Map["+reflect.TypeFor[K]().String()+", "+reflect.TypeFor[V]().String()+"]"))
	}
	m.mutating("insert")
	m.tree.ReplaceOrInsert(entry[K, V]{key: k, value: v})
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	if m.empty() {
		return false
	}
	m.mutating("delete")
	_, ok := m.tree.Delete(entry[K, V]{key: k})
	return ok
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	if m.empty() {
		return
	}
	m.mutating("clear")
	m.tree.Clear(false)
}

// Clone returns an independent copy. The copy shares storage with m until
// either side is modified.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m.empty() {
		return nil
	}
	return &Map[K, V]{tree: m.tree.Clone(), compare: m.compare}
}

func (m *Map[K, V]) mutating(op string) {
	if m.visits.Load() > 0 {
		rt.Panic(errors.ConcurrentModification(errors.PhaseMap, op))
	}
}

// visit walks the entries in order. Concurrent visits are allowed; the
// counter only blocks writers while any visit is in progress.
func (m *Map[K, V]) visit(fn func(e entry[K, V]) bool) {
	if m.empty() {
		return
	}
	m.visits.Add(1)
	defer m.visits.Add(-1)
	m.tree.Ascend(fn)
}

// Keys calls visit with every key in ascending order.
func (m *Map[K, V]) Keys(visit func(k K)) {
	m.visit(func(e entry[K, V]) bool {
		visit(e.key)
		return true
	})
}

// Entries calls visit with every key and value in ascending key order.
func (m *Map[K, V]) Entries(visit func(k K, v V)) {
	m.visit(func(e entry[K, V]) bool {
		visit(e.key, e.value)
		return true
	})
}

// All returns an iterator over the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.visit(func(e entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

// String renders the map as map[k1:v1 k2:v2].
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	first := true
	m.Entries(func(k K, v V) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(rt.ToString(k))
		b.WriteByte(':')
		b.WriteString(rt.ToString(v))
	})
	b.WriteByte(']')
	return b.String()
}
