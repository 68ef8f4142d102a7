package heap

import (
	"math"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/julert/errors"
	"github.com/wippyai/julert/rt"
)

// Space is an allocation domain. It accounts for live handle allocations,
// enforces allocation limits and notifies observers of lifecycle events.
type Space struct {
	log          *zap.Logger
	entries      []entry
	freeList     []Handle
	observers    []observerSlot
	bytes        int64
	maxBytes     int64
	live         int
	maxLive      int
	nextObserver int
	mu           sync.Mutex
	obsMu        sync.RWMutex
	observed     atomic.Bool
}

type entry struct {
	typeName string
	size     uintptr
	valid    bool
}

type observerSlot struct {
	o  Observer
	id int
}

var defaultSpace atomic.Pointer[Space]

func init() {
	defaultSpace.Store(NewSpace())
}

// NewSpace creates an allocation domain.
func NewSpace(opts ...Option) *Space {
	s := &Space{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default returns the process-wide space used by New and MustHeap.
func Default() *Space {
	return defaultSpace.Load()
}

// SetDefault replaces the process-wide space and returns the previous one.
func SetDefault(s *Space) *Space {
	if s == nil {
		s = NewSpace()
	}
	return defaultSpace.Swap(s)
}

// alloc registers a new allocation. It panics with an allocation error when
// the space limits cannot satisfy the request.
func (s *Space) alloc(size uintptr, typeName string) Handle {
	s.mu.Lock()

	if s.maxLive > 0 && s.live >= s.maxLive {
		s.mu.Unlock()
		s.fail(1, size, typeName)
	}
	if s.maxBytes > 0 && s.bytes+int64(size) > s.maxBytes {
		s.mu.Unlock()
		s.fail(1, size, typeName)
	}

	e := entry{typeName: typeName, size: size, valid: true}

	var handle Handle
	if n := len(s.freeList); n > 0 {
		handle = s.freeList[n-1]
		s.freeList = s.freeList[:n-1]
		s.entries[handle-1] = e
	} else {
		if uint64(len(s.entries)) >= math.MaxUint32 {
			s.mu.Unlock()
			s.fail(1, size, typeName)
		}
		s.entries = append(s.entries, e)
		handle = Handle(len(s.entries))
	}
	s.live++
	s.bytes += int64(size)
	s.mu.Unlock()

	s.log.Debug("handle allocated",
		zap.Uint32("handle", uint32(handle)),
		zap.String("type", typeName),
		zap.Uintptr("size", size))
	s.notify(Event{Type: EventCreated, Handle: handle, TypeName: typeName, Refs: 1})
	return handle
}

// free returns an allocation to the space.
func (s *Space) free(handle Handle) {
	s.mu.Lock()
	idx := int(handle) - 1
	if handle == 0 || idx >= len(s.entries) || !s.entries[idx].valid {
		s.mu.Unlock()
		rt.Panic(errors.DoubleRelease(errors.PhaseHeap, uint32(handle)))
	}
	e := s.entries[idx]
	s.entries[idx] = entry{}
	s.freeList = append(s.freeList, handle)
	s.live--
	s.bytes -= int64(e.size)
	s.mu.Unlock()

	s.log.Debug("handle dropped",
		zap.Uint32("handle", uint32(handle)),
		zap.String("type", e.typeName))
	s.notify(Event{Type: EventDropped, Handle: handle, TypeName: e.typeName})
}

func (s *Space) fail(count int, size uintptr, typeName string) {
	err := errors.AllocationFailed(errors.PhaseHeap, count, size)
	err.Path = []string{typeName}
	s.log.Error("allocation failed", zap.Error(err))
	rt.Panic(err)
}

// Reserve checks that count elements of size bytes can be allocated as a
// single block. It panics with an allocation error when the request
// overflows or exceeds the space's byte limit. Reserved blocks are owned by
// the caller and are not tracked as live handles.
func (s *Space) Reserve(count int, size uintptr) {
	if count <= 0 || size == 0 {
		return
	}
	if uintptr(count) > uintptr(math.MaxInt)/size {
		s.fail(count, size, "block")
	}
	total := int64(uintptr(count) * size)
	if s.maxBytes > 0 && total > s.maxBytes {
		s.fail(count, size, "block")
	}
}

// Live returns the number of live handle allocations.
func (s *Space) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// Bytes returns the number of bytes held by live handle allocations.
func (s *Space) Bytes() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bytes
}

// Each calls fn for every live allocation until fn returns false.
func (s *Space) Each(fn func(h Handle, typeName string) bool) {
	s.mu.Lock()
	live := make([]entry, len(s.entries))
	copy(live, s.entries)
	s.mu.Unlock()

	for i, e := range live {
		if e.valid {
			if !fn(Handle(i+1), e.typeName) {
				return
			}
		}
	}
}

// Subscribe registers an observer and returns a function that removes it.
func (s *Space) Subscribe(o Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	s.nextObserver++
	id := s.nextObserver
	s.observers = append(s.observers, observerSlot{id: id, o: o})
	s.observed.Store(true)

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		for i, slot := range s.observers {
			if slot.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				break
			}
		}
		s.observed.Store(len(s.observers) > 0)
	}
}

func (s *Space) notify(e Event) {
	if !s.observed.Load() {
		return
	}
	s.obsMu.RLock()
	defer s.obsMu.RUnlock()
	for _, slot := range s.observers {
		slot.o.OnHandleEvent(e)
	}
}
