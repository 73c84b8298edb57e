package lasterr

import (
	"sync"

	"github.com/petermattis/goid"
)

// Storage maps the calling goroutine to its Slot.
//
// Implementations must guarantee that at most one slot is created per
// goroutine, that concurrent first use from different goroutines never
// corrupts the mapping, and that a goroutine always gets back the slot it
// created. Storage never enumerates slots on behalf of the facility.
type Storage interface {
	// GetOrCreate returns the calling goroutine's slot, calling create if it
	// has none. It returns nil if create returns nil.
	GetOrCreate(create func() *Slot) *Slot

	// Get returns the calling goroutine's slot, or nil if it has none.
	// It never allocates.
	Get() *Slot

	// Release drops the calling goroutine's slot.
	Release()

	// Reset drops every slot.
	Reset()

	// Len returns the number of live slots.
	Len() int
}

// goroutineStorage keys slots by goroutine id. The lock guards the map only;
// slot contents are owned by their goroutine.
type goroutineStorage struct {
	mu    sync.RWMutex
	slots map[int64]*Slot
}

// NewGoroutineStorage returns a Storage keyed by the id of the calling
// goroutine.
func NewGoroutineStorage() Storage {
	return &goroutineStorage{slots: make(map[int64]*Slot)}
}

func (s *goroutineStorage) GetOrCreate(create func() *Slot) *Slot {
	id := goid.Get()

	s.mu.RLock()
	slot, ok := s.slots[id]
	s.mu.RUnlock()
	if ok {
		return slot
	}

	// Only this goroutine can insert under id, so nothing can race us between
	// the lookup above and the insert below.
	slot = create()
	if slot == nil {
		return nil
	}

	s.mu.Lock()
	s.slots[id] = slot
	s.mu.Unlock()
	return slot
}

func (s *goroutineStorage) Get() *Slot {
	id := goid.Get()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[id]
}

func (s *goroutineStorage) Release() {
	id := goid.Get()

	s.mu.Lock()
	delete(s.slots, id)
	s.mu.Unlock()
}

func (s *goroutineStorage) Reset() {
	s.mu.Lock()
	clear(s.slots)
	s.mu.Unlock()
}

func (s *goroutineStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}
