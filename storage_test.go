package lasterr

import (
	"sync"
	"testing"

	"github.com/petermattis/goid"
	"github.com/stretchr/testify/require"
)

func newTestSlot() *Slot {
	return newSlot(make([]byte, DefaultInitialCapacity))
}

func TestGoroutineStorage_GetOrCreate(t *testing.T) {
	s := NewGoroutineStorage()
	calls := 0
	create := func() *Slot {
		calls++
		return newTestSlot()
	}

	first := s.GetOrCreate(create)
	second := s.GetOrCreate(create)

	require.NotNil(t, first)
	require.Same(t, first, second)
	require.Equal(t, 1, calls)
	require.Equal(t, 1, s.Len())
}

func TestGoroutineStorage_GetDoesNotCreate(t *testing.T) {
	s := NewGoroutineStorage()

	require.Nil(t, s.Get())
	require.Equal(t, 0, s.Len())

	slot := s.GetOrCreate(newTestSlot)
	require.Same(t, slot, s.Get())
}

func TestGoroutineStorage_CreateFailure(t *testing.T) {
	s := NewGoroutineStorage()

	slot := s.GetOrCreate(func() *Slot { return nil })

	require.Nil(t, slot)
	require.Nil(t, s.Get())
	require.Equal(t, 0, s.Len())
}

func TestGoroutineStorage_Release(t *testing.T) {
	s := NewGoroutineStorage()
	mine := s.GetOrCreate(newTestSlot)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.GetOrCreate(newTestSlot)
		s.Release()
	}()
	wg.Wait()

	require.Equal(t, 1, s.Len())
	require.Same(t, mine, s.Get())

	s.Release()
	require.Nil(t, s.Get())
	require.Equal(t, 0, s.Len())
}

func TestGoroutineStorage_Reset(t *testing.T) {
	s := NewGoroutineStorage()
	s.GetOrCreate(newTestSlot)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.GetOrCreate(newTestSlot)
		}()
	}
	wg.Wait()
	require.Equal(t, 6, s.Len())

	s.Reset()
	require.Equal(t, 0, s.Len())
	require.Nil(t, s.Get())
}

func TestGoroutineStorage_OneSlotPerGoroutine(t *testing.T) {
	s := NewGoroutineStorage()
	const workers = 32

	slots := make([]*Slot, workers)
	again := make([]*Slot, workers)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			slots[i] = s.GetOrCreate(newTestSlot)
			again[i] = s.Get()
		}(i)
	}
	close(start)
	wg.Wait()

	seen := make(map[*Slot]bool, workers)
	for i := 0; i < workers; i++ {
		require.NotNil(t, slots[i])
		require.Same(t, slots[i], again[i])
		require.False(t, seen[slots[i]], "slot shared between goroutines")
		seen[slots[i]] = true
	}
	require.Equal(t, workers, s.Len())
}

func TestGoroutineStorage_DistinctKeysForLiveGoroutines(t *testing.T) {
	const workers = 8

	ids := make([]int64, workers)
	started := make(chan struct{}, workers)
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = goid.Get()
			started <- struct{}{}
			<-done // hold every goroutine alive until all ids are recorded
		}(i)
	}
	for i := 0; i < workers; i++ {
		<-started
	}
	close(done)
	wg.Wait()

	seen := make(map[int64]bool, workers+1)
	seen[goid.Get()] = true
	for _, id := range ids {
		require.NotZero(t, id)
		require.False(t, seen[id], "goroutine id %d seen twice", id)
		seen[id] = true
	}
}
