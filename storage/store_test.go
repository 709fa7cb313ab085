package storage

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndDereference(t *testing.T) {
	store := NewStoreWithBlockSize[int](1)

	handle := store.Insert(7)

	assert.Equal(t, 7, *handle.Get())
}

func TestInsertAndIter(t *testing.T) {
	store := NewStoreWithBlockSize[int](1)

	a := store.Insert(0)
	b := store.Insert(1)

	handles := store.Iter()
	if diff := cmp.Diff([]Handle[int]{a, b}, handles, cmp.Comparer(
		func(x, y Handle[int]) bool { return x == y },
	)); diff != "" {
		t.Errorf("iteration order mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleIdentity(t *testing.T) {
	store := NewStore[int]()

	a := store.Insert(1)
	b := store.Insert(1)

	// Structurally equal objects, distinct identities.
	assert.Equal(t, *a.Get(), *b.Get())
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a.ID(), b.ID())

	// Copies of a handle are identical to it and share its ID.
	c := a
	assert.Equal(t, a, c)
	assert.Equal(t, a.ID(), c.ID())
}

func TestHandleOrdering(t *testing.T) {
	store := NewStore[string]()

	a := store.Insert("first")
	b := store.Insert("second")

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a))
}

func TestBlockGrowthKeepsHandlesStable(t *testing.T) {
	store := NewStoreWithBlockSize[int](2)

	var handles []Handle[int]
	for i := 0; i < 10; i++ {
		handles = append(handles, store.Insert(i))
	}

	// Growing the store must not have moved earlier objects.
	for i, h := range handles {
		assert.Equal(t, i, *h.Get())
	}
	assert.Equal(t, 10, store.Len())
}

func TestReserve(t *testing.T) {
	store := NewStore[int]()

	a := store.Reserve()
	b := store.Reserve()

	// Handles from reservations are valid before completion.
	require.NotEqual(t, a.Handle().ID(), b.Handle().ID())

	ha := a.Complete(0)
	hb := b.Complete(1)

	assert.Equal(t, 0, *ha.Get())
	assert.Equal(t, 1, *hb.Get())

	// The completed handle is identical to the reservation's handle.
	assert.Equal(t, a.Handle(), ha)
}

func TestDereferenceUncompletedReservationPanics(t *testing.T) {
	store := NewStore[int]()

	reservation := store.Reserve()
	handle := reservation.Handle()

	assert.Panics(t, func() {
		handle.Get()
	})
}

func TestNilHandle(t *testing.T) {
	var handle Handle[int]

	assert.True(t, handle.IsNil())
	assert.Panics(t, func() {
		handle.Get()
	})
}

func TestConcurrentInsertAndRead(t *testing.T) {
	store := NewStoreWithBlockSize[int](8)
	first := store.Insert(42)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			store.Insert(i)
		}(i)
		go func() {
			defer wg.Done()
			assert.Equal(t, 42, *first.Get())
		}()
	}
	wg.Wait()

	assert.Equal(t, 9, store.Len())
}
