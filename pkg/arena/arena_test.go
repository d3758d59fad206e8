package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddGet verifies the basic add/get round trip.
func TestAddGet(t *testing.T) {
	a := New[string]()
	h := a.Add("hello")

	v, ok := a.Get(h)
	require.True(t, ok)
	assert.Equal(t, "hello", *v)
	assert.Equal(t, 1, a.Len())
}

// TestGetMutatesThroughPointer verifies that Get exposes the stored value
// for in-place mutation.
func TestGetMutatesThroughPointer(t *testing.T) {
	a := New[[]int]()
	h := a.Add([]int{1})

	v, ok := a.Get(h)
	require.True(t, ok)
	*v = append(*v, 2)

	v2, ok := a.Get(h)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, *v2)
}

// TestStaleHandleMisses verifies that a removed handle never resolves again,
// even after its slot is reused.
func TestStaleHandleMisses(t *testing.T) {
	a := New[string]()
	first := a.Add("first")
	anchor := a.Add("anchor") // keeps slot 0 from being truncated

	a.Remove(first)
	_, ok := a.Get(first)
	assert.False(t, ok, "removed handle must miss")

	second := a.Add("second") // reuses slot 0 with a bumped generation
	assert.NotEqual(t, first, second)

	_, ok = a.Get(first)
	assert.False(t, ok, "stale handle must still miss after reuse")

	v, ok := a.Get(second)
	require.True(t, ok)
	assert.Equal(t, "second", *v)

	v, ok = a.Get(anchor)
	require.True(t, ok)
	assert.Equal(t, "anchor", *v)
}

// TestRemoveInvalidHandles verifies that out-of-range, foreign, and
// double-removed handles are silent no-ops and never disturb the live count.
func TestRemoveInvalidHandles(t *testing.T) {
	a := New[int]()
	h := a.Add(7)

	a.Remove(Handle{index: 99})
	a.Remove(Handle{index: -1})
	assert.Equal(t, 1, a.Len())

	a.Remove(h)
	assert.Equal(t, 0, a.Len())

	a.Remove(h) // double remove
	assert.Equal(t, 0, a.Len(), "double remove must not double-decrement")

	a.Remove(Handle{}) // zero handle on an empty arena
	assert.Equal(t, 0, a.Len())

	h2 := a.Add(8)
	v, ok := a.Get(h2)
	require.True(t, ok)
	assert.Equal(t, 8, *v)
	assert.Equal(t, 1, a.Len())
}

// TestReuseLowestIndexFirst verifies deterministic slot reuse order.
func TestReuseLowestIndexFirst(t *testing.T) {
	a := New[string]()
	h0 := a.Add("zero")
	h1 := a.Add("one")
	h2 := a.Add("two")

	a.Remove(h1)
	a.Remove(h0)

	r0 := a.Add("reuse-a")
	r1 := a.Add("reuse-b")

	// Both freed slots are refilled before any append happens.
	assert.Equal(t, 0, r0.index)
	assert.Equal(t, 1, r1.index)
	assert.Equal(t, 1, r0.generation)
	assert.Equal(t, 1, r1.generation)
	assert.Equal(t, 3, len(a.slots))

	v, ok := a.Get(h2)
	require.True(t, ok)
	assert.Equal(t, "two", *v)
}

// TestRemoveTailTruncatesStorage verifies that freeing the last slot trims
// the whole trailing run of free slots, stopping at the first allocated one.
func TestRemoveTailTruncatesStorage(t *testing.T) {
	a := New[string]()
	h0 := a.Add("a")
	h1 := a.Add("b")
	h2 := a.Add("c")
	h3 := a.Add("d")

	// Free a middle slot first: storage must not shrink yet.
	a.Remove(h2)
	assert.Equal(t, 4, len(a.slots))

	// Freeing the tail removes both the tail slot and the free run before it.
	a.Remove(h3)
	assert.Equal(t, 2, len(a.slots))
	assert.Equal(t, 2, a.Len())

	_, ok := a.Get(h0)
	assert.True(t, ok)
	_, ok = a.Get(h1)
	assert.True(t, ok)

	// A trimmed index is handed out from scratch on the next append.
	h := a.Add("e")
	assert.Equal(t, 2, h.index)
	assert.Equal(t, 0, h.generation)
}

// TestRemoveAllTruncatesToEmpty verifies the walk-back stops at index 0.
func TestRemoveAllTruncatesToEmpty(t *testing.T) {
	a := New[int]()
	h0 := a.Add(0)
	h1 := a.Add(1)

	a.Remove(h0)
	a.Remove(h1)

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, len(a.slots))
}

// TestHandlesIndexOrder verifies iteration order and that free slots are
// skipped rather than terminating the walk.
func TestHandlesIndexOrder(t *testing.T) {
	a := New[string]()
	a.Add("a")
	h1 := a.Add("b")
	a.Add("c")
	a.Add("d")

	a.Remove(h1) // hole in the middle must be skipped

	var got []string
	for h := range a.Handles() {
		v, ok := a.Get(h)
		require.True(t, ok)
		got = append(got, *v)
	}
	assert.Equal(t, []string{"a", "c", "d"}, got)
}

// TestHandlesRestartable verifies the sequence can be ranged more than once
// and supports early break.
func TestHandlesRestartable(t *testing.T) {
	a := New[int]()
	for i := 0; i < 5; i++ {
		a.Add(i)
	}

	seq := a.Handles()

	var first []Handle
	for h := range seq {
		first = append(first, h)
	}

	var second []Handle
	for h := range seq {
		second = append(second, h)
		if len(second) == 2 {
			break
		}
	}

	assert.Len(t, first, 5)
	assert.Equal(t, first[:2], second)
}

// TestLenMatchesIteration verifies the live count always equals the number
// of handles one full iteration yields, across a mixed op sequence.
func TestLenMatchesIteration(t *testing.T) {
	a := New[int]()

	var handles []Handle
	for i := 0; i < 10; i++ {
		handles = append(handles, a.Add(i))
	}
	a.Remove(handles[3])
	a.Remove(handles[7])
	a.Remove(handles[9]) // tail, triggers truncation
	a.Add(100)           // reuses slot 3

	n := 0
	for range a.Handles() {
		n++
	}
	assert.Equal(t, a.Len(), n)
	assert.Equal(t, 8, n)
}

// TestHandleString is a smoke test for the debug representation.
func TestHandleString(t *testing.T) {
	a := New[string]()
	h := a.Add("x")
	assert.Equal(t, "slot 0 (gen 0)", h.String())
}
