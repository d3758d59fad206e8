package arena

import (
	"fmt"
	"iter"
)

// Handle is an opaque reference to a slot in an [Arena]. It pairs the slot
// index with the generation the slot had when the handle was issued. Two
// handles are equal only if both fields match, so handles are valid map keys
// and compare correctly with ==.
//
// A handle carries no ownership - it is a lookup capability that is valid
// only against the arena that produced it, and only until the referenced
// slot is removed.
type Handle struct {
	index      int
	generation int
}

// String returns a debug representation such as "slot 3 (gen 1)".
func (h Handle) String() string {
	return fmt.Sprintf("slot %d (gen %d)", h.index, h.generation)
}

// slot is a single storage cell. The generation counter increases each time
// the slot transitions from allocated to free, which invalidates every
// handle issued for the previous occupant.
type slot[T any] struct {
	allocated  bool
	generation int
	value      T
}

// Arena is generational slot storage with stable, reusable handles.
// Adding a value returns a [Handle]; removing the value frees the slot for
// reuse while bumping its generation, so stale handles resolve to "not
// found" instead of aliasing the new occupant.
//
// The zero value is ready to use. Arena is not safe for concurrent use
// without external synchronization.
type Arena[T any] struct {
	slots []slot[T]
	count int
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Add stores value and returns a handle to it. The first free slot (lowest
// index) is reused, keeping that slot's current generation; if no slot is
// free, a new slot is appended with generation 0. Reuse order is therefore
// deterministic: lowest index first.
func (a *Arena[T]) Add(value T) Handle {
	for i := range a.slots {
		if a.slots[i].allocated {
			continue
		}
		a.slots[i].allocated = true
		a.slots[i].value = value
		a.count++
		return Handle{index: i, generation: a.slots[i].generation}
	}
	a.slots = append(a.slots, slot[T]{allocated: true, value: value})
	a.count++
	return Handle{index: len(a.slots) - 1}
}

// Get returns a pointer to the value referenced by h, or (nil, false) if h
// is out of range, the slot is free, or the slot has been reused since h was
// issued. Get never panics; a stale handle is an ordinary miss.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if !a.valid(h) {
		return nil, false
	}
	return &a.slots[h.index].value, true
}

// Remove frees the slot referenced by h: the stored value is dropped, the
// slot's generation increments (invalidating all outstanding handles to it),
// and the live count decrements. If the freed slot is the last in the
// backing storage, the trailing run of free slots is physically trimmed.
//
// Remove validates the full handle first, so removing an out-of-range,
// stale, or already-removed handle is a safe no-op and cannot corrupt the
// live count.
func (a *Arena[T]) Remove(h Handle) {
	if !a.valid(h) {
		return
	}
	s := &a.slots[h.index]
	s.allocated = false
	s.generation++
	var zero T
	s.value = zero
	a.count--

	if h.index == len(a.slots)-1 {
		a.truncate()
	}
}

// Handles returns an iterator over handles to every currently allocated
// slot, in slot-index order. The sequence is lazy and restartable and does
// not allocate per step. Mutating the arena while ranging is not supported.
func (a *Arena[T]) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for i := range a.slots {
			if !a.slots[i].allocated {
				continue
			}
			if !yield(Handle{index: i, generation: a.slots[i].generation}) {
				return
			}
		}
	}
}

// Len returns the number of currently allocated slots. O(1).
func (a *Arena[T]) Len() int {
	return a.count
}

// valid reports whether h references a currently allocated slot with a
// matching generation.
func (a *Arena[T]) valid(h Handle) bool {
	return h.index >= 0 && h.index < len(a.slots) &&
		a.slots[h.index].allocated &&
		a.slots[h.index].generation == h.generation
}

// truncate drops the contiguous run of free slots at the tail of the
// backing storage, stopping at the first allocated slot or index 0.
func (a *Arena[T]) truncate() {
	end := len(a.slots)
	for end > 0 && !a.slots[end-1].allocated {
		end--
	}
	a.slots = a.slots[:end]
}
