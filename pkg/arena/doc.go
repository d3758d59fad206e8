// Package arena provides generational slot storage with stable, reusable
// handles.
//
// # Overview
//
// An [Arena] stores values of a single type in an ordered sequence of slots.
// Adding a value returns a [Handle] - an (index, generation) pair - instead
// of a pointer. Handles stay cheap to copy and compare, survive arena
// growth, and become safely invalid when their slot is removed: a stale
// handle resolves to "not found" rather than reaching whatever value was
// stored in the slot afterwards.
//
// # Handles and Generations
//
// Every slot carries a generation counter that increments each time the slot
// transitions from allocated to free. A handle records the generation at
// issue time, and [Arena.Get] only succeeds while the two still match. This
// is the whole safety contract - there is no way to dereference a handle
// into a reused slot:
//
//	a := arena.New[string]()
//	h := a.Add("first")
//	a.Remove(h)
//	again := a.Add("second") // reuses the slot, generation bumped
//	_, ok := a.Get(h)        // ok == false, h is stale
//	v, _ := a.Get(again)     // *v == "second"
//
// # Slot Reuse
//
// [Arena.Add] scans from the front and reuses the lowest-index free slot,
// so slot assignment is deterministic for a fixed call sequence. When a
// removal frees the last slot, the arena trims the trailing run of free
// slots so storage does not grow without bound under add/remove churn at
// the tail.
//
// # Concurrency
//
// An arena has a single logical owner. No internal locking is performed;
// wrap the arena yourself if you need shared access.
package arena
