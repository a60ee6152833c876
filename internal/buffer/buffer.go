// Package buffer implements the owned, contiguous element storage behind a
// vector.
package buffer

// Buffer is a fixed block of slots that can be replaced by a larger one.
// It does not track how many slots are in use; that is the owner's job.
type Buffer[T any] struct {
	slots []T
}

// New allocates a buffer with the given number of slots.
func New[T any](capacity int) *Buffer[T] {
	b := &Buffer[T]{}
	b.Allocate(capacity)
	return b
}

// Allocate discards the current storage and reserves capacity zeroed slots.
// A negative capacity is treated as zero.
func (b *Buffer[T]) Allocate(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	b.slots = make([]T, capacity)
}

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int { return len(b.slots) }

// Slots exposes the backing storage. The returned slice is only valid until
// the next call to Allocate or Grow.
func (b *Buffer[T]) Slots() []T { return b.slots }

// Grow replaces the storage with newCapacity slots, keeping every existing
// element at its position. Requests that would not grow are ignored.
func (b *Buffer[T]) Grow(newCapacity int) {
	if newCapacity <= len(b.slots) {
		return
	}
	grown := make([]T, newCapacity)
	copy(grown, b.slots)
	b.slots = grown
}

// CopyFrom copies count elements of src, starting at start, into the first
// count slots of b. The copy is shallow: pointers, slices and maps held by
// the elements are shared with src.
func (b *Buffer[T]) CopyFrom(src *Buffer[T], start, count int) {
	b.Grow(count)
	copy(b.slots[:count], src.slots[start:start+count])
}

// CloneFrom is the element-wise variant of CopyFrom. Each element is passed
// through clone, which must return an independent copy.
func (b *Buffer[T]) CloneFrom(src *Buffer[T], start, count int, clone func(T) T) {
	b.Grow(count)
	for i, item := range src.slots[start : start+count] {
		b.slots[i] = clone(item)
	}
}

// Zero resets the slots in [from, to) to the zero value so that released
// elements can be collected.
func (b *Buffer[T]) Zero(from, to int) {
	clear(b.slots[from:to])
}
