package govec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/govec/internal/bounds"
	"github.com/hupe1980/govec/internal/buffer"
	"github.com/hupe1980/govec/internal/rowset"
)

// Vector is a resizable array backed by a single contiguous buffer.
//
// Indexed operations accept negative indices, which count from the end:
// -1 is the last element and -Len() the first. Appending beyond the capacity
// doubles it; the capacity never shrinks.
//
// The zero value is an empty vector with default options, ready to use.
// A Vector is not safe for concurrent use.
type Vector[T comparable] struct {
	buf     *buffer.Buffer[T]
	length  int
	clone   func(T) T
	metrics MetricsCollector
	logger  *Logger
}

// New creates an empty vector with DefaultCapacity slots unless
// WithCapacity says otherwise.
func New[T comparable](optFns ...Option) *Vector[T] {
	o := applyOptions(optFns)
	v := &Vector[T]{}
	v.configure(o)
	v.buf = buffer.New[T](o.capacity)
	return v
}

// From creates a vector holding items. Length and capacity both equal
// len(items).
func From[T comparable](items ...T) *Vector[T] {
	return FromSlice(items)
}

// FromSlice creates a vector holding a copy of items. Length and capacity
// both equal len(items); later changes to items do not affect the vector.
func FromSlice[T comparable](items []T, optFns ...Option) *Vector[T] {
	o := applyOptions(optFns)
	v := &Vector[T]{}
	v.configure(o)
	v.buf = buffer.New[T](len(items))
	copy(v.buf.Slots(), items)
	v.length = len(items)
	return v
}

func (v *Vector[T]) configure(o options) {
	if o.cloner != nil {
		clone, ok := o.cloner.(func(T) T)
		if !ok {
			var zero T
			panic(fmt.Sprintf("govec: cloner %T does not match element type %T", o.cloner, zero))
		}
		v.clone = clone
	}
	v.metrics = o.metricsCollector
	v.logger = o.logger
}

// lazy prepares a zero-value Vector for use.
func (v *Vector[T]) lazy() {
	if v.buf != nil {
		return
	}
	v.configure(applyOptions(nil))
	v.buf = buffer.New[T](0)
}

// derive creates an empty vector with the same configuration as v.
func (v *Vector[T]) derive(capacity int) *Vector[T] {
	return &Vector[T]{
		buf:     buffer.New[T](capacity),
		clone:   v.clone,
		metrics: v.metrics,
		logger:  v.logger,
	}
}

// live returns the in-use part of the buffer. It is invalidated by any call
// that may grow the vector.
func (v *Vector[T]) live() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf.Slots()[:v.length]
}

func (v *Vector[T]) resolve(op string, index int) (int, error) {
	i, err := bounds.Resolve(index, v.length)
	if err != nil {
		return 0, v.reject(op, translateError(err))
	}
	return i, nil
}

func (v *Vector[T]) reject(op string, err error) error {
	v.lazy()
	var ae *AccessError
	if errors.As(err, &ae) {
		v.metrics.RecordAccessError(ae.Kind)
	}
	v.logger.LogAccessError(op, err)
	return err
}

func (v *Vector[T]) grow(newCapacity int) {
	old := v.buf.Cap()
	v.buf.Grow(newCapacity)
	v.metrics.RecordGrow(old, newCapacity)
	v.logger.LogGrow(old, newCapacity)
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v.buf == nil {
		return 0
	}
	return v.buf.Cap()
}

// IsEmpty returns true if the vector has no elements.
func (v *Vector[T]) IsEmpty() bool { return v.length == 0 }

// First returns the first element.
func (v *Vector[T]) First() (T, error) {
	return v.Get(0)
}

// Last returns the last element.
func (v *Vector[T]) Last() (T, error) {
	return v.Get(-1)
}

// Get returns the element at index.
func (v *Vector[T]) Get(index int) (T, error) {
	i, err := v.resolve("get", index)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.buf.Slots()[i], nil
}

// Set replaces the element at index.
func (v *Vector[T]) Set(index int, value T) error {
	i, err := v.resolve("set", index)
	if err != nil {
		return err
	}
	v.buf.Slots()[i] = value
	return nil
}

// Append adds item to the end and returns v to allow chaining.
// When the buffer is full its capacity doubles first, which keeps appends
// amortized O(1).
func (v *Vector[T]) Append(item T) *Vector[T] {
	v.lazy()
	if v.length == v.buf.Cap() {
		v.grow(max(1, v.buf.Cap()) * 2)
	}
	v.buf.Slots()[v.length] = item
	v.length++
	return v
}

// AppendAll appends items in order and returns v.
func (v *Vector[T]) AppendAll(items ...T) *Vector[T] {
	for _, item := range items {
		v.Append(item)
	}
	return v
}

// Index returns the position of the first element equal to item, or -1.
func (v *Vector[T]) Index(item T) int {
	for i, x := range v.live() {
		if x == item {
			return i
		}
	}
	return -1
}

// LastIndex returns the position of the last element equal to item, or -1.
func (v *Vector[T]) LastIndex(item T) int {
	found := -1
	for i, x := range v.live() {
		if x == item {
			found = i
		}
	}
	return found
}

// IndexAll returns the positions of all elements equal to item in ascending
// order. The result is empty, not nil, when nothing matches.
func (v *Vector[T]) IndexAll(item T) []int {
	return v.matches(item).Ints()
}

// Contains reports whether any element equals item.
func (v *Vector[T]) Contains(item T) bool {
	return v.Index(item) >= 0
}

// SliceFrom returns a new vector holding the elements from start to the end.
func (v *Vector[T]) SliceFrom(start int) (*Vector[T], error) {
	begin, err := v.resolve("slice", start)
	if err != nil {
		return nil, err
	}
	return v.Slice(begin, v.length-begin)
}

// Slice returns a new vector holding count elements starting at start.
// Both start and the last sliced position, start+count-1, are resolved like
// any other index; the call fails if the last position resolves before
// start or the resolved range does not hold exactly count elements.
// A zero count at any valid start yields an empty vector.
// The result owns its storage: changes to it never affect v and vice
// versa. Elements are copied bitwise unless WithCloner was given.
func (v *Vector[T]) Slice(start, count int) (*Vector[T], error) {
	begin, err := v.resolve("slice", start)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return v.derive(0), nil
	}
	endIndex := start + count - 1
	end, err := v.resolve("slice", endIndex)
	if err != nil {
		return nil, err
	}
	if end < begin || end-begin+1 != count {
		return nil, v.reject("slice", newAccessError(endIndex, v.length))
	}

	out := v.derive(count)
	if v.clone != nil {
		out.buf.CloneFrom(v.buf, begin, count, v.clone)
	} else {
		out.buf.CopyFrom(v.buf, begin, count)
	}
	out.length = count
	return out, nil
}

// Copy returns an independent duplicate of v. It is SliceFrom(0), so
// copying an empty vector fails with ErrEmptyAccess.
func (v *Vector[T]) Copy() (*Vector[T], error) {
	return v.SliceFrom(0)
}

// Map replaces every element with fn(element), in index order.
func (v *Vector[T]) Map(fn func(T) T) {
	elems := v.live()
	for i, x := range elems {
		elems[i] = fn(x)
	}
}

// Reverse reverses the order of the elements in place.
func (v *Vector[T]) Reverse() {
	elems := v.live()
	for i, j := 0, len(elems)-1; i < len(elems)/2; i, j = i+1, j-1 {
		elems[i], elems[j] = elems[j], elems[i]
	}
}

// Remove deletes every element equal to item, keeping the order of the
// remaining elements, and returns how many were deleted.
// Adjacent duplicates are all removed. Positions are tracked as uint32, so
// Remove panics on a vector longer than math.MaxUint32 elements.
func (v *Vector[T]) Remove(item T) int {
	v.lazy()
	removed := v.compact(v.matches(item))
	v.metrics.RecordRemove(removed)
	v.logger.LogRemove(removed, v.length)
	return removed
}

// RemoveAt deletes the element at index, shifts the following elements one
// position to the left and returns the deleted element.
func (v *Vector[T]) RemoveAt(index int) (T, error) {
	i, err := v.resolve("removeAt", index)
	if err != nil {
		var zero T
		return zero, err
	}
	slots := v.buf.Slots()
	item := slots[i]
	copy(slots[i:v.length-1], slots[i+1:v.length])
	v.buf.Zero(v.length-1, v.length)
	v.length--
	v.metrics.RecordRemove(1)
	v.logger.LogRemove(1, v.length)
	return item, nil
}

// RemoveIndices deletes the elements at the given indices in a single pass
// and returns how many were deleted. Indices may be negative and may repeat;
// each position is deleted once. All indices are validated before anything
// is deleted, so on error v is unchanged. Like Remove, it panics on a vector
// longer than math.MaxUint32 elements.
func (v *Vector[T]) RemoveIndices(indices ...int) (int, error) {
	v.lazy()
	marked := rowset.New()
	for _, index := range indices {
		i, err := v.resolve("removeIndices", index)
		if err != nil {
			return 0, err
		}
		mark(marked, i)
	}
	removed := v.compact(marked)
	v.metrics.RecordRemove(removed)
	v.logger.LogRemove(removed, v.length)
	return removed, nil
}

// Clear removes all elements. The capacity is kept, so the vector can be
// refilled up to it without reallocating.
func (v *Vector[T]) Clear() {
	v.lazy()
	v.buf.Zero(0, v.length)
	v.length = 0
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.length)
	copy(out, v.live())
	return out
}

func (v *Vector[T]) matches(item T) *rowset.Set {
	marked := rowset.New()
	for i, x := range v.live() {
		if x == item {
			mark(marked, i)
		}
	}
	return marked
}

// compact deletes the marked positions, shifting survivors left, and
// returns the number of deleted elements.
func (v *Vector[T]) compact(marked *rowset.Set) int {
	if marked.IsEmpty() {
		return 0
	}
	slots := v.buf.Slots()
	w := marked.Min()
	for r := w + 1; r < v.length; r++ {
		if !marked.Contains(r) {
			slots[w] = slots[r]
			w++
		}
	}
	removed := v.length - w
	v.buf.Zero(w, v.length)
	v.length = w
	return removed
}

func mark(s *rowset.Set, pos int) {
	if err := s.Add(pos); err != nil {
		panic(fmt.Sprintf("govec: position %d cannot be tracked: %v", pos, err))
	}
}
