// Package govec provides a generic, resizable array with bounds-checked,
// negative-index access.
//
// # Quick Start
//
//	v := govec.New[int]()
//	v.Append(10).Append(20).Append(30)
//
//	first, _ := v.First() // 10
//	last, _ := v.Get(-1)  // 30
//
//	if _, err := v.Get(3); errors.Is(err, govec.ErrOutOfBounds) {
//	    var ae *govec.AccessError
//	    errors.As(err, &ae)
//	    lo, hi, _ := ae.Range() // -2, 2
//	}
//
// # Indexing
//
// Every indexed operation (Get, Set, First, Last, RemoveAt, Slice) accepts
// indices in [-Len(), Len()). Negative indices count from the end. Anything
// else fails with an *AccessError of kind EmptyAccess (the vector has no
// elements) or OutOfBounds. A failed operation never modifies the vector.
//
// # Storage
//
// A Vector owns one contiguous buffer. New reserves DefaultCapacity slots;
// FromSlice reserves exactly as many as it is given. Append doubles the
// capacity when the buffer is full. Clear keeps the capacity. Slice and Copy
// always produce vectors with their own buffer; elements are copied bitwise
// unless a cloner is configured with WithCloner.
//
// # Sorting
//
// Sort and SortFunc use an in-place quicksort that pivots on the last
// element. It has no worst-case protection, so sorted or reverse-sorted
// input costs O(n²) comparisons.
//
// # Observability
//
// WithLogger and WithMetricsCollector hook growth, rejected accesses, sorts
// and removals into slog and any metrics backend. Both default to no-ops.
package govec
