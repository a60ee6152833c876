package govec

import (
	"cmp"
	"time"

	"github.com/hupe1980/govec/internal/quicksort"
)

// DefaultCompare orders values ascending.
func DefaultCompare[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Descending returns a comparator that orders the opposite way of compare.
func Descending[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// Sort sorts v ascending with DefaultCompare.
func Sort[T cmp.Ordered](v *Vector[T]) {
	v.SortFunc(DefaultCompare[T])
}

// SortFunc sorts v in place using compare, which returns a negative number
// when a sorts before b, zero when they are equal and a positive number
// otherwise.
//
// The sort is a plain quicksort that always pivots on the last element of a
// partition. It is not stable and has no worst-case protection: input that
// is already sorted, reverse sorted or crafted against the pivot rule takes
// O(n²) comparisons.
func (v *Vector[T]) SortFunc(compare func(a, b T) int) {
	v.lazy()
	start := time.Now()
	quicksort.Sort(v.live(), compare)
	elapsed := time.Since(start)
	v.metrics.RecordSort(v.length, elapsed)
	v.logger.LogSort(v.length, elapsed)
}
