// Package quicksort implements an in-place, comparator driven quicksort.
//
// The pivot is always the last element of a partition. There is no
// randomization, no median-of-three and no fallback to heapsort, so already
// sorted, reverse sorted or adversarial input degrades to O(n²) comparisons
// and O(n) recursion depth. Average case is O(n log n).
package quicksort

// Sort orders elems in place according to cmp, which returns a negative
// number when a sorts before b, zero when they are equal and a positive
// number otherwise. The sort is not stable.
func Sort[T any](elems []T, cmp func(a, b T) int) {
	sort(elems, 0, len(elems)-1, cmp)
}

func sort[T any](elems []T, left, right int, cmp func(a, b T) int) {
	if left >= right {
		return
	}
	p := partition(elems, left, right, cmp)
	sort(elems, left, p-1, cmp)
	sort(elems, p+1, right, cmp)
}

// partition splits elems[left:right+1] around the pivot elems[right] and
// returns the pivot's final position.
func partition[T any](elems []T, left, right int, cmp func(a, b T) int) int {
	i, j := left, right-1
	pivot := elems[right]

	for {
		for cmp(elems[i], pivot) <= 0 && i < right {
			i++
		}
		for cmp(elems[j], pivot) >= 0 && j > left {
			j--
		}
		if i < j {
			elems[i], elems[j] = elems[j], elems[i]
		}
		if i >= j {
			break
		}
	}

	if cmp(elems[i], pivot) > 0 {
		elems[i], elems[right] = elems[right], elems[i]
	}
	return i
}
