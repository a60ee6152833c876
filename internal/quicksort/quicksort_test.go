package quicksort

import (
	"cmp"
	"slices"
	"testing"

	"github.com/hupe1980/govec/testutil"
	"github.com/stretchr/testify/assert"
)

func desc(a, b int) int { return cmp.Compare(b, a) }

func TestSort(t *testing.T) {
	t.Run("fixed input", func(t *testing.T) {
		xs := []int{1, 22, 4, 15, 69, 7, 88, 90, 0, 7}
		Sort(xs, cmp.Compare[int])
		assert.Equal(t, []int{0, 1, 4, 7, 7, 15, 22, 69, 88, 90}, xs)

		Sort(xs, desc)
		assert.Equal(t, []int{90, 88, 69, 22, 15, 7, 7, 4, 1, 0}, xs)
	})

	t.Run("trivial partitions", func(t *testing.T) {
		var empty []int
		Sort(empty, cmp.Compare[int])
		assert.Empty(t, empty)

		one := []int{5}
		Sort(one, cmp.Compare[int])
		assert.Equal(t, []int{5}, one)

		two := []int{2, 1}
		Sort(two, cmp.Compare[int])
		assert.Equal(t, []int{1, 2}, two)
	})

	t.Run("all equal", func(t *testing.T) {
		xs := []int{3, 3, 3, 3, 3}
		Sort(xs, cmp.Compare[int])
		assert.Equal(t, []int{3, 3, 3, 3, 3}, xs)
	})

	t.Run("sorted and reverse sorted input", func(t *testing.T) {
		xs := testutil.Ascending(500)
		Sort(xs, cmp.Compare[int])
		assert.Equal(t, testutil.Ascending(500), xs)

		ys := testutil.Descending(500)
		Sort(ys, cmp.Compare[int])
		assert.Equal(t, testutil.Ascending(500), ys)
	})

	t.Run("strings", func(t *testing.T) {
		xs := []string{"pear", "apple", "fig", "banana"}
		Sort(xs, cmp.Compare[string])
		assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, xs)
	})
}

func TestSortRandomized(t *testing.T) {
	rng := testutil.NewRNG(42)

	for round := 0; round < 200; round++ {
		n := rng.Intn(64)
		xs := rng.Ints(n, 8)
		want := slices.Clone(xs)
		slices.Sort(want)

		got := slices.Clone(xs)
		Sort(got, cmp.Compare[int])
		assert.Equal(t, want, got, "input %v", xs)

		Sort(got, desc)
		slices.Reverse(want)
		assert.Equal(t, want, got, "input %v", xs)
	}
}

func TestSortComparisons(t *testing.T) {
	count := func(xs []int) int {
		n := 0
		Sort(xs, func(a, b int) int {
			n++
			return cmp.Compare(a, b)
		})
		return n
	}

	const size = 256
	sorted := count(testutil.Ascending(size))
	random := count(testutil.NewRNG(7).Ints(size, 1<<20))

	// Pivot-at-right degenerates on sorted input.
	assert.Greater(t, sorted, size*size/4)
	assert.Less(t, random, sorted)
}

func BenchmarkSortRandom(b *testing.B) {
	src := testutil.NewRNG(1).Ints(10_000, 1<<30)
	xs := make([]int, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(xs, src)
		Sort(xs, cmp.Compare[int])
	}
}
