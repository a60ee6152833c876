package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Allocate(t *testing.T) {
	t.Run("zero capacity", func(t *testing.T) {
		b := New[int](0)
		assert.Equal(t, 0, b.Cap())
		assert.Empty(t, b.Slots())
	})

	t.Run("negative capacity", func(t *testing.T) {
		b := New[int](-3)
		assert.Equal(t, 0, b.Cap())
	})

	t.Run("reallocate discards contents", func(t *testing.T) {
		b := New[int](4)
		b.Slots()[0] = 7
		b.Allocate(4)
		assert.Equal(t, 4, b.Cap())
		assert.Equal(t, 0, b.Slots()[0])
	})
}

func TestBuffer_Grow(t *testing.T) {
	b := New[int](3)
	copy(b.Slots(), []int{1, 2, 3})
	old := b.Slots()

	b.Grow(6)
	require.Equal(t, 6, b.Cap())
	assert.Equal(t, []int{1, 2, 3, 0, 0, 0}, b.Slots())

	// The old storage is detached from the buffer.
	old[0] = 99
	assert.Equal(t, 1, b.Slots()[0])

	t.Run("no shrink", func(t *testing.T) {
		b.Grow(2)
		assert.Equal(t, 6, b.Cap())
	})
}

func TestBuffer_CopyFrom(t *testing.T) {
	src := New[int](5)
	copy(src.Slots(), []int{10, 20, 30, 40, 50})

	dst := New[int](2)
	dst.CopyFrom(src, 1, 3)
	require.GreaterOrEqual(t, dst.Cap(), 3)
	assert.Equal(t, []int{20, 30, 40}, dst.Slots()[:3])

	dst.Slots()[0] = -1
	assert.Equal(t, 20, src.Slots()[1])
}

func TestBuffer_CloneFrom(t *testing.T) {
	src := New[[]int](2)
	src.Slots()[0] = []int{1, 2}
	src.Slots()[1] = []int{3}

	t.Run("shallow copy shares element storage", func(t *testing.T) {
		dst := New[[]int](2)
		dst.CopyFrom(src, 0, 2)
		dst.Slots()[0][0] = 100
		assert.Equal(t, 100, src.Slots()[0][0])
		src.Slots()[0][0] = 1
	})

	t.Run("clone copies elements", func(t *testing.T) {
		dst := New[[]int](2)
		dst.CloneFrom(src, 0, 2, func(s []int) []int { return append([]int(nil), s...) })
		dst.Slots()[0][0] = 100
		assert.Equal(t, 1, src.Slots()[0][0])
		assert.Equal(t, []int{3}, dst.Slots()[1])
	})
}

func TestBuffer_Zero(t *testing.T) {
	b := New[string](3)
	copy(b.Slots(), []string{"a", "b", "c"})
	b.Zero(1, 3)
	assert.Equal(t, []string{"a", "", ""}, b.Slots())
}
