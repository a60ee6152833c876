package rowset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Ints())

	for _, p := range []int{7, 3, 3, 100, 0} {
		require.NoError(t, s.Add(p))
	}

	assert.False(t, s.IsEmpty())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 0, s.Min())
	assert.Equal(t, []int{0, 3, 7, 100}, s.Ints())
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(8))
	assert.False(t, s.Contains(-1))
}

func TestSet_AddInvalid(t *testing.T) {
	s := New()
	assert.Error(t, s.Add(-1))
	assert.True(t, s.IsEmpty())
}

func TestSet_ForEachStops(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Add(i))
	}

	var seen []int
	s.ForEach(func(pos int) bool {
		seen = append(seen, pos)
		return pos < 2
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}
