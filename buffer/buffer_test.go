package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("positive size allocates", func(t *testing.T) {
		b := New[int](4)

		assert.True(t, b.Owns())
		assert.Equal(t, 4, b.Len())
	})

	t.Run("zero size owns nothing", func(t *testing.T) {
		b := New[int](0)

		assert.False(t, b.Owns())
		assert.Equal(t, 0, b.Len())
	})

	t.Run("elements are default valued", func(t *testing.T) {
		b := New[string](3)

		for i := 0; i < b.Len(); i++ {
			assert.Equal(t, "", b.Get(i))
		}
	})

	t.Run("zero value owns nothing", func(t *testing.T) {
		var b Buffer[int]

		assert.False(t, b.Owns())
		assert.Equal(t, 0, b.Len())
	})
}

func TestAdopt(t *testing.T) {
	block := []int{1, 2, 3}
	b := Adopt(block)

	assert.True(t, b.Owns())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 2, b.Get(1))
}

func TestBuffer_First(t *testing.T) {
	t.Run("owning buffer", func(t *testing.T) {
		b := Adopt([]int{7, 8})

		first, err := b.First()
		require.NoError(t, err)
		assert.Equal(t, 7, *first)

		*first = 9
		assert.Equal(t, 9, b.Get(0))
	})

	t.Run("empty buffer", func(t *testing.T) {
		var b Buffer[int]

		first, err := b.First()
		assert.Nil(t, first)
		assert.ErrorIs(t, err, ErrNoBlock)
	})
}

func TestBuffer_GetSet(t *testing.T) {
	b := New[int](3)

	b.Set(0, 10)
	b.Set(2, 30)

	assert.Equal(t, 10, b.Get(0))
	assert.Equal(t, 0, b.Get(1))
	assert.Equal(t, 30, b.Get(2))
}

func TestBuffer_Release(t *testing.T) {
	t.Run("transfers block to caller", func(t *testing.T) {
		b := Adopt([]int{1, 2})

		block := b.Release()

		assert.Equal(t, []int{1, 2}, block)
		assert.False(t, b.Owns())
		assert.Equal(t, 0, b.Len())
	})

	t.Run("empty buffer returns nil", func(t *testing.T) {
		var b Buffer[int]

		assert.Nil(t, b.Release())
		assert.False(t, b.Owns())
	})
}

func TestBuffer_Move(t *testing.T) {
	src := Adopt([]int{1, 2, 3})

	dst := src.Move()

	assert.False(t, src.Owns())
	assert.True(t, dst.Owns())
	assert.Equal(t, 3, dst.Len())
	assert.Equal(t, 1, dst.Get(0))
}

func TestBuffer_MoveFrom(t *testing.T) {
	t.Run("into empty target", func(t *testing.T) {
		src := Adopt([]int{1, 2})
		var dst Buffer[int]

		dst.MoveFrom(src)

		assert.False(t, src.Owns())
		assert.Equal(t, 2, dst.Len())
		assert.Equal(t, 1, dst.Get(0))
	})

	t.Run("into owning target drops its block", func(t *testing.T) {
		src := Adopt([]int{1, 2, 3})
		dst := Adopt([]int{9})

		dst.MoveFrom(src)

		assert.False(t, src.Owns())
		assert.Equal(t, 3, dst.Len())
		assert.Equal(t, 3, dst.Get(2))
	})

	t.Run("self move is a no-op", func(t *testing.T) {
		b := Adopt([]int{5})

		b.MoveFrom(b)

		assert.True(t, b.Owns())
		assert.Equal(t, 5, b.Get(0))
	})
}

func TestBuffer_Swap(t *testing.T) {
	t.Run("two owning buffers", func(t *testing.T) {
		a := Adopt([]int{1})
		b := Adopt([]int{2, 3})

		a.Swap(b)

		assert.Equal(t, 2, a.Len())
		assert.Equal(t, 2, a.Get(0))
		assert.Equal(t, 1, b.Len())
		assert.Equal(t, 1, b.Get(0))
	})

	t.Run("with empty buffer", func(t *testing.T) {
		a := Adopt([]int{1})
		var b Buffer[int]

		a.Swap(&b)

		assert.False(t, a.Owns())
		assert.True(t, b.Owns())
	})
}
