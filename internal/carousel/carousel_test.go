package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarouselWraps(t *testing.T) {
	c := New(3)
	assert.Equal(t, 0, c.Current())
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
	assert.Equal(t, 0, c.Next(), "wraps past the end")
	assert.Equal(t, 2, c.Prev(), "wraps before the start")
	assert.Equal(t, 1, c.Prev())
}

func TestCarouselGo(t *testing.T) {
	c := New(6)
	require.True(t, c.Go(4))
	assert.Equal(t, 4, c.Current())
	assert.Equal(t, "5 of 6", c.Position())

	assert.False(t, c.Go(6))
	assert.False(t, c.Go(-1))
	assert.Equal(t, 4, c.Current(), "rejected jumps keep the position")
}

func TestCarouselPeek(t *testing.T) {
	c, ok := At(4, 3)
	require.True(t, ok)
	assert.Equal(t, 0, c.NextIndex())
	assert.Equal(t, 2, c.PrevIndex())
	assert.Equal(t, 3, c.Current(), "peeking does not move")

	_, ok = At(4, 4)
	assert.False(t, ok)
}

func TestCarouselEmpty(t *testing.T) {
	c := New(0)
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Prev())
	assert.False(t, c.Go(0))
	assert.Equal(t, "0 of 0", c.Position())

	assert.Equal(t, 0, New(-2).Len())
}

func TestCarouselIndexStaysInRange(t *testing.T) {
	c := New(5)
	for i := 0; i < 23; i++ {
		if i%3 == 0 {
			c.Prev()
		} else {
			c.Next()
		}
		assert.GreaterOrEqual(t, c.Current(), 0)
		assert.Less(t, c.Current(), c.Len())
	}
}
