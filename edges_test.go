package bitengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEdgeList8x8(t *testing.T) {
	edges := GenerateEdgeList(8, 8)
	assert.Len(t, edges, 1)
	e := edges[0]

	assert.Equal(t, 8, e.Top.CountBits())
	assert.Equal(t, 8, e.Bottom.CountBits())
	assert.Equal(t, 8, e.Left.CountBits())
	assert.Equal(t, 8, e.Right.CountBits())

	assert.True(t, e.Top.IsSet(0))
	assert.True(t, e.Top.IsSet(7))
	assert.False(t, e.Top.IsSet(8))

	assert.True(t, e.Bottom.IsSet(56))
	assert.True(t, e.Bottom.IsSet(63))

	assert.True(t, e.Left.IsSet(0))
	assert.True(t, e.Left.IsSet(56))
	assert.False(t, e.Left.IsSet(1))

	assert.True(t, e.Right.IsSet(7))
	assert.True(t, e.Right.IsSet(63))
}

func TestGenerateEdgeListRectangular(t *testing.T) {
	edges := GenerateEdgeList(5, 3)
	e := edges[0]

	assert.Equal(t, 3, e.Top.CountBits())
	assert.Equal(t, 3, e.Bottom.CountBits())
	assert.Equal(t, 5, e.Left.CountBits())
	assert.Equal(t, 5, e.Right.CountBits())

	assert.True(t, e.Bottom.IsSet(12))
	assert.True(t, e.Bottom.IsSet(14))
}
