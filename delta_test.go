package bitengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeftNClipsAtEdge(t *testing.T) {
	edges := GenerateEdgeList(8, 8)[0]

	// a8 is square 0, the top-left corner: there is no square to its left.
	assert.True(t, leftN(FromLSB(0), edges, 1).IsEmpty())
	assert.True(t, leftN(FromLSB(0), edges, 2).IsEmpty())

	// one step in from the left edge: a single left shift succeeds, two do not.
	from := FromLSB(1)
	assert.True(t, leftN(from, edges, 1).Equal(FromLSB(0)))
	assert.True(t, leftN(from, edges, 2).IsEmpty())
}

func TestRightNClipsAtEdge(t *testing.T) {
	edges := GenerateEdgeList(8, 8)[0]

	assert.True(t, rightN(FromLSB(7), edges, 1).IsEmpty())

	from := FromLSB(6)
	assert.True(t, rightN(from, edges, 1).Equal(FromLSB(7)))
	assert.True(t, rightN(from, edges, 2).IsEmpty())
}
