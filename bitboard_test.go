package bitengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromLSBAndIsSet(t *testing.T) {
	for _, i := range []int{0, 1, 63, 64, 65, 127} {
		bb := FromLSB(i)
		assert.True(t, bb.IsSet(i))
		assert.Equal(t, 1, bb.CountBits())
	}
}

func TestBitScanForwardReverse(t *testing.T) {
	bb := FromLSB(5).Or(FromLSB(70))
	assert.Equal(t, 5, bb.BitScanForward())
	assert.Equal(t, 70, bb.BitScanReverse())
}

func TestBitScanForwardPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { BitBoard{}.BitScanForward() })
}

func TestShiftsByGeqCapacityAreEmpty(t *testing.T) {
	bb := FromLSB(3)
	assert.True(t, bb.Left(200).IsEmpty())
	assert.True(t, bb.Right(200).IsEmpty())
}

func TestUpDownAreInverses(t *testing.T) {
	cols := 8
	bb := FromLSB(20)
	assert.True(t, bb.Down(2, cols).Up(2, cols).Equal(bb))
}

func TestLeftRightAreInverses(t *testing.T) {
	bb := FromLSB(20)
	assert.True(t, bb.Right(3).Left(3).Equal(bb))
}

func TestIterOneBitsAscendingAndBounded(t *testing.T) {
	bb := FromLSB(2).Or(FromLSB(9)).Or(FromLSB(63)).Or(FromLSB(64))
	var got []int
	for i := range bb.IterOneBits(64) {
		got = append(got, i)
	}
	assert.Equal(t, []int{2, 9, 63}, got)
}

func TestIterOneBitsDoesNotMutate(t *testing.T) {
	bb := FromLSB(4).Or(FromLSB(9))
	for range bb.IterOneBits(128) {
	}
	assert.Equal(t, 2, bb.CountBits())
}

func TestAndOrXorNotAndNot(t *testing.T) {
	a := FromLSB(1).Or(FromLSB(2))
	b := FromLSB(2).Or(FromLSB(3))

	assert.True(t, a.And(b).Equal(FromLSB(2)))
	assert.True(t, a.Or(b).Equal(FromLSB(1).Or(FromLSB(2)).Or(FromLSB(3))))
	assert.True(t, a.Xor(b).Equal(FromLSB(1).Or(FromLSB(3))))
	assert.True(t, a.AndNot(b).Equal(FromLSB(1)))
	assert.False(t, a.Not().IsSet(1))
}

func TestLess(t *testing.T) {
	assert.True(t, FromLSB(1).Less(FromLSB(2)))
	assert.True(t, FromLSB(63).Less(FromLSB(64)))
	assert.False(t, FromLSB(64).Less(FromLSB(63)))
}

func TestBitScanDirection(t *testing.T) {
	bb := FromLSB(10).Or(FromLSB(50))
	assert.Equal(t, 10, bb.BitScan(LEFT))
	assert.Equal(t, 50, bb.BitScan(RIGHT))
}
