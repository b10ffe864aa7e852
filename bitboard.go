// bitboard.go implements the fixed-capacity bit vector used to represent
// occupancy on a rectangular board, along with the directional shift model
// tied to board geometry.
package bitengine

import (
	"iter"
	"math/bits"
)

// Direction selects which end of a [BitBoard] a scan or a castling-rook
// search starts from.
type Direction int

const (
	// LEFT scans from the low-order bit upward (lowest index first).
	LEFT Direction = iota
	// RIGHT scans from the high-order bit downward (highest index first).
	RIGHT
)

// BitBoard is a 128 bit vector, wide enough to address any rectangular board
// with rows*cols <= 128 (up to roughly 11x11). Bit i corresponds to square i
// under the mapping row = i / cols, col = i % cols; bit 0 is (row 0, col 0),
// the top-left square. Lo holds squares 0-63, Hi holds squares 64-127.
type BitBoard struct {
	Lo, Hi uint64
}

// FromLSB returns a one-hot BitBoard with only bit i set.
func FromLSB(i int) BitBoard {
	if i < 64 {
		return BitBoard{Lo: 1 << uint(i)}
	}
	return BitBoard{Hi: 1 << uint(i-64)}
}

// And returns the bitwise conjunction of b and other.
func (b BitBoard) And(other BitBoard) BitBoard {
	return BitBoard{Lo: b.Lo & other.Lo, Hi: b.Hi & other.Hi}
}

// Or returns the bitwise disjunction of b and other.
func (b BitBoard) Or(other BitBoard) BitBoard {
	return BitBoard{Lo: b.Lo | other.Lo, Hi: b.Hi | other.Hi}
}

// Xor returns the bitwise exclusive-or of b and other.
func (b BitBoard) Xor(other BitBoard) BitBoard {
	return BitBoard{Lo: b.Lo ^ other.Lo, Hi: b.Hi ^ other.Hi}
}

// Not returns the bitwise complement of b across the full 128 bit capacity.
func (b BitBoard) Not() BitBoard {
	return BitBoard{Lo: ^b.Lo, Hi: ^b.Hi}
}

// AndNot returns b with every bit set in other cleared.
func (b BitBoard) AndNot(other BitBoard) BitBoard {
	return BitBoard{Lo: b.Lo &^ other.Lo, Hi: b.Hi &^ other.Hi}
}

// IsEmpty reports whether no bit is set.
func (b BitBoard) IsEmpty() bool {
	return b.Lo == 0 && b.Hi == 0
}

// IsSet reports whether bit i is set.
func (b BitBoard) IsSet(i int) bool {
	return !b.And(FromLSB(i)).IsEmpty()
}

// Equal reports whether b and other represent the same set of squares.
func (b BitBoard) Equal(other BitBoard) bool {
	return b.Lo == other.Lo && b.Hi == other.Hi
}

// Less compares b and other as unsigned 128 bit magnitudes, high limb first.
func (b BitBoard) Less(other BitBoard) bool {
	if b.Hi != other.Hi {
		return b.Hi < other.Hi
	}
	return b.Lo < other.Lo
}

// CountBits returns the number of set bits.
func (b BitBoard) CountBits() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// shiftLeft shifts the whole 128 bit value toward higher indices by k,
// zero-filling from the low end. Shifting by >= 128 yields the empty board.
func (b BitBoard) shiftLeft(k uint) BitBoard {
	switch {
	case k >= 128:
		return BitBoard{}
	case k >= 64:
		return BitBoard{Hi: b.Lo << (k - 64)}
	default:
		return BitBoard{
			Hi: (b.Hi << k) | (b.Lo >> (64 - k)),
			Lo: b.Lo << k,
		}
	}
}

// shiftRight shifts the whole 128 bit value toward lower indices by k,
// zero-filling from the high end. Shifting by >= 128 yields the empty board.
func (b BitBoard) shiftRight(k uint) BitBoard {
	switch {
	case k >= 128:
		return BitBoard{}
	case k >= 64:
		return BitBoard{Lo: b.Hi >> (k - 64)}
	default:
		return BitBoard{
			Lo: (b.Lo >> k) | (b.Hi << (64 - k)),
			Hi: b.Hi >> k,
		}
	}
}

// Right shifts the board one column to the right (toward higher indices) by
// shift squares. Callers must clip against an [Edges] mask first to avoid
// wrap-around at the board boundary.
func (b BitBoard) Right(shift uint) BitBoard {
	return b.shiftLeft(shift)
}

// Left shifts the board one column to the left (toward lower indices) by
// shift squares.
func (b BitBoard) Left(shift uint) BitBoard {
	return b.shiftRight(shift)
}

// Down shifts the board toward higher row indices by shift rows, given the
// board's column count.
func (b BitBoard) Down(shift uint, cols int) BitBoard {
	return b.shiftLeft(shift * uint(cols))
}

// Up shifts the board toward lower row indices (row 0 is the top) by shift
// rows, given the board's column count.
func (b BitBoard) Up(shift uint, cols int) BitBoard {
	return b.shiftRight(shift * uint(cols))
}

// bitScanLookup is a De Bruijn style lookup used to find the index of the
// lowest set bit of a 64 bit word without branching.
//
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf
// section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// lsbIndex64 returns the index of the lowest set bit of a nonzero word.
func lsbIndex64(word uint64) int {
	return bitScanLookup[(word&-word)*bitscanMagic>>58]
}

// BitScanForward returns the index of the lowest set bit.
//
// It is a programmer-contract violation to call this on an empty BitBoard;
// callers must gate with IsEmpty or IsSet first.
func (b BitBoard) BitScanForward() int {
	if b.Lo != 0 {
		return lsbIndex64(b.Lo)
	}
	if b.Hi != 0 {
		return 64 + lsbIndex64(b.Hi)
	}
	panic("bitengine: BitScanForward called on an empty BitBoard")
}

// BitScanReverse returns the index of the highest set bit.
//
// It is a programmer-contract violation to call this on an empty BitBoard.
func (b BitBoard) BitScanReverse() int {
	if b.Hi != 0 {
		return 64 + bits.Len64(b.Hi) - 1
	}
	if b.Lo != 0 {
		return bits.Len64(b.Lo) - 1
	}
	panic("bitengine: BitScanReverse called on an empty BitBoard")
}

// BitScan scans from the low bit upward for [LEFT], or from the high bit
// downward for [RIGHT]. This mirrors how a castling rook search walks
// outward from the king toward the board edge in either direction.
func (b BitBoard) BitScan(dir Direction) int {
	if dir == LEFT {
		return b.BitScanForward()
	}
	return b.BitScanReverse()
}

// popLSB clears and returns the index of the lowest set bit of *word.
func popLSB(word *BitBoard) int {
	i := word.BitScanForward()
	*word = word.AndNot(FromLSB(i))
	return i
}

// IterOneBits yields the index of every set bit strictly less than limit, in
// ascending order. It does not mutate b.
func (b BitBoard) IterOneBits(limit int) iter.Seq[int] {
	return func(yield func(int) bool) {
		rest := b
		for !rest.IsEmpty() {
			i := popLSB(&rest)
			if i >= limit {
				return
			}
			if !yield(i) {
				return
			}
		}
	}
}
