package chess

import (
	"math/rand"

	"github.com/corvidae/bitengine"
)

// Zobrist computes a 64 bit hash of a board's position for repetition
// detection. It is layered entirely on top of the engine's public state
// rather than hooked into make/undo, since the engine's core explicitly
// leaves repetition bookkeeping to callers.
type Zobrist struct {
	squareKeys [][2][64]uint64 // [pieceKind][team][square], sized at New
	sideKey    uint64
	castleKeys [4]uint64 // Q K q k
	epFileKeys [16]uint64
}

// NewZobrist builds a fixed set of pseudo-random keys from a constant seed,
// so hashes are reproducible across runs without needing to persist them.
func NewZobrist(pieceKinds, squares int) *Zobrist {
	rng := rand.New(rand.NewSource(0x5A4F42495354))
	z := &Zobrist{}
	z.squareKeys = make([][2][64]uint64, pieceKinds)
	for p := 0; p < pieceKinds; p++ {
		for t := 0; t < 2; t++ {
			for sq := 0; sq < squares && sq < 64; sq++ {
				z.squareKeys[p][t][sq] = rng.Uint64()
			}
		}
	}
	z.sideKey = rng.Uint64()
	for i := range z.castleKeys {
		z.castleKeys[i] = rng.Uint64()
	}
	for i := range z.epFileKeys {
		z.epFileKeys[i] = rng.Uint64()
	}
	return z
}

// Hash computes the position hash for b: every occupied square's
// piece/team key, the side to move, whether each team keeps any castling
// right, and the en passant file if one is active this ply. Castling is
// hashed per team only: a team keeping just one of its rights hashes the
// same as a team keeping both.
func (z *Zobrist) Hash(b *bitengine.Board) uint64 {
	var h uint64
	for p, occ := range b.State.Pieces {
		for t := 0; t < b.Game.Teams && t < 2; t++ {
			own := occ.And(b.State.Teams[t])
			for sq := range own.IterOneBits(b.State.Squares) {
				if sq < 64 {
					h ^= z.squareKeys[p][t][sq]
				}
			}
		}
	}
	if b.State.MovingTeam == TeamBlack {
		h ^= z.sideKey
	}

	king := b.State.Pieces[PieceKindKing]
	rook := b.State.Pieces[PieceKindRook]
	if !king.And(b.State.Teams[TeamWhite]).And(b.State.FirstMove).IsEmpty() {
		if !rook.And(b.State.Teams[TeamWhite]).And(b.State.FirstMove).IsEmpty() {
			h ^= z.castleKeys[0] ^ z.castleKeys[1]
		}
	}
	if !king.And(b.State.Teams[TeamBlack]).And(b.State.FirstMove).IsEmpty() {
		if !rook.And(b.State.Teams[TeamBlack]).And(b.State.FirstMove).IsEmpty() {
			h ^= z.castleKeys[2] ^ z.castleKeys[3]
		}
	}

	if ep := (EnPassant{}).Encode(b); ep != "-" {
		if sq, err := b.DecodePosition(ep); err == nil {
			h ^= z.epFileKeys[sq%b.State.Cols]
		}
	}
	return h
}
