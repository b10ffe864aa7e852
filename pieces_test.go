package bitengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newPieceTestGame() *Game {
	return &Game{
		Teams: 2,
		Turns: 1,
		Pieces: []Piece{
			Pawn{}, Knight{}, Bishop{}, Rook{}, Queen{}, King{},
		},
		Legality: alwaysLegal{},
	}
}

const (
	testPawn = iota
	testKnight
	testBishop
	testRook
	testQueen
	testKing
)

func TestRookOnEmptyBoardCentralSquare(t *testing.T) {
	b := NewEmptyBoard(newPieceTestGame(), 8, 8)
	from := FromLSB(27) // d5
	moves := Rook{}.GetMoves(b, from, testRook, 0, NormalMode)
	// full rank (7) + full file (7) from a clear 8x8 board.
	assert.Equal(t, 14, moves.CountBits())
}

func TestRookBlockedByOwnPiece(t *testing.T) {
	b := NewEmptyBoard(newPieceTestGame(), 8, 8)
	b.State.Teams[0] = FromLSB(27).Or(FromLSB(29))
	b.State.Pieces[testRook] = FromLSB(27)
	b.State.Pieces[testPawn] = FromLSB(29)
	b.State.AllPieces = b.State.Teams[0]

	moves := Rook{}.GetMoves(b, FromLSB(27), testRook, 0, NormalMode)
	// the blocker square itself is still a pseudo-legal capture target.
	assert.True(t, moves.IsSet(29))
	assert.False(t, moves.IsSet(30)) // ray does not continue past the blocker
	assert.False(t, moves.IsSet(31))
}

func TestBishopDiagonalOnEmptyBoard(t *testing.T) {
	b := NewEmptyBoard(newPieceTestGame(), 8, 8)
	from := FromLSB(27) // d5
	moves := Bishop{}.GetMoves(b, from, testBishop, 0, NormalMode)
	assert.Equal(t, 13, moves.CountBits())
}

func TestQueenCombinesRookAndBishop(t *testing.T) {
	b := NewEmptyBoard(newPieceTestGame(), 8, 8)
	from := FromLSB(27)
	rookMoves := Rook{}.GetMoves(b, from, testRook, 0, NormalMode)
	bishopMoves := Bishop{}.GetMoves(b, from, testBishop, 0, NormalMode)
	queenMoves := Queen{}.GetMoves(b, from, testQueen, 0, NormalMode)
	assert.True(t, queenMoves.Equal(rookMoves.Or(bishopMoves)))
}

func TestKnightCentralSquareHasEightJumps(t *testing.T) {
	b := NewEmptyBoard(newPieceTestGame(), 8, 8)
	moves := Knight{}.GetMoves(b, FromLSB(27), testKnight, 0, NormalMode)
	assert.Equal(t, 8, moves.CountBits())
}

func TestKnightCornerHasTwoJumps(t *testing.T) {
	b := NewEmptyBoard(newPieceTestGame(), 8, 8)
	moves := Knight{}.GetMoves(b, FromLSB(0), testKnight, 0, NormalMode)
	assert.Equal(t, 2, moves.CountBits())
}

func TestKingCentralSquareHasEightSteps(t *testing.T) {
	b := NewEmptyBoard(newPieceTestGame(), 8, 8)
	moves := King{}.GetMoves(b, FromLSB(27), testKing, 0, NormalMode)
	assert.Equal(t, 8, moves.CountBits())
}

func TestKingCornerHasThreeSteps(t *testing.T) {
	b := NewEmptyBoard(newPieceTestGame(), 8, 8)
	moves := King{}.GetMoves(b, FromLSB(0), testKing, 0, NormalMode)
	assert.Equal(t, 3, moves.CountBits())
}

func TestPawnAttacksModeIgnoresOccupancy(t *testing.T) {
	b := NewEmptyBoard(newPieceTestGame(), 8, 8)
	lookup := b.AttackLookup[testPawn][FromLSB(20).BitScanForward()][0]
	got := Pawn{}.GetMoves(b, FromLSB(20), testPawn, 0, AttacksMode)
	assert.True(t, got.Equal(lookup))
}

func TestPawnSinglePushOnEmptyBoard(t *testing.T) {
	b := NewEmptyBoard(newPieceTestGame(), 8, 8)
	b.State.Teams[0] = FromLSB(52) // e2
	b.State.Pieces[testPawn] = FromLSB(52)
	b.State.AllPieces = FromLSB(52)
	b.State.FirstMove = FromLSB(52)

	moves := Pawn{}.GetMoves(b, FromLSB(52), testPawn, 0, NormalMode)
	assert.True(t, moves.IsSet(44)) // one row up
	assert.True(t, moves.IsSet(36)) // double push since on FirstMove
	assert.Equal(t, 2, moves.CountBits())
}

func TestPawnNoDoublePushAfterFirstMove(t *testing.T) {
	b := NewEmptyBoard(newPieceTestGame(), 8, 8)
	b.State.Teams[0] = FromLSB(44)
	b.State.Pieces[testPawn] = FromLSB(44)
	b.State.AllPieces = FromLSB(44)
	// FirstMove intentionally left empty: this pawn has already moved once.

	moves := Pawn{}.GetMoves(b, FromLSB(44), testPawn, 0, NormalMode)
	assert.Equal(t, 1, moves.CountBits())
	assert.True(t, moves.IsSet(36))
}
