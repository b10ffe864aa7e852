package chess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/bitengine"
	"github.com/corvidae/bitengine/chess"
)

func TestInitialPositionHasTwentyLegalMoves(t *testing.T) {
	b, err := chess.NewBoard(chess.StartingFEN)
	require.NoError(t, err)
	assert.Len(t, b.GenerateLegalMoves(), 20)
}

func TestAfterE4BlackHasTwentyMoves(t *testing.T) {
	b, err := chess.NewBoard(chess.StartingFEN)
	require.NoError(t, err)

	e2e4 := findMove(t, b, "e2", "e4")
	b.MakeMove(e2e4)
	assert.Len(t, b.GenerateLegalMoves(), 20)
}

func TestAfterE4E5WhiteHasTwentyNineMoves(t *testing.T) {
	b, err := chess.NewBoard(chess.StartingFEN)
	require.NoError(t, err)

	b.MakeMove(findMove(t, b, "e2", "e4"))
	b.MakeMove(findMove(t, b, "e7", "e5"))
	assert.Len(t, b.GenerateLegalMoves(), 29)
}

func TestEnPassantCapture(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2"
	b, err := chess.NewBoard(fen)
	require.NoError(t, err)

	move := findMove(t, b, "e5", "d6")
	assert.Equal(t, bitengine.InfoEnPassant, move.Info)

	b.MakeMove(move)
	assert.False(t, b.State.Pieces[chess.PieceKindPawn].And(b.State.Teams[chess.TeamBlack]).IsSet(mustSquare(t, b, "d5")))
	assert.True(t, b.State.Pieces[chess.PieceKindPawn].IsSet(mustSquare(t, b, "d6")))

	require.NoError(t, b.UndoMove())
	restored, err := chess.NewBoard(fen)
	require.NoError(t, err)
	assert.Equal(t, restored.EncodeFEN(), b.EncodeFEN())
}

func TestPromotionGeneratesFourActions(t *testing.T) {
	fen := "8/P7/8/4k3/8/8/8/4K3 w - - 0 1"
	b, err := chess.NewBoard(fen)
	require.NoError(t, err)

	a7 := mustSquare(t, b, "a7")
	a8 := mustSquare(t, b, "a8")

	var promos []bitengine.Action
	for _, m := range b.GenerateLegalMoves() {
		if m.From == a7 && m.To == a8 {
			promos = append(promos, m)
		}
	}
	require.Len(t, promos, 4)

	seen := map[int]bool{}
	for _, m := range promos {
		kind, ok := bitengine.IsPromotion(m.Info)
		require.True(t, ok)
		seen[kind] = true
		assert.NotEqual(t, chess.PieceKindKing, kind)
		assert.NotEqual(t, chess.PieceKindPawn, kind)
	}
	assert.Len(t, seen, 4)
}

func TestUndoRoundTripOverThirtyMoves(t *testing.T) {
	b, err := chess.NewBoard(chess.StartingFEN)
	require.NoError(t, err)
	initial := b.EncodeFEN()

	played := 0
	for played < 30 {
		moves := b.GenerateLegalMoves()
		if len(moves) == 0 {
			break
		}
		b.MakeMove(moves[0])
		played++
	}

	for i := 0; i < played; i++ {
		require.NoError(t, b.UndoMove())
	}

	assert.Equal(t, initial, b.EncodeFEN())
	assert.Empty(t, b.State.History)
}

func TestCastlingEndToEnd(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	b, err := chess.NewBoard(fen)
	require.NoError(t, err)

	e1 := mustSquare(t, b, "e1")
	g1 := mustSquare(t, b, "g1")
	f1 := mustSquare(t, b, "f1")
	h1 := mustSquare(t, b, "h1")

	var kingside *bitengine.Action
	for _, m := range b.GenerateLegalMoves() {
		if m.From == e1 && m.To == g1 {
			mv := m
			kingside = &mv
		}
	}
	require.NotNil(t, kingside, "expected kingside castling to be a legal move")

	before := b.EncodeFEN()
	b.MakeMove(*kingside)

	assert.True(t, b.State.Pieces[chess.PieceKindKing].IsSet(g1))
	assert.True(t, b.State.Pieces[chess.PieceKindRook].IsSet(f1))
	assert.False(t, b.State.Pieces[chess.PieceKindRook].IsSet(h1))

	require.NoError(t, b.UndoMove())
	assert.Equal(t, before, b.EncodeFEN())
}

func findMove(t *testing.T, b *bitengine.Board, from, to string) bitengine.Action {
	t.Helper()
	fromSq := mustSquare(t, b, from)
	toSq := mustSquare(t, b, to)
	for _, m := range b.GenerateLegalMoves() {
		if m.From == fromSq && m.To == toSq {
			return m
		}
	}
	t.Fatalf("no legal move %s-%s found", from, to)
	return bitengine.Action{}
}

func mustSquare(t *testing.T, b *bitengine.Board, name string) int {
	t.Helper()
	sq, err := b.DecodePosition(name)
	require.NoError(t, err)
	return sq
}
