package chess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/bitengine/chess"
)

func TestZobristHashAgreesAcrossConstructionPaths(t *testing.T) {
	viaFEN, err := chess.NewBoard("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)

	viaPlay, err := chess.NewBoard(chess.StartingFEN)
	require.NoError(t, err)
	played := false
	for _, m := range viaPlay.GenerateLegalMoves() {
		from, _ := viaPlay.DecodePosition("e2")
		to, _ := viaPlay.DecodePosition("e4")
		if m.From == from && m.To == to {
			viaPlay.MakeMove(m)
			played = true
			break
		}
	}
	require.True(t, played)

	z := chess.NewZobrist(6, 64)
	assert.Equal(t, z.Hash(viaFEN), z.Hash(viaPlay))
}

func TestZobristHashDiffersBySideToMove(t *testing.T) {
	white, err := chess.NewBoard(chess.StartingFEN)
	require.NoError(t, err)
	black, err := chess.NewBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)

	z := chess.NewZobrist(6, 64)
	assert.NotEqual(t, z.Hash(white), z.Hash(black))
}

func TestRepetitionTrackerDetectsThreefold(t *testing.T) {
	b, err := chess.NewBoard(chess.StartingFEN)
	require.NoError(t, err)
	tracker := chess.NewRepetitionTracker(b)

	shuffle := []struct{ from, to string }{
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
	}

	for i, step := range shuffle {
		move := findMove(t, b, step.from, step.to)
		b.MakeMove(move)
		tracker.Record(b)
		if i < len(shuffle)-1 {
			assert.False(t, tracker.IsThreefold(b), "should not be threefold before the final repeat")
		}
	}

	assert.True(t, tracker.IsThreefold(b))
}
