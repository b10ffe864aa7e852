package chess_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/bitengine/chess"
	"github.com/corvidae/bitengine/internal/perft"
)

func TestPerftDepthsFromInitialPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("perft to depth 4 is slow; skipped with -short")
	}

	expected := []int{20, 400, 8902, 197281}
	for depth, want := range expected {
		b, err := chess.NewBoard(chess.StartingFEN)
		require.NoError(t, err)
		got := perft.Count(b, depth+1)
		assert.Equal(t, want, got, "perft depth %d", depth+1)
	}
}

func TestPerftParallelAgreesWithSequential(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		b, err := chess.NewBoard(chess.StartingFEN)
		require.NoError(t, err)
		sequential := perft.Count(b, depth)

		b2, err := chess.NewBoard(chess.StartingFEN)
		require.NoError(t, err)
		parallel, err := perft.Parallel(context.Background(), b2, depth, 4)
		require.NoError(t, err)

		assert.Equal(t, sequential, parallel, "depth %d", depth)
	}
}
