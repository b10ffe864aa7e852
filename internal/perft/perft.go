// Package perft counts the leaf nodes of a move-generation tree to a fixed
// depth, the standard way of cross-checking a move generator against known
// reference values. Count walks the tree on a single Board; Parallel splits
// the root's legal moves across independent Board.Clone()s.
package perft

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/corvidae/bitengine"
)

// Count returns the number of leaf positions reachable from b by playing
// exactly depth legal plies. depth <= 0 counts the root itself as one node.
func Count(b *bitengine.Board, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, m := range moves {
		b.MakeMove(m)
		nodes += Count(b, depth-1)
		b.UndoMove()
	}
	return nodes
}

// Parallel counts the same tree as Count but fans the root's legal moves
// out across workers goroutines via errgroup, each walking its own
// Board.Clone() sequentially. It returns the same total Count(b, depth)
// would, just computed concurrently; ctx lets the caller cancel a
// long-running count early.
func Parallel(ctx context.Context, b *bitengine.Board, depth, workers int) (int, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return len(moves), nil
	}
	if workers <= 0 {
		workers = 1
	}

	totals := make([]int, len(moves))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			clone := b.Clone()
			clone.MakeMove(m)
			totals[i] = Count(clone, depth-1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	sum := 0
	for _, n := range totals {
		sum += n
	}
	return sum, nil
}
