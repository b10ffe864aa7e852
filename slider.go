// slider.go implements the shared ray-generation machinery used by bishop,
// rook, and queen: walk a single direction one step at a time until an edge
// is reached, then at runtime clip the precomputed ray against the nearest
// blocker. Each step clears the edge it would wrap across first, the same
// technique delta.go's leftN/rightN use for knight and king jumps, so a ray
// starting on a file edge terminates immediately instead of wrapping onto
// the next row.
package bitengine

// GetMovesRay walks from one step at a time (via step) accumulating every
// square visited, until stop reports true for the current square. stop must
// become true once the ray runs off the board (step produces the empty
// board) or touches the clipping edge, or this loops forever.
func GetMovesRay(from BitBoard, step func(BitBoard) BitBoard, stop func(BitBoard) bool) BitBoard {
	var moves BitBoard
	cur := from
	for {
		cur = step(cur)
		moves = moves.Or(cur)
		if stop(cur) {
			break
		}
	}
	return moves
}

// GetRayAttacks resolves the precomputed ray lookup[from][dir] against the
// board's current blockers. If a blocker lies on the ray, the ray is
// clipped at the blocker nearest to from: the blocker square itself stays
// in the result (a pseudo-legal capture target that AddActions later
// removes if it belongs to the mover's own team).
//
// ascending must be true for directions whose step increases the bit index
// (right, down, and the diagonals combining them) and false otherwise,
// since the nearest blocker along an ascending ray is its lowest-indexed
// occupied square and along a descending ray its highest-indexed one.
func GetRayAttacks(b *Board, from BitBoard, dir int, lookup AttackLookup, ascending bool) BitBoard {
	fromIdx := from.BitScanForward()
	attacks := lookup[fromIdx][dir]

	blocker := attacks.And(b.State.AllPieces)
	if blocker.IsEmpty() {
		return attacks
	}

	var nearest int
	if ascending {
		nearest = blocker.BitScanForward()
	} else {
		nearest = blocker.BitScanReverse()
	}

	return attacks.Xor(lookup[nearest][dir])
}

// rayDir bundles one ray direction's step function, edge-clipping stop
// predicate, and whether the ray ascends in bit index (needed by
// GetRayAttacks to pick the right bitscan when resolving blockers).
type rayDir struct {
	step      func(b BitBoard, cols int) BitBoard
	clip      BitBoard
	ascending bool
}

func (d rayDir) moves(from BitBoard, cols int) BitBoard {
	return GetMovesRay(from, func(b BitBoard) BitBoard { return d.step(b, cols) },
		func(b BitBoard) bool { return b.IsEmpty() || !b.And(d.clip).IsEmpty() })
}

// orthogonalRayDirs returns the four rook ray directions in the fixed order
// left, right, up, down.
func orthogonalRayDirs(edges Edges) []rayDir {
	return []rayDir{
		{step: func(b BitBoard, cols int) BitBoard { return b.AndNot(edges.Left).Left(1) }, clip: edges.Left, ascending: false},
		{step: func(b BitBoard, cols int) BitBoard { return b.AndNot(edges.Right).Right(1) }, clip: edges.Right, ascending: true},
		{step: func(b BitBoard, cols int) BitBoard { return b.Up(1, cols) }, clip: edges.Top, ascending: false},
		{step: func(b BitBoard, cols int) BitBoard { return b.Down(1, cols) }, clip: edges.Bottom, ascending: true},
	}
}

// diagonalRayDirs returns the four bishop ray directions in the fixed order
// left-up, left-down, right-up, right-down.
func diagonalRayDirs(edges Edges) []rayDir {
	return []rayDir{
		{
			step:      func(b BitBoard, cols int) BitBoard { return b.AndNot(edges.Left).Left(1).Up(1, cols) },
			clip:      edges.Left.Or(edges.Top),
			ascending: false,
		},
		{
			step:      func(b BitBoard, cols int) BitBoard { return b.AndNot(edges.Left).Left(1).Down(1, cols) },
			clip:      edges.Left.Or(edges.Bottom),
			ascending: true,
		},
		{
			step:      func(b BitBoard, cols int) BitBoard { return b.AndNot(edges.Right).Right(1).Up(1, cols) },
			clip:      edges.Right.Or(edges.Top),
			ascending: false,
		},
		{
			step:      func(b BitBoard, cols int) BitBoard { return b.AndNot(edges.Right).Right(1).Down(1, cols) },
			clip:      edges.Right.Or(edges.Bottom),
			ascending: true,
		},
	}
}

// generateSliderLookup builds the AttackDirections for one square from a
// fixed set of ray directions, for use by a piece kind's
// GenerateLookupMoves.
func generateSliderLookup(from BitBoard, cols int, dirs []rayDir) AttackDirections {
	out := make(AttackDirections, len(dirs))
	for i, d := range dirs {
		out[i] = d.moves(from, cols)
	}
	return out
}

// sliderMoves sums GetRayAttacks over every direction in dirs.
func sliderMoves(b *Board, from BitBoard, lookup AttackLookup, dirs []rayDir) BitBoard {
	var attacks BitBoard
	for i, d := range dirs {
		attacks = attacks.Or(GetRayAttacks(b, from, i, lookup, d.ascending))
	}
	return attacks
}
