package bitengine

// Knight is a delta piece whose lookup is a fixed offset pattern rather
// than a ray: the eight L-shaped jumps, each clipped against the edges the
// jump's horizontal leg would otherwise wrap across.
type Knight struct {
	DefaultMover
}

func (Knight) Symbol() PieceSymbol { return PieceSymbol{Char: 'n'} }

func (Knight) CanLookup() bool { return true }

func knightJumps(from BitBoard, edges Edges, cols int) BitBoard {
	var jumps BitBoard
	jumps = jumps.Or(leftN(from, edges, 2).Up(1, cols))
	jumps = jumps.Or(leftN(from, edges, 2).Down(1, cols))
	jumps = jumps.Or(rightN(from, edges, 2).Up(1, cols))
	jumps = jumps.Or(rightN(from, edges, 2).Down(1, cols))
	jumps = jumps.Or(leftN(from, edges, 1).Up(2, cols))
	jumps = jumps.Or(leftN(from, edges, 1).Down(2, cols))
	jumps = jumps.Or(rightN(from, edges, 1).Up(2, cols))
	jumps = jumps.Or(rightN(from, edges, 1).Down(2, cols))
	return jumps
}

func (Knight) GenerateLookupMoves(b *Board, from BitBoard) AttackDirections {
	return AttackDirections{knightJumps(from, b.State.Edges[0], b.State.Cols)}
}

func (Knight) GetMoves(b *Board, from BitBoard, pieceKind, team int, mode MoveMode) BitBoard {
	return b.AttackLookup[pieceKind][from.BitScanForward()][0]
}
