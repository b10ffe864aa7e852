package bitengine

// Bishop is the diagonal slider: four rays, one per diagonal quadrant.
type Bishop struct {
	DefaultMover
}

func (Bishop) Symbol() PieceSymbol { return PieceSymbol{Char: 'b'} }

func (Bishop) CanLookup() bool { return true }

func (Bishop) GenerateLookupMoves(b *Board, from BitBoard) AttackDirections {
	edges := b.State.Edges[0]
	return generateSliderLookup(from, b.State.Cols, diagonalRayDirs(edges))
}

func (Bishop) GetMoves(b *Board, from BitBoard, pieceKind, team int, mode MoveMode) BitBoard {
	edges := b.State.Edges[0]
	lookup := b.AttackLookup[pieceKind]
	return sliderMoves(b, from, lookup, diagonalRayDirs(edges))
}
