package bitengine

// Rook is the orthogonal slider: four rays, left/right/up/down, precomputed
// per square and clipped against blockers at runtime via GetRayAttacks.
type Rook struct {
	DefaultMover
}

func (Rook) Symbol() PieceSymbol { return PieceSymbol{Char: 'r'} }

func (Rook) CanLookup() bool { return true }

func (Rook) GenerateLookupMoves(b *Board, from BitBoard) AttackDirections {
	edges := b.State.Edges[0]
	return generateSliderLookup(from, b.State.Cols, orthogonalRayDirs(edges))
}

func (Rook) GetMoves(b *Board, from BitBoard, pieceKind, team int, mode MoveMode) BitBoard {
	edges := b.State.Edges[0]
	lookup := b.AttackLookup[pieceKind]
	return sliderMoves(b, from, lookup, orthogonalRayDirs(edges))
}
