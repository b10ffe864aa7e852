package bitengine

// Queen combines the rook's four orthogonal rays with the bishop's four
// diagonal rays into one eight-direction slider.
type Queen struct {
	DefaultMover
}

func (Queen) Symbol() PieceSymbol { return PieceSymbol{Char: 'q'} }

func (Queen) CanLookup() bool { return true }

func queenRayDirs(edges Edges) []rayDir {
	dirs := make([]rayDir, 0, 8)
	dirs = append(dirs, orthogonalRayDirs(edges)...)
	dirs = append(dirs, diagonalRayDirs(edges)...)
	return dirs
}

func (Queen) GenerateLookupMoves(b *Board, from BitBoard) AttackDirections {
	edges := b.State.Edges[0]
	return generateSliderLookup(from, b.State.Cols, queenRayDirs(edges))
}

func (Queen) GetMoves(b *Board, from BitBoard, pieceKind, team int, mode MoveMode) BitBoard {
	edges := b.State.Edges[0]
	lookup := b.AttackLookup[pieceKind]
	return sliderMoves(b, from, lookup, queenRayDirs(edges))
}
