package chess

import "github.com/corvidae/bitengine"

// PostProcess recomputes FirstMove once every other FEN field has been
// decoded: a pawn is double-push-eligible exactly when it still sits on its
// team's starting two rows, regardless of what CastlingRights already did
// to the rook/king bits, so the two recomputations are merged by union
// rather than one overwriting the other.
type PostProcess struct{}

func (PostProcess) Apply(b *bitengine.Board) {
	cols := b.State.Cols
	edges := b.State.Edges[0]

	whiteStartRows := edges.Bottom.Or(edges.Bottom.Up(1, cols))
	blackStartRows := edges.Top.Or(edges.Top.Down(1, cols))

	pawnEligible := b.State.Pieces[PieceKindPawn].And(b.State.Teams[TeamWhite]).And(whiteStartRows)
	pawnEligible = pawnEligible.Or(b.State.Pieces[PieceKindPawn].And(b.State.Teams[TeamBlack]).And(blackStartRows))

	nonPawns := b.State.AllPieces.AndNot(b.State.Pieces[PieceKindPawn])

	b.State.FirstMove = b.State.FirstMove.And(pawnEligible.Or(nonPawns))
}
