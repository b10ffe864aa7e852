package chess

import "github.com/corvidae/bitengine"

// EnPassant decodes and encodes the FEN en passant target square by
// pushing or reading a synthetic history entry: the engine's pawn move
// generation already knows how to recognize "the last move was a pawn
// double push" and needs nothing else to offer the capture.
type EnPassant struct{}

// Decode resolves arg to a square, then reconstructs the double push that
// would have produced it and records it as a synthetic history entry
// (SO move generation sees the en passant opportunity without the move
// having actually been played on this board).
func (EnPassant) Decode(b *bitengine.Board, arg string) error {
	if arg == "-" {
		return nil
	}

	previousTeam := b.PrevTeam(b.State.MovingTeam)
	square, err := b.DecodePosition(arg)
	if err != nil {
		return errorf("%q is not a valid en passant square (%w)", arg, err)
	}

	cols := b.State.Cols
	to := bitengine.TeamForward(bitengine.FromLSB(square), 1, cols, previousTeam)
	from := bitengine.TeamBackward(to, 2, cols, previousTeam)

	b.PushSyntheticHistory(bitengine.Action{
		From:  from.BitScanForward(),
		To:    to.BitScanForward(),
		Team:  previousTeam,
		Piece: PieceKindPawn,
	})
	return nil
}

// Encode reports the square a pawn skipped over if the last move was a
// double push, or "-" otherwise.
func (EnPassant) Encode(b *bitengine.Board) string {
	last := b.LastMove()
	if last == nil || last.Action.Piece != PieceKindPawn {
		return "-"
	}
	diff := last.Action.To - last.Action.From
	if diff != 2*b.State.Cols && diff != -2*b.State.Cols {
		return "-"
	}
	skipped := bitengine.TeamForward(bitengine.FromLSB(last.Action.From), 1, b.State.Cols, last.Action.Team)
	return b.EncodePosition(skipped.BitScanForward())
}
