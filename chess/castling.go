package chess

import "github.com/corvidae/bitengine"

// CastlingRights decodes and encodes the FEN castling rights field by
// tracking which king/rook pairs are still present in BoardState.FirstMove.
// It carries no state of its own: everything castling eligibility needs is
// already recorded on the board.
type CastlingRights struct{}

var castlingChars = []byte{'Q', 'K', 'q', 'k'}

func castlingSide(char byte) (team int, dir bitengine.Direction, ok bool) {
	switch char {
	case 'Q':
		return TeamWhite, bitengine.LEFT, true
	case 'K':
		return TeamWhite, bitengine.RIGHT, true
	case 'q':
		return TeamBlack, bitengine.LEFT, true
	case 'k':
		return TeamBlack, bitengine.RIGHT, true
	default:
		return 0, 0, false
	}
}

// Decode begins by assuming every side has castling rights, then clears the
// first-move bit of whichever rooks are not named by arg.
func (CastlingRights) Decode(b *bitengine.Board, arg string) error {
	if arg == "-" {
		b.State.FirstMove = b.State.FirstMove.AndNot(b.State.Pieces[PieceKindRook])
		return nil
	}

	remaining := map[byte]bool{'Q': true, 'K': true, 'q': true, 'k': true}
	for i := 0; i < len(arg); i++ {
		char := arg[i]
		if !remaining[char] {
			if _, _, ok := castlingSide(char); ok {
				return errorf("the castling right %q has already been specified", string(char))
			}
			return errorf("%q is not a valid castling rights character", string(char))
		}
		delete(remaining, char)
	}

	for _, char := range castlingChars {
		if !remaining[char] {
			continue
		}
		team, dir, _ := castlingSide(char)
		clearCastlingRook(b, team, dir)
	}
	return nil
}

// clearCastlingRook revokes castling eligibility for the rook on the given
// side of team's king, if one is present.
func clearCastlingRook(b *bitengine.Board, team int, dir bitengine.Direction) {
	rooks := b.State.Pieces[PieceKindRook].And(b.State.Teams[team])
	if rooks.IsEmpty() {
		return
	}
	rookSquare := rooks.BitScan(dir)

	king := b.State.Pieces[PieceKindKing].And(b.State.Teams[team])
	kingSquare := king.BitScanForward()

	if (rookSquare < kingSquare && dir == bitengine.LEFT) || (rookSquare > kingSquare && dir == bitengine.RIGHT) {
		b.State.FirstMove = b.State.FirstMove.AndNot(bitengine.FromLSB(rookSquare))
	}
}

// Encode lists, for each team whose king is still in FirstMove, every rook
// also in FirstMove: 'k' for a rook at a higher bit index than the king,
// 'q' otherwise, upper-cased for team 0.
func (CastlingRights) Encode(b *bitengine.Board) string {
	var out []byte
	for team := 0; team < b.Game.Teams; team++ {
		king := b.State.Pieces[PieceKindKing].And(b.State.Teams[team]).And(b.State.FirstMove)
		if king.IsEmpty() {
			continue
		}
		kingSquare := king.BitScanForward()

		rooks := b.State.Pieces[PieceKindRook].And(b.State.Teams[team]).And(b.State.FirstMove)
		squares := make([]int, 0, 2)
		for sq := range rooks.IterOneBits(b.State.Squares) {
			squares = append(squares, sq)
		}
		// Highest bit index (kingside) first, matching standard FEN order
		// ("KQ" not "QK").
		for i, j := 0, len(squares)-1; i < j; i, j = i+1, j-1 {
			squares[i], squares[j] = squares[j], squares[i]
		}

		for _, sq := range squares {
			char := byte('q')
			if sq > kingSquare {
				char = 'k'
			}
			if team == TeamWhite {
				char -= 'a' - 'A'
			}
			out = append(out, char)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}
