// fen.go implements the generic parts of Forsyth-Edwards Notation handling:
// piece placement, which every game configuration shares, plus the
// orchestration that splits the remaining fields out to the Game's
// FenArgs and PostProcess hook. Castling rights and en passant, the
// chess-specific fields, are implemented in the chess subpackage behind
// the FenArgument interface.
package bitengine

import (
	"strconv"
	"strings"
)

// DecodeFEN builds a new Board from a FEN string: it allocates an empty
// board of the given dimensions, decodes piece placement into it, then
// decodes every field in game.FenArgs in order, and finally runs
// game.PostProcess if one is configured.
//
// On error the returned Board is nil; decoding mutates the board
// incrementally and leaves it in an undefined state on failure, so callers
// must discard it rather than continue using a partially decoded position.
func DecodeFEN(game *Game, rows, cols int, fen string) (*Board, error) {
	fields := strings.SplitN(fen, " ", 1+len(game.FenArgs))
	if len(fields) != 1+len(game.FenArgs) {
		return nil, invalidArgument("fen", "expected %d space-separated fields, got %d", 1+len(game.FenArgs), len(fields))
	}

	b := NewEmptyBoard(game, rows, cols)
	if err := decodePlacement(b, fields[0]); err != nil {
		return nil, err
	}
	// Every piece starts eligible for a first move; castling rights and
	// post-process narrow this down to what actually still qualifies.
	b.State.FirstMove = b.State.AllPieces

	for i, named := range game.FenArgs {
		if err := named.Arg.Decode(b, fields[i+1]); err != nil {
			return nil, invalidArgument(named.Name, "%s", err.Error())
		}
	}

	if game.PostProcess != nil {
		game.PostProcess.Apply(b)
	}

	return b, nil
}

// EncodeFEN is DecodeFEN's inverse: piece placement followed by every
// game.FenArgs entry's Encode output, space separated.
func (b *Board) EncodeFEN() string {
	var out strings.Builder
	out.WriteString(b.encodePlacement())
	for _, named := range b.Game.FenArgs {
		out.WriteByte(' ')
		out.WriteString(named.Arg.Encode(b))
	}
	return out.String()
}

// symbolToPiece finds the piece kind and team a FEN letter denotes.
func symbolToPiece(game *Game, char byte) (kind, team int, ok bool) {
	for k, piece := range game.Pieces {
		sym := piece.Symbol()
		for t := 0; t < game.Teams; t++ {
			if sym.ForTeam(t) == char {
				return k, t, true
			}
		}
	}
	return 0, 0, false
}

// decodePlacement reads ranks top to bottom, left to right -- the same
// order FEN's own piece placement field uses, since bit index 0 is the
// board's top-left square under this engine's convention.
func decodePlacement(b *Board, placement string) error {
	row, col := 0, 0
	for i := 0; i < len(placement); i++ {
		char := placement[i]
		switch {
		case char == '/':
			if col != b.State.Cols {
				return invalidArgument("piece placement", "rank %d has %d squares, want %d", row, col, b.State.Cols)
			}
			row++
			col = 0
		case char >= '1' && char <= '9':
			col += int(char - '0')
		default:
			kind, team, ok := symbolToPiece(b.Game, char)
			if !ok {
				return invalidArgument("piece placement", "%q is not a recognized piece symbol", string(char))
			}
			if row >= b.State.Rows || col >= b.State.Cols {
				return invalidArgument("piece placement", "square for %q falls outside the board", string(char))
			}
			sq := FromLSB(row*b.State.Cols + col)
			b.State.Teams[team] = b.State.Teams[team].Or(sq)
			b.State.Pieces[kind] = b.State.Pieces[kind].Or(sq)
			b.State.AllPieces = b.State.AllPieces.Or(sq)
			col++
		}
	}
	if row != b.State.Rows-1 || col != b.State.Cols {
		return invalidArgument("piece placement", "described %d ranks, want %d", row+1, b.State.Rows)
	}
	return nil
}

func (b *Board) encodePlacement() string {
	var out strings.Builder
	cols := b.State.Cols
	for row := 0; row < b.State.Rows; row++ {
		if row > 0 {
			out.WriteByte('/')
		}
		empty := 0
		for col := 0; col < cols; col++ {
			sq := row*cols + col
			char, occupied := squareSymbol(b, sq)
			if !occupied {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			out.WriteByte(char)
		}
		if empty > 0 {
			out.WriteString(strconv.Itoa(empty))
		}
	}
	return out.String()
}

func squareSymbol(b *Board, sq int) (char byte, occupied bool) {
	one := FromLSB(sq)
	if b.State.AllPieces.And(one).IsEmpty() {
		return 0, false
	}
	for k, piece := range b.Game.Pieces {
		if b.State.Pieces[k].And(one).IsEmpty() {
			continue
		}
		for t := 0; t < b.Game.Teams; t++ {
			if !b.State.Teams[t].And(one).IsEmpty() {
				return piece.Symbol().ForTeam(t), true
			}
		}
	}
	return 0, false
}
