// Package chess plugs the standard six piece kinds, the castling-rights and
// en passant FEN fields, and the check-based legality predicate into the
// generic engine. It is the one concrete game configuration this module
// ships; a different chess-like variant would supply its own version of
// this package's contents without touching the engine itself.
package chess

import "github.com/corvidae/bitengine"

// Piece kind indices, fixed by the order NewGame registers them in.
const (
	PieceKindPawn = iota
	PieceKindKnight
	PieceKindBishop
	PieceKindRook
	PieceKindQueen
	PieceKindKing
)

const (
	TeamWhite = 0
	TeamBlack = 1
)

// StartingFEN is the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGame wires the six standard piece kinds, check-based legality, and the
// five auxiliary FEN fields (team to move, castling rights, en passant,
// half moves, full moves) into a [bitengine.Game] configured for
// standard two-team, one-turn-per-move chess.
func NewGame() *bitengine.Game {
	game := &bitengine.Game{
		Teams: 2,
		Turns: 1,
		Pieces: []bitengine.Piece{
			PieceKindPawn:   bitengine.Pawn{},
			PieceKindKnight: bitengine.Knight{},
			PieceKindBishop: bitengine.Bishop{},
			PieceKindRook:   bitengine.Rook{},
			PieceKindQueen:  bitengine.Queen{},
			PieceKindKing:   bitengine.King{},
		},
		Legality:    MoveRestrictions{},
		PostProcess: PostProcess{},
	}
	game.FenArgs = []bitengine.NamedFenArgument{
		{Name: "team to move", Arg: bitengine.TeamToMoveArg{Symbols: []byte("wb")}},
		{Name: "castling rights", Arg: CastlingRights{}},
		{Name: "en passant", Arg: EnPassant{}},
		{Name: "half moves", Arg: bitengine.SubMovesArg{}},
		{Name: "full moves", Arg: bitengine.FullMovesArg{}},
	}
	return game
}

// NewBoard decodes fen into a standard 8x8 chess board using a freshly
// wired Game.
func NewBoard(fen string) (*bitengine.Board, error) {
	return bitengine.DecodeFEN(NewGame(), 8, 8, fen)
}
