package chess

import "github.com/corvidae/bitengine"

// MoveRestrictions is chess's legality predicate: a move is legal if it
// doesn't capture a king outright (which should never be reachable in a
// well-formed position, but is rejected defensively) and, after playing it,
// does not leave the mover's own king attacked.
type MoveRestrictions struct{}

func (MoveRestrictions) IsLegal(b *bitengine.Board, action bitengine.Action) bool {
	if !bitengine.FromLSB(action.To).And(b.State.Pieces[PieceKindKing]).IsEmpty() {
		return false
	}

	team := b.State.MovingTeam
	b.MakeMove(action)
	kingBoard := b.State.Teams[team].And(b.State.Pieces[PieceKindKing])
	inCheck := !b.CanMove(b.State.MovingTeam, kingBoard, bitengine.AttacksMode).IsEmpty()
	b.UndoMove()

	return !inCheck
}

// AddCastlingActions appends a kingside and/or queenside castling action for
// the king standing on from, if the corresponding rook is still eligible,
// the squares between them are empty, the king is not currently in check,
// and the squares the king passes through (including its destination) are
// not attacked. This is consulted by King.AddActions via the
// bitengine.CastlingGenerator hook; it lives here rather than on King
// because it is entirely a chess rule, not a property of how a king moves.
func (MoveRestrictions) AddCastlingActions(list *bitengine.ActionList, b *bitengine.Board, from, team int) {
	kingBoard := bitengine.FromLSB(from)
	if kingBoard.And(b.State.FirstMove).IsEmpty() {
		return
	}
	if !b.CanMove(b.NextTeam(team), kingBoard, bitengine.AttacksMode).IsEmpty() {
		return
	}

	for _, dir := range []bitengine.Direction{bitengine.LEFT, bitengine.RIGHT} {
		if !canCastle(b, from, team, dir) {
			continue
		}
		to := from + 2
		if dir == bitengine.LEFT {
			to = from - 2
		}
		list.Push(bitengine.Action{From: from, To: to, Team: team, Piece: PieceKindKing})
	}
}

func canCastle(b *bitengine.Board, from, team int, dir bitengine.Direction) bool {
	rooks := b.State.Pieces[PieceKindRook].And(b.State.Teams[team]).And(b.State.FirstMove)
	if rooks.IsEmpty() {
		return false
	}
	rookSquare := rooks.BitScan(dir)
	if (dir == bitengine.LEFT && rookSquare >= from) || (dir == bitengine.RIGHT && rookSquare <= from) {
		return false
	}

	if !squaresBetween(from, rookSquare).And(b.State.AllPieces).IsEmpty() {
		return false
	}

	step := 1
	if dir == bitengine.LEFT {
		step = -1
	}
	opponent := b.NextTeam(team)
	for _, sq := range []int{from + step, from + 2*step} {
		if !b.CanMove(opponent, bitengine.FromLSB(sq), bitengine.AttacksMode).IsEmpty() {
			return false
		}
	}
	return true
}

// squaresBetween returns the open interval of squares strictly between a
// and b on the same rank.
func squaresBetween(a, bIdx int) bitengine.BitBoard {
	lo, hi := a, bIdx
	if lo > hi {
		lo, hi = hi, lo
	}
	var out bitengine.BitBoard
	for sq := lo + 1; sq < hi; sq++ {
		out = out.Or(bitengine.FromLSB(sq))
	}
	return out
}
