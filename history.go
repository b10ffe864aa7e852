package bitengine

// updateKind distinguishes which BoardState slice a historyUpdate restores.
type updateKind int

const (
	updateTeam updateKind = iota
	updatePiece
)

// historyUpdate records the prior value of one team or piece occupancy
// bitboard, indexed by its slot in BoardState.Teams or BoardState.Pieces.
type historyUpdate struct {
	kind  updateKind
	index int
	prev  BitBoard
}

// HistoryMove is one entry of the board's undo stack. It captures enough of
// the prior BoardState to restore it exactly: the all-pieces and first-move
// snapshots plus the list of team/piece occupancy bitboards the move
// touched. A quiet move touches exactly one team and one piece kind; a
// capture, an en passant capture, or a promotion touches more, so the
// representation is the same in both cases and simply varies in length.
//
// Synthetic is set for the sentinel history entry FEN en-passant decoding
// injects so that move generation can see a double-push that never actually
// happened on this Board; undoing a synthetic entry pops it without
// touching any bitboard or turn counter, since none were ever mutated when
// it was pushed.
type HistoryMove struct {
	Action    Action
	AllPieces BitBoard
	FirstMove BitBoard
	Synthetic bool
	updates   []historyUpdate
}

// newHistoryMove starts the history entry for the move that is about to be
// applied. allPieces and firstMove are the BoardState's snapshots taken
// before mutation.
func newHistoryMove(action Action, allPieces, firstMove BitBoard) *HistoryMove {
	return &HistoryMove{
		Action:    action,
		AllPieces: allPieces,
		FirstMove: firstMove,
	}
}

func (h *HistoryMove) recordTeam(index int, prev BitBoard) {
	h.updates = append(h.updates, historyUpdate{kind: updateTeam, index: index, prev: prev})
}

func (h *HistoryMove) recordPiece(index int, prev BitBoard) {
	h.updates = append(h.updates, historyUpdate{kind: updatePiece, index: index, prev: prev})
}

// restore writes every captured update back into the board state, then the
// all-pieces and first-move snapshots. Order does not matter between
// updates: every update is recorded before the move mutates anything, so
// two updates for the same slot (a pawn capturing a pawn, say) carry the
// same value. all_pieces/first_move are always restored exactly as
// captured regardless of update count.
func (h *HistoryMove) restore(s *BoardState) {
	for _, u := range h.updates {
		switch u.kind {
		case updateTeam:
			s.Teams[u.index] = u.prev
		case updatePiece:
			s.Pieces[u.index] = u.prev
		}
	}
	s.AllPieces = h.AllPieces
	s.FirstMove = h.FirstMove
}
