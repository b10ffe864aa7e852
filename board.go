// board.go owns the mutable game state and orchestrates lookup generation,
// move generation, and move application/undo across whichever piece kinds
// the active Game configures.
package bitengine

import (
	"errors"
	"fmt"
)

// ErrNoHistoryMoves is returned by Board.UndoMove when the history stack is
// empty.
var ErrNoHistoryMoves = errors.New("bitengine: no history moves to undo")

// BoardState is the mutable game state: per-team and per-piece-kind
// occupancy, the union of all pieces, the first-move mask, the turn
// counters, and the undo history. Teams[i] are pairwise disjoint, as are
// Pieces[p]; AllPieces always equals both their unions.
type BoardState struct {
	Teams     []BitBoard
	Pieces    []BitBoard
	AllPieces BitBoard
	FirstMove BitBoard

	Rows, Cols, Squares int
	Edges               []Edges

	MovingTeam  int
	CurrentTurn int
	SubMoves    int
	FullMoves   int
	Turns       int

	History []*HistoryMove
}

// PieceTeamBoard returns the squares occupied by team's pieces of the given
// kind.
func (s *BoardState) PieceTeamBoard(piece, team int) BitBoard {
	return s.Pieces[piece].And(s.Teams[team])
}

// Board owns a BoardState together with the immutable Game configuration
// and the attack lookup tables generated from it. Board's public operations
// are synchronous; make_move and undo_move require exclusive access, while
// the read-only queries need only shared access.
type Board struct {
	State        BoardState
	Game         *Game
	AttackLookup []AttackLookup
}

// NewEmptyBoard allocates an empty board of the given dimensions for game,
// with every occupancy bitboard cleared, and generates the attack lookup
// tables.
func NewEmptyBoard(game *Game, rows, cols int) *Board {
	b := &Board{
		Game: game,
		State: BoardState{
			Pieces:  make([]BitBoard, len(game.Pieces)),
			Teams:   make([]BitBoard, game.Teams),
			Edges:   GenerateEdgeList(rows, cols),
			Rows:    rows,
			Cols:    cols,
			Squares: rows * cols,
			History: make([]*HistoryMove, 0, 64),
		},
	}
	b.GenerateLookups()
	return b
}

// GenerateLookups (re)builds AttackLookup from scratch. It is idempotent:
// calling it twice yields identical tables, since each entry is a pure
// function of the square and the piece kind's own GenerateLookupMoves.
func (b *Board) GenerateLookups() {
	b.AttackLookup = make([]AttackLookup, len(b.Game.Pieces))
	for i, piece := range b.Game.Pieces {
		if !piece.CanLookup() {
			b.AttackLookup[i] = AttackLookup{}
			continue
		}
		lookup := make(AttackLookup, b.State.Squares)
		for sq := 0; sq < b.State.Squares; sq++ {
			lookup[sq] = piece.GenerateLookupMoves(b, FromLSB(sq))
		}
		b.AttackLookup[i] = lookup
	}
}

// GetMoveMask returns the union, over every piece team owns, of its
// pseudo-legal destinations in NormalMode.
func (b *Board) GetMoveMask(team int) BitBoard {
	var mask BitBoard
	for p, occ := range b.State.Pieces {
		own := occ.And(b.State.Teams[team])
		if own.IsEmpty() {
			continue
		}
		piece := b.Game.Pieces[p]
		for sq := range own.IterOneBits(b.State.Squares) {
			mask = mask.Or(piece.GetMoves(b, FromLSB(sq), p, team, NormalMode))
		}
	}
	return mask
}

// CanMove returns the subset of target that team can move to (or, in
// AttacksMode, threatens) with any of its pieces. Check detection must use
// AttacksMode explicitly: in NormalMode a pawn's forward push squares are
// part of its move mask even though a pawn never threatens the square
// directly ahead of it.
func (b *Board) CanMove(team int, target BitBoard, mode MoveMode) BitBoard {
	var mask BitBoard
	for p, occ := range b.State.Pieces {
		own := occ.And(b.State.Teams[team])
		if own.IsEmpty() {
			continue
		}
		piece := b.Game.Pieces[p]
		for sq := range own.IterOneBits(b.State.Squares) {
			mask = mask.Or(piece.GetMoves(b, FromLSB(sq), p, team, mode))
		}
	}
	return mask.And(target)
}

// IsAttacking reports whether team's normal move mask intersects target.
func (b *Board) IsAttacking(team int, target BitBoard) bool {
	return !b.GetMoveMask(team).And(target).IsEmpty()
}

// GenerateMoves enumerates every pseudo-legal action available to the
// currently moving team.
func (b *Board) GenerateMoves() []Action {
	list := NewActionList(b.State.Squares * 8)
	team := b.State.MovingTeam

	for p, occ := range b.State.Pieces {
		own := occ.And(b.State.Teams[team])
		if own.IsEmpty() {
			continue
		}
		piece := b.Game.Pieces[p]
		for sq := range own.IterOneBits(b.State.Squares) {
			piece.AddActions(list, b, p, sq, team, NormalMode)
		}
	}
	return list.Actions()
}

// GenerateLegalMoves filters GenerateMoves through the game's legality
// predicate. Do not call this from inside a search that already relies on
// MoveRestrictions.IsLegal to prune after generation; it applies and undoes
// every candidate move and is meant for driving play, not for performance
// sensitive tree walks.
func (b *Board) GenerateLegalMoves() []Action {
	pseudo := b.GenerateMoves()
	legal := make([]Action, 0, len(pseudo))
	for _, a := range pseudo {
		if b.Game.Legality.IsLegal(b, a) {
			legal = append(legal, a)
		}
	}
	return legal
}

// NextTeam returns the team after team in turn order, wrapping around.
func (b *Board) NextTeam(team int) int {
	team++
	if team >= len(b.State.Teams) {
		return 0
	}
	return team
}

// PrevTeam returns the team before team in turn order, wrapping around.
func (b *Board) PrevTeam(team int) int {
	team--
	if team < 0 {
		return len(b.State.Teams) - 1
	}
	return team
}

// advanceTurn steps the turn/sub-move/full-move counters forward and, once
// every turn of the current sub-move has been played, hands the move to the
// next team.
func (b *Board) advanceTurn() {
	s := &b.State
	s.CurrentTurn++
	s.Turns++
	if s.CurrentTurn >= b.Game.Turns {
		s.CurrentTurn = 0
		s.SubMoves++
		if s.MovingTeam == 0 {
			s.FullMoves++
		}
		s.MovingTeam = b.NextTeam(s.MovingTeam)
	}
}

// reverseTurn is advanceTurn's exact inverse.
func (b *Board) reverseTurn() {
	s := &b.State
	s.CurrentTurn--
	s.Turns--
	if s.CurrentTurn < 0 {
		s.MovingTeam = b.PrevTeam(s.MovingTeam)
		s.CurrentTurn = b.Game.Turns - 1
		s.SubMoves--
		if s.MovingTeam == 0 {
			s.FullMoves--
		}
	}
}

func (b *Board) pushHistory(h *HistoryMove) {
	b.State.History = append(b.State.History, h)
}

// PushSyntheticHistory records a HistoryMove that was never actually
// applied to the board (FEN en passant decoding uses this to make the
// double push the FEN implies visible to move generation without replaying
// it). Undoing it is a no-op beyond popping the entry.
func (b *Board) PushSyntheticHistory(action Action) {
	b.pushHistory(&HistoryMove{Action: action, Synthetic: true})
}

// LastMove returns the most recent history entry, or nil if none exists.
func (b *Board) LastMove() *HistoryMove {
	n := len(b.State.History)
	if n == 0 {
		return nil
	}
	return b.State.History[n-1]
}

// MakeMove applies action by dispatching to the owning piece kind's
// MakeMove. It is the caller's responsibility to ensure action is at least
// pseudo-legal; move generation never validates legality itself.
func (b *Board) MakeMove(action Action) {
	b.Game.Pieces[action.Piece].MakeMove(b, action)
}

// UndoMove reverses the most recently applied move by dispatching to the
// owning piece kind's UndoMove. It returns ErrNoHistoryMoves if the history
// is empty.
func (b *Board) UndoMove() error {
	n := len(b.State.History)
	if n == 0 {
		return ErrNoHistoryMoves
	}
	h := b.State.History[n-1]
	b.State.History = b.State.History[:n-1]
	b.Game.Pieces[h.Action.Piece].UndoMove(b, h)
	return nil
}

// Clone deep-copies the mutable State while sharing the immutable Game
// configuration and AttackLookup tables, so independent search workers can
// each mutate their own copy without synchronization.
func (b *Board) Clone() *Board {
	s := b.State
	s.Teams = append([]BitBoard(nil), b.State.Teams...)
	s.Pieces = append([]BitBoard(nil), b.State.Pieces...)
	s.Edges = append([]Edges(nil), b.State.Edges...)
	s.History = append([]*HistoryMove(nil), b.State.History...)
	return &Board{State: s, Game: b.Game, AttackLookup: b.AttackLookup}
}

// EncodePosition renders a square index as algebraic notation (e.g. "e4"),
// using the board's own row/column count. Row 0 is the top of the board and
// maps to the highest rank number.
func (b *Board) EncodePosition(square int) string {
	row, col := square/b.State.Cols, square%b.State.Cols
	rank := b.State.Rows - row
	return fmt.Sprintf("%c%d", 'a'+col, rank)
}

// DecodePosition parses algebraic notation into a square index.
func (b *Board) DecodePosition(square string) (int, error) {
	if len(square) < 2 {
		return 0, fmt.Errorf("bitengine: %q is not a valid square", square)
	}
	file := square[0]
	if file < 'a' || int(file-'a') >= b.State.Cols {
		return 0, fmt.Errorf("bitengine: %q has an invalid file", square)
	}
	var rank int
	if _, err := fmt.Sscanf(square[1:], "%d", &rank); err != nil {
		return 0, fmt.Errorf("bitengine: %q has an invalid rank", square)
	}
	row := b.State.Rows - rank
	if row < 0 || row >= b.State.Rows {
		return 0, fmt.Errorf("bitengine: %q has an out of range rank", square)
	}
	col := int(file - 'a')
	return row*b.State.Cols + col, nil
}
