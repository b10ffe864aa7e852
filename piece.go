package bitengine

// PieceSymbol is the FEN-style letter a piece kind is written as. Most
// piece kinds share one letter and case it by team (upper-case for team 0);
// a variant piece that needs distinct letters per team can supply them
// explicitly via TeamSymbols.
type PieceSymbol struct {
	Char        byte
	TeamSymbols []byte
}

// ForTeam returns the symbol a given team's piece of this kind is written
// with.
func (s PieceSymbol) ForTeam(team int) byte {
	if s.TeamSymbols != nil {
		return s.TeamSymbols[team]
	}
	if team == 0 && s.Char >= 'a' && s.Char <= 'z' {
		return s.Char - ('a' - 'A')
	}
	return s.Char
}

// AttackDirections holds the precomputed destination mask(s) for one
// square. A delta piece (knight, king) stores a single slot; a slider
// stores one slot per ray direction.
type AttackDirections []BitBoard

// AttackLookup is an AttackDirections per board square, indexed by square.
type AttackLookup []AttackDirections

// Piece is the contract every piece kind implements: chess's standard six,
// or any user-supplied variant. The engine dispatches to these methods by
// piece kind index rather than by concrete type, so new piece kinds plug in
// without the engine knowing about them ahead of time.
type Piece interface {
	// Symbol returns the piece's FEN-style letter.
	Symbol() PieceSymbol
	// CanLookup reports whether the engine should precompute and cache an
	// AttackLookup for this piece kind at board setup.
	CanLookup() bool
	// GenerateLookupMoves computes the AttackDirections for one square; it
	// runs once per square during setup if CanLookup is true.
	GenerateLookupMoves(b *Board, from BitBoard) AttackDirections
	// GetMoves returns the bitboard of pseudo-legal destinations for a
	// piece of this kind, owned by team, standing on from. mode selects
	// between the full move set (NormalMode) and the threatened-square
	// set used for check detection (AttacksMode).
	GetMoves(b *Board, from BitBoard, pieceKind, team int, mode MoveMode) BitBoard
	// AddActions appends one Action per pseudo-legal destination reachable
	// from square from.
	AddActions(list *ActionList, b *Board, pieceKind, from, team int, mode MoveMode)
	// MakeMove applies action to b, pushing a HistoryMove that UndoMove can
	// later use to reverse it exactly.
	MakeMove(b *Board, action Action)
	// UndoMove reverses the effect of the move recorded in h.
	UndoMove(b *Board, h *HistoryMove)
}

// DefaultMover implements the plain quiet/capture apply-undo and
// destination-to-action expansion shared by every piece kind that has no
// special move semantics. Pawn and King embed it for UndoMove but override
// AddActions and MakeMove for their own special cases (promotion, en
// passant, castling); Pawn applies moves with its own capture/normal
// helpers, while King falls back to DefaultMover.MakeMove for plain steps.
type DefaultMover struct{}

// AddActions emits one Action per destination in GetMoves, excluding
// squares already held by the mover's own team.
func (DefaultMover) AddActions(list *ActionList, b *Board, pieceKind, from, team int, mode MoveMode) {
	piece := b.Game.Pieces[pieceKind]
	fromBoard := FromLSB(from)
	destinations := piece.GetMoves(b, fromBoard, pieceKind, team, mode).AndNot(b.State.Teams[team])
	if destinations.IsEmpty() {
		return
	}
	for to := range destinations.IterOneBits(b.State.Squares) {
		list.Push(Action{From: from, To: to, Team: team, Piece: pieceKind, Info: InfoNormal})
	}
}

// MakeMove dispatches to MakeCaptureMove or MakeNormalMove depending on
// whether the destination square is occupied, then advances the turn
// counters.
func (d DefaultMover) MakeMove(b *Board, action Action) {
	from := FromLSB(action.From)
	to := FromLSB(action.To)

	if !b.State.AllPieces.And(to).IsEmpty() {
		d.MakeCaptureMove(b, action, from, to)
	} else {
		d.MakeNormalMove(b, action, from, to)
	}

	b.advanceTurn()
}

// MakeNormalMove applies a quiet move: the piece leaves from and occupies
// to, with no capture.
func (DefaultMover) MakeNormalMove(b *Board, action Action, from, to BitBoard) {
	s := &b.State
	color := action.Team

	h := newHistoryMove(action, s.AllPieces, s.FirstMove)
	h.recordTeam(color, s.Teams[color])
	h.recordPiece(action.Piece, s.Pieces[action.Piece])

	s.Teams[color] = s.Teams[color].Xor(from).Or(to)
	s.Pieces[action.Piece] = s.Pieces[action.Piece].Xor(from).Or(to)
	s.AllPieces = s.AllPieces.Xor(from).Or(to)
	s.FirstMove = s.FirstMove.AndNot(from)

	b.pushHistory(h)
}

// MakeCaptureMove applies a capture: the defender's piece is removed from
// to, then the mover occupies it.
func (DefaultMover) MakeCaptureMove(b *Board, action Action, from, to BitBoard) {
	s := &b.State
	color := action.Team
	capturedColor := findOccupyingTeam(s, to)
	capturedPiece := findOccupyingPiece(s, to)

	h := newHistoryMove(action, s.AllPieces, s.FirstMove)
	h.recordTeam(color, s.Teams[color])
	h.recordTeam(capturedColor, s.Teams[capturedColor])
	h.recordPiece(action.Piece, s.Pieces[action.Piece])
	h.recordPiece(capturedPiece, s.Pieces[capturedPiece])

	s.Teams[capturedColor] = s.Teams[capturedColor].Xor(to)
	s.Teams[color] = s.Teams[color].Xor(from).Or(to)

	s.Pieces[capturedPiece] = s.Pieces[capturedPiece].Xor(to)
	s.Pieces[action.Piece] = s.Pieces[action.Piece].Xor(from).Or(to)

	// to was already occupied by the captured piece, so all_pieces only
	// loses the origin square.
	s.AllPieces = s.AllPieces.Xor(from)

	s.FirstMove = s.FirstMove.AndNot(from).AndNot(to)

	b.pushHistory(h)
}

// UndoMove restores every bitboard h recorded and reverses the turn
// counters. A synthetic entry never advanced the counters in the first
// place, so undoing one only pops it off the history stack.
func (DefaultMover) UndoMove(b *Board, h *HistoryMove) {
	if h.Synthetic {
		return
	}
	h.restore(&b.State)
	b.reverseTurn()
}

// findOccupyingTeam returns the index of the team occupying square to. It
// is a programmer-contract violation to call this when to is empty.
func findOccupyingTeam(s *BoardState, to BitBoard) int {
	for t := range s.Teams {
		if !s.Teams[t].And(to).IsEmpty() {
			return t
		}
	}
	panic("bitengine: no team occupies the capture destination square")
}

// findOccupyingPiece returns the index of the piece kind occupying square
// to. Captures are exclusive, so at most one piece kind can match; ties
// cannot occur if the occupancy invariants hold.
func findOccupyingPiece(s *BoardState, to BitBoard) int {
	for p := range s.Pieces {
		if !s.Pieces[p].And(to).IsEmpty() {
			return p
		}
	}
	panic("bitengine: no piece occupies the capture destination square")
}
