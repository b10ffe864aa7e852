package bitengine

// CastlingGenerator is an optional extension a Game's MoveRestrictions may
// implement. King.AddActions consults it after generating its normal
// one-step destinations, so castling stays entirely a chess concern and the
// generic King never needs to know about rooks or castling rights.
type CastlingGenerator interface {
	AddCastlingActions(list *ActionList, b *Board, from, team int)
}

// King is a delta piece like Knight, but with two differences: its eight
// destinations are single steps rather than jumps, and it defers castling
// move generation to the game's CastlingGenerator (if any) while still
// being the piece that applies a castling move's rook jump once one is
// played.
type King struct {
	DefaultMover
}

func (King) Symbol() PieceSymbol { return PieceSymbol{Char: 'k'} }

func (King) CanLookup() bool { return true }

func kingSteps(from BitBoard, edges Edges, cols int) BitBoard {
	var steps BitBoard
	steps = steps.Or(leftN(from, edges, 1))
	steps = steps.Or(rightN(from, edges, 1))
	steps = steps.Or(from.Up(1, cols))
	steps = steps.Or(from.Down(1, cols))
	steps = steps.Or(leftN(from, edges, 1).Up(1, cols))
	steps = steps.Or(leftN(from, edges, 1).Down(1, cols))
	steps = steps.Or(rightN(from, edges, 1).Up(1, cols))
	steps = steps.Or(rightN(from, edges, 1).Down(1, cols))
	return steps
}

func (King) GenerateLookupMoves(b *Board, from BitBoard) AttackDirections {
	return AttackDirections{kingSteps(from, b.State.Edges[0], b.State.Cols)}
}

func (King) GetMoves(b *Board, from BitBoard, pieceKind, team int, mode MoveMode) BitBoard {
	return b.AttackLookup[pieceKind][from.BitScanForward()][0]
}

// AddActions emits the normal one-step king moves via DefaultMover, then
// appends any castling actions the game's legality predicate knows how to
// generate.
func (k King) AddActions(list *ActionList, b *Board, pieceKind, from, team int, mode MoveMode) {
	k.DefaultMover.AddActions(list, b, pieceKind, from, team, mode)
	if gen, ok := b.Game.Legality.(CastlingGenerator); ok {
		gen.AddCastlingActions(list, b, from, team)
	}
}

// isCastlingMove reports whether action moves the king two files sideways,
// the encoding a CastlingGenerator is expected to use.
func isCastlingMove(action Action, cols int) (kingside bool, ok bool) {
	diff := action.To - action.From
	switch diff {
	case 2:
		return true, true
	case -2:
		return false, true
	default:
		return false, false
	}
}

// MakeMove applies a normal king move via DefaultMover, or, for a castling
// move, additionally jumps the rook on the castling side and records both
// pieces' updates in a single HistoryMove.
func (k King) MakeMove(b *Board, action Action) {
	if kingside, ok := isCastlingMove(action, b.State.Cols); ok {
		k.makeCastlingMove(b, action, kingside)
		return
	}
	k.DefaultMover.MakeMove(b, action)
}

func (k King) makeCastlingMove(b *Board, action Action, kingside bool) {
	s := &b.State
	color := action.Team
	from := FromLSB(action.From)
	to := FromLSB(action.To)

	dir := LEFT
	if kingside {
		dir = RIGHT
	}
	rookKind := findRookKind(b)
	teamRooks := s.Pieces[rookKind].And(s.Teams[color]).And(s.FirstMove)
	rookFrom := FromLSB(teamRooks.BitScan(dir))
	rookTo := to.Right(1)
	if kingside {
		rookTo = to.Left(1)
	}

	h := newHistoryMove(action, s.AllPieces, s.FirstMove)
	h.recordTeam(color, s.Teams[color])
	h.recordPiece(action.Piece, s.Pieces[action.Piece])
	h.recordPiece(rookKind, s.Pieces[rookKind])

	s.Teams[color] = s.Teams[color].Xor(from).Or(to).Xor(rookFrom).Or(rookTo)
	s.Pieces[action.Piece] = s.Pieces[action.Piece].Xor(from).Or(to)
	s.Pieces[rookKind] = s.Pieces[rookKind].Xor(rookFrom).Or(rookTo)
	s.AllPieces = s.AllPieces.Xor(from).Or(to).Xor(rookFrom).Or(rookTo)
	s.FirstMove = s.FirstMove.AndNot(from).AndNot(rookFrom)

	b.pushHistory(h)
	b.advanceTurn()
}

// findRookKind locates the rook piece kind by its FEN symbol, since the
// generic King cannot assume a fixed piece-kind index ordering.
func findRookKind(b *Board) int {
	for i, p := range b.Game.Pieces {
		if p.Symbol().ForTeam(0) == 'R' {
			return i
		}
	}
	panic("bitengine: castling move played but no rook piece kind is configured")
}
