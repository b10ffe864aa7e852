package bitengine

// Pawn is the one piece whose forward direction depends on which team owns
// it: team 0 advances toward decreasing row index ("up" in the board's bit
// layout), every other team advances toward increasing row index ("down").
// A variant with more than two teams of pawns still works, since any team
// other than 0 defaults to team 1's direction.
type Pawn struct {
	DefaultMover
}

func (Pawn) Symbol() PieceSymbol { return PieceSymbol{Char: 'p'} }

func (Pawn) CanLookup() bool { return true }

// TeamForward shifts b by shift rows toward team's advancing direction: team
// 0 moves toward decreasing row index, every other team toward increasing
// row index. Chess's en passant FEN field reuses this convention directly
// (with an explicit team argument rather than a mover's own team) to
// translate the given square into the pair of squares a double push
// touches, so it is exported rather than kept private to the pawn piece.
func TeamForward(b BitBoard, shift uint, cols, team int) BitBoard {
	if team == 0 {
		return b.Up(shift, cols)
	}
	return b.Down(shift, cols)
}

// TeamBackward is TeamForward's inverse.
func TeamBackward(b BitBoard, shift uint, cols, team int) BitBoard {
	if team == 0 {
		return b.Down(shift, cols)
	}
	return b.Up(shift, cols)
}

func pawnForward(b BitBoard, cols, team int) BitBoard  { return TeamForward(b, 1, cols, team) }
func pawnBackward(b BitBoard, cols, team int) BitBoard { return TeamBackward(b, 1, cols, team) }

// GenerateLookupMoves computes, per team, the diagonal capture mask one
// step ahead of from. Team 0's source squares on the top row and team 1's
// on the bottom row have no forward diagonal at all, so they are excluded
// before shifting.
func (Pawn) GenerateLookupMoves(b *Board, from BitBoard) AttackDirections {
	edges := b.State.Edges[0]
	cols := b.State.Cols
	dirs := make(AttackDirections, b.Game.Teams)
	for team := 0; team < b.Game.Teams; team++ {
		src := from
		if team == 0 {
			src = src.AndNot(edges.Top)
		} else {
			src = src.AndNot(edges.Bottom)
		}
		upOne := pawnForward(src, cols, team)
		captures := upOne.AndNot(edges.Right).Right(1)
		captures = captures.Or(upOne.AndNot(edges.Left).Left(1))
		dirs[team] = captures
	}
	return dirs
}

// lastMoveWasDoublePush reports whether the most recent history entry was a
// pawn advancing two rows, returning the pawn's origin square if so.
func lastMoveWasDoublePush(b *Board, pieceKind int) (from int, ok bool) {
	last := b.LastMove()
	if last == nil {
		return 0, false
	}
	a := last.Action
	if a.Piece != pieceKind {
		return 0, false
	}
	diff := a.To - a.From
	if diff < 0 {
		diff = -diff
	}
	if diff != 2*b.State.Cols {
		return 0, false
	}
	return a.From, true
}

// GetMoves returns, in AttacksMode, the raw capture lookup regardless of
// occupancy (so check detection sees squares a pawn threatens even when
// empty). In NormalMode it additionally computes forward pushes and
// restricts captures to squares actually occupied by an opponent, or to the
// phantom square behind a just-played double push.
func (p Pawn) GetMoves(b *Board, from BitBoard, pieceKind, team int, mode MoveMode) BitBoard {
	lookup := b.AttackLookup[pieceKind][from.BitScanForward()][team]
	if mode == AttacksMode {
		return lookup
	}

	s := &b.State
	cols := s.Cols

	captureRequirements := s.AllPieces
	if lastFrom, ok := lastMoveWasDoublePush(b, pieceKind); ok {
		captureRequirements = captureRequirements.Or(pawnForward(FromLSB(lastFrom), cols, b.NextTeam(team)))
	}

	var moves BitBoard
	singlePush := pawnForward(from, cols, team).AndNot(s.AllPieces)
	moves = moves.Or(singlePush)

	if !from.And(s.FirstMove).IsEmpty() {
		doublePush := pawnForward(singlePush, cols, team).AndNot(s.AllPieces)
		moves = moves.Or(doublePush)
	}

	moves = moves.Or(lookup.And(captureRequirements))
	return moves
}

// promotionRows is the union of the top and bottom edges, the only squares
// a pawn can promote on regardless of which team it belongs to.
func promotionRows(b *Board) BitBoard {
	edges := b.State.Edges[0]
	return edges.Top.Or(edges.Bottom)
}

// AddActions expands each destination into one promotion Action per
// non-pawn, non-king piece kind when it lands on a promotion row, tags
// diagonal destinations matching the just-played double push as en
// passant, and otherwise falls back to a normal move.
func (p Pawn) AddActions(list *ActionList, b *Board, pieceKind, from, team int, mode MoveMode) {
	fromBoard := FromLSB(from)
	destinations := p.GetMoves(b, fromBoard, pieceKind, team, mode).AndNot(b.State.Teams[team])
	if destinations.IsEmpty() {
		return
	}

	promoRows := promotionRows(b)
	cols := b.State.Cols
	pieceCount := len(b.Game.Pieces)

	for to := range destinations.IterOneBits(b.State.Squares) {
		if !FromLSB(to).And(promoRows).IsEmpty() {
			for kind := 0; kind < pieceCount; kind++ {
				if kind == pieceKind || isKingKind(b, kind) {
					continue
				}
				list.Push(Action{From: from, To: to, Team: team, Piece: pieceKind, Info: PromotionInfo(kind)})
			}
			continue
		}

		info := InfoNormal
		if lastFrom, ok := lastMoveWasDoublePush(b, pieceKind); ok {
			oneRowFromLastFrom := abs(lastFrom-to) == cols
			diagonal := abs(from-to)%cols != 0
			if oneRowFromLastFrom && diagonal {
				info = InfoEnPassant
			}
		}
		list.Push(Action{From: from, To: to, Team: team, Piece: pieceKind, Info: info})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func isKingKind(b *Board, kind int) bool {
	return b.Game.Pieces[kind].Symbol().ForTeam(0) == 'K'
}

// MakeMove dispatches to promotion, en passant, or the shared quiet/capture
// paths depending on the action's Info and destination occupancy.
func (p Pawn) MakeMove(b *Board, action Action) {
	from := FromLSB(action.From)
	to := FromLSB(action.To)

	if action.Info == InfoEnPassant {
		p.makeEnPassantMove(b, action, from, to)
		b.advanceTurn()
		return
	}

	if !b.State.AllPieces.And(to).IsEmpty() {
		p.makeCaptureMove(b, action, from, to)
	} else {
		p.makeNormalMove(b, action, from, to)
	}
	b.advanceTurn()
}

// makeEnPassantMove moves the capturing pawn onto the square the passing
// pawn skipped over and removes the passing pawn from the square it landed
// on, which is one row behind the destination from the mover's
// perspective, not the destination itself.
func (p Pawn) makeEnPassantMove(b *Board, action Action, from, to BitBoard) {
	s := &b.State
	color := action.Team
	target := pawnBackward(to, s.Cols, color)
	targetColor := findOccupyingTeam(s, target)

	h := newHistoryMove(action, s.AllPieces, s.FirstMove)
	h.recordTeam(color, s.Teams[color])
	h.recordTeam(targetColor, s.Teams[targetColor])
	h.recordPiece(action.Piece, s.Pieces[action.Piece])

	s.Teams[color] = s.Teams[color].Xor(from).Or(to)
	s.Teams[targetColor] = s.Teams[targetColor].Xor(target)

	s.Pieces[action.Piece] = s.Pieces[action.Piece].Xor(from).Xor(target).Or(to)

	s.AllPieces = s.AllPieces.Xor(from).Xor(target).Or(to)
	s.FirstMove = s.FirstMove.AndNot(from).AndNot(target)

	b.pushHistory(h)
}

// makeNormalMove mirrors DefaultMover.MakeNormalMove but additionally
// handles promotion: the pawn vanishes from the pieces bitboard it belongs
// to and the promoted kind appears at to instead.
func (p Pawn) makeNormalMove(b *Board, action Action, from, to BitBoard) {
	s := &b.State
	color := action.Team

	h := newHistoryMove(action, s.AllPieces, s.FirstMove)
	h.recordTeam(color, s.Teams[color])
	h.recordPiece(action.Piece, s.Pieces[action.Piece])

	if kind, ok := IsPromotion(action.Info); ok {
		h.recordPiece(kind, s.Pieces[kind])
		s.Pieces[action.Piece] = s.Pieces[action.Piece].Xor(from)
		s.Pieces[kind] = s.Pieces[kind].Or(to)
	} else {
		s.Pieces[action.Piece] = s.Pieces[action.Piece].Xor(from).Or(to)
	}

	s.Teams[color] = s.Teams[color].Xor(from).Or(to)
	s.AllPieces = s.AllPieces.Xor(from).Or(to)
	s.FirstMove = s.FirstMove.AndNot(from)

	b.pushHistory(h)
}

// makeCaptureMove mirrors DefaultMover.MakeCaptureMove but additionally
// handles promotion-with-capture: the captured piece still vanishes from
// to, but the mover's own piece places the promoted kind rather than a
// pawn.
func (p Pawn) makeCaptureMove(b *Board, action Action, from, to BitBoard) {
	s := &b.State
	color := action.Team
	capturedColor := findOccupyingTeam(s, to)
	capturedPiece := findOccupyingPiece(s, to)

	h := newHistoryMove(action, s.AllPieces, s.FirstMove)
	h.recordTeam(color, s.Teams[color])
	h.recordTeam(capturedColor, s.Teams[capturedColor])
	h.recordPiece(action.Piece, s.Pieces[action.Piece])
	h.recordPiece(capturedPiece, s.Pieces[capturedPiece])
	kind, promotes := IsPromotion(action.Info)
	if promotes {
		h.recordPiece(kind, s.Pieces[kind])
	}

	s.Teams[capturedColor] = s.Teams[capturedColor].Xor(to)
	s.Teams[color] = s.Teams[color].Xor(from).Or(to)
	s.Pieces[capturedPiece] = s.Pieces[capturedPiece].Xor(to)

	if promotes {
		s.Pieces[action.Piece] = s.Pieces[action.Piece].Xor(from)
		s.Pieces[kind] = s.Pieces[kind].Or(to)
	} else {
		s.Pieces[action.Piece] = s.Pieces[action.Piece].Xor(from).Or(to)
	}

	s.AllPieces = s.AllPieces.Xor(from)
	s.FirstMove = s.FirstMove.AndNot(from).AndNot(to)

	b.pushHistory(h)
}
