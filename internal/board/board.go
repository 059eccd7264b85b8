package board

// CastlingEligibility is a two-flag set per spec.md §3. The empty set
// means both sides are still eligible; setting both flags after a
// castling move records "already castled".
type CastlingEligibility uint8

const (
	CastlingKingsideIneligible CastlingEligibility = 1 << iota
	CastlingQueensideIneligible
)

// CastlingBothEligible is the zero value: neither flag set.
const CastlingBothEligible CastlingEligibility = 0

// CastlingBothIneligible has both flags set, as recorded once a side
// has castled.
const CastlingBothIneligible = CastlingKingsideIneligible | CastlingQueensideIneligible

// EnPassantState names whether a target is currently present and, if
// so, which square and which color may capture onto it.
type EnPassantState struct {
	Present         bool
	Coord           Coord
	VulnerableColor Color
}

// Board is the complete, trivially-copyable chess position: piece
// placement, king positions, castling eligibility, incrementally
// maintained material/position scores, en passant state, clocks, and
// the Code fingerprint (spec.md §3/§4.C). It has no heap indirection,
// so search workers clone it by value (spec.md §9 design note).
type Board struct {
	Squares             [NumSquares]ColoredPiece
	ActiveColor         Color
	KingPosition        [NumPlayers]Coord
	CastlingEligibility [NumPlayers]CastlingEligibility
	Material            [NumPlayers]int
	Position            [NumPlayers]int
	EnPassantTarget     EnPassantState
	HalfMoveClock       int
	FullMoveNumber      int
	Code                Code
}

// PieceAt returns the piece occupying coord, or PieceAndColorNone if
// coord is off-board or empty.
func (b *Board) PieceAt(coord Coord) ColoredPiece {
	if !coord.IsValid() {
		return PieceAndColorNone
	}
	return b.Squares[coord]
}

// Clone returns a deep value copy of b. Since Board contains no
// pointers or slices, a plain dereference-and-copy suffices; Clone
// exists so callers don't need to know that.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// placePiece sets coord to cp, updating the code, material, and
// position incrementally. It does not touch king position tracking;
// callers update KingPosition themselves when placing a king.
func (b *Board) placePiece(coord Coord, cp ColoredPiece) {
	b.Squares[coord] = cp
	b.Code.AddPiece(coord, cp)
	if !cp.IsEmpty() {
		b.Material[cp.Color().Index()] += cp.Piece().Weight()
		b.Position[cp.Color().Index()] += positionValue(coord, cp)
	}
}

// removePieceAt clears coord (which must currently hold cp),
// reversing placePiece's incremental updates.
func (b *Board) removePieceAt(coord Coord, cp ColoredPiece) {
	b.Squares[coord] = PieceAndColorNone
	b.Code.RemovePiece(coord, cp)
	if !cp.IsEmpty() {
		b.Material[cp.Color().Index()] -= cp.Piece().Weight()
		b.Position[cp.Color().Index()] -= positionValue(coord, cp)
	}
}

// UndoState captures everything Board.TakeBack needs to reverse a
// MakeMove call exactly, including a value copy of the pre-move
// board — the simplest possible undo representation given Board's
// cheap-to-copy design (spec.md §9).
type UndoState struct {
	prev Board
}

// MakeMove applies move for who, mutating b in place, and returns an
// UndoState that TakeBack can use to restore b exactly (spec.md §4.C,
// testable property P1). who must be the board's current turn and
// move must be well-formed; illegal-but-well-formed moves are
// accepted (legality is the Generator's concern, spec.md §4.E)
// provided they don't violate a core invariant, in which case this
// panics with MoveConsistencyError (spec.md §7).
func (b *Board) MakeMove(who Color, move Move) UndoState {
	undo := UndoState{prev: *b}

	from := move.From()
	to := move.To()
	moving := b.PieceAt(from)
	if moving.IsEmpty() || moving.Color() != who {
		panicMoveConsistency("make_move: no piece of the active color on the source square")
	}

	wasPawnMove := moving.Piece() == Pawn
	wasCapture := false
	var capturedPiece ColoredPiece
	var capturedCoord Coord = NoCoord

	switch move.Category() {
	case CategoryEnPassant:
		capturedCoord = NewCoord(from.Row(), to.Column())
		captured := b.PieceAt(capturedCoord)
		if captured.IsEmpty() || captured.Piece() != Pawn || captured.Color() == who {
			panicMoveConsistency("make_move: en passant target square does not hold an enemy pawn")
		}
		b.removePieceAt(capturedCoord, captured)
		wasCapture = true
		capturedPiece = captured
		b.movePiece(from, to, moving)

	case CategoryCastling:
		b.performCastle(who, from, to)

	default: // CategoryDefault, CategoryNormalCapturing
		target := b.PieceAt(to)
		if !target.IsEmpty() {
			if target.Color() == who {
				panicMoveConsistency("make_move: destination occupied by a piece of the same color")
			}
			b.removePieceAt(to, target)
			wasCapture = true
			capturedPiece = target
			capturedCoord = to
		}
		b.movePiece(from, to, moving)
	}

	if move.IsPromoting() && move.Category() != CategoryCastling {
		promoted := NewColoredPiece(who, move.PromotedPiece().Piece())
		pawn := b.PieceAt(to)
		b.removePieceAt(to, pawn)
		b.placePiece(to, promoted)
	}

	if moving.Piece() == King {
		b.KingPosition[who.Index()] = to
	}

	b.updateCastlingEligibility(who, from, move, capturedPiece, capturedCoord)
	b.updateEnPassantTarget(who, from, to, moving, move)

	if wasPawnMove || wasCapture {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}

	if who == Black {
		b.FullMoveNumber++
	}

	b.ActiveColor = who.Invert()
	b.Code.SetCurrentTurn(b.ActiveColor)

	return undo
}

// movePiece relocates cp from src to dst, both updates threaded
// through the incremental code/material/position bookkeeping.
func (b *Board) movePiece(src, dst Coord, cp ColoredPiece) {
	b.removePieceAt(src, cp)
	b.placePiece(dst, cp)
}

// performCastle moves the king two squares and the corresponding rook
// the square the king skipped over, per spec.md §4.C.
func (b *Board) performCastle(who Color, kingFrom, kingTo Coord) {
	row := kingFrom.Row()
	king := b.PieceAt(kingFrom)
	if king.IsEmpty() || king.Piece() != King {
		panicMoveConsistency("make_move: castling move's source square does not hold a king")
	}

	kingside := kingTo.Column() == KingsideCastledKingColumn
	var rookFromCol, rookToCol int
	if kingside {
		rookFromCol, rookToCol = KingRookColumn, KingsideCastledRookColumn
	} else {
		rookFromCol, rookToCol = QueenRookColumn, QueensideCastledRookColumn
	}
	rookFrom := NewCoord(row, rookFromCol)
	rookTo := NewCoord(row, rookToCol)

	rook := b.PieceAt(rookFrom)
	if rook.IsEmpty() || rook.Piece() != Rook || rook.Color() != who {
		panicMoveConsistency("make_move: castling move's rook square does not hold the expected rook")
	}

	b.movePiece(kingFrom, kingTo, king)
	b.movePiece(rookFrom, rookTo, rook)
}

// updateCastlingEligibility applies spec.md §4.C's rules: a king move
// revokes both sides, a rook move off its starting square revokes
// that side, and capturing an enemy rook on its starting square
// revokes that side for the opponent.
func (b *Board) updateCastlingEligibility(who Color, from Coord, move Move, capturedPiece ColoredPiece, capturedCoord Coord) {
	if move.Category() == CategoryCastling {
		b.CastlingEligibility[who.Index()] = CastlingBothIneligible
		b.Code.SetCastleState(who, CastlingBothIneligible)
		return
	}

	movedPiece := b.PieceAt(move.To())
	if movedPiece.Piece() == King {
		b.revokeCastling(who, CastlingBothIneligible)
	} else if movedPiece.Piece() == Rook && from.Row() == castlingRowForColor(who) {
		b.revokeRookCastling(who, from.Column())
	}

	if capturedPiece.Piece() == Rook && capturedCoord.IsValid() {
		opponent := capturedPiece.Color()
		if capturedCoord.Row() == castlingRowForColor(opponent) {
			b.revokeRookCastling(opponent, capturedCoord.Column())
		}
	}
}

func (b *Board) revokeRookCastling(who Color, rookCol int) {
	if rookCol == QueenRookColumn {
		b.revokeCastling(who, CastlingQueensideIneligible)
	} else if rookCol == KingRookColumn {
		b.revokeCastling(who, CastlingKingsideIneligible)
	}
}

func (b *Board) revokeCastling(who Color, flags CastlingEligibility) {
	idx := who.Index()
	updated := b.CastlingEligibility[idx] | flags
	if updated == b.CastlingEligibility[idx] {
		return
	}
	b.CastlingEligibility[idx] = updated
	b.Code.SetCastleState(who, updated)
}

// updateEnPassantTarget sets the target iff move was a two-square
// pawn advance, otherwise clears it (spec.md §4.C).
func (b *Board) updateEnPassantTarget(who Color, from, to Coord, moving ColoredPiece, move Move) {
	if moving.Piece() == Pawn && move.Category() != CategoryCastling {
		rowDelta := to.Row() - from.Row()
		if rowDelta == 2*who.PawnDirection() {
			skipped := NewCoord((from.Row()+to.Row())/2, from.Column())
			b.EnPassantTarget = EnPassantState{Present: true, Coord: skipped, VulnerableColor: who.Invert()}
			b.Code.SetEnPassantTarget(who.Invert(), skipped)
			return
		}
	}
	b.EnPassantTarget = EnPassantState{}
	b.Code.ClearEnPassantTarget()
}

// TakeBack reverses a MakeMove call exactly, restoring every field
// Board.MakeMove could have touched (spec.md §8 P1). move and who are
// accepted to match spec.md's interface and for interface
// symmetry with MakeMove; the actual restoration replays the
// captured pre-move snapshot.
func (b *Board) TakeBack(who Color, move Move, undo UndoState) {
	_ = who
	_ = move
	*b = undo.prev
}
