package board

// knightMoveTable[sq] lists every square a knight on sq could jump to,
// computed once at init time (spec.md §9 "compile-time knight-move
// table ... deterministic const generation").
var knightMoveTable [NumSquares][]Coord

// kingMoveTable[sq] lists every square a king on sq could step to.
var kingMoveTable [NumSquares][]Coord

func init() {
	for _, sq := range AllCoords() {
		for _, off := range knightOffsets {
			if at, ok := CoordFromRowCol(sq.Row()+off[0], sq.Column()+off[1]); ok {
				knightMoveTable[sq] = append(knightMoveTable[sq], at)
			}
		}
		for _, off := range kingOffsets {
			if at, ok := CoordFromRowCol(sq.Row()+off[0], sq.Column()+off[1]); ok {
				kingMoveTable[sq] = append(kingMoveTable[sq], at)
			}
		}
	}
}

// GeneratePseudoLegalMoves fills out with every move available to
// b.ActiveColor without regard to whether it leaves that color's own
// king in check (spec.md §4.E). out is cleared first.
func GeneratePseudoLegalMoves(b *Board, out *MoveList) {
	out.len = 0
	who := b.ActiveColor
	for _, sq := range AllCoords() {
		cp := b.PieceAt(sq)
		if cp.IsEmpty() || cp.Color() != who {
			continue
		}
		switch cp.Piece() {
		case Pawn:
			generatePawnMoves(b, sq, who, out)
		case Knight:
			generateStepMoves(b, sq, who, knightMoveTable[sq], out)
		case King:
			generateStepMoves(b, sq, who, kingMoveTable[sq], out)
		case Bishop:
			generateSlideMoves(b, sq, who, diagonalDirections[:], out)
		case Rook:
			generateSlideMoves(b, sq, who, orthogonalDirections[:], out)
		case Queen:
			generateSlideMoves(b, sq, who, diagonalDirections[:], out)
			generateSlideMoves(b, sq, who, orthogonalDirections[:], out)
		}
	}
	generateCastlingMoves(b, who, out)
	orderMoves(b, out)
}

// GenerateLegalMoves fills out with b.ActiveColor's legal moves:
// every pseudo-legal move that doesn't leave that color's own king
// attacked (spec.md §4.E, testable property P3 legal ⊆ pseudo-legal).
// It clones b once and replays each candidate on the clone rather than
// mutating b, since the caller's b is live.
func GenerateLegalMoves(b *Board, out *MoveList) {
	var pseudo MoveList
	GeneratePseudoLegalMoves(b, &pseudo)
	out.len = 0
	who := b.ActiveColor
	work := b.Clone()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		work.MakeMove(who, m)
		if !isKingThreatened(work, work.KingPosition[who.Index()], who.Invert()) {
			out.Push(m)
		}
		*work = *b
	}
}

// InCheck reports whether who's king is currently attacked.
func InCheck(b *Board, who Color) bool {
	return isKingThreatened(b, b.KingPosition[who.Index()], who.Invert())
}

var promotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

func generatePawnMoves(b *Board, from Coord, who Color, out *MoveList) {
	dir := who.PawnDirection()
	startRow := pawnStartRow(who)
	lastRow := promotionRow(who)

	oneAhead, ok := CoordFromRowCol(from.Row()+dir, from.Column())
	if ok && b.PieceAt(oneAhead).IsEmpty() {
		pushPawnMove(from, oneAhead, who, lastRow, CategoryDefault, out)
		if from.Row() == startRow {
			twoAhead, ok := CoordFromRowCol(from.Row()+2*dir, from.Column())
			if ok && b.PieceAt(twoAhead).IsEmpty() {
				out.Push(NewMove(from, twoAhead))
			}
		}
	}

	for _, dcol := range []int{-1, 1} {
		to, ok := CoordFromRowCol(from.Row()+dir, from.Column()+dcol)
		if !ok {
			continue
		}
		target := b.PieceAt(to)
		if !target.IsEmpty() && target.Color() != who {
			pushPawnMove(from, to, who, lastRow, CategoryNormalCapturing, out)
			continue
		}
		if b.EnPassantTarget.Present && b.EnPassantTarget.Coord == to && b.EnPassantTarget.VulnerableColor == who {
			out.Push(NewEnPassantMove(from, to))
		}
	}
}

func pushPawnMove(from, to Coord, who Color, lastRow int, category MoveCategory, out *MoveList) {
	if to.Row() == lastRow {
		for _, promo := range promotionPieces {
			var m Move
			if category == CategoryNormalCapturing {
				m = NewCapturingMove(from, to)
			} else {
				m = NewMove(from, to)
			}
			out.Push(m.WithPromotion(who, promo))
		}
		return
	}
	if category == CategoryNormalCapturing {
		out.Push(NewCapturingMove(from, to))
	} else {
		out.Push(NewMove(from, to))
	}
}

func pawnStartRow(who Color) int {
	if who == White {
		return 6
	}
	return 1
}

func promotionRow(who Color) int {
	if who == White {
		return FirstRow
	}
	return LastRow
}

func generateStepMoves(b *Board, from Coord, who Color, targets []Coord, out *MoveList) {
	for _, to := range targets {
		target := b.PieceAt(to)
		if target.IsEmpty() {
			out.Push(NewMove(from, to))
		} else if target.Color() != who {
			out.Push(NewCapturingMove(from, to))
		}
	}
}

func generateSlideMoves(b *Board, from Coord, who Color, directions [][2]int, out *MoveList) {
	for _, dir := range directions {
		for dist := 1; dist <= 7; dist++ {
			to, ok := CoordFromRowCol(from.Row()+dir[0]*dist, from.Column()+dir[1]*dist)
			if !ok {
				break
			}
			target := b.PieceAt(to)
			if target.IsEmpty() {
				out.Push(NewMove(from, to))
				continue
			}
			if target.Color() != who {
				out.Push(NewCapturingMove(from, to))
			}
			break
		}
	}
}

// generateCastlingMoves adds both castling moves still eligible,
// provided the squares between king and rook are empty, who's king
// is not currently in check, and neither the king's current square
// nor the square it passes through or lands on is attacked (spec.md
// §4.E castling rule).
func generateCastlingMoves(b *Board, who Color, out *MoveList) {
	elig := b.CastlingEligibility[who.Index()]
	row := castlingRowForColor(who)
	kingFrom := NewCoord(row, KingColumn)
	if b.PieceAt(kingFrom).Piece() != King || b.PieceAt(kingFrom).Color() != who {
		return
	}
	opponent := who.Invert()
	if isKingThreatened(b, kingFrom, opponent) {
		return
	}

	if elig&CastlingKingsideIneligible == 0 {
		rookFrom := NewCoord(row, KingRookColumn)
		empty := []Coord{NewCoord(row, 5), NewCoord(row, 6)}
		if rookPresent(b, rookFrom, who) && squaresEmpty(b, empty) && castlingPathSafe(b, empty, opponent) {
			out.Push(NewCastlingMove(kingFrom, NewCoord(row, KingsideCastledKingColumn)))
		}
	}
	if elig&CastlingQueensideIneligible == 0 {
		rookFrom := NewCoord(row, QueenRookColumn)
		empty := []Coord{NewCoord(row, 1), NewCoord(row, 2), NewCoord(row, 3)}
		kingPath := []Coord{NewCoord(row, 2), NewCoord(row, 3)}
		if rookPresent(b, rookFrom, who) && squaresEmpty(b, empty) && castlingPathSafe(b, kingPath, opponent) {
			out.Push(NewCastlingMove(kingFrom, NewCoord(row, QueensideCastledKingColumn)))
		}
	}
}

func rookPresent(b *Board, sq Coord, who Color) bool {
	rook := b.PieceAt(sq)
	return rook.Piece() == Rook && rook.Color() == who
}

func squaresEmpty(b *Board, squares []Coord) bool {
	for _, sq := range squares {
		if !b.PieceAt(sq).IsEmpty() {
			return false
		}
	}
	return true
}

func castlingPathSafe(b *Board, squares []Coord, opponent Color) bool {
	for _, sq := range squares {
		if isKingThreatened(b, sq, opponent) {
			return false
		}
	}
	return true
}

// orderMoves sorts out in place so the search explores the most
// promising candidates first (spec.md §4.E ordering rules): captures
// before quiet moves, captures ranked by captured-piece weight minus
// capturing-piece weight, promotions
// to Queen ranked with captures, and castling ranked just above quiet
// moves. Ties are broken by keeping the generation order stable.
func orderMoves(b *Board, out *MoveList) {
	n := out.Len()
	scores := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = moveOrderScore(b, out.At(i))
	}
	// Stable insertion sort: the move lists search sees are small
	// (a few dozen entries), so an O(n^2) stable sort costs nothing
	// and keeps generation order as the tiebreak.
	for i := 1; i < n; i++ {
		j := i
		for j > 0 && scores[j-1] < scores[j] {
			scores[j-1], scores[j] = scores[j], scores[j-1]
			mj, mj1 := out.At(j-1), out.At(j)
			out.Set(j-1, mj1)
			out.Set(j, mj)
			j--
		}
	}
}

func moveOrderScore(b *Board, m Move) int {
	score := 0
	if m.IsCapturing() {
		victim := b.PieceAt(m.To())
		aggressor := b.PieceAt(m.From())
		score += 1000 + victim.Piece().Weight() - aggressor.Piece().Weight()
	}
	if m.Category() == CategoryEnPassant {
		score += 1000
	}
	if m.IsPromoting() {
		score += m.PromotedPiece().Piece().Weight()
	}
	if m.IsCastling() {
		score += 50
	}
	return score
}
