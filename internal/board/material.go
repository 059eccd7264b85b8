package board

// Scale factors for combining material and position scores into a
// single evaluation (spec.md §4.G, original_source global.hpp).
const (
	MaterialScoreScale = 2
	PositionScoreScale = 9
)

// CastlePenalty is charged per side on which a color can no longer
// castle; a color heuristically judged to have already castled scores
// -CastlePenalty instead, a net bonus (spec.md §4.G, original_source
// evaluate.cpp).
const CastlePenalty = 50

// pieceSquareTables holds one 8x8 table per piece kind, indexed
// [row][col] from White's perspective (row 0 = rank 8, i.e. White's
// starting side is rows 6-7). Black's score for the same piece on a
// square looks up the coordinate mirrored vertically (Coord.Mirror).
//
// The exact values are a policy knob per spec.md §4.G; these follow
// the shape spec.md calls for: pawns favor the center and discourage
// blocking the d/e files, knights peak in the center, bishops favor
// long diagonals, rooks favor the 7th rank, the queen favors the
// center, and the king favors its castled corners.
var pieceSquareTables = [7][NumRows][NumColumns]int{
	Pawn: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	Knight: {
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-30, 5, 15, 20, 20, 15, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	},
	Bishop: {
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 5, 10, 10, 10, 10, 5, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	},
	Rook: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{0, 0, 0, 5, 5, 0, 0, 0},
	},
	Queen: {
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{0, 0, 5, 5, 5, 5, 0, -5},
		{-10, 5, 5, 5, 5, 5, 0, -10},
		{-10, 0, 5, 0, 0, 0, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	},
	King: {
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{20, 30, 10, 0, 0, 10, 30, 20},
	},
}

// positionValue returns the piece-square value of placing cp on
// coord, oriented to the global (White) table via mirroring for
// Black.
func positionValue(coord Coord, cp ColoredPiece) int {
	if cp.IsEmpty() {
		return 0
	}
	sq := coord
	if cp.Color() == Black {
		sq = coord.Mirror()
	}
	return pieceSquareTables[cp.Piece()][sq.Row()][sq.Column()]
}

// castlingRowForColor returns the back-rank row a color's king and
// rooks start on.
func castlingRowForColor(who Color) int {
	if who == White {
		return LastRow
	}
	return FirstRow
}

// heuristicIsCastled reports whether who's king sits on a castled
// column with its rook alongside it on the back rank — a cheap proxy
// for "has already castled" that doesn't require remembering whether
// the move played was literally a castling move.
func heuristicIsCastled(b *Board, who Color) bool {
	kingPos := b.KingPosition[who.Index()]
	row := castlingRowForColor(who)
	if kingPos.Row() != row {
		return false
	}
	rook := NewColoredPiece(who, Rook)
	switch kingPos.Column() {
	case KingsideCastledKingColumn:
		return b.PieceAt(NewCoord(row, KingsideCastledRookColumn)) == rook
	case QueensideCastledKingColumn:
		return b.PieceAt(NewCoord(row, QueensideCastledRookColumn)) == rook
	default:
		return false
	}
}

// InsufficientMaterial reports whether neither side retains enough
// material to force checkmate: each side has only a bare king, a
// king plus one knight, or a king plus any number of same-colored
// bishops (spec.md §4.L). Opposite-colored bishops can still mate and
// are excluded.
func InsufficientMaterial(b *Board) bool {
	return sideHasInsufficientMaterial(b, White) && sideHasInsufficientMaterial(b, Black)
}

func sideHasInsufficientMaterial(b *Board, who Color) bool {
	knights, lightBishops, darkBishops := 0, 0, 0
	for _, sq := range AllCoords() {
		cp := b.PieceAt(sq)
		if cp.IsEmpty() || cp.Color() != who {
			continue
		}
		switch cp.Piece() {
		case King:
			continue
		case Knight:
			knights++
		case Bishop:
			if squareIsLight(sq) {
				lightBishops++
			} else {
				darkBishops++
			}
		default:
			return false // pawn, rook, or queen can always eventually force mate
		}
	}
	if knights > 0 && (lightBishops > 0 || darkBishops > 0) {
		return false // knight + bishop can force mate
	}
	if knights > 1 {
		return false
	}
	if lightBishops > 0 && darkBishops > 0 {
		return false // opposite-colored bishops can force mate
	}
	return true
}

func squareIsLight(c Coord) bool {
	return (c.Row()+c.Column())%2 == 1
}

// unableToCastlePenalty charges CastlePenalty per side on which who
// can no longer castle. When who has heuristically already castled it
// returns -CastlePenalty instead, a bonus relative to an
// eligible-but-uncastled side (which scores 0).
func unableToCastlePenalty(b *Board, who Color) int {
	elig := b.CastlingEligibility[who.Index()]
	if elig == CastlingBothEligible {
		return 0
	}
	result := 0
	if elig&CastlingKingsideIneligible != 0 {
		result += CastlePenalty
	}
	if elig&CastlingQueensideIneligible != 0 {
		result += CastlePenalty
	}
	if heuristicIsCastled(b, who) {
		return -CastlePenalty
	}
	return result
}
