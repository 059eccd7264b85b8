package board

// isKingThreatened reports whether the square coord is attacked by any
// piece of color byColor (spec.md §4.F). It is used both to test
// "is who's king in check" and, during legal move generation, to
// confirm a candidate move doesn't leave the mover's own king in
// check.
func isKingThreatened(b *Board, coord Coord, byColor Color) bool {
	if !coord.IsValid() {
		return false
	}
	return isSquareAttackedByPawn(b, coord, byColor) ||
		isSquareAttackedByKnight(b, coord, byColor) ||
		isSquareAttackedByKing(b, coord, byColor) ||
		isSquareAttackedDiagonally(b, coord, byColor) ||
		isSquareAttackedOrthogonally(b, coord, byColor)
}

var knightOffsets = [8][2]int{
	{+2, +1}, {+2, -1}, {-2, +1}, {-2, -1},
	{+1, +2}, {+1, -2}, {-1, +2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1},
	{+1, 0}, {-1, 0}, {0, +1}, {0, -1},
}

var diagonalDirections = [4][2]int{
	{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1},
}

var orthogonalDirections = [4][2]int{
	{+1, 0}, {-1, 0}, {0, +1}, {0, -1},
}

// isSquareAttackedByPawn checks whether a pawn of byColor attacks
// coord. byColor's pawns move toward the opponent in
// byColor.PawnDirection(); an attacker therefore sits one row behind
// coord in that direction, on either adjacent file.
func isSquareAttackedByPawn(b *Board, coord Coord, byColor Color) bool {
	attackerRow := coord.Row() - byColor.PawnDirection()
	for _, dcol := range []int{-1, 1} {
		attackerCol := coord.Column() + dcol
		at, ok := CoordFromRowCol(attackerRow, attackerCol)
		if !ok {
			continue
		}
		piece := b.PieceAt(at)
		if piece.Piece() == Pawn && piece.Color() == byColor {
			return true
		}
	}
	return false
}

func isSquareAttackedByKnight(b *Board, coord Coord, byColor Color) bool {
	for _, off := range knightOffsets {
		at, ok := CoordFromRowCol(coord.Row()+off[0], coord.Column()+off[1])
		if !ok {
			continue
		}
		piece := b.PieceAt(at)
		if piece.Piece() == Knight && piece.Color() == byColor {
			return true
		}
	}
	return false
}

func isSquareAttackedByKing(b *Board, coord Coord, byColor Color) bool {
	for _, off := range kingOffsets {
		at, ok := CoordFromRowCol(coord.Row()+off[0], coord.Column()+off[1])
		if !ok {
			continue
		}
		piece := b.PieceAt(at)
		if piece.Piece() == King && piece.Color() == byColor {
			return true
		}
	}
	return false
}

func isSquareAttackedDiagonally(b *Board, coord Coord, byColor Color) bool {
	for _, dir := range diagonalDirections {
		if slideAttacks(b, coord, dir, byColor, Bishop) {
			return true
		}
	}
	return false
}

func isSquareAttackedOrthogonally(b *Board, coord Coord, byColor Color) bool {
	for _, dir := range orthogonalDirections {
		if slideAttacks(b, coord, dir, byColor, Rook) {
			return true
		}
	}
	return false
}

// slideAttacks walks from coord along dir until it hits a piece or
// runs off the board. It reports an attack if the first piece found
// belongs to byColor and is either a Queen or the slideKind (Bishop or
// Rook) appropriate to the calling direction set.
func slideAttacks(b *Board, coord Coord, dir [2]int, byColor Color, slideKind Piece) bool {
	row, col := coord.Row(), coord.Column()
	for dist := 1; dist <= 7; dist++ {
		at, ok := CoordFromRowCol(row+dir[0]*dist, col+dir[1]*dist)
		if !ok {
			return false
		}
		piece := b.PieceAt(at)
		if piece.IsEmpty() {
			continue
		}
		if piece.Color() == byColor && (piece.Piece() == slideKind || piece.Piece() == Queen) {
			return true
		}
		return false
	}
	return false
}
