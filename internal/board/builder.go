package board

import "fmt"

// Builder assembles a Board one square at a time and validates it
// before construction (spec.md §3 "Board lifecycle: created by
// Builder"). Use NewBuilder: it starts from an empty board with White
// to move, full castling eligibility, no en passant target, and clocks
// at their starting values. The zero value has no side to move and a
// full-move number of 0.
type Builder struct {
	squares             [NumSquares]ColoredPiece
	activeColor         Color
	castlingEligibility [NumPlayers]CastlingEligibility
	enPassant           EnPassantState
	halfMoveClock       int
	fullMoveNumber      int
}

// NewBuilder returns a Builder for an empty board, White to move,
// both sides eligible to castle.
func NewBuilder() *Builder {
	return &Builder{
		activeColor:    White,
		fullMoveNumber: 1,
	}
}

// SetPiece places cp on coord. Passing PieceAndColorNone clears the
// square.
func (bb *Builder) SetPiece(coord Coord, cp ColoredPiece) *Builder {
	bb.squares[coord] = cp
	return bb
}

// SetActiveColor sets the side to move.
func (bb *Builder) SetActiveColor(c Color) *Builder {
	bb.activeColor = c
	return bb
}

// SetCastlingEligibility sets who's castling eligibility flags.
func (bb *Builder) SetCastlingEligibility(who Color, elig CastlingEligibility) *Builder {
	bb.castlingEligibility[who.Index()] = elig
	return bb
}

// SetEnPassantTarget records the en passant target square.
func (bb *Builder) SetEnPassantTarget(vulnerable Color, coord Coord) *Builder {
	bb.enPassant = EnPassantState{Present: true, Coord: coord, VulnerableColor: vulnerable}
	return bb
}

// SetHalfMoveClock sets the half-move clock.
func (bb *Builder) SetHalfMoveClock(n int) *Builder {
	bb.halfMoveClock = n
	return bb
}

// SetFullMoveNumber sets the full-move counter.
func (bb *Builder) SetFullMoveNumber(n int) *Builder {
	bb.fullMoveNumber = n
	return bb
}

// Build validates the accumulated configuration and constructs a
// Board, recomputing Code, Material, and Position from scratch. It
// returns ErrBoardBuilder if the configuration is contradictory:
// missing or duplicated kings, or a pawn on the first or last rank
// (spec.md §3 I1/I2).
func (bb *Builder) Build() (*Board, error) {
	b := &Board{
		ActiveColor:         bb.activeColor,
		CastlingEligibility: bb.castlingEligibility,
		EnPassantTarget:     bb.enPassant,
		HalfMoveClock:       bb.halfMoveClock,
		FullMoveNumber:      bb.fullMoveNumber,
	}

	kingCount := [NumPlayers]int{}
	for _, sq := range AllCoords() {
		cp := bb.squares[sq]
		if cp.IsEmpty() {
			continue
		}
		if cp.Piece() == Pawn && (sq.Row() == FirstRow || sq.Row() == LastRow) {
			return nil, fmt.Errorf("%w: pawn on back rank at %s", ErrBoardBuilder, sq)
		}
		if cp.Piece() == King {
			kingCount[cp.Color().Index()]++
			b.KingPosition[cp.Color().Index()] = sq
		}
		b.placePiece(sq, cp)
	}

	for _, c := range []Color{White, Black} {
		if kingCount[c.Index()] != 1 {
			return nil, fmt.Errorf("%w: %s has %d kings, expected exactly 1", ErrBoardBuilder, c, kingCount[c.Index()])
		}
	}

	b.Code.SetCurrentTurn(b.ActiveColor)
	b.Code.SetCastleState(White, b.CastlingEligibility[White.Index()])
	b.Code.SetCastleState(Black, b.CastlingEligibility[Black.Index()])
	if b.EnPassantTarget.Present {
		b.Code.SetEnPassantTarget(b.EnPassantTarget.VulnerableColor, b.EnPassantTarget.Coord)
	}

	return b, nil
}

// NewDefaultBoard returns the standard chess starting position.
func NewDefaultBoard() *Board {
	bb := NewBuilder()
	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, p := range backRank {
		bb.SetPiece(NewCoord(FirstRow, col), NewColoredPiece(Black, p))
		bb.SetPiece(NewCoord(LastRow, col), NewColoredPiece(White, p))
	}
	for col := 0; col < NumColumns; col++ {
		bb.SetPiece(NewCoord(1, col), NewColoredPiece(Black, Pawn))
		bb.SetPiece(NewCoord(6, col), NewColoredPiece(White, Pawn))
	}
	b, err := bb.Build()
	if err != nil {
		// The default position is fixed and always valid; a failure
		// here means the builder itself is broken.
		panic(fmt.Sprintf("board: default position failed to build: %v", err))
	}
	return b
}
