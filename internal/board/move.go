package board

import (
	"fmt"
	"strings"
)

// MoveCategory distinguishes the handful of move shapes that need
// special make/unmake treatment.
type MoveCategory uint8

const (
	// CategoryDefault covers ordinary non-capturing moves. A Default
	// move landing on an occupied square is accepted defensively by
	// Board.MakeMove (upgraded to a capture) but the generator never
	// produces one; see the open question in spec.md §9.
	CategoryDefault MoveCategory = iota
	CategoryNormalCapturing
	CategoryEnPassant
	CategoryCastling
)

// Move is an immutable packed 32-bit value: source coord, destination
// coord, promoted piece (with color bit), and category, one byte
// each. Equality is by packed value, so Move values compare with ==.
type Move uint32

const (
	moveFromShift     = 0
	moveToShift       = 8
	movePromoShift    = 16
	moveCategoryShift = 24
)

func newMove(from, to Coord, promoted ColoredPiece, category MoveCategory) Move {
	return Move(uint32(from)<<moveFromShift |
		uint32(to)<<moveToShift |
		uint32(promoted)<<movePromoShift |
		uint32(category)<<moveCategoryShift)
}

// NewMove builds an ordinary (non-capturing or defensively-upgraded)
// move between two squares.
func NewMove(from, to Coord) Move {
	return newMove(from, to, PieceAndColorNone, CategoryDefault)
}

// NewCapturingMove builds a normal capture.
func NewCapturingMove(from, to Coord) Move {
	return newMove(from, to, PieceAndColorNone, CategoryNormalCapturing)
}

// NewEnPassantMove builds an en passant capture.
func NewEnPassantMove(from, to Coord) Move {
	return newMove(from, to, PieceAndColorNone, CategoryEnPassant)
}

// NewCastlingMove builds a castling move; from/to are the king's
// source and destination squares.
func NewCastlingMove(from, to Coord) Move {
	return newMove(from, to, PieceAndColorNone, CategoryCastling)
}

// WithPromotion returns a copy of m promoting to the given piece,
// colored for who is moving.
func (m Move) WithPromotion(who Color, promoted Piece) Move {
	return newMove(m.From(), m.To(), NewColoredPiece(who, promoted), m.Category())
}

// From returns the source square.
func (m Move) From() Coord {
	return Coord(m >> moveFromShift & 0xFF)
}

// To returns the destination square.
func (m Move) To() Coord {
	return Coord(m >> moveToShift & 0xFF)
}

// PromotedPiece returns the promoted piece, or PieceAndColorNone if
// this is not a promotion.
func (m Move) PromotedPiece() ColoredPiece {
	return ColoredPiece(m >> movePromoShift & 0xFF)
}

// IsPromoting reports whether this move promotes a pawn.
func (m Move) IsPromoting() bool {
	return m.PromotedPiece() != PieceAndColorNone
}

// Category returns the move's category.
func (m Move) Category() MoveCategory {
	return MoveCategory(m >> moveCategoryShift & 0xFF)
}

// IsCapturing reports whether this move is tagged as any kind of
// capture (normal or en passant).
func (m Move) IsCapturing() bool {
	return m.Category() == CategoryNormalCapturing || m.Category() == CategoryEnPassant
}

// IsCastling reports whether this move is a castling move.
func (m Move) IsCastling() bool {
	return m.Category() == CategoryCastling
}

// String renders the move in the coordinate form accepted by
// ParseMove, e.g. "e2 e4", "e5 d6 ep", "a7 a8(Q)", or "O-O"/"O-O-O"
// for castling.
func (m Move) String() string {
	if m.IsCastling() {
		if m.To().Column() == KingsideCastledKingColumn {
			return "O-O"
		}
		return "O-O-O"
	}

	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteByte(' ')
	b.WriteString(m.To().String())
	if m.Category() == CategoryEnPassant {
		b.WriteString(" ep")
	}
	if m.IsPromoting() {
		fmt.Fprintf(&b, "(%s)", m.PromotedPiece().Piece().String())
	}
	return b.String()
}

// ParseMove parses the §6 grammar:
//
//	MOVE   ::= CASTLE | PLAIN
//	CASTLE ::= "O-O" | "O-O-O"
//	PLAIN  ::= COORD ("x" | " ")? COORD (" ep")? ("(" PIECE ")")?
//
// Castling text requires who, the color castling, since "O-O" alone
// does not name a square. who is ignored for PLAIN moves.
func ParseMove(text string, who Color) (Move, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(text))
	switch trimmed {
	case "O-O":
		return castlingMoveFor(who, true), nil
	case "O-O-O":
		return castlingMoveFor(who, false), nil
	}

	return parsePlainMove(text, who)
}

func castlingMoveFor(who Color, kingside bool) Move {
	row := castlingRowFor(who)
	from := NewCoord(row, KingColumn)
	toCol := QueensideCastledKingColumn
	if kingside {
		toCol = KingsideCastledKingColumn
	}
	return NewCastlingMove(from, NewCoord(row, toCol))
}

// castlingRowFor returns the back-rank row for who: row 7 for White
// (rank 1), row 0 for Black (rank 8).
func castlingRowFor(who Color) int {
	if who == White {
		return LastRow
	}
	return FirstRow
}

func parsePlainMove(text string, who Color) (Move, error) {
	// Strip whitespace and an optional 'x' capture marker between the
	// two coordinates so "e2 e4", "e2e4", and "e2xe4" all parse.
	noSpace := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, text)

	lower := strings.ToLower(noSpace)

	isEnPassant := strings.HasSuffix(lower, "ep")
	if isEnPassant {
		lower = strings.TrimSuffix(lower, "ep")
	}

	var promo Piece
	if idx := strings.IndexByte(lower, '('); idx >= 0 {
		if !strings.HasSuffix(lower, ")") {
			return 0, fmt.Errorf("%w: unterminated promotion in %q", ErrParseMove, text)
		}
		promoChar := lower[idx+1 : len(lower)-1]
		p, err := parsePromotionPiece(promoChar)
		if err != nil {
			return 0, err
		}
		promo = p
		lower = lower[:idx]
	}

	lower = strings.Replace(lower, "x", "", 1)

	if len(lower) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrParseMove, text)
	}

	from, err := ParseCoord(lower[0:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParseMove, text)
	}
	to, err := ParseCoord(lower[2:4])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParseMove, text)
	}

	var mv Move
	switch {
	case isEnPassant:
		mv = NewEnPassantMove(from, to)
	default:
		mv = NewMove(from, to)
	}

	if promo != PieceNone {
		mv = newMove(mv.From(), mv.To(), NewColoredPiece(who, promo), mv.Category())
	}

	return mv, nil
}

func parsePromotionPiece(s string) (Piece, error) {
	switch strings.ToUpper(s) {
	case "Q":
		return Queen, nil
	case "R":
		return Rook, nil
	case "B":
		return Bishop, nil
	case "N":
		return Knight, nil
	default:
		return PieceNone, fmt.Errorf("%w: invalid promotion piece %q", ErrParseMove, s)
	}
}
