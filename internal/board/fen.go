package board

import (
	"fmt"
	"strconv"
	"strings"
)

// pieceLetters maps a piece kind to its FEN letter (White case); the
// inverse of parseFenPieceChar.
var pieceLetters = map[Piece]byte{
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

// FromFEN parses Forsyth-Edwards Notation into a Board (spec.md §6):
//
//	<pieces> <active> <castling> <ep> <halfmove> <fullmove>
//
// e.g. "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1".
func FromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: expected 6 space-separated fields, got %d", ErrFenParser, len(parts))
	}

	bb := NewBuilder()

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != NumRows {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrFenParser, len(ranks))
	}
	for row, rankStr := range ranks {
		col := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			if col > LastColumn {
				return nil, fmt.Errorf("%w: rank %d overflows 8 files", ErrFenParser, row+1)
			}
			cp, err := parseFenPieceChar(byte(ch))
			if err != nil {
				return nil, err
			}
			bb.SetPiece(NewCoord(row, col), cp)
			col++
		}
		if col != NumColumns {
			return nil, fmt.Errorf("%w: rank %d has %d files, expected 8", ErrFenParser, row+1, col)
		}
	}

	switch parts[1] {
	case "w":
		bb.SetActiveColor(White)
	case "b":
		bb.SetActiveColor(Black)
	default:
		return nil, fmt.Errorf("%w: invalid active color %q", ErrFenParser, parts[1])
	}

	whiteElig := CastlingBothIneligible
	blackElig := CastlingBothIneligible
	if parts[2] != "-" {
		for _, ch := range parts[2] {
			switch ch {
			case 'K':
				whiteElig &^= CastlingKingsideIneligible
			case 'Q':
				whiteElig &^= CastlingQueensideIneligible
			case 'k':
				blackElig &^= CastlingKingsideIneligible
			case 'q':
				blackElig &^= CastlingQueensideIneligible
			default:
				return nil, fmt.Errorf("%w: invalid castling character %q", ErrFenParser, string(ch))
			}
		}
	}
	bb.SetCastlingEligibility(White, whiteElig)
	bb.SetCastlingEligibility(Black, blackElig)

	if parts[3] != "-" {
		target, err := ParseCoord(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid en passant square %q", ErrFenParser, parts[3])
		}
		vulnerable := Black
		if target.Row() == BlackEnPassantRow {
			vulnerable = White
		}
		bb.SetEnPassantTarget(vulnerable, target)
	}

	halfMove, err := strconv.Atoi(parts[4])
	if err != nil || halfMove < 0 {
		return nil, fmt.Errorf("%w: invalid half-move clock %q", ErrFenParser, parts[4])
	}
	bb.SetHalfMoveClock(halfMove)

	fullMove, err := strconv.Atoi(parts[5])
	if err != nil || fullMove < 1 {
		return nil, fmt.Errorf("%w: invalid full-move number %q", ErrFenParser, parts[5])
	}
	bb.SetFullMoveNumber(fullMove)

	return bb.Build()
}

func parseFenPieceChar(ch byte) (ColoredPiece, error) {
	color := White
	upper := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
		upper = ch - 'a' + 'A'
	}
	for piece, letter := range pieceLetters {
		if letter == upper {
			return NewColoredPiece(color, piece), nil
		}
	}
	return PieceAndColorNone, fmt.Errorf("%w: invalid piece character %q", ErrFenParser, string(ch))
}

// ToFEN renders b in Forsyth-Edwards Notation.
func ToFEN(b *Board) string {
	var ranks [NumRows]string
	for row := 0; row < NumRows; row++ {
		var sb strings.Builder
		empty := 0
		for col := 0; col < NumColumns; col++ {
			cp := b.PieceAt(NewCoord(row, col))
			if cp.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := pieceLetters[cp.Piece()]
			if cp.Color() == Black {
				letter = letter - 'A' + 'a'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		ranks[row] = sb.String()
	}

	var sb strings.Builder
	for i, r := range ranks {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(r)
	}

	sb.WriteByte(' ')
	if b.ActiveColor == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := castlingLetters(b)
	sb.WriteString(castling)

	sb.WriteByte(' ')
	if b.EnPassantTarget.Present {
		sb.WriteString(b.EnPassantTarget.Coord.String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", b.HalfMoveClock, b.FullMoveNumber)
	return sb.String()
}

// castlingLetters renders the KQkq field, restricted to sides
// actually still eligible, in FEN's canonical order.
func castlingLetters(b *Board) string {
	var sb strings.Builder
	if b.CastlingEligibility[White.Index()]&CastlingKingsideIneligible == 0 {
		sb.WriteByte('K')
	}
	if b.CastlingEligibility[White.Index()]&CastlingQueensideIneligible == 0 {
		sb.WriteByte('Q')
	}
	if b.CastlingEligibility[Black.Index()]&CastlingKingsideIneligible == 0 {
		sb.WriteByte('k')
	}
	if b.CastlingEligibility[Black.Index()]&CastlingQueensideIneligible == 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
