package board

import "errors"

// Sentinel errors for the recoverable parse/build failures of
// spec.md §7. Callers match them with errors.Is; each is wrapped with
// fmt.Errorf("...: %w", ...) at the point of failure to carry the
// offending text.
var (
	// ErrCoordParse: algebraic text outside a1..h8.
	ErrCoordParse = errors.New("board: invalid square")

	// ErrBoardBuilder: invalid row/column, missing king, or
	// contradictory configuration passed to the Builder.
	ErrBoardBuilder = errors.New("board: invalid board configuration")

	// ErrParseMove: move text does not match the §6 grammar, or
	// castling text was supplied without a color.
	ErrParseMove = errors.New("board: invalid move text")

	// ErrFenParser: a FEN field is missing or ill-formed.
	ErrFenParser = errors.New("board: invalid FEN")

	// ErrPiece: an impossible piece value was decoded.
	ErrPiece = errors.New("board: invalid piece")
)

// MoveConsistencyError indicates an invariant was violated during
// make/unmake (e.g. castling was requested but neither king nor rook
// sit on the expected squares). It signals a bug in the core itself,
// not a malformed caller input, so it is raised as a panic value
// rather than threaded through ordinary error returns. Game is the
// only place that should recover it (spec.md §9).
type MoveConsistencyError struct {
	Reason string
}

func (e *MoveConsistencyError) Error() string {
	return "board: move consistency violation: " + e.Reason
}

// panicMoveConsistency raises a MoveConsistencyError.
func panicMoveConsistency(reason string) {
	panic(&MoveConsistencyError{Reason: reason})
}
