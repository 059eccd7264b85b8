package game

import "github.com/9vvalkyrie/chesscore/internal/board"

// Status is the closed set of game outcomes Game.Status can compute,
// per spec.md §4.L. It subsumes ordinary play, the two forced
// (no-claim-needed) draws, the two claimable draws with their
// reached/accepted variants, and insufficient material.
type Status int

const (
	Playing Status = iota
	Checkmate
	Stalemate

	ThreefoldRepetitionReached
	ThreefoldRepetitionAccepted

	FivefoldRepetitionDraw

	FiftyMovesWithoutProgressReached
	FiftyMovesWithoutProgressAccepted

	SeventyFiveMovesWithoutProgressDraw

	InsufficientMaterialDraw
)

// String names the status, for log lines; human-facing status text
// is an external collaborator's responsibility per spec.md §6.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case ThreefoldRepetitionReached:
		return "threefold_repetition_reached"
	case ThreefoldRepetitionAccepted:
		return "threefold_repetition_accepted"
	case FivefoldRepetitionDraw:
		return "fivefold_repetition_draw"
	case FiftyMovesWithoutProgressReached:
		return "fifty_moves_without_progress_reached"
	case FiftyMovesWithoutProgressAccepted:
		return "fifty_moves_without_progress_accepted"
	case SeventyFiveMovesWithoutProgressDraw:
		return "seventy_five_moves_without_progress_draw"
	case InsufficientMaterialDraw:
		return "insufficient_material_draw"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether s ends the game — every variant except
// Playing and the two "reached" (offered, not yet answered) claim
// states.
func (s Status) IsTerminal() bool {
	switch s {
	case Playing, ThreefoldRepetitionReached, FiftyMovesWithoutProgressReached:
		return false
	default:
		return true
	}
}

// DrawKind names which of the two claimable draw conditions an
// accept/decline call answers.
type DrawKind int

const (
	RepetitionDraw DrawKind = iota
	NoProgressDraw
)

// Status computes the current game outcome by checking, in order:
// forced draws (fivefold repetition, seventy-five-move rule,
// insufficient material — none require a claim), then the offered-
// and-answered claimable draws, then checkmate/stalemate by legal
// move count, then the two claimable thresholds freshly reached, and
// finally ordinary play (spec.md §4.L).
func (g *Game) Status() Status {
	who := g.board.ActiveColor

	repeatCount := g.history.IsProbablyNthRepetition(g.board.Code)
	if repeatCount >= board.FivefoldRepetitionCount {
		return FivefoldRepetitionDraw
	}
	if g.board.HalfMoveClock >= board.SeventyFiveMoveThreshold {
		return SeventyFiveMovesWithoutProgressDraw
	}
	if board.InsufficientMaterial(g.board) {
		return InsufficientMaterialDraw
	}

	if g.history.RepetitionClaimStatus() == board.DrawClaimAccepted {
		return ThreefoldRepetitionAccepted
	}
	if g.history.NoProgressClaimStatus() == board.DrawClaimAccepted {
		return FiftyMovesWithoutProgressAccepted
	}

	var legal board.MoveList
	board.GenerateLegalMoves(g.board, &legal)
	if legal.Len() == 0 {
		if board.InCheck(g.board, who) {
			return Checkmate
		}
		return Stalemate
	}

	if repeatCount >= g.history.RepetitionThreshold() && g.history.RepetitionClaimStatus() == board.DrawClaimNone {
		return ThreefoldRepetitionReached
	}
	if g.board.HalfMoveClock >= g.history.NoProgressThreshold() && g.history.NoProgressClaimStatus() == board.DrawClaimNone {
		return FiftyMovesWithoutProgressReached
	}

	return Playing
}

// AnswerDraw records who's accept/decline response to a claimable
// draw of the given kind (spec.md §4.L). Declining a threefold-
// repetition claim raises its threshold to five occurrences; declining
// a fifty-move claim raises its threshold to 150 half-moves, the
// seventy-five-move rule (spec.md §4.H).
func (g *Game) AnswerDraw(kind DrawKind, accept bool) {
	status := board.DrawClaimDeclined
	if accept {
		status = board.DrawClaimAccepted
	}
	switch kind {
	case RepetitionDraw:
		g.history.SetRepetitionClaimStatus(status)
	case NoProgressDraw:
		g.history.SetNoProgressClaimStatus(status)
	}
	g.log.Infow("draw answered", "kind", kind, "accepted", accept)
}
