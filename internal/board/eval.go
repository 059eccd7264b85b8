package board

import "math"

// InitialAlpha is the starting alpha/beta bound for a fresh search:
// wide enough that no real evaluation or checkmate score reaches it
// (original_source global.hpp).
const InitialAlpha = math.MaxInt32 / 3

// MaxNonCheckmateScore bounds every score Evaluate can return for a
// non-terminal or drawn position; checkmate scores are constructed to
// always exceed it in absolute value, so callers can test
// abs(score) > MaxNonCheckmateScore to recognize a forced mate.
const MaxNonCheckmateScore = NumSquares * WeightQueen * max(MaterialScoreScale, PositionScoreScale)

// CheckmateScore returns the score assigned to a position from which
// checkmate is movesAway half-moves distant: closer mates score
// higher so the search prefers the fastest forced win (spec.md §4.G).
func CheckmateScore(movesAway int) int {
	return MaxNonCheckmateScore + MaxNonCheckmateScore/(1+movesAway)
}

// IsCheckmateScore reports whether score could only have come from
// CheckmateScore (in either sign).
func IsCheckmateScore(score int) bool {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	return abs > MaxNonCheckmateScore && abs < InitialAlpha
}

// Evaluate scores the position from who's perspective (spec.md §4.G):
// scaled material and position differentials, castling bonuses and
// penalties, and checkmate scoring when legalMoves is empty. movesAway
// is the ply distance from the search root, used only to scale a
// checkmate score.
func Evaluate(b *Board, who Color, legalMoves int, movesAway int) int {
	if legalMoves == 0 {
		if InCheck(b, who) {
			return -CheckmateScore(movesAway)
		}
		opp := who.Invert()
		if InCheck(b, opp) {
			return CheckmateScore(movesAway)
		}
		return 0
	}

	opp := who.Invert()
	score := (b.Material[who.Index()]-b.Material[opp.Index()])*MaterialScoreScale +
		(b.Position[who.Index()]-b.Position[opp.Index()])*PositionScoreScale

	score += unableToCastlePenalty(b, opp) - unableToCastlePenalty(b, who)
	return score
}
