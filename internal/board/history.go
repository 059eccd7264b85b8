package board

// DrawClaimStatus records whether a claimable draw condition has been
// offered and how the non-moving... the player entitled to claim it
// has responded, per spec.md §4.H/§4.L.
type DrawClaimStatus int

const (
	// DrawClaimNone means the condition hasn't been reached, or has
	// been reached but not yet offered.
	DrawClaimNone DrawClaimStatus = iota
	// DrawClaimAccepted means the draw was offered and accepted.
	DrawClaimAccepted
	// DrawClaimDeclined means the draw was offered and declined; per
	// spec.md §4.H this bumps the forcing thresholds (3→5 repetitions,
	// 100→150 half-moves).
	DrawClaimDeclined
)

// FiftyMoveThreshold and SeventyFiveMoveThreshold are half-move-clock
// thresholds for the claimable and forced no-progress draws.
const (
	FiftyMoveThreshold       = 100
	SeventyFiveMoveThreshold = 150
)

// ThreefoldRepetitionCount and FivefoldRepetitionCount are occurrence
// counts for the claimable and forced repetition draws.
const (
	ThreefoldRepetitionCount = 3
	FivefoldRepetitionCount  = 5
)

// History is the ordered record of a game's moves, the Board Code
// reached after each one, and the draw-claim status of the two
// no-progress/repetition conditions (spec.md §4.H). It also supports
// pushing and popping *tentative* codes during search without
// touching the real log.
type History struct {
	moves      []Move
	codes      []uint64 // Value() of the code reached after each move, full 64 bits
	tentative  []uint64
	repeat     DrawClaimStatus
	noProgress DrawClaimStatus
}

// NewHistory returns an empty history seeded with startCode, the code
// of the position before any move has been played.
func NewHistory(startCode Code) *History {
	h := &History{}
	h.codes = append(h.codes, startCode.Value())
	return h
}

// Push records move and the code of the position reached after
// playing it. Only called at the real (depth-0) move log, never
// during search's tentative exploration.
func (h *History) Push(move Move, resultingCode Code) {
	if h.TentativeDepth() != 0 {
		panicMoveConsistency("history: push to real log while tentative moves are pending")
	}
	h.moves = append(h.moves, move)
	h.codes = append(h.codes, resultingCode.Value())
}

// Pop removes the most recently pushed move and code, for use when a
// played move is taken back at the game level (not during search).
func (h *History) Pop() {
	if len(h.moves) == 0 {
		panicMoveConsistency("history: pop from empty move log")
	}
	if h.TentativeDepth() != 0 {
		panicMoveConsistency("history: pop from real log while tentative moves are pending")
	}
	h.moves = h.moves[:len(h.moves)-1]
	h.codes = h.codes[:len(h.codes)-1]
}

// Len returns the number of moves played.
func (h *History) Len() int {
	return len(h.moves)
}

// MoveAt returns the n'th played move.
func (h *History) MoveAt(n int) Move {
	return h.moves[n]
}

// NewWorkerHistory returns an independent History for one search
// worker, sharing h's real move/code log (so repetition and
// no-progress detection still sees the game as actually played) but
// starting with an empty tentative stack, since each worker explores
// its own line of tentative moves (spec.md §4.K).
func NewWorkerHistory(h *History) *History {
	w := &History{
		repeat:     h.repeat,
		noProgress: h.noProgress,
	}
	w.moves = append(w.moves, h.moves...)
	w.codes = append(w.codes, h.codes...)
	return w
}

// PushTentative records a code reached by search while exploring a
// line that hasn't been committed to the real log (spec.md §4.H).
// Search must pair every PushTentative with a PopTentative before
// returning from the node that pushed it.
func (h *History) PushTentative(code Code) {
	h.tentative = append(h.tentative, code.Value())
}

// PopTentative removes the most recently pushed tentative code.
func (h *History) PopTentative() {
	if len(h.tentative) == 0 {
		panicMoveConsistency("history: pop from empty tentative stack")
	}
	h.tentative = h.tentative[:len(h.tentative)-1]
}

// TentativeDepth returns how many tentative codes are currently
// pushed; zero means the real move log is the caller's only view.
func (h *History) TentativeDepth() int {
	return len(h.tentative)
}

// IsProbablyNthRepetition counts occurrences of code's full Value
// (placement plus turn/castling/en-passant metadata, per spec.md §4.B)
// across both the real log and any pushed tentative codes, without
// comparing full board state — a hash collision could overcount
// (spec.md §4.H).
func (h *History) IsProbablyNthRepetition(code Code) int {
	target := code.Value()
	count := 0
	for _, c := range h.codes {
		if c == target {
			count++
		}
	}
	for _, c := range h.tentative {
		if c == target {
			count++
		}
	}
	return count
}

// IsCertainlyNthRepetition additionally compares full board state
// across the supplied snapshots to rule out Code hash collisions; it
// is the slow, exact sibling of IsProbablyNthRepetition, used only
// when a repetition claim's correctness must be certain. snapshots is
// the full-state history the caller maintains in parallel to codes
// (Board has no pointers or slices, so == compares every field).
func (h *History) IsCertainlyNthRepetition(target *Board, snapshots []*Board) int {
	count := 0
	for _, snap := range snapshots {
		if *snap == *target {
			count++
		}
	}
	return count
}

// hasBeenXHalfMovesWithoutProgress reports whether board's half-move
// clock has reached x (spec.md §4.H).
func hasBeenXHalfMovesWithoutProgress(b *Board, x int) bool {
	return b.HalfMoveClock >= x
}

// RepetitionClaimStatus returns the stored threefold-repetition draw
// claim status.
func (h *History) RepetitionClaimStatus() DrawClaimStatus {
	return h.repeat
}

// SetRepetitionClaimStatus records an accept/decline response to a
// threefold-repetition offer.
func (h *History) SetRepetitionClaimStatus(status DrawClaimStatus) {
	h.repeat = status
}

// NoProgressClaimStatus returns the stored fifty-move draw claim
// status.
func (h *History) NoProgressClaimStatus() DrawClaimStatus {
	return h.noProgress
}

// SetNoProgressClaimStatus records an accept/decline response to a
// fifty-move offer.
func (h *History) SetNoProgressClaimStatus(status DrawClaimStatus) {
	h.noProgress = status
}

// RepetitionThreshold returns 5 if a prior repetition offer was
// declined, otherwise 3 (spec.md §4.H).
func (h *History) RepetitionThreshold() int {
	if h.repeat == DrawClaimDeclined {
		return FivefoldRepetitionCount
	}
	return ThreefoldRepetitionCount
}

// NoProgressThreshold returns 150 if a prior fifty-move offer was
// declined, otherwise 100 (spec.md §4.H).
func (h *History) NoProgressThreshold() int {
	if h.noProgress == DrawClaimDeclined {
		return SeventyFiveMoveThreshold
	}
	return FiftyMoveThreshold
}
