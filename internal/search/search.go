// Package search implements alpha-beta negamax with iterative
// deepening over the position types in internal/board, backed by a
// bounded transposition cache.
package search

import (
	"github.com/9vvalkyrie/chesscore/internal/board"
	"github.com/9vvalkyrie/chesscore/internal/obslog"
	"github.com/9vvalkyrie/chesscore/internal/transposition"
)

// Result is what one completed iteration of iterative deepening
// returns: a best move, its score from the searching side's
// perspective, the depth actually completed, and a short glimpse of
// the principal variation (spec.md §4.J step 4).
type Result struct {
	BestMove board.Move
	Score    int
	Depth    int
	PV       PVGlimpse
	Stopped  bool
}

// Searcher runs negamax alpha-beta search against one Board/History/
// Table triple. It is not safe for concurrent use; MultiSearch gives
// each worker its own Searcher over its own cloned state (spec.md §5).
type Searcher struct {
	b          *board.Board
	history    *board.History
	table      *transposition.Table
	timer      *MoveTimer
	gate       iterationGate
	totalDepth int
	log        *obslog.Logger
}

// NewSearcher returns a Searcher over b, h, and table, observing
// timer for cancellation/timeout. Progress is logged through a no-op
// logger until SetLogger installs a real one.
func NewSearcher(b *board.Board, h *board.History, table *transposition.Table, timer *MoveTimer) *Searcher {
	return &Searcher{b: b, history: h, table: table, timer: timer, log: obslog.Noop()}
}

// SetLogger replaces the no-op logger with l, used for one Debug line
// per completed iterative-deepening depth.
func (s *Searcher) SetLogger(l *obslog.Logger) {
	s.log = l
}

// nextDepth advances the iterative-deepening schedule: 0, 1, 3, 5,
// 7, ... (spec.md §4.J).
func nextDepth(d int) int {
	switch d {
	case 0:
		return 1
	case 1:
		return 3
	default:
		return d + 2
	}
}

// IterativelyDeepen runs searches at depths 0, 1, 3, 5, 7, ... up to
// maxDepth for who, stopping when the timer fires, the caller
// cancels, or a checkmating score is found, and returns the last
// fully-completed iteration's result (spec.md §4.J).
func (s *Searcher) IterativelyDeepen(who board.Color, maxDepth int) Result {
	var best Result
	for depth := 0; depth <= maxDepth; depth = nextDepth(depth) {
		if s.timer.ShouldStop() {
			break
		}
		s.totalDepth = depth
		score, move, pv, stopped := s.search(who, depth, -board.InitialAlpha, board.InitialAlpha)
		if stopped {
			break
		}
		best = Result{BestMove: move, Score: score, Depth: depth, PV: pv.Prepend(move)}
		s.log.Debugw("iteration complete", "depth", depth, "score", score, "move", move.String())
		if board.IsCheckmateScore(score) {
			break
		}
	}
	return best
}

// search implements spec.md §4.J's negamax node: generate legal
// moves, return a terminal result if there are none, otherwise make
// each move in order, evaluate or recurse per the depth/transposition
// rules, and track the best score under alpha-beta pruning.
func (s *Searcher) search(who board.Color, depth, alpha, beta int) (score int, best board.Move, pv PVGlimpse, stopped bool) {
	var legal board.MoveList
	board.GenerateLegalMoves(s.b, &legal)

	if legal.Len() == 0 {
		terminal := board.Evaluate(s.b, who, 0, s.totalDepth-depth)
		s.table.Add(transposition.Entry{
			Hash:          s.b.Code.HighHash(),
			Score:         terminal,
			DepthSearched: depth,
		}, who)
		return terminal, 0, PVGlimpse{}, false
	}

	bestScore := -board.InitialAlpha - 1
	var bestMove board.Move
	var bestPV PVGlimpse

	for i := 0; i < legal.Len(); i++ {
		if s.gate.tick(s.timer) {
			return 0, 0, PVGlimpse{}, true
		}

		move := legal.At(i)
		undo := s.b.MakeMove(who, move)
		s.history.PushTentative(s.b.Code)
		childHash := s.b.Code.HighHash()
		opp := who.Invert()

		// scoreForOpp is always oriented to opp's perspective (the side
		// now to move); scoreForWho negates it back to who's, the
		// perspective this node's own best-score tracking uses.
		var scoreForOpp int
		var childPV PVGlimpse
		var childBest board.Move
		var childStopped bool

		switch {
		case depth <= 0:
			scoreForOpp = s.evaluateLeaf(opp)
		default:
			if entry, ok := s.table.Lookup(childHash, opp); ok && entry.DepthSearched >= depth-1 {
				scoreForOpp = entry.Score
				childBest = entry.BestMove
			} else {
				scoreForOpp, childBest, childPV, childStopped = s.search(opp, depth-1, -beta, -alpha)
			}
		}

		s.history.PopTentative()
		s.b.TakeBack(who, move, undo)

		if childStopped {
			return 0, 0, PVGlimpse{}, true
		}

		// Only an exact child score is stored: one strictly inside the
		// (-beta, -alpha) window the child was searched with. A score at
		// or beyond either edge is only a bound.
		if depth <= 0 || (scoreForOpp > -beta && scoreForOpp < -alpha) {
			s.table.Add(transposition.Entry{
				Hash:          childHash,
				Score:         scoreForOpp,
				DepthSearched: maxInt(depth-1, 0),
				BestMove:      childBest,
			}, opp)
		}

		scoreForWho := -scoreForOpp
		if scoreForWho > bestScore {
			bestScore = scoreForWho
			bestMove = move
			bestPV = childPV.Prepend(move)
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}

	return bestScore, bestMove, bestPV, false
}

// evaluateLeaf statically scores the position reached at a search
// horizon (depth <= 0 in the parent that just made this move), from
// mover's perspective, applying the draw rules of spec.md §4.H before
// falling back to the normal material/position evaluation.
func (s *Searcher) evaluateLeaf(mover board.Color) int {
	if board.InsufficientMaterial(s.b) {
		return 0
	}
	if s.history.IsProbablyNthRepetition(s.b.Code) >= s.history.RepetitionThreshold() {
		return 0
	}
	if hasBeenXHalfMovesWithoutProgress(s.b, s.history.NoProgressThreshold()) {
		return 0
	}

	var legal board.MoveList
	board.GenerateLegalMoves(s.b, &legal)
	return board.Evaluate(s.b, mover, legal.Len(), 0)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func hasBeenXHalfMovesWithoutProgress(b *board.Board, x int) bool {
	return b.HalfMoveClock >= x
}
