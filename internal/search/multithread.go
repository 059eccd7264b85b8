package search

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/9vvalkyrie/chesscore/internal/board"
	"github.com/9vvalkyrie/chesscore/internal/transposition"
)

// depthCounter hands out the next depth in the iterative-deepening
// schedule to whichever worker asks for it, guarded by a mutex
// (spec.md §4.K "a monotonically increasing counter ... guarded by a
// mutex").
type depthCounter struct {
	mu   sync.Mutex
	next int
}

func (d *depthCounter) take() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	depth := d.next
	d.next = nextDepth(d.next)
	return depth
}

// MultiSearchResult is the outcome of a multi-threaded search: the
// deepest completed result across all workers, and how many workers
// contributed at least one completed iteration.
type MultiSearchResult struct {
	Result
	WorkersCompleted int
}

// MultiSearch spawns workerCount workers (typically runtime.NumCPU())
// that each run an independent search loop over their own clone of
// board/history/table, starting from a shared, mutex-guarded depth
// counter, until the timer fires or is cancelled (spec.md §4.K). The
// deepest completed result across all workers wins. Workers are
// joined through an errgroup.Group, whose first non-nil error is
// returned; the workers here always return nil, and a panic inside a
// worker is not recovered. A worker that finds a checkmate cancels the
// shared timer so its siblings wind down early.
func MultiSearch(b *board.Board, h *board.History, who board.Color, timer *MoveTimer, workerCount int, maxDepth int, tableCapacity int) (MultiSearchResult, error) {
	if workerCount < 1 {
		workerCount = 1
	}

	counter := &depthCounter{}
	results := make([]Result, workerCount)

	var g errgroup.Group
	for i := 0; i < workerCount; i++ {
		idx := i
		g.Go(func() error {
			workerBoard := b.Clone()
			workerHistory := board.NewWorkerHistory(h)
			workerTable := transposition.New(tableCapacity)
			worker := NewSearcher(workerBoard, workerHistory, workerTable, timer)

			var best Result
			for {
				if timer.ShouldStop() {
					break
				}
				depth := counter.take()
				if depth > maxDepth {
					break
				}
				worker.totalDepth = depth
				score, move, pv, stopped := worker.search(who, depth, -board.InitialAlpha, board.InitialAlpha)
				if stopped {
					break
				}
				best = Result{BestMove: move, Score: score, Depth: depth, PV: pv.Prepend(move)}
				if board.IsCheckmateScore(score) {
					timer.Cancel()
					break
				}
			}
			results[idx] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return MultiSearchResult{}, err
	}

	return pickDeepest(results), nil
}

func pickDeepest(results []Result) MultiSearchResult {
	var out MultiSearchResult
	for _, r := range results {
		if r.BestMove == 0 && r.Depth == 0 {
			continue
		}
		out.WorkersCompleted++
		if r.Depth > out.Depth {
			out.Result = r
		}
	}
	return out
}
