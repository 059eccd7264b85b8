// Package game aggregates a Board and History behind the single
// entry point external collaborators drive: play a move, ask the
// search for one, and read back the current status (spec.md §4.L).
package game

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/9vvalkyrie/chesscore/internal/board"
	"github.com/9vvalkyrie/chesscore/internal/config"
	"github.com/9vvalkyrie/chesscore/internal/obslog"
	"github.com/9vvalkyrie/chesscore/internal/search"
	"github.com/9vvalkyrie/chesscore/internal/transposition"
)

// PlayerKind names who drives a color's moves.
type PlayerKind int

const (
	Human PlayerKind = iota
	Engine
)

// ErrIllegalMove is returned by PlayMove when the supplied move is
// not among the current position's legal moves.
var ErrIllegalMove = errors.New("game: illegal move")

// Game owns a Board, a History, and a Player assignment per color
// (spec.md §4.L). It is single-owner; collaborators that need to
// cross a thread/UI boundary send clones, per spec.md §5.
type Game struct {
	board   *board.Board
	history *board.History
	players [2]PlayerKind
	cfg     config.EngineConfig
	log     *obslog.Logger
}

// New returns a Game from the standard starting position.
func New(players [2]PlayerKind, cfg config.EngineConfig) *Game {
	b := board.NewDefaultBoard()
	return &Game{
		board:   b,
		history: board.NewHistory(b.Code),
		players: players,
		cfg:     cfg,
		log:     obslog.Noop(),
	}
}

// NewFromFEN returns a Game seeded from a FEN position.
func NewFromFEN(fen string, players [2]PlayerKind, cfg config.EngineConfig) (*Game, error) {
	b, err := board.FromFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return &Game{
		board:   b,
		history: board.NewHistory(b.Code),
		players: players,
		cfg:     cfg,
		log:     obslog.Noop(),
	}, nil
}

// SetLogger replaces the no-op logger with l, used for draw/status
// transition messages at Debug/Info level.
func (g *Game) SetLogger(l *obslog.Logger) {
	g.log = l
}

// Turn returns the color to move.
func (g *Game) Turn() board.Color {
	return g.board.ActiveColor
}

// Board returns the live board; callers that need an isolated copy
// should clone it themselves.
func (g *Game) Board() *board.Board {
	return g.board
}

// History returns the live move history.
func (g *Game) History() *board.History {
	return g.history
}

// PlayerFor returns who is assigned to move who's pieces.
func (g *Game) PlayerFor(who board.Color) PlayerKind {
	return g.players[who.Index()]
}

// PlayMove validates move against the current position's legal moves
// and, if legal, applies it to the board and appends it to history.
// A MoveConsistencyError panic from the board layer is recovered here
// and reported as an error, since Game is the panic-class sentinel's
// boundary (spec.md §9).
func (g *Game) PlayMove(move board.Move) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if mce, ok := r.(*board.MoveConsistencyError); ok {
				err = fmt.Errorf("game: %w", mce)
				return
			}
			panic(r)
		}
	}()

	var legal board.MoveList
	board.GenerateLegalMoves(g.board, &legal)
	matched, found := matchLegalMove(&legal, move)
	if !found {
		return fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}

	who := g.board.ActiveColor
	g.board.MakeMove(who, matched)
	g.history.Push(matched, g.board.Code)
	g.log.Debugw("move played", "move", move.String(), "by", who.String())
	return nil
}

// matchLegalMove finds the entry in legal matching move's From/To/
// promoted piece, ignoring category: callers such as ParseMove tag an
// ordinary capture CategoryDefault (it only strips the "x"), while
// GenerateLegalMoves tags the same capture CategoryNormalCapturing, so
// comparing raw packed values would reject every legal capture entered
// through the §6 grammar. The legal list's own entry is returned so
// the board sees the category (and, for castling/en passant, shape)
// the generator actually produced.
func matchLegalMove(legal *board.MoveList, move board.Move) (board.Move, bool) {
	for i := 0; i < legal.Len(); i++ {
		candidate := legal.At(i)
		if candidate.From() == move.From() && candidate.To() == move.To() && candidate.PromotedPiece() == move.PromotedPiece() {
			return candidate, true
		}
	}
	return 0, false
}

// BestMove asks a single-threaded iteratively-deepened search for
// who's best move in the current position, bounded by g's configured
// max depth and a timer built from MaxSearchSeconds.
func (g *Game) BestMove(who board.Color) search.Result {
	timer := search.NewMoveTimer(time.Duration(g.cfg.MaxSearchSeconds) * time.Second)
	table := transposition.New(g.cfg.TableCapacity)
	searcher := search.NewSearcher(g.board.Clone(), board.NewWorkerHistory(g.history), table, timer)
	searcher.SetLogger(g.log)
	return searcher.IterativelyDeepen(who, g.cfg.MaxDepth)
}

// BestMoveParallel is BestMove's multi-threaded sibling, fanning the
// search out across g.cfg.WorkerCount workers (0 means
// runtime.NumCPU()) per spec.md §4.K.
func (g *Game) BestMoveParallel(who board.Color) (search.MultiSearchResult, error) {
	workers := g.cfg.WorkerCount
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	timer := search.NewMoveTimer(time.Duration(g.cfg.MaxSearchSeconds) * time.Second)
	return search.MultiSearch(g.board, g.history, who, timer, workers, g.cfg.MaxDepth, g.cfg.TableCapacity)
}

// ShouldAcceptDraw reports whether who should accept an offered draw
// given score, who's own static evaluation of the current position:
// true when score is at or below the configured minimum, i.e. who is
// down by more than roughly a pawn (spec.md §5 supplement,
// original_source Game::computer_wants_draw).
func (g *Game) ShouldAcceptDraw(who board.Color, score int) bool {
	_ = who
	return score <= g.cfg.MinDrawScore
}
