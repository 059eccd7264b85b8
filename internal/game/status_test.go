package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9vvalkyrie/chesscore/internal/board"
	"github.com/9vvalkyrie/chesscore/internal/config"
)

func TestStatusStringNamesEveryVariant(t *testing.T) {
	for s := Playing; s <= InsufficientMaterialDraw; s++ {
		assert.NotEqual(t, "unknown", s.String())
	}
	assert.Equal(t, "unknown", Status(999).String())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, Playing.IsTerminal())
	assert.False(t, ThreefoldRepetitionReached.IsTerminal())
	assert.False(t, FiftyMovesWithoutProgressReached.IsTerminal())
	assert.True(t, Checkmate.IsTerminal())
	assert.True(t, Stalemate.IsTerminal())
	assert.True(t, FivefoldRepetitionDraw.IsTerminal())
	assert.True(t, SeventyFiveMovesWithoutProgressDraw.IsTerminal())
	assert.True(t, InsufficientMaterialDraw.IsTerminal())
	assert.True(t, ThreefoldRepetitionAccepted.IsTerminal())
	assert.True(t, FiftyMovesWithoutProgressAccepted.IsTerminal())
}

func TestStatusPlayingAtGameStart(t *testing.T) {
	g := New(bothEngines(), config.DefaultEngineConfig())
	assert.Equal(t, Playing, g.Status())
}

func TestStatusCheckmate(t *testing.T) {
	g := New(bothEngines(), config.DefaultEngineConfig())
	moves := []string{"f2 f3", "e7 e5", "g2 g4", "d8 h4"}
	colors := []board.Color{board.White, board.Black, board.White, board.Black}
	for i, text := range moves {
		m, err := board.ParseMove(text, colors[i])
		require.NoError(t, err)
		g.board.MakeMove(colors[i], m)
		g.history.Push(m, g.board.Code)
	}
	assert.Equal(t, Checkmate, g.Status())
}

func TestStatusStalemate(t *testing.T) {
	g, err := NewFromFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1", bothEngines(), config.DefaultEngineConfig())
	require.NoError(t, err)
	assert.Equal(t, Stalemate, g.Status())
}

func TestStatusInsufficientMaterial(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1", bothEngines(), config.DefaultEngineConfig())
	require.NoError(t, err)
	assert.Equal(t, InsufficientMaterialDraw, g.Status())
}

func TestStatusSeventyFiveMoveForcedDraw(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/8/8/8/8/3RK3 w - - 150 1", bothEngines(), config.DefaultEngineConfig())
	require.NoError(t, err)
	assert.Equal(t, SeventyFiveMovesWithoutProgressDraw, g.Status())
}

func TestStatusFiftyMoveReachedThenAccepted(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/8/8/8/8/3RK3 w - - 100 1", bothEngines(), config.DefaultEngineConfig())
	require.NoError(t, err)
	assert.Equal(t, FiftyMovesWithoutProgressReached, g.Status())

	g.AnswerDraw(NoProgressDraw, true)
	assert.Equal(t, FiftyMovesWithoutProgressAccepted, g.Status())
}

func TestStatusFiftyMoveDeclinedRaisesThreshold(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/8/8/8/8/3RK3 w - - 100 1", bothEngines(), config.DefaultEngineConfig())
	require.NoError(t, err)
	g.AnswerDraw(NoProgressDraw, false)
	// Declining raises the threshold to 150, so the position no longer
	// reads as reached at 100 half-moves.
	assert.Equal(t, Playing, g.Status())
}

func TestStatusThreefoldRepetitionReachedThenAccepted(t *testing.T) {
	g := New(bothEngines(), config.DefaultEngineConfig())
	dummy := board.NewMove(board.NewCoord(7, 1), board.NewCoord(5, 2))
	// NewHistory already counts the start position once; two more
	// pushes of the same code bring the count to three.
	g.history.Push(dummy, g.board.Code)
	g.history.Push(dummy, g.board.Code)

	assert.Equal(t, ThreefoldRepetitionReached, g.Status())

	g.AnswerDraw(RepetitionDraw, true)
	assert.Equal(t, ThreefoldRepetitionAccepted, g.Status())
}

func TestStatusFivefoldRepetitionIsForced(t *testing.T) {
	g := New(bothEngines(), config.DefaultEngineConfig())
	dummy := board.NewMove(board.NewCoord(7, 1), board.NewCoord(5, 2))
	for i := 0; i < 4; i++ {
		g.history.Push(dummy, g.board.Code)
	}
	assert.Equal(t, FivefoldRepetitionDraw, g.Status())
}

func TestAnswerDrawRecordsStatusOnHistory(t *testing.T) {
	g := New(bothEngines(), config.DefaultEngineConfig())
	g.AnswerDraw(RepetitionDraw, false)
	assert.Equal(t, board.DrawClaimDeclined, g.history.RepetitionClaimStatus())
	g.AnswerDraw(NoProgressDraw, true)
	assert.Equal(t, board.DrawClaimAccepted, g.history.NoProgressClaimStatus())
}
