package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultBoard(t *testing.T) {
	b := NewDefaultBoard()
	assert.Equal(t, White, b.ActiveColor)
	assert.Equal(t, NewCoord(7, 4), b.KingPosition[White.Index()])
	assert.Equal(t, NewCoord(0, 4), b.KingPosition[Black.Index()])
	assert.Equal(t, CastlingBothEligible, b.CastlingEligibility[White.Index()])
}

func TestBuilderRejectsMissingKing(t *testing.T) {
	bb := NewBuilder()
	bb.SetPiece(NewCoord(7, 4), NewColoredPiece(White, King))
	// no Black king placed
	_, err := bb.Build()
	assert.ErrorIs(t, err, ErrBoardBuilder)
}

func TestBuilderRejectsDuplicateKing(t *testing.T) {
	bb := NewBuilder()
	bb.SetPiece(NewCoord(7, 4), NewColoredPiece(White, King))
	bb.SetPiece(NewCoord(6, 4), NewColoredPiece(White, King))
	bb.SetPiece(NewCoord(0, 4), NewColoredPiece(Black, King))
	_, err := bb.Build()
	assert.ErrorIs(t, err, ErrBoardBuilder)
}

func TestBuilderRejectsPawnOnBackRank(t *testing.T) {
	bb := NewBuilder()
	bb.SetPiece(NewCoord(7, 4), NewColoredPiece(White, King))
	bb.SetPiece(NewCoord(0, 4), NewColoredPiece(Black, King))
	bb.SetPiece(NewCoord(7, 0), NewColoredPiece(White, Pawn))
	_, err := bb.Build()
	assert.ErrorIs(t, err, ErrBoardBuilder)
}

func TestBuilderValidMinimalPosition(t *testing.T) {
	bb := NewBuilder()
	bb.SetPiece(NewCoord(7, 4), NewColoredPiece(White, King))
	bb.SetPiece(NewCoord(0, 4), NewColoredPiece(Black, King))
	b, err := bb.Build()
	require.NoError(t, err)
	assert.Equal(t, NewCoord(7, 4), b.KingPosition[White.Index()])
}
