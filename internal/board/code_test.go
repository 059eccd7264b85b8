package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeFromBoardMatchesIncremental(t *testing.T) {
	b := NewDefaultBoard()
	recomputed := CodeFromBoard(b)
	assert.Equal(t, b.Code.Value(), recomputed.Value())
}

func TestCodeTurnBitRoundTrip(t *testing.T) {
	var c Code
	c.SetCurrentTurn(White)
	assert.Equal(t, White, c.CurrentTurn())
	c.SetCurrentTurn(Black)
	assert.Equal(t, Black, c.CurrentTurn())
}

func TestCodeEnPassantFieldDoesNotLeakAcrossColors(t *testing.T) {
	var c Code
	c.SetEnPassantTarget(White, NewCoord(5, 3))
	before := c.Value()
	c.ClearEnPassantTarget()
	c.SetEnPassantTarget(Black, NewCoord(2, 6))
	after := c.Value()
	assert.NotEqual(t, before, after)
}

func TestCodeAddRemovePieceIsSelfInverse(t *testing.T) {
	var c Code
	base := c.Value()
	p := NewColoredPiece(White, Knight)
	sq := NewCoord(3, 3)
	c.AddPiece(sq, p)
	assert.NotEqual(t, base, c.Value())
	c.RemovePiece(sq, p)
	assert.Equal(t, base, c.Value())
}

func TestCodeHighHashIgnoresMetadata(t *testing.T) {
	var a, b Code
	p := NewColoredPiece(White, Pawn)
	sq := NewCoord(4, 4)
	a.AddPiece(sq, p)
	b.AddPiece(sq, p)
	a.SetCurrentTurn(White)
	b.SetCurrentTurn(Black)
	assert.Equal(t, a.HighHash(), b.HighHash())
	assert.NotEqual(t, a.Value(), b.Value())
}
