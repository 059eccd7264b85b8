package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/9vvalkyrie/chesscore/internal/board"
)

func move(from, to board.Coord) board.Move {
	return board.NewMove(from, to)
}

func TestPVGlimpsePrependBuildsRootFirstOrder(t *testing.T) {
	var pv PVGlimpse
	m1 := move(board.NewCoord(6, 4), board.NewCoord(4, 4))
	m2 := move(board.NewCoord(1, 4), board.NewCoord(3, 4))

	pv = pv.Prepend(m2) // deepest move learned first as the stack unwinds
	pv = pv.Prepend(m1) // then the move leading to it
	assert.Equal(t, 2, pv.Len())
	assert.Equal(t, []board.Move{m1, m2}, pv.Moves())
}

func TestPVGlimpseDropsTailPastCapacity(t *testing.T) {
	var pv PVGlimpse
	for i := 0; i < pvGlimpseSize+3; i++ {
		pv = pv.Prepend(move(board.NewCoord(0, 0), board.Coord(i+1)))
	}
	assert.Equal(t, pvGlimpseSize, pv.Len())
}

func TestPVGlimpseEmpty(t *testing.T) {
	var pv PVGlimpse
	assert.Equal(t, 0, pv.Len())
	assert.Empty(t, pv.Moves())
}
