package search

import "github.com/9vvalkyrie/chesscore/internal/board"

// pvGlimpseSize bounds the ring buffer of principal-variation moves
// kept per result, a "short ring buffer of the last few moves of the
// principal line" per spec.md §4.J.
const pvGlimpseSize = 6

// PVGlimpse is a small fixed-capacity buffer of the root-most moves
// of a principal variation, cheapest to carry alongside a Result since
// it never grows unbounded with search depth.
type PVGlimpse struct {
	moves [pvGlimpseSize]board.Move
	len   int
}

// Prepend adds move to the front of the glimpse, as each stack frame
// of the search unwinds and learns one more ply of the line leading
// to its child's result. Moves beyond pvGlimpseSize fall off the
// tail.
func (p PVGlimpse) Prepend(move board.Move) PVGlimpse {
	n := p.len
	if n < pvGlimpseSize {
		n++
	}
	var out PVGlimpse
	out.len = n
	out.moves[0] = move
	for i := 1; i < n; i++ {
		out.moves[i] = p.moves[i-1]
	}
	return out
}

// Moves returns the glimpse's moves, root-most first.
func (p PVGlimpse) Moves() []board.Move {
	return p.moves[:p.len]
}

// Len reports how many moves the glimpse holds.
func (p PVGlimpse) Len() int {
	return p.len
}
