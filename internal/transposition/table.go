// Package transposition implements the bounded LRU cache of search
// results keyed by a position's Board Code hash.
package transposition

import (
	"container/list"

	"github.com/9vvalkyrie/chesscore/internal/board"
)

// DefaultCapacity is the default entry ceiling, matching spec.md
// §4.I's "approximately 100,000".
const DefaultCapacity = 100_000

// Entry is one stored search result, scored from the perspective of
// the side to move at the position it was computed for (spec.md §4.I).
type Entry struct {
	Hash          uint64
	Score         int
	DepthSearched int
	BestMove      board.Move
}

// Table is a bounded LRU map from a Board Code's 48-bit hash to the
// most recently stored Entry for that hash. It is not safe for
// concurrent use: spec.md §5 confines one Table to one search worker.
//
// An entry's Score is stored from the perspective of whoever was to
// move at the position searched; Lookup flips the sign when the
// caller's requested perspective differs.
type Table struct {
	capacity int
	order    *list.List // front = most recently used
	index    map[uint64]*list.Element
}

type tableNode struct {
	entry     Entry
	storedFor board.Color
}

// New returns an empty Table bounded at capacity entries.
func New(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[uint64]*list.Element, capacity),
	}
}

// Lookup returns the entry stored for hash and reports whether one
// exists. On a hit the entry moves to the front of the LRU order, and
// its score is negated if who differs from the color the entry was
// originally stored for (spec.md §4.I).
func (t *Table) Lookup(hash uint64, who board.Color) (Entry, bool) {
	el, ok := t.index[hash]
	if !ok {
		return Entry{}, false
	}
	t.order.MoveToFront(el)
	node := el.Value.(*tableNode)
	result := node.entry
	if node.storedFor != who {
		result.Score = -result.Score
	}
	return result, true
}

// Add stores entry, scored from who's perspective, inserting at the
// front of the LRU order. A collision on entry.Hash replaces the
// existing record in place rather than duplicating it. Once the table
// is at capacity, the least recently used entry is evicted.
func (t *Table) Add(entry Entry, who board.Color) {
	if el, ok := t.index[entry.Hash]; ok {
		el.Value.(*tableNode).entry = entry
		el.Value.(*tableNode).storedFor = who
		t.order.MoveToFront(el)
		return
	}

	el := t.order.PushFront(&tableNode{entry: entry, storedFor: who})
	t.index[entry.Hash] = el

	if t.order.Len() > t.capacity {
		tail := t.order.Back()
		t.order.Remove(tail)
		delete(t.index, tail.Value.(*tableNode).entry.Hash)
	}
}

// Len returns the number of entries currently stored.
func (t *Table) Len() int {
	return t.order.Len()
}
