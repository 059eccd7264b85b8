package board

// MaxMoves bounds MoveList's backing array. No reachable chess
// position has more than a few dozen legal moves; 255 is the
// historical safe upper bound used by mailbox move generators and
// leaves one byte of header room per spec.md §4.D ("at most
// 256 - one word of header moves").
const MaxMoves = 255

// MoveList is a bounded, value-copyable buffer of moves. It avoids
// the heap allocation of a growing slice so that move generation
// inside the search's hot loop doesn't allocate.
type MoveList struct {
	moves [MaxMoves]Move
	len   int
}

// Push appends a move. It panics if the list is full, which would
// indicate either a bug in the generator or a corrupt position — no
// legal chess position approaches this bound.
func (l *MoveList) Push(m Move) {
	if l.len >= MaxMoves {
		panicMoveConsistency("move list overflow")
	}
	l.moves[l.len] = m
	l.len++
}

// Pop removes and returns the last move. It panics if the list is
// empty.
func (l *MoveList) Pop() Move {
	if l.len == 0 {
		panicMoveConsistency("pop from empty move list")
	}
	l.len--
	return l.moves[l.len]
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int {
	return l.len
}

// At returns the i'th move.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Set overwrites the i'th move, used by in-place sorts.
func (l *MoveList) Set(i int, m Move) {
	l.moves[i] = m
}

// Slice returns the stored moves as a plain slice, for callers that
// want to range over them. The returned slice aliases the list's
// backing array and is only valid until the list is mutated again.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.len]
}

// Contains reports whether m is present in the list.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.len; i++ {
		if l.moves[i] == m {
			return true
		}
	}
	return false
}
