package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perft counts leaf nodes of the legal move tree to depth, the
// standard move-generator correctness check (spec.md §8).
func perft(b *Board, depth int) int {
	if depth == 0 {
		return 1
	}
	var moves MoveList
	GenerateLegalMoves(b, &moves)
	if depth == 1 {
		return moves.Len()
	}
	nodes := 0
	who := b.ActiveColor
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		undo := b.MakeMove(who, m)
		nodes += perft(b, depth-1)
		b.TakeBack(who, m, undo)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	tests := []struct {
		depth int
		nodes int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tt := range tests {
		b := NewDefaultBoard()
		got := perft(b, tt.depth)
		assert.Equal(t, tt.nodes, got, "perft(%d)", tt.depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	// The well-known "kiwipete" position, heavy with captures,
	// castling, and promotions available at shallow depth.
	b, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 48, perft(b, 1))
	assert.Equal(t, 2039, perft(b, 2))
}

func TestPawnPromotionGeneratesAllFourPieces(t *testing.T) {
	b, err := FromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	var moves MoveList
	GenerateLegalMoves(b, &moves)

	seen := map[Piece]bool{}
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsPromoting() {
			seen[m.PromotedPiece().Piece()] = true
		}
	}
	for _, p := range []Piece{Queen, Rook, Bishop, Knight} {
		assert.True(t, seen[p], "missing promotion to %s", p)
	}
}

func TestEnPassantCaptureIsGenerated(t *testing.T) {
	b, err := FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	var moves MoveList
	GenerateLegalMoves(b, &moves)

	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).Category() == CategoryEnPassant {
			found = true
		}
	}
	assert.True(t, found, "expected an en passant capture among legal moves")
}

func TestCastlingBlockedWhileInCheck(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/4r3/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	var moves MoveList
	GenerateLegalMoves(b, &moves)

	for i := 0; i < moves.Len(); i++ {
		assert.False(t, moves.At(i).IsCastling(), "king in check may not castle")
	}
}

func TestCastlingBlockedWhenSquareAttacked(t *testing.T) {
	// Black rook on f4 attacks f1, the square White's king must pass
	// through to castle kingside.
	b, err := FromFEN("4k3/8/8/8/5r2/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	var moves MoveList
	GenerateLegalMoves(b, &moves)
	for i := 0; i < moves.Len(); i++ {
		assert.False(t, moves.At(i).IsCastling())
	}
}

func TestCastlingAvailableWhenClear(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	var moves MoveList
	GenerateLegalMoves(b, &moves)
	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).IsCastling() {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFoolsMateEndsInCheckmate(t *testing.T) {
	b := NewDefaultBoard()
	moves := []string{"f2 f3", "e7 e5", "g2 g4", "d8 h4"}
	colors := []Color{White, Black, White, Black}
	for i, text := range moves {
		m, err := ParseMove(text, colors[i])
		require.NoError(t, err)
		b.MakeMove(colors[i], m)
	}

	var legal MoveList
	GenerateLegalMoves(b, &legal)
	assert.Equal(t, 0, legal.Len())
	assert.True(t, InCheck(b, White))
}

func TestScholarsMateEndsInCheckmate(t *testing.T) {
	b := NewDefaultBoard()
	type ply struct {
		text string
		who  Color
	}
	plies := []ply{
		{"e2 e4", White}, {"e7 e5", Black},
		{"f1 c4", White}, {"b8 c6", Black},
		{"d1 h5", White}, {"g8 f6", Black},
		{"h5 f7", White},
	}
	for _, p := range plies {
		m, err := ParseMove(p.text, p.who)
		require.NoError(t, err)
		b.MakeMove(p.who, m)
	}

	var legal MoveList
	GenerateLegalMoves(b, &legal)
	assert.Equal(t, 0, legal.Len())
	assert.True(t, InCheck(b, Black))
}

func TestMoveOrderScoreRanksCapturesByVictimMinusAttacker(t *testing.T) {
	// White queen a1 can take the bishop on a8; White pawn c2 "takes"
	// the knight on a3 (square reachability doesn't matter here, only
	// the victim/aggressor weights at the two endpoints). Spec §4.E
	// rule 2 ranks captures by (victim - attacker) descending, so the
	// cheap pawn taking a knight must outrank the queen taking a
	// bishop, even though the queen's victim is worth more in
	// isolation.
	b, err := FromFEN("b3k3/8/8/8/8/n7/2P5/Q3K2N w - - 0 1")
	require.NoError(t, err)

	a1, _ := ParseCoord("a1")
	a8, _ := ParseCoord("a8")
	c2, _ := ParseCoord("c2")
	a3, _ := ParseCoord("a3")

	queenTakesBishop := NewCapturingMove(a1, a8)
	pawnTakesKnight := NewCapturingMove(c2, a3)

	assert.Greater(t, moveOrderScore(b, pawnTakesKnight), moveOrderScore(b, queenTakesBishop),
		"a cheap attacker taking a lesser victim should still outrank an expensive attacker taking a pricier one, per (victim - attacker)")
}

func TestMoveOrderScoreRanksSameVictimByCheaperAttacker(t *testing.T) {
	b, err := FromFEN("4k2q/8/8/8/8/8/2P5/Q3K2N w - - 0 1")
	require.NoError(t, err)

	h1, _ := ParseCoord("h1")
	h8, _ := ParseCoord("h8")
	c2, _ := ParseCoord("c2")

	knightTakesQueen := NewCapturingMove(h1, h8)
	pawnTakesQueen := NewCapturingMove(c2, h8)

	assert.Greater(t, moveOrderScore(b, pawnTakesQueen), moveOrderScore(b, knightTakesQueen),
		"capturing the same victim with a cheaper attacker should score higher")
}

func TestMoveOrderScoreRanksPromotionsByPromotedPieceWeight(t *testing.T) {
	b := NewDefaultBoard()
	from := NewCoord(1, 0)
	to := NewCoord(0, 0)
	base := NewMove(from, to)

	rook := base.WithPromotion(White, Rook)
	bishop := base.WithPromotion(White, Bishop)
	knight := base.WithPromotion(White, Knight)

	rookScore := moveOrderScore(b, rook)
	bishopScore := moveOrderScore(b, bishop)
	knightScore := moveOrderScore(b, knight)

	assert.Greater(t, rookScore, bishopScore, "rook promotion should outrank bishop promotion")
	assert.Greater(t, bishopScore, knightScore, "bishop promotion should outrank knight promotion")
}

func TestStalemateHasNoLegalMovesButNotInCheck(t *testing.T) {
	// Classic corner stalemate: Black king on h8 has every adjacent
	// square covered by White's king and queen, but is not itself
	// attacked.
	b, err := FromFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	var legal MoveList
	GenerateLegalMoves(b, &legal)
	assert.Equal(t, 0, legal.Len())
	assert.False(t, InCheck(b, Black))
}
