package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsufficientMaterialBareKings(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, InsufficientMaterial(b))
}

func TestInsufficientMaterialKingPlusKnight(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, InsufficientMaterial(b))
}

func TestInsufficientMaterialSameColorBishops(t *testing.T) {
	// c1 and g1 are the same color square: two same-colored bishops
	// can't force mate.
	b, err := FromFEN("4k3/8/8/8/8/8/8/2B3BK w - - 0 1")
	require.NoError(t, err)
	assert.True(t, InsufficientMaterial(b))
}

func TestOppositeColorBishopsAreSufficientMaterial(t *testing.T) {
	// c1 and d1 are opposite-colored squares: the bishop pair can
	// still force mate.
	b, err := FromFEN("4k3/8/8/8/8/8/8/2BB2K1 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, InsufficientMaterial(b))
}

func TestKnightAndBishopIsSufficientMaterial(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/2BNK3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, InsufficientMaterial(b))
}

func TestRookAlonePreventsInsufficientMaterial(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, InsufficientMaterial(b))
}

func TestUnableToCastlePenaltyZeroWhenEligible(t *testing.T) {
	b := NewDefaultBoard()
	assert.Equal(t, 0, unableToCastlePenalty(b, White))
}

func TestUnableToCastlePenaltyChargedPerIneligibleSide(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 2*CastlePenalty, unableToCastlePenalty(b, White))
}

func TestHeuristicIsCastledRefundsPenalty(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/5RK1 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, heuristicIsCastled(b, White))
	assert.Equal(t, -CastlePenalty, unableToCastlePenalty(b, White))
}
