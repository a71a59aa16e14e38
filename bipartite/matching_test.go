package bipartite_test

import (
	"testing"

	"github.com/katalvlaran/polyaffine/bipartite"
	"github.com/stretchr/testify/require"
)

func TestMaxMatchingEmpty(t *testing.T) {
	res, err := bipartite.MaxMatching(nil)
	require.NoError(t, err)
	require.Equal(t, 0, res.Matches)
	require.Empty(t, res.PartnerOfRight)

	res, err = bipartite.MaxMatching(bipartite.Graph{{}, {}})
	require.NoError(t, err)
	require.Equal(t, 0, res.Matches)
}

func TestMaxMatchingRagged(t *testing.T) {
	_, err := bipartite.MaxMatching(bipartite.Graph{{true, true}, {true}})
	require.ErrorIs(t, err, bipartite.ErrRaggedGraph)
}

func TestMaxMatchingPerfect(t *testing.T) {
	// identity matching
	g := bipartite.Graph{
		{true, false, false},
		{false, true, false},
		{false, false, true},
	}
	res, err := bipartite.MaxMatching(g)
	require.NoError(t, err)
	require.Equal(t, 3, res.Matches)
	for i, p := range res.PartnerOfRight {
		require.True(t, p.Present)
		require.Equal(t, i, p.Left)
	}
}

func TestMaxMatchingRequiresAugmentation(t *testing.T) {
	// left0 can go to right0 or right1; left1 can only go to right0.
	// left0 takes right0 first, so matching left1 needs the augmenting
	// path that reassigns left0 to right1.
	g := bipartite.Graph{
		{true, true},
		{true, false},
	}
	res, err := bipartite.MaxMatching(g)
	require.NoError(t, err)
	require.Equal(t, 2, res.Matches)
}

func TestMaxMatchingPartialCoverage(t *testing.T) {
	// 2 left vertices, 3 right vertices, only one overlapping edge.
	g := bipartite.Graph{
		{true, false, false},
		{false, false, false},
	}
	res, err := bipartite.MaxMatching(g)
	require.NoError(t, err)
	require.Equal(t, 1, res.Matches)
	require.True(t, res.PartnerOfRight[0].Present)
	require.Equal(t, 0, res.PartnerOfRight[0].Left)
	require.False(t, res.PartnerOfRight[1].Present)
	require.False(t, res.PartnerOfRight[2].Present)
}

func TestMaxMatchingDeterministic(t *testing.T) {
	g := bipartite.Graph{
		{true, true, false},
		{true, true, false},
		{false, false, true},
	}
	res1, _ := bipartite.MaxMatching(g)
	res2, _ := bipartite.MaxMatching(g)
	require.Equal(t, res1, res2)
	require.Equal(t, 3, res1.Matches)
}
