package params_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drand/sike/params"
)

func TestComputeStrategyShape(t *testing.T) {
	require.Empty(t, params.ComputeStrategy(1, 1, 1))
	require.Equal(t, []int{1}, params.ComputeStrategy(2, 1, 1))

	for n := 2; n <= 64; n *= 2 {
		s := params.ComputeStrategy(n, 7, 5)
		require.Len(t, s, n-1)
		for _, v := range s {
			require.Greater(t, v, 0)
			require.Less(t, v, n)
		}
	}
}

func TestComputeStrategyBalancedForEqualCosts(t *testing.T) {
	// with p == q the optimum splits the tree in half at every level
	s := params.ComputeStrategy(8, 3, 3)
	require.Equal(t, 4, s[0])
}

func TestShippedTablesMatchGenerator(t *testing.T) {
	for _, name := range params.Names() {
		p := params.MustByName(name)
		require.Equal(t, p.Strategy2, p.TwoTorsionStrategy(), name)
		require.Equal(t, p.Strategy3, p.ThreeTorsionStrategy(), name)
	}
}
