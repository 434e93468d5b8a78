package chaining

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haru-256/hashlab/pkg/metrics"
	"github.com/haru-256/hashlab/pkg/nodepool"
)

func TestScenarioE_AllKeysToSameBucket(t *testing.T) {
	pool := nodepool.New[int](10)
	chains := NewChainArray(5, pool)
	m := metrics.New()

	require.NoError(t, Insert(chains, 1, 1, m))
	require.NoError(t, Insert(chains, 6, 1, m))
	require.NoError(t, Insert(chains, 11, 1, m))

	assert.Equal(t, "11 -> 6 -> 1 -> None", chains[1].String())
	assert.Equal(t, 3, m.Comparisons)
	assert.Equal(t, 2, m.TotalCollisions)
	assert.Equal(t, 3, m.Insertions)

	for i, c := range chains {
		if i != 1 {
			assert.True(t, c.IsEmpty())
		}
	}
}

func TestSearchAndLookupDispatch(t *testing.T) {
	pool := nodepool.New[int](10)
	chains := NewChainArray(5, pool)
	m := metrics.New()

	require.NoError(t, Insert(chains, 1, 1, m))
	require.NoError(t, Insert(chains, 6, 1, m))

	assert.True(t, Search(chains, 6, 1, m))
	assert.False(t, Search(chains, 999, 1, m))
	assert.True(t, Lookup(chains, 6, 1))
	assert.False(t, Lookup(chains, 999, 1))
}

func TestInsertPropagatesPoolExhaustion(t *testing.T) {
	pool := nodepool.New[int](1)
	chains := NewChainArray(3, pool)
	m := metrics.New()

	require.NoError(t, Insert(chains, 1, 0, m))
	err := Insert(chains, 2, 1, m)
	assert.ErrorIs(t, err, nodepool.ErrPoolExhausted)
}
