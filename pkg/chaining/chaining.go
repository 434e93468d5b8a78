package chaining

import (
	"github.com/haru-256/hashlab/pkg/chain"
	"github.com/haru-256/hashlab/pkg/metrics"
	"github.com/haru-256/hashlab/pkg/nodepool"
)

// Insert dispatches into chainArray[index], the bucket selected by
// the caller's hash function. It returns nodepool.ErrPoolExhausted,
// unmodified, when the shared pool has no free node left — the caller
// is expected to route that to the diagnostic channel, not fail the
// operation.
func Insert(chainArray []*chain.Chain[int], key, index int, m *metrics.Metrics) error {
	return chainArray[index].Insert(key, m)
}

// Search dispatches into chainArray[index] and mutates Metrics.
func Search(chainArray []*chain.Chain[int], key, index int, m *metrics.Metrics) bool {
	return chainArray[index].Search(key, m)
}

// Lookup dispatches into chainArray[index] without touching Metrics.
func Lookup(chainArray []*chain.Chain[int], key, index int) bool {
	return chainArray[index].Lookup(key)
}

// NewChainArray allocates n Chains, one per slot, all drawing from the
// shared pool.
func NewChainArray(n int, pool *nodepool.Pool[int]) []*chain.Chain[int] {
	chains := make([]*chain.Chain[int], n)
	for i := range chains {
		chains[i] = chain.New[int](pool)
	}
	return chains
}
