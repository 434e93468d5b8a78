package chain

import (
	"fmt"
	"strings"

	"github.com/haru-256/hashlab/pkg/metrics"
	"github.com/haru-256/hashlab/pkg/nodepool"
)

// Chain is one bucket's worth of chained keys, backed by a shared
// nodepool.Pool. The zero value is not ready to use; call New.
type Chain[T comparable] struct {
	pool *nodepool.Pool[T]
	head nodepool.Handle
	size int
}

// New returns an empty Chain drawing nodes from pool. pool is a weak
// reference: the Chain may pop from and push to it but never owns it.
func New[T comparable](pool *nodepool.Pool[T]) *Chain[T] {
	return &Chain[T]{pool: pool, head: nodepool.None}
}

// Size returns the number of keys currently linked in this chain.
func (c *Chain[T]) Size() int {
	return c.size
}

// IsEmpty reports whether the chain holds no keys.
func (c *Chain[T]) IsEmpty() bool {
	return c.size == 0
}

// Insert walks the chain from head to tail, counting one comparison
// per node visited (the traversal cost, per spec.md §4.3's mandated
// per-node accounting), then borrows a node from the pool and links
// it at the head. If the chain was non-empty before this call, it
// bumps TotalCollisions without attributing it to the primary/
// secondary split, since chaining does not decompose that way. If the
// pool is exhausted, the insertion is silently skipped: storage is
// left unmodified, Insertions is not incremented, and
// nodepool.ErrPoolExhausted is returned for the caller to route to the
// diagnostic channel.
func (c *Chain[T]) Insert(key T, m *metrics.Metrics) error {
	wasNonEmpty := !c.IsEmpty()

	for h := c.head; h != nodepool.None; h = c.pool.At(h).Next {
		m.AddComparison()
	}

	if wasNonEmpty {
		m.AddCollision()
	}

	h, err := c.pool.Pop()
	if err != nil {
		return err
	}

	node := c.pool.At(h)
	node.Key = key
	node.Next = c.head
	c.head = h
	c.size++

	m.AddInsertion()
	return nil
}

// Search walks the chain looking for key, counting one comparison per
// node visited, and returns true on the first match.
func (c *Chain[T]) Search(key T, m *metrics.Metrics) bool {
	for h := c.head; h != nodepool.None; h = c.pool.At(h).Next {
		m.AddComparison()
		if c.pool.At(h).Key == key {
			return true
		}
	}
	return false
}

// Lookup walks the chain identically to Search but touches no Metrics
// counter.
func (c *Chain[T]) Lookup(key T) bool {
	for h := c.head; h != nodepool.None; h = c.pool.At(h).Next {
		if c.pool.At(h).Key == key {
			return true
		}
	}
	return false
}

// Clear returns every node currently linked in this chain back to the
// owning pool and resets the chain to empty.
func (c *Chain[T]) Clear() {
	for h := c.head; h != nodepool.None; {
		next := c.pool.At(h).Next
		// Push errors only on a double free, which cannot happen here
		// since each handle is visited exactly once during the walk.
		_ = c.pool.Push(h)
		h = next
	}
	c.head = nodepool.None
	c.size = 0
}

// String renders the chain in head-insertion order, most recently
// inserted key first: "k_n -> ... -> k_1 -> None".
func (c *Chain[T]) String() string {
	var b strings.Builder
	for h := c.head; h != nodepool.None; h = c.pool.At(h).Next {
		fmt.Fprintf(&b, "%v -> ", c.pool.At(h).Key)
	}
	b.WriteString("None")
	return b.String()
}
