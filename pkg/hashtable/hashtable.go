package hashtable

import (
	"github.com/haru-256/hashlab/pkg/chain"
	"github.com/haru-256/hashlab/pkg/chaining"
	"github.com/haru-256/hashlab/pkg/config"
	"github.com/haru-256/hashlab/pkg/hashfunc"
	"github.com/haru-256/hashlab/pkg/metrics"
	"github.com/haru-256/hashlab/pkg/nodepool"
	"github.com/haru-256/hashlab/pkg/probing"
)

// HashTable is the façade spec.md §4.4 describes. A HashTable must be
// used by at most one goroutine at a time; it makes no attempt at
// internal synchronization, per spec.md §5.
type HashTable struct {
	cfg     config.Configuration
	metrics *metrics.Metrics

	// exactly one of these is populated, chosen by cfg.Strategy
	slots  []probing.Slot
	chains []*chain.Chain[int]
	pool   *nodepool.Pool[int]
}

// New validates cfg and constructs a HashTable. It allocates N slots
// for open addressing, or N chains plus a 2N-capacity NodePool for
// chaining. It returns config.ErrInvalidConfiguration, unwrapped via
// errors.Is, if cfg fails validation — the only construction-time
// failure this repository surfaces to the caller.
func New(cfg config.Configuration) (*HashTable, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ht := &HashTable{cfg: cfg, metrics: metrics.New()}
	ht.metrics.SetTableSize(cfg.TableSize)

	if cfg.Strategy == config.Chaining {
		ht.pool = nodepool.New[int](2 * cfg.TableSize)
		ht.chains = chaining.NewChainArray(cfg.TableSize, ht.pool)
	} else {
		ht.slots = probing.NewStorage(cfg.TableSize)
	}
	return ht, nil
}

// Configuration returns the immutable configuration this table was
// built with.
func (h *HashTable) Configuration() config.Configuration {
	return h.cfg
}

// Metrics returns the live, mutable Metrics this table owns.
func (h *HashTable) Metrics() *metrics.Metrics {
	return h.metrics
}

// home computes the home index for key using the configured hash
// method. HashFunctions are pure and never touch Metrics.
func (h *HashTable) home(key int) int {
	if h.cfg.HashMethod == config.Fibonacci {
		return hashfunc.Fibonacci(key, h.cfg.TableSize)
	}
	return hashfunc.Division(key, h.cfg.Modulus, h.cfg.TableSize)
}

// HomeOf exposes the home index for key, for callers that need to
// label a diagnostic event (pkg/diag, pkg/sweep) with the bucket a
// failed insert landed on.
func (h *HashTable) HomeOf(key int) int {
	return h.home(key)
}

// Insert computes key's home index and delegates to ProbingEngine or
// ChainingEngine depending on the configured strategy. TableFull and
// PoolExhausted are returned unwrapped (not a process-fatal error);
// the caller is expected to route them to a diagnostic channel rather
// than abort.
func (h *HashTable) Insert(key int) error {
	home := h.home(key)
	if h.cfg.Strategy == config.Chaining {
		return chaining.Insert(h.chains, key, home, h.metrics)
	}
	quadratic := h.cfg.Strategy == config.Quadratic
	return probing.Insert(h.slots, key, home, h.cfg.TableSize, quadratic, h.cfg.C1, h.cfg.C2, h.metrics)
}

// Search computes key's home index and delegates to the configured
// engine, mutating Metrics as it walks.
func (h *HashTable) Search(key int) bool {
	home := h.home(key)
	if h.cfg.Strategy == config.Chaining {
		return chaining.Search(h.chains, key, home, h.metrics)
	}
	quadratic := h.cfg.Strategy == config.Quadratic
	return probing.Search(h.slots, key, home, h.cfg.TableSize, quadratic, h.cfg.C1, h.cfg.C2, h.metrics)
}

// Lookup computes key's home index and delegates to the configured
// engine without mutating Metrics.
func (h *HashTable) Lookup(key int) bool {
	home := h.home(key)
	if h.cfg.Strategy == config.Chaining {
		return chaining.Lookup(h.chains, key, home)
	}
	quadratic := h.cfg.Strategy == config.Quadratic
	return probing.Lookup(h.slots, key, home, h.cfg.TableSize, quadratic, h.cfg.C1, h.cfg.C2)
}

// Clear resets every slot to empty (open addressing) or clears every
// chain, returning all nodes to the pool (chaining), then resets
// Metrics.
func (h *HashTable) Clear() {
	if h.cfg.Strategy == config.Chaining {
		for _, c := range h.chains {
			c.Clear()
		}
	} else {
		for i := range h.slots {
			h.slots[i] = probing.Slot{}
		}
	}
	h.metrics.ResetAll()
}

// RawSlots returns the open-addressing storage handle for the
// external formatter collaborator. It is nil for a chaining table.
// The returned slice is read-only from the collaborator's
// perspective: mutating it bypasses Metrics and corrupts the table.
func (h *HashTable) RawSlots() []probing.Slot {
	return h.slots
}

// RawChains returns the chain-array storage handle for the external
// formatter collaborator. It is nil for an open-addressing table.
func (h *HashTable) RawChains() []*chain.Chain[int] {
	return h.chains
}

// PoolSize returns the number of free handles remaining in the shared
// NodePool, or -1 for an open-addressing table (which has none).
func (h *HashTable) PoolSize() int {
	if h.pool == nil {
		return -1
	}
	return h.pool.Size()
}
