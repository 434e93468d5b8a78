package sweep

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/haru-256/hashlab/pkg/config"
	"github.com/haru-256/hashlab/pkg/diag"
	"github.com/haru-256/hashlab/pkg/hashtable"
	"github.com/haru-256/hashlab/pkg/metrics"
	"github.com/haru-256/hashlab/pkg/nodepool"
	"github.com/haru-256/hashlab/pkg/probing"
	"github.com/haru-256/hashlab/pkg/sampler"
	"github.com/haru-256/hashlab/pkg/scheme"
)

// SchemeResult is one scheme's outcome from a sweep: the scheme it
// ran, the HashTable it built (read-only once the sweep has
// returned), a metrics snapshot, and the wall-clock time the full
// insert pass took.
type SchemeResult struct {
	Scheme   scheme.Scheme
	Table    *hashtable.HashTable
	Metrics  metrics.Snapshot
	Elapsed  int64 // nanoseconds
	MemBytes int64
}

// Run builds one HashTable per scheme, each owned by exactly one
// goroutine, inserts every value in input into it, and returns one
// SchemeResult per scheme in the same order schemes was given. sink
// receives TableFull/PoolExhausted diagnostics from every scheme's
// insert pass; it must be safe for concurrent use, since every
// scheme's goroutine may call into it at once.
//
// Run propagates the first construction error any scheme's
// hashtable.New call returns, via errgroup.Group.Wait. Predefined
// schemes are always valid, so this only matters for caller-built,
// possibly-invalid config.Configuration values passed in through a
// custom scheme.Scheme.
func Run(schemes []scheme.Scheme, input []int, sink diag.Sink) ([]SchemeResult, error) {
	pending := newPendingQueue[int](len(schemes))
	for i := range schemes {
		if err := pending.enqueue(i); err != nil {
			return nil, err
		}
	}

	results := make([]SchemeResult, len(schemes))
	var g errgroup.Group

	for !pending.isEmpty() {
		i, err := pending.dequeue()
		if err != nil {
			return nil, err
		}
		sc := schemes[i]
		g.Go(func() error {
			ht, err := hashtable.New(sc.Config)
			if err != nil {
				return err
			}

			var s sampler.Sampler
			s.StartTimer()
			for _, key := range input {
				if insertErr := ht.Insert(key); insertErr != nil {
					home := ht.HomeOf(key)
					if sc.Config.Strategy == config.Chaining && errors.Is(insertErr, nodepool.ErrPoolExhausted) {
						sink.PoolExhausted(key, home)
					} else if errors.Is(insertErr, probing.ErrTableFull) {
						sink.TableFull(key, home)
					}
				}
			}
			elapsed, err := s.StopTimer()
			if err != nil {
				return err
			}

			results[i] = SchemeResult{
				Scheme:   sc,
				Table:    ht,
				Metrics:  ht.Metrics().Snapshot(),
				Elapsed:  elapsed.Nanoseconds(),
				MemBytes: sampler.HeapBytes(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
