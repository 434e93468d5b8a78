package diag

import (
	"fmt"
	"io"
	"sync"

	"github.com/sanity-io/litter"
)

// Sink is the diagnostic collaborator the core's TableFull and
// PoolExhausted paths call into, plus the table-snapshot dump and
// heaviest-bucket ranking the CLI prints when --debug is set. The
// core never prints directly; it only ever reaches a Sink through
// this interface.
type Sink interface {
	TableFull(key, home int)
	PoolExhausted(key, home int)
	Dump(label string, v any)
}

// WriterSink is the default Sink: one line per event written to W,
// and — when Verbose is set — a structural dump of whatever value
// Dump is given, rendered with litter instead of %+v so nested slices
// of probing.Slot or chain.Chain print legibly. A WriterSink is safe
// for concurrent use, since pkg/sweep hands the same Sink to one
// goroutine per scheme.
type WriterSink struct {
	W       io.Writer
	Verbose bool

	mu sync.Mutex
}

// NewWriterSink returns a WriterSink writing to w.
func NewWriterSink(w io.Writer, verbose bool) *WriterSink {
	return &WriterSink{W: w, Verbose: verbose}
}

// TableFull reports that inserting key (whose home slot was home)
// found N consecutive occupied probes, per spec.md §7's TableFull
// taxonomy entry: non-fatal, absorbed into Metrics, visible only here.
func (s *WriterSink) TableFull(key, home int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.W, "diag: table full, key %d (home %d) was not inserted\n", key, home)
}

// PoolExhausted reports that inserting key found no free node in the
// shared NodePool, per spec.md §7's PoolExhausted taxonomy entry.
func (s *WriterSink) PoolExhausted(key, home int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.W, "diag: node pool exhausted, key %d (bucket %d) was not inserted\n", key, home)
}

// Dump writes a labeled, litter-formatted structural dump of v, but
// only when Verbose is set — the --debug knob spec.md §9 calls for.
func (s *WriterSink) Dump(label string, v any) {
	if !s.Verbose {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.W, "diag: %s:\n%s\n", label, litter.Sdump(v))
}

// BucketLoad names one table slot's occupancy weight, as supplied by
// the caller: the CLI passes 1 or 0 (occupied or empty) for an
// open-addressing slot, or the number of keys linked in a chaining
// bucket.
type BucketLoad struct {
	Index int
	Load  int
}

// HeaviestBuckets ranks loads (indexed by slot) and returns the top n
// heaviest, highest load first, ties broken by lower index. It is
// adapted from the teacher's pkg/heap.Heap plus
// pkg/priority_queue.PriorityQueue (a max-heap ordered by a comparator,
// with a Task[T] priority wrapper): re-pointed here at ranking table
// slots by load instead of arbitrary tasks by arrival time, and
// stripped of the teacher's mutex since the heap is local to one call
// and never shared across goroutines.
func HeaviestBuckets(loads []int, n int) []BucketLoad {
	h := make(bucketMaxHeap, 0, len(loads))
	for i, load := range loads {
		if load > 0 {
			h.push(BucketLoad{Index: i, Load: load})
		}
	}

	if n > len(h) {
		n = len(h)
	}
	out := make([]BucketLoad, 0, n)
	for range n {
		out = append(out, h.pop())
	}
	return out
}

// bucketMaxHeap is a max-heap over BucketLoad, ordered by Load then by
// lower Index, array-backed exactly as the teacher's Heap[T] is.
type bucketMaxHeap []BucketLoad

func less(a, b BucketLoad) bool {
	if a.Load != b.Load {
		return a.Load > b.Load
	}
	return a.Index < b.Index
}

func (h *bucketMaxHeap) push(v BucketLoad) {
	*h = append(*h, v)
	h.upHeap(len(*h) - 1)
}

func (h *bucketMaxHeap) pop() BucketLoad {
	top := (*h)[0]
	last := len(*h) - 1
	(*h)[0] = (*h)[last]
	*h = (*h)[:last]
	if len(*h) > 0 {
		h.downHeap(0)
	}
	return top
}

func (h bucketMaxHeap) upHeap(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !less(h[i], h[parent]) {
			break
		}
		h[i], h[parent] = h[parent], h[i]
		i = parent
	}
}

func (h bucketMaxHeap) downHeap(i int) {
	n := len(h)
	for {
		l, r, top := 2*i+1, 2*i+2, i
		if l < n && less(h[l], h[top]) {
			top = l
		}
		if r < n && less(h[r], h[top]) {
			top = r
		}
		if top == i {
			break
		}
		h[i], h[top] = h[top], h[i]
		i = top
	}
}
