// Package sweep runs a batch of predefined schemes over one input set,
// each against its own independently-owned hashtable.HashTable, and
// collects one SchemeResult per scheme. Every table is touched by
// exactly one goroutine, so the single-threaded-per-table contract in
// spec.md §5 holds even though the sweep itself fans out across
// golang.org/x/sync/errgroup, the way the teacher's stack_test.go and
// heap_test.go fan work out across goroutines for concurrency-adjacent
// tests.
package sweep
