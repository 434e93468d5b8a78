// Package metrics provides the counters every hash-table operation in
// hashlab must update: comparisons, primary/secondary collisions,
// probes, insertions, plus a wall-clock timer and a load-factor helper.
//
// Metrics is owned exclusively by one HashTable and is never shared
// across table instances or goroutines; see pkg/hashtable.
package metrics
