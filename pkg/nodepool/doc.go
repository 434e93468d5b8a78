// Package nodepool provides a fixed-capacity, array-backed LIFO pool
// of reusable chain-node handles shared by every Chain belonging to
// one HashTable.
//
// It is a direct descendant of the teacher repository's generic
// Stack[T]: same fixed-array-plus-top-index shape, same
// overflow/underflow error pair, narrowed from an arbitrary-type LIFO
// into an index-based arena of ChainNode handles sized 2N, as
// spec.md's NodePool requires. Order of reuse does not matter for
// correctness; LIFO is simply a cache-friendly default.
package nodepool
