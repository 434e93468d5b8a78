// Package chain provides the singly-linked, head-insertion chain used
// by one bucket of a chaining HashTable. Every node a Chain links is
// borrowed from a shared nodepool.Pool and returned to it on Clear;
// Chain never allocates nodes of its own.
//
// The head-insertion order and "k -> ... -> None" rendering follow
// spec.md §4.5 exactly: the most recently inserted key renders first.
package chain
