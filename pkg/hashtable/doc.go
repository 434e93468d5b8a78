// Package hashtable provides HashTable, the façade spec.md §4.4
// describes: it holds a Configuration, owns either an open-addressing
// slot array or a chain array plus its NodePool, and dispatches
// Insert/Search/Lookup to the right hash function and collision
// engine.
//
// Grounded in the teacher's pkg/hash_table/hash_table.go (constructor
// shape, Size, dispatch-by-strategy), generalized from a single
// FNV/chaining combination to the full division|fibonacci ×
// linear|quadratic|chaining product.
package hashtable
