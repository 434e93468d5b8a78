// Package chaining dispatches insert/search/lookup into the Chain
// belonging to a computed bucket index, for the separate-chaining
// collision-resolution strategy.
//
// Grounded in gostonefire-filehashmap's
// internal/hash/chaininghash.go (a bucket-indexed chaining hash
// algorithm) and the teacher's pkg/hash_table dispatch shape.
package chaining
