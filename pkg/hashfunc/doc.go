// Package hashfunc implements the two pure hash functions hashlab
// supports: division hashing and Fibonacci (multiplicative) hashing.
// Both return a final index already reduced modulo the table size;
// neither touches pkg/metrics.
//
// The probe-index functions that build on a home index (linear,
// quadratic) live in pkg/probing, not here — HashFunc only computes
// the home slot.
package hashfunc
