// Package probing implements open-addressing insert, search, and
// lookup over a flat slot array, for both the linear and quadratic
// probe-index families described in spec.md §4.2.
//
// ProbeIndex is grounded in gostonefire-filehashmap's
// internal/hash/linearhash.go and quadratichash.go ProbeIteration
// functions: a pure function of (home, iteration) with no shared
// state, generalized here to floating c1/c2 constants and floored
// modulo so the result is always a valid, non-negative slot index.
package probing
