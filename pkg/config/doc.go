// Package config holds the immutable Configuration bundle described
// in spec.md §3 and its validation. ErrInvalidConfiguration is,
// besides TimerMisuse, the only error this repository treats as fatal
// to the caller, per
// spec.md §7's InvalidConfiguration taxonomy entry.
//
// Grounded in gostonefire-filehashmap's internal/model.StorageParameters/
// CRTConf (an immutable, validated config bundle passed into a
// constructor) and the teacher's guard-clause constructors
// (NewStack, NewHashChainTable).
package config
