// Package diag is the verbose/diagnostic collaborator spec.md §9
// describes: the core forwards a boolean "verbose" knob to a Sink
// rather than printing directly, so TableFull and PoolExhausted
// events, plus an optional structural table dump and a ranked list of
// the heaviest buckets, are all routed through one seam.
package diag
