// Package sampler implements spec.md §6.1's wall-clock/memory sampler
// collaborator: a StartTimer/StopTimer pair over time.Now and a
// heap-byte reading over runtime.ReadMemStats, kept separate from
// pkg/metrics so the core never imports runtime.
package sampler
