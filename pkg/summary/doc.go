// Package summary ranks a sweep's []sweep.SchemeResult by a chosen
// metric, for the table the CLI prints after a multi-scheme sweep.
//
// Adapted from the teacher's pkg/sort.QuickSort (the Lomuto partition
// scheme over cmp.Ordered), generalized from a bare ordered slice to a
// caller-supplied less function so SchemeResult can be ranked by
// whichever metrics.Snapshot field the CLI's --rank-by flag names.
package summary
