// Package report implements the byte-exact output layout spec.md
// §6.4 specifies: the echoed input, a configuration line, a stats
// block (chaining vs open-addressing), the table body, and the
// trailing execution-time/memory lines.
//
// Grounded in the teacher's String() renderers (Chain's
// "k -> ... -> None" in particular, reused verbatim from pkg/chain)
// and spec.md §6.4's field-by-field layout.
package report
