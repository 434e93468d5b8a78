// Package reader reads the newline-delimited integer lists hashlab
// inserts and searches for, per spec.md §6.1's input-reader contract.
//
// Grounded in the teacher's pkg/utils.ScanStdin bufio.Scanner idiom,
// generalized from raw stdin lines into parsed, range-checked int32
// values read from an arbitrary file path.
package reader
