// Command hashlab is the CLI surface spec.md §6.2 describes: a
// single-scheme run (--scheme N, or the manual --hashing/--strategy
// flags) and a "sweep" subcommand that runs every predefined scheme
// over one input file and ranks the results.
//
// Built on the standard library flag package, the only CLI idiom
// evidenced anywhere in the retrieved corpus (see SPEC_FULL.md §3).
package main
