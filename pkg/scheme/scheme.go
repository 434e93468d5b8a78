package scheme

import (
	"fmt"

	"github.com/haru-256/hashlab/pkg/config"
)

// ErrUnknownScheme is returned by Lookup when id falls outside the
// predefined table's range [1, 14].
var ErrUnknownScheme = fmt.Errorf("scheme: unknown scheme id")

// Scheme names a single row of spec.md §6.3's predefined-scheme
// table: an id the CLI's --scheme flag selects, plus the
// Configuration it resolves to.
type Scheme struct {
	ID     int
	Config config.Configuration
}

// tableSize is N for every predefined scheme, per spec.md §6.3.
const tableSize = 120

// schemes is spec.md §6.3's table transcribed as data, in id order.
// Linear strategies carry C1=0.5/C2=0.5 even though the probing
// engine ignores them for linear probing, since hashtable.Insert
// passes the configured C1/C2 to the probing engine for both linear
// and quadratic strategies.
var schemes = []Scheme{
	{1, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Division, Strategy: config.Linear, Modulus: 120, C1: 0.5, C2: 0.5}},
	{2, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Division, Strategy: config.Quadratic, Modulus: 120, C1: 0.5, C2: 0.5}},
	{3, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Division, Strategy: config.Chaining, Modulus: 120, C1: 0.5, C2: 0.5}},
	{4, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Division, Strategy: config.Linear, Modulus: 127, C1: 0.5, C2: 0.5}},
	{5, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Division, Strategy: config.Quadratic, Modulus: 127, C1: 0.5, C2: 0.5}},
	{6, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Division, Strategy: config.Chaining, Modulus: 127, C1: 0.5, C2: 0.5}},
	{7, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Division, Strategy: config.Linear, Modulus: 113, C1: 0.5, C2: 0.5}},
	{8, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Division, Strategy: config.Quadratic, Modulus: 113, C1: 0.5, C2: 0.5}},
	{9, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Division, Strategy: config.Chaining, Modulus: 113, C1: 0.5, C2: 0.5}},
	{10, config.Configuration{TableSize: tableSize, BucketSize: 3, HashMethod: config.Division, Strategy: config.Linear, Modulus: 41, C1: 0.5, C2: 0.5}},
	{11, config.Configuration{TableSize: tableSize, BucketSize: 3, HashMethod: config.Division, Strategy: config.Quadratic, Modulus: 41, C1: 0.5, C2: 0.5}},
	{12, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Fibonacci, Strategy: config.Linear, C1: 0.5, C2: 0.5}},
	{13, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Fibonacci, Strategy: config.Quadratic, C1: 0.5, C2: 0.5}},
	{14, config.Configuration{TableSize: tableSize, BucketSize: 1, HashMethod: config.Fibonacci, Strategy: config.Chaining, C1: 0.5, C2: 0.5}},
}

// Lookup returns the predefined scheme with the given id, or
// ErrUnknownScheme if id is not in [1, 14].
func Lookup(id int) (Scheme, error) {
	if id < 1 || id > len(schemes) {
		return Scheme{}, fmt.Errorf("%w: %d", ErrUnknownScheme, id)
	}
	return schemes[id-1], nil
}

// All returns every predefined scheme, in id order, for callers such
// as pkg/sweep that run the whole table.
func All() []Scheme {
	out := make([]Scheme, len(schemes))
	copy(out, schemes)
	return out
}
