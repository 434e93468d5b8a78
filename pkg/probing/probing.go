package probing

import (
	"errors"
	"math"

	"github.com/haru-256/hashlab/pkg/metrics"
)

// ErrTableFull is returned by Insert when N consecutive probes all
// landed on occupied slots. The insertion is skipped; Metrics already
// reflects the N comparisons and N probes that occurred, per spec.md
// §4.2/§7 — the caller routes this to the diagnostic channel, never
// to the process exit path.
var ErrTableFull = errors.New("probing: table full")

// Slot is one logical cell of open-addressing storage. Occupied
// distinguishes an empty cell from one holding the key 0 or any other
// value, since keys may be negative (including INT_MIN), so no
// sentinel key value can double as the empty marker.
type Slot struct {
	Occupied bool
	Key      int
}

// NewStorage returns n empty slots.
func NewStorage(n int) []Slot {
	return make([]Slot, n)
}

// ProbeIndex computes the i-th probe index for a given home slot.
// Linear: (home + i) mod N. Quadratic: floor(home + c1*i + c2*i^2)
// mod N, using floored modulo so the result stays within [0, N) even
// when the floating-point arithmetic overshoots or goes negative for
// pathological c1/c2.
func ProbeIndex(home, i, n int, quadratic bool, c1, c2 float64) int {
	if !quadratic {
		return floorMod(home+i, n)
	}
	fi := float64(i)
	v := float64(home) + c1*fi + c2*fi*fi
	return floorMod(int(math.Floor(v)), n)
}

// Insert walks the probe sequence starting at home, writing key into
// the first empty slot found. Each attempt increments Comparisons.
// Attempt 0 landing on an occupied slot is a primary collision; any
// later attempt landing on an occupied slot is a secondary collision;
// either way Probes is incremented and the walk continues. After N
// failed attempts, Insert returns ErrTableFull without adding any
// further metric.
func Insert(storage []Slot, key, home, n int, quadratic bool, c1, c2 float64, m *metrics.Metrics) error {
	for i := 0; i < n; i++ {
		idx := ProbeIndex(home, i, n, quadratic, c1, c2)
		m.AddComparison()

		if !storage[idx].Occupied {
			storage[idx] = Slot{Occupied: true, Key: key}
			m.AddInsertion()
			return nil
		}

		if i == 0 {
			m.AddPrimaryCollision()
		} else {
			m.AddSecondaryCollision()
		}
		m.AddProbe()
	}
	return ErrTableFull
}

// Search walks the probe sequence starting at home, incrementing
// Comparisons on every attempt. It returns false as soon as it finds
// an empty slot (the key cannot appear later, since insertion would
// have stopped there), true on a matching key, and false after N
// attempts. No collision or probe counter is touched.
func Search(storage []Slot, key, home, n int, quadratic bool, c1, c2 float64, m *metrics.Metrics) bool {
	for i := 0; i < n; i++ {
		idx := ProbeIndex(home, i, n, quadratic, c1, c2)
		m.AddComparison()

		if !storage[idx].Occupied {
			return false
		}
		if storage[idx].Key == key {
			return true
		}
	}
	return false
}

// Lookup walks the identical probe sequence as Search but touches no
// Metrics counter.
func Lookup(storage []Slot, key, home, n int, quadratic bool, c1, c2 float64) bool {
	for i := 0; i < n; i++ {
		idx := ProbeIndex(home, i, n, quadratic, c1, c2)

		if !storage[idx].Occupied {
			return false
		}
		if storage[idx].Key == key {
			return true
		}
	}
	return false
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
