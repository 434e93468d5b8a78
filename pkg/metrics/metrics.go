package metrics

import (
	"errors"
	"time"
)

// ErrTimerMisuse is returned by StopTimer when no matching StartTimer
// call is in progress.
var ErrTimerMisuse = errors.New("metrics: stopTimer called without a matching startTimer")

// Metrics holds the counters a hash-table operation must update. It is
// owned exclusively by one HashTable and mutated only from that
// table's own operations; the zero value is ready to use.
type Metrics struct {
	Comparisons          int
	PrimaryCollisions    int
	SecondaryCollisions  int
	TotalCollisions      int
	Probes               int
	Insertions           int
	ElapsedNs            int64
	MemBytes             int64
	tableSize            int
	timerRunning         bool
	timerStart           time.Time
}

// Snapshot is an immutable copy of Metrics suitable for handing to the
// output formatter without exposing the live, mutable counters.
type Snapshot struct {
	Comparisons         int
	PrimaryCollisions   int
	SecondaryCollisions int
	TotalCollisions     int
	Probes              int
	Insertions          int
	ElapsedNs           int64
	MemBytes            int64
	TableSize           int
	LoadFactor          float64
}

// New returns a ready-to-use Metrics with all counters at zero.
func New() *Metrics {
	return &Metrics{}
}

// StartTimer begins timing an operation. Calling StartTimer again
// before StopTimer simply resets the start instant; the core never
// nests timed regions.
func (m *Metrics) StartTimer() {
	m.timerStart = time.Now()
	m.timerRunning = true
}

// StopTimer ends the timing started by StartTimer and stores the
// elapsed wall-clock time in ElapsedNs, replacing any earlier value. It returns ErrTimerMisuse if
// no StartTimer call is currently in progress.
func (m *Metrics) StopTimer() error {
	if !m.timerRunning {
		return ErrTimerMisuse
	}
	m.ElapsedNs = time.Since(m.timerStart).Nanoseconds()
	m.timerRunning = false
	return nil
}

// AddComparison records a single inspection of a slot or chain node.
func (m *Metrics) AddComparison() {
	m.Comparisons++
}

// AddPrimaryCollision records that attempt 0 (the home slot) was
// occupied. It also bumps TotalCollisions.
func (m *Metrics) AddPrimaryCollision() {
	m.PrimaryCollisions++
	m.TotalCollisions++
}

// AddSecondaryCollision records that a probe past attempt 0 found its
// slot occupied. It also bumps TotalCollisions.
func (m *Metrics) AddSecondaryCollision() {
	m.SecondaryCollisions++
	m.TotalCollisions++
}

// AddCollision bumps TotalCollisions only, without attributing the
// event to the primary/secondary split. Chaining uses this: a
// non-empty bucket at insert time is a collision, but chaining does
// not decompose collisions into primary/secondary.
func (m *Metrics) AddCollision() {
	m.TotalCollisions++
}

// AddProbe records a single step advancing to the next candidate slot
// after finding the current one occupied.
func (m *Metrics) AddProbe() {
	m.Probes++
}

// AddInsertion records a key having been written into storage.
func (m *Metrics) AddInsertion() {
	m.Insertions++
}

// SetTableSize records the table size N used by LoadFactor.
func (m *Metrics) SetTableSize(n int) {
	m.tableSize = n
}

// SetMemBytes records a point-in-time heap-byte sample, supplied by
// the external wall-clock/memory sampler collaborator (pkg/sampler).
func (m *Metrics) SetMemBytes(b int64) {
	m.MemBytes = b
}

// LoadFactor returns Insertions/tableSize, or -1 if the table size was
// never set to a positive value.
func (m *Metrics) LoadFactor() float64 {
	if m.tableSize <= 0 {
		return -1
	}
	return float64(m.Insertions) / float64(m.tableSize)
}

// ResetAll zeroes every counter and clears the timer state. tableSize
// is preserved: clearing a table does not change its capacity.
func (m *Metrics) ResetAll() {
	tableSize := m.tableSize
	*m = Metrics{}
	m.tableSize = tableSize
}

// Snapshot returns an immutable copy of the current counters, for
// handing to the output formatter or diagnostic sink.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Comparisons:         m.Comparisons,
		PrimaryCollisions:   m.PrimaryCollisions,
		SecondaryCollisions: m.SecondaryCollisions,
		TotalCollisions:     m.TotalCollisions,
		Probes:              m.Probes,
		Insertions:          m.Insertions,
		ElapsedNs:           m.ElapsedNs,
		MemBytes:            m.MemBytes,
		TableSize:           m.tableSize,
		LoadFactor:          m.LoadFactor(),
	}
}
