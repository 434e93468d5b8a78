package sampler

import (
	"errors"
	"runtime"
	"time"

	"github.com/c2h5oh/datasize"
)

// ErrTimerMisuse is returned by StopTimer when no matching StartTimer
// call is in progress, mirroring metrics.ErrTimerMisuse's
// precondition-failure contract for the same mistake made from the
// sampler side of the wall-clock boundary.
var ErrTimerMisuse = errors.New("sampler: stopTimer called without a matching startTimer")

// Sampler wraps the OS-level monotonic clock and the runtime's heap
// counters, presenting them as the seconds/bytes values spec.md §6.4's
// report trailer requires. The zero value is ready to use.
type Sampler struct {
	start   time.Time
	running bool
}

// StartTimer begins timing an operation.
func (s *Sampler) StartTimer() {
	s.start = time.Now()
	s.running = true
}

// StopTimer ends the timing started by StartTimer and returns the
// elapsed wall-clock duration. It returns ErrTimerMisuse if no
// StartTimer call is currently in progress.
func (s *Sampler) StopTimer() (time.Duration, error) {
	if !s.running {
		return 0, ErrTimerMisuse
	}
	s.running = false
	return time.Since(s.start), nil
}

// HeapBytes samples the runtime's current heap allocation via
// runtime.ReadMemStats, for the byte-exact "Memory Usage: <bytes>
// bytes" report line.
func HeapBytes() int64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return int64(ms.HeapAlloc)
}

// HumanReadableBytes formats b using datasize's human-readable
// notation (e.g. "12.5KB") for the --debug companion line. The
// byte-exact report line (spec.md §6.4) never uses this; it always
// prints the raw integer.
func HumanReadableBytes(b int64) string {
	return datasize.ByteSize(uint64(b)).HumanReadable()
}
