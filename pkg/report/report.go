package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/haru-256/hashlab/pkg/chain"
	"github.com/haru-256/hashlab/pkg/config"
	"github.com/haru-256/hashlab/pkg/metrics"
	"github.com/haru-256/hashlab/pkg/probing"
)

// columnWidth is the fixed cell width spec.md §6.4 specifies for the
// table body. Cells are left-aligned and padded to this width; a
// longer cell (a key of more than 8 characters such as -2147483648,
// or a chain rendering) is written in full and is not truncated.
const columnWidth = 8

// inputPerLine is the number of echoed input values wrapped per line.
const inputPerLine = 5

// Params bundles everything Format needs: the spec.md §6.1 output-
// formatter contract's (scheme id, hashMethod, modOrNone, bucketSize,
// tableSize, strategy, rawTable handle, input sequence, metrics
// snapshot) tuple, plus the elapsed time and heap-byte sample a
// pkg/sampler reading supplies.
type Params struct {
	SchemeID  int
	Config    config.Configuration
	Input     []int
	RawSlots  []probing.Slot
	RawChains []*chain.Chain[int]
	Metrics   metrics.Snapshot
	Elapsed   time.Duration
	MemBytes  int64
}

// Format renders Params into the byte-exact layout spec.md §6.4
// describes: echoed input, configuration line, stats block, table
// body, and trailing execution-time/memory lines.
func Format(p Params) string {
	var b strings.Builder

	writeEchoedInput(&b, p.Input)
	writeConfigLine(&b, p.SchemeID, p.Config)
	writeStatsBlock(&b, p.Config, p.Metrics)
	writeTableBody(&b, p.Config, p.RawSlots, p.RawChains)
	writeTrailer(&b, p.Elapsed, p.MemBytes)

	return b.String()
}

func writeEchoedInput(b *strings.Builder, input []int) {
	for i := 0; i < len(input); i += inputPerLine {
		end := i + inputPerLine
		if end > len(input) {
			end = len(input)
		}
		parts := make([]string, end-i)
		for j, v := range input[i:end] {
			parts[j] = fmt.Sprintf("%d", v)
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString("\n")
	}
}

func writeConfigLine(b *strings.Builder, schemeID int, cfg config.Configuration) {
	modulo := "N/A"
	if cfg.HashMethod == config.Division {
		modulo = fmt.Sprintf("%d", cfg.Modulus)
	}
	fmt.Fprintf(b, "scheme %d (%s) - modulo: %s, bucket size: %d, %s\n",
		schemeID, cfg.HashMethod, modulo, cfg.BucketSize, cfg.Strategy)
}

func writeStatsBlock(b *strings.Builder, cfg config.Configuration, m metrics.Snapshot) {
	if cfg.Strategy == config.Chaining {
		fmt.Fprintf(b, "# of collisions: %d\n", m.TotalCollisions)
	} else {
		fmt.Fprintf(b, "# of primary collisions: %d, secondary collisions: %d, total collisions: %d\n",
			m.PrimaryCollisions, m.SecondaryCollisions, m.TotalCollisions)
	}
	fmt.Fprintf(b, "# of comparisons: %d, records inserted: %d, load factor: %.4f\n",
		m.Comparisons, m.Insertions, m.LoadFactor)
}

func writeTableBody(b *strings.Builder, cfg config.Configuration, slots []probing.Slot, chains []*chain.Chain[int]) {
	cols := inputPerLine
	if cfg.BucketSize == 3 {
		cols = 3
	}

	cells := make([]string, cfg.TableSize)
	if cfg.Strategy == config.Chaining {
		for i, c := range chains {
			cells[i] = c.String()
		}
	} else {
		for i, s := range slots {
			if s.Occupied {
				cells[i] = fmt.Sprintf("%d", s.Key)
			} else {
				cells[i] = "None"
			}
		}
	}

	for i := 0; i < len(cells); i += cols {
		end := i + cols
		if end > len(cells) {
			end = len(cells)
		}
		for _, cell := range cells[i:end] {
			fmt.Fprintf(b, "%-*s", columnWidth, cell)
		}
		b.WriteString("\n")
	}
}

func writeTrailer(b *strings.Builder, elapsed time.Duration, memBytes int64) {
	fmt.Fprintf(b, "Execution Time: %.6f seconds\n", elapsed.Seconds())
	fmt.Fprintf(b, "Memory Usage: %d bytes\n", memBytes)
}
