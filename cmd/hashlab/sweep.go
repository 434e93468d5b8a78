package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/haru-256/hashlab/pkg/diag"
	"github.com/haru-256/hashlab/pkg/reader"
	"github.com/haru-256/hashlab/pkg/report"
	"github.com/haru-256/hashlab/pkg/scheme"
	"github.com/haru-256/hashlab/pkg/summary"
	"github.com/haru-256/hashlab/pkg/sweep"
)

// runSweep implements the "sweep" subcommand: every predefined scheme
// run over one input set, ranked by a chosen metric, per SPEC_FULL.md
// §3's pkg/sweep and pkg/summary components.
func runSweep(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hashlab sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)

	inputPath := fs.String("input", "", "path to the input integer list (required)")
	outputPath := fs.String("output", "", "path to write the combined report to (required)")
	rankBy := fs.String("rank-by", "load-factor", "load-factor|collisions|comparisons")
	debug := fs.Bool("debug", false, "emit verbose diagnostics")

	if err := fs.Parse(args); err != nil {
		return fail(stderr, "%v", err)
	}
	if *inputPath == "" || *outputPath == "" {
		return fail(stderr, "--input and --output are required")
	}

	metricKey, err := parseRankBy(*rankBy)
	if err != nil {
		return fail(stderr, "%v", err)
	}

	values, warnings, err := reader.Read(*inputPath)
	if err != nil {
		return fail(stderr, "%v", err)
	}

	sink := diag.NewWriterSink(stderr, *debug)
	for _, w := range warnings {
		sink.Dump("skipped input line", w)
	}

	results, err := sweep.Run(scheme.All(), values, sink)
	if err != nil {
		return fail(stderr, "%v", err)
	}

	ranked, err := summary.Rank(results, metricKey)
	if err != nil {
		return fail(stderr, "%v", err)
	}

	var out strings.Builder
	for _, r := range ranked {
		out.WriteString(report.Format(report.Params{
			SchemeID:  r.Scheme.ID,
			Config:    r.Scheme.Config,
			Input:     values,
			RawSlots:  r.Table.RawSlots(),
			RawChains: r.Table.RawChains(),
			Metrics:   r.Metrics,
			Elapsed:   time.Duration(r.Elapsed),
			MemBytes:  r.MemBytes,
		}))
		out.WriteString(strings.Repeat("-", 40))
		out.WriteString("\n")
	}

	if err := os.WriteFile(*outputPath, []byte(out.String()), 0o644); err != nil {
		return fail(stderr, "writing %s: %v", *outputPath, err)
	}
	return 0
}

func parseRankBy(s string) (summary.MetricKey, error) {
	switch s {
	case "load-factor":
		return summary.LoadFactor, nil
	case "collisions":
		return summary.TotalCollisions, nil
	case "comparisons":
		return summary.Comparisons, nil
	default:
		return 0, fmt.Errorf("hashlab: --rank-by must be \"load-factor\", \"collisions\", or \"comparisons\"")
	}
}
