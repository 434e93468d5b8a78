package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/haru-256/hashlab/pkg/config"
	"github.com/haru-256/hashlab/pkg/diag"
	"github.com/haru-256/hashlab/pkg/hashtable"
	"github.com/haru-256/hashlab/pkg/nodepool"
	"github.com/haru-256/hashlab/pkg/probing"
	"github.com/haru-256/hashlab/pkg/reader"
	"github.com/haru-256/hashlab/pkg/report"
	"github.com/haru-256/hashlab/pkg/sampler"
	"github.com/haru-256/hashlab/pkg/scheme"
)

// runSingle implements spec.md §6.2's Mode A (--scheme) and Mode B
// (--hashing/--strategy/...) single-run CLI surface.
func runSingle(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hashlab", flag.ContinueOnError)
	fs.SetOutput(stderr)

	schemeID := fs.Int("scheme", 0, "predefined scheme id, 1-14 (Mode A)")
	hashing := fs.String("hashing", "", "division|custom (Mode B)")
	strategy := fs.String("strategy", "", "linear|quadratic|chaining (Mode B)")
	mod := fs.Int("mod", 0, "modulus, division hashing only (Mode B)")
	bucket := fs.Int("bucket", 1, "bucket size, 1 or 3 (Mode B)")
	c1 := fs.Float64("c1", 0.5, "quadratic probing constant c1 (Mode B)")
	c2 := fs.Float64("c2", 0.5, "quadratic probing constant c2 (Mode B)")
	inputPath := fs.String("input", "", "path to the input integer list (required)")
	outputPath := fs.String("output", "", "path to write the report to (required)")
	debug := fs.Bool("debug", false, "emit verbose diagnostics")

	if err := fs.Parse(args); err != nil {
		return fail(stderr, "%v", err)
	}

	if *inputPath == "" || *outputPath == "" {
		return fail(stderr, "--input and --output are required")
	}

	id, cfg, err := resolveConfig(*schemeID, *hashing, *strategy, *mod, *bucket, *c1, *c2)
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

	ht, err := hashtable.New(cfg)
	if err != nil {
		return fail(stderr, "%v", err)
	}

	var s sampler.Sampler
	s.StartTimer()
	for _, v := range values {
		if insertErr := ht.Insert(v); insertErr != nil {
			home := ht.HomeOf(v)
			if errors.Is(insertErr, nodepool.ErrPoolExhausted) {
				sink.PoolExhausted(v, home)
			} else if errors.Is(insertErr, probing.ErrTableFull) {
				sink.TableFull(v, home)
			}
		}
	}
	elapsed, err := s.StopTimer()
	if err != nil {
		return fail(stderr, "%v", err)
	}
	memBytes := sampler.HeapBytes()

	if *debug {
		sink.Dump("heaviest buckets", diag.HeaviestBuckets(bucketLoads(ht, cfg), 5))
		sink.Dump("memory usage (human-readable)", sampler.HumanReadableBytes(memBytes))
	}

	out := report.Format(report.Params{
		SchemeID:  id,
		Config:    cfg,
		Input:     values,
		RawSlots:  ht.RawSlots(),
		RawChains: ht.RawChains(),
		Metrics:   ht.Metrics().Snapshot(),
		Elapsed:   elapsed,
		MemBytes:  memBytes,
	})

	if err := os.WriteFile(*outputPath, []byte(out), 0o644); err != nil {
		return fail(stderr, "writing %s: %v", *outputPath, err)
	}
	return 0
}

// resolveConfig implements spec.md §6.2's two mutually exclusive
// modes: Mode A resolves a predefined scheme id; Mode B builds a
// Configuration from the manual flags. schemeID==0 selects Mode B.
func resolveConfig(schemeID int, hashing, strategy string, mod, bucket int, c1, c2 float64) (int, config.Configuration, error) {
	if schemeID != 0 {
		sc, err := scheme.Lookup(schemeID)
		if err != nil {
			return 0, config.Configuration{}, err
		}
		return sc.ID, sc.Config, nil
	}

	method, err := parseHashing(hashing)
	if err != nil {
		return 0, config.Configuration{}, err
	}
	strat, err := parseStrategy(strategy)
	if err != nil {
		return 0, config.Configuration{}, err
	}

	cfg := config.Configuration{
		TableSize:  120,
		BucketSize: bucket,
		HashMethod: method,
		Strategy:   strat,
		Modulus:    mod,
		C1:         c1,
		C2:         c2,
	}
	if err := cfg.Validate(); err != nil {
		return 0, config.Configuration{}, err
	}
	return 0, cfg, nil
}

// parseHashing maps spec.md §6.2's Mode B vocabulary ("division" or
// "custom") onto config.HashMethod. "custom" names the non-division
// method, i.e. the Fibonacci/multiplicative hash.
func parseHashing(s string) (config.HashMethod, error) {
	switch s {
	case "division":
		return config.Division, nil
	case "custom":
		return config.Fibonacci, nil
	default:
		return 0, errors.New("hashlab: --hashing must be \"division\" or \"custom\"")
	}
}

func parseStrategy(s string) (config.Strategy, error) {
	switch s {
	case "linear":
		return config.Linear, nil
	case "quadratic":
		return config.Quadratic, nil
	case "chaining":
		return config.Chaining, nil
	default:
		return 0, errors.New("hashlab: --strategy must be \"linear\", \"quadratic\", or \"chaining\"")
	}
}

// bucketLoads derives a per-slot load metric for diag.HeaviestBuckets:
// chain length for chaining tables, 1/0 occupancy for open addressing
// (which has no probe-count-per-slot to rank on beyond occupied/empty).
func bucketLoads(ht *hashtable.HashTable, cfg config.Configuration) []int {
	loads := make([]int, cfg.TableSize)
	if cfg.Strategy == config.Chaining {
		for i, c := range ht.RawChains() {
			loads[i] = c.Size()
		}
		return loads
	}
	for i, s := range ht.RawSlots() {
		if s.Occupied {
			loads[i] = 1
		}
	}
	return loads
}
