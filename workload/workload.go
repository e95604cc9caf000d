// Package workload generates deterministic storage benchmark logs. The
// output reproduces the lines printed by the storage benchmarks (op size,
// preload, scan, key count, database size) so that log summarizing can be
// exercised against realistic input.
package workload

import (
	"fmt"
	"io"
	mrand "math/rand"
)

// Profile is the workload shape a benchmark run was configured with.
type Profile struct {
	Name           string
	InsertKeyTotal uint64
	InsertKeyPerTx uint64
	ScanTotal      uint64
	ScanPerTx      uint64
	IterPerScan    uint64
}

// Predefined profiles selectable on the benchmark command line.
var (
	Small = Profile{
		Name:           "s",
		InsertKeyTotal: 1_000_000,
		InsertKeyPerTx: 1_000,
		ScanTotal:      100_000,
		ScanPerTx:      100,
		IterPerScan:    1_000,
	}
	Medium = Profile{
		Name:           "m",
		InsertKeyTotal: 10_000_000,
		InsertKeyPerTx: 1_000,
		ScanTotal:      100_000,
		ScanPerTx:      100,
		IterPerScan:    1_000,
	}
	Big = Profile{
		Name:           "b",
		InsertKeyTotal: 1_000_000_000,
		InsertKeyPerTx: 1_000,
		ScanTotal:      10_000_000,
		ScanPerTx:      100,
		IterPerScan:    1_000,
	}
)

// ProfileByName resolves one of the predefined profiles.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case "s":
		return Small, nil
	case "m":
		return Medium, nil
	case "b":
		return Big, nil
	default:
		return Profile{}, fmt.Errorf(
			"unknown op size %q: must be either 's', 'm', or 'b'", name,
		)
	}
}

// Line renders the profile the way the benchmark prints it.
func (p Profile) Line() string {
	return fmt.Sprintf(
		"op size: OpSize { insert_key_total_count: %d, "+
			"insert_key_per_tx_count: %d, scan_total_count: %d, "+
			"scan_per_tx_count: %d, iter_per_scan_count: %d }",
		p.InsertKeyTotal, p.InsertKeyPerTx, p.ScanTotal,
		p.ScanPerTx, p.IterPerScan,
	)
}

// ScanPhase is one measured scan phase.
type ScanPhase struct {
	Ops        uint64
	DurationMs uint64
}

// RunStats holds the values written for a single benchmark run.
type RunStats struct {
	Profile        Profile
	LoadedKeys     uint64
	LoadDurationMs uint64
	Scans          []ScanPhase
	KeyCount       uint64
	SizeBytes      uint64
	KeyCountOmit   bool
}

// Summary describes a generated log.
type Summary struct {
	Runs  []RunStats
	Lines int
}

// Config controls log generation.
type Config struct {
	// Database prefixes each phase line. "redb" adds a compaction step and
	// a second scan phase per run, like the redb benchmark does.
	Database string
	Profile  Profile
	Runs     int
	Threads  int
	Dir      string
	Seed     int64
	// OmitLastKeyCount drops the key count line of the final run.
	OmitLastKeyCount bool
}

// Generator produces deterministic logs from a Config.
type Generator struct {
	cfg Config
	rng *mrand.Rand
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config) *Generator {
	if cfg.Database == "" {
		cfg.Database = "lmdb"
	}
	if cfg.Threads == 0 {
		cfg.Threads = 1
	}
	if cfg.Dir == "" {
		cfg.Dir = "/tmp/bench"
	}

	return &Generator{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Generate writes the log to w and returns a Summary of what was written.
func (g *Generator) Generate(w io.Writer) (Summary, error) {
	var summary Summary

	emit := func(format string, args ...any) error {
		if _, err := fmt.Fprintf(w, format+"\n", args...); err != nil {
			return fmt.Errorf("write log line: %w", err)
		}

		summary.Lines++

		return nil
	}

	db := g.cfg.Database
	p := g.cfg.Profile

	for i := 0; i < g.cfg.Runs; i++ {
		stats := RunStats{
			Profile:        p,
			LoadedKeys:     p.InsertKeyTotal,
			LoadDurationMs: g.duration(),
			KeyCount:       g.keyCount(p.InsertKeyTotal),
			SizeBytes:      p.InsertKeyTotal * uint64(64+g.rng.Intn(64)),
			KeyCountOmit:   g.cfg.OmitLastKeyCount && i == g.cfg.Runs-1,
		}

		if err := emit("%s", p.Line()); err != nil {
			return summary, err
		}
		if err := emit("thread count: %d", g.cfg.Threads); err != nil {
			return summary, err
		}
		if err := emit("dir: %q", g.cfg.Dir); err != nil {
			return summary, err
		}
		if err := emit("%s: Preload done: loaded %d keys in %dms",
			db, stats.LoadedKeys, stats.LoadDurationMs); err != nil {
			return summary, err
		}

		phases := 1
		if db == "redb" {
			phases = 2
		}

		for ph := 0; ph < phases; ph++ {
			if db == "redb" {
				label := "Reading without compacting..."
				if ph == 1 {
					if err := emit("redb: Compacted in %dms", g.duration()); err != nil {
						return summary, err
					}
					label = "Reading after compacting..."
				}
				if err := emit("%s", label); err != nil {
					return summary, err
				}
			}

			scan := ScanPhase{Ops: p.ScanTotal, DurationMs: g.duration()}
			if err := emit("%s: Scan done: %d scan ops in %dms",
				db, scan.Ops, scan.DurationMs); err != nil {
				return summary, err
			}

			stats.Scans = append(stats.Scans, scan)
		}

		if !stats.KeyCountOmit {
			if err := emit("%s: Database keys: %d keys", db, stats.KeyCount); err != nil {
				return summary, err
			}
		}
		if err := emit("%s: Database size: %d bytes", db, stats.SizeBytes); err != nil {
			return summary, err
		}

		summary.Runs = append(summary.Runs, stats)
	}

	return summary, nil
}

// duration returns a phase duration in milliseconds, never zero.
func (g *Generator) duration() uint64 {
	return uint64(1 + g.rng.Intn(60_000))
}

func (g *Generator) keyCount(inserted uint64) uint64 {
	if inserted == 0 {
		return 0
	}

	dupes := uint64(g.rng.Int63n(int64(inserted/1000 + 1)))

	return inserted - dupes
}
