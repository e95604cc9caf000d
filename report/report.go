// Package report formats correlated benchmark runs into condensed summary
// blocks.
package report

import (
	"fmt"
	"io"

	"github.com/weiihann/benchlog/extract"
)

// WriteRun writes the summary block for one run of the log at path:
//
//	### <path>
//	Keys added: <n>, keys per txn: <n>, scans opened: <n>, scan advances: <n>
//	L <load keys/sec>
//	S <scan ops/sec>
//	T <total keys>
//
// followed by a blank line. Nothing is written if either rate cannot be
// computed.
//
// "scans opened" is the op size scan total. The earlier Python summary
// script printed the scan line's op count there instead, so logs whose two
// counts differ will not match that script's output.
func WriteRun(w io.Writer, path string, run extract.Run) error {
	load, err := PerSecond(run.Load.Keys, run.Load.DurationMs)
	if err != nil {
		return fmt.Errorf("%s run %d load rate: %w", path, run.Index, err)
	}

	// The scan rate uses the scan line's own op count, not the configured
	// scan total shown as "scans opened".
	scan, err := PerSecond(run.Scan.Ops, run.Scan.DurationMs)
	if err != nil {
		return fmt.Errorf("%s run %d scan rate: %w", path, run.Index, err)
	}

	_, err = fmt.Fprintf(w,
		"### %s\n"+
			"Keys added: %s, keys per txn: %s, scans opened: %s, scan advances: %s\n"+
			"L %d\n"+
			"S %d\n"+
			"T %s\n"+
			"\n",
		path,
		run.OpSize.InsertKeyTotal,
		run.OpSize.InsertKeyPerTx,
		run.OpSize.ScanTotal,
		run.OpSize.IterPerScan,
		load,
		scan,
		run.KeyCount.Keys,
	)
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

// WriteMismatch writes the one-line notice for a log whose record counts
// differ and which therefore produced no runs.
func WriteMismatch(w io.Writer, m *extract.MismatchError) error {
	_, err := fmt.Fprintf(w,
		"Skipping this file %s, since the op_sizes, load_times, scan_times, "+
			"keys count don't match lengths: %d, %d, %d, %d\n",
		m.Path, m.Counts[0], m.Counts[1], m.Counts[2], m.Counts[3],
	)
	if err != nil {
		return fmt.Errorf("write mismatch notice: %w", err)
	}

	return nil
}
