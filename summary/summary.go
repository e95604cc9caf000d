// Package summary condenses every storage benchmark log found under a
// directory tree into per-run throughput blocks.
package summary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/weiihann/benchlog/extract"
	"github.com/weiihann/benchlog/report"
	"github.com/weiihann/benchlog/walk"
)

// LogFileName is the exact name of the files that get summarized.
const LogFileName = "log.md"

// Config holds the parameters of a summary pass.
type Config struct {
	Root string
}

// Stats counts what a summary pass did.
type Stats struct {
	FilesVisited int
	LogsRead     int
	Runs         int
	Skipped      int
}

// Run walks cfg.Root and writes a block to w for every run of every log
// file found, in walk order. A log whose record counts disagree gets a
// one-line notice on w instead and the pass continues. Any other error,
// including a zero duration, stops the pass.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	cfg Config,
	w io.Writer,
) (Stats, error) {
	var stats Stats

	logger.InfoContext(ctx, "scanning for benchmark logs",
		slog.String("root", cfg.Root),
	)

	for path, err := range walk.Files(cfg.Root) {
		if err != nil {
			return stats, fmt.Errorf("find logs: %w", err)
		}

		stats.FilesVisited++

		if filepath.Base(path) != LogFileName {
			continue
		}

		runs, err := summarizeFile(ctx, logger, path, w)
		stats.LogsRead++

		var mismatch *extract.MismatchError
		switch {
		case errors.As(err, &mismatch):
			stats.Skipped++
		case err != nil:
			return stats, err
		default:
			stats.Runs += runs
		}
	}

	logger.InfoContext(ctx, "summary complete",
		slog.Int("files_visited", stats.FilesVisited),
		slog.Int("logs_read", stats.LogsRead),
		slog.Int("runs", stats.Runs),
		slog.Int("skipped", stats.Skipped),
	)

	return stats, nil
}

// summarizeFile reports every run in the log at path and returns how many
// were written. A *extract.MismatchError is returned after its notice has
// been written to w.
func summarizeFile(
	ctx context.Context,
	logger *slog.Logger,
	path string,
	w io.Writer,
) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read log: %w", err)
	}

	x := extract.Extract(string(content))
	counts := x.Counts()

	logger.DebugContext(ctx, "extracted records",
		slog.String("path", path),
		slog.Int("op_sizes", counts[0]),
		slog.Int("preloads", counts[1]),
		slog.Int("scans", counts[2]),
		slog.Int("key_counts", counts[3]),
	)

	runs, err := extract.Correlate(path, x)
	if err != nil {
		var mismatch *extract.MismatchError
		if errors.As(err, &mismatch) {
			logger.WarnContext(ctx, "skipping log",
				slog.String("error", err.Error()),
			)

			if werr := report.WriteMismatch(w, mismatch); werr != nil {
				return 0, werr
			}
		}

		return 0, err
	}

	for _, run := range runs {
		if err := report.WriteRun(w, path, run); err != nil {
			return 0, err
		}
	}

	return len(runs), nil
}
