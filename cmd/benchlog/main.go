// Package main provides the CLI entry point for benchlog, which condenses
// storage benchmark logs into per-run throughput summaries.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/benchlog/summary"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error("benchlog failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "benchlog --dir <path>",
		Short: "Summarize storage benchmark logs",
		Long: `Benchlog recursively searches a directory for log.md files written by
the storage benchmarks and prints, for every benchmark run found, the
configured op size, the preload and scan throughput and the final key count.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd.Context(), logger, cmd.OutOrStdout(), dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "",
		"Directory to recursively search for 'log.md' files")
	if err := cmd.MarkFlagRequired("dir"); err != nil {
		panic(err)
	}

	return cmd
}

func runSummary(
	ctx context.Context,
	logger *slog.Logger,
	w io.Writer,
	dir string,
) error {
	_, err := summary.Run(ctx, logger, summary.Config{Root: dir}, w)

	return err
}
