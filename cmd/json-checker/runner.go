package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/felixge/json-checker/bench"
	"github.com/felixge/json-checker/codec"
	"github.com/felixge/json-checker/internal"
	"github.com/felixge/json-checker/sink"
	"github.com/spf13/cobra"
)

func newRunCmd(logger *slog.Logger) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suites",
		Long: `Time every configured library on every configured suite and print
calls/sec and total seconds per library.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd, logger, opts)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func runBenchmark(cmd *cobra.Command, logger *slog.Logger, opts *options) error {
	ctx := cmd.Context()
	c, err := opts.load(cmd)
	if err != nil {
		return err
	}
	libs, err := codec.LookupAll(c.Libraries)
	if err != nil {
		return err
	}
	args, err := c.WorkloadArgs()
	if err != nil {
		return err
	}

	stop, err := startDatadog(c.Datadog, logger)
	if err != nil {
		return err
	}
	defer stop()

	sinks, err := sink.FromConfig(c)
	if err != nil {
		return fmt.Errorf("open sinks: %w", err)
	}
	defer sinks.Close()

	logger.InfoContext(ctx, "starting benchmark",
		slog.String("fixture", c.Fixture),
		slog.String("path", c.Path),
		slog.Int("iterations", c.Iterations),
		slog.Any("libraries", c.Libraries),
		slog.Any("suites", c.Suites),
	)

	meta := internal.NewRunMeta(c)
	r := &bench.Runner{
		Libraries:  libs,
		Iterations: c.Iterations,
		Repeat:     c.Repeat,
		Args:       args,
		Out:        cmd.OutOrStdout(),
		Recorder:   sinks,
		Logger:     logger,
		Trace:      c.Datadog.Trace,
	}
	meta.Measurements, err = r.Run(ctx, c.Suites)
	if err != nil {
		return err
	}
	meta.Duration = time.Since(meta.Start)

	if c.Outdir != "" {
		dir := filepath.Join(c.Outdir, meta.ID)
		if err := internal.WriteMeta(dir, meta); err != nil {
			return fmt.Errorf("write meta: %w", err)
		}
		logger.InfoContext(ctx, "wrote run metadata", slog.String("dir", dir))
	}
	logger.DebugContext(ctx, "benchmark complete", slog.Duration("duration", meta.Duration))
	return nil
}

// ensureDir creates dir, defaulting to a temporary directory when empty.
func ensureDir(dir, pattern string) (string, error) {
	if dir == "" {
		return os.MkdirTemp("", pattern)
	}
	return dir, os.MkdirAll(dir, 0755)
}
