// Command json-checker measures how fast several JSON libraries decode a
// fixture document and resolve a field from it.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	return newRootCmd(logger, level).Execute()
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var verbose bool
	opts := &options{}
	root := &cobra.Command{
		Use:   "json-checker",
		Short: "Compare the throughput of Go JSON libraries",
		Long: `json-checker times repeated decode + field lookups of a fixture document
with encoding/json, jsoniter, goccy/go-json, segmentio/encoding and sonic.
Without a subcommand it runs the descriptor benchmark.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd, logger, opts)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	opts.addFlags(root)

	root.AddCommand(
		newRunCmd(logger),
		newProfileCmd(logger),
		newReportCmd(),
	)
	return root
}
