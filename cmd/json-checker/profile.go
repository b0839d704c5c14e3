package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/felixge/json-checker/bench"
	"github.com/felixge/json-checker/codec"
	"github.com/felixge/json-checker/internal"
	"github.com/spf13/cobra"
)

func newProfileCmd(logger *slog.Logger) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile the descriptor benchmark",
		Long: `Run the descriptor benchmark once per library with pprof enabled and
write one profile per enabled kind to the output directory. Only
encoding/json is profiled unless --libraries is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProfile(cmd, logger, opts)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func runProfile(cmd *cobra.Command, logger *slog.Logger, opts *options) error {
	ctx := cmd.Context()
	c, err := opts.load(cmd)
	if err != nil {
		return err
	}
	if c.Datadog.Profiler && c.Profile.CPU {
		return errors.New("profile.cpu and datadog.profiler both need the cpu profiler, enable only one")
	}
	if !cmd.Flags().Changed("libraries") {
		c.Libraries = []string{codec.Std{}.Name()}
	}
	libs, err := codec.LookupAll(c.Libraries)
	if err != nil {
		return err
	}
	args, err := c.WorkloadArgs()
	if err != nil {
		return err
	}
	outdir, err := ensureDir(c.Outdir, "json-checker-profiles")
	if err != nil {
		return err
	}

	stop, err := startDatadog(c.Datadog, logger)
	if err != nil {
		return err
	}
	defer stop()

	out := cmd.OutOrStdout()
	prof := &Profiler{ProfileConfig: c.Profile, Outdir: outdir}
	for _, lib := range libs {
		fmt.Fprintf(out, "Stats for %s\n\n", lib.Name())
		r := &bench.Runner{
			Libraries:  []codec.Codec{lib},
			Iterations: c.Iterations,
			Args:       args,
			Out:        out,
			Logger:     logger,
			Trace:      c.Datadog.Trace,
		}
		if err := prof.Start(); err != nil {
			return err
		}
		_, runErr := r.RunSuite(ctx, "descriptor")
		profiles := prof.Stop(lib.Name())
		if runErr != nil {
			return runErr
		}
		for _, p := range profiles {
			if p.Error != "" {
				return fmt.Errorf("%s profile for %s: %s", p.Kind, lib.Name(), p.Error)
			}
			fmt.Fprintf(out, "%s %s (%s)\n",
				p.Kind,
				filepath.Join(outdir, p.File),
				internal.TruncateDuration(p.ProfileDuration),
			)
		}
		fmt.Fprintln(out)
	}
	logger.InfoContext(ctx, "wrote profiles",
		slog.String("dir", outdir),
		slog.Any("profilers", c.Profile.Profilers()),
	)
	return nil
}
