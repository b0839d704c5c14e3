package main

import (
	"fmt"

	"github.com/felixge/json-checker/internal"
	"github.com/felixge/json-checker/workload"
	"github.com/spf13/cobra"
)

// options are the flags shared by the benchmark commands. Flags that were set
// explicitly override the config file.
type options struct {
	config     string
	fixture    string
	path       string
	iterations int
	repeat     int
	libraries  []string
	suites     []string
	outdir     string
}

func (o *options) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.config, "config", "c", "",
		"Path to a yaml config file")
	flags.StringVar(&o.fixture, "fixture", internal.DefaultFixture,
		"JSON document to benchmark with")
	flags.StringVar(&o.path, "path", "cus.name",
		"Dotted path resolved by the descriptor and lookup suites")
	flags.IntVarP(&o.iterations, "iterations", "n", 100000,
		"Calls timed per library")
	flags.IntVar(&o.repeat, "repeat", 1,
		"Measurements per library and suite")
	flags.StringSliceVar(&o.libraries, "libraries", nil,
		"Libraries to benchmark (default all)")
	flags.StringSliceVar(&o.suites, "suites", nil,
		"Suites to run: descriptor, decode, encode, lookup (default descriptor)")
	flags.StringVarP(&o.outdir, "outdir", "o", "",
		"Directory for run metadata and profiles")
}

func (o *options) load(cmd *cobra.Command) (internal.Config, error) {
	c, err := internal.ReadConfig(o.config)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("fixture") {
		c.Fixture = o.fixture
	}
	if flags.Changed("path") {
		c.Path = o.path
	}
	if flags.Changed("iterations") {
		c.Iterations = o.iterations
	}
	if flags.Changed("repeat") {
		c.Repeat = o.repeat
	}
	if flags.Changed("libraries") {
		c.Libraries = o.libraries
	}
	if flags.Changed("suites") {
		c.Suites = o.suites
	}
	if flags.Changed("outdir") {
		c.Outdir = o.outdir
	}
	return c, validate(c)
}

func validate(c internal.Config) error {
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat must be positive, got %d", c.Repeat)
	}
	for _, s := range c.Suites {
		if stringIndex(s, workload.Suites) < 0 {
			return fmt.Errorf("unknown suite: %q", s)
		}
	}
	return nil
}

func stringIndex(s string, slice []string) int {
	for i, v := range slice {
		if v == s {
			return i
		}
	}
	return -1
}
