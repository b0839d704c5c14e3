package main

import (
	"fmt"
	"io"

	"github.com/felixge/json-checker/internal"
	"github.com/felixge/json-checker/workload"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <dir>",
		Short: "Summarize stored runs",
		Long: `Read every meta.yaml below dir, as written by "run --outdir", and print
mean and standard deviation of calls/sec per suite and library.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), args[0])
		},
	}
}

func runReport(w io.Writer, dir string) error {
	var runs int
	var ms []internal.Measurement
	err := internal.ReadMeta(dir, func(meta *internal.RunMeta) error {
		runs++
		ms = append(ms, meta.Measurements...)
		return nil
	})
	if err != nil {
		return err
	}
	if len(ms) == 0 {
		return fmt.Errorf("no measurements found in %s", dir)
	}

	summaries, err := internal.Summarize(ms)
	if err != nil {
		return err
	}
	internal.SortBySuite(summaries, workload.Suites)

	fmt.Fprintf(w, "runs: %d\n", runs)
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Suite", "Library", "N", "Calls/sec", "+/-", "Totsecs"})
	tw.SetBorder(false)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetHeaderLine(false)
	tw.SetAutoFormatHeaders(false)
	for _, s := range summaries {
		tw.Append([]string{
			s.Suite,
			s.Library,
			fmt.Sprint(s.Runs),
			internal.FormatFloat(s.MeanCalls),
			internal.FormatFloat(s.StdDevCalls),
			internal.FormatFloat(s.MeanSecs),
		})
	}
	tw.Render()
	return nil
}
