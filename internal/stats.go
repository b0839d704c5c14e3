package internal

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// Summary aggregates the measurements of one suite/library pair across runs
// and repeats.
type Summary struct {
	Suite       string
	Library     string
	Runs        int
	MeanCalls   float64
	StdDevCalls float64
	MeanSecs    float64
}

// Summarize groups ms by suite and library. The result keeps the order in
// which each pair was first seen.
func Summarize(ms []Measurement) ([]Summary, error) {
	type key struct{ suite, library string }
	var order []key
	calls := map[key][]float64{}
	secs := map[key][]float64{}
	for _, m := range ms {
		k := key{m.Suite, m.Library}
		if _, ok := calls[k]; !ok {
			order = append(order, k)
		}
		calls[k] = append(calls[k], m.CallsPerSec)
		secs[k] = append(secs[k], m.TotalSecs)
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		mean, err := stats.Mean(calls[k])
		if err != nil {
			return nil, err
		}
		dev, err := stats.StandardDeviation(calls[k])
		if err != nil {
			return nil, err
		}
		meanSecs, err := stats.Mean(secs[k])
		if err != nil {
			return nil, err
		}
		out = append(out, Summary{
			Suite:       k.suite,
			Library:     k.library,
			Runs:        len(calls[k]),
			MeanCalls:   Round(mean, 2),
			StdDevCalls: Round(dev, 2),
			MeanSecs:    Round(meanSecs, 4),
		})
	}
	return out, nil
}

// SortBySuite orders summaries by suite position in suites, keeping the
// relative order of libraries.
func SortBySuite(s []Summary, suites []string) {
	sort.SliceStable(s, func(i, j int) bool {
		return stringIndex(s[i].Suite, suites) < stringIndex(s[j].Suite, suites)
	})
}

func stringIndex(s string, slice []string) int {
	for i, v := range slice {
		if v == s {
			return i
		}
	}
	return len(slice)
}
