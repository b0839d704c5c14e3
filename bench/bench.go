// Package bench times workloads against a set of JSON libraries and reports
// their throughput.
package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/felixge/json-checker/codec"
	"github.com/felixge/json-checker/internal"
	"github.com/felixge/json-checker/workload"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

var titles = map[string]string{
	"descriptor": "Json Descriptor",
	"decode":     "Json decode",
	"encode":     "Json encode",
	"lookup":     "Json lookup",
}

const rule = "---------------------------"

// Recorder receives each measurement after it is printed.
type Recorder interface {
	Record(m internal.Measurement) error
}

// NewWorkloadFunc builds the workload timed for one suite and library.
type NewWorkloadFunc func(suite string, c codec.Codec) (workload.Workload, error)

// Runner measures Libraries on each suite passed to Run.
type Runner struct {
	Libraries  []codec.Codec
	Iterations int
	Repeat     int
	// Args is passed to workload.New unless NewWorkload is set.
	Args        []byte
	NewWorkload NewWorkloadFunc
	Out         io.Writer
	Recorder    Recorder
	Logger      *slog.Logger
	// Trace wraps every suite and measurement in a Datadog span.
	Trace bool

	sections int
}

// Run measures all libraries for every suite, in order. The first error
// aborts the run.
func (r *Runner) Run(ctx context.Context, suites []string) ([]internal.Measurement, error) {
	var all []internal.Measurement
	for _, suite := range suites {
		ms, err := r.RunSuite(ctx, suite)
		all = append(all, ms...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

// RunSuite prints the section header for suite followed by one line per
// measurement.
func (r *Runner) RunSuite(ctx context.Context, suite string) (ms []internal.Measurement, err error) {
	title, ok := titles[suite]
	if !ok {
		return nil, fmt.Errorf("unknown suite: %q", suite)
	}
	if r.Iterations < 1 {
		return nil, fmt.Errorf("iterations must be positive, got %d", r.Iterations)
	}
	if r.Trace {
		var span ddtrace.Span
		span, ctx = tracer.StartSpanFromContext(ctx, "suite", tracer.ResourceName(suite))
		defer func() { span.Finish(tracer.WithError(err)) }()
	}
	r.header(title)

	libs := r.Libraries
	if suite == "lookup" {
		libs = []codec.Codec{nil}
	}
	repeat := r.Repeat
	if repeat < 1 {
		repeat = 1
	}
	for _, c := range libs {
		for i := 0; i < repeat; i++ {
			m, err := r.measure(ctx, suite, c)
			if err != nil {
				return ms, err
			}
			m.Repeat = i
			ms = append(ms, m)

			fmt.Fprintf(r.out(), "Library=%s, Calls/sec=%s, Totsecs=%s\n",
				m.Library,
				internal.FormatFloat(m.CallsPerSec),
				internal.FormatFloat(m.TotalSecs),
			)
			if r.Recorder != nil {
				if err := r.Recorder.Record(m); err != nil {
					return ms, fmt.Errorf("record %s/%s: %w", suite, m.Library, err)
				}
			}
		}
	}
	return ms, nil
}

func (r *Runner) measure(ctx context.Context, suite string, c codec.Codec) (m internal.Measurement, err error) {
	library := workload.LookupLibrary
	if c != nil {
		library = c.Name()
	}
	if r.Trace {
		var span ddtrace.Span
		span, ctx = tracer.StartSpanFromContext(ctx, "measure",
			tracer.ResourceName(suite+"/"+library),
			tracer.Tag("library", library),
			tracer.Tag("iterations", r.Iterations),
		)
		defer func() { span.Finish(tracer.WithError(err)) }()
	}

	w, err := r.newWorkload(suite, c)
	if err != nil {
		return m, fmt.Errorf("%s/%s: %w", suite, library, err)
	}
	if err := w.Setup(); err != nil {
		return m, fmt.Errorf("%s/%s: setup: %w", suite, library, err)
	}

	elapsed, err := Time(w.Run, r.Iterations)
	if err != nil {
		return m, fmt.Errorf("%s/%s: %w", suite, library, err)
	}
	m = internal.NewMeasurement(suite, library, r.Iterations, elapsed)
	r.logger().DebugContext(ctx, "measured",
		slog.String("suite", suite),
		slog.String("library", library),
		slog.Duration("elapsed", elapsed),
	)
	return m, nil
}

func (r *Runner) newWorkload(suite string, c codec.Codec) (workload.Workload, error) {
	if r.NewWorkload != nil {
		return r.NewWorkload(suite, c)
	}
	return workload.New(suite, c, r.Args)
}

// Time calls fn n times and returns the wall time it took. It stops at the
// first error.
func Time(fn func() error, n int) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < n; i++ {
		if err := fn(); err != nil {
			return time.Since(start), err
		}
	}
	return time.Since(start), nil
}

func (r *Runner) header(title string) {
	out := r.out()
	if r.sections > 0 {
		fmt.Fprintf(out, "\n%s\n", rule)
	}
	fmt.Fprintf(out, "Metrics for %s\n%s\n", title, rule)
	r.sections++
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
