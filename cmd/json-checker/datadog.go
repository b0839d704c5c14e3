package main

import (
	"log/slog"

	"github.com/felixge/json-checker/internal"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	ddprofiler "gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

// startDatadog starts the tracer and continuous profiler if enabled in c. The
// returned func stops them.
func startDatadog(c internal.DatadogConfig, logger *slog.Logger) (func(), error) {
	var stops []func()
	stop := func() {
		for _, fn := range stops {
			fn()
		}
	}

	if c.Trace {
		tracer.Start(
			tracer.WithEnv(c.Env),
			tracer.WithService(c.Service),
			tracer.WithServiceVersion(c.Version),
		)
		stops = append(stops, tracer.Stop)
		logger.Debug("datadog tracer started", slog.String("service", c.Service))
	}

	if c.Profiler {
		err := ddprofiler.Start(
			ddprofiler.WithEnv(c.Env),
			ddprofiler.WithService(c.Service),
			ddprofiler.WithVersion(c.Version),
			ddprofiler.WithProfileTypes(ddprofiler.CPUProfile, ddprofiler.HeapProfile),
		)
		if err != nil {
			stop()
			return nil, err
		}
		stops = append(stops, ddprofiler.Stop)
		logger.Debug("datadog profiler started", slog.String("service", c.Service))
	}
	return stop, nil
}
