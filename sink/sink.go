// Package sink forwards benchmark measurements to external systems.
package sink

import (
	"github.com/felixge/json-checker/internal"
)

// Sink receives every measurement as soon as it is taken.
type Sink interface {
	Record(m internal.Measurement) error
	Close() error
}

// Multi fans out to all sinks, stopping at the first error.
type Multi []Sink

func (s Multi) Record(m internal.Measurement) error {
	for _, sink := range s {
		if err := sink.Record(m); err != nil {
			return err
		}
	}
	return nil
}

func (s Multi) Close() error {
	var first error
	for _, sink := range s {
		if err := sink.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// FromConfig opens the sinks enabled in c.
func FromConfig(c internal.Config) (Multi, error) {
	var sinks Multi
	if c.Statsd.Addr != "" {
		s, err := NewStatsd(c.Statsd)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}
	if c.SQL.DSN != "" {
		s, err := OpenSQL(c.SQL.DSN)
		if err != nil {
			sinks.Close()
			return nil, err
		}
		sinks = append(sinks, s)
	}
	return sinks, nil
}
