package sink

import (
	"github.com/DataDog/datadog-go/statsd"
	"github.com/felixge/json-checker/internal"
)

type gauger interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Close() error
}

// Statsd reports calls/sec and total seconds as gauges.
type Statsd struct {
	client gauger
}

func NewStatsd(c internal.StatsdConfig) (*Statsd, error) {
	client, err := statsd.New(c.Addr,
		statsd.WithNamespace(c.Namespace),
		statsd.WithTags(c.Tags),
	)
	if err != nil {
		return nil, err
	}
	return &Statsd{client: client}, nil
}

func (s *Statsd) Record(m internal.Measurement) error {
	tags := []string{"suite:" + m.Suite, "library:" + m.Library}
	if err := s.client.Gauge("calls_per_sec", m.CallsPerSec, tags, 1); err != nil {
		return err
	}
	return s.client.Gauge("total_secs", m.TotalSecs, tags, 1)
}

func (s *Statsd) Close() error {
	return s.client.Close()
}
