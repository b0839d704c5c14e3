package internal

import (
	"os"

	"github.com/felixge/json-checker/codec"
	"gopkg.in/yaml.v3"
)

// DefaultFixture is the fixture used when none is configured.
const DefaultFixture = "data/data.json"

func ReadConfig(path string) (c Config, err error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, err
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, err
		}
	}
	c.setDefaults()
	return c, nil
}

type Config struct {
	Fixture    string        `yaml:"fixture"`
	Path       string        `yaml:"path"`
	Iterations int           `yaml:"iterations"`
	Repeat     int           `yaml:"repeat"`
	Libraries  []string      `yaml:"libraries"`
	Suites     []string      `yaml:"suites"`
	Encode     EncodeConfig  `yaml:"encode"`
	Outdir     string        `yaml:"outdir"`
	Profile    ProfileConfig `yaml:"profile"`
	Statsd     StatsdConfig  `yaml:"statsd"`
	SQL        SQLConfig     `yaml:"sql"`
	Datadog    DatadogConfig `yaml:"datadog"`
}

func (c *Config) setDefaults() {
	if c.Fixture == "" {
		c.Fixture = DefaultFixture
	}
	if c.Path == "" {
		c.Path = "cus.name"
	}
	if c.Iterations == 0 {
		c.Iterations = 100000
	}
	if c.Repeat == 0 {
		c.Repeat = 1
	}
	if len(c.Libraries) == 0 {
		c.Libraries = codec.Names()
	}
	if len(c.Suites) == 0 {
		c.Suites = []string{"descriptor"}
	}
	if c.Encode.Keys == 0 {
		c.Encode.Keys = 10000
	}
	if !c.Profile.CPU && !c.Profile.Mem {
		c.Profile.CPU = true
	}
	if c.Statsd.Namespace == "" {
		c.Statsd.Namespace = "json_checker."
	}
	if c.Datadog.Service == "" {
		c.Datadog.Service = "json-checker"
	}
	if c.Datadog.Version == "" {
		c.Datadog.Version = "dev"
	}
}

// WorkloadArgs returns the yaml arguments passed to workload.New.
func (c Config) WorkloadArgs() ([]byte, error) {
	return yaml.Marshal(map[string]interface{}{
		"file": c.Fixture,
		"path": c.Path,
		"keys": c.Encode.Keys,
	})
}

type EncodeConfig struct {
	Keys int `yaml:"keys"`
}

type ProfileConfig struct {
	CPU     bool `yaml:"cpu"`
	Mem     bool `yaml:"mem"`
	MemRate int  `yaml:"mem_rate"`
}

func (p ProfileConfig) Profilers() []string {
	var profilers []string
	if p.CPU {
		profilers = append(profilers, "cpu")
	}
	if p.Mem {
		profilers = append(profilers, "mem")
	}
	if len(profilers) == 0 {
		profilers = append(profilers, "none")
	}
	return profilers
}

type StatsdConfig struct {
	Addr      string   `yaml:"addr"`
	Namespace string   `yaml:"namespace"`
	Tags      []string `yaml:"tags"`
}

type SQLConfig struct {
	DSN string `yaml:"dsn"`
}

type DatadogConfig struct {
	Trace    bool   `yaml:"trace"`
	Profiler bool   `yaml:"profiler"`
	Env      string `yaml:"env"`
	Service  string `yaml:"service"`
	Version  string `yaml:"version"`
}
