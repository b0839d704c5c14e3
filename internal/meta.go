package internal

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MetaFile is the name of the file WriteMeta creates in the outdir.
const MetaFile = "meta.yaml"

// ReadMeta calls cb for every meta.yaml found below dir.
func ReadMeta(dir string, cb func(*RunMeta) error) error {
	return filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Base(path) != MetaFile {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		meta := &RunMeta{}
		if err := yaml.Unmarshal(data, meta); err != nil {
			return err
		}
		return cb(meta)
	})
}

// WriteMeta stores m as dir/meta.yaml, creating dir if needed.
func WriteMeta(dir string, m *RunMeta) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, MetaFile), data, 0644)
}

type RunMeta struct {
	ID           string        `yaml:"id"`
	Start        time.Time     `yaml:"start"`
	Duration     time.Duration `yaml:"duration"`
	Env          WorkloadEnv   `yaml:"env"`
	Config       Config        `yaml:"config"`
	Measurements []Measurement `yaml:"measurements"`
}

// NewRunMeta returns a RunMeta with a fresh id and the current environment.
func NewRunMeta(c Config) *RunMeta {
	return &RunMeta{
		ID:     uuid.NewString(),
		Start:  time.Now(),
		Env:    CurrentEnv(),
		Config: c,
	}
}

type WorkloadEnv struct {
	GoVersion  string `yaml:"go_version"`
	GoOS       string `yaml:"go_os"`
	GoArch     string `yaml:"go_arch"`
	GoMaxProcs int    `yaml:"go_max_procs"`
	GoNumCPU   int    `yaml:"go_num_cpu"`
}

func CurrentEnv() WorkloadEnv {
	return WorkloadEnv{
		GoVersion:  runtime.Version(),
		GoOS:       runtime.GOOS,
		GoArch:     runtime.GOARCH,
		GoMaxProcs: runtime.GOMAXPROCS(0),
		GoNumCPU:   runtime.NumCPU(),
	}
}

// Measurement is the outcome of timing one library on one suite.
type Measurement struct {
	Suite       string        `yaml:"suite"`
	Library     string        `yaml:"library"`
	Repeat      int           `yaml:"repeat"`
	Iterations  int           `yaml:"iterations"`
	Elapsed     time.Duration `yaml:"elapsed"`
	CallsPerSec float64       `yaml:"calls_per_sec"`
	TotalSecs   float64       `yaml:"total_secs"`
}

// NewMeasurement derives the rounded rates from the raw elapsed time.
func NewMeasurement(suite, library string, iterations int, elapsed time.Duration) Measurement {
	secs := elapsed.Seconds()
	return Measurement{
		Suite:       suite,
		Library:     library,
		Iterations:  iterations,
		Elapsed:     elapsed,
		CallsPerSec: Round(float64(iterations)/secs, 2),
		TotalSecs:   Round(secs, 4),
	}
}
