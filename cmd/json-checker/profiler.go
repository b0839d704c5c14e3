package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/felixge/json-checker/internal"
)

// Profiler captures the enabled pprof profiles between Start and Stop.
type Profiler struct {
	internal.ProfileConfig
	Outdir string

	bufs     map[string]*bytes.Buffer
	profiles []RunProfile
}

type profiler struct {
	Kind    string
	Enabled func(internal.ProfileConfig) bool
	Init    func(internal.ProfileConfig)
	Start   func(io.Writer) error
	Stop    func(io.Writer) error
}

var profilers = []profiler{
	{
		Kind:    "cpu.pprof",
		Enabled: func(c internal.ProfileConfig) bool { return c.CPU },
		Start: func(w io.Writer) error {
			return pprof.StartCPUProfile(w)
		},
		Stop: func(_ io.Writer) error {
			pprof.StopCPUProfile()
			return nil
		},
	},

	{
		Kind:    "mem.pprof",
		Enabled: func(c internal.ProfileConfig) bool { return c.Mem },
		Init: func(c internal.ProfileConfig) {
			if c.MemRate != 0 {
				runtime.MemProfileRate = c.MemRate
			}
		},
		Stop: func(w io.Writer) error {
			return pprof.Lookup("allocs").WriteTo(w, 0)
		},
	},
}

// Start begins a new profiling window. It returns the first error from
// starting a profile; the other profiles still run.
func (p *Profiler) Start() error {
	if p.bufs == nil {
		p.bufs = make(map[string]*bytes.Buffer)
		for _, prof := range profilers {
			if prof.Enabled(p.ProfileConfig) && prof.Init != nil {
				prof.Init(p.ProfileConfig)
			}
		}
	}
	p.profiles = p.profiles[:0]

	var first error
	for _, prof := range profilers {
		if !prof.Enabled(p.ProfileConfig) {
			continue
		}
		buf := p.bufs[prof.Kind]
		if buf == nil {
			buf = new(bytes.Buffer)
			p.bufs[prof.Kind] = buf
		}
		buf.Reset()

		start := time.Now()
		var startErr error
		if prof.Start != nil {
			startErr = prof.Start(buf)
		}
		if startErr != nil && first == nil {
			first = fmt.Errorf("start %s: %w", prof.Kind, startErr)
		}
		p.profiles = append(p.profiles, RunProfile{
			Kind:  prof.Kind,
			Start: start,
			Error: errStr(startErr),
		})
	}
	return first
}

// Stop ends the window and writes <kind>.<label>.pprof files to Outdir.
func (p *Profiler) Stop(label string) []RunProfile {
	for i := range p.profiles {
		record := &p.profiles[i]
		var prof profiler
		for _, candidate := range profilers {
			if candidate.Kind == record.Kind {
				prof = candidate
			}
		}

		buf := p.bufs[prof.Kind]
		stop := time.Now()
		record.ProfileDuration = stop.Sub(record.Start)
		if prof.Stop != nil {
			if err := prof.Stop(buf); err != nil && record.Error == "" {
				record.Error = errStr(err)
			}
		}
		record.StopDuration = time.Since(stop)
		kind := strings.Split(prof.Kind, ".")
		record.File = fmt.Sprintf("%s.%s.%s", kind[0], label, kind[1])
		profPath := filepath.Join(p.Outdir, record.File)
		writeErr := os.WriteFile(profPath, buf.Bytes(), 0644)
		if writeErr != nil && record.Error == "" {
			record.Error = errStr(writeErr)
		}
	}
	return append([]RunProfile(nil), p.profiles...)
}

type RunProfile struct {
	Kind            string        `yaml:"kind"`
	File            string        `yaml:"file,omitempty"`
	Start           time.Time     `yaml:"start"`
	ProfileDuration time.Duration `yaml:"profile_duration,omitempty"`
	StopDuration    time.Duration `yaml:"stop_duration,omitempty"`
	Error           string        `yaml:"error,omitempty"`
}

// errStr returns "" if err is nil or err.Error() otherwise.
func errStr(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
