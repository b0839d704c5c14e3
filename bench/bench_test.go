package bench

import (
	"bytes"
	"context"
	"errors"
	"math"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/felixge/json-checker/codec"
	"github.com/felixge/json-checker/internal"
	"github.com/felixge/json-checker/jsonnode"
	"github.com/felixge/json-checker/workload"
)

type countWorkload struct {
	setups, runs int
	failAt       int
	err          error
}

func (w *countWorkload) Setup() error { w.setups++; return nil }

func (w *countWorkload) Run() error {
	w.runs++
	if w.failAt > 0 && w.runs == w.failAt {
		return w.err
	}
	time.Sleep(10 * time.Microsecond)
	return nil
}

func TestRunCallsPerSec(t *testing.T) {
	w := &countWorkload{}
	r := &Runner{
		Libraries:  []codec.Codec{codec.Std{}},
		Iterations: 50,
		NewWorkload: func(string, codec.Codec) (workload.Workload, error) {
			return w, nil
		},
	}
	ms, err := r.Run(context.Background(), []string{"decode"})
	if err != nil {
		t.Fatal(err)
	}
	if w.setups != 1 || w.runs != 50 {
		t.Fatalf("got %d setups, %d runs", w.setups, w.runs)
	}
	if len(ms) != 1 {
		t.Fatalf("got %d measurements, want 1", len(ms))
	}
	m := ms[0]
	if m.Suite != "decode" || m.Library != "json" || m.Iterations != 50 {
		t.Fatalf("unexpected measurement %+v", m)
	}
	want := 50 / m.Elapsed.Seconds()
	if math.Abs(m.CallsPerSec-want) > 0.0051 {
		t.Fatalf("got calls/sec %v, want %v", m.CallsPerSec, want)
	}
	if m.CallsPerSec <= 0 || math.IsInf(m.CallsPerSec, 0) || math.IsNaN(m.CallsPerSec) {
		t.Fatalf("calls/sec not positive and finite: %v", m.CallsPerSec)
	}
	if math.Abs(m.TotalSecs-m.Elapsed.Seconds()) > 0.000051 {
		t.Fatalf("got total secs %v for %s", m.TotalSecs, m.Elapsed)
	}
}

var lineRe = regexp.MustCompile(`^Library=[a-z]+, Calls/sec=[0-9]+(\.[0-9]{1,2})?, Totsecs=[0-9]+(\.[0-9]{1,4})?$`)

func TestRunOutput(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{
		Libraries:  codec.All(),
		Iterations: 20,
		Args:       []byte("{file: ../data/data.json, keys: 10}"),
		Out:        &out,
	}
	ms, err := r.Run(context.Background(), []string{"descriptor", "encode", "lookup"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 2*len(codec.All())+1 {
		t.Fatalf("got %d measurements", len(ms))
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	var headers []string
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "Metrics for "):
			headers = append(headers, strings.TrimPrefix(line, "Metrics for "))
			if lines[i+1] != rule {
				t.Fatalf("header %q not followed by rule", line)
			}
		case strings.HasPrefix(line, "Library="):
			if !lineRe.MatchString(line) {
				t.Fatalf("malformed report line %q", line)
			}
		}
	}
	want := []string{"Json Descriptor", "Json encode", "Json lookup"}
	if strings.Join(headers, ",") != strings.Join(want, ",") {
		t.Fatalf("got headers %v, want %v", headers, want)
	}
	if !strings.HasPrefix(out.String(), "Metrics for Json Descriptor\n") {
		t.Fatalf("first section must not be preceded by a rule:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "\n\n"+rule+"\nMetrics for Json encode\n") {
		t.Fatalf("missing separator before second section:\n%s", out.String())
	}
	if last := ms[len(ms)-1]; last.Library != workload.LookupLibrary {
		t.Fatalf("got lookup library %q", last.Library)
	}
}

func TestRunRepeat(t *testing.T) {
	r := &Runner{
		Libraries:  []codec.Codec{codec.Std{}, codec.Sonic{}},
		Iterations: 1,
		Repeat:     3,
		NewWorkload: func(string, codec.Codec) (workload.Workload, error) {
			return &countWorkload{}, nil
		},
	}
	ms, err := r.Run(context.Background(), []string{"encode"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 6 {
		t.Fatalf("got %d measurements, want 6", len(ms))
	}
	for i, m := range ms {
		if m.Repeat != i%3 {
			t.Fatalf("measurement %d has repeat %d", i, m.Repeat)
		}
	}
}

func TestRunAbortsOnError(t *testing.T) {
	boom := errors.New("boom")
	var calls int
	r := &Runner{
		Libraries:  []codec.Codec{codec.Std{}, codec.Sonic{}},
		Iterations: 10,
		NewWorkload: func(string, codec.Codec) (workload.Workload, error) {
			calls++
			return &countWorkload{failAt: 3, err: boom}, nil
		},
	}
	ms, err := r.Run(context.Background(), []string{"descriptor", "decode"})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}
	if !strings.Contains(err.Error(), "descriptor/json") {
		t.Fatalf("error lacks context: %v", err)
	}
	if len(ms) != 0 || calls != 1 {
		t.Fatalf("got %d measurements after %d workloads", len(ms), calls)
	}
}

func TestRunMissingAttribute(t *testing.T) {
	r := &Runner{
		Libraries:  []codec.Codec{codec.Std{}},
		Iterations: 1,
		Args:       []byte("{file: ../data/data.json, path: cus.phone}"),
	}
	_, err := r.Run(context.Background(), []string{"descriptor"})
	if !errors.Is(err, jsonnode.ErrMissingAttribute) {
		t.Fatalf("got %v, want ErrMissingAttribute", err)
	}
}

func TestRunUnknownSuite(t *testing.T) {
	r := &Runner{Iterations: 1}
	if _, err := r.Run(context.Background(), []string{"http"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunRejectsNonPositiveIterations(t *testing.T) {
	for _, n := range []int{0, -1} {
		var out bytes.Buffer
		r := &Runner{
			Libraries:  []codec.Codec{codec.Std{}},
			Iterations: n,
			Out:        &out,
			NewWorkload: func(string, codec.Codec) (workload.Workload, error) {
				return &countWorkload{}, nil
			},
		}
		ms, err := r.Run(context.Background(), []string{"decode"})
		if err == nil {
			t.Fatalf("iterations=%d: expected error", n)
		}
		if len(ms) != 0 || out.Len() != 0 {
			t.Fatalf("iterations=%d: got %d measurements, output %q", n, len(ms), out.String())
		}
	}
}

type failingRecorder struct{ n int }

func (f *failingRecorder) Record(internal.Measurement) error {
	f.n++
	return errors.New("sink down")
}

func TestRunRecorderError(t *testing.T) {
	rec := &failingRecorder{}
	r := &Runner{
		Libraries:  []codec.Codec{codec.Std{}, codec.Sonic{}},
		Iterations: 1,
		Recorder:   rec,
		NewWorkload: func(string, codec.Codec) (workload.Workload, error) {
			return &countWorkload{}, nil
		},
	}
	ms, err := r.Run(context.Background(), []string{"decode"})
	if err == nil || rec.n != 1 || len(ms) != 1 {
		t.Fatalf("got err=%v records=%d measurements=%d", err, rec.n, len(ms))
	}
}

func TestTime(t *testing.T) {
	var n int
	d, err := Time(func() error { n++; return nil }, 7)
	if err != nil || n != 7 || d < 0 {
		t.Fatalf("got n=%d d=%s err=%v", n, d, err)
	}
}
