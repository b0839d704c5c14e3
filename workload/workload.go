package workload

import (
	"fmt"

	"github.com/felixge/json-checker/codec"
	"gopkg.in/yaml.v3"
)

// Suites lists the workload names in report order.
var Suites = []string{"descriptor", "decode", "encode", "lookup"}

// LookupLibrary is the library name reported by the lookup suite, which
// doesn't decode through a codec.
const LookupLibrary = "gjson"

type Workload interface {
	Setup() error
	Run() error
}

// Args are the yaml-configurable workload parameters.
type Args struct {
	File string `yaml:"file"`
	Path string `yaml:"path"`
	Keys int    `yaml:"keys"`
}

// New returns the workload called name, running against c. c may be nil for
// the lookup suite.
func New(name string, c codec.Codec, args []byte) (Workload, error) {
	var a Args
	if err := yaml.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var w Workload
	switch name {
	case "descriptor":
		w = &Descriptor{Args: a, Codec: c}
	case "decode":
		w = &Decode{Args: a, Codec: c}
	case "encode":
		w = &Encode{Args: a, Codec: c}
	case "lookup":
		return &Lookup{Args: a}, nil
	default:
		return nil, fmt.Errorf("unknown workload: %q", name)
	}
	if c == nil {
		return nil, fmt.Errorf("workload %q needs a library", name)
	}
	return w, nil
}
