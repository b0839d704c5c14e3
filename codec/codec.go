// Package codec wraps the JSON libraries being benchmarked behind a common
// interface.
package codec

import (
	"fmt"
	"strings"
)

// Codec is a JSON implementation.
type Codec interface {
	Name() string
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// all is the fixed candidate set, encoding/json first.
var all = []Codec{
	Std{},
	Jsoniter{},
	GoJSON{},
	Segmentio{},
	Sonic{},
}

// All returns every codec in benchmark order.
func All() []Codec {
	return append([]Codec(nil), all...)
}

// Names returns the names of All.
func Names() []string {
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name()
	}
	return names
}

// Lookup returns the codec called name.
func Lookup(name string) (Codec, error) {
	for _, c := range all {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unknown library: %q (known: %s)", name, strings.Join(Names(), ", "))
}

// LookupAll resolves names in order.
func LookupAll(names []string) ([]Codec, error) {
	codecs := make([]Codec, 0, len(names))
	for _, name := range names {
		c, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		codecs = append(codecs, c)
	}
	return codecs, nil
}
