// Package jsonnode resolves dotted paths like "cus.name" against decoded JSON
// documents.
package jsonnode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAttribute is matched by every error returned from Get and
// GetBytes in strict mode when the path does not exist.
var ErrMissingAttribute = errors.New("missing attribute")

// MissingAttributeError describes which segment of Path could not be found.
type MissingAttributeError struct {
	Path    string
	Segment string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("missing attribute %q in path %q", e.Segment, e.Path)
}

func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

// Get returns the value at path inside doc. Every node along the path must be
// a map[string]interface{} as produced by decoding JSON into an interface{}.
//
// If strict is true, a missing key or a node that is nil or not an object
// results in a *MissingAttributeError. Otherwise Get returns nil, nil for the
// same conditions. A key that exists with a JSON null value is not missing.
func Get(doc interface{}, path string, strict bool) (interface{}, error) {
	node := doc
	for _, seg := range strings.Split(path, ".") {
		obj, ok := node.(map[string]interface{})
		if !ok {
			return missing(path, seg, strict)
		}
		node, ok = obj[seg]
		if !ok {
			return missing(path, seg, strict)
		}
	}
	return node, nil
}

func missing(path, seg string, strict bool) (interface{}, error) {
	if strict {
		return nil, &MissingAttributeError{Path: path, Segment: seg}
	}
	return nil, nil
}
