package jsonnode

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by GetBytes for malformed input.
var ErrInvalidJSON = errors.New("invalid json")

// GetBytes is like Get but works on the raw JSON text, so the document is
// never fully decoded. The returned value has the same types encoding/json
// would produce.
func GetBytes(data []byte, path string, strict bool) (interface{}, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	r := gjson.ParseBytes(data)
	for _, seg := range strings.Split(path, ".") {
		if !r.IsObject() {
			return missing(path, seg, strict)
		}
		var ok bool
		r, ok = member(r, seg)
		if !ok {
			return missing(path, seg, strict)
		}
	}
	return r.Value(), nil
}

// member returns the value of key in obj. Keys are compared literally rather
// than as gjson path syntax, and the last of duplicate keys wins like it does
// for encoding/json.
func member(obj gjson.Result, key string) (gjson.Result, bool) {
	var found gjson.Result
	var ok bool
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found, ok = v, true
		}
		return true
	})
	return found, ok
}
