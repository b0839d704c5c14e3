package codec

import "github.com/goccy/go-json"

// GoJSON uses goccy/go-json.
type GoJSON struct{}

func (GoJSON) Name() string { return "gojson" }

func (GoJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (GoJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
