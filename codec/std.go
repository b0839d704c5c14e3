package codec

import "encoding/json"

// Std uses the standard library.
type Std struct{}

func (Std) Name() string { return "json" }

func (Std) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (Std) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
