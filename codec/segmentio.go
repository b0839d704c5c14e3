package codec

import "github.com/segmentio/encoding/json"

// Segmentio uses segmentio/encoding/json.
type Segmentio struct{}

func (Segmentio) Name() string { return "segmentio" }

func (Segmentio) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (Segmentio) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
