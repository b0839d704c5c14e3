package codec

import "github.com/bytedance/sonic"

// Sonic uses bytedance/sonic with its encoding/json compatible config, so
// decoded numbers are float64 and map keys are sorted on encode.
type Sonic struct{}

func (Sonic) Name() string { return "sonic" }

func (Sonic) Marshal(v interface{}) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

func (Sonic) Unmarshal(data []byte, v interface{}) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}
