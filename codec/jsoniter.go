package codec

import jsoniter "github.com/json-iterator/go"

var jsoniterAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Jsoniter uses json-iterator configured to behave like encoding/json.
type Jsoniter struct{}

func (Jsoniter) Name() string { return "jsoniter" }

func (Jsoniter) Marshal(v interface{}) ([]byte, error) {
	return jsoniterAPI.Marshal(v)
}

func (Jsoniter) Unmarshal(data []byte, v interface{}) error {
	return jsoniterAPI.Unmarshal(data, v)
}
