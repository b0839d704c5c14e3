package jsonnode

import "os"

// Paths of the fields exposed by the fixture documents.
const (
	CustomerName    = "cus.name"
	CustomerAddress = "cus.address"
	LeadSource      = "lead.source"
)

// Unmarshaler decodes JSON text into v.
type Unmarshaler interface {
	Unmarshal(data []byte, v interface{}) error
}

// Data holds the raw text of a JSON document. Fields are resolved from it on
// every call, nothing is cached.
type Data struct {
	JSON []byte
}

// ReadData reads the document stored at path.
func ReadData(path string) (*Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Data{JSON: b}, nil
}

// Field decodes d with u and resolves path strictly. An empty document
// resolves to nil.
func (d *Data) Field(u Unmarshaler, path string) (interface{}, error) {
	if len(d.JSON) == 0 {
		return nil, nil
	}
	var doc interface{}
	if err := u.Unmarshal(d.JSON, &doc); err != nil {
		return nil, err
	}
	return Get(doc, path, true)
}

func (d *Data) Name(u Unmarshaler) (interface{}, error)    { return d.Field(u, CustomerName) }
func (d *Data) Address(u Unmarshaler) (interface{}, error) { return d.Field(u, CustomerAddress) }
func (d *Data) Source(u Unmarshaler) (interface{}, error)  { return d.Field(u, LeadSource) }
