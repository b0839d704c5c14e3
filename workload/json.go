package workload

import (
	"fmt"
	"os"
	"strconv"

	"github.com/felixge/json-checker/codec"
	"github.com/felixge/json-checker/jsonnode"
)

// Descriptor reads the file, decodes it and resolves Path on every Run. This
// includes the per-request I/O cost on purpose.
type Descriptor struct {
	Args
	Codec codec.Codec

	// Value is the formatted result of the last Run.
	Value string
}

func (d *Descriptor) Setup() error {
	if d.Path == "" {
		d.Path = jsonnode.CustomerName
	}
	if _, err := os.Stat(d.File); err != nil {
		return err
	}
	return nil
}

func (d *Descriptor) Run() error {
	data, err := jsonnode.ReadData(d.File)
	if err != nil {
		return err
	}
	v, err := data.Field(d.Codec, d.Path)
	if err != nil {
		return err
	}
	d.Value = fmt.Sprint(v)
	return nil
}

// Decode decodes the file, which is read once during Setup.
type Decode struct {
	Args
	Codec codec.Codec

	data []byte
}

func (d *Decode) Setup() error {
	data, err := os.ReadFile(d.File)
	if err != nil {
		return err
	}
	d.data = data
	return nil
}

func (d *Decode) Run() error {
	var m interface{}
	return d.Codec.Unmarshal(d.data, &m)
}

// Encode marshals a flat map of Keys string entries.
type Encode struct {
	Args
	Codec codec.Codec

	m map[string]string
}

func (e *Encode) Setup() error {
	if e.Keys == 0 {
		e.Keys = 10000
	}
	e.m = make(map[string]string, e.Keys)
	for i := 0; i < e.Keys; i++ {
		s := strconv.Itoa(i)
		e.m[s] = s
	}
	return nil
}

func (e *Encode) Run() error {
	_, err := e.Codec.Marshal(e.m)
	return err
}

// Lookup resolves Path straight from the file contents without decoding the
// whole document.
type Lookup struct {
	Args

	data []byte
}

func (l *Lookup) Setup() error {
	if l.Path == "" {
		l.Path = jsonnode.CustomerName
	}
	data, err := os.ReadFile(l.File)
	if err != nil {
		return err
	}
	l.data = data
	return nil
}

func (l *Lookup) Run() error {
	_, err := jsonnode.GetBytes(l.data, l.Path, true)
	return err
}
