package format

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/javaslice/slice"
)

type YAMLGraphEncoder struct {
	w   io.Writer
	res *slice.Result
}

func NewYAMLGraphEncoder(w io.Writer) *YAMLGraphEncoder {
	return &YAMLGraphEncoder{w: w}
}

func (e *YAMLGraphEncoder) Encode(res *slice.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLGraphEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewGraph(e.res)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
