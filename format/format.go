// Package format renders slices: synthetic units as Java source, and the
// slice graph as line, JSON or YAML text.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/javaslice/slice"
)

type UnitEncoder interface {
	encoding.TextMarshaler
	Encode(unit *slice.SyntheticUnit) error
}

type GraphEncoder interface {
	encoding.TextMarshaler
	Encode(res *slice.Result) error
}

// GraphFormats lists the names accepted by NewGraphEncoder.
var GraphFormats = []string{"line", "json", "yaml"}

func NewGraphEncoder(format string, w io.Writer) (GraphEncoder, error) {
	switch format {
	case "", "line":
		return NewLineGraphEncoder(w), nil
	case "json":
		return NewJSONGraphEncoder(w), nil
	case "yaml":
		return NewYAMLGraphEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown graph format %q", format)
}
