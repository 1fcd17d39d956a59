package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/javaslice/java"
	"github.com/dhamidi/javaslice/slice"
)

type JSONGraphEncoder struct {
	w   io.Writer
	res *slice.Result
}

func NewJSONGraphEncoder(w io.Writer) *JSONGraphEncoder {
	return &JSONGraphEncoder{w: w}
}

func (e *JSONGraphEncoder) Encode(res *slice.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONGraphEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(NewGraph(e.res), "", "  ")
}

// JSONDeclEncoder lists the declarations of a source unit with their keys.
type JSONDeclEncoder struct {
	w    io.Writer
	unit *java.SourceUnit
}

func NewJSONDeclEncoder(w io.Writer) *JSONDeclEncoder {
	return &JSONDeclEncoder{w: w}
}

func (e *JSONDeclEncoder) Encode(unit *java.SourceUnit) error {
	e.unit = unit
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

type jsonUnit struct {
	File    java.URLString `json:"file"`
	Package string         `json:"package,omitempty"`
	Imports []string       `json:"imports,omitempty"`
	Decls   []jsonDecl     `json:"declarations"`
}

type jsonDecl struct {
	Key       java.Key      `json:"key"`
	Kind      java.DeclKind `json:"kind"`
	ClassKind string        `json:"classKind,omitempty"`
	Modifiers []string      `json:"modifiers,omitempty"`
	Type      string        `json:"type,omitempty"`
	Line      int           `json:"line"`
}

func (e *JSONDeclEncoder) MarshalText() ([]byte, error) {
	u := e.unit
	data := jsonUnit{Package: u.Package}
	if u.Path != "" {
		data.File = java.FileURL(u.Path)
	}
	for _, imp := range u.Imports {
		data.Imports = append(data.Imports, imp.String())
	}
	for _, d := range unitDecls(u) {
		data.Decls = append(data.Decls, jsonDecl{
			Key:       d.Key(),
			Kind:      d.Kind(),
			ClassKind: classKind(d),
			Modifiers: declModifiers(d),
			Type:      declType(d),
			Line:      declLine(d),
		})
	}
	return json.MarshalIndent(data, "", "  ")
}
