package format

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/javaslice/java"
	"github.com/dhamidi/javaslice/slice"
)

// JavaUnitEncoder writes a synthetic unit as a Java compilation unit.
// Members are copied verbatim from their source text; only type headers
// are rebuilt.
type JavaUnitEncoder struct {
	w      io.Writer
	unit   *slice.SyntheticUnit
	indent string
}

func NewJavaUnitEncoder(w io.Writer) *JavaUnitEncoder {
	return &JavaUnitEncoder{w: w, indent: "    "}
}

func (e *JavaUnitEncoder) Encode(unit *slice.SyntheticUnit) error {
	e.unit = unit
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaUnitEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	u := e.unit

	if u.Package != "" {
		sb.WriteString("package ")
		sb.WriteString(u.Package)
		sb.WriteString(";\n\n")
	}
	for _, imp := range u.Imports {
		sb.WriteString(imp.String())
		sb.WriteString("\n")
	}
	if len(u.Imports) > 0 {
		sb.WriteString("\n")
	}

	e.writeType(&sb, u.Root(), 0)
	return []byte(sb.String()), nil
}

func (e *JavaUnitEncoder) writeType(sb *strings.Builder, st *slice.SyntheticType, depth int) {
	prefix := strings.Repeat(e.indent, depth)
	inner := prefix + e.indent
	t := st.Decl

	for _, a := range st.Annotations {
		sb.WriteString(prefix)
		sb.WriteString(a.Source)
		sb.WriteString("\n")
	}
	sb.WriteString(prefix)
	e.writeHeader(sb, st)
	sb.WriteString(" {\n")

	var constants []string
	var members []java.Decl
	for _, d := range st.Members() {
		if c, ok := d.(*java.EnumConstantDecl); ok {
			constants = append(constants, inner+reindent(c.Source, c.Position.Column, inner))
			continue
		}
		members = append(members, d)
	}
	if t.IsEnum() && (len(constants) > 0 || len(members) > 0) {
		sb.WriteString(strings.Join(constants, ",\n"))
		if len(constants) == 0 {
			sb.WriteString(inner)
		}
		sb.WriteString(";\n")
		if len(members) > 0 {
			sb.WriteString("\n")
		}
	}

	for i, d := range members {
		if i > 0 {
			sb.WriteString("\n")
		}
		if nt, ok := d.(*java.TypeDecl); ok {
			if nested, ok := st.Nested(nt); ok {
				e.writeType(sb, nested, depth+1)
			}
			continue
		}
		sb.WriteString(inner)
		sb.WriteString(reindent(java.DeclSource(d), declColumn(d), inner))
		sb.WriteString("\n")
	}

	sb.WriteString(prefix)
	sb.WriteString("}\n")
}

func (e *JavaUnitEncoder) writeHeader(sb *strings.Builder, st *slice.SyntheticType) {
	t := st.Decl

	for _, m := range t.Modifiers {
		// The permitted subtypes are not part of the slice.
		if m == "sealed" || m == "non-sealed" {
			continue
		}
		sb.WriteString(m)
		sb.WriteString(" ")
	}

	switch t.ClassKind {
	case java.ClassKindAnnotation:
		sb.WriteString("@interface ")
	case "":
		sb.WriteString("class ")
	default:
		sb.WriteString(string(t.ClassKind))
		sb.WriteString(" ")
	}
	sb.WriteString(t.SimpleName)

	if len(t.TypeParameters) > 0 {
		sb.WriteString("<")
		for i, tp := range t.TypeParameters {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(typeParameterStr(tp))
		}
		sb.WriteString(">")
	}

	if t.IsRecord() {
		sb.WriteString("(")
		for i, p := range t.RecordComponents {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.String())
		}
		sb.WriteString(")")
	}

	if st.Extends != nil && !t.IsInterface() && !t.IsEnum() && !t.IsRecord() {
		sb.WriteString(" extends ")
		sb.WriteString(st.Extends.String())
	}

	if len(st.Implements) > 0 {
		if t.IsInterface() {
			sb.WriteString(" extends ")
		} else {
			sb.WriteString(" implements ")
		}
		for i, ref := range st.Implements {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(ref.String())
		}
	}
}

func typeParameterStr(tp java.TypeParameter) string {
	if tp.Source != "" {
		return tp.Source
	}
	if len(tp.Bounds) == 0 {
		return tp.Name
	}
	bounds := make([]string, len(tp.Bounds))
	for i, b := range tp.Bounds {
		bounds[i] = b.String()
	}
	return tp.Name + " extends " + strings.Join(bounds, " & ")
}

// reindent moves the continuation lines of text, which started at the
// 1-based column col, under prefix.
func reindent(text string, col int, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, " \t\n"), "\n")
	if len(lines) == 1 {
		return lines[0]
	}
	margin := col - 1
	for i := 1; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " \t\r")
		if line == "" {
			lines[i] = ""
			continue
		}
		n := 0
		for n < margin && n < len(line) && (line[n] == ' ' || line[n] == '\t') {
			n++
		}
		lines[i] = prefix + line[n:]
	}
	return strings.Join(lines, "\n")
}

func declColumn(d java.Decl) int {
	switch d := d.(type) {
	case *java.FieldDecl:
		return d.Position.Column
	case *java.MethodDecl:
		return d.Position.Column
	case *java.ConstructorDecl:
		return d.Position.Column
	case *java.EnumConstantDecl:
		return d.Position.Column
	case *java.TypeDecl:
		return d.Position.Column
	}
	return 1
}

// UnitPath is the path of a unit's file below dir, following the package
// directory layout.
func UnitPath(dir string, unit *slice.SyntheticUnit) string {
	parts := []string{dir}
	if unit.Package != "" {
		parts = append(parts, strings.Split(unit.Package, ".")...)
	}
	parts = append(parts, java.SimpleName(unit.Name)+".java")
	return filepath.Join(parts...)
}

// WriteUnits writes every synthetic unit of res below dir and returns the
// written paths in type name order.
func WriteUnits(dir string, res *slice.Result) ([]string, error) {
	var written []string
	for _, u := range res.SortedUnits() {
		path := UnitPath(dir, u)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("write %s: %w", u.Name, err)
		}
		text, err := NewJavaUnitEncoder(nil).marshalUnit(u)
		if err != nil {
			return written, fmt.Errorf("write %s: %w", u.Name, err)
		}
		if err := os.WriteFile(path, text, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", u.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func (e *JavaUnitEncoder) marshalUnit(u *slice.SyntheticUnit) ([]byte, error) {
	e.unit = u
	return e.MarshalText()
}
