package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/javaslice/java"
	"github.com/dhamidi/javaslice/slice"
)

// LineGraphEncoder prints one tab separated record per line:
//
//	node	<kind>	<key>	<state>
//	edge	<from>	<to>
//	unit	<type>	<members>
//	unresolved	<text>	<scope>
type LineGraphEncoder struct {
	w   io.Writer
	res *slice.Result
}

func NewLineGraphEncoder(w io.Writer) *LineGraphEncoder {
	return &LineGraphEncoder{w: w}
}

func (e *LineGraphEncoder) Encode(res *slice.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineGraphEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.res

	for _, n := range r.Nodes {
		fmt.Fprintf(&sb, "node\t%s\t%s\t%s\n", n.Decl.Kind(), n.Key(), n.State())
	}
	for _, edge := range r.Edges {
		fmt.Fprintf(&sb, "edge\t%s\t%s\n", edge.From, edge.To)
	}
	for _, u := range r.SortedUnits() {
		fmt.Fprintf(&sb, "unit\t%s\t%d\n", u.Name, len(unitMembers(u)))
	}
	for _, ref := range r.Unresolved {
		scope := ref.Scope
		if scope == "" {
			scope = "-"
		}
		fmt.Fprintf(&sb, "unresolved\t%s\t%s\n", ref.Text, scope)
	}

	return []byte(sb.String()), nil
}

// LineDeclEncoder prints the declarations of a source unit, one per line:
// kind, key, modifiers and type.
type LineDeclEncoder struct {
	w    io.Writer
	unit *java.SourceUnit
}

func NewLineDeclEncoder(w io.Writer) *LineDeclEncoder {
	return &LineDeclEncoder{w: w}
}

func (e *LineDeclEncoder) Encode(unit *java.SourceUnit) error {
	e.unit = unit
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineDeclEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, d := range unitDecls(e.unit) {
		kind := string(d.Kind())
		if ck := classKind(d); ck != "" {
			kind = ck
		}
		typ := declType(d)
		if typ == "" {
			typ = "-"
		}
		fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\n", kind, d.Key(), modifiersStr(declModifiers(d)), typ)
	}
	return []byte(sb.String()), nil
}

// unitDecls walks the unit in declaration order: each type followed by its
// enum constants, fields, constructors, methods and nested types.
func unitDecls(u *java.SourceUnit) []java.Decl {
	var out []java.Decl
	var walk func(t *java.TypeDecl)
	walk = func(t *java.TypeDecl) {
		out = append(out, t)
		for _, c := range t.EnumConstants {
			out = append(out, c)
		}
		for _, f := range t.Fields {
			out = append(out, f)
		}
		for _, c := range t.Constructors {
			out = append(out, c)
		}
		for _, m := range t.Methods {
			out = append(out, m)
		}
		for _, n := range t.Types {
			walk(n)
		}
	}
	for _, t := range u.Types {
		walk(t)
	}
	return out
}

func classKind(d java.Decl) string {
	if t, ok := d.(*java.TypeDecl); ok {
		return string(t.ClassKind)
	}
	return ""
}

func declModifiers(d java.Decl) java.Modifiers {
	switch d := d.(type) {
	case *java.TypeDecl:
		return d.Modifiers
	case *java.FieldDecl:
		return d.Modifiers
	case *java.MethodDecl:
		return d.Modifiers
	case *java.ConstructorDecl:
		return d.Modifiers
	}
	return nil
}

func declType(d java.Decl) string {
	switch d := d.(type) {
	case *java.FieldDecl:
		return d.Type.String()
	case *java.MethodDecl:
		return d.ReturnType.String()
	}
	return ""
}

func modifiersStr(mods java.Modifiers) string {
	if len(mods) == 0 {
		return "-"
	}
	return strings.Join(mods, ",")
}
