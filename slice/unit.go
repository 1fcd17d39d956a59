package slice

import (
	"sort"

	"github.com/dhamidi/javaslice/java"
)

// SyntheticUnit is the output counterpart of a source file: one per
// top-level type that has at least one member in the slice.
type SyntheticUnit struct {
	// Name is the qualified name of the top-level type.
	Name    string
	Package string
	Source  *java.SourceUnit
	// Imports holds the imports of Source that the slice still needs. It
	// is filled in when a run completes.
	Imports []java.Import

	root  *SyntheticType
	types map[string]*SyntheticType
	used  map[string]bool
}

func newSyntheticUnit(top *java.TypeDecl) *SyntheticUnit {
	u := &SyntheticUnit{
		Name:    top.QualifiedName,
		Package: top.Package,
		Source:  top.Unit(),
		types:   make(map[string]*SyntheticType),
		used:    make(map[string]bool),
	}
	u.root = u.typeFor(top)
	return u
}

// Root is the synthetic counterpart of the top-level type.
func (u *SyntheticUnit) Root() *SyntheticType {
	return u.root
}

// Type returns the synthetic type for a qualified type name declared in
// the unit.
func (u *SyntheticUnit) Type(qualifiedName string) (*SyntheticType, bool) {
	t, ok := u.types[qualifiedName]
	return t, ok
}

func (u *SyntheticUnit) typeFor(t *java.TypeDecl) *SyntheticType {
	if st, ok := u.types[t.QualifiedName]; ok {
		return st
	}
	st := &SyntheticType{Decl: t, unit: u, members: make(map[java.Key]java.Decl)}
	u.types[t.QualifiedName] = st
	return st
}

func (u *SyntheticUnit) useImport(imp *java.Import) {
	if imp != nil {
		u.used[imp.String()] = true
	}
}

// SyntheticType accumulates the members of one type that are reachable.
// The header (kind, modifiers, type parameters, record components) is
// taken from Decl; supertypes and annotations are copied explicitly.
type SyntheticType struct {
	Decl        *java.TypeDecl
	Annotations []java.Annotation
	Extends     *java.TypeRef
	Implements  []java.TypeRef

	unit    *SyntheticUnit
	members map[java.Key]java.Decl
}

// Add copies a member into the type. Adding the same declaration twice
// has no effect.
func (t *SyntheticType) Add(d java.Decl) bool {
	if _, ok := t.members[d.Key()]; ok {
		return false
	}
	t.members[d.Key()] = d
	return true
}

func (t *SyntheticType) Has(key java.Key) bool {
	_, ok := t.members[key]
	return ok
}

func (t *SyntheticType) Len() int {
	return len(t.members)
}

// Members returns the copied members in source order. Nested types are
// returned as *java.TypeDecl; their synthetic counterpart is Nested.
func (t *SyntheticType) Members() []java.Decl {
	out := make([]java.Decl, 0, len(t.members))
	for _, d := range t.members {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := declPosition(out[i]), declPosition(out[j])
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		if pi.Column != pj.Column {
			return pi.Column < pj.Column
		}
		return out[i].Key() < out[j].Key()
	})
	return out
}

// Nested returns the synthetic type of a nested type member.
func (t *SyntheticType) Nested(d *java.TypeDecl) (*SyntheticType, bool) {
	return t.unit.Type(d.QualifiedName)
}

func declPosition(d java.Decl) java.Position {
	switch d := d.(type) {
	case *java.TypeDecl:
		return d.Position
	case *java.FieldDecl:
		return d.Position
	case *java.MethodDecl:
		return d.Position
	case *java.ConstructorDecl:
		return d.Position
	case *java.EnumConstantDecl:
		return d.Position
	}
	return java.Position{}
}

func (t *SyntheticType) hasMemberNamed(name string) bool {
	for _, d := range t.members {
		if java.DeclName(d) == name {
			return true
		}
	}
	return false
}

// finalizeImports keeps the imports of the source file that do not name
// a type of the code base left out of the slice.
func (u *SyntheticUnit) finalizeImports(c *Context) {
	u.Imports = nil
	if u.Source == nil {
		return
	}
	for _, imp := range u.Source.Imports {
		if c.keepImport(u, imp) {
			u.Imports = append(u.Imports, imp)
		}
	}
}
