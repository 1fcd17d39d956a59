package java

import "strings"

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

type DeclKind string

const (
	DeclType         DeclKind = "type"
	DeclField        DeclKind = "field"
	DeclMethod       DeclKind = "method"
	DeclConstructor  DeclKind = "constructor"
	DeclEnumConstant DeclKind = "enum-constant"
)

// Key identifies a declaration across parses. Two declarations with the
// same Key are the same node of a slice.
type Key string

// Decl is implemented by TypeDecl, FieldDecl, MethodDecl, ConstructorDecl
// and EnumConstantDecl.
type Decl interface {
	Key() Key
	Kind() DeclKind
	// Owner is the enclosing type, nil for top-level types and detached
	// members.
	Owner() *TypeDecl
	Unit() *SourceUnit
	isDecl()
}

// DeclName returns the simple name of d. Constructors are named <init>.
func DeclName(d Decl) string {
	switch d := d.(type) {
	case *TypeDecl:
		return d.SimpleName
	case *FieldDecl:
		return d.Name
	case *MethodDecl:
		return d.Name
	case *ConstructorDecl:
		return "<init>"
	case *EnumConstantDecl:
		return d.Name
	}
	return ""
}

// DeclSource returns the verbatim text of d as it appeared in its file.
func DeclSource(d Decl) string {
	switch d := d.(type) {
	case *TypeDecl:
		return d.Source
	case *FieldDecl:
		return d.Source
	case *MethodDecl:
		return d.Source
	case *ConstructorDecl:
		return d.Source
	case *EnumConstantDecl:
		return d.Source
	}
	return ""
}

type Position struct {
	Line   int
	Column int
}

type Modifiers []string

func (m Modifiers) Has(name string) bool {
	for _, s := range m {
		if s == name {
			return true
		}
	}
	return false
}

func (m Modifiers) Visibility() Visibility {
	switch {
	case m.Has("public"):
		return VisibilityPublic
	case m.Has("protected"):
		return VisibilityProtected
	case m.Has("private"):
		return VisibilityPrivate
	}
	return VisibilityPackage
}

func (m Modifiers) String() string {
	return strings.Join(m, " ")
}

type SourceUnit struct {
	Path    string
	Package string
	Imports []Import
	Types   []*TypeDecl
}

type Import struct {
	Name       string
	IsStatic   bool
	IsWildcard bool
}

// SimpleName is the last segment of a single-type or single-static import.
func (i Import) SimpleName() string {
	if i.IsWildcard {
		return ""
	}
	return SimpleName(i.Name)
}

func (i Import) String() string {
	var sb strings.Builder
	sb.WriteString("import ")
	if i.IsStatic {
		sb.WriteString("static ")
	}
	sb.WriteString(i.Name)
	if i.IsWildcard {
		sb.WriteString(".*")
	}
	sb.WriteString(";")
	return sb.String()
}

// AllTypes returns the top-level and nested types of the unit, outer
// types before the types they enclose.
func (u *SourceUnit) AllTypes() []*TypeDecl {
	var all []*TypeDecl
	var walk func(ts []*TypeDecl)
	walk = func(ts []*TypeDecl) {
		for _, t := range ts {
			all = append(all, t)
			walk(t.Types)
		}
	}
	walk(u.Types)
	return all
}

// Link sets owners, units and keys of every declaration in the unit. It
// must be called once the unit is fully populated.
func (u *SourceUnit) Link() {
	for _, t := range u.Types {
		linkType(t, nil, u)
	}
}

func linkType(t *TypeDecl, owner *TypeDecl, u *SourceUnit) {
	t.owner = owner
	t.unit = u
	t.Package = u.Package
	if owner != nil {
		t.QualifiedName = owner.QualifiedName + "." + t.SimpleName
	} else {
		t.QualifiedName = QualifiedName(u.Package, t.SimpleName)
	}
	t.key = Key(t.QualifiedName)
	for _, f := range t.Fields {
		f.owner, f.unit = t, u
		f.key = memberKey(t, f.Name)
	}
	for _, m := range t.Methods {
		m.owner, m.unit = t, u
		m.key = methodKey(t, m.Name, m.Parameters)
	}
	for _, c := range t.Constructors {
		c.owner, c.unit = t, u
		c.key = methodKey(t, "<init>", c.Parameters)
	}
	for _, e := range t.EnumConstants {
		e.owner, e.unit = t, u
		e.key = memberKey(t, e.Name)
	}
	for _, nested := range t.Types {
		linkType(nested, t, u)
	}
}

func memberKey(owner *TypeDecl, name string) Key {
	if owner == nil {
		return Key("#" + name)
	}
	return Key(owner.QualifiedName + "#" + name)
}

func methodKey(owner *TypeDecl, name string, params []Parameter) Key {
	var sb strings.Builder
	if owner != nil {
		sb.WriteString(owner.QualifiedName)
	}
	sb.WriteString("#")
	sb.WriteString(name)
	sb.WriteString("(")
	for i, p := range params {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(p.Type.Erasure())
		if p.IsVarargs {
			sb.WriteString("[]")
		}
	}
	sb.WriteString(")")
	return Key(sb.String())
}

// MethodSignature renders name(T1,T2) with erased parameter types, the
// member part of a method Key.
func MethodSignature(name string, params []Parameter) string {
	k := string(methodKey(nil, name, params))
	return strings.TrimPrefix(k, "#")
}

func QualifiedName(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

func SimpleName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

func PackageOf(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[:i]
	}
	return ""
}
