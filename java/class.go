package java

type TypeDecl struct {
	SimpleName     string
	QualifiedName  string
	Package        string
	ClassKind      ClassKind
	Modifiers      Modifiers
	Annotations    []Annotation
	TypeParameters []TypeParameter
	SuperClass     *TypeRef
	Interfaces     []TypeRef
	// RecordComponents holds the header of a record, in order.
	RecordComponents []Parameter
	Fields           []*FieldDecl
	Methods          []*MethodDecl
	Constructors     []*ConstructorDecl
	EnumConstants    []*EnumConstantDecl
	Types            []*TypeDecl
	Source           string
	Position         Position

	owner *TypeDecl
	unit  *SourceUnit
	key   Key
}

func (t *TypeDecl) Key() Key          { return t.key }
func (t *TypeDecl) Kind() DeclKind    { return DeclType }
func (t *TypeDecl) Owner() *TypeDecl  { return t.owner }
func (t *TypeDecl) Unit() *SourceUnit { return t.unit }
func (*TypeDecl) isDecl()             {}

func (t *TypeDecl) Visibility() Visibility { return t.Modifiers.Visibility() }

func (t *TypeDecl) IsInterface() bool {
	return t.ClassKind == ClassKindInterface || t.ClassKind == ClassKindAnnotation
}

func (t *TypeDecl) IsEnum() bool   { return t.ClassKind == ClassKindEnum }
func (t *TypeDecl) IsRecord() bool { return t.ClassKind == ClassKindRecord }

func (t *TypeDecl) IsAbstract() bool {
	return t.IsInterface() || t.Modifiers.Has("abstract")
}

// Outermost returns the top-level type that encloses t, or t itself.
func (t *TypeDecl) Outermost() *TypeDecl {
	for t.owner != nil {
		t = t.owner
	}
	return t
}

// Supertypes returns the extends clause followed by the implements clause.
func (t *TypeDecl) Supertypes() []TypeRef {
	var refs []TypeRef
	if t.SuperClass != nil {
		refs = append(refs, *t.SuperClass)
	}
	return append(refs, t.Interfaces...)
}

func (t *TypeDecl) Field(name string) *FieldDecl {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (t *TypeDecl) EnumConstant(name string) *EnumConstantDecl {
	for _, e := range t.EnumConstants {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (t *TypeDecl) NestedType(name string) *TypeDecl {
	for _, n := range t.Types {
		if n.SimpleName == name {
			return n
		}
	}
	return nil
}

func (t *TypeDecl) MethodsNamed(name string) []*MethodDecl {
	var ms []*MethodDecl
	for _, m := range t.Methods {
		if m.Name == name {
			ms = append(ms, m)
		}
	}
	return ms
}

// RecordComponent returns the record header component with the given name.
func (t *TypeDecl) RecordComponent(name string) (Parameter, bool) {
	for _, p := range t.RecordComponents {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

func (t *TypeDecl) HasAnnotation(names ...string) bool {
	_, ok := FindAnnotation(t.Annotations, names...)
	return ok
}

func (t *TypeDecl) TypeParameterNamed(name string) bool {
	for _, tp := range t.TypeParameters {
		if tp.Name == name {
			return true
		}
	}
	return false
}
