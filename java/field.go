package java

// FieldDecl is one declarator of a field declaration. `int a, b;` yields
// two FieldDecls that share Modifiers, Annotations and Type.
type FieldDecl struct {
	Name        string
	Type        TypeRef
	Modifiers   Modifiers
	Annotations []Annotation
	Initializer Expr
	// InitializerSource is the initializer text as written, without "=".
	InitializerSource string
	Source            string
	Position          Position

	owner *TypeDecl
	unit  *SourceUnit
	key   Key
}

// NewField returns a field that is not attached to any source unit.
func NewField(owner *TypeDecl, name string, typ TypeRef) *FieldDecl {
	f := &FieldDecl{Name: name, Type: typ, owner: owner}
	if owner != nil {
		f.unit = owner.unit
	}
	f.key = memberKey(owner, name)
	return f
}

func (f *FieldDecl) Key() Key          { return f.key }
func (f *FieldDecl) Kind() DeclKind    { return DeclField }
func (f *FieldDecl) Owner() *TypeDecl  { return f.owner }
func (f *FieldDecl) Unit() *SourceUnit { return f.unit }
func (*FieldDecl) isDecl()             {}

func (f *FieldDecl) Visibility() Visibility { return f.Modifiers.Visibility() }
func (f *FieldDecl) IsStatic() bool         { return f.Modifiers.Has("static") }
func (f *FieldDecl) IsFinal() bool          { return f.Modifiers.Has("final") }

func (f *FieldDecl) HasAnnotation(names ...string) bool {
	_, ok := FindAnnotation(f.Annotations, names...)
	return ok
}

// EnumConstantDecl is a constant of an enum body. Arguments are the
// constructor arguments; Body is the constant-specific class body.
type EnumConstantDecl struct {
	Name        string
	Annotations []Annotation
	Arguments   []Expr
	Body        *TypeDecl
	Source      string
	Position    Position

	owner *TypeDecl
	unit  *SourceUnit
	key   Key
}

func (e *EnumConstantDecl) Key() Key          { return e.key }
func (e *EnumConstantDecl) Kind() DeclKind    { return DeclEnumConstant }
func (e *EnumConstantDecl) Owner() *TypeDecl  { return e.owner }
func (e *EnumConstantDecl) Unit() *SourceUnit { return e.unit }
func (*EnumConstantDecl) isDecl()             {}
