package java

type MethodDecl struct {
	Name           string
	ReturnType     TypeRef
	Parameters     []Parameter
	TypeParameters []TypeParameter
	Throws         []TypeRef
	Modifiers      Modifiers
	Annotations    []Annotation
	// Body is nil for abstract, native and interface methods.
	Body     *Block
	Source   string
	Position Position

	owner *TypeDecl
	unit  *SourceUnit
	key   Key
}

func (m *MethodDecl) Key() Key          { return m.key }
func (m *MethodDecl) Kind() DeclKind    { return DeclMethod }
func (m *MethodDecl) Owner() *TypeDecl  { return m.owner }
func (m *MethodDecl) Unit() *SourceUnit { return m.unit }
func (*MethodDecl) isDecl()             {}

func (m *MethodDecl) Visibility() Visibility { return m.Modifiers.Visibility() }
func (m *MethodDecl) IsStatic() bool         { return m.Modifiers.Has("static") }

func (m *MethodDecl) IsAbstract() bool {
	if m.Modifiers.Has("abstract") {
		return true
	}
	return m.Body == nil && m.owner != nil && m.owner.IsInterface() &&
		!m.Modifiers.Has("default") && !m.Modifiers.Has("static")
}

func (m *MethodDecl) IsVarargs() bool {
	return len(m.Parameters) > 0 && m.Parameters[len(m.Parameters)-1].IsVarargs
}

func (m *MethodDecl) HasAnnotation(names ...string) bool {
	_, ok := FindAnnotation(m.Annotations, names...)
	return ok
}

// Signature renders the method as name(T1,T2) with erased parameter types.
func (m *MethodDecl) Signature() string {
	return MethodSignature(m.Name, m.Parameters)
}

type ConstructorDecl struct {
	// Name is the simple name of the declaring type.
	Name           string
	Parameters     []Parameter
	TypeParameters []TypeParameter
	Throws         []TypeRef
	Modifiers      Modifiers
	Annotations    []Annotation
	Body           *Block
	// IsCompact marks a record's compact canonical constructor.
	IsCompact bool
	Source    string
	Position  Position

	owner *TypeDecl
	unit  *SourceUnit
	key   Key
}

func (c *ConstructorDecl) Key() Key          { return c.key }
func (c *ConstructorDecl) Kind() DeclKind    { return DeclConstructor }
func (c *ConstructorDecl) Owner() *TypeDecl  { return c.owner }
func (c *ConstructorDecl) Unit() *SourceUnit { return c.unit }
func (*ConstructorDecl) isDecl()             {}

func (c *ConstructorDecl) IsVarargs() bool {
	return len(c.Parameters) > 0 && c.Parameters[len(c.Parameters)-1].IsVarargs
}

func (c *ConstructorDecl) Signature() string {
	return MethodSignature("<init>", c.Parameters)
}
