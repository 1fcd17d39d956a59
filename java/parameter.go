package java

// Parameter is a formal parameter, a record component, a lambda parameter
// or a catch parameter. Lambda parameters with inferred types have an
// empty Type.
type Parameter struct {
	Name        string
	Type        TypeRef
	Modifiers   Modifiers
	Annotations []Annotation
	IsVarargs   bool
}

func (p Parameter) IsFinal() bool { return p.Modifiers.Has("final") }

func (p Parameter) String() string {
	t := p.Type.String()
	if p.IsVarargs {
		t += "..."
	}
	if p.Name != "" {
		return t + " " + p.Name
	}
	return t
}

type TypeParameter struct {
	Name   string
	Bounds []TypeRef
	Source string
}
