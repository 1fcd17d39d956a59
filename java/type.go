package java

import "strings"

// TypeRef is a type as written in source. Name keeps the qualifier the
// author used ("Map.Entry", "java.util.List") and omits type arguments
// and array dimensions.
type TypeRef struct {
	Name          string
	TypeArguments []TypeRef
	ArrayDepth    int
	// IsWildcard marks a "?" type argument; BoundKind is "extends",
	// "super" or "" and Bound the bounding type.
	IsWildcard bool
	BoundKind  string
	Bound      *TypeRef
	// Alternatives holds the members of a union catch type or an
	// intersection cast type.
	Alternatives []TypeRef
	Source       string
}

func (t TypeRef) IsZero() bool {
	return t.Name == "" && !t.IsWildcard && len(t.Alternatives) == 0
}

func (t TypeRef) IsPrimitive() bool {
	if t.ArrayDepth > 0 {
		return false
	}
	return IsPrimitiveName(t.Name)
}

func IsPrimitiveName(name string) bool {
	switch name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func (t TypeRef) IsArray() bool {
	return t.ArrayDepth > 0
}

func (t TypeRef) IsVoid() bool {
	return t.Name == "void" && t.ArrayDepth == 0
}

// IsVar reports a local variable declared with the "var" keyword.
func (t TypeRef) IsVar() bool {
	return t.Name == "var" && t.ArrayDepth == 0 && len(t.TypeArguments) == 0
}

func (t TypeRef) ElementType() TypeRef {
	if t.ArrayDepth == 0 {
		return t
	}
	e := t
	e.ArrayDepth--
	e.Source = ""
	return e
}

// BaseType strips every array dimension.
func (t TypeRef) BaseType() TypeRef {
	b := t
	b.ArrayDepth = 0
	b.Source = ""
	return b
}

// Erasure drops type arguments: "List<String>[]" becomes "List[]".
func (t TypeRef) Erasure() string {
	if t.IsWildcard {
		if t.Bound != nil && t.BoundKind == "extends" {
			return t.Bound.Erasure()
		}
		return "Object"
	}
	return t.Name + strings.Repeat("[]", t.ArrayDepth)
}

func (t TypeRef) String() string {
	if t.Source != "" {
		return t.Source
	}
	var sb strings.Builder
	switch {
	case t.IsWildcard:
		sb.WriteString("?")
		if t.Bound != nil {
			sb.WriteString(" ")
			sb.WriteString(t.BoundKind)
			sb.WriteString(" ")
			sb.WriteString(t.Bound.String())
		}
		return sb.String()
	case len(t.Alternatives) > 0:
		for i, a := range t.Alternatives {
			if i > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(a.String())
		}
		return sb.String()
	}
	sb.WriteString(t.Name)
	if len(t.TypeArguments) > 0 {
		sb.WriteString("<")
		for i, a := range t.TypeArguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteString(">")
	}
	sb.WriteString(strings.Repeat("[]", t.ArrayDepth))
	return sb.String()
}

// Walk calls fn for t and every type nested in it: type arguments,
// wildcard bounds and union or intersection members.
func (t TypeRef) Walk(fn func(TypeRef)) {
	if t.IsZero() {
		return
	}
	if !t.IsWildcard && len(t.Alternatives) == 0 {
		fn(t)
	}
	for _, a := range t.TypeArguments {
		a.Walk(fn)
	}
	if t.Bound != nil {
		t.Bound.Walk(fn)
	}
	for _, a := range t.Alternatives {
		a.Walk(fn)
	}
}
