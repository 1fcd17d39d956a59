package java

type ResolutionKind int

const (
	Unresolved ResolutionKind = iota
	// Resolved types are declared in the scanned source tree.
	Resolved
	// External types are known by name only (JDK, libraries).
	External
	// TypeVariable names a type parameter in scope.
	TypeVariable
)

func (k ResolutionKind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case External:
		return "external"
	case TypeVariable:
		return "type-variable"
	}
	return "unresolved"
}

// Resolution is the outcome of looking up a type name in a lexical scope.
type Resolution struct {
	Kind ResolutionKind
	// Name is the fully qualified name for Resolved and External.
	Name string
	Type *TypeDecl
	// Import is the import declaration that made the name visible, nil
	// when none was needed.
	Import *Import
}

func (r Resolution) Ok() bool {
	return r.Kind == Resolved
}
