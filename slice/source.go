package slice

import "github.com/dhamidi/javaslice/java"

// Source provides the parsed declarations of the code base under
// analysis.
type Source interface {
	TypeByName(fqn string) (*java.TypeDecl, bool)
	UnitOf(fqn string) (*java.SourceUnit, bool)
	// Implementations returns the types extending or implementing fqn.
	Implementations(fqn string) []*java.TypeDecl
}

// TypeResolver resolves names in a lexical context.
type TypeResolver interface {
	// ResolveType resolves a type name as written inside from (the
	// innermost enclosing type, may be nil) in unit.
	ResolveType(name string, from *java.TypeDecl, unit *java.SourceUnit) java.Resolution
	// StaticImport returns the type a static import of unit makes member
	// visible from.
	StaticImport(unit *java.SourceUnit, member string) (string, bool)
}

// Index is what a Context slices against. *codebase.Codebase implements
// it.
type Index interface {
	Source
	TypeResolver
}

// typeLister is implemented by indexes that can enumerate their types.
// FindSeed uses it to accept simple type names.
type typeLister interface {
	AllTypes() []*java.TypeDecl
}

// packageLister is implemented by indexes that know which packages the
// code base declares. Synthetic units use it to drop on-demand imports of
// packages that were not sliced.
type packageLister interface {
	HasPackage(pkg string) bool
}
