package codebase

import (
	"strings"
	"unicode"

	"github.com/dhamidi/javaslice/java"
)

type resolveKey struct {
	unit string
	from java.Key
	name string
}

// ResolveType resolves a type name as written inside from (the innermost
// enclosing type, may be nil) in unit. Lookup order: type parameters,
// nested and inherited member types of the enclosing types, types of the
// same file, single-type imports, the package, on-demand imports,
// java.lang. Qualified names resolve their first segment the same way and
// fall back to a fully qualified lookup.
func (c *Codebase) ResolveType(name string, from *java.TypeDecl, unit *java.SourceUnit) java.Resolution {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolveLocked(name, from, unit)
}

func (c *Codebase) resolveLocked(name string, from *java.TypeDecl, unit *java.SourceUnit) java.Resolution {
	if name == "" || java.IsPrimitiveName(name) || name == "void" || name == "var" {
		return java.Resolution{}
	}
	key := resolveKey{name: name}
	if unit != nil {
		key.unit = unit.Path
	}
	if from != nil {
		key.from = from.Key()
	}
	if r, ok := c.cache.Get(key); ok {
		return r
	}
	r := c.lookup(name, from, unit)
	c.cache.Add(key, r)
	return r
}

func (c *Codebase) lookup(name string, from *java.TypeDecl, unit *java.SourceUnit) java.Resolution {
	if i := strings.Index(name, "."); i >= 0 {
		return c.lookupQualified(name[:i], name[i+1:], from, unit)
	}
	return c.lookupSimple(name, from, unit)
}

func (c *Codebase) lookupQualified(head, rest string, from *java.TypeDecl, unit *java.SourceUnit) java.Resolution {
	if r := c.lookupSimple(head, from, unit); r.Kind != java.Unresolved && r.Kind != java.TypeVariable {
		if r.Kind == java.External {
			r.Name = r.Name + "." + rest
			return r
		}
		t := r.Type
		for _, seg := range strings.Split(rest, ".") {
			if t = c.memberType(t, seg, nil); t == nil {
				return java.Resolution{}
			}
		}
		return java.Resolution{Kind: java.Resolved, Name: t.QualifiedName, Type: t, Import: r.Import}
	}

	full := head + "." + rest
	if t, ok := c.types[full]; ok {
		return java.Resolution{Kind: java.Resolved, Name: full, Type: t}
	}
	if fixed, ok := c.inner.Fix(full); ok {
		if t, ok := c.types[fixed]; ok {
			return java.Resolution{Kind: java.Resolved, Name: fixed, Type: t}
		}
	}
	// Only a name with a type-like segment is taken for a type outside the
	// code base; a.b.c is more likely a chain of variables.
	if pkg, typ := java.SplitQualified(full); pkg != "" && typ != "" && unicode.IsUpper(rune(typ[0])) {
		return java.Resolution{Kind: java.External, Name: full}
	}
	return java.Resolution{}
}

func (c *Codebase) lookupSimple(name string, from *java.TypeDecl, unit *java.SourceUnit) java.Resolution {
	for t := from; t != nil; t = t.Owner() {
		if t.TypeParameterNamed(name) {
			return java.Resolution{Kind: java.TypeVariable, Name: name}
		}
		if t.SimpleName == name {
			return resolved(t, nil)
		}
		if m := c.memberType(t, name, nil); m != nil {
			return resolved(m, nil)
		}
	}

	if unit == nil {
		return java.Resolution{}
	}
	for _, t := range unit.Types {
		if t.SimpleName == name {
			return resolved(t, nil)
		}
	}

	for i := range unit.Imports {
		imp := &unit.Imports[i]
		if imp.IsStatic || imp.IsWildcard || imp.SimpleName() != name {
			continue
		}
		if t := c.typeNamed(imp.Name); t != nil {
			return resolved(t, imp)
		}
		return java.Resolution{Kind: java.External, Name: imp.Name, Import: imp}
	}

	if t := c.typeNamed(java.QualifiedName(unit.Package, name)); t != nil {
		return resolved(t, nil)
	}

	for i := range unit.Imports {
		imp := &unit.Imports[i]
		if imp.IsStatic || !imp.IsWildcard {
			continue
		}
		if t := c.typeNamed(imp.Name + "." + name); t != nil {
			return resolved(t, imp)
		}
	}

	if java.JavaLangTypes[name] {
		return java.Resolution{Kind: java.External, Name: "java.lang." + name}
	}
	return java.Resolution{}
}

func resolved(t *java.TypeDecl, imp *java.Import) java.Resolution {
	return java.Resolution{Kind: java.Resolved, Name: t.QualifiedName, Type: t, Import: imp}
}

func (c *Codebase) typeNamed(fqn string) *java.TypeDecl {
	if t, ok := c.types[fqn]; ok {
		return t
	}
	if fixed, ok := c.inner.Fix(fqn); ok {
		return c.types[fixed]
	}
	return nil
}

// memberType finds a nested type declared in t or inherited from one of
// its supertypes inside the codebase.
func (c *Codebase) memberType(t *java.TypeDecl, name string, seen map[string]bool) *java.TypeDecl {
	if n := t.NestedType(name); n != nil {
		return n
	}
	if seen == nil {
		seen = make(map[string]bool)
	}
	if seen[t.QualifiedName] {
		return nil
	}
	seen[t.QualifiedName] = true
	for _, ref := range t.Supertypes() {
		super := c.supertypeLocked(t, ref)
		if super == nil {
			continue
		}
		if n := c.memberType(super, name, seen); n != nil {
			return n
		}
	}
	return nil
}

// supertypeLocked resolves a supertype reference of t. Member types of t
// itself are not in scope in its own header.
func (c *Codebase) supertypeLocked(t *java.TypeDecl, ref java.TypeRef) *java.TypeDecl {
	return c.lookup(ref.Name, t.Owner(), t.Unit()).Type
}

// StaticImport returns the type that a static import of unit makes member
// visible from: `import static a.B.m;` or `import static a.B.*;` when B
// is in the codebase and declares m.
func (c *Codebase) StaticImport(unit *java.SourceUnit, member string) (string, bool) {
	if unit == nil {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, imp := range unit.Imports {
		if imp.IsStatic && !imp.IsWildcard && imp.SimpleName() == member {
			return java.PackageOf(imp.Name), true
		}
	}
	for _, imp := range unit.Imports {
		if !imp.IsStatic || !imp.IsWildcard {
			continue
		}
		t := c.typeNamed(imp.Name)
		if t == nil {
			continue
		}
		if t.Field(member) != nil || t.EnumConstant(member) != nil || len(t.MethodsNamed(member)) > 0 {
			return t.QualifiedName, true
		}
	}
	return "", false
}
