package slice

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/javaslice/java"
)

// directSupertypes returns the supertypes of t declared in the code base.
func (c *Context) directSupertypes(t *java.TypeDecl) []*java.TypeDecl {
	var out []*java.TypeDecl
	for _, ref := range t.Supertypes() {
		if r := c.index.ResolveType(ref.Name, t.Owner(), t.Unit()); r.Ok() {
			out = append(out, r.Type)
		}
	}
	return out
}

// supertypes returns every supertype of t declared in the code base,
// nearest first, each once.
func (c *Context) supertypes(t *java.TypeDecl) []*java.TypeDecl {
	if t.Key() != "" {
		if cached, ok := c.supers[t.QualifiedName]; ok {
			return cached
		}
	}
	seen := map[string]bool{t.QualifiedName: true}
	var out []*java.TypeDecl
	queue := []*java.TypeDecl{t}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, super := range c.directSupertypes(s) {
			if seen[super.QualifiedName] {
				continue
			}
			seen[super.QualifiedName] = true
			out = append(out, super)
			queue = append(queue, super)
		}
	}
	if t.Key() != "" {
		c.supers[t.QualifiedName] = out
	}
	return out
}

func (c *Context) typeAndSupertypes(t *java.TypeDecl) []*java.TypeDecl {
	return append([]*java.TypeDecl{t}, c.supertypes(t)...)
}

// member is a field-like binding: a field, an enum constant or a record
// component. Record components have no declaration of their own.
type member struct {
	decl     java.Decl
	typ      java.TypeRef
	owner    *java.TypeDecl
	constant bool
}

func (c *Context) fieldOf(t *java.TypeDecl, name string) (member, bool) {
	for _, s := range c.typeAndSupertypes(t) {
		if f := s.Field(name); f != nil {
			return member{decl: f, typ: f.Type, owner: s}, true
		}
		if e := s.EnumConstant(name); e != nil {
			return member{decl: e, owner: s, constant: true}, true
		}
		if p, ok := s.RecordComponent(name); ok {
			return member{typ: p.Type, owner: s}, true
		}
	}
	return member{}, false
}

// methodsOf returns the methods named name that accept argc arguments,
// taken from the nearest type in t's hierarchy that declares any.
func (c *Context) methodsOf(t *java.TypeDecl, name string, argc int) []*java.MethodDecl {
	for _, s := range c.typeAndSupertypes(t) {
		var ms []*java.MethodDecl
		for _, m := range s.MethodsNamed(name) {
			if arityMatches(m.Parameters, argc) {
				ms = append(ms, m)
			}
		}
		if len(ms) > 0 {
			return ms
		}
	}
	return nil
}

// accessorField returns the field an undeclared getter or setter named
// name refers to, when an accessor marker applies to it.
func (c *Context) accessorField(t *java.TypeDecl, name string, argc int) (member, bool) {
	var candidates []string
	switch {
	case argc == 0 && strings.HasPrefix(name, "get") && len(name) > 3:
		candidates = []string{decapitalize(name[3:])}
	case argc == 0 && strings.HasPrefix(name, "is") && len(name) > 2:
		candidates = []string{decapitalize(name[2:]), name}
	case argc == 1 && strings.HasPrefix(name, "set") && len(name) > 3:
		field := decapitalize(name[3:])
		candidates = []string{field, "is" + name[3:]}
	default:
		return member{}, false
	}
	for _, field := range candidates {
		m, ok := c.fieldOf(t, field)
		if !ok || m.constant || m.decl == nil {
			continue
		}
		if c.markers.hasAccessors(m.owner, m.decl.(*java.FieldDecl)) {
			return m, true
		}
	}
	return member{}, false
}

func decapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func arityMatches(params []java.Parameter, argc int) bool {
	if len(params) == argc {
		return true
	}
	n := len(params)
	return n > 0 && params[n-1].IsVarargs && argc >= n-1
}

// matchScore counts the arguments whose static type is known and equals
// the parameter type by simple name.
func matchScore(params []java.Parameter, args []valueType) int {
	score := 0
	if len(params) == len(args) {
		score++
	}
	for i, a := range args {
		if i >= len(params) || a.decl == nil {
			continue
		}
		p := params[i].Type
		if java.SimpleName(p.Name) == a.decl.SimpleName && p.ArrayDepth == a.dims {
			score += 2
		}
	}
	return score
}

// pickMethods keeps the best matching overloads. Ties are all kept.
func pickMethods(ms []*java.MethodDecl, args []valueType) []*java.MethodDecl {
	best := -1
	var out []*java.MethodDecl
	for _, m := range ms {
		if !arityMatches(m.Parameters, len(args)) {
			continue
		}
		switch s := matchScore(m.Parameters, args); {
		case s > best:
			best = s
			out = []*java.MethodDecl{m}
		case s == best:
			out = append(out, m)
		}
	}
	return out
}

func pickConstructors(cs []*java.ConstructorDecl, args []valueType) []*java.ConstructorDecl {
	best := -1
	var out []*java.ConstructorDecl
	for _, ctor := range cs {
		if !arityMatches(ctor.Parameters, len(args)) {
			continue
		}
		switch s := matchScore(ctor.Parameters, args); {
		case s > best:
			best = s
			out = []*java.ConstructorDecl{ctor}
		case s == best:
			out = append(out, ctor)
		}
	}
	return out
}

// memberType finds a nested type declared in t or inherited by it.
func (c *Context) memberType(t *java.TypeDecl, name string) (*java.TypeDecl, bool) {
	for _, s := range c.typeAndSupertypes(t) {
		if n := s.NestedType(name); n != nil {
			return n, true
		}
	}
	return nil, false
}
