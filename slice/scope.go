package slice

import (
	"github.com/dhamidi/javaslice/java"
)

// valueType is the static type of an expression as far as it matters for
// member lookup: a type of the code base and an array depth. A nil decl
// means the type is unknown or external.
type valueType struct {
	decl *java.TypeDecl
	dims int
	// self marks an unqualified this. Member lookups on it include the
	// bodies of enclosing anonymous classes.
	self bool
}

func (v valueType) object() *java.TypeDecl {
	if v.dims > 0 {
		return nil
	}
	return v.decl
}

// classBody is an anonymous or local class being walked inline, with the
// supertypes it extends.
type classBody struct {
	decl   *java.TypeDecl
	supers []*java.TypeDecl
}

// scope is the lexical context of the code being resolved: the enclosing
// type and unit, the inline class bodies around it and the local
// bindings, innermost frame last.
type scope struct {
	c        *Context
	typ      *java.TypeDecl
	unit     *java.SourceUnit
	bodies   []classBody
	typeVars map[string]bool
	frames   []map[string]valueType
}

func (c *Context) newScope(t *java.TypeDecl) *scope {
	return &scope{c: c, typ: t, unit: t.Unit(), typeVars: make(map[string]bool)}
}

// derive copies the scope. Bindings of the copy do not leak back.
func (sc *scope) derive() *scope {
	d := &scope{
		c:        sc.c,
		typ:      sc.typ,
		unit:     sc.unit,
		bodies:   append([]classBody(nil), sc.bodies...),
		typeVars: make(map[string]bool, len(sc.typeVars)),
		frames:   append([]map[string]valueType(nil), sc.frames...),
	}
	for k := range sc.typeVars {
		d.typeVars[k] = true
	}
	return d
}

// scopeFor returns the scope in which declarations of owner are
// resolved. Members of inline class bodies have no owner and resolve
// where they are written.
func (sc *scope) scopeFor(owner *java.TypeDecl) *scope {
	if owner == nil || owner.Unit() == nil {
		return sc.derive()
	}
	return sc.c.newScope(owner)
}

func (sc *scope) push() {
	sc.frames = append(sc.frames, make(map[string]valueType))
}

func (sc *scope) pop() {
	if len(sc.frames) > 0 {
		sc.frames = sc.frames[:len(sc.frames)-1]
	}
}

func (sc *scope) bind(name string, v valueType) {
	if name == "" {
		return
	}
	if len(sc.frames) == 0 {
		sc.push()
	}
	sc.frames[len(sc.frames)-1][name] = v
}

func (sc *scope) local(name string) (valueType, bool) {
	for i := len(sc.frames) - 1; i >= 0; i-- {
		if v, ok := sc.frames[i][name]; ok {
			return v, true
		}
	}
	return valueType{}, false
}

func (sc *scope) addTypeVars(tps []java.TypeParameter) {
	for _, tp := range tps {
		sc.typeVars[tp.Name] = true
	}
}

func (sc *scope) lookupType(name string) java.Resolution {
	if name == "" || sc.typeVars[name] {
		return java.Resolution{}
	}
	return sc.c.index.ResolveType(name, sc.typ, sc.unit)
}

// useType interns a resolved type and records the import it came
// through.
func (sc *scope) useType(r java.Resolution) *java.TypeDecl {
	sc.useImport(r.Import)
	if !r.Ok() {
		return nil
	}
	sc.c.enqueue(r.Type)
	return r.Type
}

func (sc *scope) useImport(imp *java.Import) {
	if imp == nil || sc.typ == nil || sc.typ.Unit() == nil {
		return
	}
	if u, ok := sc.c.units[sc.typ.Outermost().QualifiedName]; ok {
		u.useImport(imp)
	}
}

// typeOf interns every code base type mentioned in ref and returns the
// static type it denotes.
func (sc *scope) typeOf(ref java.TypeRef) valueType {
	if ref.IsZero() || ref.IsVar() || ref.IsVoid() {
		return valueType{}
	}
	v := valueType{dims: ref.ArrayDepth}
	first := true
	ref.Walk(func(r java.TypeRef) {
		var t *java.TypeDecl
		if !java.IsPrimitiveName(r.Name) {
			res := sc.lookupType(r.Name)
			if res.Kind == java.Unresolved && !sc.typeVars[r.Name] {
				sc.unresolved(r.Name)
			}
			t = sc.useType(res)
		}
		if first {
			v.decl = t
			first = false
		}
	})
	return v
}

func (sc *scope) paramType(p java.Parameter) valueType {
	v := sc.typeOf(p.Type)
	if p.IsVarargs {
		v.dims++
	}
	return v
}

// selfTypes are the types an unqualified member name is looked up in
// before the lexically enclosing types: inline class bodies innermost
// first, then the enclosing type.
func (sc *scope) selfTypes() []*java.TypeDecl {
	var ts []*java.TypeDecl
	for i := len(sc.bodies) - 1; i >= 0; i-- {
		b := sc.bodies[i]
		ts = append(ts, b.decl)
		ts = append(ts, b.supers...)
	}
	return append(ts, sc.typ)
}

func (sc *scope) lexicalTypes() []*java.TypeDecl {
	ts := sc.selfTypes()
	for t := sc.typ.Owner(); t != nil; t = t.Owner() {
		ts = append(ts, t)
	}
	return ts
}

func (sc *scope) unresolved(text string) {
	where := ""
	switch {
	case sc.c.current != nil:
		where = string(sc.c.current.Key())
	case sc.typ != nil:
		where = sc.typ.QualifiedName
	}
	sc.c.unresolvedRef(text, where)
}

// bindMember interns a field-like member and returns its type.
func (sc *scope) bindMember(m member) valueType {
	sc.c.enqueue(m.decl)
	if m.constant {
		return valueType{decl: m.owner}
	}
	return sc.scopeFor(m.owner).typeOf(m.typ)
}

func (sc *scope) field(name string) (member, bool) {
	for _, t := range sc.lexicalTypes() {
		if m, ok := sc.c.fieldOf(t, name); ok {
			return m, true
		}
	}
	return member{}, false
}
