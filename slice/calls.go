package slice

import (
	"github.com/dhamidi/javaslice/java"
)

// name resolves a simple name: a local binding, a field of the enclosing
// types or their supertypes, a type, a statically imported member.
func (sc *scope) name(name string) valueType {
	if v, ok := sc.nameQuiet(name); ok {
		return v
	}
	sc.unresolved(name)
	return valueType{}
}

// nameQuiet is name without reporting failures. A name that denotes an
// external type or member counts as resolved.
func (sc *scope) nameQuiet(name string) (valueType, bool) {
	if v, ok := sc.local(name); ok {
		return v, true
	}
	if m, ok := sc.field(name); ok {
		return sc.bindMember(m), true
	}
	switch r := sc.lookupType(name); r.Kind {
	case java.Resolved:
		return valueType{decl: sc.useType(r)}, true
	case java.External, java.TypeVariable:
		sc.useImport(r.Import)
		return valueType{}, true
	}
	if sc.typeVars[name] {
		return valueType{}, true
	}
	if fqn, ok := sc.c.index.StaticImport(sc.unit, name); ok {
		if t, ok := sc.c.index.TypeByName(fqn); ok {
			if m, ok := sc.c.fieldOf(t, name); ok {
				return sc.bindMember(m), true
			}
		}
		return valueType{}, true
	}
	return valueType{}, false
}

// fieldAccess resolves a.b. The scope is evaluated first; a type in
// scope position makes b a static member or a nested type.
func (sc *scope) fieldAccess(e *java.FieldAccessExpr) valueType {
	return sc.chain(e)
}

// scopeChain flattens a.b().c into its hops, innermost scope first. Each
// hop is the whole expression up to and including it.
func scopeChain(e java.Expr) []java.Expr {
	var chain []java.Expr
loop:
	for e != nil {
		chain = append(chain, e)
		switch x := e.(type) {
		case *java.FieldAccessExpr:
			e = x.Scope
		case *java.MethodCallExpr:
			if x.Scope == nil {
				break loop
			}
			e = x.Scope
		default:
			break loop
		}
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// chain evaluates a scope chain from the innermost scope outwards. The
// type reached after each hop is the context of the next one. A hop that
// fails collapses the rest of the chain; arguments of later calls are
// still resolved in the caller's scope.
func (sc *scope) chain(e java.Expr) valueType {
	hops := scopeChain(e)
	var cur valueType
	known := true
	if n, ok := hops[0].(*java.NameExpr); ok {
		cur, known = sc.nameQuiet(n.Name)
	} else {
		cur = sc.expr(hops[0])
	}

	for i := 1; i < len(hops); i++ {
		recv := sc.receivers(cur)
		if len(recv) == 0 && !known {
			// com.acme.Type.member: the prefix may be a qualified type.
			if dotted, ok := java.DottedName(hops[i-1]); ok {
				r := sc.lookupType(dotted)
				if r.Kind == java.Resolved || r.Kind == java.External {
					known = true
					if t := sc.useType(r); t != nil {
						recv = []*java.TypeDecl{t}
					}
				}
			}
		}
		switch h := hops[i].(type) {
		case *java.FieldAccessExpr:
			cur = sc.hopField(recv, h.Name)
		case *java.MethodCallExpr:
			cur = sc.hopCall(recv, h.Name, sc.args(h.Arguments))
		}
	}
	if !known {
		sc.unresolved(java.ExprText(e))
	}
	return cur
}

func (sc *scope) receivers(v valueType) []*java.TypeDecl {
	if v.self {
		return sc.selfTypes()
	}
	if t := v.object(); t != nil {
		return []*java.TypeDecl{t}
	}
	return nil
}

func (sc *scope) hopField(recv []*java.TypeDecl, name string) valueType {
	if len(recv) == 0 {
		return valueType{}
	}
	for _, t := range recv {
		if v, ok := sc.memberOf(t, name); ok {
			return v
		}
	}
	sc.unresolved(recv[0].SimpleName + "." + name)
	return valueType{}
}

func (sc *scope) hopCall(recv []*java.TypeDecl, name string, args []valueType) valueType {
	if len(recv) == 0 {
		return valueType{}
	}
	for _, t := range recv {
		if v, ok := sc.callIn(t, name, args); ok {
			return v
		}
	}
	sc.unresolved(recv[0].SimpleName + "." + name + "(...)")
	return valueType{}
}

// memberOf resolves b in T.b or expr.b where the scope has type t: a
// field, an enum constant or a nested type.
func (sc *scope) memberOf(t *java.TypeDecl, name string) (valueType, bool) {
	if m, ok := sc.c.fieldOf(t, name); ok {
		return sc.bindMember(m), true
	}
	if n, ok := sc.c.memberType(t, name); ok {
		sc.c.enqueue(n)
		return valueType{decl: n}, true
	}
	return valueType{}, false
}

func (sc *scope) unqualifiedCall(e *java.MethodCallExpr) valueType {
	args := sc.args(e.Arguments)
	for _, t := range sc.lexicalTypes() {
		if v, ok := sc.callIn(t, e.Name, args); ok {
			return v
		}
	}
	if fqn, ok := sc.c.index.StaticImport(sc.unit, e.Name); ok {
		if t, ok := sc.c.index.TypeByName(fqn); ok {
			if v, ok := sc.callIn(t, e.Name, args); ok {
				return v
			}
		} else {
			return valueType{}
		}
	}
	sc.unresolved(e.Name + "(...)")
	return valueType{}
}

// callIn resolves a call of name on a receiver of type t: a declared
// method of t or its supertypes by name and arity, preferring overloads
// whose parameter types match the argument types; otherwise a generated
// accessor, a record component accessor or an implicit enum method.
func (sc *scope) callIn(t *java.TypeDecl, name string, args []valueType) (valueType, bool) {
	if ms := sc.c.methodsOf(t, name, len(args)); len(ms) > 0 {
		var ret valueType
		for i, m := range pickMethods(ms, args) {
			sc.c.enqueue(m)
			if i == 0 {
				ret = sc.returnType(m)
			}
		}
		return ret, true
	}
	if m, ok := sc.c.accessorField(t, name, len(args)); ok {
		v := sc.bindMember(m)
		if len(args) == 1 {
			return valueType{}, true
		}
		return v, true
	}
	if t.IsRecord() && len(args) == 0 {
		if p, ok := t.RecordComponent(name); ok {
			return sc.scopeFor(t).typeOf(p.Type), true
		}
	}
	if t.IsEnum() {
		switch {
		case name == "values" && len(args) == 0:
			return valueType{decl: t, dims: 1}, true
		case name == "valueOf" && len(args) == 1:
			return valueType{decl: t}, true
		case name == "name" || name == "ordinal" || name == "compareTo":
			return valueType{}, true
		}
	}
	return valueType{}, false
}

func (sc *scope) returnType(m *java.MethodDecl) valueType {
	if m.ReturnType.IsVoid() {
		return valueType{}
	}
	rs := sc.scopeFor(m.Owner())
	rs.addTypeVars(m.TypeParameters)
	return rs.typeOf(m.ReturnType)
}
