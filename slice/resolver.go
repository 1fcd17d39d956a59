package slice

import (
	"github.com/dhamidi/javaslice/java"
)

// method walks the signature and body of a method.
func (sc *scope) method(m *java.MethodDecl) {
	sc.addTypeVars(m.TypeParameters)
	if !m.ReturnType.IsVoid() {
		sc.typeOf(m.ReturnType)
	}
	sc.callable(m.TypeParameters, m.Parameters, m.Throws, m.Annotations, m.Body)
}

func (sc *scope) constructor(ctor *java.ConstructorDecl) {
	sc.callable(ctor.TypeParameters, ctor.Parameters, ctor.Throws, ctor.Annotations, ctor.Body)
}

func (sc *scope) callable(tps []java.TypeParameter, params []java.Parameter, throws []java.TypeRef, anns []java.Annotation, body *java.Block) {
	sc.addTypeVars(tps)
	for _, tp := range tps {
		for _, b := range tp.Bounds {
			sc.typeOf(b)
		}
	}
	sc.push()
	defer sc.pop()
	for _, p := range params {
		sc.annotations(p.Annotations)
		sc.bind(p.Name, sc.paramType(p))
	}
	for _, t := range throws {
		sc.typeOf(t)
	}
	sc.annotations(anns)
	if body != nil {
		sc.stmts(body.Stmts)
	}
}

// classBody walks an anonymous or local class in place. Its members
// have no identity of their own; what they reference is attributed to
// the enclosing declaration.
func (sc *scope) classBody(body *java.TypeDecl, supers []*java.TypeDecl) {
	inner := sc.derive()
	inner.bodies = append(inner.bodies, classBody{decl: body, supers: supers})
	inner.addTypeVars(body.TypeParameters)

	for _, f := range body.Fields {
		inner.annotations(f.Annotations)
		inner.bind(f.Name, inner.typeOf(f.Type))
	}
	for _, f := range body.Fields {
		if f.Initializer != nil {
			inner.expr(f.Initializer)
		}
	}
	for _, m := range body.Methods {
		for _, super := range supers {
			for _, sm := range sameArity(methodsNamedIn(sc.c, super, m.Name), len(m.Parameters)) {
				sc.c.enqueue(sm)
			}
		}
		inner.derive().method(m)
	}
	for _, ctor := range body.Constructors {
		inner.derive().constructor(ctor)
	}
	for _, nested := range body.Types {
		inner.localType(nested)
	}
}

// methodsNamedIn returns the methods named name declared in t or the
// nearest supertype declaring any.
func methodsNamedIn(c *Context, t *java.TypeDecl, name string) []*java.MethodDecl {
	for _, s := range c.typeAndSupertypes(t) {
		if ms := s.MethodsNamed(name); len(ms) > 0 {
			return ms
		}
	}
	return nil
}

// localType walks a class declared inside a method body or class body.
func (sc *scope) localType(t *java.TypeDecl) {
	var supers []*java.TypeDecl
	for _, ref := range t.Supertypes() {
		if s := sc.typeOf(ref).object(); s != nil {
			supers = append(supers, s)
		}
	}
	sc.annotations(t.Annotations)
	for _, p := range t.RecordComponents {
		sc.typeOf(p.Type)
	}
	// Local classes are not visible to the type resolver.
	sc.typeVars[t.SimpleName] = true
	sc.classBody(t, supers)
}

func (sc *scope) annotations(anns []java.Annotation) {
	for _, a := range anns {
		sc.annotation(a)
	}
}

// annotation interns an annotation type of the code base together with
// the elements the usage sets, and resolves the element values: they
// often name constants declared elsewhere.
func (sc *scope) annotation(a java.Annotation) {
	t := sc.useType(sc.lookupType(a.Name))
	for _, arg := range a.Arguments {
		if t != nil {
			for _, m := range t.MethodsNamed(arg.Name) {
				sc.c.enqueue(m)
			}
		}
		sc.expr(arg.Value)
	}
}

func (sc *scope) stmts(ss []java.Stmt) {
	for _, s := range ss {
		sc.stmt(s)
	}
}

func (sc *scope) block(b *java.Block) {
	if b == nil {
		return
	}
	sc.push()
	sc.stmts(b.Stmts)
	sc.pop()
}

func (sc *scope) stmt(s java.Stmt) {
	switch s := s.(type) {
	case nil:
	case *java.Block:
		sc.block(s)
	case *java.LocalVarStmt:
		sc.localVar(s)
	case *java.LocalTypeStmt:
		sc.localType(s.Decl)
	case *java.ExprStmt:
		sc.expr(s.Expr)
	case *java.IfStmt:
		sc.expr(s.Condition)
		sc.nested(s.Then)
		sc.nested(s.Else)
	case *java.WhileStmt:
		sc.expr(s.Condition)
		sc.nested(s.Body)
	case *java.DoStmt:
		sc.nested(s.Body)
		sc.expr(s.Condition)
	case *java.ForStmt:
		sc.push()
		sc.stmts(s.Init)
		sc.expr(s.Condition)
		for _, u := range s.Update {
			sc.expr(u)
		}
		sc.nested(s.Body)
		sc.pop()
	case *java.ForEachStmt:
		iter := sc.expr(s.Iterable)
		sc.push()
		sc.annotations(s.Variable.Annotations)
		v := sc.typeOf(s.Variable.Type)
		if s.Variable.Type.IsVar() && iter.dims > 0 {
			v = valueType{decl: iter.decl, dims: iter.dims - 1}
		}
		sc.bind(s.Variable.Name, v)
		sc.nested(s.Body)
		sc.pop()
	case *java.ReturnStmt:
		sc.expr(s.Value)
	case *java.ThrowStmt:
		sc.expr(s.Value)
	case *java.YieldStmt:
		sc.expr(s.Value)
	case *java.TryStmt:
		sc.push()
		sc.stmts(s.Resources)
		sc.block(s.Body)
		sc.pop()
		for _, cc := range s.Catches {
			sc.push()
			sc.annotations(cc.Parameter.Annotations)
			sc.bind(cc.Parameter.Name, sc.typeOf(cc.Parameter.Type))
			sc.block(cc.Body)
			sc.pop()
		}
		sc.block(s.Finally)
	case *java.SwitchStmt:
		sc.switchCases(sc.expr(s.Selector), s.Cases)
	case *java.SynchronizedStmt:
		sc.expr(s.Lock)
		sc.block(s.Body)
	case *java.LabeledStmt:
		sc.stmt(s.Body)
	case *java.AssertStmt:
		sc.expr(s.Condition)
		sc.expr(s.Message)
	case *java.ExplicitCtorStmt:
		sc.explicitConstructorCall(s)
	case *java.JumpStmt, *java.EmptyStmt:
	}
}

// nested walks a statement that opens its own scope, such as the branch
// of an if without braces.
func (sc *scope) nested(s java.Stmt) {
	if s == nil {
		return
	}
	sc.push()
	sc.stmt(s)
	sc.pop()
}

func (sc *scope) localVar(s *java.LocalVarStmt) {
	sc.annotations(s.Annotations)
	declared := sc.typeOf(s.Type)
	for _, v := range s.Variables {
		var init valueType
		if v.Init != nil {
			init = sc.expr(v.Init)
		}
		switch {
		case s.Type.IsVar():
			sc.bind(v.Name, init)
		default:
			t := declared
			t.dims += v.ArrayDepth
			sc.bind(v.Name, t)
		}
	}
}

func (sc *scope) explicitConstructorCall(s *java.ExplicitCtorStmt) {
	if s.Scope != nil {
		sc.expr(s.Scope)
	}
	args := sc.args(s.Arguments)
	target := sc.typ
	if s.IsSuper {
		target = nil
		if supers := sc.c.directSupertypes(sc.typ); len(supers) > 0 && !supers[0].IsInterface() {
			target = supers[0]
		}
	}
	if target == nil {
		return
	}
	for _, ctor := range pickConstructors(target.Constructors, args) {
		sc.c.enqueue(ctor)
	}
}

func (sc *scope) switchCases(selector valueType, cases []java.SwitchCase) {
	enum := selector.object()
	if enum != nil && !enum.IsEnum() {
		enum = nil
	}
	for _, cs := range cases {
		sc.push()
		for _, l := range cs.Labels {
			if n, ok := l.(*java.NameExpr); ok && enum != nil {
				if e := enum.EnumConstant(n.Name); e != nil {
					sc.c.enqueue(e)
					continue
				}
			}
			sc.expr(l)
		}
		if cs.Pattern != nil {
			sc.bind(cs.Pattern.Name, sc.typeOf(cs.Pattern.Type))
		}
		sc.expr(cs.Guard)
		sc.stmts(cs.Body)
		sc.pop()
	}
}

func (sc *scope) args(exprs []java.Expr) []valueType {
	out := make([]valueType, len(exprs))
	for i, e := range exprs {
		out[i] = sc.expr(e)
	}
	return out
}

// expr resolves everything e references and returns its static type.
func (sc *scope) expr(e java.Expr) valueType {
	switch e := e.(type) {
	case nil:
		return valueType{}
	case *java.NameExpr:
		return sc.name(e.Name)
	case *java.FieldAccessExpr:
		return sc.fieldAccess(e)
	case *java.MethodCallExpr:
		if e.Scope == nil {
			return sc.unqualifiedCall(e)
		}
		return sc.chain(e)
	case *java.ObjectCreationExpr:
		return sc.newObject(e)
	case *java.ThisExpr:
		if e.Qualifier != "" {
			return valueType{decl: sc.useType(sc.lookupType(e.Qualifier))}
		}
		return valueType{decl: sc.typ, self: true}
	case *java.SuperExpr:
		return valueType{decl: sc.superclass(e.Qualifier)}
	case *java.LiteralExpr, *java.UnknownExpr:
		return valueType{}
	case *java.BinaryExpr:
		sc.expr(e.Left)
		sc.expr(e.Right)
		return valueType{}
	case *java.UnaryExpr:
		return sc.expr(e.Operand)
	case *java.AssignExpr:
		target := sc.expr(e.Target)
		sc.expr(e.Value)
		return target
	case *java.ConditionalExpr:
		sc.expr(e.Condition)
		then := sc.expr(e.Then)
		els := sc.expr(e.Else)
		if then.decl != nil {
			return then
		}
		return els
	case *java.CastExpr:
		sc.expr(e.Expr)
		return sc.typeOf(e.Type)
	case *java.InstanceOfExpr:
		sc.expr(e.Expr)
		t := sc.typeOf(e.Type)
		if e.Binding != "" {
			sc.bind(e.Binding, t)
		}
		return valueType{}
	case *java.ArrayAccessExpr:
		arr := sc.expr(e.Array)
		sc.expr(e.Index)
		if arr.dims > 0 {
			arr.dims--
			return arr
		}
		return valueType{}
	case *java.ArrayCreationExpr:
		t := sc.typeOf(e.Type)
		for _, d := range e.Dimensions {
			sc.expr(d)
		}
		if e.Initializer != nil {
			sc.expr(e.Initializer)
		}
		t.dims += len(e.Dimensions)
		return t
	case *java.ArrayInitExpr:
		for _, v := range e.Values {
			sc.expr(v)
		}
		return valueType{}
	case *java.ClassLiteralExpr:
		sc.typeOf(e.Type)
		return valueType{}
	case *java.LambdaExpr:
		sc.lambda(e)
		return valueType{}
	case *java.MethodRefExpr:
		sc.methodRef(e)
		return valueType{}
	case *java.SwitchExpr:
		sc.switchCases(sc.expr(e.Selector), e.Cases)
		return valueType{}
	case *java.AnnotationExpr:
		sc.annotation(e.Annotation)
		return valueType{}
	}
	return valueType{}
}

// superclass returns the superclass of the enclosing type, or of the
// named enclosing type for Outer.super.
func (sc *scope) superclass(qualifier string) *java.TypeDecl {
	if qualifier == "" {
		for i := len(sc.bodies) - 1; i >= 0; i-- {
			if supers := sc.bodies[i].supers; len(supers) > 0 {
				return supers[0]
			}
		}
	}
	t := sc.typ
	if qualifier != "" {
		t = sc.useType(sc.lookupType(qualifier))
	}
	if t == nil {
		return nil
	}
	if supers := sc.c.directSupertypes(t); len(supers) > 0 {
		sc.c.enqueue(supers[0])
		return supers[0]
	}
	return nil
}

func (sc *scope) lambda(e *java.LambdaExpr) {
	inner := sc.derive()
	inner.push()
	for _, p := range e.Parameters {
		inner.annotations(p.Annotations)
		inner.bind(p.Name, inner.paramType(p))
	}
	if e.BodyExpr != nil {
		inner.expr(e.BodyExpr)
	}
	if e.BodyBlock != nil {
		inner.stmts(e.BodyBlock.Stmts)
	}
}

// methodRef interns every method the reference may denote: all methods
// with the name, since the arity is not known.
func (sc *scope) methodRef(e *java.MethodRefExpr) {
	var t *java.TypeDecl
	if e.TypeScope != nil {
		t = sc.typeOf(*e.TypeScope).object()
	} else {
		t = sc.expr(e.Scope).object()
	}
	if t == nil {
		return
	}
	if e.Name == "new" {
		for _, ctor := range t.Constructors {
			sc.c.enqueue(ctor)
		}
		return
	}
	if ms := methodsNamedIn(sc.c, t, e.Name); len(ms) > 0 {
		for _, m := range ms {
			sc.c.enqueue(m)
		}
		return
	}
	if m, ok := sc.c.accessorField(t, e.Name, 0); ok {
		sc.bindMember(m)
		return
	}
	if _, ok := t.RecordComponent(e.Name); ok {
		return
	}
	sc.unresolved(t.SimpleName + "::" + e.Name)
}

func (sc *scope) newObject(e *java.ObjectCreationExpr) valueType {
	var v valueType
	if e.Scope != nil {
		if outer := sc.expr(e.Scope).object(); outer != nil {
			if inner, ok := sc.c.memberType(outer, e.Type.Name); ok {
				sc.c.enqueue(inner)
				v = valueType{decl: inner}
			}
		}
		for _, arg := range e.Type.TypeArguments {
			sc.typeOf(arg)
		}
	} else {
		v = sc.typeOf(e.Type)
	}
	args := sc.args(e.Arguments)
	t := v.object()
	if t != nil {
		for _, ctor := range pickConstructors(t.Constructors, args) {
			sc.c.enqueue(ctor)
		}
	}
	if e.AnonymousBody != nil {
		var supers []*java.TypeDecl
		if t != nil {
			supers = append(supers, t)
		}
		sc.classBody(e.AnonymousBody, supers)
	}
	return v
}
