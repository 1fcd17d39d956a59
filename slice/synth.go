package slice

import (
	"github.com/dhamidi/javaslice/java"
)

// preprocess copies the member of n into its synthetic type and runs the
// structural setup of the enclosing type. The flag is set first: setup
// interns further nodes, which may lead back to n's type.
func (c *Context) preprocess(n *Node) {
	if n.preprocessed {
		return
	}
	n.preprocessed = true
	if _, ok := n.Decl.(*java.TypeDecl); !ok {
		n.Type.Add(n.Decl)
	}
	c.setupType(n.Owner)
}

// setupType copies what a type needs to compile regardless of which of
// its members are reachable. It runs once per type and run.
func (c *Context) setupType(t *java.TypeDecl) {
	if c.setup[t.QualifiedName] {
		return
	}
	c.setup[t.QualifiedName] = true
	u := c.unitFor(t)
	st := u.typeFor(t)

	if outer := t.Owner(); outer != nil {
		c.enqueue(outer)
		u.typeFor(outer).Add(t)
	}

	if t.SuperClass != nil {
		ref := *t.SuperClass
		st.Extends = &ref
		c.requireSupertype(t, ref)
	}
	st.Implements = append([]java.TypeRef(nil), t.Interfaces...)
	for _, ref := range t.Interfaces {
		c.requireSupertype(t, ref)
	}

	if len(st.Annotations) == 0 && len(t.Annotations) > 0 && c.markers.isDataHolder(t) {
		st.Annotations = append([]java.Annotation(nil), t.Annotations...)
		c.newScope(t).annotations(st.Annotations)
	}
	for _, f := range c.markers.requiredFields(t) {
		c.enqueue(f)
	}
	c.implementAbstract(t)
	for _, ctor := range t.Constructors {
		c.enqueue(ctor)
	}
	if t.IsEnum() {
		for _, e := range t.EnumConstants {
			c.enqueue(e)
		}
	}
}

// requireSupertype interns a supertype declared in the code base. The
// clause itself is always copied; external supertypes only need their
// import.
func (c *Context) requireSupertype(t *java.TypeDecl, ref java.TypeRef) {
	r := c.index.ResolveType(ref.Name, t.Owner(), t.Unit())
	switch r.Kind {
	case java.Resolved:
		c.enqueue(r.Type)
	case java.External:
	default:
		c.missing(ref.Name, t.QualifiedName)
	}
	if r.Import != nil {
		c.unitFor(t).useImport(r.Import)
	}
	sc := c.newScope(t)
	for _, arg := range ref.TypeArguments {
		sc.typeOf(arg)
	}
}

// implementAbstract enqueues the methods of t that implement abstract
// methods of its supertypes, matched by name and parameter count.
func (c *Context) implementAbstract(t *java.TypeDecl) {
	if t.IsInterface() {
		return
	}
	for _, super := range c.supertypes(t) {
		for _, m := range super.Methods {
			if !m.IsAbstract() {
				continue
			}
			for _, impl := range sameArity(t.MethodsNamed(m.Name), len(m.Parameters)) {
				c.enqueue(impl)
			}
		}
	}
}
