package slice

import (
	"github.com/dhamidi/javaslice/java"
)

// CloseOver expands the seeds and everything they depend on. Nodes that
// were visited by an earlier run on the same Context are not expanded
// again. A run aborted in strict mode resets the Context: its visited
// nodes may have dependencies that were never expanded.
func (c *Context) CloseOver(seeds []java.Decl) (*Result, error) {
	res := &Result{RunID: c.runID}
	for _, d := range seeds {
		if n := c.enqueue(d); n != nil {
			res.Seeds = append(res.Seeds, n.Key())
		}
	}

	visited := 0
	for len(c.stack) > 0 && c.err == nil {
		n := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if n.visited {
			continue
		}
		c.visit(n)
		visited++
	}
	c.current = nil
	if err := c.err; err != nil {
		c.Reset()
		return nil, err
	}

	for _, u := range c.units {
		u.finalizeImports(c)
	}
	res.Nodes = c.Nodes()
	res.Edges = append([]Edge(nil), c.edgeList...)
	res.Units = c.units
	res.Unresolved = append([]UnresolvedReference(nil), c.missed...)
	log.Infof("run %s: expanded %d nodes, %d nodes and %d units in total, %d unresolved references",
		c.runID, visited, len(res.Nodes), len(res.Units), len(res.Unresolved))
	return res, nil
}

func (c *Context) visit(n *Node) {
	n.visited = true
	prev := c.current
	c.current = n
	defer func() { c.current = prev }()

	switch d := n.Decl.(type) {
	case *java.TypeDecl:
		c.visitType(d)
	case *java.FieldDecl:
		c.visitField(d)
	case *java.MethodDecl:
		c.visitMethod(d)
	case *java.ConstructorDecl:
		c.visitConstructor(d)
	case *java.EnumConstantDecl:
		c.visitEnumConstant(d)
	}
}

func (c *Context) visitType(t *java.TypeDecl) {
	if t.Unit() == nil {
		return
	}
	sc := c.newScope(t)
	for _, tp := range t.TypeParameters {
		for _, b := range tp.Bounds {
			sc.typeOf(b)
		}
	}
	for _, p := range t.RecordComponents {
		sc.annotations(p.Annotations)
		sc.typeOf(p.Type)
	}
	if st, ok := c.syntheticType(t.QualifiedName); ok {
		sc.annotations(st.Annotations)
	}
}

func (c *Context) visitField(f *java.FieldDecl) {
	owner := f.Owner()
	if owner == nil || owner.Unit() == nil {
		return
	}
	sc := c.newScope(owner)
	sc.typeOf(f.Type)
	sc.annotations(f.Annotations)
	if f.Initializer != nil {
		sc.expr(f.Initializer)
	}
}

func (c *Context) visitMethod(m *java.MethodDecl) {
	owner := m.Owner()
	if owner == nil || owner.Unit() == nil {
		return
	}
	sc := c.newScope(owner)
	sc.method(m)

	if m.HasAnnotation("Override", "java.lang.Override") {
		c.overridden(owner, m)
	}
	if owner.IsInterface() || m.IsAbstract() {
		for _, impl := range c.index.Implementations(owner.QualifiedName) {
			for _, im := range sameArity(impl.MethodsNamed(m.Name), len(m.Parameters)) {
				c.enqueue(im)
			}
		}
	}
}

// overridden enqueues the methods m overrides: in every branch of the
// supertype hierarchy the nearest methods with the same name and number
// of parameters.
func (c *Context) overridden(owner *java.TypeDecl, m *java.MethodDecl) {
	seen := map[string]bool{owner.QualifiedName: true}
	var walk func(t *java.TypeDecl)
	walk = func(t *java.TypeDecl) {
		for _, super := range c.directSupertypes(t) {
			if seen[super.QualifiedName] {
				continue
			}
			seen[super.QualifiedName] = true
			matches := sameArity(super.MethodsNamed(m.Name), len(m.Parameters))
			for _, sm := range matches {
				c.enqueue(sm)
			}
			if len(matches) == 0 {
				walk(super)
			}
		}
	}
	walk(owner)
}

func (c *Context) visitConstructor(ctor *java.ConstructorDecl) {
	owner := ctor.Owner()
	if owner == nil || owner.Unit() == nil {
		return
	}
	c.newScope(owner).constructor(ctor)
}

func (c *Context) visitEnumConstant(e *java.EnumConstantDecl) {
	owner := e.Owner()
	if owner == nil || owner.Unit() == nil {
		return
	}
	sc := c.newScope(owner)
	sc.annotations(e.Annotations)
	args := sc.args(e.Arguments)
	for _, ctor := range pickConstructors(owner.Constructors, args) {
		c.enqueue(ctor)
	}
	if e.Body != nil {
		sc.classBody(e.Body, []*java.TypeDecl{owner})
	}
}

func sameArity(ms []*java.MethodDecl, n int) []*java.MethodDecl {
	var out []*java.MethodDecl
	for _, m := range ms {
		if len(m.Parameters) == n {
			out = append(out, m)
		}
	}
	return out
}
