package slice

import (
	"sort"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/javaslice/java"
)

var log = commonlog.GetLogger("javaslice.slice")

type Option func(*Context)

func WithMarkers(m Markers) Option {
	return func(c *Context) {
		c.markers = m
	}
}

// WithStrict makes a missing source unit abort CloseOver instead of
// dropping the edge.
func WithStrict(strict bool) Option {
	return func(c *Context) {
		c.strict = strict
	}
}

// Context is the declaration graph of one slicing run. Nodes are interned
// by Key and kept until Reset, so a Context may be reused across runs as
// a cache. A Context is not safe for concurrent use.
type Context struct {
	index   Index
	markers Markers
	strict  bool
	runID   uuid.UUID

	nodes map[java.Key]*Node
	units map[string]*SyntheticUnit
	// setup holds the types whose structural setup has started.
	setup  map[string]bool
	supers map[string][]*java.TypeDecl
	stack  []*Node

	current    *Node
	edges      map[Edge]bool
	edgeList   []Edge
	unresolved map[UnresolvedReference]bool
	missed     []UnresolvedReference
	err        error
}

func NewContext(index Index, opts ...Option) *Context {
	c := &Context{
		index:   index,
		markers: DefaultMarkers(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()
	return c
}

// Reset drops every node and synthetic unit and starts a new run.
func (c *Context) Reset() {
	c.runID = uuid.New()
	c.nodes = make(map[java.Key]*Node)
	c.units = make(map[string]*SyntheticUnit)
	c.setup = make(map[string]bool)
	c.supers = make(map[string][]*java.TypeDecl)
	c.stack = nil
	c.current = nil
	c.edges = make(map[Edge]bool)
	c.edgeList = nil
	c.unresolved = make(map[UnresolvedReference]bool)
	c.missed = nil
	c.err = nil
}

func (c *Context) RunID() uuid.UUID {
	return c.runID
}

func (c *Context) Node(key java.Key) (*Node, bool) {
	n, ok := c.nodes[key]
	return n, ok
}

// Nodes returns every interned node ordered by key.
func (c *Context) Nodes() []*Node {
	out := make([]*Node, 0, len(c.nodes))
	for _, n := range c.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// Units maps top-level type names to their synthetic units.
func (c *Context) Units() map[string]*SyntheticUnit {
	return c.units
}

// GetOrCreate returns the node for d, creating and registering it when d
// was not seen before. A new member node gets the synthetic type of its
// enclosing type, whose structural setup runs on first use. A type counts
// as its own enclosing type, so a top-level type gets a synthetic unit
// too; only declarations detached from any source unit are marked
// preprocessed without setup.
func (c *Context) GetOrCreate(d java.Decl) *Node {
	key := d.Key()
	if n, ok := c.nodes[key]; ok {
		return n
	}
	n := &Node{Decl: d, Unit: d.Unit(), Owner: d.Owner()}
	if t, ok := d.(*java.TypeDecl); ok {
		n.Owner = t
	}
	c.nodes[key] = n
	if n.Owner == nil || n.Owner.Unit() == nil {
		n.preprocessed = true
		return n
	}
	n.Synthetic = c.unitFor(n.Owner)
	n.Type = n.Synthetic.typeFor(n.Owner)
	c.preprocess(n)
	return n
}

func (c *Context) unitFor(t *java.TypeDecl) *SyntheticUnit {
	top := t.Outermost()
	u, ok := c.units[top.QualifiedName]
	if !ok {
		u = newSyntheticUnit(top)
		c.units[top.QualifiedName] = u
	}
	return u
}

// syntheticType returns the synthetic type of a type with at least one
// node, if any.
func (c *Context) syntheticType(qualifiedName string) (*SyntheticType, bool) {
	t, ok := c.index.TypeByName(qualifiedName)
	if !ok {
		return nil, false
	}
	u, ok := c.units[t.Outermost().QualifiedName]
	if !ok {
		return nil, false
	}
	return u.Type(qualifiedName)
}

// enqueue interns d and schedules it for expansion. Declarations without
// a key (members of anonymous and local classes) are walked in place by
// the resolver instead.
func (c *Context) enqueue(d java.Decl) *Node {
	if d == nil || d.Key() == "" {
		return nil
	}
	n := c.GetOrCreate(d)
	if c.current != nil && c.current != n {
		e := Edge{From: c.current.Key(), To: n.Key()}
		if !c.edges[e] {
			c.edges[e] = true
			c.edgeList = append(c.edgeList, e)
		}
	}
	if !n.visited {
		c.stack = append(c.stack, n)
	}
	return n
}

func (c *Context) unresolvedRef(text, scope string) {
	r := UnresolvedReference{Text: text, Scope: scope}
	if c.unresolved[r] {
		return
	}
	c.unresolved[r] = true
	c.missed = append(c.missed, r)
	log.Debugf("unresolved %s", r)
}

// missing records a type that had to be copied but has no source. In
// strict mode the first one aborts the run.
func (c *Context) missing(typeName, from string) {
	err := &MissingSourceUnitError{Type: typeName, From: from}
	log.Warningf("%s", err)
	if c.strict && c.err == nil {
		c.err = err
	}
}

func (c *Context) keepImport(u *SyntheticUnit, imp java.Import) bool {
	target := imp.Name
	if imp.IsStatic && !imp.IsWildcard {
		target = java.PackageOf(imp.Name)
	}
	if _, ok := c.index.TypeByName(target); ok {
		st, ok := c.syntheticType(target)
		if !ok {
			return false
		}
		if imp.IsStatic && !imp.IsWildcard {
			return st.hasMemberNamed(java.SimpleName(imp.Name))
		}
		return true
	}
	if imp.IsStatic || !imp.IsWildcard {
		return true
	}
	if pl, ok := c.index.(packageLister); ok && pl.HasPackage(imp.Name) {
		if u.used[imp.String()] {
			return true
		}
		for _, other := range c.units {
			if other.Package == imp.Name {
				return true
			}
		}
		return false
	}
	return true
}

// Result is the outcome of CloseOver.
type Result struct {
	RunID uuid.UUID
	Seeds []java.Key
	// Nodes holds every node of the context ordered by key.
	Nodes []*Node
	Edges []Edge
	// Units maps top-level type names to synthetic units.
	Units      map[string]*SyntheticUnit
	Unresolved []UnresolvedReference
}

func (r *Result) Node(key java.Key) (*Node, bool) {
	for _, n := range r.Nodes {
		if n.Key() == key {
			return n, true
		}
	}
	return nil, false
}

// SortedUnits returns the synthetic units ordered by type name.
func (r *Result) SortedUnits() []*SyntheticUnit {
	out := make([]*SyntheticUnit, 0, len(r.Units))
	for _, u := range r.Units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
