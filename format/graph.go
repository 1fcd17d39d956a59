package format

import (
	"github.com/dhamidi/javaslice/java"
	"github.com/dhamidi/javaslice/slice"
)

// Graph is the serialisable view of a slice result shared by the JSON and
// YAML encoders.
type Graph struct {
	RunID      string       `json:"runId" yaml:"runId"`
	Seeds      []java.Key   `json:"seeds" yaml:"seeds"`
	Nodes      []GraphNode  `json:"nodes" yaml:"nodes"`
	Edges      []slice.Edge `json:"edges,omitempty" yaml:"edges,omitempty"`
	Units      []GraphUnit  `json:"units" yaml:"units"`
	Unresolved []GraphRef   `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
}

type GraphNode struct {
	Key   java.Key       `json:"key" yaml:"key"`
	Kind  java.DeclKind  `json:"kind" yaml:"kind"`
	State string         `json:"state" yaml:"state"`
	File  java.URLString `json:"file" yaml:"file"`
	Line  int            `json:"line,omitempty" yaml:"line,omitempty"`
}

type GraphUnit struct {
	Name    string         `json:"name" yaml:"name"`
	File    java.URLString `json:"file" yaml:"file"`
	Imports []string       `json:"imports,omitempty" yaml:"imports,omitempty"`
	Members []java.Key     `json:"members" yaml:"members"`
}

type GraphRef struct {
	Text  string `json:"text" yaml:"text"`
	Scope string `json:"scope,omitempty" yaml:"scope,omitempty"`
}

func NewGraph(res *slice.Result) Graph {
	g := Graph{
		RunID: res.RunID.String(),
		Seeds: res.Seeds,
		Edges: res.Edges,
	}
	for _, n := range res.Nodes {
		gn := GraphNode{
			Key:   n.Key(),
			Kind:  n.Decl.Kind(),
			State: n.State().String(),
			Line:  declLine(n.Decl),
		}
		if n.Unit != nil && n.Unit.Path != "" {
			gn.File = java.FileURL(n.Unit.Path)
		}
		g.Nodes = append(g.Nodes, gn)
	}
	for _, u := range res.SortedUnits() {
		gu := GraphUnit{Name: u.Name, Members: unitMembers(u)}
		if u.Source != nil && u.Source.Path != "" {
			gu.File = java.FileURL(u.Source.Path)
		}
		for _, imp := range u.Imports {
			gu.Imports = append(gu.Imports, imp.String())
		}
		g.Units = append(g.Units, gu)
	}
	for _, r := range res.Unresolved {
		g.Unresolved = append(g.Unresolved, GraphRef{Text: r.Text, Scope: r.Scope})
	}
	return g
}

// unitMembers lists the keys of every member copied into the unit, outer
// types before the types they enclose.
func unitMembers(u *slice.SyntheticUnit) []java.Key {
	var keys []java.Key
	var walk func(st *slice.SyntheticType)
	walk = func(st *slice.SyntheticType) {
		for _, d := range st.Members() {
			keys = append(keys, d.Key())
			if t, ok := d.(*java.TypeDecl); ok {
				if nested, ok := st.Nested(t); ok {
					walk(nested)
				}
			}
		}
	}
	walk(u.Root())
	return keys
}

func declLine(d java.Decl) int {
	switch d := d.(type) {
	case *java.TypeDecl:
		return d.Position.Line
	case *java.FieldDecl:
		return d.Position.Line
	case *java.MethodDecl:
		return d.Position.Line
	case *java.ConstructorDecl:
		return d.Position.Line
	case *java.EnumConstantDecl:
		return d.Position.Line
	}
	return 0
}
