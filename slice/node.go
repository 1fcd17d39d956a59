package slice

import "github.com/dhamidi/javaslice/java"

type State int

const (
	Unvisited State = iota
	// Preprocessed nodes had the structural requirements of their
	// enclosing type copied.
	Preprocessed
	// Visited nodes had their dependencies discovered. The state is
	// terminal.
	Visited
)

func (s State) String() string {
	switch s {
	case Preprocessed:
		return "preprocessed"
	case Visited:
		return "visited"
	}
	return "unvisited"
}

// Node is one declaration of a slice together with the synthetic type
// its member is copied into.
type Node struct {
	Decl java.Decl
	Unit *java.SourceUnit
	// Owner is the enclosing type of a member, or the type itself for a
	// type node. It is nil for detached declarations.
	Owner *java.TypeDecl

	Synthetic *SyntheticUnit
	Type      *SyntheticType

	visited      bool
	preprocessed bool
}

func (n *Node) Key() java.Key { return n.Decl.Key() }

func (n *Node) State() State {
	switch {
	case n.visited:
		return Visited
	case n.preprocessed:
		return Preprocessed
	}
	return Unvisited
}

func (n *Node) String() string {
	return string(n.Decl.Key())
}

// Edge records that expanding From discovered To.
type Edge struct {
	From java.Key `json:"from" yaml:"from"`
	To   java.Key `json:"to" yaml:"to"`
}
