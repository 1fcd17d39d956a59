package parser

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Position is 1-based.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Node struct {
	inner  *sitter.Node
	source []byte
}

func wrap(n *sitter.Node, source []byte) *Node {
	if n == nil {
		return nil
	}
	return &Node{inner: n, source: source}
}

func (n *Node) Kind() string {
	return n.inner.Kind()
}

func (n *Node) IsNamed() bool   { return n.inner.IsNamed() }
func (n *Node) IsError() bool   { return n.inner.IsError() }
func (n *Node) IsMissing() bool { return n.inner.IsMissing() }
func (n *Node) HasError() bool  { return n.inner.HasError() }

// IsComment reports line and block comments, which tree-sitter places
// anywhere between tokens.
func (n *Node) IsComment() bool {
	switch n.Kind() {
	case "line_comment", "block_comment", "comment":
		return true
	}
	return false
}

func (n *Node) StartByte() uint { return n.inner.StartByte() }
func (n *Node) EndByte() uint   { return n.inner.EndByte() }

func (n *Node) Position() Position {
	p := n.inner.StartPosition()
	return Position{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}

func (n *Node) EndPosition() Position {
	p := n.inner.EndPosition()
	return Position{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}

func (n *Node) Text() string {
	start, end := n.StartByte(), n.EndByte()
	if end > uint(len(n.source)) {
		end = uint(len(n.source))
	}
	if start >= end {
		return ""
	}
	return string(n.source[start:end])
}

func (n *Node) Field(name string) *Node {
	return wrap(n.inner.ChildByFieldName(name), n.source)
}

func (n *Node) Children() []*Node {
	count := n.inner.ChildCount()
	children := make([]*Node, 0, count)
	for i := uint(0); i < uint(count); i++ {
		if c := wrap(n.inner.Child(i), n.source); c != nil {
			children = append(children, c)
		}
	}
	return children
}

// NamedChildren returns the named children without comments.
func (n *Node) NamedChildren() []*Node {
	count := n.inner.NamedChildCount()
	children := make([]*Node, 0, count)
	for i := uint(0); i < uint(count); i++ {
		c := wrap(n.inner.NamedChild(i), n.source)
		if c == nil || c.IsComment() {
			continue
		}
		children = append(children, c)
	}
	return children
}

func (n *Node) ChildrenOfKind(kinds ...string) []*Node {
	var result []*Node
	for _, c := range n.NamedChildren() {
		for _, k := range kinds {
			if c.Kind() == k {
				result = append(result, c)
				break
			}
		}
	}
	return result
}

func (n *Node) FirstChildOfKind(kinds ...string) *Node {
	if found := n.ChildrenOfKind(kinds...); len(found) > 0 {
		return found[0]
	}
	return nil
}

// HasToken reports whether an anonymous child token with the given text
// is present, e.g. "static" in an import declaration.
func (n *Node) HasToken(tok string) bool {
	for _, c := range n.Children() {
		if !c.IsNamed() && c.Kind() == tok {
			return true
		}
	}
	return false
}

func (n *Node) Sexp() string {
	return n.inner.ToSexp()
}

func (n *Node) String() string {
	return n.stringIndent(0, false)
}

func (n *Node) StringWithPositions() string {
	return n.stringIndent(0, true)
}

func (n *Node) stringIndent(indent int, showPositions bool) string {
	var sb strings.Builder
	n.writeIndent(&sb, indent, showPositions)
	return sb.String()
}

func (n *Node) writeIndent(sb *strings.Builder, indent int, showPositions bool) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(n.Kind())
	if showPositions {
		sb.WriteString(" [" + n.Position().String() + "-" + n.EndPosition().String() + "]")
	}
	named := n.NamedChildren()
	if len(named) == 0 {
		sb.WriteString(" " + n.Text())
	}
	if n.IsMissing() {
		sb.WriteString(" MISSING")
	}
	sb.WriteString("\n")
	for _, c := range named {
		c.writeIndent(sb, indent+1, showPositions)
	}
}
