// Package parser parses Java source with the tree-sitter Java grammar.
//
// The result is a concrete syntax tree of Nodes that keep a reference to
// the source bytes, so the text of any node can be recovered verbatim.
// Parsing is error tolerant: malformed regions become ERROR or MISSING
// nodes and are reported by Tree.Errors, the rest of the tree is usable.
//
//	tree, err := parser.Parse(src, parser.WithFile("Foo.java"))
//	if err != nil {
//		return err
//	}
//	defer tree.Close()
//	for _, n := range tree.Root().NamedChildren() {
//		fmt.Println(n.Kind(), n.Position())
//	}
package parser
