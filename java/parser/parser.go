package parser

import (
	"errors"
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	sitterjava "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

var ErrParseFailed = errors.New("tree-sitter returned no tree")

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

type Parser struct {
	file string
}

var (
	languageOnce sync.Once
	language     *sitter.Language
)

func javaLanguage() *sitter.Language {
	languageOnce.Do(func() {
		language = sitter.NewLanguage(sitterjava.Language())
	})
	return language
}

// Parse parses a complete compilation unit.
func Parse(source []byte, opts ...Option) (*Tree, error) {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p.parse(source)
}

func (p *Parser) parse(source []byte) (*Tree, error) {
	sp := sitter.NewParser()
	defer sp.Close()
	if err := sp.SetLanguage(javaLanguage()); err != nil {
		return nil, fmt.Errorf("set java language: %w", err)
	}
	inner := sp.Parse(source, nil)
	if inner == nil {
		return nil, fmt.Errorf("%s: %w", p.displayName(), ErrParseFailed)
	}
	return &Tree{inner: inner, source: source, file: p.file}, nil
}

func (p *Parser) displayName() string {
	if p.file == "" {
		return "<input>"
	}
	return p.file
}

type Tree struct {
	inner  *sitter.Tree
	source []byte
	file   string
}

func (t *Tree) Root() *Node {
	return wrap(t.inner.RootNode(), t.source)
}

func (t *Tree) Source() []byte {
	return t.source
}

func (t *Tree) File() string {
	return t.file
}

func (t *Tree) Close() {
	t.inner.Close()
}

type SyntaxError struct {
	File     string
	Position Position
	Missing  bool
	Text     string
}

func (e SyntaxError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s:%s: missing %s", e.File, e.Position, e.Text)
	}
	return fmt.Sprintf("%s:%s: syntax error near %q", e.File, e.Position, e.Text)
}

// Errors lists the ERROR and MISSING nodes of the tree in source order.
func (t *Tree) Errors() []SyntaxError {
	root := t.Root()
	if !root.HasError() {
		return nil
	}
	var errs []SyntaxError
	var walk func(n *Node)
	walk = func(n *Node) {
		switch {
		case n.IsMissing():
			errs = append(errs, SyntaxError{File: t.file, Position: n.Position(), Missing: true, Text: n.Kind()})
			return
		case n.IsError():
			text := n.Text()
			if len(text) > 40 {
				text = text[:40]
			}
			errs = append(errs, SyntaxError{File: t.file, Position: n.Position(), Text: text})
			return
		}
		if !n.HasError() {
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)
	return errs
}
