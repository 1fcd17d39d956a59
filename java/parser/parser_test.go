package parser

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompilationUnit(t *testing.T) {
	src := []byte(`package com.example;

import java.util.List;

public class Foo {
    private int x;
}
`)
	tree, err := Parse(src, WithFile("Foo.java"))
	require.NoError(t, err)
	defer tree.Close()

	root := tree.Root()
	assert.Equal(t, "program", root.Kind())
	assert.Empty(t, tree.Errors())

	var kinds []string
	for _, c := range root.NamedChildren() {
		kinds = append(kinds, c.Kind())
	}
	assert.Equal(t, []string{"package_declaration", "import_declaration", "class_declaration"}, kinds)

	class := root.FirstChildOfKind("class_declaration")
	require.NotNil(t, class)
	assert.Equal(t, "Foo", class.Field("name").Text())
	assert.Equal(t, Position{Line: 5, Column: 1}, class.Position())
}

func TestNodeHasToken(t *testing.T) {
	tree, err := Parse([]byte("import static java.util.Collections.emptyList;\nimport java.util.*;\n"))
	require.NoError(t, err)
	defer tree.Close()

	imports := tree.Root().ChildrenOfKind("import_declaration")
	require.Len(t, imports, 2)
	assert.True(t, imports[0].HasToken("static"))
	assert.False(t, imports[1].HasToken("static"))
	assert.NotNil(t, imports[1].FirstChildOfKind("asterisk"))
}

func TestTreeErrors(t *testing.T) {
	tree, err := Parse([]byte("class Broken { void m( { }"), WithFile("Broken.java"))
	require.NoError(t, err)
	defer tree.Close()

	errs := tree.Errors()
	require.NotEmpty(t, errs)
	for _, e := range errs {
		if !strings.HasPrefix(e.Error(), "Broken.java:") {
			t.Errorf("error %q does not name the file", e.Error())
		}
	}
}

func TestNodeCommentsSkipped(t *testing.T) {
	tree, err := Parse([]byte("// leading\nclass A { /* inside */ int x; }\n"))
	require.NoError(t, err)
	defer tree.Close()

	for _, c := range tree.Root().NamedChildren() {
		if c.IsComment() {
			t.Errorf("NamedChildren returned comment %q", c.Text())
		}
	}
}

func TestNodeMarshalJSON(t *testing.T) {
	tree, err := Parse([]byte("class A {}"))
	require.NoError(t, err)
	defer tree.Close()

	data, err := json.Marshal(tree.Root())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "program", decoded["kind"])
	assert.NotEmpty(t, decoded["children"])
}

func TestNodeString(t *testing.T) {
	tree, err := Parse([]byte("class A {}"))
	require.NoError(t, err)
	defer tree.Close()

	out := tree.Root().String()
	if !strings.HasPrefix(out, "program\n  class_declaration\n") {
		t.Errorf("String() = %q", out)
	}
	assert.Contains(t, out, "identifier A")
}
