package codebase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/javaslice/java"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func index(t *testing.T, files map[string]string) *Codebase {
	t.Helper()
	c, err := New("/src")
	require.NoError(t, err)
	for path, content := range files {
		require.NoError(t, c.UpdateFile(path, []byte(content)))
	}
	return c
}

func TestScanAll(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".gitignore":             "build/\n",
		"src/p/A.java":           "package p; public class A {}",
		"src/p/ATest.java":       "package p; public class ATest {}",
		"src/p/notes.txt":        "not java",
		"build/p/Generated.java": "package p; public class Generated {}",
		".hidden/p/Hidden.java":  "package p; public class Hidden {}",
		"src/q/Broken.java":      "package q; public class Broken { void m( }",
	})

	c, err := New(root, WithGitignore(true), WithExclude("**/*Test.java"), WithWorkers(2))
	require.NoError(t, err)
	require.NoError(t, c.ScanAll(context.Background()))

	assert.Equal(t, []string{
		filepath.Join(root, "src/p/A.java"),
		filepath.Join(root, "src/q/Broken.java"),
	}, c.Files())

	_, ok := c.TypeByName("p.A")
	assert.True(t, ok)
	_, ok = c.TypeByName("p.Generated")
	assert.False(t, ok)

	broken := c.GetFile(filepath.Join(root, "src/q/Broken.java"))
	require.NotNil(t, broken)
	assert.NotEmpty(t, broken.Errors)
}

func TestScanAllHonoursCancellation(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"p/A.java": "package p; class A {}"})

	c, err := New(root)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.ScanAll(ctx), context.Canceled)
}

func TestAccepts(t *testing.T) {
	c, err := New("/root", WithInclude("src/main/**"), WithExclude("**/generated/**"))
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{"/root/src/main/java/p/A.java", true},
		{"/root/src/main/java/p/A.kt", false},
		{"/root/src/test/java/p/ATest.java", false},
		{"/root/src/main/java/generated/p/G.java", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Accepts(tt.path), tt.path)
	}
}

func TestInvalidGlob(t *testing.T) {
	_, err := New("/root", WithInclude("src/[main"))
	assert.Error(t, err)
}

func TestUpdateAndRemoveFile(t *testing.T) {
	c := index(t, map[string]string{"/src/p/A.java": "package p; class A {}"})

	require.NoError(t, c.UpdateFile("/src/p/A.java", []byte("package p; class B {}")))
	_, ok := c.TypeByName("p.A")
	assert.False(t, ok)
	_, ok = c.TypeByName("p.B")
	assert.True(t, ok)

	c.RemoveFile("/src/p/A.java")
	assert.Empty(t, c.AllTypes())
	assert.Empty(t, c.Files())
}

func TestResolveType(t *testing.T) {
	c := index(t, map[string]string{
		"/src/p/A.java": `package p;

import q.B;
import r.*;
import java.util.List;

class A<T> {
    class Inner {}
}`,
		"/src/p/D.java": "package p; class D {}",
		"/src/q/B.java": "package q; public class B { public static class Nested {} }",
		"/src/r/B.java": "package r; public class B {}",
		"/src/r/C.java": "package r; public class C {}",
	})
	a, ok := c.TypeByName("p.A")
	require.True(t, ok)
	unit := a.Unit()

	tests := []struct {
		name string
		kind java.ResolutionKind
		want string
	}{
		{"T", java.TypeVariable, "T"},
		{"Inner", java.Resolved, "p.A.Inner"},
		{"A.Inner", java.Resolved, "p.A.Inner"},
		{"B", java.Resolved, "q.B"},
		{"B.Nested", java.Resolved, "q.B.Nested"},
		{"C", java.Resolved, "r.C"},
		{"D", java.Resolved, "p.D"},
		{"List", java.External, "java.util.List"},
		{"String", java.External, "java.lang.String"},
		{"java.util.Map", java.External, "java.util.Map"},
		{"r.C", java.Resolved, "r.C"},
		{"p.Inner", java.Resolved, "p.A.Inner"},
		{"Nope", java.Unresolved, ""},
		{"a.b.c", java.Unresolved, ""},
		{"int", java.Unresolved, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.ResolveType(tt.name, a, unit)
			assert.Equal(t, tt.kind, r.Kind)
			assert.Equal(t, tt.want, r.Name)
		})
	}

	r := c.ResolveType("B", a, unit)
	require.NotNil(t, r.Import)
	assert.Equal(t, "q.B", r.Import.Name)

	// cached lookups return the same answer
	assert.Equal(t, r, c.ResolveType("B", a, unit))
}

func TestInheritedMemberType(t *testing.T) {
	c := index(t, map[string]string{
		"/src/p/Base.java": "package p; class Base { static class Config {} }",
		"/src/p/Sub.java":  "package p; class Sub extends Base { Config config; }",
	})
	sub, ok := c.TypeByName("p.Sub")
	require.True(t, ok)

	r := c.ResolveType("Config", sub, sub.Unit())
	assert.Equal(t, java.Resolved, r.Kind)
	assert.Equal(t, "p.Base.Config", r.Name)
}

func TestStaticImport(t *testing.T) {
	c := index(t, map[string]string{
		"/src/p/Limits.java": "package p; public class Limits { public static final int MAX = 1; static int twice(int x) { return 2 * x; } }",
		"/src/q/Use.java": `package q;

import static p.Limits.MAX;
import static p.Limits.*;
import static java.util.Objects.requireNonNull;

class Use {}`,
	})
	use, ok := c.TypeByName("q.Use")
	require.True(t, ok)

	owner, ok := c.StaticImport(use.Unit(), "MAX")
	assert.True(t, ok)
	assert.Equal(t, "p.Limits", owner)

	owner, ok = c.StaticImport(use.Unit(), "twice")
	assert.True(t, ok)
	assert.Equal(t, "p.Limits", owner)

	owner, ok = c.StaticImport(use.Unit(), "requireNonNull")
	assert.True(t, ok)
	assert.Equal(t, "java.util.Objects", owner)

	_, ok = c.StaticImport(use.Unit(), "missing")
	assert.False(t, ok)
}

func TestImplementations(t *testing.T) {
	c := index(t, map[string]string{
		"/src/p/Shape.java":     "package p; interface Shape { double area(); }",
		"/src/p/Polygon.java":   "package p; abstract class Polygon implements Shape {}",
		"/src/p/Square.java":    "package p; class Square extends Polygon { public double area() { return 1; } }",
		"/src/p/Circle.java":    "package p; class Circle implements Shape, Comparable<Circle> { public double area() { return 3; } }",
		"/src/p/Unrelated.java": "package p; class Unrelated {}",
	})

	var names []string
	for _, impl := range c.Implementations("p.Shape") {
		names = append(names, impl.QualifiedName)
	}
	assert.Equal(t, []string{"p.Circle", "p.Polygon", "p.Square"}, names)
	assert.Empty(t, c.Implementations("p.Unrelated"))
}

func TestHasPackage(t *testing.T) {
	c := index(t, map[string]string{"/src/a/b/X.java": "package a.b; class X {}"})

	assert.True(t, c.HasPackage("a.b"))
	assert.False(t, c.HasPackage("a"))
}

func TestDuplicateTypeKeepsFirst(t *testing.T) {
	c := index(t, map[string]string{
		"/src/one/X.java": "package p; class X { int one; }",
		"/src/two/X.java": "package p; class X { int two; }",
	})
	x, ok := c.TypeByName("p.X")
	require.True(t, ok)
	assert.Equal(t, "/src/one/X.java", x.Unit().Path)
}

func TestViewHoldsBackUpdates(t *testing.T) {
	c, err := New("/src")
	require.NoError(t, err)
	require.NoError(t, c.UpdateFile("/src/p/A.java", []byte("package p; public class A {}")))

	applied := make(chan struct{})
	err = c.View(func() error {
		go func() {
			defer close(applied)
			assert.NoError(t, c.UpdateFile("/src/p/B.java", []byte("package p; public class B {}")))
		}()
		select {
		case <-applied:
			t.Error("update applied during View")
		case <-time.After(50 * time.Millisecond):
		}
		_, ok := c.TypeByName("p.B")
		assert.False(t, ok)
		return nil
	})
	require.NoError(t, err)

	<-applied
	_, ok := c.TypeByName("p.B")
	assert.True(t, ok)
}
