package slice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/javaslice/java"
)

func TestParseSeed(t *testing.T) {
	tests := []struct {
		in   string
		want Seed
	}{
		{"Foo", Seed{Type: "Foo"}},
		{"com.acme.Foo#bar", Seed{Type: "com.acme.Foo", Member: "bar"}},
		{"Foo#bar()", Seed{Type: "Foo", Member: "bar", Params: []string{}}},
		{"Foo#bar(String, int[])", Seed{Type: "Foo", Member: "bar", Params: []string{"String", "int[]"}}},
		{"Foo#bar(Map<String, Integer>,long)", Seed{Type: "Foo", Member: "bar", Params: []string{"Map<String, Integer>", "long"}}},
		{"Foo#<init>", Seed{Type: "Foo", Member: "<init>"}},
		{"  Outer.Inner#run  ", Seed{Type: "Outer.Inner", Member: "run"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeed(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSeedMalformed(t *testing.T) {
	for _, in := range []string{"", "#bar", "Foo#", "Foo#bar#baz", "1Foo#bar", "Foo..Bar", "Foo#bar(int", "Foo#bar(int,)", "Foo#ba-r"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSeed(in)
			assert.True(t, errors.Is(err, ErrMalformedSeed), "err = %v", err)
		})
	}
}

func TestSeedString(t *testing.T) {
	assert.Equal(t, "Foo#bar(int,String)", Seed{Type: "Foo", Member: "bar", Params: []string{"int", "String"}}.String())
	assert.Equal(t, "Foo", Seed{Type: "Foo"}.String())
}

func TestFindSeed(t *testing.T) {
	cb := newIndex(t, map[string]string{
		"/src/a/Foo.java": `package a;

import java.util.List;

public class Foo {
    int count;

    Foo() {}
    Foo(int count) {}

    void run() {}
    void run(List<String> names) {}
    void run(String... names) {}
}`,
		"/src/b/Dup.java": `package b;
public class Dup {}`,
		"/src/c/Dup.java": `package c;
public class Dup {}`,
	})

	find := func(spec string) ([]java.Decl, error) {
		seed, err := ParseSeed(spec)
		require.NoError(t, err)
		return FindSeed(cb, seed)
	}
	keys := func(ds []java.Decl) []string {
		out := make([]string, len(ds))
		for i, d := range ds {
			out[i] = string(d.Key())
		}
		return out
	}

	ds, err := find("a.Foo#run")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.Foo#run()", "a.Foo#run(List)", "a.Foo#run(String[])"}, keys(ds))

	ds, err = find("Foo#run(java.util.List<String>)")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.Foo#run(List)"}, keys(ds))

	ds, err = find("Foo#run(String...)")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.Foo#run(String[])"}, keys(ds))

	ds, err = find("Foo#<init>(int)")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.Foo#<init>(int)"}, keys(ds))

	ds, err = find("Foo#count")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.Foo#count"}, keys(ds))

	_, err = find("Foo#walk")
	assert.True(t, errors.Is(err, ErrSeedNotFound))

	_, err = find("Nope#run")
	assert.True(t, errors.Is(err, ErrSeedNotFound))

	_, err = find("Dup")
	assert.True(t, errors.Is(err, ErrSeedNotFound))
	assert.Contains(t, err.Error(), "b.Dup, c.Dup")
}
