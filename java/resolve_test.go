package java

import (
	"testing"
)

func TestInnerTypeIndexFix(t *testing.T) {
	authentication := []byte(`package org.eclipse.jetty.client;

public class Authentication {
    public static class HeaderInfo {}
}
`)
	unit, err := UnitFromSource(authentication)
	if err != nil {
		t.Fatal(err)
	}
	idx := BuildInnerTypeIndex(unit.AllTypes())

	got, ok := idx.Fix("org.eclipse.jetty.client.HeaderInfo")
	if !ok {
		t.Fatalf("Fix did not rewrite the nested type reference")
	}
	if want := "org.eclipse.jetty.client.Authentication.HeaderInfo"; got != want {
		t.Errorf("Fix = %q, want %q", got, want)
	}

	if got, ok := idx.Fix("org.eclipse.jetty.client.Unknown"); ok || got != "org.eclipse.jetty.client.Unknown" {
		t.Errorf("Fix(Unknown) = %q, %v; want unchanged", got, ok)
	}
	if _, ok := idx.Fix("HeaderInfo"); ok {
		t.Errorf("Fix rewrote an unqualified name")
	}
}

func TestInnerTypeIndexAmbiguous(t *testing.T) {
	src := []byte(`package p;
class A { static class Node {} }
class B { static class Node {} }
`)
	unit, err := UnitFromSource(src)
	if err != nil {
		t.Fatal(err)
	}
	idx := BuildInnerTypeIndex(unit.AllTypes())
	if got, ok := idx.Fix("p.Node"); ok {
		t.Errorf("Fix(p.Node) = %q, want no rewrite for ambiguous name", got)
	}
}

func TestSplitQualified(t *testing.T) {
	tests := []struct {
		name    string
		wantPkg string
		wantTyp string
	}{
		{"org.eclipse.jetty.client.Authentication.HeaderInfo", "org.eclipse.jetty.client", "Authentication.HeaderInfo"},
		{"java.util.List", "java.util", "List"},
		{"Foo", "", "Foo"},
		{"com.acme.util", "com.acme", "util"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, typ := SplitQualified(tt.name)
			if pkg != tt.wantPkg || typ != tt.wantTyp {
				t.Errorf("SplitQualified(%q) = %q, %q; want %q, %q", tt.name, pkg, typ, tt.wantPkg, tt.wantTyp)
			}
		})
	}
}
