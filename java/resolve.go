package java

import (
	"strings"
)

// InnerTypeIndex fixes references to nested types that were qualified as
// if they were top-level types of their package.
//
// A file that mentions HeaderInfo without importing Authentication.HeaderInfo
// resolves it to pkg.HeaderInfo by the same-package rule. When no such
// top-level type exists but pkg.Authentication.HeaderInfo does, Fix
// returns the nested name.
type InnerTypeIndex map[string]map[string][]string

func BuildInnerTypeIndex(types []*TypeDecl) InnerTypeIndex {
	idx := make(InnerTypeIndex)
	for _, t := range types {
		if t.Owner() == nil {
			continue
		}
		pkg := t.Package
		if idx[pkg] == nil {
			idx[pkg] = make(map[string][]string)
		}
		idx[pkg][t.SimpleName] = append(idx[pkg][t.SimpleName], t.QualifiedName)
	}
	return idx
}

// Fix maps "pkg.Simple" to the single nested type named Simple in pkg.
// Ambiguous names are left alone.
func (idx InnerTypeIndex) Fix(typeName string) (string, bool) {
	if typeName == "" || !strings.Contains(typeName, ".") {
		return typeName, false
	}
	pkg, simple := PackageOf(typeName), SimpleName(typeName)
	candidates := idx[pkg][simple]
	if len(candidates) != 1 {
		return typeName, false
	}
	return candidates[0], true
}

// SplitQualified splits a dotted name into its package part and type
// part using the Java naming convention that packages are lower case
// and types start with an upper case letter.
//
// "org.eclipse.jetty.client.Authentication.HeaderInfo" yields
// "org.eclipse.jetty.client" and "Authentication.HeaderInfo".
func SplitQualified(name string) (pkg, typ string) {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if len(part) > 0 && part[0] >= 'A' && part[0] <= 'Z' {
			return strings.Join(parts[:i], "."), strings.Join(parts[i:], ".")
		}
	}
	if len(parts) > 1 {
		return strings.Join(parts[:len(parts)-1], "."), parts[len(parts)-1]
	}
	return "", name
}

// JavaLangTypes are the java.lang types visible without an import.
var JavaLangTypes = map[string]bool{
	"Object": true, "String": true, "Integer": true, "Long": true, "Short": true,
	"Byte": true, "Character": true, "Boolean": true, "Double": true, "Float": true,
	"Number": true, "Math": true, "StrictMath": true, "System": true, "Thread": true,
	"Runnable": true, "Iterable": true, "Comparable": true, "CharSequence": true,
	"StringBuilder": true, "StringBuffer": true, "Class": true, "Enum": true,
	"Record": true, "Void": true, "Exception": true, "RuntimeException": true,
	"Error": true, "Throwable": true, "IllegalArgumentException": true,
	"IllegalStateException": true, "NullPointerException": true,
	"UnsupportedOperationException": true, "IndexOutOfBoundsException": true,
	"ArithmeticException": true, "ClassCastException": true, "InterruptedException": true,
	"CloneNotSupportedException": true, "NumberFormatException": true,
	"ArrayIndexOutOfBoundsException": true, "AutoCloseable": true, "Cloneable": true,
	"Override": true, "Deprecated": true, "SuppressWarnings": true,
	"FunctionalInterface": true, "SafeVarargs": true, "Process": true,
	"ProcessBuilder": true, "Runtime": true, "ThreadLocal": true, "ClassLoader": true,
	"AssertionError": true, "OutOfMemoryError": true, "StackOverflowError": true,
}
