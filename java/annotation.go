package java

import "strings"

type Annotation struct {
	// Name is the annotation type as written: "Data" or "lombok.Data".
	Name      string
	Arguments []AnnotationArgument
	Source    string
}

// AnnotationArgument is an element-value pair. The single-element form
// @A(x) is stored with Name "value".
type AnnotationArgument struct {
	Name  string
	Value Expr
}

// SimpleName drops the qualifier of the annotation type.
func (a Annotation) SimpleName() string {
	return SimpleName(a.Name)
}

func (a Annotation) Argument(name string) (Expr, bool) {
	for _, arg := range a.Arguments {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

// Matches reports whether the annotation names one of the given types.
// A name containing a dot must match exactly when the annotation is
// written qualified; otherwise simple names are compared.
func (a Annotation) Matches(names ...string) bool {
	for _, n := range names {
		if a.Name == n {
			return true
		}
		if SimpleName(a.Name) == SimpleName(n) && (!strings.Contains(a.Name, ".") || !strings.Contains(n, ".")) {
			return true
		}
	}
	return false
}

func FindAnnotation(anns []Annotation, names ...string) (Annotation, bool) {
	for _, a := range anns {
		if a.Matches(names...) {
			return a, true
		}
	}
	return Annotation{}, false
}
