package slice

import "github.com/dhamidi/javaslice/java"

// Markers names the annotations that imply members the source does not
// spell out. Names may be simple or qualified.
type Markers struct {
	// Accessor annotations generate getters and setters for fields.
	Accessor []string
	// AllArgs annotations generate a constructor over every instance
	// field.
	AllArgs []string
	// RequiredArgs annotations generate a constructor over final and
	// non-null fields.
	RequiredArgs []string
	// Entity annotations mark persistence-mapped types.
	Entity  []string
	NonNull []string
	ID      []string
}

// DefaultMarkers covers Lombok and JPA.
func DefaultMarkers() Markers {
	return Markers{
		Accessor:     []string{"Data", "Getter", "Setter", "Value"},
		AllArgs:      []string{"AllArgsConstructor", "Value"},
		RequiredArgs: []string{"RequiredArgsConstructor", "Data"},
		Entity:       []string{"Entity", "Embeddable", "MappedSuperclass"},
		NonNull:      []string{"NonNull", "lombok.NonNull"},
		ID:           []string{"Id", "EmbeddedId"},
	}
}

// isDataHolder reports whether framework code is expected to rely on the
// annotations of t.
func (m Markers) isDataHolder(t *java.TypeDecl) bool {
	return t.HasAnnotation(m.AllArgs...) || t.HasAnnotation(m.Entity...) || t.HasAnnotation(m.Accessor...)
}

// hasAccessors reports whether getters and setters exist for f without
// being declared.
func (m Markers) hasAccessors(t *java.TypeDecl, f *java.FieldDecl) bool {
	if len(m.Accessor) == 0 {
		return false
	}
	if f != nil && f.HasAnnotation(m.Accessor...) {
		return true
	}
	for ; t != nil; t = t.Owner() {
		if t.HasAnnotation(m.Accessor...) {
			return true
		}
	}
	return false
}

// requiredFields returns the fields a generated constructor of t takes.
func (m Markers) requiredFields(t *java.TypeDecl) []*java.FieldDecl {
	var out []*java.FieldDecl
	allArgs := t.HasAnnotation(m.AllArgs...)
	requiredArgs := t.HasAnnotation(m.RequiredArgs...)
	entity := t.HasAnnotation(m.Entity...)
	for _, f := range t.Fields {
		if f.IsStatic() {
			continue
		}
		switch {
		case allArgs:
			out = append(out, f)
		case requiredArgs && (f.IsFinal() && f.Initializer == nil || f.HasAnnotation(m.NonNull...)):
			out = append(out, f)
		case entity && f.HasAnnotation(m.ID...):
			out = append(out, f)
		}
	}
	return out
}
