package slice

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/dhamidi/javaslice/java"
)

// Seed names the entry point of a run: Type, Type#member or
// Type#member(ParamType,...). The member <init> names constructors.
type Seed struct {
	Type   string
	Member string
	// Params is nil when no parameter list was given.
	Params []string
}

func (s Seed) String() string {
	var sb strings.Builder
	sb.WriteString(s.Type)
	if s.Member != "" {
		sb.WriteString("#")
		sb.WriteString(s.Member)
	}
	if s.Params != nil {
		sb.WriteString("(")
		sb.WriteString(strings.Join(s.Params, ","))
		sb.WriteString(")")
	}
	return sb.String()
}

func ParseSeed(spec string) (Seed, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Seed{}, fmt.Errorf("%w: empty", ErrMalformedSeed)
	}
	typ, member, hasMember := strings.Cut(spec, "#")
	if !isQualifiedIdentifier(typ) {
		return Seed{}, fmt.Errorf("%w: %q: bad type name %q", ErrMalformedSeed, spec, typ)
	}
	seed := Seed{Type: typ}
	if !hasMember {
		return seed, nil
	}

	name, params, hasParams := strings.Cut(member, "(")
	name = strings.TrimSpace(name)
	if name != "<init>" && !isIdentifier(name) {
		return Seed{}, fmt.Errorf("%w: %q: bad member name %q", ErrMalformedSeed, spec, name)
	}
	seed.Member = name
	if !hasParams {
		return seed, nil
	}
	params = strings.TrimSpace(params)
	if !strings.HasSuffix(params, ")") {
		return Seed{}, fmt.Errorf("%w: %q: unterminated parameter list", ErrMalformedSeed, spec)
	}
	params = strings.TrimSuffix(params, ")")
	seed.Params = []string{}
	if strings.TrimSpace(params) == "" {
		return seed, nil
	}
	for _, p := range splitParams(params) {
		p = strings.TrimSpace(p)
		if p == "" {
			return Seed{}, fmt.Errorf("%w: %q: empty parameter type", ErrMalformedSeed, spec)
		}
		seed.Params = append(seed.Params, p)
	}
	return seed, nil
}

// splitParams splits at commas outside type argument lists.
func splitParams(s string) []string {
	var out []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

func isQualifiedIdentifier(s string) bool {
	for _, seg := range strings.Split(s, ".") {
		if !isIdentifier(seg) {
			return false
		}
	}
	return true
}

// FindSeed returns the declarations a seed names. A bare type selects
// the type with all its methods and constructors; a member name without
// parameters selects every overload. A type may be given by its simple
// or partially qualified name when that is unambiguous.
func FindSeed(src Source, seed Seed) ([]java.Decl, error) {
	t, err := findType(src, seed.Type)
	if err != nil {
		return nil, err
	}

	var decls []java.Decl
	switch seed.Member {
	case "":
		decls = append(decls, t)
		for _, ctor := range t.Constructors {
			decls = append(decls, ctor)
		}
		for _, m := range t.Methods {
			decls = append(decls, m)
		}
	case "<init>":
		for _, ctor := range t.Constructors {
			if seed.Params == nil || paramsMatch(ctor.Parameters, seed.Params) {
				decls = append(decls, ctor)
			}
		}
	default:
		for _, m := range t.MethodsNamed(seed.Member) {
			if seed.Params == nil || paramsMatch(m.Parameters, seed.Params) {
				decls = append(decls, m)
			}
		}
		if len(decls) == 0 && seed.Params == nil {
			if f := t.Field(seed.Member); f != nil {
				decls = append(decls, f)
			} else if e := t.EnumConstant(seed.Member); e != nil {
				decls = append(decls, e)
			}
		}
	}
	if len(decls) == 0 {
		return nil, fmt.Errorf("%w: %s has no member %s", ErrSeedNotFound, t.QualifiedName, seed)
	}
	return decls, nil
}

func findType(src Source, name string) (*java.TypeDecl, error) {
	t, ok := src.TypeByName(name)
	if !ok {
		lister, ok := src.(typeLister)
		if !ok {
			return nil, fmt.Errorf("%w: no type %s", ErrSeedNotFound, name)
		}
		var matches []*java.TypeDecl
		for _, c := range lister.AllTypes() {
			if c.QualifiedName == name || strings.HasSuffix(c.QualifiedName, "."+name) {
				matches = append(matches, c)
			}
		}
		switch len(matches) {
		case 0:
			return nil, fmt.Errorf("%w: no type %s", ErrSeedNotFound, name)
		case 1:
			t = matches[0]
		default:
			names := make([]string, len(matches))
			for i, m := range matches {
				names[i] = m.QualifiedName
			}
			sort.Strings(names)
			return nil, fmt.Errorf("%w: %s is ambiguous: %s", ErrSeedNotFound, name, strings.Join(names, ", "))
		}
	}
	if _, ok := src.UnitOf(t.QualifiedName); !ok {
		return nil, &MissingSourceUnitError{Type: t.QualifiedName, From: "seed"}
	}
	return t, nil
}

func paramsMatch(params []java.Parameter, want []string) bool {
	if len(params) != len(want) {
		return false
	}
	for i, p := range params {
		have := p.Type.Erasure()
		if p.IsVarargs {
			have += "[]"
		}
		if simpleErasure(have) != simpleErasure(want[i]) {
			return false
		}
	}
	return true
}

// simpleErasure reduces a written type to its simple name and array
// dimensions: "java.util.List<String>..." becomes "List[]".
func simpleErasure(s string) string {
	var sb strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			depth--
		case depth > 0 || unicode.IsSpace(r):
		default:
			sb.WriteRune(r)
		}
	}
	t := strings.ReplaceAll(sb.String(), "...", "[]")
	base, dims, _ := strings.Cut(t, "[")
	if dims != "" {
		dims = "[" + dims
	}
	return java.SimpleName(base) + dims
}
