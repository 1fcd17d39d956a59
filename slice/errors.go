package slice

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedSeed = errors.New("malformed seed")
	ErrSeedNotFound  = errors.New("seed not found")
)

// MissingSourceUnitError reports a type whose source is needed but not
// part of the code base.
type MissingSourceUnitError struct {
	Type string
	// From is the declaration that required the type.
	From string
}

func (e *MissingSourceUnitError) Error() string {
	return fmt.Sprintf("no source for %s (required by %s)", e.Type, e.From)
}

// UnresolvedReference is a name, field access or call that could not be
// bound to a declaration. It is never returned as an error; the edge is
// dropped.
type UnresolvedReference struct {
	Text  string
	Scope string
}

func (r UnresolvedReference) String() string {
	if r.Scope == "" {
		return r.Text
	}
	return r.Text + " in " + r.Scope
}
