// Package slice computes the declarations a Java entry point statically
// depends on and collects them into synthetic compilation units.
//
// A Context interns every discovered declaration as a Node. CloseOver
// drains a worklist seeded with the entry points: each popped node is
// expanded by resolving the types, names and calls it mentions against
// a TypeResolver, and every declaration found that way is interned and
// pushed in turn. Structural requirements of a type (its supertypes,
// constructors and the fields frameworks expect) are copied the first
// time any of its members is interned.
//
// Resolution is best-effort. References that cannot be resolved are
// dropped and reported in Result.Unresolved.
package slice
