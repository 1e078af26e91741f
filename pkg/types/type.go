package types

import (
	"github.com/m93a/mag-tc/pkg/types/kinds"
)

// Type is implemented by every type representation.
//
// IsAssignableTo reports whether a value of the receiver's type can be used
// wherever a value of other is required.
//
// IsSupertypeOf lets a representation claim the relation for candidates it
// knows nothing about the concrete representation of. Returning decided ==
// false means "no opinion" and the candidate's own rule applies.
type Type interface {
	Kind() kinds.Kind
	String() string
	IsAssignableTo(other Type) bool
	IsSupertypeOf(candidate Type) (assignable bool, decided bool)
}

// Relation is a Type that exposes its representation-specific rule to a
// Checker. The rule is only consulted after other's IsSupertypeOf hook has
// declined to decide.
type Relation interface {
	Type
	AssignableTo(q Query, other Type) bool
}

// Cast narrows t to the concrete representation T. A mismatch is reported
// through ok and is never an error.
func Cast[T Type](t Type) (T, bool) {
	v, ok := t.(T)
	return v, ok
}

// Accepts reports whether a value of sub can be used where super is required.
func Accepts(super, sub Type) bool {
	if sub == nil {
		return false
	}

	return sub.IsAssignableTo(super)
}

// Equivalent reports whether a and b are mutually assignable.
func Equivalent(a, b Type) bool {
	return Accepts(a, b) && Accepts(b, a)
}
