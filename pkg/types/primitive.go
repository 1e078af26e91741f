package types

import (
	"fmt"

	"github.com/m93a/mag-tc/pkg/types/kinds"
)

// Primitive is a scalar leaf type. Two primitives are assignable only when
// they are equal; there is no widening between integer widths.
type Primitive struct {
	kind  kinds.Kind
	width int
}

var Void = Primitive{kind: kinds.Void}

var Bool = Primitive{kind: kinds.Bool}

func NewPrimitive(kind kinds.Kind, width int) (Primitive, error) {
	if !kind.IsPrimitive() {
		return Primitive{}, fmt.Errorf("%w: %s", ErrNotPrimitive, kind)
	}

	if !kind.IsInteger() {
		return Primitive{kind: kind}, nil
	}

	if width <= 0 {
		return Primitive{}, fmt.Errorf("%w: %s width %d", ErrInvalidWidth, kind, width)
	}

	return Primitive{kind: kind, width: width}, nil
}

func Int(width int) Primitive {
	return mustPrimitive(kinds.Int, width)
}

func UInt(width int) Primitive {
	return mustPrimitive(kinds.UInt, width)
}

func mustPrimitive(kind kinds.Kind, width int) Primitive {
	p, err := NewPrimitive(kind, width)
	if err != nil {
		panic(fmt.Sprintf("bug: %v", err))
	}

	return p
}

func (t Primitive) Kind() kinds.Kind { return t.kind }

// Width is the bit width of an integer primitive and zero otherwise.
func (t Primitive) Width() int { return t.width }

func (t Primitive) String() string {
	switch t.kind {
	case kinds.Int:
		return fmt.Sprintf("i%d", t.width)
	case kinds.UInt:
		return fmt.Sprintf("u%d", t.width)
	default:
		return t.kind.String()
	}
}

func (t Primitive) IsAssignableTo(other Type) bool {
	return defaultChecker.IsAssignableTo(t, other)
}

func (Primitive) IsSupertypeOf(Type) (bool, bool) { return false, false }

func (t Primitive) AssignableTo(q Query, other Type) bool {
	o, ok := Cast[Primitive](other)
	if !ok {
		return q.mismatch(t, other)
	}

	return t == o
}
