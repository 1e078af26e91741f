package types

import (
	"fmt"
	"strings"

	"github.com/m93a/mag-tc/pkg/types/kinds"
)

type Argument struct {
	Name string
	Type Type
}

func Arg(name string, typ Type) Argument {
	return Argument{Name: name, Type: typ}
}

func (a Argument) String() string {
	if a.Name == "" {
		return fmt.Sprint(a.Type)
	}

	return fmt.Sprintf("%s: %s", a.Name, a.Type)
}

// Function is a structural signature. Argument names are carried for display
// only and never affect assignability.
type Function struct {
	args []Argument
	ret  Type
}

func NewFunction(args []Argument, ret Type) *Function {
	if ret == nil {
		ret = Void
	}

	return &Function{
		args: append([]Argument(nil), args...),
		ret:  ret,
	}
}

func (t *Function) Arguments() []Argument {
	return append([]Argument(nil), t.args...)
}

func (t *Function) Arity() int { return len(t.args) }

func (t *Function) Return() Type { return t.ret }

func (*Function) Kind() kinds.Kind { return kinds.Function }

func (t *Function) String() string {
	if t == nil {
		return "<nil>"
	}

	args := make([]string, 0, len(t.args))
	for _, arg := range t.args {
		args = append(args, arg.String())
	}

	return fmt.Sprintf("fn(%s) -> %s", strings.Join(args, ", "), t.ret)
}

func (t *Function) IsAssignableTo(other Type) bool {
	return defaultChecker.IsAssignableTo(t, other)
}

func (*Function) IsSupertypeOf(Type) (bool, bool) { return false, false }

// AssignableTo is covariant in the return type and contravariant in the
// argument types.
func (t *Function) AssignableTo(q Query, other Type) bool {
	o, ok := Cast[*Function](other)
	if !ok {
		return q.mismatch(t, other)
	}

	if o == nil {
		return false
	}

	if len(t.args) != len(o.args) {
		return false
	}

	if !q.IsAssignableTo(t.ret, o.ret) {
		return false
	}

	for i := range t.args {
		// args are contravariant
		if !q.IsAssignableTo(o.args[i].Type, t.args[i].Type) {
			return false
		}
	}

	return true
}
