package types_test

import (
	"testing"

	"github.com/m93a/mag-tc/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestCast(t *testing.T) {
	r := require.New(t)
	z := newZoo(t)

	var typ types.Type = z.cat

	trait, ok := types.Cast[*types.Trait](typ)
	r.True(ok)
	r.Equal(z.cat.ID(), trait.ID())

	_, ok = types.Cast[types.Primitive](typ)
	r.False(ok)

	_, ok = types.Cast[*types.Function](nil)
	r.False(ok)
}

func TestAccepts(t *testing.T) {
	r := require.New(t)
	z := newZoo(t)

	r.True(types.Accepts(z.animal, z.cat))
	r.False(types.Accepts(z.cat, z.animal))
	r.True(types.Equivalent(types.Int(16), types.Int(16)))
	r.False(types.Equivalent(z.cat, z.animal))
}

func TestReflexive(t *testing.T) {
	z := newZoo(t)

	all := []types.Type{
		types.Void,
		types.Bool,
		types.Int(32),
		types.UInt(64),
		types.NewFunction(nil, types.Void),
		types.NewFunction([]types.Argument{types.Arg("a", z.animal)}, z.cat),
		types.NewFunction([]types.Argument{
			types.Arg("f", types.NewFunction([]types.Argument{types.Arg("c", z.cat)}, types.Bool)),
		}, types.Int(8)),
	}
	for _, trait := range z.all() {
		all = append(all, trait)
	}

	for _, typ := range all {
		t.Run(typ.String(), func(t *testing.T) {
			require.True(t, typ.IsAssignableTo(typ))
		})
	}
}

func TestRepresentationsDisjoint(t *testing.T) {
	z := newZoo(t)

	reps := []types.Type{
		types.Void,
		z.life,
		types.NewFunction(nil, types.Void),
	}

	for i, a := range reps {
		for j, b := range reps {
			if i == j {
				continue
			}

			require.False(t, a.IsAssignableTo(b), "%s to %s", a, b)
		}
	}
}
