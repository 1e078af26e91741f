package main

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/m93a/mag-tc/pkg/types"
)

type fixture struct {
	name string
	typ  types.Type
}

type fixtures []fixture

func (f fixtures) lookup(name string) (types.Type, bool) {
	i := slices.IndexFunc(f, func(fx fixture) bool { return fx.name == name })
	if i == -1 {
		return nil, false
	}

	return f[i].typ, true
}

func (f fixtures) names() []string {
	names := make([]string, 0, len(f))
	for _, fx := range f {
		names = append(names, fx.name)
	}

	return names
}

func newFixtures() (fixtures, error) {
	lattice := types.NewLattice()

	declare := func(name string, supers ...*types.Trait) *types.Trait {
		t, err := lattice.NewTrait(name, supers...)
		if err != nil {
			panic(fmt.Sprintf("bug: %v", err))
		}
		return t
	}

	life := declare("life")
	plant := declare("plant", life)
	animal := declare("animal", life)
	dog := declare("dog", animal)
	meower := declare("meower")
	cat := declare("cat", animal, meower)

	err := lattice.Validate()
	if err != nil {
		return nil, err
	}

	return fixtures{
		{"void", types.Void},
		{"bool", types.Bool},
		{"i32", types.Int(32)},
		{"i64", types.Int(64)},
		{"u32", types.UInt(32)},
		{"life", life},
		{"plant", plant},
		{"animal", animal},
		{"dog", dog},
		{"meower", meower},
		{"cat", cat},
		{"getAnimal", types.NewFunction(nil, animal)},
		{"getCat", types.NewFunction(nil, cat)},
		{"greetAnimal", types.NewFunction([]types.Argument{types.Arg("a", animal)}, types.Void)},
		{"greetCat", types.NewFunction([]types.Argument{types.Arg("c", cat)}, types.Void)},
		{"tradeAnimal", types.NewFunction([]types.Argument{types.Arg("a", animal)}, animal)},
		{"tradeCat", types.NewFunction([]types.Argument{types.Arg("c", cat)}, cat)},
	}, nil
}

// printRelations writes every pair of distinct fixtures that are related.
func printRelations(w io.Writer, c *types.Checker, f fixtures) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, from := range f {
		for _, to := range f {
			if from.name == to.name || !c.IsAssignableTo(from.typ, to.typ) {
				continue
			}

			_, err := fmt.Fprintf(tw, "%s\t<:\t%s\t%s\n", from.name, to.name, from.typ)
			if err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}
