package topological_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/m93a/mag-tc/pkg/topological"
	"github.com/stretchr/testify/require"
)

type Graph struct {
	nodes map[int]struct{}
	edges map[int]map[int]struct{}
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int]struct{}),
		edges: make(map[int]map[int]struct{}),
	}
}

func (g *Graph) Nodes() []int {
	nodes := slices.Collect(maps.Keys(g.nodes))
	slices.Sort(nodes)
	return nodes
}

func (g *Graph) NodeEdges(a int) []int {
	edges := slices.Collect(maps.Keys(g.edges[a]))
	slices.Sort(edges)
	return edges
}

func (g *Graph) Add(a, b int) {
	g.nodes[a] = struct{}{}
	g.nodes[b] = struct{}{}
	if _, ok := g.edges[a]; !ok {
		g.edges[a] = make(map[int]struct{})
	}
	g.edges[a][b] = struct{}{}
}

func TestTopologicalSort_Empty(t *testing.T) {
	g := NewGraph()

	r := require.New(t)

	l, err := topological.Sort(g.Nodes(), g.NodeEdges)
	r.NoError(err)
	r.Equal(0, len(l))
}

func TestTopologicalSort_Basic(t *testing.T) {
	g := NewGraph()
	g.Add(1, 2)
	g.Add(2, 3)

	r := require.New(t)

	l, err := topological.Sort(g.Nodes(), g.NodeEdges)
	r.NoError(err)
	r.Equal(3, len(l))
	r.Equal([]int{3, 2, 1}, l)
}

func TestTopologicalSort_Complex(t *testing.T) {
	g := NewGraph()
	g.Add(1, 2)
	g.Add(2, 3)
	g.Add(2, 4)
	g.Add(2, 5)

	g.Add(3, 6)
	g.Add(4, 6)
	g.Add(5, 6)

	r := require.New(t)

	l, err := topological.Sort(g.Nodes(), g.NodeEdges)
	r.NoError(err)
	r.Equal(6, len(l))
	r.Equal([]int{6, 3, 4, 5, 2, 1}, l)
}

func TestTopologicalSort_Diamond(t *testing.T) {
	g := NewGraph()
	g.Add(4, 2)
	g.Add(4, 3)
	g.Add(2, 1)
	g.Add(3, 1)

	r := require.New(t)

	l, err := topological.Sort(g.Nodes(), g.NodeEdges)
	r.NoError(err)
	r.Equal([]int{1, 2, 3, 4}, l)
}

func TestTopologicalSort_UnknownDependency(t *testing.T) {
	g := NewGraph()
	g.Add(1, 2)

	r := require.New(t)

	l, err := topological.Sort([]int{1}, g.NodeEdges)
	r.NoError(err)
	r.Equal([]int{1}, l)
}

func TestTopologicalSortFunc_Keys(t *testing.T) {
	type node struct {
		name string
		deps []string
	}

	nodes := map[string]node{
		"dog":    {name: "dog", deps: []string{"animal"}},
		"animal": {name: "animal", deps: []string{"life"}},
		"life":   {name: "life"},
	}

	depFunc := func(n node) []node {
		var deps []node
		for _, dep := range n.deps {
			deps = append(deps, nodes[dep])
		}
		return deps
	}

	r := require.New(t)

	l, err := topological.SortFunc(
		[]node{nodes["dog"], nodes["life"], nodes["animal"]},
		func(n node) string { return n.name },
		depFunc,
	)
	r.NoError(err)
	r.Len(l, 3)
	r.Equal("life", l[0].name)
	r.Equal("animal", l[1].name)
	r.Equal("dog", l[2].name)
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := NewGraph()
	g.Add(1, 1)

	r := require.New(t)

	_, err := topological.Sort(g.Nodes(), g.NodeEdges)
	r.ErrorIs(err, topological.ErrCycleDetected)
}

func TestTopologicalSort_ComplexCycle(t *testing.T) {
	g := NewGraph()
	g.Add(1, 2)
	g.Add(2, 3)
	g.Add(2, 4)
	g.Add(2, 5)

	g.Add(3, 6)
	g.Add(4, 6)
	g.Add(5, 6)
	g.Add(6, 1)

	r := require.New(t)

	_, err := topological.Sort(g.Nodes(), g.NodeEdges)
	r.ErrorIs(err, topological.ErrCycleDetected)
}
