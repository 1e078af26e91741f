package types

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/m93a/mag-tc/pkg/topological"
	"github.com/m93a/mag-tc/pkg/types/kinds"
)

type TraitID int

type traitNode struct {
	name   string
	supers []TraitID
}

// Lattice owns a set of traits and the supertrait edges between them. The
// edges always form a DAG: NewTrait can only reference traits that already
// exist and Extend refuses edges that would close a cycle.
type Lattice struct {
	mu    sync.RWMutex
	nodes []traitNode
}

func NewLattice() *Lattice {
	return &Lattice{}
}

func (l *Lattice) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.nodes)
}

// Trait returns the handle for id.
func (l *Lattice) Trait(id TraitID) (*Trait, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if id < 0 || int(id) >= len(l.nodes) {
		return nil, false
	}

	return &Trait{lattice: l, id: id}, true
}

func (l *Lattice) NewTrait(name string, supers ...*Trait) (*Trait, error) {
	ids, err := l.ownIDs(supers)
	if err != nil {
		return nil, fmt.Errorf("failed to declare trait %q: %w", name, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id := TraitID(len(l.nodes))
	l.nodes = append(l.nodes, traitNode{
		name:   name,
		supers: ids,
	})

	return &Trait{lattice: l, id: id}, nil
}

// Extend adds supertraits to an existing trait. Edges already present are
// ignored. If any edge would make t its own ancestor, no edge is added.
func (l *Lattice) Extend(t *Trait, supers ...*Trait) error {
	if t == nil || t.lattice != l {
		return fmt.Errorf("failed to extend trait: %w", ErrForeignTrait)
	}

	ids, err := l.ownIDs(supers)
	if err != nil {
		return fmt.Errorf("failed to extend trait %q: %w", t.Name(), err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	node := &l.nodes[t.id]
	added := slices.Clone(node.supers)

	for _, id := range ids {
		if slices.Contains(added, id) {
			continue
		}

		if id == t.id || l.reachableLocked(id, t.id) {
			return fmt.Errorf("%w: %q cannot extend %q", ErrCycle, node.name, l.nodes[id].name)
		}

		added = append(added, id)
	}

	node.supers = added

	return nil
}

// Validate checks that the supertrait graph is acyclic.
func (l *Lattice) Validate() error {
	_, err := l.order()
	return err
}

// Order returns every trait in the lattice, each one after all of its
// supertraits.
func (l *Lattice) Order() ([]*Trait, error) {
	ids, err := l.order()
	if err != nil {
		return nil, err
	}

	traits := make([]*Trait, 0, len(ids))
	for _, id := range ids {
		traits = append(traits, &Trait{lattice: l, id: id})
	}

	return traits, nil
}

func (l *Lattice) order() ([]TraitID, error) {
	l.mu.RLock()
	nodes := slices.Clone(l.nodes)
	l.mu.RUnlock()

	ids := make([]TraitID, len(nodes))
	for i := range nodes {
		ids[i] = TraitID(i)
	}

	ordered, err := topological.Sort(ids, func(id TraitID) []TraitID {
		return nodes[id].supers
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCycle, err)
	}

	return ordered, nil
}

func (l *Lattice) ownIDs(traits []*Trait) ([]TraitID, error) {
	ids := make([]TraitID, 0, len(traits))
	for i, t := range traits {
		if t == nil {
			return nil, fmt.Errorf("supertrait %d is nil", i)
		}

		if t.lattice != l {
			return nil, fmt.Errorf("supertrait %d: %w", i, ErrForeignTrait)
		}

		if !slices.Contains(ids, t.id) {
			ids = append(ids, t.id)
		}
	}

	return ids, nil
}

func (l *Lattice) reachable(from, to TraitID) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.reachableLocked(from, to)
}

func (l *Lattice) reachableLocked(from, to TraitID) bool {
	seen := make(map[TraitID]struct{})
	stack := []TraitID{from}

	for len(stack) > 0 {
		var id TraitID
		id, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if id == to {
			return true
		}

		if has(seen, id) {
			continue
		}
		seen[id] = struct{}{}

		stack = append(stack, l.nodes[id].supers...)
	}

	return false
}

func (l *Lattice) node(id TraitID) traitNode {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := l.nodes[id]
	n.supers = slices.Clone(n.supers)

	return n
}

func has[M ~map[K]V, K comparable, V any](m M, key K) bool {
	_, ok := m[key]
	return ok
}

// Trait is a handle to a node in a Lattice. Traits are nominal: two handles
// denote the same trait only if they share a lattice and an id.
type Trait struct {
	lattice *Lattice
	id      TraitID
}

func (t *Trait) ID() TraitID { return t.id }

func (t *Trait) Lattice() *Lattice { return t.lattice }

func (t *Trait) Name() string {
	return t.lattice.node(t.id).name
}

func (*Trait) Kind() kinds.Kind { return kinds.Trait }

func (t *Trait) String() string {
	if t == nil {
		return "<nil>"
	}

	n := t.lattice.node(t.id)
	if n.name == "" {
		return fmt.Sprintf("trait#%d", t.id)
	}

	return n.name
}

// Describe renders the trait with its direct supertraits, e.g.
// "cat: animal + meower".
func (t *Trait) Describe() string {
	supers := t.Supertraits()
	if len(supers) == 0 {
		return t.String()
	}

	names := make([]string, 0, len(supers))
	for _, s := range supers {
		names = append(names, s.String())
	}

	return fmt.Sprintf("%s: %s", t, strings.Join(names, " + "))
}

func (t *Trait) Supertraits() []*Trait {
	n := t.lattice.node(t.id)

	supers := make([]*Trait, 0, len(n.supers))
	for _, id := range n.supers {
		supers = append(supers, &Trait{lattice: t.lattice, id: id})
	}

	return supers
}

// Ancestors returns t and every trait reachable through its supertraits,
// ordered by id.
func (t *Trait) Ancestors() []*Trait {
	seen := map[TraitID]struct{}{t.id: {}}
	queue := []TraitID{t.id}

	for len(queue) > 0 {
		var id TraitID
		id, queue = queue[0], queue[1:]

		for _, super := range t.lattice.node(id).supers {
			if has(seen, super) {
				continue
			}
			seen[super] = struct{}{}
			queue = append(queue, super)
		}
	}

	ids := make([]TraitID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	ancestors := make([]*Trait, 0, len(ids))
	for _, id := range ids {
		ancestors = append(ancestors, &Trait{lattice: t.lattice, id: id})
	}

	return ancestors
}

func (t *Trait) same(o *Trait) bool {
	return t.lattice == o.lattice && t.id == o.id
}

func (t *Trait) IsAssignableTo(other Type) bool {
	return defaultChecker.IsAssignableTo(t, other)
}

func (*Trait) IsSupertypeOf(Type) (bool, bool) { return false, false }

// AssignableTo holds when other is t or one of its ancestors. Supertraits are
// traits, whose hook never decides, so the walk stays inside the lattice and
// visits each trait at most once.
func (t *Trait) AssignableTo(q Query, other Type) bool {
	o, ok := Cast[*Trait](other)
	if !ok {
		return q.mismatch(t, other)
	}

	if o == nil {
		return false
	}

	if t.same(o) {
		return true
	}

	if t.lattice != o.lattice {
		return false
	}

	return t.lattice.reachable(t.id, o.id)
}
