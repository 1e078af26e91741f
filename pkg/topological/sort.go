package topological

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

var ErrCycleDetected = fmt.Errorf("cycle detected")

func has[M ~map[K]V, K comparable, V any](m M, key K) bool {
	_, ok := m[key]
	return ok
}

func sortSlice[T constraints.Ordered](s []T) []T {
	slices.Sort(s)
	return s
}

// Sort orders values so that every value comes after all of its
// dependencies. Ties are broken by value.
func Sort[T constraints.Ordered](values []T, depFunc func(T) []T) ([]T, error) {
	return SortFunc(values, func(val T) T { return val }, depFunc)
}

// SortFunc is Sort for values identified by keyFunc. Dependencies that are not
// themselves in values are ignored.
func SortFunc[T any, K constraints.Ordered](values []T, keyFunc func(T) K, depFunc func(T) []T) ([]T, error) {
	valuesByKey := make(map[K]T, len(values))
	for _, val := range values {
		valuesByKey[keyFunc(val)] = val
	}

	pending := make(map[K]int, len(valuesByKey))
	dependents := make(map[K][]K)

	for key, val := range valuesByKey {
		deps := make(map[K]struct{})
		for _, dep := range depFunc(val) {
			depKey := keyFunc(dep)
			if has(valuesByKey, depKey) {
				deps[depKey] = struct{}{}
			}
		}

		pending[key] = len(deps)
		for dep := range deps {
			dependents[dep] = append(dependents[dep], key)
		}
	}

	var ready []K
	for key, n := range pending {
		if n == 0 {
			ready = append(ready, key)
		}
	}
	sortSlice(ready)

	list := make([]T, 0, len(valuesByKey))

	for len(ready) > 0 {
		var key K
		key, ready = ready[0], ready[1:]
		list = append(list, valuesByKey[key])

		for _, dep := range sortSlice(dependents[key]) {
			pending[dep]--
			if pending[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}

	if len(list) != len(valuesByKey) {
		return nil, ErrCycleDetected
	}

	return list, nil
}
