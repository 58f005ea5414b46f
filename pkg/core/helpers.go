package core

import (
	"cmp"
	"slices"

	"github.com/go-wml/wml/pkg/dom"
)

// DefaultCase is the Switch case key consulted when no case matches.
const DefaultCase = "default"

// If evaluates exactly one branch based on cond. The untaken thunk is never
// invoked, so only the taken branch's registration side effects occur. A
// nil thunk yields empty content.
func If(v *View, cond bool, pos, neg Thunk) (dom.Node, error) {
	if cond {
		return runThunk(v, pos)
	}
	return runThunk(v, neg)
}

// ForEach invokes fn for every item in source order and composes the
// results into one content value, preserving iteration order. An empty
// slice yields the result of invoking empty instead; fn is never called.
func ForEach[T any](v *View, items []T, fn func(item T, index int) (dom.Node, error), empty Thunk) (dom.Node, error) {
	if len(items) == 0 {
		return runThunk(v, empty)
	}
	nodes := make([]dom.Node, 0, len(items))
	for i, item := range items {
		node, err := fn(item, i)
		if err != nil {
			return nil, err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
	return compose(v, nodes), nil
}

// ForEachMap iterates a keyed mapping, calling fn per entry with the same
// empty-case fallback as ForEach. Go maps have no enumeration order, so
// entries are visited in sorted key order to keep output deterministic.
func ForEachMap[K cmp.Ordered, V any](v *View, items map[K]V, fn func(value V, key K) (dom.Node, error), empty Thunk) (dom.Node, error) {
	if len(items) == 0 {
		return runThunk(v, empty)
	}
	keys := make([]K, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	nodes := make([]dom.Node, 0, len(keys))
	for _, k := range keys {
		node, err := fn(items[k], k)
		if err != nil {
			return nil, err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
	return compose(v, nodes), nil
}

// Switch invokes the case thunk keyed by value, falling back to the
// DefaultCase entry. A fully unmatched switch with no default is a valid,
// empty outcome, not an error.
func Switch(v *View, value string, cases map[string]Thunk) (dom.Node, error) {
	if t, ok := cases[value]; ok && t != nil {
		return runThunk(v, t)
	}
	if t, ok := cases[DefaultCase]; ok && t != nil {
		return runThunk(v, t)
	}
	return Empty(v), nil
}

// runThunk invokes t, mapping nil thunks and nil results to empty content.
func runThunk(v *View, t Thunk) (dom.Node, error) {
	if t == nil {
		return Empty(v), nil
	}
	node, err := t()
	if err != nil {
		return nil, err
	}
	if node == nil {
		return Empty(v), nil
	}
	return node, nil
}
