package testing

import (
	"fmt"

	"github.com/go-wml/wml/pkg/dom"
)

// Finder locates nodes in a rendered tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root dom.Node) []dom.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []dom.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() dom.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("finder found no nodes: %s", r.finder.Description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() dom.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []dom.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Find evaluates a finder against a tree.
func Find(root dom.Node, f Finder) FinderResult {
	return FinderResult{nodes: f.Evaluate(root), finder: f}
}

func walk(root dom.Node, visit func(dom.Node) bool) {
	if root == nil {
		return
	}
	if !visit(root) {
		return
	}
	switch n := root.(type) {
	case dom.Element:
		for _, child := range n.Children() {
			walk(child, visit)
		}
	case dom.Fragment:
		for _, child := range n.Children() {
			walk(child, visit)
		}
	}
}

type tagFinder struct {
	tag string
}

func (f tagFinder) Evaluate(root dom.Node) []dom.Node {
	var matches []dom.Node
	walk(root, func(n dom.Node) bool {
		if el, ok := n.(dom.Element); ok && el.TagName() == f.tag {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}

func (f tagFinder) Description() string {
	return fmt.Sprintf("elements with tag %q", f.tag)
}

// ByTag matches elements by tag name.
func ByTag(tag string) Finder {
	return tagFinder{tag: tag}
}

type textFinder struct {
	data string
}

func (f textFinder) Evaluate(root dom.Node) []dom.Node {
	var matches []dom.Node
	walk(root, func(n dom.Node) bool {
		if leaf, ok := n.(dom.Text); ok && leaf.Data() == f.data {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}

func (f textFinder) Description() string {
	return fmt.Sprintf("text nodes with data %q", f.data)
}

// ByText matches text leaves by exact character data.
func ByText(data string) Finder {
	return textFinder{data: data}
}

type attrFinder struct {
	name  string
	value string
}

func (f attrFinder) Evaluate(root dom.Node) []dom.Node {
	var matches []dom.Node
	walk(root, func(n dom.Node) bool {
		if el, ok := n.(dom.Element); ok {
			if v, ok := el.Attr(f.name); ok && v == f.value {
				matches = append(matches, n)
			}
		}
		return true
	})
	return matches
}

func (f attrFinder) Description() string {
	return fmt.Sprintf("elements with %s=%q", f.name, f.value)
}

// ByAttr matches elements carrying the given literal attribute value.
func ByAttr(name, value string) Finder {
	return attrFinder{name: name, value: value}
}
