// Package testing provides a harness for exercising views without a real
// rendering surface. It drives the same render and invalidate cycle as
// production code but targets the in-memory host and attaches the rendered
// root under a synthetic container so invalidation works out of the box.
package testing

import (
	"testing"

	"github.com/go-wml/wml/pkg/core"
	"github.com/go-wml/wml/pkg/dom"
)

// ViewTester owns a view, its in-memory host, and the container the
// rendered tree is attached under.
type ViewTester struct {
	host      *dom.MemoryHost
	view      *core.View
	container dom.Element
}

// NewViewTester creates a tester for the given template and context.
func NewViewTester(template core.Template, ctx any) *ViewTester {
	host := dom.NewMemoryHost()
	return &ViewTester{
		host:      host,
		view:      core.New(host, template, ctx),
		container: host.CreateElement("host"),
	}
}

// View returns the view under test.
func (vt *ViewTester) View() *core.View {
	return vt.view
}

// Host returns the in-memory host backing the view.
func (vt *ViewTester) Host() *dom.MemoryHost {
	return vt.host
}

// Render runs a render pass and keeps the tree attached under the
// container: the first pass appends it, later passes swap it in place.
func (vt *ViewTester) Render() (dom.Node, error) {
	old := vt.view.Tree()
	tree, err := vt.view.Render()
	if err != nil {
		return nil, err
	}
	if old == nil {
		vt.container.Append(tree)
	} else if err := vt.host.ReplaceChild(vt.container, tree, old); err != nil {
		return nil, err
	}
	return tree, nil
}

// MustRender is Render that fails the test on error.
func (vt *ViewTester) MustRender(t *testing.T) dom.Node {
	t.Helper()
	tree, err := vt.Render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return tree
}

// Invalidate re-renders the attached tree in place.
func (vt *ViewTester) Invalidate() error {
	return vt.view.Invalidate()
}

// MustInvalidate is Invalidate that fails the test on error.
func (vt *ViewTester) MustInvalidate(t *testing.T) {
	t.Helper()
	if err := vt.view.Invalidate(); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}
}

// HTML serializes the currently attached tree.
func (vt *ViewTester) HTML() string {
	tree := vt.view.Tree()
	if tree == nil {
		return ""
	}
	return dom.MarshalHTML(tree)
}

// Fire delivers an event to the element registered under the given wml id.
// Returns false when the id is unknown, is not an element, or has no
// handler bound for the event type.
func (vt *ViewTester) Fire(id string, ev dom.Event) bool {
	entry, ok := vt.view.FindByID(id)
	if !ok {
		return false
	}
	node, ok := entry.(dom.Node)
	if !ok {
		return false
	}
	return vt.host.Fire(node.NodeID(), ev)
}

// Click fires a click event at the element registered under id.
func (vt *ViewTester) Click(id string) bool {
	return vt.Fire(id, dom.Event{Type: "click"})
}
