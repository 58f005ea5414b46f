package widgets

import (
	"github.com/go-wml/wml/pkg/core"
	"github.com/go-wml/wml/pkg/dom"
)

// Composite is a widget that owns a child view. Render delegates to the
// child view's render pass, so the composite's subtree carries its own
// identifier and group registries and its own nested widgets.
//
// The child view shares the parent view's host; both trees live in the
// same host structure.
type Composite struct {
	Base
	child *core.View
}

// NewComposite creates a composite over the parent view's host.
func NewComposite(parent *core.View, template core.Template, ctx any) *Composite {
	return &Composite{child: core.New(parent.Host(), template, ctx)}
}

// Render runs the child view's render pass.
func (c *Composite) Render() (dom.Node, error) {
	return c.child.Render()
}

// Removed tears down the child view so widgets nested inside it receive
// their own Removed hooks when the composite is discarded.
func (c *Composite) Removed() {
	c.child.Teardown()
}

// Child returns the owned view, for lookups against the subtree's
// registries and for invalidating the subtree independently.
func (c *Composite) Child() *core.View {
	return c.child
}
