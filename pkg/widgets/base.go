// Package widgets provides support types for implementing wml widgets.
package widgets

// Base provides no-op lifecycle hooks. Embed it in a widget struct to
// satisfy the lifecycle half of core.Widget and implement only Render:
//
//	type Clock struct {
//	    widgets.Base
//	    view *core.View
//	}
//
//	func (c *Clock) Render() (dom.Node, error) { ... }
type Base struct{}

// Rendered does nothing.
func (Base) Rendered() {}

// Removed does nothing.
func (Base) Removed() {}
