package core

import (
	"github.com/go-wml/wml/pkg/attrs"
	"github.com/go-wml/wml/pkg/dom"
)

// Template produces a content tree from a view and its context. Compiled
// templates satisfy this type; so do hand-written ones.
type Template func(v *View, ctx any) (dom.Node, error)

// Thunk lazily produces content. The expression helpers take thunks so the
// untaken branch of a conditional is never evaluated and its registration
// side effects never occur.
type Thunk func() (dom.Node, error)

// Widget is a user-defined stateful renderable unit.
//
// A widget is constructed during template evaluation, asked to Render
// immediately, and notified of the pass boundaries: Rendered runs once the
// entire new tree has been built, Removed runs before any widget of the
// next pass is constructed.
type Widget interface {
	// Render produces the widget's content.
	Render() (dom.Node, error)
	// Rendered is called after the render pass that constructed the widget
	// has produced its complete tree.
	Rendered()
	// Removed is called when a new render pass supersedes the widget.
	Removed()
}

// WidgetFactory constructs a widget from the attribute bag and the child
// content supplied at the call site. The registry engine stays agnostic of
// concrete widget types; templates hand NewWidget a factory.
//
// The view reference is a back-reference only: a widget may call back into
// the view while it is rendered, but must not outlive it.
type WidgetFactory func(v *View, r *attrs.Reader, children []dom.Node) (Widget, error)
