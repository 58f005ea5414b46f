// Package core implements the view/registry engine of the wml runtime.
//
// A compiled template is any function of the form
//
//	func(v *core.View, ctx any) (dom.Node, error)
//
// that calls into the content builders (Text, Box, Domify, NewElement,
// NewWidget), the expression helpers (If, ForEach, ForEachMap, Switch) and
// the view's registration methods. The View owns the rendered tree, the
// identifier and group registries, and the list of widgets live in the
// current render pass; Render evaluates the template against the view's
// context, and Invalidate re-renders in place by swapping the attached root
// inside its host container.
//
// Re-rendering always discards and rebuilds the whole output subtree. There
// is no node-level diffing or reconciliation.
package core
