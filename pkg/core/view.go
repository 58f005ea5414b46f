package core

import (
	"github.com/go-wml/wml/pkg/dom"
	"github.com/go-wml/wml/pkg/errors"
)

// RootID is the identifier the top-level content is registered under after
// every successful render, whether or not the template assigned it.
const RootID = "root"

// View is the stateful root of a rendered template. It owns the identifier
// and group registries, the list of widgets live in the current render
// pass, and the currently rendered tree.
//
// A View is single-threaded by construction: callers that invalidate from
// multiple goroutines must serialize those calls themselves.
type View struct {
	context  any
	host     dom.Host
	template Template
	ids      map[string]any
	groups   map[string][]any
	widgets  []Widget
	tree     dom.Node
}

// New creates a view over the given host. The template is evaluated with
// the view and ctx on every render pass; ctx is owned by the caller and
// never mutated by the view.
func New(host dom.Host, template Template, ctx any) *View {
	return &View{
		context:  ctx,
		host:     host,
		template: template,
		ids:      make(map[string]any),
		groups:   make(map[string][]any),
	}
}

// Host returns the host environment the view renders against.
func (v *View) Host() dom.Host {
	return v.host
}

// Context returns the opaque data the template closes over.
func (v *View) Context() any {
	return v.context
}

// Tree returns the currently rendered content, or nil before the first
// render.
func (v *View) Tree() dom.Node {
	return v.tree
}

// Register records entry under id for the current render pass. Identifiers
// are unique within one pass; a collision is a programmer error in the
// template and fails immediately.
func (v *View) Register(id string, entry any) error {
	if _, exists := v.ids[id]; exists {
		return errors.New("core.View.Register", errors.KindDuplicateID, id)
	}
	v.ids[id] = entry
	return nil
}

// RegisterGroup appends entry to the named group, creating the group on
// first use. Groups are intentionally multi-valued; order is template
// evaluation order.
func (v *View) RegisterGroup(name string, entry any) {
	v.groups[name] = append(v.groups[name], entry)
}

// FindByID looks up an identifier registered during the current pass.
// Entries are display nodes or widgets, depending on what registered.
func (v *View) FindByID(id string) (any, bool) {
	entry, ok := v.ids[id]
	return entry, ok
}

// FindGroup returns the entries registered under the named group in
// registration order. An unregistered name yields an empty slice.
func (v *View) FindGroup(name string) []any {
	entries := v.groups[name]
	if entries == nil {
		return []any{}
	}
	return entries
}

// Render runs one complete render pass and returns the new tree.
//
// Registries and the widget list are superseded wholesale: every widget of
// the outgoing pass has Removed invoked before the template runs, and every
// widget constructed during evaluation has Rendered invoked only after the
// entire new tree exists. On failure the pass is abandoned; the previous
// tree remains current and no partial tree is exposed.
func (v *View) Render() (dom.Node, error) {
	v.ids = make(map[string]any)
	v.groups = make(map[string][]any)
	v.Teardown()

	tree, err := v.template(v, v.context)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		tree = Empty(v)
	}
	v.tree = tree

	if _, ok := v.ids[RootID]; !ok {
		v.ids[RootID] = tree
	}

	for _, w := range v.widgets {
		w.Rendered()
	}
	return tree, nil
}

// Teardown invokes Removed on every widget of the current pass and forgets
// them. Render calls it before re-evaluating the template; a widget that
// owns a nested view calls it from its own Removed hook so the subtree's
// widgets are not discarded silently.
func (v *View) Teardown() {
	for _, w := range v.widgets {
		w.Removed()
	}
	v.widgets = nil
}

// Invalidate re-renders the view in place, replacing the attached root
// inside its host container at its current position.
//
// The root's position is re-resolved at call time rather than cached,
// since external code may have rearranged the container since the last
// render. Fails with a NotRendered error before the first render and with
// a NotAttached error when the current root has no host parent.
func (v *View) Invalidate() error {
	const op = "core.View.Invalidate"
	if v.tree == nil {
		return errors.New(op, errors.KindNotRendered, "")
	}
	parent, ok := v.host.ParentOf(v.tree)
	if !ok {
		return errors.New(op, errors.KindNotAttached, "")
	}

	old := v.tree
	next, err := v.Render()
	if err != nil {
		return err
	}
	if err := v.host.ReplaceChild(parent, next, old); err != nil {
		return errors.Wrap(op, errors.KindNotAttached, err)
	}
	return nil
}
