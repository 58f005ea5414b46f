package core

import (
	"fmt"
	"strconv"

	"github.com/go-wml/wml/pkg/attrs"
	"github.com/go-wml/wml/pkg/dom"
	"github.com/go-wml/wml/pkg/errors"
)

// Text wraps a primitive as a text leaf. A nil value yields an empty text
// leaf; Text never fails.
func Text(v *View, value any) dom.Node {
	return v.host.CreateText(stringify(value))
}

// Empty returns a fresh empty grouping. Every call materializes a new
// fragment, so holders can never corrupt each other through a shared value.
func Empty(v *View) dom.Node {
	return v.host.CreateFragment()
}

// Box normalizes a list of content-or-primitive items into one content
// value. A single item yields that item coerced to a node; multiple items
// yield a fragment holding each coerced item in order.
func Box(v *View, items ...any) (dom.Node, error) {
	const op = "core.Box"
	if len(items) == 1 {
		return coerce(v, items[0], op)
	}
	frag := v.host.CreateFragment()
	for _, item := range items {
		node, err := coerce(v, item, op)
		if err != nil {
			return nil, err
		}
		frag.Append(node)
	}
	return frag, nil
}

// Domify recursively normalizes an arbitrary value into content: nodes pass
// through, slices flatten through the same normalization, primitives become
// text, nil becomes empty content. Anything else fails with a TypeMismatch
// error naming the offending Go type.
func Domify(v *View, value any) (dom.Node, error) {
	const op = "core.Domify"
	switch t := value.(type) {
	case nil:
		return Empty(v), nil
	case dom.Node:
		return t, nil
	case []any:
		nodes := make([]dom.Node, 0, len(t))
		for _, item := range t {
			node, err := Domify(v, item)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		return compose(v, nodes), nil
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return Text(v, t), nil
	default:
		return nil, errors.New(op, errors.KindTypeMismatch, fmt.Sprintf("%T", value))
	}
}

// NewElement creates one named display node, applies the html attribute
// namespace, adopts the children, and registers the node on the view under
// wml:id and wml:group when present.
func NewElement(v *View, tag string, attributes map[string]any, children []any) (dom.Node, error) {
	el := v.host.CreateElement(tag)
	reader := attrs.NewReader(attributes)

	if raw, ok := reader.Get("html"); ok {
		if bag, ok := raw.(map[string]any); ok {
			for name, value := range bag {
				applyAttr(el, name, value)
			}
		}
	}

	if err := adoptAll(v, el, children); err != nil {
		return nil, err
	}

	if id := reader.ReadString("wml:id", ""); id != "" {
		if err := v.Register(id, el); err != nil {
			return nil, err
		}
	}
	if group := reader.ReadString("wml:group", ""); group != "" {
		v.RegisterGroup(group, el)
	}
	return el, nil
}

// NewWidget constructs a widget through factory, registers it under wml:id
// and wml:group, appends it to the view's widget list, and returns its
// rendered content.
//
// The widget's Rendered hook is NOT invoked here: a widget constructed
// mid-pass may be a descendant whose ancestors are still building, so the
// view defers Rendered until the whole tree exists.
func NewWidget(v *View, factory WidgetFactory, attributes map[string]any, children []any) (dom.Node, error) {
	const op = "core.NewWidget"

	// Children flatten one level: a child that is itself a list is splatted
	// into the flat list, everything else is coerced in place.
	flat := make([]dom.Node, 0, len(children))
	for _, child := range children {
		switch t := child.(type) {
		case nil:
		case []any:
			for _, inner := range t {
				node, err := coerce(v, inner, op)
				if err != nil {
					return nil, err
				}
				flat = append(flat, node)
			}
		default:
			node, err := coerce(v, t, op)
			if err != nil {
				return nil, err
			}
			flat = append(flat, node)
		}
	}

	reader := attrs.NewReader(attributes)
	w, err := factory(v, reader, flat)
	if err != nil {
		return nil, err
	}

	if id := reader.ReadString("wml:id", ""); id != "" {
		if err := v.Register(id, w); err != nil {
			return nil, err
		}
	}
	if group := reader.ReadString("wml:group", ""); group != "" {
		v.RegisterGroup(group, w)
	}
	v.widgets = append(v.widgets, w)

	return w.Render()
}

// applyAttr applies one html-namespace attribute value to an element.
// Callables become live behaviors. Empty strings are suppressed entirely:
// an attribute like disabled="" would still read as present to a browser.
// Booleans are set in stringified form.
func applyAttr(el dom.Element, name string, value any) {
	switch t := value.(type) {
	case nil:
	case dom.HandlerFunc:
		el.Bind(name, t)
	case func(dom.Event):
		el.Bind(name, t)
	case string:
		if t != "" {
			el.SetAttr(name, t)
		}
	case bool:
		el.SetAttr(name, strconv.FormatBool(t))
	default:
		el.SetAttr(name, stringify(t))
	}
}

// adoptAll adopts each child value onto el: nested lists flatten
// recursively, primitives become text children, nodes append as-is and nil
// is skipped.
func adoptAll(v *View, el dom.Element, children []any) error {
	const op = "core.NewElement"
	for _, child := range children {
		switch t := child.(type) {
		case nil:
		case []any:
			if err := adoptAll(v, el, t); err != nil {
				return err
			}
		case dom.Node:
			el.Append(t)
		case string, bool, int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64, float32, float64:
			el.Append(Text(v, t))
		default:
			return errors.New(op, errors.KindAdoption, fmt.Sprintf("%T", child))
		}
	}
	return nil
}

// coerce turns a single content-or-primitive item into a node.
func coerce(v *View, item any, op string) (dom.Node, error) {
	switch t := item.(type) {
	case nil:
		return Empty(v), nil
	case dom.Node:
		return t, nil
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return Text(v, t), nil
	default:
		return nil, errors.New(op, errors.KindTypeMismatch, fmt.Sprintf("%T", item))
	}
}

// compose normalizes a node list: none yields empty content, one yields the
// node itself, several yield a fragment preserving order.
func compose(v *View, nodes []dom.Node) dom.Node {
	switch len(nodes) {
	case 0:
		return Empty(v)
	case 1:
		return nodes[0]
	}
	frag := v.host.CreateFragment()
	for _, node := range nodes {
		frag.Append(node)
	}
	return frag
}

func stringify(value any) string {
	switch t := value.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
