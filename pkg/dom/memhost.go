package dom

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/go-wml/wml/pkg/errors"
)

// MemoryHost is an in-memory Host. Every node it creates gets a unique id
// and is indexed for lookup, which event dispatch and the dev server use to
// address nodes from outside the tree.
type MemoryHost struct {
	nodes map[string]Node
}

// NewMemoryHost creates an empty MemoryHost.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{nodes: make(map[string]Node)}
}

type memBase struct {
	id     string
	parent Node
}

func (b *memBase) NodeID() string   { return b.id }
func (b *memBase) setParent(p Node) { b.parent = p }
func (b *memBase) parentNode() Node { return b.parent }

type parentSetter interface {
	setParent(p Node)
}

type memText struct {
	memBase
	data string
}

func (t *memText) Kind() Kind   { return KindText }
func (t *memText) Data() string { return t.data }

type memElement struct {
	memBase
	tag      string
	attrs    map[string]string
	handlers map[string]HandlerFunc
	children []Node
}

func (e *memElement) Kind() Kind      { return KindElement }
func (e *memElement) TagName() string { return e.tag }

func (e *memElement) SetAttr(name, value string) {
	e.attrs[name] = value
}

func (e *memElement) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *memElement) AttrNames() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *memElement) Bind(event string, fn HandlerFunc) {
	e.handlers[event] = fn
}

func (e *memElement) Append(child Node) {
	if setter, ok := child.(parentSetter); ok {
		setter.setParent(e)
	}
	e.children = append(e.children, child)
}

func (e *memElement) Children() []Node { return e.children }

type memFragment struct {
	memBase
	children []Node
}

func (f *memFragment) Kind() Kind { return KindFragment }

func (f *memFragment) Append(child Node) {
	if setter, ok := child.(parentSetter); ok {
		setter.setParent(f)
	}
	f.children = append(f.children, child)
}

func (f *memFragment) Children() []Node { return f.children }

// CreateElement creates a named element node.
func (h *MemoryHost) CreateElement(tag string) Element {
	e := &memElement{
		memBase:  memBase{id: uuid.NewString()},
		tag:      tag,
		attrs:    make(map[string]string),
		handlers: make(map[string]HandlerFunc),
	}
	h.nodes[e.id] = e
	return e
}

// CreateText creates a text leaf.
func (h *MemoryHost) CreateText(data string) Text {
	t := &memText{memBase: memBase{id: uuid.NewString()}, data: data}
	h.nodes[t.id] = t
	return t
}

// CreateFragment creates an empty grouping node.
func (h *MemoryHost) CreateFragment() Fragment {
	f := &memFragment{memBase: memBase{id: uuid.NewString()}}
	h.nodes[f.id] = f
	return f
}

// NodeByID returns the node created under the given host id.
func (h *MemoryHost) NodeByID(id string) (Node, bool) {
	n, ok := h.nodes[id]
	return n, ok
}

// ParentOf returns the node currently holding n.
func (h *MemoryHost) ParentOf(n Node) (Node, bool) {
	holder, ok := n.(interface{ parentNode() Node })
	if !ok {
		return nil, false
	}
	p := holder.parentNode()
	if p == nil {
		return nil, false
	}
	return p, true
}

// ReplaceChild swaps old for next among parent's children at old's position.
func (h *MemoryHost) ReplaceChild(parent, next, old Node) error {
	var children []Node
	switch p := parent.(type) {
	case *memElement:
		children = p.children
	case *memFragment:
		children = p.children
	default:
		return fmt.Errorf("dom: replace in foreign parent %T", parent)
	}

	for i, child := range children {
		if child != old {
			continue
		}
		children[i] = next
		if setter, ok := next.(parentSetter); ok {
			setter.setParent(parent)
		}
		if setter, ok := old.(parentSetter); ok {
			setter.setParent(nil)
		}
		return nil
	}
	return fmt.Errorf("dom: node %s is not a child of %s", old.NodeID(), parent.NodeID())
}

// Fire delivers an event to the handler bound on the addressed element.
// It returns true when a handler ran. Handler panics are recovered and
// reported through the global error handler; a misbehaving handler must
// not take down the host.
func (h *MemoryHost) Fire(nodeID string, ev Event) bool {
	n, ok := h.nodes[nodeID]
	if !ok {
		return false
	}
	el, ok := n.(*memElement)
	if !ok {
		return false
	}
	fn, ok := el.handlers[ev.Type]
	if !ok {
		return false
	}
	ev.Target = el
	func() {
		defer errors.Recover("dom.MemoryHost.Fire")
		fn(ev)
	}()
	return true
}
