// Package dom defines the display node model produced by the wml runtime
// and the host environment capability that creates and rearranges nodes.
//
// Views never touch a concrete document directly; they are handed a Host at
// construction, so independent views can target independent host structures
// and tests run against the in-memory host with no real rendering surface.
package dom

// Kind identifies the shape of a node.
type Kind int

const (
	// KindElement is a named display node with attributes and children.
	KindElement Kind = iota
	// KindText is a leaf holding character data.
	KindText
	// KindFragment is an unnamed grouping of nodes.
	KindFragment
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindFragment:
		return "fragment"
	}
	return "unknown"
}

// Event is delivered to handlers bound on an element.
type Event struct {
	// Type is the event name the handler was bound under (e.g., "click").
	Type string
	// Target is the element the event was fired at.
	Target Node
	// Data carries an arbitrary payload from the event source.
	Data any
}

// HandlerFunc is a live behavior attached to an element.
type HandlerFunc func(Event)

// Node is one renderable unit.
type Node interface {
	// NodeID returns the host-assigned identity of the node.
	NodeID() string
	// Kind returns the shape of the node.
	Kind() Kind
}

// Text is a leaf node holding character data.
type Text interface {
	Node
	Data() string
}

// Element is a named display node.
type Element interface {
	Node
	TagName() string
	// SetAttr sets a literal attribute.
	SetAttr(name, value string)
	// Attr returns the attribute value and whether it is set.
	Attr(name string) (string, bool)
	// AttrNames returns the set attribute names in sorted order.
	AttrNames() []string
	// Bind attaches a live behavior under the given event name.
	Bind(event string, fn HandlerFunc)
	// Append adopts a child node.
	Append(child Node)
	Children() []Node
}

// Fragment is an unnamed grouping of nodes.
type Fragment interface {
	Node
	Append(child Node)
	Children() []Node
}

// Host is the environment capability a view renders against.
type Host interface {
	CreateElement(tag string) Element
	CreateText(data string) Text
	CreateFragment() Fragment
	// ReplaceChild swaps old for next among parent's children, preserving
	// old's position. It fails if old is not a child of parent.
	ReplaceChild(parent, next, old Node) error
	// ParentOf returns the node currently holding n, if any.
	ParentOf(n Node) (Node, bool)
}
