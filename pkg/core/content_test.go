package core

import (
	"strings"
	"testing"

	"github.com/go-wml/wml/pkg/attrs"
	"github.com/go-wml/wml/pkg/dom"
	"github.com/go-wml/wml/pkg/errors"
)

func newTestView() *View {
	return New(dom.NewMemoryHost(), nil, nil)
}

func TestText(t *testing.T) {
	v := newTestView()

	cases := []struct {
		in   any
		want string
	}{
		{"hello", "hello"},
		{42, "42"},
		{true, "true"},
		{3.5, "3.5"},
		{nil, ""},
	}
	for _, c := range cases {
		node := Text(v, c.in)
		leaf, ok := node.(dom.Text)
		if !ok {
			t.Fatalf("Text(%v) produced %v, want a text leaf", c.in, node.Kind())
		}
		if leaf.Data() != c.want {
			t.Errorf("Text(%v) = %q, want %q", c.in, leaf.Data(), c.want)
		}
	}
}

func TestEmptyIsFreshPerCall(t *testing.T) {
	v := newTestView()
	a := Empty(v)
	b := Empty(v)
	if a == b {
		t.Error("Empty must materialize a fresh value per call")
	}
	if a.Kind() != dom.KindFragment {
		t.Errorf("Empty Kind = %v, want fragment", a.Kind())
	}
}

func TestBoxSingleItem(t *testing.T) {
	v := newTestView()

	// A primitive coerces to a text node.
	node, err := Box(v, "only")
	if err != nil {
		t.Fatalf("Box: %v", err)
	}
	if node.Kind() != dom.KindText {
		t.Errorf("single primitive should yield a text node, got %v", node.Kind())
	}

	// An existing node passes through as itself.
	el := v.Host().CreateElement("div")
	node, err = Box(v, el)
	if err != nil {
		t.Fatalf("Box: %v", err)
	}
	if node != dom.Node(el) {
		t.Error("single node should pass through unchanged")
	}

	// A non-node object is a type error.
	_, err = Box(v, struct{ x int }{})
	if errors.KindOf(err) != errors.KindTypeMismatch {
		t.Errorf("expected type-mismatch, got %v", err)
	}
}

func TestBoxMultipleItems(t *testing.T) {
	v := newTestView()
	node, err := Box(v, "a", 1, v.Host().CreateElement("b"))
	if err != nil {
		t.Fatalf("Box: %v", err)
	}
	if node.Kind() != dom.KindFragment {
		t.Fatalf("multi-item Box should yield a fragment, got %v", node.Kind())
	}
	if got := dom.MarshalHTML(node); got != "a1<b></b>" {
		t.Errorf("Box composition = %q", got)
	}
}

func TestDomify(t *testing.T) {
	v := newTestView()

	node, err := Domify(v, nil)
	if err != nil || node.Kind() != dom.KindFragment {
		t.Errorf("Domify(nil) = %v, %v; want empty fragment", node, err)
	}

	node, err = Domify(v, []any{"a", []any{"b", "c"}, nil, 7})
	if err != nil {
		t.Fatalf("Domify: %v", err)
	}
	if got := dom.MarshalHTML(node); got != "abc7" {
		t.Errorf("Domify nested = %q, want %q", got, "abc7")
	}

	_, err = Domify(v, make(chan int))
	if errors.KindOf(err) != errors.KindTypeMismatch {
		t.Fatalf("expected type-mismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "chan int") {
		t.Errorf("type error should name the offending type: %v", err)
	}
}

func TestNewElementAttributes(t *testing.T) {
	v := newTestView()

	clicked := false
	node, err := NewElement(v, "input", map[string]any{
		"html": map[string]any{
			"type":     "checkbox",
			"checked":  true,
			"disabled": "", // empty string must be suppressed
			"tabindex": 3,
			"onclick":  dom.HandlerFunc(func(dom.Event) { clicked = true }),
		},
	}, nil)
	if err != nil {
		t.Fatalf("NewElement: %v", err)
	}
	el := node.(dom.Element)

	if got, _ := el.Attr("checked"); got != "true" {
		t.Errorf("checked = %q, want %q", got, "true")
	}
	if _, ok := el.Attr("disabled"); ok {
		t.Error("empty-string attribute must not be set")
	}
	if got, _ := el.Attr("tabindex"); got != "3" {
		t.Errorf("tabindex = %q, want %q", got, "3")
	}

	host := v.Host().(*dom.MemoryHost)
	if !host.Fire(el.NodeID(), dom.Event{Type: "onclick"}) {
		t.Fatal("callable attribute should bind a live handler")
	}
	if !clicked {
		t.Error("bound handler did not run")
	}
}

func TestNewElementChildren(t *testing.T) {
	v := newTestView()
	inner := v.Host().CreateElement("em")

	node, err := NewElement(v, "p", nil, []any{
		"lead ",
		[]any{inner, []any{" tail"}},
		nil,
		7,
	})
	if err != nil {
		t.Fatalf("NewElement: %v", err)
	}
	if got := dom.MarshalHTML(node); got != "<p>lead <em></em> tail7</p>" {
		t.Errorf("children adoption = %q", got)
	}
}

func TestNewElementAdoptionError(t *testing.T) {
	v := newTestView()
	_, err := NewElement(v, "p", nil, []any{struct{}{}})
	if errors.KindOf(err) != errors.KindAdoption {
		t.Errorf("expected adoption error, got %v", err)
	}
}

func TestNewElementRegistersIDAndGroup(t *testing.T) {
	v := newTestView()
	node, err := NewElement(v, "li", map[string]any{
		"wml": map[string]any{"id": "item-1", "group": "items"},
	}, nil)
	if err != nil {
		t.Fatalf("NewElement: %v", err)
	}

	if got, ok := v.FindByID("item-1"); !ok || got != node {
		t.Error("element should register under its wml:id")
	}
	group := v.FindGroup("items")
	if len(group) != 1 || group[0] != node {
		t.Errorf("group registration = %v", group)
	}

	_, err = NewElement(v, "li", map[string]any{
		"wml": map[string]any{"id": "item-1"},
	}, nil)
	if errors.KindOf(err) != errors.KindDuplicateID {
		t.Errorf("expected duplicate-id, got %v", err)
	}
}

type attrEchoWidget struct {
	view     *View
	label    string
	children []dom.Node
}

func (w *attrEchoWidget) Render() (dom.Node, error) {
	items := make([]any, 0, len(w.children)+1)
	items = append(items, Text(w.view, w.label))
	for _, c := range w.children {
		items = append(items, c)
	}
	return Box(w.view, items...)
}

func (w *attrEchoWidget) Rendered() {}
func (w *attrEchoWidget) Removed()  {}

func TestNewWidget(t *testing.T) {
	v := newTestView()
	factory := func(v *View, r *attrs.Reader, children []dom.Node) (Widget, error) {
		return &attrEchoWidget{
			view:     v,
			label:    r.ReadString("html:label", "?"),
			children: children,
		}, nil
	}

	node, err := NewWidget(v, factory, map[string]any{
		"wml":  map[string]any{"id": "echo"},
		"html": map[string]any{"label": "greeting: "},
	}, []any{
		[]any{"hi", " there"}, // splatted one level
		"!",
	})
	if err != nil {
		t.Fatalf("NewWidget: %v", err)
	}
	if got := dom.MarshalHTML(node); got != "greeting: hi there!" {
		t.Errorf("widget render = %q", got)
	}

	w, ok := v.FindByID("echo")
	if !ok {
		t.Fatal("widget should register under its wml:id")
	}
	if _, ok := w.(*attrEchoWidget); !ok {
		t.Errorf("registry entry is %T, want the widget instance", w)
	}
	if len(v.widgets) != 1 {
		t.Errorf("widget list length = %d, want 1", len(v.widgets))
	}
}
