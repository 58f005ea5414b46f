package core

import (
	"testing"

	"github.com/go-wml/wml/pkg/dom"
)

func thunkOf(v *View, s string, count *int) Thunk {
	return func() (dom.Node, error) {
		*count++
		return Text(v, s), nil
	}
}

func TestIfTakesExactlyOneBranch(t *testing.T) {
	v := newTestView()
	var pos, neg int

	node, err := If(v, true, thunkOf(v, "yes", &pos), thunkOf(v, "no", &neg))
	if err != nil {
		t.Fatalf("If: %v", err)
	}
	if pos != 1 || neg != 0 {
		t.Errorf("true branch: pos=%d neg=%d", pos, neg)
	}
	if got := dom.MarshalHTML(node); got != "yes" {
		t.Errorf("If(true) = %q", got)
	}

	pos, neg = 0, 0
	node, err = If(v, false, thunkOf(v, "yes", &pos), thunkOf(v, "no", &neg))
	if err != nil {
		t.Fatalf("If: %v", err)
	}
	if pos != 0 || neg != 1 {
		t.Errorf("false branch: pos=%d neg=%d", pos, neg)
	}
	if got := dom.MarshalHTML(node); got != "no" {
		t.Errorf("If(false) = %q", got)
	}
}

func TestIfNilBranchYieldsEmpty(t *testing.T) {
	v := newTestView()
	node, err := If(v, false, thunkOf(v, "yes", new(int)), nil)
	if err != nil {
		t.Fatalf("If: %v", err)
	}
	if node.Kind() != dom.KindFragment || len(node.(dom.Fragment).Children()) != 0 {
		t.Error("nil branch should yield empty content")
	}
}

func TestForEachOrderAndIndices(t *testing.T) {
	v := newTestView()
	var gotItems []string
	var gotIndices []int

	node, err := ForEach(v, []string{"a", "b", "c"}, func(item string, i int) (dom.Node, error) {
		gotItems = append(gotItems, item)
		gotIndices = append(gotIndices, i)
		return Text(v, item), nil
	}, nil)
	if err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	if len(gotItems) != 3 || gotItems[0] != "a" || gotItems[1] != "b" || gotItems[2] != "c" {
		t.Errorf("callback items = %v", gotItems)
	}
	if gotIndices[0] != 0 || gotIndices[1] != 1 || gotIndices[2] != 2 {
		t.Errorf("callback indices = %v", gotIndices)
	}
	if got := dom.MarshalHTML(node); got != "abc" {
		t.Errorf("composition = %q, want iteration order preserved", got)
	}
}

func TestForEachEmptyInvokesFallback(t *testing.T) {
	v := newTestView()
	calls := 0
	var fallbackRuns int

	node, err := ForEach(v, []string{}, func(item string, i int) (dom.Node, error) {
		calls++
		return nil, nil
	}, thunkOf(v, "nothing here", &fallbackRuns))
	if err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	if calls != 0 {
		t.Error("item callback must never run for an empty collection")
	}
	if fallbackRuns != 1 {
		t.Errorf("fallback ran %d times, want 1", fallbackRuns)
	}
	// The result is the fallback's invocation result, not the thunk itself.
	if got := dom.MarshalHTML(node); got != "nothing here" {
		t.Errorf("empty-case result = %q", got)
	}
}

func TestForEachMapSortedKeys(t *testing.T) {
	v := newTestView()
	var keys []string

	node, err := ForEachMap(v, map[string]int{"b": 2, "a": 1, "c": 3}, func(value int, key string) (dom.Node, error) {
		keys = append(keys, key)
		return Text(v, value), nil
	}, nil)
	if err != nil {
		t.Fatalf("ForEachMap: %v", err)
	}
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("keys visited = %v, want sorted order", keys)
	}
	if got := dom.MarshalHTML(node); got != "123" {
		t.Errorf("composition = %q", got)
	}
}

func TestForEachMapEmptyInvokesFallback(t *testing.T) {
	v := newTestView()
	runs := 0
	node, err := ForEachMap(v, map[string]int{}, func(value int, key string) (dom.Node, error) {
		t.Fatal("callback must not run")
		return nil, nil
	}, thunkOf(v, "empty", &runs))
	if err != nil || runs != 1 {
		t.Fatalf("fallback runs = %d, err = %v", runs, err)
	}
	if got := dom.MarshalHTML(node); got != "empty" {
		t.Errorf("result = %q", got)
	}
}

func TestSwitch(t *testing.T) {
	v := newTestView()
	var x, def int
	cases := map[string]Thunk{
		"x":         thunkOf(v, "matched x", &x),
		DefaultCase: thunkOf(v, "fell through", &def),
	}

	node, err := Switch(v, "x", cases)
	if err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if got := dom.MarshalHTML(node); got != "matched x" || def != 0 {
		t.Errorf("Switch(x) = %q, default runs = %d", got, def)
	}

	node, err = Switch(v, "y", cases)
	if err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if got := dom.MarshalHTML(node); got != "fell through" {
		t.Errorf("Switch(y) = %q", got)
	}
}

func TestSwitchNoMatchNoDefault(t *testing.T) {
	v := newTestView()
	node, err := Switch(v, "y", map[string]Thunk{
		"x": thunkOf(v, "matched x", new(int)),
	})
	if err != nil {
		t.Fatalf("unmatched switch must not fail: %v", err)
	}
	if node.Kind() != dom.KindFragment || len(node.(dom.Fragment).Children()) != 0 {
		t.Error("unmatched switch should yield explicit empty content")
	}
}
