package widgets

import (
	"github.com/go-wml/wml/pkg/dom"
)

// Func adapts closures into a widget. Use it for quick, self-contained
// fragments that need lifecycle hooks without a named type:
//
//	widgets.Func{
//	    RenderFunc:  func() (dom.Node, error) { ... },
//	    RemovedFunc: func() { cancel() },
//	}
//
// Nil hooks are no-ops; a nil RenderFunc renders nothing.
type Func struct {
	RenderFunc   func() (dom.Node, error)
	RenderedFunc func()
	RemovedFunc  func()
}

// Render invokes RenderFunc.
func (f Func) Render() (dom.Node, error) {
	if f.RenderFunc == nil {
		return nil, nil
	}
	return f.RenderFunc()
}

// Rendered invokes RenderedFunc.
func (f Func) Rendered() {
	if f.RenderedFunc != nil {
		f.RenderedFunc()
	}
}

// Removed invokes RemovedFunc.
func (f Func) Removed() {
	if f.RemovedFunc != nil {
		f.RemovedFunc()
	}
}
