// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides a minimal window with viewports and cameras
// that drives a [picking.Manager]: it tracks the mouse event position,
// finds the viewport under it, and counts renders.
package render

import (
	"image"

	"cogentcore.org/picking"
)

// Window holds the viewports of a render window and the state of the
// current event. It implements [picking.Interactor].
type Window struct {

	// Viewports in stacking order: later viewports are on top.
	Viewports []*Viewport

	// eventPos is the position of the last mouse event.
	eventPos image.Point

	// renderCount is the number of renders so far.
	renderCount int64

	// listeners are called after each render, most recently added first.
	listeners []func(count int64)
}

// NewWindow returns a new [Window] with a single viewport of the
// given size.
func NewWindow(size image.Point) *Window {
	w := &Window{}
	w.AddViewport(NewViewport("main", image.Rectangle{Max: size}))
	return w
}

// AddViewport adds the given viewport on top of the others.
func (w *Window) AddViewport(vp *Viewport) *Viewport {
	w.Viewports = append(w.Viewports, vp)
	return vp
}

// MouseMove records a mouse event at the given window position.
func (w *Window) MouseMove(x, y int) {
	w.eventPos = image.Pt(x, y)
}

// EventPosition returns the position of the last mouse event.
func (w *Window) EventPosition() (int, int) {
	return w.eventPos.X, w.eventPos.Y
}

// FindPokedRenderer returns the topmost viewport containing the given
// position, or the first viewport if none does. It returns nil if the
// window has no viewports.
func (w *Window) FindPokedRenderer(x, y int) picking.Renderer {
	if vp := w.FindViewport(x, y); vp != nil {
		return vp
	}
	return nil
}

// FindViewport is [Window.FindPokedRenderer] returning the concrete type.
func (w *Window) FindViewport(x, y int) *Viewport {
	n := len(w.Viewports)
	if n == 0 {
		return nil
	}
	for i := n - 1; i >= 0; i-- {
		if w.Viewports[i].Contains(x, y) {
			return w.Viewports[i]
		}
	}
	return w.Viewports[0]
}

// OnRender adds a function to call after each render.
func (w *Window) OnRender(fun func(count int64)) {
	w.listeners = append(w.listeners, fun)
}

// Render marks a new frame as rendered and calls the render listeners.
func (w *Window) Render() {
	w.renderCount++
	for i := len(w.listeners) - 1; i >= 0; i-- {
		w.listeners[i](w.renderCount)
	}
}

// RenderCount returns the number of renders so far.
func (w *Window) RenderCount() int64 {
	return w.renderCount
}
