// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widgets provides a bounding-box picker and a simple
// interactive handle that share a render window through a
// [picking.Manager].
package widgets

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/picking"
	"github.com/google/uuid"
)

// InteractionState is the state of a [Handle] relative to the cursor.
type InteractionState int32

const (
	// Outside means the cursor is not over the handle.
	Outside InteractionState = iota

	// Hovering means the cursor is over one of the handle parts.
	Hovering
)

func (is InteractionState) String() string {
	switch is {
	case Outside:
		return "Outside"
	case Hovering:
		return "Hovering"
	}
	return fmt.Sprintf("InteractionState(%d)", int32(is))
}

// Handle is an interactive widget made of box-shaped parts. It owns a
// [BoxPicker] over its parts, registered with a [picking.Manager] so
// that only the handle closest to the camera reacts to the cursor.
type Handle struct {

	// ID uniquely identifies the handle.
	ID string

	// Name of the handle, also the name of its top-level assembly.
	Name string

	// Picker picks the parts of the handle.
	Picker *BoxPicker

	// Renderer the handle is shown in.
	Renderer picking.Renderer

	// State is the result of the last [Handle.ComputeInteractionState].
	State InteractionState

	// Active is the part under the cursor, if any.
	Active *Prop

	// Assembly is the top-level prop of the parts.
	Assembly *Prop

	// pickingManaged is whether picks go through the manager.
	pickingManaged bool

	// manager the picker is registered with, if any.
	manager *picking.Manager
}

// NewHandle returns a new [Handle] with the given parts, shown in the
// given renderer. An empty name is replaced by one derived from the ID.
func NewHandle(name string, ren picking.Renderer, parts ...*Prop) *Handle {
	h := &Handle{ID: uuid.NewString(), Name: name, Renderer: ren, pickingManaged: true}
	if h.Name == "" {
		h.Name = "handle-" + h.ID[:8]
	}
	h.Assembly = &Prop{Name: h.Name}
	h.Picker = NewBoxPicker()
	for _, pr := range parts {
		h.AddPart(pr)
	}
	return h
}

// AddPart adds the given part to the handle assembly.
func (h *Handle) AddPart(pr *Prop) {
	pr.Parent = h.Assembly
	h.Picker.AddProp(pr)
}

// Bounds returns the union of the bounding boxes of the parts.
func (h *Handle) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, pr := range h.Picker.Props {
		bb.ExpandByBox(pr.BBox)
	}
	return bb
}

// PickingManaged returns whether picks go through the manager.
func (h *Handle) PickingManaged() bool {
	return h.pickingManaged
}

// SetPickingManaged sets whether picks go through the manager,
// registering or removing the handle picker accordingly.
func (h *Handle) SetPickingManaged(managed bool) {
	if h.pickingManaged == managed {
		return
	}
	h.pickingManaged = managed
	if managed {
		h.registerPickers()
	} else {
		h.unregisterPickers()
	}
}

// SetManager sets the picking manager of the handle and registers
// its picker with it, removing it from any previous manager.
func (h *Handle) SetManager(pm *picking.Manager) {
	h.unregisterPickers()
	h.manager = pm
	h.registerPickers()
}

// Manager returns the picking manager of the handle, which may be nil.
func (h *Handle) Manager() *picking.Manager {
	return h.manager
}

func (h *Handle) registerPickers() {
	if h.manager == nil || !h.pickingManaged {
		return
	}
	h.manager.AddPicker(h.Picker, h)
}

func (h *Handle) unregisterPickers() {
	if h.manager == nil {
		return
	}
	h.manager.RemoveObject(h)
}

// ComputeInteractionState updates the state of the handle for the
// cursor at the given display position.
func (h *Handle) ComputeInteractionState(x, y int) InteractionState {
	path := h.assemblyPath(float32(x), float32(y), 0)
	h.Active = nil
	h.State = Outside
	if last := path.Last(); last != nil {
		if pr, ok := last.Prop.(*Prop); ok {
			h.Active = pr
			h.State = Hovering
		}
	}
	return h.State
}

// assemblyPath picks at the given position, through the manager when
// picking is managed.
func (h *Handle) assemblyPath(x, y, z float32) *picking.AssemblyPath {
	if h.manager != nil && h.pickingManaged {
		return h.manager.AssemblyPath(x, y, z, h.Picker, h.Renderer, h)
	}
	if !h.Picker.Pick(x, y, z, h.Renderer) {
		return nil
	}
	return h.Picker.PickedPath()
}

// Close removes the handle from its manager. It must be called when
// the handle is no longer used.
func (h *Handle) Close() {
	h.unregisterPickers()
	h.manager = nil
	h.State = Outside
	h.Active = nil
}
