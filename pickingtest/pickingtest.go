// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pickingtest provides scripted pickers, renderers and
// interactors for testing code that uses a [picking.Manager].
package pickingtest

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/picking"
)

// Picker is a [picking.DepthPicker] whose result is set in advance.
// It counts how many times it is asked to pick.
type Picker struct {

	// Name is used for the picked path.
	Name string

	// Hit is the result of every Pick call.
	Hit bool

	// Depth is returned by PickDepth.
	Depth float32

	// Position is returned by PickPosition.
	Position math32.Vector3

	// Path is returned by PickedPath after a hit. If nil, a single
	// node path naming the picker is returned.
	Path *picking.AssemblyPath

	// Panics makes Pick panic instead of returning.
	Panics bool

	// DepthPanics makes PickDepth panic instead of returning.
	DepthPanics bool

	// Calls is the number of Pick calls so far.
	Calls int

	// LastRenderer is the renderer of the last Pick call.
	LastRenderer picking.Renderer

	// LastX, LastY and LastZ are the position of the last Pick call.
	LastX, LastY, LastZ float32

	picked bool
}

// NewPicker returns a new [Picker] with the given result.
func NewPicker(name string, hit bool, depth float32) *Picker {
	return &Picker{Name: name, Hit: hit, Depth: depth}
}

func (pk *Picker) Pick(x, y, z float32, ren picking.Renderer) bool {
	pk.Calls++
	pk.LastX, pk.LastY, pk.LastZ = x, y, z
	pk.LastRenderer = ren
	pk.picked = false
	if pk.Panics {
		panic(fmt.Sprintf("pickingtest.Picker %s: pick failed", pk.Name))
	}
	pk.picked = pk.Hit
	return pk.Hit
}

func (pk *Picker) PickPosition() math32.Vector3 { return pk.Position }

func (pk *Picker) PickDepth() float32 {
	if pk.DepthPanics {
		panic(fmt.Sprintf("pickingtest.Picker %s: no depth", pk.Name))
	}
	return pk.Depth
}

func (pk *Picker) PickedPath() *picking.AssemblyPath {
	if !pk.picked {
		return nil
	}
	if pk.Path != nil {
		return pk.Path
	}
	return picking.NewAssemblyPath(picking.PathNode{Name: pk.Name, Prop: pk})
}

// PointPicker is a [picking.Picker] that only reports a hit position,
// so it is ranked by its distance to the camera.
type PointPicker struct {

	// Hit is the result of every Pick call.
	Hit bool

	// Position is the world position of the hit.
	Position math32.Vector3

	// Calls is the number of Pick calls so far.
	Calls int
}

func (pk *PointPicker) Pick(x, y, z float32, ren picking.Renderer) bool {
	pk.Calls++
	return pk.Hit
}

func (pk *PointPicker) PickPosition() math32.Vector3 { return pk.Position }

func (pk *PointPicker) PickedPath() *picking.AssemblyPath {
	if !pk.Hit {
		return nil
	}
	return picking.NewAssemblyPath(picking.PathNode{Name: "point", Prop: pk})
}

// Renderer is a [picking.Renderer] with a fixed camera position.
type Renderer struct {
	Camera math32.Vector3
}

func (rn *Renderer) CameraPosition() math32.Vector3 { return rn.Camera }

// Interactor is a [picking.Interactor] whose event position and render
// count are driven by the test.
type Interactor struct {

	// X and Y are the current event position.
	X, Y int

	// Renderer is returned for every poked position.
	Renderer picking.Renderer

	// Renders is the render count.
	Renders int64
}

// NewInteractor returns a new [Interactor] over a [Renderer]
// with its camera at the origin.
func NewInteractor() *Interactor {
	return &Interactor{Renderer: &Renderer{}}
}

func (in *Interactor) EventPosition() (int, int) { return in.X, in.Y }

func (in *Interactor) FindPokedRenderer(x, y int) picking.Renderer { return in.Renderer }

func (in *Interactor) RenderCount() int64 { return in.Renders }

// MoveTo sets the event position.
func (in *Interactor) MoveTo(x, y int) {
	in.X, in.Y = x, y
}

// Render advances the render count.
func (in *Interactor) Render() {
	in.Renders++
}
