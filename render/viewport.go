// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/core/math32"
)

// Viewport is a region of a [Window] viewed through its own [Camera].
// It is the renderer that pickers pick in.
type Viewport struct {

	// Name of the viewport.
	Name string

	// Geom is the region of the window covered by the viewport,
	// in window pixels.
	Geom image.Rectangle

	// Camera views the scene.
	Camera Camera
}

// NewViewport returns a new [Viewport] covering the given region,
// with a default camera.
func NewViewport(name string, geom image.Rectangle) *Viewport {
	vp := &Viewport{Name: name, Geom: geom}
	vp.Camera.Defaults()
	return vp
}

// CameraPosition returns the position of the camera.
func (vp *Viewport) CameraPosition() math32.Vector3 {
	return vp.Camera.Pos
}

// Contains returns whether the given window position is in the viewport.
func (vp *Viewport) Contains(x, y int) bool {
	return image.Pt(x, y).In(vp.Geom)
}

// Ray returns the world ray through the given window position.
func (vp *Viewport) Ray(x, y float32) math32.Ray {
	lx := x - float32(vp.Geom.Min.X)
	ly := y - float32(vp.Geom.Min.Y)
	return vp.Camera.Ray(lx, ly, vp.Geom.Size())
}
