// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picking

import (
	"strings"

	"cogentcore.org/core/math32"
)

// Picker performs hit testing against rendered geometry.
// Pickers are compared by identity, so implementations should be
// pointer types.
type Picker interface {

	// Pick performs a hit test at the given display position in the
	// given renderer, returning whether anything was hit.
	Pick(x, y, z float32, ren Renderer) bool

	// PickPosition returns the world position of the last hit.
	PickPosition() math32.Vector3

	// PickedPath returns the assembly path of the last hit,
	// or nil if the last pick missed.
	PickedPath() *AssemblyPath
}

// DepthPicker is a [Picker] that reports its own ranking depth for the
// last hit. Pickers that do not implement it are ranked by the distance
// from the camera to [Picker.PickPosition].
type DepthPicker interface {
	Picker

	// PickDepth returns the distance from the camera to the last hit.
	PickDepth() float32
}

// Renderer is the view a pick is performed in.
type Renderer interface {

	// CameraPosition returns the world position of the active camera.
	CameraPosition() math32.Vector3
}

// Interactor supplies the current event position and the render count
// that drives cache invalidation in the [Manager].
type Interactor interface {

	// EventPosition returns the display position of the current event.
	EventPosition() (x, y int)

	// FindPokedRenderer returns the renderer under the given display
	// position, or nil if there is none.
	FindPokedRenderer(x, y int) Renderer

	// RenderCount returns the number of renders so far. It must
	// increase every time a new frame is rendered.
	RenderCount() int64
}

// PathNode is one element of an [AssemblyPath].
type PathNode struct {

	// Name of the prop, for display.
	Name string

	// Prop is the picked object at this level, owned by the picker.
	Prop any
}

// AssemblyPath is the chain of props from the top-level assembly
// down to the prop that was hit. The [Manager] passes it through
// without looking inside.
type AssemblyPath struct {
	Nodes []PathNode
}

// NewAssemblyPath returns a path with the given nodes.
func NewAssemblyPath(nodes ...PathNode) *AssemblyPath {
	return &AssemblyPath{Nodes: nodes}
}

// Len returns the number of nodes in the path.
func (ap *AssemblyPath) Len() int {
	if ap == nil {
		return 0
	}
	return len(ap.Nodes)
}

// Last returns the node that was actually hit, or nil for an empty path.
func (ap *AssemblyPath) Last() *PathNode {
	if ap.Len() == 0 {
		return nil
	}
	return &ap.Nodes[len(ap.Nodes)-1]
}

// String returns the path as slash-separated node names.
func (ap *AssemblyPath) String() string {
	if ap.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for _, nd := range ap.Nodes {
		b.WriteString("/")
		b.WriteString(nd.Name)
	}
	return b.String()
}
