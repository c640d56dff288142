// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/picking"
)

// Prop is a pickable element with a world-space bounding box.
// Props with a Parent form an assembly.
type Prop struct {

	// Name of the prop.
	Name string

	// BBox is the bounding box in world coordinates.
	BBox math32.Box3

	// Parent is the assembly containing this prop, if any.
	Parent *Prop

	// Pickable props are tested by a [BoxPicker].
	Pickable bool
}

// NewProp returns a new pickable [Prop] with the given bounding box.
func NewProp(name string, bbox math32.Box3) *Prop {
	return &Prop{Name: name, BBox: bbox, Pickable: true}
}

// Path returns the assembly path from the top-level prop down to this one.
func (pr *Prop) Path() *picking.AssemblyPath {
	var nodes []picking.PathNode
	for p := pr; p != nil; p = p.Parent {
		nodes = append(nodes, picking.PathNode{Name: p.Name, Prop: p})
	}
	slices.Reverse(nodes)
	return picking.NewAssemblyPath(nodes...)
}

// RayCaster is a [picking.Renderer] that can cast a world ray through
// a display position.
type RayCaster interface {
	picking.Renderer

	// Ray returns the world ray through the given display position.
	Ray(x, y float32) math32.Ray
}

// BoxPicker picks the [Prop] whose bounding box is hit first by the
// ray through the pick position. The renderer must be a [RayCaster].
type BoxPicker struct {

	// Props that can be picked.
	Props []*Prop

	// Tolerance expands every bounding box by this amount on each side.
	Tolerance float32

	// picked is the prop hit by the last pick.
	picked *Prop

	// pickPos is the world position of the last hit.
	pickPos math32.Vector3
}

// NewBoxPicker returns a new [BoxPicker] over the given props.
func NewBoxPicker(props ...*Prop) *BoxPicker {
	return &BoxPicker{Props: props}
}

// AddProp adds the given prop to the picker.
func (bp *BoxPicker) AddProp(pr *Prop) {
	bp.Props = append(bp.Props, pr)
}

// Pick casts a ray through the given position and records the closest
// pickable prop it hits.
func (bp *BoxPicker) Pick(x, y, z float32, ren picking.Renderer) bool {
	bp.picked = nil
	rc, ok := ren.(RayCaster)
	if !ok {
		return false
	}
	ray := rc.Ray(x, y)
	best := math32.Infinity
	for _, pr := range bp.Props {
		if !pr.Pickable {
			continue
		}
		pt, hit := ray.IntersectBox(bp.expand(pr.BBox))
		if !hit {
			continue
		}
		d := ray.Origin.DistanceTo(pt)
		if d < best {
			best = d
			bp.picked = pr
			bp.pickPos = pt
		}
	}
	return bp.picked != nil
}

// expand returns the box grown by the tolerance.
func (bp *BoxPicker) expand(bb math32.Box3) math32.Box3 {
	if bp.Tolerance != 0 {
		bb.ExpandByScalar(bp.Tolerance)
	}
	return bb
}

// Picked returns the prop hit by the last pick, or nil.
func (bp *BoxPicker) Picked() *Prop {
	return bp.picked
}

func (bp *BoxPicker) PickPosition() math32.Vector3 {
	return bp.pickPos
}

func (bp *BoxPicker) PickedPath() *picking.AssemblyPath {
	if bp.picked == nil {
		return nil
	}
	return bp.picked.Path()
}
