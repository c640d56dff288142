// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/math32"
	cmath "github.com/chewxy/math32"
)

// Camera is a perspective camera looking from Pos at Target.
type Camera struct {

	// Pos is the position of the camera in world coordinates.
	Pos math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// UpDir is the up direction of the camera.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"30"`
}

// Defaults sets the camera at z = 10 looking at the origin,
// with the field of view from its default tag.
func (cm *Camera) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(cm))
	cm.Pos = math32.Vec3(0, 0, 10)
	cm.Target = math32.Vector3{}
	cm.UpDir = math32.Vec3(0, 1, 0)
}

// LookAt points the camera at the given target with the given up direction.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	cm.UpDir = upDir
}

// Ray returns the world ray through the given position in a view of the
// given size. Positions are in pixels from the top-left corner.
func (cm *Camera) Ray(x, y float32, size image.Point) math32.Ray {
	w, h := float32(size.X), float32(size.Y)
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	fwd := cm.Target.Sub(cm.Pos).Normal()
	right := fwd.Cross(cm.UpDir)
	if right.Length() < 1e-6 {
		right = fwd.Cross(upFor(fwd))
	}
	right = right.Normal()
	up := right.Cross(fwd)

	ndcX := 2*x/w - 1
	ndcY := 1 - 2*y/h
	half := cmath.Tan(math32.DegToRad(cm.FOV) / 2)
	aspect := w / h

	dir := fwd.Add(right.MulScalar(ndcX * half * aspect)).Add(up.MulScalar(ndcY * half))
	return math32.Ray{Origin: cm.Pos, Dir: dir.Normal()}
}

// upFor returns an up direction that is not parallel to the given
// view direction, for cameras whose UpDir is unset or along the view.
func upFor(fwd math32.Vector3) math32.Vector3 {
	if math32.Abs(fwd.Y) < 0.9 {
		return math32.Vec3(0, 1, 0)
	}
	return math32.Vec3(0, 0, -1)
}
