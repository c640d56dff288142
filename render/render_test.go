// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/picking"
	cmath "github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ picking.Interactor = (*Window)(nil)
	_ picking.Renderer   = (*Viewport)(nil)
)

func assertVec(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5, "X")
	assert.InDelta(t, want.Y, got.Y, 1e-5, "Y")
	assert.InDelta(t, want.Z, got.Z, 1e-5, "Z")
}

func TestCameraCenterRay(t *testing.T) {
	var cm Camera
	cm.Defaults()
	ray := cm.Ray(50, 50, image.Pt(100, 100))
	assertVec(t, cm.Pos, ray.Origin)
	assertVec(t, math32.Vec3(0, 0, -1), ray.Dir)
}

func TestCameraEdgeRays(t *testing.T) {
	var cm Camera
	cm.Defaults()
	half := cmath.Tan(math32.DegToRad(15))

	right := cm.Ray(100, 50, image.Pt(100, 100))
	assertVec(t, math32.Vec3(half, 0, -1).Normal(), right.Dir)

	top := cm.Ray(50, 0, image.Pt(100, 100))
	assertVec(t, math32.Vec3(0, half, -1).Normal(), top.Dir)

	// wide views stretch horizontally
	wide := cm.Ray(200, 50, image.Pt(200, 100))
	assertVec(t, math32.Vec3(2*half, 0, -1).Normal(), wide.Dir)
}

func TestCameraLookAt(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.Pos = math32.Vec3(10, 0, 0)
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	ray := cm.Ray(50, 50, image.Pt(100, 100))
	assertVec(t, math32.Vec3(-1, 0, 0), ray.Dir)
}

func TestCameraDefaultsFromTags(t *testing.T) {
	var cm Camera
	cm.Defaults()
	assert.Equal(t, float32(30), cm.FOV)
}

func TestCameraUnsetUp(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.LookAt(math32.Vector3{}, math32.Vector3{})
	half := cmath.Tan(math32.DegToRad(15))
	assertVec(t, math32.Vec3(0, 0, -1), cm.Ray(50, 50, image.Pt(100, 100)).Dir)
	assertVec(t, math32.Vec3(half, 0, -1).Normal(), cm.Ray(100, 50, image.Pt(100, 100)).Dir)
	assertVec(t, math32.Vec3(0, half, -1).Normal(), cm.Ray(50, 0, image.Pt(100, 100)).Dir)
}

func TestCameraUpAlongView(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.Pos = math32.Vec3(0, 10, 0)
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	center := cm.Ray(50, 50, image.Pt(100, 100)).Dir
	corner := cm.Ray(0, 0, image.Pt(100, 100)).Dir
	assertVec(t, math32.Vec3(0, -1, 0), center)
	assert.Greater(t, center.DistanceTo(corner), float32(0.1))
}

func TestCameraEmptySize(t *testing.T) {
	var cm Camera
	cm.Defaults()
	ray := cm.Ray(0, 0, image.Point{})
	assert.InDelta(t, 1, ray.Dir.Length(), 1e-5)
}

func TestViewportRay(t *testing.T) {
	vp := NewViewport("inset", image.Rect(100, 100, 200, 200))
	assert.Equal(t, vp.Camera.Pos, vp.CameraPosition())
	assertVec(t, math32.Vec3(0, 0, -1), vp.Ray(150, 150).Dir)
	assert.True(t, vp.Contains(100, 100))
	assert.False(t, vp.Contains(200, 200))
}

func TestWindowFindPokedRenderer(t *testing.T) {
	w := &Window{}
	assert.Nil(t, w.FindPokedRenderer(0, 0))

	w = NewWindow(image.Pt(640, 480))
	mainVp := w.Viewports[0]
	inset := w.AddViewport(NewViewport("inset", image.Rect(500, 0, 640, 100)))

	assert.Same(t, mainVp, w.FindViewport(10, 10))
	assert.Same(t, inset, w.FindViewport(600, 50))
	assert.Same(t, mainVp, w.FindViewport(1000, 1000))
	assert.Equal(t, picking.Renderer(inset), w.FindPokedRenderer(600, 50))
}

func TestWindowEvents(t *testing.T) {
	w := NewWindow(image.Pt(100, 100))
	w.MouseMove(3, 4)
	x, y := w.EventPosition()
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)

	var order []string
	var last int64
	w.OnRender(func(count int64) {
		order = append(order, "first")
		last = count
	})
	w.OnRender(func(count int64) { order = append(order, "second") })

	require.Equal(t, int64(0), w.RenderCount())
	w.Render()
	w.Render()
	assert.Equal(t, int64(2), w.RenderCount())
	assert.Equal(t, int64(2), last)
	assert.Equal(t, []string{"second", "first", "second", "first"}, order)
}

func TestWindowDrivesManagerCache(t *testing.T) {
	w := NewWindow(image.Pt(100, 100))
	pm := picking.NewManager().SetInteractor(w).SetEnabled(true)
	calls := 0
	pk := &countPicker{calls: &calls}
	pm.AddPicker(pk, nil)

	assert.True(t, pm.PickPicker(pk))
	assert.True(t, pm.PickPicker(pk))
	assert.Equal(t, 1, calls)
	w.Render()
	assert.True(t, pm.PickPicker(pk))
	assert.Equal(t, 2, calls)
}

type countPicker struct{ calls *int }

func (cp *countPicker) Pick(x, y, z float32, ren picking.Renderer) bool {
	*cp.calls++
	return true
}
func (cp *countPicker) PickPosition() math32.Vector3     { return math32.Vector3{} }
func (cp *countPicker) PickedPath() *picking.AssemblyPath { return nil }
