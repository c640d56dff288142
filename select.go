// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picking

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
)

// Pick returns whether the given picker, registered under the given
// owner, wins the current pick event of the interactor.
//
// When the Manager is disabled it just picks with the given picker at
// the event position and returns whether it hit, regardless of any
// registration. When enabled, it returns true only if the picker is the
// selected one and owner is registered under it.
func (pm *Manager) Pick(pk Picker, owner any) bool {
	if pk == nil {
		return false
	}
	if !pm.enabled {
		return pm.pickAtEvent(pk)
	}
	if !isComparable(owner) || !pm.table.isLinked(pk, owner) {
		return false
	}
	return pm.selectPicker() == pk
}

// PickObject returns whether any picker registered under the given
// owner wins the current pick event. When the Manager is disabled it
// returns whether any of those pickers hits.
func (pm *Manager) PickObject(owner any) bool {
	if !isComparable(owner) {
		return false
	}
	pks := pm.table.pickersFor(owner)
	if len(pks) == 0 {
		return false
	}
	if !pm.enabled {
		for _, pk := range pks {
			if pm.pickAtEvent(pk) {
				return true
			}
		}
		return false
	}
	winner := pm.selectPicker()
	if winner == nil {
		return false
	}
	for _, pk := range pks {
		if pk == winner {
			return true
		}
	}
	return false
}

// PickPicker returns whether the given picker wins the current pick
// event, whatever its owners. When the Manager is disabled it returns
// whether the picker hits.
func (pm *Manager) PickPicker(pk Picker) bool {
	if pk == nil {
		return false
	}
	if !pm.enabled {
		return pm.pickAtEvent(pk)
	}
	return pm.selectPicker() == pk
}

// AssemblyPath returns the path picked by the given picker at the given
// display position in the given renderer.
//
// When the Manager is disabled the picker is used directly. When
// enabled, the path is returned only if the picker wins the selection
// at that position and owner is registered under it; otherwise it
// returns nil.
func (pm *Manager) AssemblyPath(x, y, z float32, pk Picker, ren Renderer, owner any) *AssemblyPath {
	if pk == nil {
		return nil
	}
	if !pm.enabled {
		if !safePick(pk, x, y, z, ren) {
			return nil
		}
		return pk.PickedPath()
	}
	if !isComparable(owner) || !pm.table.isLinked(pk, owner) {
		return nil
	}
	if pm.selectPickerAt(x, y, z, ren) != pk {
		return nil
	}
	return pk.PickedPath()
}

// pickAtEvent picks with the given picker at the interactor event
// position, bypassing selection.
func (pm *Manager) pickAtEvent(pk Picker) bool {
	if pm.interactor == nil {
		return false
	}
	x, y := pm.interactor.EventPosition()
	ren := pm.interactor.FindPokedRenderer(x, y)
	return safePick(pk, float32(x), float32(y), 0, ren)
}

// selectPicker returns the winning picker for the current event of
// the interactor, or nil if there is no interactor or no hit.
func (pm *Manager) selectPicker() Picker {
	if pm.interactor == nil {
		return nil
	}
	if pm.cacheValid() {
		return pm.cache.winner
	}
	x, y := pm.interactor.EventPosition()
	ren := pm.interactor.FindPokedRenderer(x, y)
	return pm.updateSelection(float32(x), float32(y), 0, ren)
}

// selectPickerAt returns the winning picker at the given position
// in the given renderer, reusing the cached winner when valid.
func (pm *Manager) selectPickerAt(x, y, z float32, ren Renderer) Picker {
	if pm.cacheValid() {
		return pm.cache.winner
	}
	return pm.updateSelection(x, y, z, ren)
}

// cacheValid returns whether no render has happened since the last
// selection, so the cached winner can be reused.
func (pm *Manager) cacheValid() bool {
	if !pm.optimizeOnInteractorEvents || pm.interactor == nil || pm.cache.renderCount < 0 {
		return false
	}
	return pm.interactor.RenderCount() == pm.cache.renderCount
}

// updateSelection runs a full selection pass and caches the result.
func (pm *Manager) updateSelection(x, y, z float32, ren Renderer) Picker {
	winner := pm.computeSelection(x, y, z, ren)
	pm.cache.winner = winner
	pm.cache.renderCount = -1
	if pm.interactor != nil {
		pm.cache.renderCount = pm.interactor.RenderCount()
	}
	return winner
}

// computeSelection picks with every registered picker, in registration
// order, and returns the one whose hit is closest to the camera.
// The first registered picker wins exact ties.
func (pm *Manager) computeSelection(x, y, z float32, ren Renderer) Picker {
	if ren == nil {
		return nil
	}
	var winner Picker
	best := math32.Infinity
	for _, pk := range pm.table.pickers() {
		hit, d := safePickDepth(pk, x, y, z, ren)
		if !hit {
			continue
		}
		if d < best {
			best = d
			winner = pk
		}
	}
	if winner != nil {
		slog.Debug("picking.Manager: selected picker", "picker", fmt.Sprintf("%T", winner), "depth", best, "x", x, "y", y)
	}
	return winner
}

// pickDepth returns the ranking depth of the last hit of the picker.
func pickDepth(pk Picker, ren Renderer) float32 {
	if dp, ok := pk.(DepthPicker); ok {
		return dp.PickDepth()
	}
	return ren.CameraPosition().DistanceTo(pk.PickPosition())
}

// safePick calls [Picker.Pick], treating a panic as a miss.
func safePick(pk Picker, x, y, z float32, ren Renderer) (hit bool) {
	defer func() {
		if r := recover(); r != nil {
			logPickerPanic(pk, r)
			hit = false
		}
	}()
	return pk.Pick(x, y, z, ren)
}

// safePickDepth picks with pk and returns the depth of its hit,
// treating a panic in the pick or the depth query as a miss.
func safePickDepth(pk Picker, x, y, z float32, ren Renderer) (hit bool, depth float32) {
	defer func() {
		if r := recover(); r != nil {
			logPickerPanic(pk, r)
			hit, depth = false, 0
		}
	}()
	if !pk.Pick(x, y, z, ren) {
		return false, 0
	}
	return true, pickDepth(pk, ren)
}

func logPickerPanic(pk Picker, r any) {
	slog.Warn("picking.Manager: picker failed", "picker", fmt.Sprintf("%T", pk), "err", r)
}
