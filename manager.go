// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picking

import (
	"fmt"
	"log/slog"
	"slices"
)

// Manager keeps track of the pickers registered by interactive widgets
// and decides which single picker wins each pick event. See the package
// documentation for an overview.
//
// A Manager is used from the event loop only and is not safe for
// concurrent use.
type Manager struct {

	// enabled turns on arbitration between pickers. When off, every pick
	// query goes straight to the given picker.
	enabled bool

	// optimizeOnInteractorEvents reuses the last winner until the
	// interactor reports a new render.
	optimizeOnInteractorEvents bool

	// interactor supplies event positions and render counts.
	// It is not owned by the Manager.
	interactor Interactor

	// table of registered pickers and their owners
	table pickerTable

	// cache of the last selection
	cache selection
}

// selection records the winner of the last full selection pass
// and the render count it was computed at.
type selection struct {
	winner      Picker
	renderCount int64
}

// NewManager returns a new disabled [Manager] with no registered pickers.
func NewManager() *Manager {
	pm := &Manager{}
	pm.Defaults()
	return pm
}

// Defaults sets the default options: disabled, optimized on
// interactor events.
func (pm *Manager) Defaults() {
	st := DefaultSettings()
	pm.enabled = st.Enabled
	pm.optimizeOnInteractorEvents = st.OptimizeOnInteractorEvents
	pm.resetCache()
}

func (pm *Manager) resetCache() {
	pm.cache = selection{renderCount: -1}
}

// Enabled returns whether the Manager arbitrates picks.
func (pm *Manager) Enabled() bool {
	return pm.enabled
}

// SetEnabled sets whether the Manager arbitrates picks.
// Any change forces a fresh selection on the next pick.
func (pm *Manager) SetEnabled(enabled bool) *Manager {
	if pm.enabled == enabled {
		return pm
	}
	pm.enabled = enabled
	pm.resetCache()
	return pm
}

// EnabledOn enables the Manager.
func (pm *Manager) EnabledOn() { pm.SetEnabled(true) }

// EnabledOff disables the Manager.
func (pm *Manager) EnabledOff() { pm.SetEnabled(false) }

// OptimizeOnInteractorEvents returns whether the last winner is reused
// until the next render.
func (pm *Manager) OptimizeOnInteractorEvents() bool {
	return pm.optimizeOnInteractorEvents
}

// SetOptimizeOnInteractorEvents sets whether the last winner is reused
// until the next render.
func (pm *Manager) SetOptimizeOnInteractorEvents(optimize bool) *Manager {
	if pm.optimizeOnInteractorEvents == optimize {
		return pm
	}
	pm.optimizeOnInteractorEvents = optimize
	pm.resetCache()
	return pm
}

// Interactor returns the interactor, which may be nil.
func (pm *Manager) Interactor() Interactor {
	return pm.interactor
}

// SetInteractor sets the interactor that supplies event positions and
// render counts, which may be nil. The Manager only keeps a reference
// to it and never extends its lifetime.
func (pm *Manager) SetInteractor(in Interactor) *Manager {
	if isComparable(in) && pm.interactor == in {
		return pm
	}
	pm.interactor = in
	pm.resetCache()
	return pm
}

// AddPicker registers the given picker under the given owner,
// which may be nil. Registering the same pair again does nothing,
// as does a nil picker.
func (pm *Manager) AddPicker(pk Picker, owner any) {
	if pk == nil {
		return
	}
	if !isComparable(pk) || !isComparable(owner) {
		slog.Warn("picking.Manager: AddPicker: picker and owner must be comparable", "picker", fmt.Sprintf("%T", pk), "owner", fmt.Sprintf("%T", owner))
		return
	}
	linked, added := pm.table.link(pk, owner)
	if added {
		pm.resetCache()
	}
	if linked {
		slog.Debug("picking.Manager: added picker", "picker", fmt.Sprintf("%T", pk), "owner", fmt.Sprintf("%T", owner), "pickers", pm.table.len())
	}
}

// RemovePicker removes the given picker along with all of its owners.
// It does nothing if the picker is not registered.
func (pm *Manager) RemovePicker(pk Picker) {
	if !pm.table.deletePicker(pk) {
		return
	}
	pm.resetCache()
	slog.Debug("picking.Manager: removed picker", "picker", fmt.Sprintf("%T", pk), "pickers", pm.table.len())
}

// RemovePickerOwner removes the link between the given picker and the
// given owner, which may be nil. The picker is removed once it has no
// owners left.
func (pm *Manager) RemovePickerOwner(pk Picker, owner any) {
	if !isComparable(owner) {
		return
	}
	unlinked, dropped := pm.table.unlink(pk, owner)
	if !unlinked {
		return
	}
	if dropped {
		pm.resetCache()
	}
	slog.Debug("picking.Manager: removed picker owner", "picker", fmt.Sprintf("%T", pk), "owner", fmt.Sprintf("%T", owner), "pickers", pm.table.len())
}

// RemoveObject removes the given owner from every picker it is
// registered with. Pickers left with no owners are removed.
// Owners must call this when they are torn down.
func (pm *Manager) RemoveObject(owner any) {
	if !isComparable(owner) {
		return
	}
	unlinked, dropped := pm.table.unlinkAll(owner)
	if unlinked == 0 {
		return
	}
	if dropped > 0 {
		pm.resetCache()
	}
	slog.Debug("picking.Manager: removed object", "owner", fmt.Sprintf("%T", owner), "links", unlinked, "pickers", pm.table.len())
}

// NumberOfPickers returns the number of distinct registered pickers.
func (pm *Manager) NumberOfPickers() int {
	return pm.table.len()
}

// NumberOfObjectsLinked returns the number of owners registered under
// the given picker, counting a nil owner as one. It returns 0 for a nil
// or unregistered picker.
func (pm *Manager) NumberOfObjectsLinked(pk Picker) int {
	idx, ok := pm.table.index(pk)
	if !ok {
		return 0
	}
	return len(pm.table.Values[idx])
}

// Pickers returns the registered pickers in registration order.
func (pm *Manager) Pickers() []Picker {
	return slices.Clone(pm.table.pickers())
}

// Owners returns the owners registered under the given picker.
func (pm *Manager) Owners(pk Picker) []any {
	idx, ok := pm.table.index(pk)
	if !ok {
		return nil
	}
	return slices.Clone(pm.table.Values[idx])
}

// String returns a description of the Manager state and its table.
func (pm *Manager) String() string {
	s := fmt.Sprintf("picking.Manager: enabled: %v, optimize on interactor events: %v, interactor: %T, pickers: %d\n",
		pm.enabled, pm.optimizeOnInteractorEvents, pm.interactor, pm.table.len())
	return s + pm.table.String()
}
