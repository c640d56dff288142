// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picking

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/reflectx"
)

// Settings are the persistent options of a [Manager].
type Settings struct {

	// Enabled turns on arbitration between registered pickers.
	Enabled bool `toml:"enabled" default:"false"`

	// OptimizeOnInteractorEvents reuses the last winner until the
	// interactor reports a new render.
	OptimizeOnInteractorEvents bool `toml:"optimize_on_interactor_events" default:"true"`
}

// DefaultSettings returns the settings of a new [Manager],
// set from the default struct tags.
func DefaultSettings() Settings {
	var st Settings
	errors.Log(reflectx.SetFromDefaultTags(&st))
	return st
}

// OpenSettings reads settings from the given TOML file.
// Options missing from the file keep their default values.
func OpenSettings(filename string) (Settings, error) {
	st := DefaultSettings()
	if err := tomlx.Open(&st, filename); err != nil {
		return DefaultSettings(), fmt.Errorf("picking.OpenSettings: %w", err)
	}
	return st, nil
}

// SaveSettings writes the given settings to the given TOML file.
func SaveSettings(st Settings, filename string) error {
	return tomlx.Save(&st, filename)
}

// Settings returns the current options of the Manager.
func (pm *Manager) Settings() Settings {
	return Settings{
		Enabled:                    pm.enabled,
		OptimizeOnInteractorEvents: pm.optimizeOnInteractorEvents,
	}
}

// ApplySettings sets the options of the Manager from the given settings.
func (pm *Manager) ApplySettings(st Settings) *Manager {
	pm.SetEnabled(st.Enabled)
	pm.SetOptimizeOnInteractorEvents(st.OptimizeOnInteractorEvents)
	return pm
}
