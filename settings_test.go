// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picking_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/picking"
)

func TestDefaultSettings(t *testing.T) {
	assert.Equal(t, Settings{OptimizeOnInteractorEvents: true}, DefaultSettings())
	assert.Equal(t, DefaultSettings(), NewManager().Settings())
}

func TestSettingsSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "picking.toml")
	st := Settings{Enabled: true, OptimizeOnInteractorEvents: false}
	require.NoError(t, SaveSettings(st, fn))

	got, err := OpenSettings(fn)
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestOpenSettingsPartial(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "picking.toml")
	require.NoError(t, os.WriteFile(fn, []byte("enabled = true\n"), 0o666))

	st, err := OpenSettings(fn)
	require.NoError(t, err)
	assert.True(t, st.Enabled)
	assert.True(t, st.OptimizeOnInteractorEvents)
}

func TestOpenSettingsErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenSettings(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("enabled = \n"), 0o666))
	st, err := OpenSettings(fn)
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), st)
}

func TestApplySettings(t *testing.T) {
	pm := NewManager()
	pm.ApplySettings(Settings{Enabled: true, OptimizeOnInteractorEvents: false})
	assert.True(t, pm.Enabled())
	assert.False(t, pm.OptimizeOnInteractorEvents())
	assert.Equal(t, Settings{Enabled: true}, pm.Settings())
}
