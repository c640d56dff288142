// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/picking"
)

const handlesScene = "testdata/handles.yaml"

func play(t *testing.T, st picking.Settings) []string {
	t.Helper()
	sc, err := OpenScene(handlesScene)
	require.NoError(t, err)
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	require.NoError(t, NewPlayer(sc, st, out).Play(sc.Events))
	return strings.Split(strings.TrimSpace(buf.String()), "\n")
}

func TestPlayOptimized(t *testing.T) {
	lines := play(t, picking.Settings{Enabled: true, OptimizeOnInteractorEvents: true})
	assert.Equal(t, []string{
		"move 50 50: near/knob",
		"render 1",
		"move 50 50: near/knob",
		"move 90 50: near/knob", // no render since the last pick
		"render 2",
		"move 90 50: far/plate",
		"close far: 1 picker(s)",
		"render 3",
		"move 90 50: -",
	}, lines)
}

func TestPlayNotOptimized(t *testing.T) {
	lines := play(t, picking.Settings{Enabled: true})
	assert.Equal(t, "move 90 50: far/plate", lines[3])
}

func TestPlayDisabled(t *testing.T) {
	lines := play(t, picking.Settings{OptimizeOnInteractorEvents: true})
	assert.Equal(t, "move 50 50: near/knob far/plate", lines[0])
	assert.Equal(t, "move 90 50: far/plate", lines[3])
}

func TestPlayCloseUnknown(t *testing.T) {
	sc, err := OpenScene(handlesScene)
	require.NoError(t, err)
	var buf bytes.Buffer
	pl := NewPlayer(sc, picking.DefaultSettings(), termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)))
	assert.Error(t, pl.Play([]string{"close nothing"}))
	assert.Equal(t, 2, pl.Manager.NumberOfPickers())
}

func TestParseEvent(t *testing.T) {
	ev, err := ParseEvent("move 3 4")
	require.NoError(t, err)
	assert.Equal(t, Event{Kind: MoveEvent, X: 3, Y: 4}, ev)
	assert.Equal(t, "move 3 4", ev.String())

	ev, err = ParseEvent("  render ")
	require.NoError(t, err)
	assert.Equal(t, RenderEvent, ev.Kind)

	ev, err = ParseEvent("close near")
	require.NoError(t, err)
	assert.Equal(t, Event{Kind: CloseEvent, Name: "near"}, ev)
	assert.Equal(t, "close near", ev.String())

	for _, bad := range []string{"", "move 1", "move a 2", "move 1 b", "render 1", "close", "jump"} {
		_, err := ParseEvent(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseScene(t *testing.T) {
	sc, err := ParseScene([]byte(`
size: [200, 100]
camera:
  pos: [10, 0, 0]
  target: [0, 0, 0]
  up: [0, 1, 0]
  fov: 45
handles:
  - name: h
    tolerance: 0.5
    parts:
      - name: p
        min: [0, 0, 0]
        max: [1, 2, 3]
`))
	require.NoError(t, err)
	w := sc.NewWindow()
	cm := w.Viewports[0].Camera
	assert.Equal(t, math32.Vec3(10, 0, 0), cm.Pos)
	assert.Equal(t, float32(45), cm.FOV)
	assert.Equal(t, 200, w.Viewports[0].Geom.Dx())

	h := sc.Handles[0].NewHandle(w.Viewports[0])
	assert.Equal(t, "h", h.Name)
	assert.Equal(t, float32(0.5), h.Picker.Tolerance)
	require.Len(t, h.Picker.Props, 1)
	assert.Equal(t, math32.B3(0, 0, 0, 1, 2, 3), h.Picker.Props[0].BBox)

	// camera without an up direction
	sc, err = ParseScene([]byte("size: [100, 100]\ncamera:\n  pos: [0, 0, 10]\n  target: [0, 0, 0]\n"))
	require.NoError(t, err)
	vp := sc.NewWindow().Viewports[0]
	assert.Equal(t, math32.Vec3(0, 1, 0), vp.Camera.UpDir)
	assert.NotEqual(t, vp.Ray(50, 50).Dir, vp.Ray(0, 0).Dir)

	_, err = ParseScene([]byte("size: [0, 10]\n"))
	assert.Error(t, err)
	_, err = ParseScene([]byte("size: {\n"))
	assert.Error(t, err)
	_, err = OpenScene(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSettings(t *testing.T) {
	st, err := loadSettings("", nil)
	require.NoError(t, err)
	assert.Equal(t, picking.Settings{Enabled: true, OptimizeOnInteractorEvents: true}, st)

	st, err = loadSettings("testdata/settings.toml", nil)
	require.NoError(t, err)
	assert.Equal(t, picking.Settings{}, st)

	_, err = loadSettings(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.Error(t, err)
}

func TestLoadSettingsEnv(t *testing.T) {
	t.Setenv("PICKDEMO_OPTIMIZE_ON_INTERACTOR_EVENTS", "false")
	st, err := loadSettings("", nil)
	require.NoError(t, err)
	assert.False(t, st.OptimizeOnInteractorEvents)
	assert.True(t, st.Enabled)
}

func TestLoadSettingsFlags(t *testing.T) {
	cmd := &cobra.Command{}
	addSettingsFlags(cmd)
	require.NoError(t, cmd.Flags().Set("enabled", "true"))
	st, err := loadSettings("testdata/settings.toml", cmd.Flags())
	require.NoError(t, err)
	assert.True(t, st.Enabled)
	assert.False(t, st.OptimizeOnInteractorEvents)
}

func TestSettingsCommand(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"settings", "--optimize=false", "-q"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "enabled = true")
	assert.Contains(t, buf.String(), "optimize_on_interactor_events = false")
}

func TestRunCommand(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"run", handlesScene, "-q"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "close far: 1 picker(s)")
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelFromFlags(true, true, true).String())
	assert.Equal(t, "INFO", LevelFromFlags(false, true, true).String())
	assert.Equal(t, "ERROR", LevelFromFlags(false, false, true).String())
	assert.Equal(t, "WARN", LevelFromFlags(false, false, false).String())
}
