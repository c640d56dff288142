// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"

	"cogentcore.org/picking/render"
	"cogentcore.org/picking/widgets"
)

// Scene is the YAML description of a window, its handles, and the
// events to replay over them.
type Scene struct {

	// Size of the window in pixels.
	Size [2]int `yaml:"size"`

	// Camera of the window viewport. The default camera is used if nil.
	Camera *CameraSpec `yaml:"camera"`

	// Handles in registration order.
	Handles []HandleSpec `yaml:"handles"`

	// Events to replay: "move x y", "render" or "close name".
	Events []string `yaml:"events"`
}

// CameraSpec describes a [render.Camera].
type CameraSpec struct {
	Pos    [3]float32 `yaml:"pos"`
	Target [3]float32 `yaml:"target"`
	Up     [3]float32 `yaml:"up"`
	FOV    float32    `yaml:"fov"`
}

// HandleSpec describes a [widgets.Handle].
type HandleSpec struct {
	Name      string     `yaml:"name"`
	Tolerance float32    `yaml:"tolerance"`
	Parts     []PartSpec `yaml:"parts"`
}

// PartSpec describes one box of a handle.
type PartSpec struct {
	Name string     `yaml:"name"`
	Min  [3]float32 `yaml:"min"`
	Max  [3]float32 `yaml:"max"`
}

// EventKinds are the kinds of replayed events.
type EventKinds int32

const (
	// MoveEvent moves the mouse and updates every handle.
	MoveEvent EventKinds = iota

	// RenderEvent renders a new frame.
	RenderEvent

	// CloseEvent closes a handle.
	CloseEvent
)

// Event is one parsed scene event.
type Event struct {
	Kind EventKinds
	X, Y int
	Name string
}

func (ev Event) String() string {
	switch ev.Kind {
	case MoveEvent:
		return fmt.Sprintf("move %d %d", ev.X, ev.Y)
	case RenderEvent:
		return "render"
	default:
		return "close " + ev.Name
	}
}

// ParseEvent parses one event line.
func ParseEvent(s string) (Event, error) {
	fs := strings.Fields(s)
	if len(fs) == 0 {
		return Event{}, fmt.Errorf("empty event")
	}
	switch fs[0] {
	case "move":
		if len(fs) != 3 {
			return Event{}, fmt.Errorf("event %q: move needs x and y", s)
		}
		x, err := strconv.Atoi(fs[1])
		if err != nil {
			return Event{}, fmt.Errorf("event %q: %w", s, err)
		}
		y, err := strconv.Atoi(fs[2])
		if err != nil {
			return Event{}, fmt.Errorf("event %q: %w", s, err)
		}
		return Event{Kind: MoveEvent, X: x, Y: y}, nil
	case "render":
		if len(fs) != 1 {
			return Event{}, fmt.Errorf("event %q: render takes no arguments", s)
		}
		return Event{Kind: RenderEvent}, nil
	case "close":
		if len(fs) != 2 {
			return Event{}, fmt.Errorf("event %q: close needs a handle name", s)
		}
		return Event{Kind: CloseEvent, Name: fs[1]}, nil
	}
	return Event{}, fmt.Errorf("event %q: unknown kind %q", s, fs[0])
}

// ParseScene parses a scene from YAML.
func ParseScene(b []byte) (*Scene, error) {
	sc := &Scene{}
	if err := yaml.Unmarshal(b, sc); err != nil {
		return nil, err
	}
	if sc.Size[0] <= 0 || sc.Size[1] <= 0 {
		return nil, fmt.Errorf("scene size must be positive, got %v", sc.Size)
	}
	return sc, nil
}

// OpenScene reads a scene from the given YAML file.
func OpenScene(filename string) (*Scene, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sc, err := ParseScene(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// NewWindow returns the window described by the scene.
func (sc *Scene) NewWindow() *render.Window {
	w := render.NewWindow(image.Pt(sc.Size[0], sc.Size[1]))
	if cs := sc.Camera; cs != nil {
		cm := &w.Viewports[0].Camera
		cm.Pos = vec3(cs.Pos)
		up := vec3(cs.Up)
		if up == (math32.Vector3{}) {
			up = math32.Vec3(0, 1, 0)
		}
		cm.LookAt(vec3(cs.Target), up)
		if cs.FOV > 0 {
			cm.FOV = cs.FOV
		}
	}
	return w
}

// NewHandle returns the handle described by hs, shown in the
// given viewport.
func (hs *HandleSpec) NewHandle(vp *render.Viewport) *widgets.Handle {
	h := widgets.NewHandle(hs.Name, vp)
	h.Picker.Tolerance = hs.Tolerance
	for _, ps := range hs.Parts {
		h.AddPart(widgets.NewProp(ps.Name, math32.Box3{Min: vec3(ps.Min), Max: vec3(ps.Max)}))
	}
	return h
}

func vec3(v [3]float32) math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}
