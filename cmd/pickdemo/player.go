// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/muesli/termenv"

	"cogentcore.org/picking"
	"cogentcore.org/picking/render"
	"cogentcore.org/picking/widgets"
)

// Player replays scene events over a window of handles sharing
// one picking manager.
type Player struct {
	Window  *render.Window
	Manager *picking.Manager

	// Handles that are still open, in registration order.
	Handles []*widgets.Handle

	out *termenv.Output
}

// NewPlayer returns a player for the given scene, with a manager
// using the given settings, writing to the given output.
func NewPlayer(sc *Scene, st picking.Settings, out *termenv.Output) *Player {
	pl := &Player{Window: sc.NewWindow(), Manager: picking.NewManager(), out: out}
	pl.Manager.ApplySettings(st).SetInteractor(pl.Window)
	vp := pl.Window.Viewports[0]
	for i := range sc.Handles {
		h := sc.Handles[i].NewHandle(vp)
		h.SetManager(pl.Manager)
		pl.Handles = append(pl.Handles, h)
	}
	slog.Debug("pickdemo: scene loaded", "handles", len(pl.Handles), "settings", st)
	return pl
}

// Play parses and replays the given event lines. Lines that cannot be
// parsed are logged and skipped; it returns the first error from a
// replayed event.
func (pl *Player) Play(lines []string) error {
	for _, ln := range lines {
		ev, err := ParseEvent(ln)
		if errors.Log(err) != nil {
			continue
		}
		if err := pl.Step(ev); err != nil {
			return err
		}
	}
	return nil
}

// Step replays one event and prints its outcome.
func (pl *Player) Step(ev Event) error {
	switch ev.Kind {
	case MoveEvent:
		pl.Window.MouseMove(ev.X, ev.Y)
		var names []string
		for _, h := range pl.Handles {
			if h.ComputeInteractionState(ev.X, ev.Y) == widgets.Hovering {
				names = append(names, pl.styled(h.Name+"/"+h.Active.Name))
			}
		}
		result := "-"
		if len(names) > 0 {
			result = strings.Join(names, " ")
		}
		fmt.Fprintf(pl.out, "%s: %s\n", ev, result)
	case RenderEvent:
		pl.Window.Render()
		fmt.Fprintf(pl.out, "%s %d\n", ev, pl.Window.RenderCount())
	case CloseEvent:
		i := slices.IndexFunc(pl.Handles, func(h *widgets.Handle) bool { return h.Name == ev.Name })
		if i < 0 {
			return fmt.Errorf("close: no handle named %q", ev.Name)
		}
		pl.Handles[i].Close()
		pl.Handles = slices.Delete(pl.Handles, i, i+1)
		fmt.Fprintf(pl.out, "%s: %d picker(s)\n", ev, pl.Manager.NumberOfPickers())
	}
	return nil
}

// styled returns the given hovered name in bold green.
func (pl *Player) styled(s string) string {
	return pl.out.String(s).Foreground(pl.out.Color("2")).Bold().String()
}
