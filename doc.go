// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package picking arbitrates picks between interactive 3D widgets that
share a render window.

Each widget registers the [Picker]s it uses with a [Manager], keyed by
the widget itself as an opaque owner. When the Manager is enabled, a
pick event runs every registered picker once, and the picker whose hit
is closest to the camera wins: only the widget owning that picker
reacts to the event, so overlapping widgets never fight over the mouse.

Picking is expensive relative to the rest of event handling, so the
Manager caches the winner until the [Interactor] reports a new render.
Every widget asking about the same event then shares one pass.

Widgets must remove themselves with [Manager.RemoveObject] when they
are torn down. The Manager holds no reference to owners beyond the
registration table and does not track their lifetime.
*/
package picking
