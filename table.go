// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picking

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/core/base/keylist"
)

// pickerTable is the registration table: an ordered list of pickers,
// each with its list of owners. Registration order is kept because it
// breaks ties in the selection pass. Owners are unique within each
// list and nil is a valid owner.
type pickerTable struct {
	keylist.List[Picker, []any]
}

func (pt *pickerTable) len() int {
	return pt.Len()
}

// pickers returns the registered pickers in registration order.
func (pt *pickerTable) pickers() []Picker {
	return pt.Keys
}

// index returns the index of the given picker, with false if it is not
// registered. Pickers that cannot be map keys are never registered.
func (pt *pickerTable) index(pk Picker) (int, bool) {
	if pk == nil || !isComparable(pk) {
		return -1, false
	}
	idx := pt.IndexByKey(pk)
	return idx, idx >= 0
}

// link adds owner to the owners of pk, registering pk if needed.
// It returns whether a new link was made and whether pk is a new key.
func (pt *pickerTable) link(pk Picker, owner any) (linked, added bool) {
	idx, ok := pt.index(pk)
	if !ok {
		pt.Set(pk, []any{owner})
		return true, true
	}
	if slices.Contains(pt.Values[idx], owner) {
		return false, false
	}
	pt.Values[idx] = append(pt.Values[idx], owner)
	return true, false
}

// isLinked returns whether owner is registered under pk.
func (pt *pickerTable) isLinked(pk Picker, owner any) bool {
	idx, ok := pt.index(pk)
	if !ok {
		return false
	}
	return slices.Contains(pt.Values[idx], owner)
}

// deletePicker removes pk with all its owners,
// returning false if it is not registered.
func (pt *pickerTable) deletePicker(pk Picker) bool {
	if _, ok := pt.index(pk); !ok {
		return false
	}
	return pt.DeleteByKey(pk)
}

// unlink removes owner from the owners of pk, dropping pk once it has
// no owners left. It returns whether a link was removed and whether pk
// was dropped.
func (pt *pickerTable) unlink(pk Picker, owner any) (unlinked, dropped bool) {
	idx, ok := pt.index(pk)
	if !ok {
		return false, false
	}
	oi := slices.Index(pt.Values[idx], owner)
	if oi < 0 {
		return false, false
	}
	pt.Values[idx] = slices.Delete(pt.Values[idx], oi, oi+1)
	if len(pt.Values[idx]) > 0 {
		return true, false
	}
	pt.DeleteByIndex(idx, idx+1)
	return true, true
}

// unlinkAll removes owner from every picker, dropping pickers left
// without owners. It returns the number of links and pickers removed.
func (pt *pickerTable) unlinkAll(owner any) (unlinked, dropped int) {
	for i := pt.Len() - 1; i >= 0; i-- {
		oi := slices.Index(pt.Values[i], owner)
		if oi < 0 {
			continue
		}
		unlinked++
		pt.Values[i] = slices.Delete(pt.Values[i], oi, oi+1)
		if len(pt.Values[i]) == 0 {
			pt.DeleteByIndex(i, i+1)
			dropped++
		}
	}
	return
}

// pickersFor returns the pickers that have owner registered,
// in registration order.
func (pt *pickerTable) pickersFor(owner any) []Picker {
	var pks []Picker
	for i, pk := range pt.Keys {
		if slices.Contains(pt.Values[i], owner) {
			pks = append(pks, pk)
		}
	}
	return pks
}

// String returns a listing of the table, one picker per line.
func (pt *pickerTable) String() string {
	var b strings.Builder
	for i, pk := range pt.Keys {
		fmt.Fprintf(&b, "%T(%p): %d owner(s)", pk, pk, len(pt.Values[i]))
		for _, ow := range pt.Values[i] {
			if ow == nil {
				b.WriteString(" <nil>")
				continue
			}
			fmt.Fprintf(&b, " %T", ow)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// isComparable returns whether v can be used as a table key.
// A nil interface value is comparable.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
