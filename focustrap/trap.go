// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package focustrap keeps keyboard focus inside an element.
//
// Tab and Shift+Tab cycle through the focusable elements of the
// subtree (including the root) in document order. The set is captured
// once when the trap is created; elements added later are not part of
// the cycle.
package focustrap

import "github.com/dotchain/widgets/dom"

// Trap holds the captured elements and the enabled state.
type Trap struct {
	elements []dom.Element
	enabled  bool
	onKey    *dom.EventHandler
}

// New captures the focusable elements under root and starts trapping
// immediately.
func New(root dom.Element) *Trap {
	t := &Trap{elements: dom.Focusables(root), enabled: true}
	t.onKey = &dom.EventHandler{Handle: t.keyDown}
	for _, elt := range t.elements {
		elt.AddEventListener("keydown", t.onKey)
	}
	return t
}

// Enable resumes trapping.
func (t *Trap) Enable() {
	t.enabled = true
}

// Disable lets the native tab order take over. The listeners stay
// attached.
func (t *Trap) Disable() {
	t.enabled = false
}

// Enabled reports whether the trap is active.
func (t *Trap) Enabled() bool {
	return t.enabled
}

// Elements returns the captured elements in navigation order.
func (t *Trap) Elements() []dom.Element {
	return t.elements
}

// Close detaches the trap from all captured elements.
func (t *Trap) Close() {
	for _, elt := range t.elements {
		elt.RemoveEventListener("keydown", t.onKey)
	}
	t.elements = nil
}

func (t *Trap) keyDown(e dom.Event) {
	if !t.enabled || e.Key() != dom.KeyTab {
		return
	}

	current := e.CurrentTarget()
	for kk, elt := range t.elements {
		if elt == current {
			t.elements[Step(kk, len(t.elements), e.ShiftKey())].Focus()
			e.PreventDefault()
			e.StopPropagation()
			return
		}
	}
}

// Step returns the index after index in a cycle of n, or the one
// before it when backward is set.
func Step(index, n int, backward bool) int {
	if n <= 1 {
		return index
	}
	if backward {
		return (index - 1 + n) % n
	}
	return (index + 1) % n
}
