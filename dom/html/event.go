// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package html

import (
	"time"

	"github.com/dotchain/widgets/dom"
)

type listener struct {
	kind    string
	handler *dom.EventHandler
}

// resources tracks live listeners so that tests can detect leaks
var resources = map[*listener]string{}

// GetCurrentResources returns a description of every listener that
// is still attached to an element
func GetCurrentResources() []string {
	result := []string{}
	for _, desc := range resources {
		result = append(result, desc)
	}
	return result
}

func (e *element) AddEventListener(kind string, h *dom.EventHandler) {
	l := &listener{kind, h}
	e.listeners = append(e.listeners, l)
	resources[l] = "<" + e.Node.Data + "> " + kind
}

func (e *element) RemoveEventListener(kind string, h *dom.EventHandler) {
	for kk, l := range e.listeners {
		if l.kind == kind && l.handler == h {
			e.listeners = append(e.listeners[:kk:kk], e.listeners[kk+1:]...)
			delete(resources, l)
			return
		}
	}
}

type event struct {
	kind      string
	key       string
	shift     bool
	target    *element
	current   *element
	prevented bool
	stopped   bool
	epoch     int64
}

func (e *event) Type() string               { return e.kind }
func (e *event) Key() string                { return e.key }
func (e *event) ShiftKey() bool             { return e.shift }
func (e *event) Target() dom.Element        { return e.target }
func (e *event) CurrentTarget() dom.Element { return e.current }
func (e *event) PreventDefault()            { e.prevented = true }
func (e *event) DefaultPrevented() bool     { return e.prevented }
func (e *event) StopPropagation()           { e.stopped = true }
func (e *event) EpochNano() int64           { return e.epoch }

func (e *event) Value() string {
	return e.target.Value()
}

// dispatch delivers the event to target and then its ancestors until
// propagation is stopped. It reports whether the default action was
// prevented.
func dispatch(target *element, ev *event) bool {
	ev.target = target
	ev.epoch = time.Now().UnixNano()

	for n := target; n != nil && !ev.stopped; n = n.parent {
		ev.current = n
		for _, l := range append([]*listener(nil), n.listeners...) {
			if l.kind == ev.kind {
				l.handler.Handle(ev)
			}
		}
	}
	return ev.prevented
}

// Click simulates a click on the element
func Click(elt dom.Element) {
	elt.Click()
}

// MouseOver simulates the pointer entering the element
func MouseOver(elt dom.Element) {
	dispatch(elt.(*element), &event{kind: "mouseover"})
}

// KeyDown simulates a key press on the element and reports whether
// the default action was prevented. The driver does not implement
// default actions such as native tab navigation.
func KeyDown(elt dom.Element, key string, shift bool) bool {
	return dispatch(elt.(*element), &event{kind: "keydown", key: key, shift: shift})
}

// KeyUp simulates a key release on the element and reports whether
// the default action was prevented.
func KeyUp(elt dom.Element, key string) bool {
	return dispatch(elt.(*element), &event{kind: "keyup", key: key})
}

// Focused returns the element that last received focus
func Focused() dom.Element {
	return current.ActiveElement()
}
