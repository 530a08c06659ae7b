// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package js implements a basic gopherjs driver for dom
package js

import (
	"strconv"
	"strings"
	"time"
	"unsafe"

	"github.com/dotchain/widgets/dom"
	"github.com/gopherjs/gopherjs/js"
)

func init() {
	dom.RegisterDriver(current)
}

var current = &driver{Nodes: js.Global.Get("WeakMap").New()}

type driver struct {
	// Nodes maps DOM nodes to their element wrapper so that the
	// same node always yields the same dom.Element. It is weak so
	// that nodes dropped by the page do not stay reachable.
	Nodes *js.Object
}

type listenerKey struct {
	kind    string
	handler *dom.EventHandler
}

func (d *driver) NewElement(props dom.Props, children ...dom.Element) dom.Element {
	tag := strings.ToLower(props.Tag)
	if tag == "" {
		tag = "div"
	}
	elt := d.wrap(js.Global.Get("document").Call("createElement", tag))
	elt.props.Tag = props.Tag
	for k, v := range props.ToMap() {
		elt.SetProp(k, v)
	}
	for kk, child := range children {
		elt.InsertChild(kk, child)
	}
	return elt
}

func (d *driver) Body() dom.Element {
	return d.wrap(js.Global.Get("document").Get("body"))
}

func (d *driver) ActiveElement() dom.Element {
	n := js.Global.Get("document").Get("activeElement")
	if n == nil || n == js.Undefined {
		return nil
	}
	return d.wrap(n)
}

func (d *driver) wrap(n *js.Object) *element {
	if ok := d.Nodes.Call("has", n).Bool(); ok {
		jso := d.Nodes.Call("get", n)
		return (*element)(unsafe.Pointer(jso.Unsafe())) // nolint
	}
	e := &element{n: n, d: d, listeners: map[listenerKey]*js.Object{}}
	e.props = dom.ReadProps(e.tag(), e.attribute)
	d.Nodes.Call("set", n, js.InternalObject(e))
	return e
}

// QuerySelector wraps document.querySelector. It returns nil if
// nothing matches.
func QuerySelector(selector string) dom.Element {
	n := js.Global.Get("document").Call("querySelector", selector)
	if n == nil {
		return nil
	}
	return current.wrap(n)
}

type element struct {
	n         *js.Object
	d         *driver
	props     dom.Props
	listeners map[listenerKey]*js.Object
}

func (e *element) tag() string {
	return strings.ToLower(e.n.Get("tagName").String())
}

func (e *element) attribute(key string) string {
	if v := e.n.Call("getAttribute", key); v != nil {
		return v.String()
	}
	return ""
}

func (e *element) setAttribute(key, val string) {
	if val == "" {
		e.n.Call("removeAttribute", key)
	} else {
		e.n.Call("setAttribute", key, val)
	}
}

func (e *element) Props() dom.Props {
	return e.props
}

func (e *element) SetProp(key string, value interface{}) {
	switch key {
	case "Tag":
		tag := strings.ToLower(value.(string))
		if tag == "" {
			tag = "div"
		}
		if tag != e.tag() {
			panic("Cannot change the tag of an element: " + tag)
		}
		e.props.Tag = value.(string)
	case "ID":
		e.props.ID = value.(string)
		e.setAttribute("id", e.props.ID)
	case "ClassName":
		e.props.ClassName = value.(string)
		e.setAttribute("class", e.props.ClassName)
	case "Title":
		e.props.Title = value.(string)
		e.setAttribute("title", e.props.Title)
	case "Type":
		e.props.Type = value.(string)
		e.setAttribute("type", e.props.Type)
	case "Href":
		e.props.Href = value.(string)
		e.setAttribute("href", e.props.Href)
	case "TabIndex":
		e.props.TabIndex = value.(string)
		e.setAttribute("tabindex", e.props.TabIndex)
	case "ColSpan":
		e.props.ColSpan = value.(int)
		span := ""
		if e.props.ColSpan > 0 {
			span = strconv.Itoa(e.props.ColSpan)
		}
		e.setAttribute("colspan", span)
	case "TextContent":
		e.props.TextContent = value.(string)
		if e.tag() == "input" {
			e.n.Set("value", e.props.TextContent)
		} else {
			e.n.Set("textContent", e.props.TextContent)
		}
	case "Styles":
		e.props.Styles = value.(dom.Styles)
		e.setAttribute("style", e.props.Styles.String())
	case "OnChange":
		e.swapHandler("change", e.props.OnChange, value.(*dom.EventHandler))
		e.props.OnChange = value.(*dom.EventHandler)
	case "OnClick":
		e.swapHandler("click", e.props.OnClick, value.(*dom.EventHandler))
		e.props.OnClick = value.(*dom.EventHandler)
	default:
		panic("Unknown key: " + key)
	}
}

func (e *element) swapHandler(kind string, before, after *dom.EventHandler) {
	if before == after {
		return
	}
	if before != nil {
		e.RemoveEventListener(kind, before)
	}
	if after != nil {
		e.AddEventListener(kind, after)
	}
}

func (e *element) Value() string {
	if e.tag() == "input" {
		return e.n.Get("value").String()
	}
	return e.n.Get("textContent").String()
}

func (e *element) TabIndex() int {
	return e.n.Get("tabIndex").Int()
}

func (e *element) Children() []dom.Element {
	result := []dom.Element{}
	for n := e.n.Get("firstElementChild"); n != nil; n = n.Get("nextElementSibling") {
		result = append(result, e.d.wrap(n))
	}
	return result
}

func (e *element) Parent() dom.Element {
	n := e.n.Get("parentElement")
	if n == nil {
		return nil
	}
	return e.d.wrap(n)
}

func (e *element) RemoveChild(index int) {
	n := e.n.Get("children").Index(index)
	e.n.Call("removeChild", n)
}

func (e *element) InsertChild(index int, elt dom.Element) {
	n := elt.(*element).n
	if p := n.Get("parentElement"); p != nil {
		if p == e.n {
			for kk, child := range e.Children() {
				if child == elt {
					if kk < index {
						index--
					}
					break
				}
			}
		}
		p.Call("removeChild", n)
	}

	if ref := e.n.Get("children").Index(index); ref != nil && ref != js.Undefined {
		e.n.Call("insertBefore", n, ref)
	} else {
		e.n.Call("appendChild", n)
	}
}

func (e *element) AddEventListener(kind string, h *dom.EventHandler) {
	key := listenerKey{kind, h}
	if _, ok := e.listeners[key]; ok {
		return
	}
	fn := js.MakeFunc(func(this *js.Object, args []*js.Object) interface{} {
		h.Handle(&event{args[0], e.d})
		return nil
	})
	e.listeners[key] = fn
	e.n.Call("addEventListener", kind, fn, false)
}

func (e *element) RemoveEventListener(kind string, h *dom.EventHandler) {
	key := listenerKey{kind, h}
	if fn, ok := e.listeners[key]; ok {
		delete(e.listeners, key)
		e.n.Call("removeEventListener", kind, fn, false)
	}
}

func (e *element) Focus() {
	e.n.Call("focus")
}

func (e *element) Click() {
	e.n.Call("click")
}

func (e *element) Rect() dom.Rect {
	return dom.Rect{
		Left:   e.n.Get("offsetLeft").Float(),
		Top:    e.n.Get("offsetTop").Float(),
		Width:  e.n.Get("offsetWidth").Float(),
		Height: e.n.Get("offsetHeight").Float(),
	}
}

func (e *element) Close() {
	for key, fn := range e.listeners {
		e.n.Call("removeEventListener", key.kind, fn, false)
	}
	e.listeners = map[listenerKey]*js.Object{}
	e.props.OnClick, e.props.OnChange = nil, nil
	e.d.Nodes.Call("delete", e.n)
}

// DOMNode returns the underlying browser node
func (e *element) DOMNode() *js.Object {
	return e.n
}

type event struct {
	o *js.Object
	d *driver
}

func (e *event) Type() string   { return e.o.Get("type").String() }
func (e *event) Key() string    { return e.o.Get("key").String() }
func (e *event) ShiftKey() bool { return e.o.Get("shiftKey").Bool() }

func (e *event) Value() string {
	return e.d.wrap(e.o.Get("target")).Value()
}

func (e *event) Target() dom.Element {
	return e.d.wrap(e.o.Get("target"))
}

func (e *event) CurrentTarget() dom.Element {
	return e.d.wrap(e.o.Get("currentTarget"))
}

func (e *event) PreventDefault()        { e.o.Call("preventDefault") }
func (e *event) DefaultPrevented() bool { return e.o.Get("defaultPrevented").Bool() }
func (e *event) StopPropagation()       { e.o.Call("stopPropagation") }
func (e *event) EpochNano() int64       { return time.Now().UnixNano() }
