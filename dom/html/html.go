// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package html implements an in-memory html driver for dom
//
// It uses "golang.org/x/net/html" as the basis. Elements render to
// HTML via fmt.Sprint and events are dispatched synchronously with
// bubbling, which is enough to exercise widgets without a browser.
package html

import (
	"bytes"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/dotchain/widgets/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func init() {
	dom.RegisterDriver(current)
}

var current = &driver{}

type driver struct {
	body   *element
	active *element
}

func (d *driver) NewElement(props dom.Props, children ...dom.Element) dom.Element {
	tag := strings.ToLower(props.Tag)
	if tag == "" {
		tag = "div"
	}
	a := atom.Lookup([]byte(tag))
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     tag,
	}
	elt := &element{Node: n}
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
	if d.body == nil {
		d.body = d.NewElement(dom.Props{Tag: "body"}).(*element)
	}
	return d.body
}

func (d *driver) ActiveElement() dom.Element {
	if d.active == nil {
		return nil
	}
	return d.active
}

// Parse adopts the first element of an HTML fragment, the way the
// browser driver wraps nodes that are already on the page. Props are
// read back from the attributes; the element is not attached to the
// body.
func Parse(markup string) (dom.Element, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return adopt(n, nil), nil
		}
	}
	return nil, errors.New("html: no element in markup")
}

func adopt(n *html.Node, parent *element) *element {
	e := &element{Node: n, parent: parent}
	e.props = dom.ReadProps(n.Data, e.attribute)
	e.sortAttr()
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			e.children = append(e.children, adopt(c, e))
		}
	}
	return e
}

// Reset discards the current document and all tracked resources.
func Reset() {
	current.body, current.active = nil, nil
	resources = map[*listener]string{}
}

type element struct {
	*html.Node
	props     dom.Props
	parent    *element
	children  []dom.Element
	listeners []*listener
	rect      dom.Rect
}

func (e *element) String() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.Node); err != nil {
		panic(err)
	}
	return buf.String()
}

func (e *element) sortAttr() {
	sort.Slice(e.Node.Attr, func(i, j int) bool {
		return e.Node.Attr[i].Key < e.Node.Attr[j].Key
	})
}

func (e *element) Props() dom.Props {
	return e.props
}

func (e *element) SetProp(key string, value interface{}) {
	defer e.sortAttr()
	switch key {
	case "Tag":
		tag := strings.ToLower(value.(string))
		if tag == "" {
			tag = "div"
		}
		if tag != e.Node.Data {
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
		e.setText(e.props.TextContent)
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

func (e *element) setText(s string) {
	if e.Node.Data == "input" {
		e.setAttribute("value", s)
		return
	}

	for _, child := range e.children {
		child.(*element).parent = nil
	}
	e.children = nil
	for e.Node.FirstChild != nil {
		e.Node.RemoveChild(e.Node.FirstChild)
	}

	if s != "" {
		e.Node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

func (e *element) attribute(key string) string {
	for _, a := range e.Node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func (e *element) setAttribute(key, val string) {
	e.removeAttribute(key)
	if val != "" {
		e.Node.Attr = append(e.Node.Attr, html.Attribute{Key: key, Val: val})
	}
}

func (e *element) removeAttribute(key string) {
	attr := e.Node.Attr
	for kk, a := range attr {
		if a.Key == key {
			copy(attr[kk:], attr[kk+1:])
			e.Node.Attr = attr[:len(attr)-1]
			return
		}
	}
}

func (e *element) Value() string {
	if e.Node.Data == "input" {
		return e.attribute("value")
	}

	var buf strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				buf.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(e.Node)
	return buf.String()
}

// SetValue updates the value of an input (or the text of any other
// element) and fires a change event.
func SetValue(elt dom.Element, s string) {
	e := elt.(*element)
	e.SetProp("TextContent", s)
	dispatch(e, &event{kind: "change"})
}

var naturallyFocusable = map[string]bool{
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
}

func (e *element) TabIndex() int {
	if e.props.TabIndex != "" {
		if n, err := strconv.Atoi(e.props.TabIndex); err == nil {
			return n
		}
	}
	if naturallyFocusable[e.Node.Data] || e.Node.Data == "a" && e.props.Href != "" {
		return 0
	}
	return -1
}

func (e *element) Children() []dom.Element {
	return e.children
}

func (e *element) Parent() dom.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *element) RemoveChild(index int) {
	child := e.children[index].(*element)
	c := make([]dom.Element, len(e.children)-1)
	copy(c, e.children[:index])
	copy(c[index:], e.children[index+1:])
	e.children = c
	child.parent = nil
	e.Node.RemoveChild(child.Node)
}

func (e *element) InsertChild(index int, elt dom.Element) {
	child := elt.(*element)
	if child.parent != nil {
		for kk, ee := range child.parent.children {
			if ee == elt {
				if child.parent == e && kk < index {
					index--
				}
				child.parent.RemoveChild(kk)
				break
			}
		}
	}

	if len(e.children) == 0 {
		// drop any text content
		for e.Node.FirstChild != nil {
			e.Node.RemoveChild(e.Node.FirstChild)
		}
	}

	c := make([]dom.Element, len(e.children)+1)
	copy(c, e.children[:index])
	c[index] = elt
	copy(c[index+1:], e.children[index:])
	e.children = c
	child.parent = e

	if index+1 < len(e.children) {
		e.Node.InsertBefore(child.Node, e.children[index+1].(*element).Node)
	} else {
		e.Node.AppendChild(child.Node)
	}
}

func (e *element) Focus() {
	current.active = e
}

func (e *element) Click() {
	dispatch(e, &event{kind: "click"})
}

func (e *element) Rect() dom.Rect {
	return e.rect
}

// SetGeometry sets the layout box reported by Rect. The driver does
// no layout of its own.
func SetGeometry(elt dom.Element, r dom.Rect) {
	elt.(*element).rect = r
}

func (e *element) Close() {
	for _, l := range e.listeners {
		delete(resources, l)
	}
	e.listeners = nil
	e.props.OnClick, e.props.OnChange = nil, nil
	if current.active == e {
		current.active = nil
	}
}
