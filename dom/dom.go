// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package dom is the element layer the widgets are written against.
//
// Widgets never touch a browser API directly: they create and mutate
// elements through a registered Driver. The js driver binds to the
// browser document while the html driver keeps an in-memory tree,
// which allows testing in non-browser environments.
package dom

// Driver represents the interface to be implemented by drivers.
type Driver interface {
	// NewElement creates a detached element
	NewElement(props Props, children ...Element) Element

	// Body returns the document body
	Body() Element

	// ActiveElement returns the element that currently has focus
	// or nil
	ActiveElement() Element
}

// NewElement creates a new element using the registered driver.
//
// While the children can be specified here, they can also be modified
// via Element.InsertChild/RemoveChild or AppendChild
func NewElement(props Props, children ...Element) Element {
	return driver.NewElement(props, children...)
}

// Body returns the body of the document managed by the registered
// driver.
func Body() Element {
	return driver.Body()
}

// ActiveElement returns the focused element of the registered driver.
func ActiveElement() Element {
	return driver.ActiveElement()
}

// Element represents a raw DOM element to be implemented by a
// driver
type Element interface {
	// SetProp updates the prop to the provided value
	SetProp(key string, value interface{})

	// Props returns the props last applied to the element
	Props() Props

	// Value is the equivalent of HTMLInputElement.value for inputs
	// and the text content otherwise
	Value() string

	// TabIndex returns the effective tab index, taking the
	// element kind into account when no explicit index is set
	TabIndex() int

	// Children returns a readonly slice of children
	Children() []Element

	// Parent returns the parent element or nil if detached
	Parent() Element

	// RemoveChild remove a child element at the provided index
	RemoveChild(index int)

	// InsertChild inserts a child element at the provided index
	InsertChild(index int, elt Element)

	// AddEventListener registers a handler for the event kind
	// ("click", "keydown", "keyup", "mouseover", "change")
	AddEventListener(kind string, h *EventHandler)

	// RemoveEventListener undoes AddEventListener
	RemoveEventListener(kind string, h *EventHandler)

	// Focus moves keyboard focus to the element
	Focus()

	// Click dispatches a click on the element
	Click()

	// Rect returns the layout box of the element relative to its
	// offset parent
	Rect() Rect

	// Close releases any resources held by this resource
	Close()
}

// Rect is the offset geometry of an element.
type Rect struct {
	Left, Top, Width, Height float64
}

// Props represents the props of an element
type Props struct {
	Styles
	Tag         string
	ID          string
	ClassName   string
	Title       string
	TextContent string
	Type        string
	Href        string

	// TabIndex is the raw tabindex attribute. Empty means the
	// element kind decides.
	TabIndex string
	ColSpan  int

	OnChange *EventHandler
	OnClick  *EventHandler
}

// ToMap returns the map version of props (useful for diffs)
func (p Props) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"Tag":         p.Tag,
		"ID":          p.ID,
		"ClassName":   p.ClassName,
		"Title":       p.Title,
		"TextContent": p.TextContent,
		"Type":        p.Type,
		"Href":        p.Href,
		"TabIndex":    p.TabIndex,
		"ColSpan":     p.ColSpan,
		"Styles":      p.Styles,
		"OnChange":    p.OnChange,
		"OnClick":     p.OnClick,
	}
}

// EventHandler is struct to hold a callback function
//
// This is needed simply to make Props be comparable (which makes it
// easier to see if anything has changed)
type EventHandler struct {
	Handle func(Event)
}

// Event is the subset of the browser event API the widgets use.
type Event interface {
	// Type is the event kind such as "click" or "keydown"
	Type() string

	// Value is the value of the target at dispatch time
	Value() string

	// Key is the KeyboardEvent.key value ("Tab", "Enter", "Escape")
	Key() string
	ShiftKey() bool

	Target() Element
	CurrentTarget() Element

	PreventDefault()
	DefaultPrevented() bool
	StopPropagation()

	EpochNano() int64
}

// Key names used by the widgets
const (
	KeyTab    = "Tab"
	KeyEnter  = "Enter"
	KeyEscape = "Escape"
)

// RegisterDriver allows drivers to register their concrete
// implementation
func RegisterDriver(d Driver) (old Driver) {
	old, driver = driver, d
	return old
}

var driver Driver
