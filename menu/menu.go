// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package menu turns a list element into a popup menu.
//
// Each list item typically holds a link. An item whose text is a
// single hyphen becomes a divider. The list gets the "menu" class; the
// stylesheet provides the rest.
//
// With a trigger element, clicking the trigger toggles the menu and
// clicking anywhere else on the page hides it.
package menu

import (
	"github.com/dotchain/dot/streams"
	"github.com/dotchain/widgets/dom"
)

// Location is the placement of the menu relative to its trigger.
type Location string

// Valid locations. Both place the menu below the trigger.
const (
	// BottomLeft aligns the left edges of menu and trigger
	BottomLeft Location = "bottomleft"

	// BottomRight aligns the right edges of menu and trigger
	BottomRight Location = "bottomright"
)

// Options configures a Menu.
type Options struct {
	// Items is the list element holding the menu items. Required.
	Items dom.Element

	// Trigger toggles the menu when clicked. Optional.
	Trigger dom.Element

	// Location defaults to BottomLeft. Unknown values are treated
	// as BottomLeft.
	Location Location

	// ClickAway delivers outside clicks. Defaults to
	// dom.DefaultClickAway.
	ClickAway *dom.ClickAway
}

// Menu is a popup list.
type Menu struct {
	items, trigger dom.Element
	visible        *streams.Bool

	dividers  []dom.Element
	onTrigger *dom.EventHandler
	onDivider *dom.EventHandler
	dismiss   func()
}

// New prepares the list, positions it under the trigger and hides it.
//
// The position is computed once here; it does not follow later
// layout changes.
func New(opts Options) *Menu {
	if opts.Items == nil {
		panic("menu: Items is required")
	}

	m := &Menu{
		items:   opts.Items,
		trigger: opts.Trigger,
		visible: &streams.Bool{Stream: streams.New(), Value: false},
	}

	props := m.items.Props()
	props.ClassName = "menu"
	dom.Update(m.items, props)

	m.onDivider = &dom.EventHandler{Handle: func(e dom.Event) {
		dom.Restyle(e.CurrentTarget(), func(s *dom.Styles) { s.BackgroundColor = "" })
		e.StopPropagation()
	}}
	for _, item := range m.items.Children() {
		if item.Value() == "-" {
			m.divider(item)
		}
	}

	if m.trigger != nil {
		m.onTrigger = &dom.EventHandler{Handle: func(dom.Event) { m.Toggle() }}
		m.trigger.AddEventListener("click", m.onTrigger)

		// the list has to be displayed to be measured
		m.setDisplay("block")
		m.place(opts.Location)
	}
	m.setDisplay("none")

	clickAway := opts.ClickAway
	if clickAway == nil {
		clickAway = dom.DefaultClickAway
	}
	m.dismiss = clickAway.Subscribe(m.trigger, func(dom.Event) { m.Hide() })
	return m
}

func (m *Menu) divider(item dom.Element) {
	item.SetProp("TextContent", "")
	props := item.Props()
	props.ClassName = "menu_divider"
	dom.Update(item, props)
	dom.AppendChild(item, dom.NewElement(dom.Props{Tag: "hr"}))
	item.AddEventListener("mouseover", m.onDivider)
	m.dividers = append(m.dividers, item)
}

func (m *Menu) place(location Location) {
	tr, lr := m.trigger.Rect(), m.items.Rect()
	left := tr.Left
	if location == BottomRight {
		left = tr.Left + tr.Width - lr.Width
	}

	dom.Restyle(m.items, func(s *dom.Styles) {
		s.Left = dom.Px(left)
		s.Top = dom.Px(tr.Top + tr.Height)
	})
}

func (m *Menu) setDisplay(display string) {
	dom.Restyle(m.items, func(s *dom.Styles) { s.Display = display })
}

func (m *Menu) setVisible(visible bool) {
	display := "none"
	if visible {
		display = "block"
	}
	m.setDisplay(display)
	if m.visible.Value != visible {
		m.visible = m.visible.Update(visible)
	}
}

// Show displays the menu.
func (m *Menu) Show() {
	if m.trigger == nil {
		dom.Restyle(m.items, func(s *dom.Styles) { s.Left = dom.Px(0) })
	}
	m.setVisible(true)
}

// Hide hides the menu.
func (m *Menu) Hide() {
	m.setVisible(false)
}

// IsVisible reports whether the menu is showing.
func (m *Menu) IsVisible() bool {
	return m.visible.Value
}

// Toggle shows a hidden menu and hides a visible one.
func (m *Menu) Toggle() {
	if m.IsVisible() {
		m.Hide()
	} else {
		m.Show()
	}
}

// Visible returns the visibility stream. Each Show or Hide that
// changes the state appends to it.
func (m *Menu) Visible() *streams.Bool {
	return m.visible
}

// Close releases the trigger, divider and outside-click handlers.
// The list is left in place.
func (m *Menu) Close() {
	m.dismiss()
	if m.trigger != nil {
		m.trigger.RemoveEventListener("click", m.onTrigger)
	}
	for _, item := range m.dividers {
		item.RemoveEventListener("mouseover", m.onDivider)
	}
	m.dividers = nil
}
