// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package dialog implements a modal dialog.
//
// The dialog is built once: a blocking pane covering the page and a
// box holding a title bar, the caller's content element and a row of
// buttons. Open and Close only toggle visibility.
//
// Unless TrapFocus is set, tabbing can still reach elements behind
// the blocking pane.
package dialog

import (
	"github.com/dotchain/widgets/dom"
	"github.com/dotchain/widgets/focustrap"
)

const (
	baseZIndex   = 10000
	borderRadius = 10
)

// Button describes one button of the dialog.
type Button struct {
	Text string

	// Default marks the button activated by Enter. Without any
	// Default button, the first one is used.
	Default bool

	// Cancel marks the button activated by Escape.
	Cancel bool

	OnClick func()
}

// Options configures a Dialog.
type Options struct {
	// Content is moved into the dialog. Its Title prop becomes the
	// dialog title. Required.
	Content dom.Element

	// Buttons defaults to a single "OK" button that closes the
	// dialog.
	Buttons []Button

	// TrapFocus keeps Tab navigation inside the dialog. The
	// focusable elements are captured at construction.
	TrapFocus bool

	// Parent receives the pane and the dialog. Defaults to the body.
	Parent dom.Element
}

// Dialog is a modal dialog.
type Dialog struct {
	pane, box, content dom.Element
	buttons            []dom.Element

	defaultButton, cancelButton dom.Element

	onKeyUp *dom.EventHandler
	trap    *focustrap.Trap
	open    bool
}

// New builds the dialog hidden and attaches it to the parent.
func New(opts Options) *Dialog {
	if opts.Content == nil {
		panic("dialog: Content is required")
	}

	d := &Dialog{content: opts.Content}
	d.pane = dom.NewElement(dom.Props{Styles: paneStyles()})

	title := dom.NewElement(dom.Props{
		TextContent: opts.Content.Props().Title,
		Styles:      titleStyles(),
	})

	dom.Detach(opts.Content)
	body := dom.NewElement(dom.Props{Styles: dom.Styles{Padding: dom.Px(7)}}, opts.Content)

	d.box = dom.NewElement(
		dom.Props{Styles: boxStyles()},
		title,
		body,
		d.buttonBar(opts.Buttons),
	)

	d.onKeyUp = &dom.EventHandler{Handle: d.keyUp}
	d.box.AddEventListener("keyup", d.onKeyUp)

	if opts.TrapFocus {
		d.trap = focustrap.New(d.box)
	}

	parent := opts.Parent
	if parent == nil {
		parent = dom.Body()
	}
	dom.AppendChild(parent, d.pane)
	dom.AppendChild(parent, d.box)
	return d
}

func (d *Dialog) buttonBar(buttons []Button) dom.Element {
	if len(buttons) == 0 {
		buttons = []Button{{Text: "OK", OnClick: d.Close}}
	}

	explicit := false
	for _, b := range buttons {
		elt := d.button(b)
		d.buttons = append(d.buttons, elt)

		if b.Default && !explicit {
			d.defaultButton, explicit = elt, true
		} else if d.defaultButton == nil {
			d.defaultButton = elt
		}
		if b.Cancel {
			d.cancelButton = elt
		}
	}

	return dom.NewElement(dom.Props{Styles: buttonBarStyles()}, d.buttons...)
}

func (d *Dialog) button(b Button) dom.Element {
	props := dom.Props{Tag: "button", TextContent: b.Text, Styles: buttonStyles()}
	if fn := b.OnClick; fn != nil {
		props.OnClick = &dom.EventHandler{Handle: func(dom.Event) { fn() }}
	}
	return dom.NewElement(props)
}

func (d *Dialog) keyUp(e dom.Event) {
	switch {
	case e.Key() == dom.KeyEnter && d.defaultButton != nil:
		d.defaultButton.Click()
		e.PreventDefault()
	case e.Key() == dom.KeyEscape && d.cancelButton != nil:
		d.cancelButton.Click()
		e.PreventDefault()
	}
}

// Open shows the pane and the dialog, centers the dialog over the
// pane and focuses the first focusable element of the content.
//
// Centering uses the sizes at the time of the call.
func (d *Dialog) Open() {
	dom.Restyle(d.pane, func(s *dom.Styles) { s.Display = "block" })
	dom.Restyle(d.box, func(s *dom.Styles) { s.Display = "inline-block" })

	pr, br := d.pane.Rect(), d.box.Rect()
	dom.Restyle(d.box, func(s *dom.Styles) {
		s.Left = dom.Px(pr.Width/2 - br.Width/2)
		s.Top = dom.Px(pr.Height/2 - br.Height/2)
	})
	d.open = true

	if elt := dom.FirstFocusable(d.content); elt != nil {
		elt.Focus()
	}
}

// Close hides the pane and the dialog. Both stay in the document so
// that the dialog can be opened again.
func (d *Dialog) Close() {
	dom.Restyle(d.pane, func(s *dom.Styles) { s.Display = "none" })
	dom.Restyle(d.box, func(s *dom.Styles) { s.Display = "none" })
	d.open = false
}

// IsOpen reports whether the dialog is showing.
func (d *Dialog) IsOpen() bool {
	return d.open
}

// Element returns the dialog box.
func (d *Dialog) Element() dom.Element {
	return d.box
}

// Pane returns the blocking pane.
func (d *Dialog) Pane() dom.Element {
	return d.pane
}

// Buttons returns the button elements in order.
func (d *Dialog) Buttons() []dom.Element {
	return d.buttons
}

// Destroy removes the dialog from the document and releases its
// handlers. The content element goes with it.
func (d *Dialog) Destroy() {
	if d.trap != nil {
		d.trap.Close()
	}
	d.box.RemoveEventListener("keyup", d.onKeyUp)
	for _, b := range d.buttons {
		b.Close()
	}
	dom.Detach(d.pane)
	dom.Detach(d.box)
	d.open = false
}

func paneStyles() dom.Styles {
	return dom.Styles{
		Position:        "absolute",
		Left:            dom.Px(0),
		Top:             dom.Px(0),
		Right:           dom.Px(0),
		Bottom:          dom.Px(0),
		Opacity:         "0.6",
		Display:         "none",
		BackgroundColor: "black",
		ZIndex:          baseZIndex,
	}
}

func boxStyles() dom.Styles {
	return dom.Styles{
		BackgroundColor: "white",
		Borders: dom.Borders{
			Style:  "solid",
			Radius: dom.Px(borderRadius),
			Width:  dom.Px(1),
		},
		Display:   "none",
		Position:  "absolute",
		ZIndex:    baseZIndex + 1,
		MinWidth:  dom.Px(250),
		MinHeight: dom.Px(150),
	}
}

func titleStyles() dom.Styles {
	return dom.Styles{
		BackgroundImage: "linear-gradient(gray, lightgray, gray)",
		Padding:         dom.Px(7),
		FontWeight:      "bold",
		FontSize:        dom.Px(24),
		Borders:         dom.Borders{Radius: dom.Size{Raw: "10px 10px 0 0"}},
	}
}

func buttonBarStyles() dom.Styles {
	return dom.Styles{
		TextAlign: "right",
		Padding:   dom.Px(7),
		Position:  "relative",
		Bottom:    dom.Px(0),
		Left:      dom.Px(0),
		Right:     dom.Px(0),
		BorderTop: dom.Borders{Style: "solid", Width: dom.Px(1), Color: "lightgray"},
	}
}

func buttonStyles() dom.Styles {
	return dom.Styles{
		Borders:     dom.Borders{Radius: dom.Px(6)},
		Padding:     dom.Px(4),
		FontSize:    dom.Px(11),
		MarginLeft:  dom.Px(4),
		MarginRight: dom.Px(4),
	}
}
