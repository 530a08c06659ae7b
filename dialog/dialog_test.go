// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dialog_test

import (
	"testing"

	"github.com/dotchain/widgets/dialog"
	"github.com/dotchain/widgets/dom"
	"github.com/dotchain/widgets/dom/html"
)

func reportDriverLeaks(t *testing.T) {
	leaks := html.GetCurrentResources()
	if n := len(leaks); n > 0 {
		t.Fatal("Leaked", n, "resources\n", leaks)
	}
}

// content returns a titled form attached to a holder in the body.
func content() (holder, form, input dom.Element) {
	input = dom.NewElement(dom.Props{Tag: "input", Type: "text"})
	form = dom.NewElement(
		dom.Props{Title: "Rename"},
		dom.NewElement(dom.Props{Tag: "label", TextContent: "Name"}),
		dom.NewElement(dom.Props{}, input),
	)
	holder = dom.NewElement(dom.Props{ID: "holder"}, form)
	dom.AppendChild(dom.Body(), holder)
	return holder, form, input
}

func TestDefaultOKButton(t *testing.T) {
	html.Reset()
	_, form, _ := content()
	d := dialog.New(dialog.Options{Content: form})

	buttons := d.Buttons()
	if len(buttons) != 1 || buttons[0].Value() != "OK" {
		t.Fatal("Unexpected buttons", buttons)
	}

	d.Open()
	html.Click(buttons[0])
	if d.IsOpen() {
		t.Error("OK did not close the dialog")
	}
	if d.Pane().Props().Styles.Display != "none" || d.Element().Props().Styles.Display != "none" {
		t.Error("OK did not hide the dialog")
	}

	d.Destroy()
	reportDriverLeaks(t)
}

func TestTitle(t *testing.T) {
	html.Reset()
	_, form, _ := content()
	d := dialog.New(dialog.Options{Content: form})
	if title := d.Element().Children()[0].Value(); title != "Rename" {
		t.Error("Unexpected title", title)
	}
	d.Destroy()

	markup, err := html.Parse(`<div id="dialog_content" title="Jump to today"><input type="text"/></div>`)
	if err != nil {
		t.Fatal(err)
	}
	dom.AppendChild(dom.Body(), markup)
	d = dialog.New(dialog.Options{Content: markup})
	if title := d.Element().Children()[0].Value(); title != "Jump to today" {
		t.Error("Unexpected title from markup", title)
	}

	d.Destroy()
	reportDriverLeaks(t)
}

func TestOpenCloseKeepsElements(t *testing.T) {
	html.Reset()
	holder, form, _ := content()
	d := dialog.New(dialog.Options{Content: form})

	if len(holder.Children()) != 0 {
		t.Error("content not moved out of its parent")
	}
	if !dom.Contains(d.Element(), form) {
		t.Error("content not moved into the dialog")
	}
	if x := d.Element().Children()[0].Value(); x != "Rename" {
		t.Error("Unexpected title", x)
	}

	d.Open()
	if d.Pane().Props().Styles.Display != "block" || d.Element().Props().Styles.Display != "inline-block" {
		t.Error("Open did not show the dialog")
	}
	d.Close()

	if d.Pane().Parent() != dom.Body() || d.Element().Parent() != dom.Body() {
		t.Error("Close removed the dialog from the document")
	}
	if d.Pane().Props().Styles.Display != "none" || d.Element().Props().Styles.Display != "none" {
		t.Error("Close did not hide the dialog")
	}

	d.Open()
	if !d.IsOpen() {
		t.Error("dialog did not reopen")
	}

	d.Destroy()
	if d.Pane().Parent() != nil || d.Element().Parent() != nil {
		t.Error("Destroy did not detach")
	}
	reportDriverLeaks(t)
}

func TestOpenCentersAndFocuses(t *testing.T) {
	html.Reset()
	_, form, input := content()
	d := dialog.New(dialog.Options{Content: form})

	html.SetGeometry(d.Pane(), dom.Rect{Width: 800, Height: 600})
	html.SetGeometry(d.Element(), dom.Rect{Width: 300, Height: 200})
	d.Open()

	s := d.Element().Props().Styles
	if s.Left.String() != "250px" || s.Top.String() != "200px" {
		t.Error("Unexpected position", s.Left, s.Top)
	}
	if html.Focused() != input {
		t.Error("first focusable not focused", html.Focused())
	}

	d.Destroy()
	reportDriverLeaks(t)
}

func TestDefaultAndCancelKeys(t *testing.T) {
	html.Reset()
	_, form, input := content()

	clicks := []string{}
	click := func(name string) func() {
		return func() { clicks = append(clicks, name) }
	}
	d := dialog.New(dialog.Options{
		Content: form,
		Buttons: []dialog.Button{
			{Text: "Apply", OnClick: click("apply")},
			{Text: "Save", Default: true, OnClick: click("save")},
			{Text: "Later", Default: true, OnClick: click("later")},
			{Text: "Cancel", Cancel: true, OnClick: click("cancel")},
		},
	})
	d.Open()

	if !html.KeyUp(input, dom.KeyEnter) {
		t.Error("Enter not prevented")
	}
	if !html.KeyUp(input, dom.KeyEscape) {
		t.Error("Escape not prevented")
	}
	if html.KeyUp(input, "a") {
		t.Error("other key prevented")
	}

	if len(clicks) != 2 || clicks[0] != "save" || clicks[1] != "cancel" {
		t.Error("Unexpected clicks", clicks)
	}

	// keys outside the dialog are not handled
	outside := dom.NewElement(dom.Props{Tag: "input"})
	dom.AppendChild(dom.Body(), outside)
	html.KeyUp(outside, dom.KeyEnter)
	if len(clicks) != 2 {
		t.Error("Enter outside the dialog was handled", clicks)
	}

	d.Destroy()
	reportDriverLeaks(t)
}

func TestImplicitDefaultWithoutCancel(t *testing.T) {
	html.Reset()
	_, form, input := content()

	clicked := ""
	d := dialog.New(dialog.Options{
		Content: form,
		Buttons: []dialog.Button{
			{Text: "Yes", OnClick: func() { clicked = "yes" }},
			{Text: "No", OnClick: func() { clicked = "no" }},
			{Text: "Unlabeled"},
		},
	})

	html.KeyUp(input, dom.KeyEnter)
	if clicked != "yes" {
		t.Error("first button is not the default", clicked)
	}

	if html.KeyUp(input, dom.KeyEscape) {
		t.Error("Escape handled without a cancel button")
	}

	// a button without a callback is inert
	html.Click(d.Buttons()[2])

	d.Destroy()
	reportDriverLeaks(t)
}

func TestTrapFocus(t *testing.T) {
	html.Reset()
	_, form, input := content()
	d := dialog.New(dialog.Options{
		Content:   form,
		TrapFocus: true,
		Buttons:   []dialog.Button{{Text: "One"}, {Text: "Two"}},
	})
	d.Open()

	last := d.Buttons()[1]
	html.KeyDown(last, dom.KeyTab, false)
	if html.Focused() != input {
		t.Error("Tab from the last button did not wrap", html.Focused())
	}

	html.KeyDown(input, dom.KeyTab, true)
	if html.Focused() != last {
		t.Error("Shift+Tab from the input did not wrap", html.Focused())
	}

	d.Destroy()
	reportDriverLeaks(t)
}

func TestCustomParent(t *testing.T) {
	html.Reset()
	_, form, _ := content()
	root := dom.NewElement(dom.Props{ID: "root"})
	d := dialog.New(dialog.Options{Content: form, Parent: root})

	if c := root.Children(); len(c) != 2 || c[0] != d.Pane() || c[1] != d.Element() {
		t.Error("dialog not attached to parent", c)
	}

	d.Destroy()
	reportDriverLeaks(t)
}

func TestMissingContentPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	dialog.New(dialog.Options{})
}
