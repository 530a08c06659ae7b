// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build js

// Browser demo wiring every widget to index.html. Build with
// gopherjs.
package main

import (
	"time"

	"github.com/dotchain/widgets/core"
	"github.com/dotchain/widgets/datepicker"
	"github.com/dotchain/widgets/dialog"
	"github.com/dotchain/widgets/dom"
	"github.com/dotchain/widgets/dom/js"
	"github.com/dotchain/widgets/menu"
)

func main() {
	m := menu.New(menu.Options{
		Items:    js.QuerySelector("#menu_list"),
		Trigger:  js.QuerySelector("#menu_button"),
		Location: menu.BottomRight,
	})

	picker := datepicker.New(datepicker.Options{Parent: js.QuerySelector("#calendar")})
	selected := js.QuerySelector("#selected_date")
	show := func() {
		selected.SetProp("TextContent", picker.Date().Format("Monday, January 2 2006"))
	}
	picker.On(&core.Handler{Handle: show})
	show()

	var d *dialog.Dialog
	d = dialog.New(dialog.Options{
		Content:   js.QuerySelector("#dialog_content"),
		TrapFocus: true,
		Buttons: []dialog.Button{
			{Text: "Today", Default: true, OnClick: func() {
				picker.SetDate(time.Now())
				d.Close()
			}},
			{Text: "Cancel", Cancel: true, OnClick: func() { d.Close() }},
		},
	})

	js.QuerySelector("#open_dialog").AddEventListener("click", &dom.EventHandler{
		Handle: func(dom.Event) {
			m.Hide()
			d.Open()
		},
	})
}
