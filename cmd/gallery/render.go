// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/dotchain/widgets/datepicker"
	"github.com/dotchain/widgets/dialog"
	"github.com/dotchain/widgets/dom"
	"github.com/dotchain/widgets/dom/html"
	"github.com/dotchain/widgets/menu"
	"github.com/yosssi/gohtml"
)

// Render builds every widget into a fresh headless document and
// returns the formatted body.
func Render(r *Resolved) string {
	html.Reset()
	body := dom.Body()

	trigger := dom.NewElement(dom.Props{Tag: "button", ID: "menu_button", TextContent: "Menu"})
	dom.AppendChild(body, trigger)
	list := dom.NewElement(dom.Props{Tag: "ul", ID: "menu_list"})
	for _, label := range r.MenuItems {
		item := dom.NewElement(dom.Props{Tag: "li", TextContent: label})
		if label != "-" {
			item = dom.NewElement(
				dom.Props{Tag: "li"},
				dom.NewElement(dom.Props{Tag: "a", Href: "#", TextContent: label}),
			)
		}
		dom.AppendChild(list, item)
	}
	dom.AppendChild(body, list)

	m := menu.New(menu.Options{Items: list, Trigger: trigger, Location: r.MenuLocation})
	if r.MenuOpen {
		m.Show()
	}

	picker := datepicker.New(datepicker.Options{Date: r.Date, Parent: body})

	content := dom.NewElement(
		dom.Props{ID: "dialog_content", Title: r.Title},
		dom.NewElement(dom.Props{Tag: "p", TextContent: r.Text}),
	)
	dom.AppendChild(body, content)
	d := dialog.New(dialog.Options{Content: content, Buttons: r.Buttons, TrapFocus: r.TrapFocus})
	if r.DialogOpen {
		d.Open()
	}

	result := gohtml.Format(fmt.Sprint(body))

	d.Destroy()
	picker.Close()
	m.Close()
	return result
}
