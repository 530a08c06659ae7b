// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package datepicker implements a month calendar control.
//
// The calendar is a table with a navigation header, a weekday row and
// a fixed pool of week rows. Changing months relabels the pool; it
// never creates or destroys cells.
//
// Appearance comes from the stylesheet via these class names:
//
//	date_picker
//	date_picker_header
//	date_picker_nav_buttons
//	date_picker_day_header
//	date_picker_day_cell
//	date_picker_day_cell_selected
//	date_picker_day_cell_inactive
package datepicker

import (
	"strconv"
	"time"

	"github.com/dotchain/widgets/core"
	"github.com/dotchain/widgets/dom"
)

const (
	classCell     = "date_picker_day_cell"
	classSelected = "date_picker_day_cell_selected"
	classInactive = "date_picker_day_cell_inactive"
)

// Options configures a Picker.
type Options struct {
	// Date is the initially selected date. Defaults to now.
	Date time.Time

	// Parent receives the calendar table. Defaults to the body.
	Parent dom.Element
}

// Picker is a calendar bound to a table element.
//
// Handlers registered via the embedded Notifier are called whenever
// the date changes.
type Picker struct {
	core.Notifier

	date     time.Time
	year     int
	month    time.Month
	rendered bool
	grid     Grid

	table, header, prev, next dom.Element
	rows                      [Weeks]dom.Element
	cells                     [Weeks * Days]dom.Element

	onPrevious, onNext, onDay *dom.EventHandler
}

// New builds the calendar, attaches it to the parent and selects the
// initial date.
func New(opts Options) *Picker {
	p := &Picker{}
	p.onPrevious = &dom.EventHandler{Handle: func(dom.Event) { p.PreviousMonth() }}
	p.onNext = &dom.EventHandler{Handle: func(dom.Event) { p.NextMonth() }}
	p.onDay = &dom.EventHandler{Handle: p.selectDay}

	p.prev = dom.NewElement(dom.Props{
		Tag:         "td",
		ClassName:   "date_picker_nav_buttons",
		TextContent: "«",
		OnClick:     p.onPrevious,
	})
	p.next = dom.NewElement(dom.Props{
		Tag:         "td",
		ClassName:   "date_picker_nav_buttons",
		TextContent: "»",
		OnClick:     p.onNext,
	})
	p.header = dom.NewElement(dom.Props{Tag: "td", ClassName: "date_picker_header", ColSpan: 5})

	rows := []dom.Element{
		dom.NewElement(dom.Props{Tag: "tr"}, p.prev, p.header, p.next),
		weekdays(),
	}
	for w := range p.rows {
		cells := make([]dom.Element, Days)
		for d := range cells {
			cells[d] = dom.NewElement(dom.Props{Tag: "td", ClassName: classCell})
			p.cells[w*Days+d] = cells[d]
		}
		p.rows[w] = dom.NewElement(dom.Props{Tag: "tr"}, cells...)
		rows = append(rows, p.rows[w])
	}
	p.table = dom.NewElement(dom.Props{Tag: "table", ClassName: "date_picker"}, rows...)

	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}
	p.SetDate(date)

	parent := opts.Parent
	if parent == nil {
		parent = dom.Body()
	}
	dom.AppendChild(parent, p.table)
	return p
}

func weekdays() dom.Element {
	cells := make([]dom.Element, Days)
	for kk := range cells {
		cells[kk] = dom.NewElement(dom.Props{
			Tag:         "td",
			ClassName:   "date_picker_day_header",
			TextContent: time.Weekday(kk).String()[:3],
		})
	}
	return dom.NewElement(dom.Props{Tag: "tr"}, cells...)
}

// Element returns the calendar table.
func (p *Picker) Element() dom.Element {
	return p.table
}

// Date returns the selected date.
func (p *Picker) Date() time.Time {
	return p.date
}

// SetDate selects t with seconds and sub-seconds dropped.
//
// The grid is only relabeled when the month or year differs from
// the one on display; otherwise just the selection moves.
func (p *Picker) SetDate(t time.Time) {
	p.date = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	year, month, day := p.date.Date()

	if !p.rendered || year != p.year || month != p.month {
		p.rendered, p.year, p.month = true, year, month
		dom.Update(p.header, dom.Props{
			Tag:         "td",
			ClassName:   "date_picker_header",
			ColSpan:     5,
			TextContent: month.String() + " - " + strconv.Itoa(year),
		})
		p.grid.Populate(year, month, day)
		p.render()
	} else {
		before, after := p.grid.Select(day)
		p.renderCell(before)
		p.renderCell(after)
	}

	p.Notify()
}

// NextMonth moves the selection one month forward.
func (p *Picker) NextMonth() {
	p.SetDate(AddMonths(p.date, 1))
}

// PreviousMonth moves the selection one month back.
func (p *Picker) PreviousMonth() {
	p.SetDate(AddMonths(p.date, -1))
}

func (p *Picker) selectDay(e dom.Event) {
	target := e.CurrentTarget()
	for kk, cell := range p.cells {
		if cell == target && p.grid.Cells[kk].Active() {
			d := p.date
			p.SetDate(time.Date(d.Year(), d.Month(), p.grid.Cells[kk].Day, d.Hour(), d.Minute(), 0, 0, d.Location()))
			return
		}
	}
}

func (p *Picker) render() {
	for kk := range p.cells {
		p.renderCell(kk)
	}
	for w, row := range p.rows {
		display := "none"
		if w < p.grid.Rows {
			display = "table-row"
		}
		dom.Update(row, dom.Props{Tag: "tr", Styles: dom.Styles{Display: display}})
	}
}

func (p *Picker) renderCell(index int) {
	if index < 0 {
		return
	}

	c := p.grid.Cells[index]
	props := dom.Props{Tag: "td", ClassName: classInactive}
	if c.Active() {
		props.TextContent = strconv.Itoa(c.Day)
		props.OnClick = p.onDay
		props.ClassName = classCell
		if c.Selected {
			props.ClassName = classSelected
		}
	}
	dom.Update(p.cells[index], props)
}

// Close detaches the calendar and releases its event handlers.
func (p *Picker) Close() {
	p.prev.Close()
	p.next.Close()
	for _, cell := range p.cells {
		cell.Close()
	}
	dom.Detach(p.table)
}
