// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dom

import "github.com/dotchain/widgets/core"

// ClickAway fans a single document click listener out to any number
// of subscribers that want to know about clicks outside some element.
//
// The body listener is installed with the first subscription and
// removed when the last one goes away.
type ClickAway struct {
	n        core.Notifier
	current  Event
	body     Element
	listener *EventHandler
}

// DefaultClickAway is the process-wide dispatcher used by menus.
var DefaultClickAway = &ClickAway{}

// Subscribe calls fn for every click on the document whose target is
// not inside except. A nil except matches no element.
//
// The returned function removes the subscription.
func (c *ClickAway) Subscribe(except Element, fn func(Event)) (unsubscribe func()) {
	h := &core.Handler{Handle: func() {
		if !Contains(except, c.current.Target()) {
			fn(c.current)
		}
	}}
	c.n.On(h)

	if c.listener == nil {
		c.body = Body()
		c.listener = &EventHandler{Handle: c.dispatch}
		c.body.AddEventListener("click", c.listener)
	}

	done := false
	return func() {
		if done {
			return
		}
		done = true
		c.n.Off(h)
		if c.n.Len() == 0 && c.listener != nil {
			c.body.RemoveEventListener("click", c.listener)
			c.body, c.listener = nil, nil
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (c *ClickAway) Subscribers() int {
	return c.n.Len()
}

func (c *ClickAway) dispatch(e Event) {
	last := c.current
	c.current = e
	c.n.Notify()
	c.current = last
}
