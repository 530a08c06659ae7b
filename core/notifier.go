// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package core

// Handler wraps a callback so that it can be registered and later
// removed by identity.
type Handler struct {
	Handle func()
}

// Notifier maintains an ordered list of handlers.
//
// The zero value is ready to use.
type Notifier struct {
	handlers []*Handler
}

// On registers a handler. Registering the same handler twice calls
// it twice.
func (n *Notifier) On(h *Handler) {
	n.handlers = append(n.handlers, h)
}

// Off removes the first registration of the handler.
func (n *Notifier) Off(h *Handler) {
	for kk, hh := range n.handlers {
		if hh == h {
			n.handlers = append(n.handlers[:kk:kk], n.handlers[kk+1:]...)
			return
		}
	}
}

// Notify calls all registered handlers in registration order.
//
// Handlers may call On or Off while being notified; the change takes
// effect on the next Notify.
func (n *Notifier) Notify() {
	for _, h := range append([]*Handler(nil), n.handlers...) {
		h.Handle()
	}
}

// Len returns the number of registered handlers.
func (n *Notifier) Len() int {
	return len(n.handlers)
}
