// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package focustrap_test

import (
	"testing"

	"github.com/dotchain/widgets/dom"
	"github.com/dotchain/widgets/dom/html"
	"github.com/dotchain/widgets/focustrap"
)

func reportDriverLeaks(t *testing.T) {
	leaks := html.GetCurrentResources()
	if n := len(leaks); n > 0 {
		t.Fatal("Leaked", n, "resources\n", leaks)
	}
}

// form returns a container with a label, two inputs inside a nested
// div, a disabled-by-tabindex link and a button.
func form() (root dom.Element, focusables []dom.Element) {
	first := dom.NewElement(dom.Props{Tag: "input", Type: "text", ID: "first"})
	second := dom.NewElement(dom.Props{Tag: "input", Type: "text", ID: "second"})
	skipped := dom.NewElement(dom.Props{Tag: "a", Href: "#", TabIndex: "-1"})
	button := dom.NewElement(dom.Props{Tag: "button", TextContent: "Go"})
	root = dom.NewElement(
		dom.Props{},
		dom.NewElement(dom.Props{Tag: "label", TextContent: "Name"}),
		dom.NewElement(dom.Props{}, first, dom.NewElement(dom.Props{}, second)),
		skipped,
		button,
	)
	return root, []dom.Element{first, second, button}
}

func TestTrapCollectsInDocumentOrder(t *testing.T) {
	html.Reset()
	root, expected := form()
	trap := focustrap.New(root)

	got := trap.Elements()
	if len(got) != len(expected) {
		t.Fatal("Unexpected elements", got)
	}
	for kk := range got {
		if got[kk] != expected[kk] {
			t.Error("Mismatch at", kk, got[kk])
		}
	}

	trap.Close()
	reportDriverLeaks(t)
}

func TestTrapIncludesFocusableRoot(t *testing.T) {
	html.Reset()
	root, _ := form()
	root.SetProp("TabIndex", "0")
	trap := focustrap.New(root)

	if x := trap.Elements(); len(x) != 4 || x[0] != root {
		t.Error("root not captured first", x)
	}

	trap.Close()
	reportDriverLeaks(t)
}

func TestTrapCycles(t *testing.T) {
	html.Reset()
	root, elts := form()
	trap := focustrap.New(root)
	first, second, last := elts[0], elts[1], elts[2]

	if !html.KeyDown(first, dom.KeyTab, false) {
		t.Error("default not prevented")
	}
	if html.Focused() != second {
		t.Error("Tab did not advance", html.Focused())
	}

	html.KeyDown(last, dom.KeyTab, false)
	if html.Focused() != first {
		t.Error("Tab from the last did not wrap", html.Focused())
	}

	html.KeyDown(first, dom.KeyTab, true)
	if html.Focused() != last {
		t.Error("Shift+Tab from the first did not wrap", html.Focused())
	}

	html.KeyDown(last, dom.KeyTab, true)
	if html.Focused() != second {
		t.Error("Shift+Tab did not go back", html.Focused())
	}

	// other keys are ignored
	second.Focus()
	if html.KeyDown(second, dom.KeyEnter, false) || html.Focused() != second {
		t.Error("Enter moved focus")
	}

	trap.Close()
	reportDriverLeaks(t)
}

func TestTrapStopsPropagation(t *testing.T) {
	html.Reset()
	root, elts := form()
	outer := dom.NewElement(dom.Props{}, root)

	bubbled := 0
	h := &dom.EventHandler{Handle: func(dom.Event) { bubbled++ }}
	outer.AddEventListener("keydown", h)

	trap := focustrap.New(root)
	html.KeyDown(elts[0], dom.KeyTab, false)
	if bubbled != 0 {
		t.Error("Tab leaked to ancestors")
	}

	trap.Disable()
	html.KeyDown(elts[0], dom.KeyTab, false)
	if bubbled != 1 {
		t.Error("disabled trap swallowed the event")
	}

	trap.Close()
	outer.RemoveEventListener("keydown", h)
	reportDriverLeaks(t)
}

func TestTrapDisable(t *testing.T) {
	html.Reset()
	root, elts := form()
	trap := focustrap.New(root)

	trap.Disable()
	if trap.Enabled() {
		t.Error("trap still enabled")
	}
	elts[2].Focus()
	if html.KeyDown(elts[2], dom.KeyTab, false) {
		t.Error("disabled trap prevented default")
	}
	if html.Focused() != elts[2] {
		t.Error("disabled trap moved focus", html.Focused())
	}

	trap.Enable()
	html.KeyDown(elts[2], dom.KeyTab, false)
	if html.Focused() != elts[0] {
		t.Error("re-enabled trap did not wrap", html.Focused())
	}

	trap.Close()
	reportDriverLeaks(t)
}

func TestTrapSingleElement(t *testing.T) {
	html.Reset()
	only := dom.NewElement(dom.Props{Tag: "button"})
	root := dom.NewElement(dom.Props{}, only)
	trap := focustrap.New(root)

	html.KeyDown(only, dom.KeyTab, false)
	if html.Focused() != only {
		t.Error("single element lost focus", html.Focused())
	}
	html.KeyDown(only, dom.KeyTab, true)
	if html.Focused() != only {
		t.Error("single element lost focus", html.Focused())
	}

	trap.Close()
	reportDriverLeaks(t)
}

func TestStep(t *testing.T) {
	cases := []struct {
		index, n int
		backward bool
		expected int
	}{
		{0, 3, false, 1},
		{2, 3, false, 0},
		{0, 3, true, 2},
		{1, 3, true, 0},
		{0, 1, false, 0},
		{0, 1, true, 0},
		{0, 0, false, 0},
	}

	for _, c := range cases {
		if x := focustrap.Step(c.index, c.n, c.backward); x != c.expected {
			t.Errorf("Step(%d, %d, %v) = %d", c.index, c.n, c.backward, x)
		}
	}
}
