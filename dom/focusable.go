// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dom

import "github.com/dotchain/widgets/core"

// Focusables returns root and its descendants that take part in tab
// navigation (non-negative tab index), in document order.
func Focusables(root Element) []Element {
	return core.Filter(core.Preorder(root, children), eligible)
}

// FirstFocusable returns the first descendant of root (excluding root
// itself) that takes part in tab navigation, or nil.
func FirstFocusable(root Element) Element {
	for _, elt := range core.Preorder(root, children)[1:] {
		if eligible(elt) {
			return elt
		}
	}
	return nil
}

func children(elt Element) []Element {
	return elt.Children()
}

func eligible(elt Element) bool {
	return elt.TabIndex() >= 0
}
