// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dom

// Update brings the element in line with props, calling SetProp only
// for the keys whose values changed.
func Update(elt Element, props Props) {
	before := elt.Props()
	if before == props {
		return
	}

	b, a := before.ToMap(), props.ToMap()
	for k, v := range a {
		if b[k] != v {
			elt.SetProp(k, v)
		}
	}
}

// Restyle applies fn to a copy of the element styles and updates the
// element with the result.
func Restyle(elt Element, fn func(s *Styles)) {
	props := elt.Props()
	fn(&props.Styles)
	Update(elt, props)
}

// AppendChild inserts elt as the last child of parent.
func AppendChild(parent, elt Element) {
	parent.InsertChild(len(parent.Children()), elt)
}

// Detach removes elt from its parent. It is a no-op for detached
// elements.
func Detach(elt Element) {
	parent := elt.Parent()
	if parent == nil {
		return
	}
	for kk, child := range parent.Children() {
		if child == elt {
			parent.RemoveChild(kk)
			return
		}
	}
}

// Contains reports whether elt is ancestor or one of its descendants.
func Contains(ancestor, elt Element) bool {
	if ancestor == nil {
		return false
	}
	for ; elt != nil; elt = elt.Parent() {
		if elt == ancestor {
			return true
		}
	}
	return false
}
