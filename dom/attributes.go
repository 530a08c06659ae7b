// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dom

import (
	"strconv"
	"strings"
)

// ReadProps recovers the props of an element that came from existing
// markup. attr returns the value of the named attribute or "" if it
// is missing.
//
// The inline style is kept as Styles.Raw so that later restyling
// adds to it rather than replacing it. Event handlers cannot be
// recovered.
func ReadProps(tag string, attr func(name string) string) Props {
	props := Props{
		Tag:       strings.ToLower(tag),
		ID:        attr("id"),
		ClassName: attr("class"),
		Title:     attr("title"),
		Type:      attr("type"),
		Href:      attr("href"),
		TabIndex:  attr("tabindex"),
		Styles:    Styles{Raw: attr("style")},
	}
	if span, err := strconv.Atoi(attr("colspan")); err == nil && span > 0 {
		props.ColSpan = span
	}
	return props
}
