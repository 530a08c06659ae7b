// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package core holds the small runtime pieces shared by the widgets:
// handler lists and tree traversal.
//
// Nothing here knows about the DOM.
package core
