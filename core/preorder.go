// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package core

// Preorder returns root followed by all its descendants in
// depth-first document order.
//
// The walk keeps an explicit stack, so it works for any tree shape
// given a children accessor.
func Preorder[T any](root T, children func(T) []T) []T {
	result := []T{}
	stack := []T{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, n)

		kids := children(n)
		for kk := len(kids) - 1; kk >= 0; kk-- {
			stack = append(stack, kids[kk])
		}
	}
	return result
}

// Filter returns the items for which keep returns true, preserving
// order.
func Filter[T any](items []T, keep func(T) bool) []T {
	result := []T{}
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}
