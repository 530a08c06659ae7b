// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package core_test

import (
	"reflect"
	"testing"

	"github.com/dotchain/widgets/core"
)

type node struct {
	name     string
	children []*node
}

func tree() *node {
	return &node{"root", []*node{
		{"a", []*node{{"a1", nil}, {"a2", []*node{{"a2x", nil}}}}},
		{"b", nil},
		{"c", []*node{{"c1", nil}}},
	}}
}

func names(nodes []*node) []string {
	result := []string{}
	for _, n := range nodes {
		result = append(result, n.name)
	}
	return result
}

func TestPreorder(t *testing.T) {
	kids := func(n *node) []*node { return n.children }
	got := names(core.Preorder(tree(), kids))
	expected := []string{"root", "a", "a1", "a2", "a2x", "b", "c", "c1"}
	if !reflect.DeepEqual(got, expected) {
		t.Error("Unexpected order", got)
	}
}

func TestPreorderDeep(t *testing.T) {
	root := &node{name: "0"}
	n := root
	for kk := 0; kk < 100000; kk++ {
		child := &node{name: "x"}
		n.children = []*node{child}
		n = child
	}

	got := core.Preorder(root, func(n *node) []*node { return n.children })
	if len(got) != 100001 {
		t.Error("Unexpected count", len(got))
	}
}

func TestFilter(t *testing.T) {
	kids := func(n *node) []*node { return n.children }
	leaves := core.Filter(core.Preorder(tree(), kids), func(n *node) bool {
		return len(n.children) == 0
	})
	expected := []string{"a1", "a2x", "b", "c1"}
	if got := names(leaves); !reflect.DeepEqual(got, expected) {
		t.Error("Unexpected leaves", got)
	}
}
