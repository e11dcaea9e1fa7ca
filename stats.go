// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctw

// NodeInfo describes the statistics of a single node. Child and parent
// indexes are -1 if the node doesn't exist.
type NodeInfo struct {
	Index       int
	Parent      int
	Depth       int
	Ones        int
	Zeros       int
	LogEstimate float64
	OneChild    int
	ZeroChild   int
}

// Walk calls f for every node in the order of creation. The root comes
// first. Walk stops if f returns false.
func (t *Tree) Walk(f func(n NodeInfo) bool) {
	for i := range t.nodes {
		n := &t.nodes[i]
		info := NodeInfo{
			Index:       i,
			Parent:      n.parent,
			Depth:       n.depth,
			Ones:        n.ones,
			Zeros:       n.zeros,
			LogEstimate: n.logP,
			OneChild:    n.child[1],
			ZeroChild:   n.child[0],
		}
		if !f(info) {
			return
		}
	}
}

// TreeStats summarizes the shape of a tree.
type TreeStats struct {
	Depth     int
	Nodes     int
	Leaves    int
	Presented int64
	// PerDepth[d] is the number of nodes at depth d.
	PerDepth []int
	// bit counts of the root
	Ones  int
	Zeros int
}

// Stats computes the statistics of the tree.
func (t *Tree) Stats() TreeStats {
	s := TreeStats{
		Depth:     t.depth,
		Nodes:     len(t.nodes),
		Presented: t.presented,
		PerDepth:  make([]int, t.depth+1),
		Ones:      t.nodes[0].ones,
		Zeros:     t.nodes[0].zeros,
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		s.PerDepth[n.depth]++
		if !n.hasChildren() {
			s.Leaves++
		}
	}
	return s
}
