// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctw

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// noNode marks an absent child or parent reference.
const noNode = -1

// lnHalf is the logarithm of the mixture weight used at every node.
var lnHalf = math.Log(0.5)

// node holds the sufficient statistics of a single context. Nodes are
// addressed by their index in the tree arena; child and parent fields are
// such indexes or noNode.
type node struct {
	// running KT log-probability of the bits routed through the node
	logP float64
	// counts of ones and zeros seen
	ones  int
	zeros int
	// child indexes selected by the context bit
	child  [2]int
	parent int
	depth  int
}

// newNode returns a node without children.
func newNode(parent, depth int) node {
	return node{
		child:  [2]int{noNode, noNode},
		parent: parent,
		depth:  depth,
	}
}

// count returns the number of times the given bit has been seen.
func (n *node) count(bit byte) int {
	if bit == 1 {
		return n.ones
	}
	return n.zeros
}

// update adds the Krichevsky-Trofimov increment for bit to the estimate,
// counts the bit and returns the child index selected by the context bit at
// the depth of the node. The estimate must be computed from the counts
// before the increment.
func (n *node) update(bit byte, ctx []byte) int {
	total := n.ones + n.zeros
	if total < 0 {
		panic("ctw: negative node count")
	}
	n.logP += math.Log(float64(n.count(bit))+0.5) -
		math.Log(float64(total)+1)
	if bit == 1 {
		n.ones++
	} else {
		n.zeros++
	}
	if n.depth >= len(ctx) {
		return noNode
	}
	return n.child[ctx[n.depth]]
}

// fold mixes the estimate of the node with the sum of the contributions of
// its children at equal weights. An empty contribution list enters the sum
// as log 1. The function doesn't modify contribs.
func (n *node) fold(contribs []float64) float64 {
	return floats.LogSumExp([]float64{
		lnHalf + n.logP,
		lnHalf + floats.Sum(contribs),
	})
}

// hasChildren reports whether the node has acquired at least one child.
func (n *node) hasChildren() bool {
	return n.child[0] != noNode || n.child[1] != noNode
}
