// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctw

import (
	"errors"
	"fmt"
)

// MaxDepth is the largest context depth supported by NewTree.
const MaxDepth = 64

// Errors returned by the tree functions.
var (
	ErrInvalidDepth   = errors.New("ctw: context depth out of range")
	ErrInvalidBit     = errors.New("ctw: bit value must be 0 or 1")
	ErrShortContext   = errors.New("ctw: context shorter than tree depth")
	ErrLengthMismatch = errors.New("ctw: sequences differ in length")
)

// Tree is a context tree weighting model for binary sequences. The nodes of
// the tree are kept in an arena that only grows. A child is always appended
// after its parent, so iterating the arena backwards visits every node after
// all its descendants.
//
// A Tree must not be used concurrently.
type Tree struct {
	depth int
	opts  Options
	nodes []node
	// contributions of the children collected during LogProbability;
	// parallel to nodes
	contribs [][]float64
	// reversed context of the current traversal
	ctx       []byte
	presented int64
}

// NewTree creates a tree for contexts of the given depth. The depth must be
// in the range [1,MaxDepth].
func NewTree(depth int, opts Options) (t *Tree, err error) {
	if !(1 <= depth && depth <= MaxDepth) {
		return nil, fmt.Errorf("%w: %d not in [1,%d]",
			ErrInvalidDepth, depth, MaxDepth)
	}
	if err = opts.Verify(); err != nil {
		return nil, err
	}
	t = &Tree{
		depth:    depth,
		opts:     opts,
		nodes:    []node{newNode(noNode, 0)},
		contribs: make([][]float64, 1),
		ctx:      make([]byte, depth),
	}
	return t, nil
}

// Depth returns the maximum context depth of the tree.
func (t *Tree) Depth() int { return t.depth }

// Options returns the model options of the tree.
func (t *Tree) Options() Options { return t.opts }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Presented returns the number of bits that have been presented to the tree.
func (t *Tree) Presented() int64 { return t.presented }

// PresentBit updates the tree with bit observed in the given context. The
// context is given in chronological order; only the last Depth bits are
// used and the most recent bit selects the branch at the root.
func (t *Tree) PresentBit(bit byte, context []byte) error {
	if bit > 1 {
		return ErrInvalidBit
	}
	if len(context) < t.depth {
		return ErrShortContext
	}
	window := context[len(context)-t.depth:]
	if err := checkBits(window); err != nil {
		return err
	}
	t.setContext(window)
	t.traverse(bit)
	return nil
}

// PresentBitWithSideInfo updates the tree with a bit of the target sequence
// using a context that interleaves the recent history of the target with the
// recent history of a companion sequence. Both histories are given in
// chronological order and must provide at least Depth bits. Only the Depth
// most recent interleaved values are used.
func (t *Tree) PresentBitWithSideInfo(bit byte, target, side []byte) error {
	if bit > 1 {
		return ErrInvalidBit
	}
	if len(target) < t.depth || len(side) < t.depth {
		return ErrShortContext
	}
	target = target[len(target)-t.depth:]
	side = side[len(side)-t.depth:]
	if err := checkBits(target); err != nil {
		return err
	}
	if err := checkBits(side); err != nil {
		return err
	}
	t.setSideContext(target, side)
	t.traverse(bit)
	return nil
}

// setContext stores the reversed window in t.ctx.
func (t *Tree) setContext(window []byte) {
	n := len(window) - 1
	for k := range t.ctx {
		t.ctx[k] = window[n-k]
	}
}

// setSideContext stores the first Depth entries of the reversed interleaving
// target[0], side[0], target[1], side[1], ... in t.ctx. Both slices have
// length Depth.
func (t *Tree) setSideContext(target, side []byte) {
	last := 2*t.depth - 1
	for k := range t.ctx {
		f := last - k
		if f&1 == 0 {
			t.ctx[k] = target[f>>1]
		} else {
			t.ctx[k] = side[f>>1]
		}
	}
}

// traverse routes bit along the path selected by t.ctx, updating the nodes on
// the path and creating the missing ones.
func (t *Tree) traverse(bit byte) {
	steps := t.depth
	if t.opts.Weighting == StandardWeighting {
		steps++
	}
	t.presented++
	i := 0
	for s := 0; s < steps; s++ {
		n := &t.nodes[i]
		if n.depth != s {
			panic("ctw: node depth doesn't match traversal step")
		}
		next := n.update(bit, t.ctx)
		switch {
		case next != noNode:
			i = next
		case n.depth < t.depth:
			i = t.grow(i, t.ctx[s])
		default:
			// leaf at maximum depth
			return
		}
	}
}

// grow appends a new child of the node with index p for the context bit b
// and returns its index.
func (t *Tree) grow(p int, b byte) int {
	parent := &t.nodes[p]
	depth := parent.depth + 1
	if depth > t.depth {
		panic("ctw: node depth exceeds tree depth")
	}
	if parent.child[b] != noNode {
		panic("ctw: child exists already")
	}
	i := len(t.nodes)
	parent.child[b] = i
	t.nodes = append(t.nodes, newNode(p, depth))
	t.contribs = append(t.contribs, nil)
	return i
}

// LogProbability returns the natural logarithm of the probability that the
// weighted model assigns to all bits presented so far. The function may be
// called repeatedly; it doesn't change the statistics of the tree.
func (t *Tree) LogProbability() float64 {
	for i := range t.contribs {
		t.contribs[i] = t.contribs[i][:0]
	}
	var lp float64
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := &t.nodes[i]
		v := t.foldNode(i)
		t.contribs[i] = t.contribs[i][:0]
		if n.parent == noNode {
			lp = v
			continue
		}
		if n.parent >= i {
			panic("ctw: parent stored after child")
		}
		t.contribs[n.parent] = append(t.contribs[n.parent], v)
	}
	return lp
}

// foldNode computes the log-probability of the subtree rooted at node i
// from the contributions its children registered.
func (t *Tree) foldNode(i int) float64 {
	n := &t.nodes[i]
	if t.opts.Weighting == StandardWeighting && n.depth == t.depth {
		return n.logP
	}
	return n.fold(t.contribs[i])
}

// checkBits returns ErrInvalidBit if p contains a value other than 0 or 1.
func checkBits(p []byte) error {
	for _, b := range p {
		if b > 1 {
			return ErrInvalidBit
		}
	}
	return nil
}
