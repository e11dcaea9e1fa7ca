// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctw implements context tree weighting for binary sequences.
//
// A Tree mixes Krichevsky-Trofimov estimates over all context lengths up to
// a maximum depth. Bits are presented either with a context taken from the
// sequence itself or with a context that interleaves the history of a
// companion sequence. The log-probability computed by the tree can be used
// to estimate entropy rates; package nid uses it to estimate the normalized
// information distance of two sequences.
//
// The zero value of Options trains D nodes per bit and skips the bit
// directly following the context window. The alignment of the window
// and the treatment of the leaves can be changed to obtain a standard
// context tree weighting model.
package ctw
