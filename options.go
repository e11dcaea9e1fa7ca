// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctw

import (
	"errors"
	"fmt"
)

// Alignment defines which bit of a sequence is modeled by a context window
// in single-sequence mode.
type Alignment int

const (
	// LaggedContext models seq[i+1] using the window seq[i-D:i]. The bit
	// seq[i] between window and modeled bit is skipped.
	LaggedContext Alignment = iota
	// AdjacentContext models seq[i] using the window seq[i-D:i].
	AdjacentContext
)

// String returns a name for the alignment.
func (a Alignment) String() string {
	switch a {
	case LaggedContext:
		return "lagged"
	case AdjacentContext:
		return "adjacent"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// Weighting selects how the leaves of the context tree are trained and
// folded.
type Weighting int

const (
	// DefaultWeighting updates D nodes per bit, the nodes at depth D
	// are created but never trained. Every node, including the leaves,
	// mixes its estimate with the sum of its children contributions at
	// weight 1/2 each. The untrained leaves bound the log-probability
	// of a tree from below by about -(2^D-1)*ln 2 once all contexts
	// have been seen, so rates of long sequences approach zero.
	DefaultWeighting Weighting = iota
	// StandardWeighting updates D+1 nodes per bit and the leaves at
	// depth D contribute their own estimate only.
	StandardWeighting
)

// String returns a name for the weighting.
func (w Weighting) String() string {
	switch w {
	case DefaultWeighting:
		return "default"
	case StandardWeighting:
		return "standard"
	}
	return fmt.Sprintf("Weighting(%d)", int(w))
}

// Options control details of the model. The zero value selects
// LaggedContext and DefaultWeighting.
type Options struct {
	Alignment Alignment
	Weighting Weighting
}

// Verify checks the options for unsupported values.
func (o Options) Verify() error {
	switch o.Alignment {
	case LaggedContext, AdjacentContext:
	default:
		return errors.New("ctw: unsupported alignment")
	}
	switch o.Weighting {
	case DefaultWeighting, StandardWeighting:
	default:
		return errors.New("ctw: unsupported weighting")
	}
	return nil
}
