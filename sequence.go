// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctw

// PresentSequence presents all bits of seq to the tree. Each bit is modeled
// using the Depth bits preceding it; the alignment option of the tree
// defines the modeled bit exactly. Sequences too short to provide a full
// context present nothing.
func (t *Tree) PresentSequence(seq []byte) error {
	if err := checkBits(seq); err != nil {
		return err
	}
	d := t.depth
	switch t.opts.Alignment {
	case AdjacentContext:
		for i := d; i < len(seq); i++ {
			t.setContext(seq[i-d : i])
			t.traverse(seq[i])
		}
	default:
		for i := d; i+1 < len(seq); i++ {
			t.setContext(seq[i-d : i])
			t.traverse(seq[i+1])
		}
	}
	return nil
}

// PresentSequenceWithSideInfo presents the bits of seq conditioned on the
// companion sequence side. The bit seq[i] is modeled using the target window
// seq[i-D:i] interleaved with the companion window side[i+1-D:i+1], which
// includes the companion bit at the same position. Under LaggedContext the
// final position is not presented.
func (t *Tree) PresentSequenceWithSideInfo(seq, side []byte) error {
	if len(seq) != len(side) {
		return ErrLengthMismatch
	}
	if err := checkBits(seq); err != nil {
		return err
	}
	if err := checkBits(side); err != nil {
		return err
	}
	d := t.depth
	end := len(seq) - 1
	if t.opts.Alignment == AdjacentContext {
		end = len(seq)
	}
	for i := d; i < end; i++ {
		t.setSideContext(seq[i-d:i], side[i+1-d:i+1])
		t.traverse(seq[i])
	}
	return nil
}
