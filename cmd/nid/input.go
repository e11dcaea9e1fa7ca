// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/ctw"
)

var errStdinUsed = errors.New("standard input can be used only once")

// input describes how the files are converted into bit sequences.
type input struct {
	text    bool
	maxBits int
	stdin   io.Reader
	// stdin may only be read once
	stdinUsed bool
}

// read opens the named file, or the standard input for "-", and returns its
// bit sequence.
func (in *input) read(name string) (seq []byte, err error) {
	var r io.Reader
	if name == "-" {
		if in.stdinUsed {
			return nil, errStdinUsed
		}
		in.stdinUsed = true
		r = in.stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if seq, err = in.bits(r); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return seq, nil
}

// bits converts the content of r into a bit sequence.
func (in *input) bits(r io.Reader) ([]byte, error) {
	if !in.text {
		return ctw.ReadBits(r, in.maxBits)
	}
	p, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	seq, err := ctw.ParseBits(string(p))
	if err != nil {
		return nil, err
	}
	if in.maxBits > 0 && len(seq) > in.maxBits {
		seq = seq[:in.maxBits]
	}
	return seq, nil
}
