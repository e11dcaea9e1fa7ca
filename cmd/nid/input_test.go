// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInputText(t *testing.T) {
	in := input{text: true, maxBits: 5,
		stdin: strings.NewReader("0110\n1101\n")}
	seq, err := in.read("-")
	if err != nil {
		t.Fatalf("in.read error %s", err)
	}
	if !bytes.Equal(seq, []byte{0, 1, 1, 0, 1}) {
		t.Fatalf("in.read returned %v", seq)
	}
	if _, err = in.read("-"); err == nil {
		t.Fatalf("second read of standard input succeeded")
	}
}

func TestInputFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "a.bin")
	if err := os.WriteFile(name, []byte{0xf0, 0x0f}, 0o644); err != nil {
		t.Fatalf("os.WriteFile error %s", err)
	}
	in := input{}
	seq, err := in.read(name)
	if err != nil {
		t.Fatalf("in.read error %s", err)
	}
	want := []byte{1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1}
	if !bytes.Equal(seq, want) {
		t.Fatalf("in.read returned %v; want %v", seq, want)
	}
	bad := filepath.Join(dir, "b.txt")
	if err = os.WriteFile(bad, []byte("01x"), 0o644); err != nil {
		t.Fatalf("os.WriteFile error %s", err)
	}
	in.text = true
	if _, err = in.read(bad); err == nil {
		t.Fatalf("in.read accepted invalid text")
	}
	if _, err = in.read(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("in.read of missing file succeeded")
	}
}
