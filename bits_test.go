// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctw

import (
	"bytes"
	"strings"
	"testing"
)

func TestBits(t *testing.T) {
	tests := []struct {
		p    []byte
		want string
	}{
		{nil, ""},
		{[]byte{0x80}, "10000000"},
		{[]byte{0x01, 0xa5}, "00000001 10100101"},
	}
	for _, c := range tests {
		want, err := ParseBits(c.want)
		if err != nil {
			t.Fatalf("ParseBits(%q) error %s", c.want, err)
		}
		got := Bits(c.p)
		if !bytes.Equal(got, want) {
			t.Errorf("Bits(%x) is %v; want %v", c.p, got, want)
		}
	}
}

func TestParseBits(t *testing.T) {
	seq, err := ParseBits(" 01\n1\t0 ")
	if err != nil {
		t.Fatalf("ParseBits error %s", err)
	}
	if !bytes.Equal(seq, []byte{0, 1, 1, 0}) {
		t.Fatalf("ParseBits returned %v", seq)
	}
	if _, err = ParseBits("0120"); err == nil {
		t.Fatalf("ParseBits accepted '2'")
	}
}

func TestReadBits(t *testing.T) {
	tests := []struct {
		limit int
		n     int
	}{
		{0, 24},
		{3, 3},
		{8, 8},
		{9, 9},
		{100, 24},
	}
	for _, c := range tests {
		seq, err := ReadBits(strings.NewReader("abc"), c.limit)
		if err != nil {
			t.Fatalf("ReadBits error %s", err)
		}
		if len(seq) != c.n {
			t.Errorf("ReadBits(limit=%d) returned %d bits; want %d",
				c.limit, len(seq), c.n)
		}
		if !bytes.Equal(seq, Bits([]byte("abc"))[:len(seq)]) {
			t.Errorf("ReadBits(limit=%d) returned %v", c.limit, seq)
		}
	}
}
