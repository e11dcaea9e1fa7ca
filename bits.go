// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctw

import (
	"errors"
	"io"
	"unicode"
)

// Bits converts the bytes in p into a bit sequence. The most-significant bit
// of every byte comes first. Each bit value is stored in its own byte.
func Bits(p []byte) []byte {
	return appendBits(make([]byte, 0, 8*len(p)), p)
}

func appendBits(s, p []byte) []byte {
	for _, c := range p {
		for i := 7; i >= 0; i-- {
			s = append(s, (c>>uint(i))&1)
		}
	}
	return s
}

// errNoBitChar indicates a character that is neither a bit nor white space.
var errNoBitChar = errors.New("ctw: invalid character in bit string")

// ParseBits converts a string of '0' and '1' characters into a bit
// sequence. White space is ignored.
func ParseBits(s string) ([]byte, error) {
	seq := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r == '0':
			seq = append(seq, 0)
		case r == '1':
			seq = append(seq, 1)
		case unicode.IsSpace(r):
		default:
			return nil, errNoBitChar
		}
	}
	return seq, nil
}

// ReadBits reads the bytes of r and returns them as a bit sequence in the
// format of Bits. If limit is positive at most limit bits are returned.
func ReadBits(r io.Reader, limit int) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, int64((limit+7)/8))
	}
	p, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	seq := Bits(p)
	if limit > 0 && len(seq) > limit {
		seq = seq[:limit]
	}
	return seq, nil
}
