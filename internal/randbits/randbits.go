// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randbits provides reproducible sources of random bit sequences. The
// sources are used for testing and benchmarking the estimators.
package randbits

import (
	"errors"
	"math/rand"
)

// Bernoulli returns n bits that are 1 with probability p.
func Bernoulli(src rand.Source, n int, p float64) []byte {
	rnd := rand.New(src)
	seq := make([]byte, n)
	for i := range seq {
		if rnd.Float64() < p {
			seq[i] = 1
		}
	}
	return seq
}

// Flip returns a copy of seq where every bit has been inverted with
// probability p.
func Flip(src rand.Source, seq []byte, p float64) []byte {
	rnd := rand.New(src)
	out := make([]byte, len(seq))
	for i, b := range seq {
		if rnd.Float64() < p {
			b ^= 1
		}
		out[i] = b
	}
	return out
}

// Markov generates bits using a binary Markov source. The probability for a
// 1 bit depends on the last order bits.
type Markov struct {
	rnd   *rand.Rand
	probs []float64
	mask  uint
	state uint
}

// NewMarkov creates a Markov source. The value probs[c] is the probability
// of a 1 bit following the context c, where the most recent bit is the
// least-significant bit of c. The length of probs must be a power of 2; a
// single probability describes a memoryless source.
func NewMarkov(src rand.Source, probs []float64) (m *Markov, err error) {
	n := len(probs)
	if n == 0 || n&(n-1) != 0 {
		return nil, errors.New(
			"randbits: number of probabilities must be a power of 2")
	}
	for _, p := range probs {
		if !(0 <= p && p <= 1) {
			return nil, errors.New(
				"randbits: probability outside [0,1]")
		}
	}
	m = &Markov{
		rnd:   rand.New(src),
		probs: append([]float64(nil), probs...),
		mask:  uint(n - 1),
	}
	return m, nil
}

// Order returns the number of bits the source remembers.
func (m *Markov) Order() int {
	k := 0
	for x := m.mask; x != 0; x >>= 1 {
		k++
	}
	return k
}

// Bit returns the next bit of the source.
func (m *Markov) Bit() byte {
	var b byte
	if m.rnd.Float64() < m.probs[m.state] {
		b = 1
	}
	m.state = ((m.state << 1) | uint(b)) & m.mask
	return b
}

// Bits returns the next n bits of the source.
func (m *Markov) Bits(n int) []byte {
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = m.Bit()
	}
	return seq
}

// Read fills p with bytes composed of the bits of the source, the first bit
// becoming the most-significant bit. It never returns an error.
func (m *Markov) Read(p []byte) (n int, err error) {
	for i := range p {
		var c byte
		for k := 0; k < 8; k++ {
			c = (c << 1) | m.Bit()
		}
		p[i] = c
	}
	return len(p), nil
}
