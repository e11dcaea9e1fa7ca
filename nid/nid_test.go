// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nid

import (
	"bytes"
	"errors"
	"log"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/ulikunitz/ctw"
	"github.com/ulikunitz/ctw/internal/randbits"
)

var testOptions = []ctw.Options{
	{},
	{Alignment: ctw.AdjacentContext},
	{Weighting: ctw.StandardWeighting},
	{Alignment: ctw.AdjacentContext, Weighting: ctw.StandardWeighting},
}

func TestDistanceLengthMismatch(t *testing.T) {
	d, err := Distance([]byte{0, 1, 1}, []byte{0, 1}, 2)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Distance returned %g, %v; want error %v", d, err,
			ErrLengthMismatch)
	}
	_, err = Estimate([]byte{0, 1, 1}, []byte{0, 1}, Config{})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Estimate error %v; want %v", err, ErrLengthMismatch)
	}
	_, err = ConditionalEntropyRate([]byte{0}, nil, Config{})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("ConditionalEntropyRate error %v; want %v", err,
			ErrLengthMismatch)
	}
}

func TestEstimateErrors(t *testing.T) {
	x := []byte{0, 1, 1, 0, 1}
	if _, err := Distance(nil, nil, 3); err != ErrEmptySequence {
		t.Errorf("Distance(nil, nil) error %v; want %v", err,
			ErrEmptySequence)
	}
	for _, d := range []int{0, -2, ctw.MaxDepth + 1} {
		_, err := Distance(x, x, d)
		if !errors.Is(err, ctw.ErrInvalidDepth) {
			t.Errorf("Distance depth %d error %v; want %v", d, err,
				ctw.ErrInvalidDepth)
		}
	}
	_, err := Distance(x, x, 4)
	if !errors.Is(err, ErrShortSequence) {
		t.Errorf("Distance for short sequence error %v; want %v",
			err, ErrShortSequence)
	}
	_, err = Estimate(x, x, Config{Workers: -1})
	if err == nil {
		t.Errorf("Estimate accepted negative Workers")
	}
	_, err = EntropyRate(nil, Config{})
	if err != ErrEmptySequence {
		t.Errorf("EntropyRate(nil) error %v; want %v", err,
			ErrEmptySequence)
	}
	var cfg *Config
	if err = cfg.Verify(); err == nil {
		t.Errorf("nil Config verified")
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	if cfg.Depth != DefaultDepth {
		t.Errorf("Depth %d; want %d", cfg.Depth, DefaultDepth)
	}
	if !(1 <= cfg.Workers && cfg.Workers <= maxWorkers) {
		t.Errorf("Workers %d; want in [1,%d]", cfg.Workers, maxWorkers)
	}
	if err := cfg.Verify(); err != nil {
		t.Errorf("Verify error %s", err)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	for i := int64(0); i < 5; i++ {
		x := randbits.Bernoulli(rand.NewSource(2*i), 1000, 0.5)
		y := randbits.Flip(rand.NewSource(2*i+1), x, 0.2)
		for _, d := range []int{1, 3, 6} {
			a, err := Distance(x, y, d)
			if err != nil {
				t.Fatalf("Distance error %s", err)
			}
			b, err := Distance(y, x, d)
			if err != nil {
				t.Fatalf("Distance error %s", err)
			}
			if a != b {
				t.Fatalf("Distance(x, y)=%g; Distance(y, x)=%g",
					a, b)
			}
		}
	}
}

func TestDistanceOrdering(t *testing.T) {
	const n = 8192
	x := randbits.Bernoulli(rand.NewSource(1), n, 0.5)
	noisy := randbits.Flip(rand.NewSource(2), x, 0.1)
	indep := randbits.Bernoulli(rand.NewSource(3), n, 0.5)
	for _, opts := range testOptions {
		cfg := Config{Depth: 4, Options: opts, Workers: 1}
		dist := func(y []byte) float64 {
			r, err := Estimate(x, y, cfg)
			if err != nil {
				t.Fatalf("Estimate error %s", err)
			}
			return r.Distance
		}
		same, near, far := dist(x), dist(noisy), dist(indep)
		if opts.Weighting != ctw.StandardWeighting {
			// All rates are dominated by the untrained leaves; only
			// a side sequence equal to the target is recognized.
			if !(same < 0.9) {
				t.Errorf("%+v: distance to itself %g", opts, same)
			}
			for _, d := range []float64{near, far} {
				if math.Abs(d-1) > 1e-6 {
					t.Errorf("%+v: distance %g; want 1", opts, d)
				}
			}
			continue
		}
		if !(same < 0.1) {
			t.Errorf("%+v: distance to itself %g", opts, same)
		}
		if !(same < near && near < far) {
			t.Errorf("%+v: distances %g, %g, %g not increasing",
				opts, same, near, far)
		}
		if !(0.9 < far && far < 1.2) {
			t.Errorf("%+v: distance of independent sequences %g",
				opts, far)
		}
	}
}

func TestWorkersSameResult(t *testing.T) {
	m, err := randbits.NewMarkov(rand.NewSource(4),
		[]float64{0.8, 0.4, 0.3, 0.1})
	if err != nil {
		t.Fatalf("NewMarkov error %s", err)
	}
	x := m.Bits(4000)
	y := randbits.Flip(rand.NewSource(5), x, 0.3)
	serial, err := Estimate(x, y, Config{Depth: 6, Workers: 1})
	if err != nil {
		t.Fatalf("Estimate error %s", err)
	}
	parallel, err := Estimate(x, y, Config{Depth: 6, Workers: 4})
	if err != nil {
		t.Fatalf("Estimate error %s", err)
	}
	if diff := pretty.Diff(serial, parallel); len(diff) > 0 {
		t.Fatalf("results differ:\n%s", pretty.Sprint(diff))
	}
	d, err := Distance(x, y, 6)
	if err != nil {
		t.Fatalf("Distance error %s", err)
	}
	if d != serial.Distance {
		t.Fatalf("Distance %g; Estimate distance %g", d,
			serial.Distance)
	}
}

func TestEntropyRate(t *testing.T) {
	const (
		n = 1 << 14
		d = 4
	)
	zeros := make([]byte, n)
	random := randbits.Bernoulli(rand.NewSource(6), n, 0.5)
	for _, opts := range testOptions {
		cfg := Config{Depth: d, Options: opts}
		h, err := EntropyRate(zeros, cfg)
		if err != nil {
			t.Fatalf("EntropyRate error %s", err)
		}
		if !(0 < h && h < 0.001) {
			t.Errorf("%+v: rate for zeros %g", opts, h)
		}
		h, err = EntropyRate(random, cfg)
		if err != nil {
			t.Fatalf("EntropyRate error %s", err)
		}
		hc, err := ConditionalEntropyRate(random, random, cfg)
		if err != nil {
			t.Fatalf("ConditionalEntropyRate error %s", err)
		}
		if opts.Weighting != ctw.StandardWeighting {
			// The log-probability settles at (2^d - 1) folds of
			// the untrained leaves regardless of the length.
			want := float64(1<<d-1) * math.Ln2 / n
			if math.Abs(h-want) > 1e-12 {
				t.Errorf("%+v: rate for random bits %g; want %g",
					opts, h, want)
			}
			if !(0 < hc && hc < h) {
				t.Errorf("%+v: H(X|X) is %g; H(X) is %g", opts,
					hc, h)
			}
			continue
		}
		if math.Abs(h-math.Ln2) > 0.05 {
			t.Errorf("%+v: rate for random bits %g; want about %g",
				opts, h, math.Ln2)
		}
		if !(hc < 0.01) {
			t.Errorf("%+v: H(X|X) is %g", opts, hc)
		}
	}
}

func TestNilPointerLogger(t *testing.T) {
	x := randbits.Bernoulli(rand.NewSource(8), 256, 0.5)
	var lg *log.Logger
	r, err := Estimate(x, x, Config{Depth: 3, Workers: 1, Logger: lg})
	if err != nil {
		t.Fatalf("Estimate error %s", err)
	}
	want, err := Estimate(x, x, Config{Depth: 3, Workers: 1})
	if err != nil {
		t.Fatalf("Estimate error %s", err)
	}
	if diff := pretty.Diff(r, want); len(diff) > 0 {
		t.Fatalf("results differ:\n%s", pretty.Sprint(diff))
	}
}

func TestResultBits(t *testing.T) {
	r := Result{HX: math.Ln2, HY: 2 * math.Ln2, HXGivenY: 0,
		HYGivenX: math.Ln2 / 2, Distance: 0.25}
	got := r.Bits()
	want := Result{HX: 1, HY: 2, HXGivenY: 0, HYGivenX: 0.5,
		Distance: 0.25}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Fatalf("Bits differences:\n%s", pretty.Sprint(diff))
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	x := randbits.Bernoulli(rand.NewSource(7), 256, 0.5)
	cfg := Config{Depth: 3, Workers: 2, Logger: log.New(&buf, "", 0)}
	if _, err := Estimate(x, x, cfg); err != nil {
		t.Fatalf("Estimate error %s", err)
	}
	s := buf.String()
	for _, name := range []string{"H(X): ", "H(Y): ", "H(X|Y): ",
		"H(Y|X): ", "distance ", "tree stats ", "PerDepth:"} {
		if !strings.Contains(s, name) {
			t.Errorf("log output doesn't contain %q:\n%s", name, s)
		}
	}
}
