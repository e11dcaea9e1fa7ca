// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nid estimates the normalized information distance of two binary
// sequences.
//
// The entropy rates H(X), H(Y) and the conditional entropy rates H(X|Y),
// H(Y|X) are estimated with context tree weighting models. The distance is
// max(H(X|Y), H(Y|X)) / max(H(X), H(Y)). It is nominally in [0,1] but
// finite samples may produce values outside that range; they are not
// clamped. All rates are given in nats per symbol.
package nid

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/kr/pretty"

	"github.com/ulikunitz/ctw"
	"github.com/ulikunitz/ctw/xlog"
)

// Errors returned by the estimators. ErrLengthMismatch reports sequences
// that cannot be compared.
var (
	ErrLengthMismatch = ctw.ErrLengthMismatch
	ErrEmptySequence  = errors.New("nid: empty sequence")
	ErrShortSequence  = errors.New(
		"nid: sequence too short for context depth")
)

// Result contains the estimated entropy rates and the distance.
type Result struct {
	HX       float64
	HY       float64
	HXGivenY float64
	HYGivenX float64
	Distance float64
}

// Bits returns the result with the entropy rates converted to bits per
// symbol. The distance is a ratio and doesn't change.
func (r Result) Bits() Result {
	return Result{
		HX:       r.HX / math.Ln2,
		HY:       r.HY / math.Ln2,
		HXGivenY: r.HXGivenY / math.Ln2,
		HYGivenX: r.HYGivenX / math.Ln2,
		Distance: r.Distance,
	}
}

// job describes a single entropy rate to compute. If side is nil the rate
// of seq alone is estimated.
type job struct {
	name string
	seq  []byte
	side []byte
	rate *float64
}

// run builds a tree for the job and stores the rate.
func (j *job) run(cfg *Config) error {
	t, err := ctw.NewTree(cfg.Depth, cfg.Options)
	if err != nil {
		return err
	}
	if j.side == nil {
		err = t.PresentSequence(j.seq)
	} else {
		err = t.PresentSequenceWithSideInfo(j.seq, j.side)
	}
	if err != nil {
		return fmt.Errorf("nid: %s: %w", j.name, err)
	}
	if t.Presented() == 0 {
		return fmt.Errorf("%w: %d bits for depth %d",
			ErrShortSequence, len(j.seq), cfg.Depth)
	}
	*j.rate = -t.LogProbability() / float64(len(j.seq))
	if l := xlog.WithPrefix(cfg.Logger, j.name+": "); l != nil {
		xlog.Printf(l, "%d nodes, %d bits presented, %.6f nats/symbol",
			t.Len(), t.Presented(), *j.rate)
		xlog.Printf(l, "tree stats %s", pretty.Sprint(t.Stats()))
	}
	return nil
}

// runJobs executes the jobs using cfg.Workers goroutines. Every tree is
// owned by a single goroutine. The first error in job order is returned.
func runJobs(jobs []job, cfg *Config) error {
	if cfg.Workers <= 1 {
		for i := range jobs {
			if err := jobs[i].run(cfg); err != nil {
				return err
			}
		}
		return nil
	}
	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.Workers)
	for i := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			errs[i] = jobs[i].run(cfg)
			<-sem
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// checkPair returns the errors for sequences that cannot be compared.
func checkPair(x, y []byte) error {
	if len(x) != len(y) {
		return ErrLengthMismatch
	}
	if len(x) == 0 {
		return ErrEmptySequence
	}
	return nil
}

// Estimate computes the four entropy rates of x and y and their normalized
// information distance. The sequences must have the same length. Zero values
// in cfg are replaced by defaults.
func Estimate(x, y []byte, cfg Config) (r Result, err error) {
	if err = checkPair(x, y); err != nil {
		return Result{}, err
	}
	cfg.SetDefaults()
	if err = cfg.Verify(); err != nil {
		return Result{}, err
	}
	jobs := []job{
		{name: "H(X)", seq: x, rate: &r.HX},
		{name: "H(Y)", seq: y, rate: &r.HY},
		{name: "H(X|Y)", seq: x, side: y, rate: &r.HXGivenY},
		{name: "H(Y|X)", seq: y, side: x, rate: &r.HYGivenX},
	}
	if err = runJobs(jobs, &cfg); err != nil {
		return Result{}, err
	}
	r.Distance = math.Max(r.HXGivenY, r.HYGivenX) / math.Max(r.HX, r.HY)
	xlog.Printf(cfg.Logger, "distance %.6f", r.Distance)
	return r, nil
}

// Distance returns the estimated normalized information distance of x and y
// using trees of the given depth and the default model options. If the
// sequences differ in length ErrLengthMismatch is returned.
//
// The default options train only D nodes per bit. Once a sequence shows
// every context of length D the log-probability of each tree approaches
// -(2^D-1)*ln 2 regardless of the length, so the rates of long sequences
// tend to zero and distances of unrelated sequences tend to 1. Use
// Estimate with ctw.StandardWeighting for rates that approximate
// the entropy.
func Distance(x, y []byte, depth int) (float64, error) {
	if err := checkPair(x, y); err != nil {
		return 0, err
	}
	cfg := Config{Depth: depth, Workers: 1}
	if err := cfg.Verify(); err != nil {
		return 0, err
	}
	r, err := Estimate(x, y, cfg)
	if err != nil {
		return 0, err
	}
	return r.Distance, nil
}

// EntropyRate estimates the entropy rate of seq in nats per symbol.
func EntropyRate(seq []byte, cfg Config) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return 0, err
	}
	var h float64
	j := job{name: "H", seq: seq, rate: &h}
	if err := j.run(&cfg); err != nil {
		return 0, err
	}
	return h, nil
}

// ConditionalEntropyRate estimates the entropy rate of seq given the
// companion sequence side in nats per symbol.
func ConditionalEntropyRate(seq, side []byte, cfg Config) (float64, error) {
	if err := checkPair(seq, side); err != nil {
		return 0, err
	}
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return 0, err
	}
	var h float64
	j := job{name: "H(.|side)", seq: seq, side: side, rate: &h}
	if err := j.run(&cfg); err != nil {
		return 0, err
	}
	return h, nil
}
