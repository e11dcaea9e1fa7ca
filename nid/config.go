// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nid

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ulikunitz/ctw"
	"github.com/ulikunitz/ctw/xlog"
)

// DefaultDepth is the context depth used if Config.Depth is zero.
const DefaultDepth = 8

// maxWorkers limits the default number of workers; there are only four
// trees to compute.
const maxWorkers = 4

// Config provides the parameters for the estimators.
type Config struct {
	// context depth of the trees
	Depth int
	// model options for all trees
	Options ctw.Options
	// Number of trees computed concurrently.
	Workers int
	// Logger receives debug output including the statistics of
	// every tree; nil disables it. A nil *log.Logger disables it
	// too.
	Logger xlog.Logger
}

// SetDefaults replaces zero values with default values. The number of
// workers is set to the number of CPUs, but not more than four.
func (cfg *Config) SetDefaults() {
	if cfg.Depth == 0 {
		cfg.Depth = DefaultDepth
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
		if cfg.Workers > maxWorkers {
			cfg.Workers = maxWorkers
		}
	}
}

// Verify checks whether the configuration is consistent and correct. Usually
// call SetDefaults before this method.
func (cfg *Config) Verify() error {
	if cfg == nil {
		return errors.New("nid: Config pointer must not be nil")
	}
	if !(1 <= cfg.Depth && cfg.Depth <= ctw.MaxDepth) {
		return fmt.Errorf("%w: %d not in [1,%d]",
			ctw.ErrInvalidDepth, cfg.Depth, ctw.MaxDepth)
	}
	if cfg.Workers < 1 {
		return errors.New("nid: Workers must be larger than 0")
	}
	return cfg.Options.Verify()
}
