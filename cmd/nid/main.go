// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nid estimates the normalized information distance of two files.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"

	"github.com/ulikunitz/ctw"
	"github.com/ulikunitz/ctw/nid"
)

const (
	version  = "0.1"
	usageStr = `Usage: nid [OPTION]... FILE1 FILE2
Estimate the normalized information distance of the bit sequences in FILE1
and FILE2 using context tree weighting.

  -a, --adjacent      model the bit directly following the context window
  -b, --bits          report entropy rates in bits instead of nats
      --debug         print the full result and tree statistics
  -d, --depth=N       context depth; default is 8
  -h, --help          give this help
  -j, --workers=N     number of trees computed concurrently
  -n, --max-bits=N    use at most N bits of every file
  -s, --standard      use standard context tree weighting for the leaves
  -t, --text          files contain the characters 0 and 1
  -v, --verbose       print the entropy rates
  -V, --version       display version string

When FILE is -, read standard input. Both files must provide the same number
of bits.
`
)

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		adjacent = pflag.BoolP("adjacent", "a", false, "")
		inBits   = pflag.BoolP("bits", "b", false, "")
		debug    = pflag.Bool("debug", false, "")
		depth    = pflag.IntP("depth", "d", nid.DefaultDepth, "")
		help     = pflag.BoolP("help", "h", false, "")
		workers  = pflag.IntP("workers", "j", 0, "")
		maxBits  = pflag.IntP("max-bits", "n", 0, "")
		standard = pflag.BoolP("standard", "s", false, "")
		text     = pflag.BoolP("text", "t", false, "")
		verbose  = pflag.BoolP("verbose", "v", false, "")
		showVer  = pflag.BoolP("version", "V", false, "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *showVer {
		fmt.Printf("nid %s\n", version)
		os.Exit(0)
	}
	if pflag.NArg() != 2 {
		log.Fatal("two files required; for help, type nid -h")
	}

	in := input{text: *text, maxBits: *maxBits, stdin: os.Stdin}
	x, err := in.read(pflag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	y, err := in.read(pflag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}

	cfg := nid.Config{Depth: *depth, Workers: *workers}
	if *adjacent {
		cfg.Options.Alignment = ctw.AdjacentContext
	}
	if *standard {
		cfg.Options.Weighting = ctw.StandardWeighting
	}
	if *debug {
		cfg.Logger = log.New(os.Stderr, cmdName+": ", 0)
	}

	r, err := nid.Estimate(x, y, cfg)
	switch err {
	case nil:
	case nid.ErrLengthMismatch:
		log.Fatalf("incomparable: %s has %d bits, %s has %d bits",
			pflag.Arg(0), len(x), pflag.Arg(1), len(y))
	default:
		log.Fatal(err)
	}

	unit := "nats"
	if *inBits {
		r = r.Bits()
		unit = "bits"
	}
	if *debug {
		pretty.Println(r)
	}
	if *verbose {
		fmt.Printf("H(X)   %.6f %s/symbol\n", r.HX, unit)
		fmt.Printf("H(Y)   %.6f %s/symbol\n", r.HY, unit)
		fmt.Printf("H(X|Y) %.6f %s/symbol\n", r.HXGivenY, unit)
		fmt.Printf("H(Y|X) %.6f %s/symbol\n", r.HYGivenX, unit)
	}
	fmt.Printf("%.6f\n", r.Distance)
}
