// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command to7bit prints the 7-bit groups of an integer, least significant
// group first, one group per line.
//
// Examples:
//
//	$> to7bit 300
//	0b101100
//	0b10
//
//	$> to7bit --repr hex 0
//	0x0
//
//	$> to7bit -r dec -l 4 -c 4 300
//	0044
//	0002
//	0000
//	0000
//
//	$> to7bit --json -r hex 16384
//	["0x0","0x0","0x1"]
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/goccy/go-json"
	"github.com/midi2/to7bit/sevenbit"
	"golang.org/x/xerrors"
)

const usage = `Convert an integer to its 7-bit array representation (least significant group first).
Usage:
  to7bit [options] [--] <input>
  to7bit -h | --help
  to7bit --version
Options:
  -h --help                Show this screen.
  --version                Show version.
  -r REPR --repr=REPR      Output representation: bin, hex or dec [default: bin].
  -l N --leading_zeros=N   Minimum number of digits per group [default: 0].
  -c N --chunks=N          Minimum number of groups [default: 0].
  --json                   Print a JSON array instead of one group per line.`

const version = "to7bit 1.0.0"

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	Input string
	Opts  sevenbit.Options
	JSON  bool
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "to7bit: ", 0)

	var (
		shown   bool
		helpErr error
		helpMsg string
	)
	parser := &docopt.Parser{
		HelpHandler: func(err error, msg string) {
			shown, helpErr, helpMsg = true, err, msg
		},
	}
	opts, err := parser.ParseArgs(usage, separateNegative(args), version)
	switch {
	case shown && helpErr == nil && err == nil:
		fmt.Fprintln(stdout, helpMsg)
		return exitOK
	case shown:
		if helpErr != nil && helpErr.Error() != "" {
			logger.Print(helpErr)
		}
		fmt.Fprintln(stderr, helpMsg)
		return exitUsage
	case err != nil:
		logger.Print(err)
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}

	cfg, err := newConfig(opts)
	if err != nil {
		logger.Print(err)
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}

	if err := process(stdout, cfg); err != nil {
		logger.Print(err)
		code := exitCode(err)
		if code == exitUsage {
			fmt.Fprintln(stderr, usage)
		}
		return code
	}
	return exitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, sevenbit.ErrMalformedInput),
		errors.Is(err, sevenbit.ErrUnsupportedRepr),
		errors.Is(err, sevenbit.ErrNegativeWidth),
		errors.Is(err, sevenbit.ErrWidthTooLarge):
		return exitUsage
	}
	return exitFailure
}

// valueOptions consume the following argument as their value.
var valueOptions = map[string]bool{
	"-r": true, "--repr": true,
	"-l": true, "--leading_zeros": true,
	"-c": true, "--chunks": true,
}

// separateNegative moves the first negative integer argument behind "--" so
// docopt reads it as <input> instead of a bundle of short options.
func separateNegative(args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return args
		case valueOptions[a]:
			i++
		case strings.HasPrefix(a, "-"):
			if v, err := sevenbit.ParseInt(a); err == nil && v.Sign() < 0 {
				out := make([]string, 0, len(args)+1)
				out = append(out, args[:i]...)
				out = append(out, args[i+1:]...)
				return append(out, "--", a)
			}
		}
	}
	return args
}

func newConfig(opts docopt.Opts) (config, error) {
	var cfg config

	cfg.Input, _ = opts.String("<input>")
	cfg.JSON, _ = opts.Bool("--json")

	name, err := opts.String("--repr")
	if err != nil {
		return cfg, err
	}
	if cfg.Opts.Repr, err = sevenbit.ParseRepr(name); err != nil {
		return cfg, err
	}

	if cfg.Opts.Width, err = opts.Int("--leading_zeros"); err != nil {
		return cfg, xerrors.Errorf("--leading_zeros: %w", err)
	}
	if cfg.Opts.MinChunks, err = opts.Int("--chunks"); err != nil {
		return cfg, xerrors.Errorf("--chunks: %w", err)
	}
	return cfg, nil
}

// process renders cfg.Input and writes it to w. Nothing is written when
// rendering fails.
func process(w io.Writer, cfg config) error {
	v, err := sevenbit.ParseInt(cfg.Input)
	if err != nil {
		return err
	}

	lines, err := sevenbit.Render(v, cfg.Opts)
	if err != nil {
		return err
	}

	if cfg.JSON {
		return json.NewEncoder(w).Encode(lines)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
