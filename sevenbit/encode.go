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

package sevenbit

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/midi2/to7bit/internal/debug"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"
)

const (
	// GroupBits is the number of value bits carried by one group.
	GroupBits = 7
	// GroupMask selects the low GroupBits bits of a value.
	GroupMask = 1<<GroupBits - 1

	// MaxWidth bounds Options.Width and the width passed to Format.
	MaxWidth = 4096
	// MaxChunks bounds Options.MinChunks.
	MaxChunks = 1 << 16
)

// Options control how Render lays out and prints the groups of a value.
type Options struct {
	Repr Repr
	// Width is the minimum number of digits per group, zero for natural width.
	Width int
	// MinChunks zero-extends the output to at least this many groups.
	MinChunks int
}

func (o Options) validate() error {
	switch {
	case !o.Repr.valid():
		return xerrors.Errorf("sevenbit: %v: %w", o.Repr, ErrUnsupportedRepr)
	case o.MinChunks < 0:
		return xerrors.Errorf("sevenbit: chunk count %d: %w", o.MinChunks, ErrNegativeWidth)
	case o.MinChunks > MaxChunks:
		return xerrors.Errorf("sevenbit: chunk count %d above %d: %w", o.MinChunks, MaxChunks, ErrWidthTooLarge)
	}
	return checkWidth(o.Width)
}

// ParseInt parses a base 10 integer with an optional sign.
func ParseInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, xerrors.Errorf("sevenbit: %q: %w", s, ErrMalformedInput)
	}
	return v, nil
}

// Bits returns the binary digits of v, most significant first, without
// leading zeros. Zero is "0".
func Bits(v *big.Int) (string, error) {
	if v.Sign() < 0 {
		return "", xerrors.Errorf("sevenbit: %s: %w", v, ErrNegativeInput)
	}
	return v.Text(2), nil
}

// Pad left-pads bits with '0' until its length is a multiple of GroupBits.
func Pad(bits string) string {
	if r := len(bits) % GroupBits; r != 0 {
		return strings.Repeat("0", GroupBits-r) + bits
	}
	return bits
}

// Split cuts padded into groups of GroupBits digits, most significant first.
func Split(padded string) []string {
	debug.Assert(len(padded)%GroupBits == 0, "sevenbit: split of unpadded bit string")
	groups := make([]string, 0, len(padded)/GroupBits)
	for i := 0; i+GroupBits <= len(padded); i += GroupBits {
		groups = append(groups, padded[i:i+GroupBits])
	}
	return groups
}

// Chunks returns the 7-bit groups of v, least significant group first.
func Chunks(v *big.Int) ([]uint8, error) {
	bits, err := Bits(v)
	if err != nil {
		return nil, err
	}

	groups := Split(Pad(bits))
	slices.Reverse(groups)

	out := make([]uint8, len(groups))
	for i, g := range groups {
		c, err := strconv.ParseUint(g, 2, 8)
		if err != nil {
			return nil, xerrors.Errorf("sevenbit: group %q: %w", g, err)
		}
		out[i] = uint8(c)
	}
	debug.Assert(len(out) > 0, "sevenbit: empty group sequence")
	return out, nil
}

// ChunksUint is Chunks for machine integers.
func ChunksUint[T constraints.Unsigned](v T) []uint8 {
	out := []uint8{uint8(v & GroupMask)}
	for v >>= GroupBits; v != 0; v >>= GroupBits {
		out = append(out, uint8(v&GroupMask))
	}
	return out
}

// FixedChunks returns exactly n groups of v, least significant first. Bits
// above 7*n are dropped, as when packing a 14, 21 or 28 bit field.
func FixedChunks[T constraints.Unsigned](v T, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8((v >> uint(i*GroupBits)) & GroupMask)
	}
	return out
}

// Render returns the groups of v in output order, each formatted according
// to opts. Nothing is returned unless every group renders.
func Render(v *big.Int, opts Options) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	chunks, err := Chunks(v)
	if err != nil {
		return nil, err
	}
	for len(chunks) < opts.MinChunks {
		chunks = append(chunks, 0)
	}
	debug.Logf("sevenbit: %s -> %d groups %v", v, len(chunks), chunks)

	f := reprFormats[opts.Repr]
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = format(c, f, opts.Width)
	}
	return out, nil
}
