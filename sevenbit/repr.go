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
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Repr is the numeral system a group is rendered in.
type Repr int8

const (
	Bin Repr = iota // 0b prefixed binary
	Hex             // 0x prefixed upper case hexadecimal
	Dec             // unprefixed decimal
)

type reprFormat struct {
	name   string
	prefix string
	base   int
	upper  bool
}

var reprFormats = [...]reprFormat{
	Bin: {name: "bin", prefix: "0b", base: 2},
	Hex: {name: "hex", prefix: "0x", base: 16, upper: true},
	Dec: {name: "dec", base: 10},
}

func (r Repr) valid() bool { return r >= 0 && int(r) < len(reprFormats) }

func (r Repr) String() string {
	if !r.valid() {
		return "Repr(" + strconv.Itoa(int(r)) + ")"
	}
	return reprFormats[r].name
}

// ParseRepr returns the Repr named s. Only "bin", "hex" and "dec" are accepted.
func ParseRepr(s string) (Repr, error) {
	for r, f := range reprFormats {
		if f.name == s {
			return Repr(r), nil
		}
	}
	return 0, xerrors.Errorf("sevenbit: %q: %w", s, ErrUnsupportedRepr)
}

// Format renders the group c in r, zero-padding the digits to at least width.
// A width of zero leaves the natural number of digits, so 0 renders as 0b0.
func Format(c uint8, r Repr, width int) (string, error) {
	if !r.valid() {
		return "", xerrors.Errorf("sevenbit: %v: %w", r, ErrUnsupportedRepr)
	}
	if err := checkWidth(width); err != nil {
		return "", err
	}
	return format(c, reprFormats[r], width), nil
}

func checkWidth(width int) error {
	switch {
	case width < 0:
		return xerrors.Errorf("sevenbit: width %d: %w", width, ErrNegativeWidth)
	case width > MaxWidth:
		return xerrors.Errorf("sevenbit: width %d above %d: %w", width, MaxWidth, ErrWidthTooLarge)
	}
	return nil
}

func format(c uint8, f reprFormat, width int) string {
	digits := strconv.FormatUint(uint64(c), f.base)
	if f.upper {
		digits = strings.ToUpper(digits)
	}
	var sb strings.Builder
	sb.Grow(len(f.prefix) + max(width, len(digits)))
	sb.WriteString(f.prefix)
	for i := len(digits); i < width; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(digits)
	return sb.String()
}
