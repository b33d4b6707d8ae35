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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/midi2/to7bit/sevenbit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default",
			args: []string{"300"},
			want: "0b101100\n0b10\n",
		},
		{
			name: "zero hex",
			args: []string{"--repr", "hex", "0"},
			want: "0x0\n",
		},
		{
			name: "zero bin",
			args: []string{"0"},
			want: "0b0\n",
		},
		{
			name: "single group dec",
			args: []string{"-r", "dec", "127"},
			want: "127\n",
		},
		{
			name: "leading zeros",
			args: []string{"-r", "dec", "-l", "4", "5"},
			want: "0005\n",
		},
		{
			name: "long options",
			args: []string{"--repr=hex", "--leading_zeros=2", "300"},
			want: "0x2C\n0x02\n",
		},
		{
			name: "bin full width",
			args: []string{"-l", "7", "128"},
			want: "0b0000000\n0b0000001\n",
		},
		{
			name: "min chunks",
			args: []string{"-c", "3", "-r", "dec", "1"},
			want: "1\n0\n0\n",
		},
		{
			name: "json",
			args: []string{"--json", "-r", "hex", "16384"},
			want: `["0x0","0x0","0x1"]` + "\n",
		},
		{
			name: "big",
			args: []string{"-r", "dec", "18446744073709551616"},
			want: strings.Repeat("0\n", 9) + "2\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)
			require.Equal(t, exitOK, code, stderr.String())
			assert.Equal(t, tc.want, stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{name: "missing input", args: []string{}, code: exitUsage, msg: "Usage:"},
		{name: "malformed input", args: []string{"abc"}, code: exitUsage, msg: sevenbit.ErrMalformedInput.Error()},
		{name: "float input", args: []string{"1.5"}, code: exitUsage, msg: sevenbit.ErrMalformedInput.Error()},
		{name: "unknown repr", args: []string{"--repr", "oct", "5"}, code: exitUsage, msg: sevenbit.ErrUnsupportedRepr.Error()},
		{name: "unknown flag", args: []string{"--bogus", "5"}, code: exitUsage, msg: "Usage:"},
		{name: "extra input", args: []string{"1", "2"}, code: exitUsage, msg: "Usage:"},
		{name: "bad width", args: []string{"--leading_zeros=x", "5"}, code: exitUsage, msg: "--leading_zeros"},
		{name: "negative width", args: []string{"--leading_zeros=-1", "5"}, code: exitUsage, msg: sevenbit.ErrNegativeWidth.Error()},
		{name: "negative chunks", args: []string{"--chunks=-1", "5"}, code: exitUsage, msg: sevenbit.ErrNegativeWidth.Error()},
		{name: "negative input", args: []string{"--", "-5"}, code: exitFailure, msg: sevenbit.ErrNegativeInput.Error()},
		{name: "bare negative input", args: []string{"-5"}, code: exitFailure, msg: sevenbit.ErrNegativeInput.Error()},
		{name: "negative input after options", args: []string{"-r", "hex", "-5"}, code: exitFailure, msg: sevenbit.ErrNegativeInput.Error()},
		{name: "negative input before options", args: []string{"-300", "--repr=dec"}, code: exitFailure, msg: sevenbit.ErrNegativeInput.Error()},
		{name: "negative short width", args: []string{"-l", "-1", "5"}, code: exitUsage, msg: sevenbit.ErrNegativeWidth.Error()},
		{name: "huge width", args: []string{"--leading_zeros=100000000000", "5"}, code: exitUsage, msg: sevenbit.ErrWidthTooLarge.Error()},
		{name: "huge chunks", args: []string{"-c", "1000000", "5"}, code: exitUsage, msg: sevenbit.ErrWidthTooLarge.Error()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)
			assert.Equal(t, tc.code, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), tc.msg)
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "--leading_zeros=N")
	assert.Empty(t, stderr.String())

	stdout.Reset()
	code = run([]string{"--version"}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, version+"\n", stdout.String())
}

func TestSeparateNegative(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want []string
	}{
		{[]string{"-5"}, []string{"--", "-5"}},
		{[]string{"-r", "hex", "-5"}, []string{"-r", "hex", "--", "-5"}},
		{[]string{"-5", "--json"}, []string{"--json", "--", "-5"}},
		{[]string{"-l", "-1", "5"}, []string{"-l", "-1", "5"}},
		{[]string{"--", "-5"}, []string{"--", "-5"}},
		{[]string{"-r", "dec", "300"}, []string{"-r", "dec", "300"}},
		{[]string{"-x"}, []string{"-x"}},
	} {
		assert.Equal(t, tc.want, separateNegative(tc.args), "%q", tc.args)
	}
}

func TestProcessWritesNothingOnError(t *testing.T) {
	var w bytes.Buffer
	err := process(&w, config{Input: "-300", Opts: sevenbit.Options{Repr: sevenbit.Hex}})
	assert.ErrorIs(t, err, sevenbit.ErrNegativeInput)
	assert.Zero(t, w.Len())
}
