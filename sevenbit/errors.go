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

import "golang.org/x/xerrors"

var (
	// ErrMalformedInput is returned when an input is not a base 10 integer.
	ErrMalformedInput = xerrors.New("malformed integer")
	// ErrNegativeInput is returned for values below zero.
	ErrNegativeInput = xerrors.New("negative values are not supported")
	// ErrUnsupportedRepr is returned for a representation outside of bin, hex and dec.
	ErrUnsupportedRepr = xerrors.New("unsupported representation")
	// ErrNegativeWidth is returned for a negative digit width or group count.
	ErrNegativeWidth = xerrors.New("width must not be negative")
	// ErrWidthTooLarge is returned for a digit width above MaxWidth or a group
	// count above MaxChunks.
	ErrWidthTooLarge = xerrors.New("width too large")
)
