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

/*
Package sevenbit splits integers into 7-bit groups, the layout shared by MIDI
variable length quantities, MIDI 2.0 14/21/28-bit fields and protobuf varints.

The binary digits of a value are left-padded with zeros to a multiple of seven,
cut into groups of seven bits and returned least significant group first:

	300 = 0b100101100 -> 0000010 0101100 -> [0b0101100, 0b0000010] -> [44, 2]

Each group can then be rendered in binary, hexadecimal or decimal with Format or
Render. Zero is a single group of value 0. Negative values are rejected with
ErrNegativeInput; no two's-complement width is assumed.
*/
package sevenbit
