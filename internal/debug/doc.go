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
Package debug provides build-tag gated assertions and trace logging for to7bit.

Assertions check the group layout invariants of the encoder, for example that a
padded bit string always splits into whole 7-bit groups:

	go test -tags assert ./...

Trace logging reports each encoding on stderr with a "[D] " prefix:

	go run -tags debug ./cmd/to7bit 300

Without the tags both helpers compile to empty functions.
*/
package debug
