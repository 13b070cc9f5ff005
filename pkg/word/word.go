// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package word provides a family of fixed-width value types: opaque
// byte-sequence words (hashes, addresses, bloom filters) and unsigned
// integer words stored with the most-significant limb first.  Every type
// exposes the same canonical big-endian byte form, which is the basis for
// the lossless conversions implemented in the compat package.
package word

import (
	"fmt"
)

// Word abstracts a fixed-width value with a canonical big-endian byte form.
type Word[T any] interface {
	fmt.Stringer
	// Bytes returns the canonical big-endian byte form of this word.  The
	// returned slice always has the full width of the type, including any
	// leading zero bytes.
	Bytes() []byte
	// Set initialises a word of this type from bytes given in big-endian
	// form.  Excess leading bytes are truncated, whilst short inputs are
	// zero-extended on the left.
	Set([]byte) T
	// IsZero checks whether this is the zero value of the type.
	IsZero() bool
	// Equals checks whether this word represents the same value as another.
	Equals(T) bool
	// Hash returns a 64bit hash code suitable for hash table placement.
	Hash() uint64
}

// setBytes writes src into dst following the usual right-alignment
// convention: excess leading bytes of src are dropped, and short inputs
// leave the high-order bytes of dst zeroed.
func setBytes(dst, src []byte) {
	if len(src) > len(dst) {
		src = src[len(src)-len(dst):]
	}
	//
	copy(dst[len(dst)-len(src):], src)
}
