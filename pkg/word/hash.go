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
package word

import (
	"encoding/hex"
	"hash/fnv"
)

// Widths (in bytes) of the supported byte-sequence types.
const (
	// Hash128Length is the byte width of a Hash128.
	Hash128Length = 16
	// Hash160Length is the byte width of a Hash160.
	Hash160Length = 20
	// Hash256Length is the byte width of a Hash256.
	Hash256Length = 32
	// Hash512Length is the byte width of a Hash512.
	Hash512Length = 64
	// BloomLength is the byte width of a Bloom.
	BloomLength = 256
)

// Hash128 is an opaque 128bit byte sequence, such as a truncated digest or a
// UUID.  Byte order carries meaning and is never altered.
type Hash128 [Hash128Length]byte

// Hash160 is an opaque 160bit byte sequence, such as an account address.
type Hash160 [Hash160Length]byte

// Hash256 is an opaque 256bit byte sequence, such as a digest produced by a
// 256bit hash function.
type Hash256 [Hash256Length]byte

// Hash512 is an opaque 512bit byte sequence, such as a digest produced by a
// 512bit hash function.
type Hash512 [Hash512Length]byte

// Bloom is an opaque 2048bit byte sequence representing a bloom filter.
type Bloom [BloomLength]byte

var _ Word[Hash128] = Hash128{}
var _ Word[Hash160] = Hash160{}
var _ Word[Hash256] = Hash256{}
var _ Word[Hash512] = Hash512{}
var _ Word[Bloom] = Bloom{}

// BytesToHash128 constructs a Hash128 from bytes given in big-endian form,
// following the usual right-alignment convention (see Word.Set).
func BytesToHash128(bytes []byte) Hash128 {
	var h Hash128
	//
	setBytes(h[:], bytes)
	//
	return h
}

// BytesToHash160 constructs a Hash160 from bytes given in big-endian form.
func BytesToHash160(bytes []byte) Hash160 {
	var h Hash160
	//
	setBytes(h[:], bytes)
	//
	return h
}

// BytesToHash256 constructs a Hash256 from bytes given in big-endian form.
func BytesToHash256(bytes []byte) Hash256 {
	var h Hash256
	//
	setBytes(h[:], bytes)
	//
	return h
}

// BytesToHash512 constructs a Hash512 from bytes given in big-endian form.
func BytesToHash512(bytes []byte) Hash512 {
	var h Hash512
	//
	setBytes(h[:], bytes)
	//
	return h
}

// BytesToBloom constructs a Bloom from bytes given in big-endian form.
func BytesToBloom(bytes []byte) Bloom {
	var b Bloom
	//
	setBytes(b[:], bytes)
	//
	return b
}

// Bytes implementation for the Word interface.
func (h Hash128) Bytes() []byte { return h[:] }

// Set implementation for the Word interface.
func (h Hash128) Set(bytes []byte) Hash128 { return BytesToHash128(bytes) }

// IsZero implementation for the Word interface.
func (h Hash128) IsZero() bool { return h == Hash128{} }

// Equals implementation for the Word interface.
func (h Hash128) Equals(o Hash128) bool { return h == o }

// Hash implementation for the Word interface.
func (h Hash128) Hash() uint64 { return fnvHash(h[:]) }

// Hex returns the 0x-prefixed lowercase hexadecimal form of this word.
func (h Hash128) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash128) String() string { return hex.EncodeToString(h[:]) }

// Bytes implementation for the Word interface.
func (h Hash160) Bytes() []byte { return h[:] }

// Set implementation for the Word interface.
func (h Hash160) Set(bytes []byte) Hash160 { return BytesToHash160(bytes) }

// IsZero implementation for the Word interface.
func (h Hash160) IsZero() bool { return h == Hash160{} }

// Equals implementation for the Word interface.
func (h Hash160) Equals(o Hash160) bool { return h == o }

// Hash implementation for the Word interface.
func (h Hash160) Hash() uint64 { return fnvHash(h[:]) }

// Hex returns the 0x-prefixed lowercase hexadecimal form of this word.
func (h Hash160) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash160) String() string { return hex.EncodeToString(h[:]) }

// Bytes implementation for the Word interface.
func (h Hash256) Bytes() []byte { return h[:] }

// Set implementation for the Word interface.
func (h Hash256) Set(bytes []byte) Hash256 { return BytesToHash256(bytes) }

// IsZero implementation for the Word interface.
func (h Hash256) IsZero() bool { return h == Hash256{} }

// Equals implementation for the Word interface.
func (h Hash256) Equals(o Hash256) bool { return h == o }

// Hash implementation for the Word interface.
func (h Hash256) Hash() uint64 { return fnvHash(h[:]) }

// Hex returns the 0x-prefixed lowercase hexadecimal form of this word.
func (h Hash256) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash256) String() string { return hex.EncodeToString(h[:]) }

// Bytes implementation for the Word interface.
func (h Hash512) Bytes() []byte { return h[:] }

// Set implementation for the Word interface.
func (h Hash512) Set(bytes []byte) Hash512 { return BytesToHash512(bytes) }

// IsZero implementation for the Word interface.
func (h Hash512) IsZero() bool { return h == Hash512{} }

// Equals implementation for the Word interface.
func (h Hash512) Equals(o Hash512) bool { return h == o }

// Hash implementation for the Word interface.
func (h Hash512) Hash() uint64 { return fnvHash(h[:]) }

// Hex returns the 0x-prefixed lowercase hexadecimal form of this word.
func (h Hash512) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash512) String() string { return hex.EncodeToString(h[:]) }

// Bytes implementation for the Word interface.
func (b Bloom) Bytes() []byte { return b[:] }

// Set implementation for the Word interface.
func (b Bloom) Set(bytes []byte) Bloom { return BytesToBloom(bytes) }

// IsZero implementation for the Word interface.
func (b Bloom) IsZero() bool { return b == Bloom{} }

// Equals implementation for the Word interface.
func (b Bloom) Equals(o Bloom) bool { return b == o }

// Hash implementation for the Word interface.
func (b Bloom) Hash() uint64 { return fnvHash(b[:]) }

// Hex returns the 0x-prefixed lowercase hexadecimal form of this word.
func (b Bloom) Hex() string { return "0x" + hex.EncodeToString(b[:]) }

func (b Bloom) String() string { return hex.EncodeToString(b[:]) }

func fnvHash(bytes []byte) uint64 {
	hash := fnv.New64a()
	hash.Write(bytes)
	// Done
	return hash.Sum64()
}
