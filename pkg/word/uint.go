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
	"cmp"
	"encoding/binary"
	"math"
	"math/big"
)

// U64 is an unsigned 64bit integer word.  Its canonical byte form is the
// 8-byte big-endian encoding of the value.
type U64 uint64

// U128 is an unsigned 128bit integer word stored as two 64bit limbs with the
// most-significant limb first.  Its canonical byte form is the 16-byte
// big-endian encoding of the value.
type U128 struct {
	// Hi holds bits 64..127 of the value.
	Hi uint64
	// Lo holds bits 0..63 of the value.
	Lo uint64
}

// U256 is an unsigned 256bit integer word stored as four 64bit limbs with
// the most-significant limb first (i.e. index 0 holds bits 192..255).  Its
// canonical byte form is the 32-byte big-endian encoding of the value.
type U256 [4]uint64

var _ Word[U64] = U64(0)
var _ Word[U128] = U128{}
var _ Word[U256] = U256{}

// NewU128 constructs a U128 from its high and low limbs.
func NewU128(hi, lo uint64) U128 {
	return U128{Hi: hi, Lo: lo}
}

// NewU256 constructs a U256 from its limbs, given most-significant first.
func NewU256(l3, l2, l1, l0 uint64) U256 {
	return U256{l3, l2, l1, l0}
}

// U128FromUint64 constructs a U128 holding a given uint64 value, with the
// high-order limb zero-extended.
func U128FromUint64(val uint64) U128 {
	return U128{Lo: val}
}

// U256FromUint64 constructs a U256 holding a given uint64 value, with the
// high-order limbs zero-extended.
func U256FromUint64(val uint64) U256 {
	return U256{3: val}
}

// MaxU128 returns the maximum representable 128bit value (all bits set).
func MaxU128() U128 {
	return U128{Hi: math.MaxUint64, Lo: math.MaxUint64}
}

// MaxU256 returns the maximum representable 256bit value (all bits set).
func MaxU256() U256 {
	return U256{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64}
}

// BytesToU64 constructs a U64 from bytes given in big-endian form, following
// the usual right-alignment convention (see Word.Set).
func BytesToU64(bytes []byte) U64 {
	var buf [8]byte
	//
	setBytes(buf[:], bytes)
	//
	return U64(binary.BigEndian.Uint64(buf[:]))
}

// BytesToU128 constructs a U128 from bytes given in big-endian form.
func BytesToU128(bytes []byte) U128 {
	var buf [16]byte
	//
	setBytes(buf[:], bytes)
	//
	return U128{
		Hi: binary.BigEndian.Uint64(buf[0:8]),
		Lo: binary.BigEndian.Uint64(buf[8:16]),
	}
}

// BytesToU256 constructs a U256 from bytes given in big-endian form.
func BytesToU256(bytes []byte) U256 {
	var (
		buf [32]byte
		val U256
	)
	//
	setBytes(buf[:], bytes)
	//
	for i := range val {
		val[i] = binary.BigEndian.Uint64(buf[i*8 : (i+1)*8])
	}
	//
	return val
}

// Bytes implementation for the Word interface.
func (x U64) Bytes() []byte {
	bytes := x.Bytes8()
	return bytes[:]
}

// Bytes8 returns the canonical byte form as a fixed-size array.
func (x U64) Bytes8() [8]byte {
	var buf [8]byte
	//
	binary.BigEndian.PutUint64(buf[:], uint64(x))
	//
	return buf
}

// Set implementation for the Word interface.
func (x U64) Set(bytes []byte) U64 { return BytesToU64(bytes) }

// Uint64 returns the value of this word.
func (x U64) Uint64() uint64 { return uint64(x) }

// IsZero implementation for the Word interface.
func (x U64) IsZero() bool { return x == 0 }

// Equals implementation for the Word interface.
func (x U64) Equals(o U64) bool { return x == o }

// Cmp compares two words as unsigned integers.
func (x U64) Cmp(o U64) int { return cmp.Compare(x, o) }

// Hash implementation for the Word interface.
func (x U64) Hash() uint64 {
	bytes := x.Bytes8()
	return fnvHash(bytes[:])
}

func (x U64) String() string {
	return new(big.Int).SetUint64(uint64(x)).String()
}

// Bytes implementation for the Word interface.
func (x U128) Bytes() []byte {
	bytes := x.Bytes16()
	return bytes[:]
}

// Bytes16 returns the canonical byte form as a fixed-size array.
func (x U128) Bytes16() [16]byte {
	var buf [16]byte
	//
	binary.BigEndian.PutUint64(buf[0:8], x.Hi)
	binary.BigEndian.PutUint64(buf[8:16], x.Lo)
	//
	return buf
}

// Set implementation for the Word interface.
func (x U128) Set(bytes []byte) U128 { return BytesToU128(bytes) }

// Uint64 returns the low 64 bits of this word.
func (x U128) Uint64() uint64 { return x.Lo }

// IsUint64 checks whether this value fits within a uint64.
func (x U128) IsUint64() bool { return x.Hi == 0 }

// IsZero implementation for the Word interface.
func (x U128) IsZero() bool { return x == U128{} }

// Equals implementation for the Word interface.
func (x U128) Equals(o U128) bool { return x == o }

// Cmp compares two words as unsigned integers.
func (x U128) Cmp(o U128) int {
	if c := cmp.Compare(x.Hi, o.Hi); c != 0 {
		return c
	}
	//
	return cmp.Compare(x.Lo, o.Lo)
}

// Hash implementation for the Word interface.
func (x U128) Hash() uint64 {
	bytes := x.Bytes16()
	return fnvHash(bytes[:])
}

// AsBigInt returns a freshly allocated big integer holding this value.
func (x U128) AsBigInt() big.Int {
	var (
		val   big.Int
		bytes = x.Bytes16()
	)
	//
	return *val.SetBytes(bytes[:])
}

func (x U128) String() string {
	bi := x.AsBigInt()
	//
	return bi.String()
}

// Bytes implementation for the Word interface.
func (x U256) Bytes() []byte {
	bytes := x.Bytes32()
	return bytes[:]
}

// Bytes32 returns the canonical byte form as a fixed-size array.
func (x U256) Bytes32() [32]byte {
	var buf [32]byte
	//
	for i := range x {
		binary.BigEndian.PutUint64(buf[i*8:(i+1)*8], x[i])
	}
	//
	return buf
}

// Set implementation for the Word interface.
func (x U256) Set(bytes []byte) U256 { return BytesToU256(bytes) }

// Uint64 returns the low 64 bits of this word.
func (x U256) Uint64() uint64 { return x[3] }

// IsUint64 checks whether this value fits within a uint64.
func (x U256) IsUint64() bool {
	return x[0] == 0 && x[1] == 0 && x[2] == 0
}

// IsZero implementation for the Word interface.
func (x U256) IsZero() bool { return x == U256{} }

// Equals implementation for the Word interface.
func (x U256) Equals(o U256) bool { return x == o }

// Cmp compares two words as unsigned integers.
func (x U256) Cmp(o U256) int {
	for i := range x {
		if c := cmp.Compare(x[i], o[i]); c != 0 {
			return c
		}
	}
	//
	return 0
}

// Hash implementation for the Word interface.
func (x U256) Hash() uint64 {
	bytes := x.Bytes32()
	return fnvHash(bytes[:])
}

// AsBigInt returns a freshly allocated big integer holding this value.
func (x U256) AsBigInt() big.Int {
	var (
		val   big.Int
		bytes = x.Bytes32()
	)
	//
	return *val.SetBytes(bytes[:])
}

func (x U256) String() string {
	bi := x.AsBigInt()
	//
	return bi.String()
}
