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
package compat

import (
	"encoding/binary"

	"github.com/consensys/go-ethcompat/pkg/word"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// U64FromNonce converts a go-ethereum block nonce (a big-endian encoded
// 64bit value) into a U64.
func U64FromNonce(n types.BlockNonce) word.U64 {
	return word.U64(n.Uint64())
}

// U64ToNonce converts a U64 into a go-ethereum block nonce.
func U64ToNonce(x word.U64) types.BlockNonce {
	return types.EncodeNonce(x.Uint64())
}

// U128FromUint128 converts a lukechampine uint128 (least-significant limb
// first) into a U128 (most-significant limb first).  The numeric value is
// preserved exactly; only the limb order differs.
func U128FromUint128(x uint128.Uint128) word.U128 {
	return word.NewU128(x.Hi, x.Lo)
}

// U128ToUint128 converts a U128 into a lukechampine uint128.
func U128ToUint128(x word.U128) uint128.Uint128 {
	return uint128.New(x.Lo, x.Hi)
}

// U256FromUint256 converts a holiman uint256 (least-significant limb first)
// into a U256 (most-significant limb first), routing through the canonical
// big-endian byte form.
func U256FromUint256(x *uint256.Int) word.U256 {
	bytes := x.Bytes32()
	//
	return word.BytesToU256(bytes[:])
}

// U256ToUint256 converts a U256 into a freshly allocated holiman uint256.
func U256ToUint256(x word.U256) *uint256.Int {
	bytes := x.Bytes32()
	//
	return new(uint256.Int).SetBytes(bytes[:])
}

// U256FromEthHash reinterprets a go-ethereum 32-byte hash as a 256bit
// big-endian integer and converts it into a U256.  This mirrors how storage
// slots and values are addressed.
func U256FromEthHash(h common.Hash) word.U256 {
	return word.BytesToU256(h[:])
}

// U256ToEthHash converts a U256 into the go-ethereum hash holding its
// canonical big-endian byte form.
func U256ToEthHash(x word.U256) common.Hash {
	return common.Hash(x.Bytes32())
}

// Uint256FromEthHash reinterprets a go-ethereum 32-byte hash as a 256bit
// big-endian integer and converts it into a freshly allocated holiman
// uint256.
func Uint256FromEthHash(h common.Hash) *uint256.Int {
	return new(uint256.Int).SetBytes(h[:])
}

// Uint256ToEthHash converts a holiman uint256 into the go-ethereum hash
// holding its canonical big-endian byte form.
func Uint256ToEthHash(x *uint256.Int) common.Hash {
	return common.Hash(x.Bytes32())
}

// Uint128FromUUID reinterprets a UUID as a 128bit big-endian integer and
// converts it into a lukechampine uint128.
func Uint128FromUUID(u uuid.UUID) uint128.Uint128 {
	var (
		hi = binary.BigEndian.Uint64(u[0:8])
		lo = binary.BigEndian.Uint64(u[8:16])
	)
	//
	return uint128.New(lo, hi)
}

// Uint128ToUUID converts a lukechampine uint128 into the UUID holding its
// canonical big-endian byte form.
func Uint128ToUUID(x uint128.Uint128) uuid.UUID {
	var u uuid.UUID
	//
	binary.BigEndian.PutUint64(u[0:8], x.Hi)
	binary.BigEndian.PutUint64(u[8:16], x.Lo)
	//
	return u
}
