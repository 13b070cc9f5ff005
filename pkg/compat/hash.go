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

// Package compat provides lossless, bidirectional conversions between the
// word family of fixed-width types and the corresponding representations
// used elsewhere in the ecosystem (go-ethereum hashes and addresses,
// holiman/uint256 and lukechampine.com/uint128 integers, google/uuid
// identifiers).  Every conversion in the catalog is total, pure and
// infallible: a pair exists only when both sides have identical bit width,
// so a mismatched conversion is simply not expressible.
//
// Byte-sequence types (hashes, addresses, blooms) convert by direct byte
// copy, since both representations agree on byte order.  Integer types
// convert through their canonical big-endian byte form (or by direct limb
// mapping), preserving numeric value across differing internal limb orders.
package compat

import (
	"github.com/consensys/go-ethcompat/pkg/word"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
)

// Hash256FromEth converts a go-ethereum 32-byte hash into a Hash256.  This
// is a direct byte-for-byte copy.
func Hash256FromEth(h common.Hash) word.Hash256 {
	return word.Hash256(h)
}

// Hash256ToEth converts a Hash256 into a go-ethereum 32-byte hash.
func Hash256ToEth(h word.Hash256) common.Hash {
	return common.Hash(h)
}

// AddressFromEth converts a go-ethereum 20-byte address into a Hash160.
func AddressFromEth(a common.Address) word.Hash160 {
	return word.Hash160(a)
}

// AddressToEth converts a Hash160 into a go-ethereum 20-byte address.
func AddressToEth(h word.Hash160) common.Address {
	return common.Address(h)
}

// Hash128FromUUID converts a UUID into a Hash128.  RFC 4122 byte order is
// preserved exactly.
func Hash128FromUUID(u uuid.UUID) word.Hash128 {
	return word.Hash128(u)
}

// Hash128ToUUID converts a Hash128 into a UUID.
func Hash128ToUUID(h word.Hash128) uuid.UUID {
	return uuid.UUID(h)
}

// Hash512FromDigest converts a 64-byte digest (e.g. as produced by a 512bit
// hash function) into a Hash512.
func Hash512FromDigest(d [64]byte) word.Hash512 {
	return word.Hash512(d)
}

// Hash512ToDigest converts a Hash512 into a 64-byte digest array.
func Hash512ToDigest(h word.Hash512) [64]byte {
	return [64]byte(h)
}

// BloomFromEth converts a go-ethereum 2048bit bloom filter into a Bloom.
func BloomFromEth(b types.Bloom) word.Bloom {
	return word.Bloom(b)
}

// BloomToEth converts a Bloom into a go-ethereum 2048bit bloom filter.
func BloomToEth(b word.Bloom) types.Bloom {
	return types.Bloom(b)
}
