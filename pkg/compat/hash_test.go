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
	"fmt"
	"math/rand"
	"testing"

	"github.com/consensys/go-ethcompat/pkg/word"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

func Test_Hash256_RoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		eth := common.Hash(blake3.Sum256(randBytes(32)))
		//
		if rt := Hash256ToEth(Hash256FromEth(eth)); rt != eth {
			t.Errorf("invalid round trip: %x != %x", rt, eth)
		}
		// Opposite direction
		ours := word.BytesToHash256(randBytes(32))
		//
		if rt := Hash256FromEth(Hash256ToEth(ours)); !rt.Equals(ours) {
			t.Errorf("invalid round trip: %s != %s", rt.String(), ours.String())
		}
	}
}

func Test_Hash256_Zero(t *testing.T) {
	var eth common.Hash
	// An all-zero 32-byte value converts to an all-zero 32-byte value.
	if !Hash256FromEth(eth).IsZero() {
		t.Errorf("zero hash did not convert to zero")
	}
	//
	if Hash256ToEth(word.Hash256{}) != (common.Hash{}) {
		t.Errorf("zero hash did not convert back to zero")
	}
}

func Test_Hash256_ByteOrder(t *testing.T) {
	// A value whose first byte alone is nonzero must keep that byte first.
	var eth common.Hash
	//
	eth[0] = 0xca
	ours := Hash256FromEth(eth)
	//
	if ours[0] != 0xca {
		t.Errorf("first byte not preserved: %s", ours.String())
	}
	//
	for i := 1; i < word.Hash256Length; i++ {
		if ours[i] != 0 {
			t.Errorf("byte %d unexpectedly nonzero: %s", i, ours.String())
		}
	}
}

func Test_Address_RoundTrip(t *testing.T) {
	eth := common.HexToAddress("0xdeadbeefdeadbeefdeadbeefdeadbeef00000000")
	ours := AddressFromEth(eth)
	// Byte-for-byte identity in both representations
	if ours.String() != "deadbeefdeadbeefdeadbeefdeadbeef00000000" {
		t.Errorf("invalid conversion: %s", ours.String())
	}
	//
	if rt := AddressToEth(ours); rt != eth {
		t.Errorf("invalid round trip: %x != %x", rt, eth)
	}
}

func Test_Address_RoundTrip_Random(t *testing.T) {
	for i := 0; i < 1000; i++ {
		ours := word.BytesToHash160(randBytes(20))
		//
		if rt := AddressFromEth(AddressToEth(ours)); !rt.Equals(ours) {
			t.Errorf("invalid round trip: %s != %s", rt.String(), ours.String())
		}
	}
}

func Test_Hash128_RoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := uuid.New()
		//
		if rt := Hash128ToUUID(Hash128FromUUID(id)); rt != id {
			t.Errorf("invalid round trip: %s != %s", rt, id)
		}
		// Byte order is untouched
		if Hash128FromUUID(id).Bytes()[0] != id[0] {
			t.Errorf("first byte not preserved for %s", id)
		}
	}
}

func Test_Hash512_RoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		digest := blake3.Sum512(randBytes(64))
		//
		if rt := Hash512ToDigest(Hash512FromDigest(digest)); rt != digest {
			t.Errorf("invalid round trip: %x != %x", rt, digest)
		}
	}
}

func Test_Bloom_RoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		eth := types.BytesToBloom(randBytes(types.BloomByteLength))
		//
		if rt := BloomToEth(BloomFromEth(eth)); rt != eth {
			t.Errorf("invalid round trip: %x != %x", rt, eth)
		}
	}
}

func Example_address() {
	addr := common.HexToAddress("0xdeadbeefdeadbeefdeadbeefdeadbeef00000000")
	//
	fmt.Println(AddressFromEth(addr))
	// Output: deadbeefdeadbeefdeadbeefdeadbeef00000000
}

func randBytes(n int) []byte {
	bs := make([]byte, n)
	//
	for i := range bs {
		bs[i] = byte(rand.Intn(256))
	}
	//
	return bs
}
