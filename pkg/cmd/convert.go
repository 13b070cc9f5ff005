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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-ethcompat/pkg/compat"
	"github.com/consensys/go-ethcompat/pkg/word"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [flags] hex_value",
	Short: "Print a value in every representation supported for its width.",
	Long: `Print a value in every representation supported for its width.  The width
	class is inferred from the byte length of the given hexadecimal string:
	8 bytes (64bit nonce), 16 bytes (UUID / 128bit integer), 20 bytes
	(address), 32 bytes (hash / 256bit integer), 64 bytes (512bit digest)
	or 256 bytes (bloom filter).`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		bytes := ReadHexValue(args[0])
		//
		log.Debugf("parsed %d bytes of input", len(bytes))
		//
		switch len(bytes) {
		case 8:
			printU64(word.BytesToU64(bytes))
		case word.Hash128Length:
			printHash128(word.BytesToHash128(bytes))
		case word.Hash160Length:
			printHash160(word.BytesToHash160(bytes))
		case word.Hash256Length:
			printHash256(word.BytesToHash256(bytes))
		case word.Hash512Length:
			printHash512(word.BytesToHash512(bytes))
		case word.BloomLength:
			printBloom(word.BytesToBloom(bytes))
		default:
			fmt.Printf("unsupported width: %d bytes\n", len(bytes))
			os.Exit(2)
		}
	},
}

func printU64(x word.U64) {
	nonce := compat.U64ToNonce(x)
	//
	fmt.Printf("width:   64 bits\n")
	fmt.Printf("decimal: %s\n", x.String())
	fmt.Printf("nonce:   %x\n", nonce)
}

func printHash128(h word.Hash128) {
	var (
		id = compat.Hash128ToUUID(h)
		x  = compat.Uint128FromUUID(id)
	)
	//
	fmt.Printf("width:   128 bits\n")
	fmt.Printf("hex:     %s\n", h.Hex())
	fmt.Printf("uuid:    %s\n", id)
	fmt.Printf("decimal: %s\n", x)
	fmt.Printf("limbs:   hi=%#x lo=%#x\n", x.Hi, x.Lo)
}

func printHash160(h word.Hash160) {
	addr := compat.AddressToEth(h)
	//
	fmt.Printf("width:   160 bits\n")
	fmt.Printf("hex:     %s\n", h.Hex())
	fmt.Printf("address: %s\n", addr.Hex())
}

func printHash256(h word.Hash256) {
	var (
		eth = compat.Hash256ToEth(h)
		x   = compat.U256FromEthHash(eth)
	)
	//
	fmt.Printf("width:   256 bits\n")
	fmt.Printf("hash:    %s\n", eth.Hex())
	fmt.Printf("decimal: %s\n", x.String())
	fmt.Printf("limbs:   %#x %#x %#x %#x\n", x[0], x[1], x[2], x[3])
}

func printHash512(h word.Hash512) {
	fmt.Printf("width:   512 bits\n")
	fmt.Printf("hex:     %s\n", h.Hex())
}

func printBloom(b word.Bloom) {
	fmt.Printf("width:   2048 bits\n")
	fmt.Printf("hex:     %s\n", b.Hex())
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
