// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"math/big"
)

// hexToBigInt converts the passed hex string into a big integer and will
// panic if there is an error. This is only provided for the hard-coded
// constants so errors in the source code can be detected. It will only
// (and must only) be called with hard-coded values.
func hexToBigInt(hexStr string) *big.Int {
	val, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("failed to parse big integer from hex: " + hexStr)
	}
	return val
}

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error. This is only provided for the hard-coded constants so
// errors in the source code can be detected. It will only (and must only)
// be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// decToBigInt converts the passed decimal string into a big integer and
// will panic if there is an error. This is only provided for hard-coded
// constants given in decimal form. It will only (and must only) be called
// with hard-coded values.
func decToBigInt(decStr string) *big.Int {
	val, ok := new(big.Int).SetString(decStr, 10)
	if !ok {
		panic("failed to parse big integer from decimal: " + decStr)
	}
	return val
}
