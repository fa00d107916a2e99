// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf

// CurveName identifies the curve this package implements. It is the Name
// reported by S256().Params(); PrivateKey, PublicKey and Signature values
// carry no curve tag of their own.
const CurveName = "secp256k1"

// fromHex converts the passed hex string into a big integer pointer and will
// panic if there is an error. This is only used for the hard-coded domain
// constants below so a mistake in the source is caught at init time.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: invalid hex constant: " + s)
	}
	return r
}

// CurveParams holds the domain parameters for secp256k1: y² = x³ + a·x + b
// over the prime field of order P, with base point (Gx, Gy) generating a
// subgroup of order N and cofactor H.
//
// These are immutable, process-wide constants; every exported value in this
// package treats Params() as shared read-only state.
type CurveParams struct {
	P       *big.Int // the finite field prime
	A       *big.Int // curve coefficient a (always zero for secp256k1)
	B       *big.Int // curve coefficient b (7 for secp256k1)
	Gx, Gy  *big.Int // base point G
	N       *big.Int // order of G
	H       int      // cofactor
	BitSize int      // bit length of P
}

var curveParams = &CurveParams{
	P:       fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
	A:       big.NewInt(0),
	B:       big.NewInt(7),
	Gx:      fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
	Gy:      fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
	N:       fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
	H:       1,
	BitSize: 256,
}

// Params returns the secp256k1 domain parameters.
func Params() *CurveParams {
	return curveParams
}

// generator returns the base point G in affine coordinates.
func generator() *Point {
	return &Point{X: new(big.Int).Set(curveParams.Gx), Y: new(big.Int).Set(curveParams.Gy)}
}
