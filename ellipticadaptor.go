// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"math/big"
	"sync"
)

// KoblitzCurve adapts this package's arithmetic to the crypto/elliptic
// Curve interface, so values produced here can flow into APIs written
// against the standard library (crypto/ecdsa, crypto/tls, crypto/x509).
// Unlike the wider package, this adaptor does not run the documented
// recovery-id limitation or RFC 6979 nonce generation; it is pure curve
// arithmetic.
type KoblitzCurve struct {
	params *elliptic.CurveParams
}

// Params is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) Params() *elliptic.CurveParams {
	return curve.params
}

// IsOnCurve is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) IsOnCurve(x, y *big.Int) bool {
	return (&Point{X: x, Y: y}).IsOnCurve()
}

// Add is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	sum := Add(&Point{X: x1, Y: y1}, &Point{X: x2, Y: y2})
	return sum.X, sum.Y
}

// Double is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	dbl := Double(&Point{X: x1, Y: y1})
	return dbl.X, dbl.Y
}

// ScalarMult is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) ScalarMult(x1, y1 *big.Int, k []byte) (*big.Int, *big.Int) {
	result := ScalarMult(&Point{X: x1, Y: y1}, new(big.Int).SetBytes(k))
	return result.X, result.Y
}

// ScalarBaseMult is part of the elliptic.Curve interface implementation.
func (curve *KoblitzCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	result := ScalarBaseMult(new(big.Int).SetBytes(k))
	return result.X, result.Y
}

var (
	initonce sync.Once
	koblitz  KoblitzCurve
)

func initS256() {
	cp := curveParams
	koblitz.params = &elliptic.CurveParams{
		P:       new(big.Int).Set(cp.P),
		N:       new(big.Int).Set(cp.N),
		B:       new(big.Int).Set(cp.B),
		Gx:      new(big.Int).Set(cp.Gx),
		Gy:      new(big.Int).Set(cp.Gy),
		BitSize: cp.BitSize,
		Name:    CurveName,
	}
}

// S256 returns a Curve implementing crypto/elliptic's interface for
// secp256k1.
func S256() *KoblitzCurve {
	initonce.Do(initS256)
	return &koblitz
}

// ToECDSA returns the public key converted to a *ecdsa.PublicKey using the
// crypto/elliptic-compatible S256 curve.
func (pub *PublicKey) ToECDSA() *ecdsa.PublicKey {
	return &ecdsa.PublicKey{Curve: S256(), X: pub.X(), Y: pub.Y()}
}

// ToECDSA returns the private key converted to a *ecdsa.PrivateKey using the
// crypto/elliptic-compatible S256 curve.
func (priv *PrivateKey) ToECDSA() *ecdsa.PrivateKey {
	return &ecdsa.PrivateKey{
		PublicKey: *priv.PubKey().ToECDSA(),
		D:         priv.Scalar(),
	}
}

// FromECDSAPub converts a *ecdsa.PublicKey into this package's PublicKey. It
// returns ErrPubKeyNotOnCurve if the point does not satisfy the secp256k1
// curve equation, which catches keys generated against a different curve.
func FromECDSAPub(pub *ecdsa.PublicKey) (*PublicKey, error) {
	if pub == nil || pub.X == nil || pub.Y == nil {
		return nil, makeError(ErrPubKeyNotOnCurve, "invalid public key: nil coordinates")
	}
	pt := &Point{X: new(big.Int).Set(pub.X), Y: new(big.Int).Set(pub.Y)}
	if !pt.IsOnCurve() {
		return nil, makeError(ErrPubKeyNotOnCurve, "invalid public key: not on secp256k1 curve")
	}
	return &PublicKey{point: pt, compressed: true}, nil
}

// FromECDSA converts a *ecdsa.PrivateKey into this package's PrivateKey. It
// returns ErrPrivKeyOutOfRange if the scalar is not in [1, N-1].
func FromECDSA(priv *ecdsa.PrivateKey) (*PrivateKey, error) {
	if priv == nil || priv.D == nil {
		return nil, makeError(ErrPrivKeyOutOfRange, "invalid private key: nil scalar")
	}
	d := priv.D
	if d.Sign() <= 0 || d.Cmp(curveParams.N) >= 0 {
		return nil, makeError(ErrPrivKeyOutOfRange, "invalid private key: scalar is zero or >= curve order")
	}
	return NewPrivateKey(d), nil
}
