// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// PrivKeyBytesLen is the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey is a secp256k1 private scalar d with 1 <= d < N, together with
// its derived public point. The scalar is fixed at construction time; it can
// be read back out via Serialize (as bytes) or Scalar (as a copy).
type PrivateKey struct {
	key *big.Int
	pub *PublicKey
}

// NewPrivateKey instantiates a private key from a scalar, deriving its
// public point. It panics if d is not in [1, N-1]; use PrivKeyFromBytes for
// a parse that returns an error instead, since constructors taking a
// *big.Int are for trusted, already-validated internal callers.
func NewPrivateKey(d *big.Int) *PrivateKey {
	if d.Sign() <= 0 || d.Cmp(curveParams.N) >= 0 {
		panic("secp256k1: private key scalar out of range")
	}
	pub := pointToPublicKey(ScalarBaseMult(d))
	return &PrivateKey{key: new(big.Int).Set(d), pub: pub}
}

// pointToPublicKey is a tiny adapter so PrivateKey and PublicKey don't need
// to know about each other's internals beyond a *Point.
func pointToPublicKey(pt *Point) *PublicKey {
	return &PublicKey{point: pt, compressed: true}
}

// PrivKeyFromBytes returns the private key corresponding to the given
// 32-byte big-endian scalar. It returns ArgumentError-flavored errors
// (ErrPrivKeyInvalidLen, ErrPrivKeyOutOfRange) rather than panicking, since
// the input typically originates outside the program (a file, the network,
// a user).
func PrivKeyFromBytes(pk []byte) (*PrivateKey, error) {
	if len(pk) != PrivKeyBytesLen {
		str := fmt.Sprintf("invalid private key: length is %d, expected %d",
			len(pk), PrivKeyBytesLen)
		return nil, makeError(ErrPrivKeyInvalidLen, str)
	}
	d := new(big.Int).SetBytes(pk)
	if d.Sign() <= 0 || d.Cmp(curveParams.N) >= 0 {
		str := "invalid private key: scalar is zero or >= curve order"
		return nil, makeError(ErrPrivKeyOutOfRange, str)
	}
	pub := pointToPublicKey(ScalarBaseMult(d))
	return &PrivateKey{key: d, pub: pub}, nil
}

// GeneratePrivateKey returns a private key generated using the crypto/rand
// CSPRNG, suitable for use with secp256k1. Obtaining randomness is the only
// side effect this package performs.
func GeneratePrivateKey() (*PrivateKey, error) {
	var buf [PrivKeyBytesLen]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, err
		}
		d := new(big.Int).SetBytes(buf[:])
		if d.Sign() > 0 && d.Cmp(curveParams.N) < 0 {
			pub := pointToPublicKey(ScalarBaseMult(d))
			return &PrivateKey{key: d, pub: pub}, nil
		}
		// d == 0 or d >= N has astronomically low probability; retry.
	}
}

// PubKey returns the public key corresponding to this private key.
func (p *PrivateKey) PubKey() *PublicKey {
	return p.pub
}

// Scalar returns the private scalar as a big.Int copy. Callers must not
// mutate arithmetic on the original; this returns a defensive copy.
func (p *PrivateKey) Scalar() *big.Int {
	return new(big.Int).Set(p.key)
}

// Serialize returns the private key as a 32-byte big-endian encoded number.
func (p *PrivateKey) Serialize() []byte {
	b := make([]byte, 0, PrivKeyBytesLen)
	return paddedAppend(PrivKeyBytesLen, b, p.key.Bytes())
}

// paddedAppend appends src to dst after left-padding src with zero bytes up
// to size, if src is shorter than size.
func paddedAppend(size int, dst, src []byte) []byte {
	for i := 0; i < size-len(src); i++ {
		dst = append(dst, 0)
	}
	return append(dst, src...)
}
