// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// These constants define the lengths of serialized public keys.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65
)

const (
	pubkeyCompressed   byte = 0x2 // y_bit + x coord
	pubkeyUncompressed byte = 0x4 // x coord + y coord
	pubkeyHybrid       byte = 0x6 // y_bit + x coord + y coord
)

// PublicKey is a secp256k1 public point together with a preference for
// compressed or uncompressed serialization.
type PublicKey struct {
	point      *Point
	compressed bool
}

// NewPublicKey instantiates a public key from an affine point. compressed
// controls the default Serialize form.
func NewPublicKey(x, y *big.Int, compressed bool) *PublicKey {
	return &PublicKey{point: &Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}, compressed: compressed}
}

// X returns the x coordinate of the public key.
func (pub *PublicKey) X() *big.Int { return new(big.Int).Set(pub.point.X) }

// Y returns the y coordinate of the public key.
func (pub *PublicKey) Y() *big.Int { return new(big.Int).Set(pub.point.Y) }

// Point returns the public key's affine point.
func (pub *PublicKey) Point() *Point {
	return &Point{X: new(big.Int).Set(pub.point.X), Y: new(big.Int).Set(pub.point.Y)}
}

// IsCompressed reports whether this key prefers compressed serialization.
func (pub *PublicKey) IsCompressed() bool { return pub.compressed }

// IsOnCurve reports whether the public key represents a point on the
// secp256k1 curve.
func (pub *PublicKey) IsOnCurve() bool {
	return pub.point.IsOnCurve()
}

// IsEqual compares two public keys for equality of their affine points.
func (pub *PublicKey) IsEqual(other *PublicKey) bool {
	return pub.point.Equals(other.point)
}

func isOdd(a *big.Int) bool {
	return a.Bit(0) == 1
}

// decompressY computes y = (x³ + 7)^((p+1)/4) mod p and flips its sign
// (y -> p - y) if the parity of the computed y does not match wantOdd. It
// does not verify x is on the curve; callers check that separately.
func decompressY(x *big.Int, wantOdd bool) *big.Int {
	rhs := mod(new(big.Int).Mul(x, x), p)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, curveParams.B)
	rhs = mod(rhs, p)

	y := modSqrt(rhs, p)
	if isOdd(y) != wantOdd {
		y = mod(new(big.Int).Neg(y), p)
	}
	return y
}

// ParsePubKey parses a secp256k1 public key encoded per ANSI X9.62-1998 /
// SEC1: 33-byte compressed ({0x02|0x03} || X), 65-byte uncompressed
// (0x04 || X || Y), or 65-byte hybrid ({0x06|0x07} || X || Y, whose trailing
// Y is redundant with the leading parity bit but is cross-checked anyway
// since such keys exist in the wild).
func ParsePubKey(data []byte) (*PublicKey, error) {
	if len(data) == 0 {
		return nil, makeError(ErrPubKeyInvalidLen, "invalid public key: empty")
	}

	format := data[0]
	ybit := (format & 0x1) == 0x1
	format &^= 0x1

	var x, y *big.Int
	compressed := false

	switch len(data) {
	case PubKeyBytesLenUncompressed:
		if data[0] != pubkeyUncompressed && format != pubkeyHybrid {
			str := fmt.Sprintf("invalid public key: unsupported format: %x", data[0])
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}
		x = new(big.Int).SetBytes(data[1:33])
		y = new(big.Int).SetBytes(data[33:65])
		if format == pubkeyHybrid && ybit != isOdd(y) {
			str := fmt.Sprintf("invalid public key: y oddness does not match specified value of %v", ybit)
			return nil, makeError(ErrPubKeyMismatchedOddness, str)
		}

	case PubKeyBytesLenCompressed:
		if format != pubkeyCompressed {
			str := fmt.Sprintf("invalid public key: unsupported format: %x", data[0])
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}
		x = new(big.Int).SetBytes(data[1:33])
		if x.Cmp(p) >= 0 {
			return nil, makeError(ErrPubKeyXTooBig, "invalid public key: x >= field prime")
		}
		y = decompressY(x, ybit)
		compressed = true

	default:
		str := fmt.Sprintf("malformed public key: invalid length: %d", len(data))
		return nil, makeError(ErrPubKeyInvalidLen, str)
	}

	if x.Cmp(p) >= 0 {
		return nil, makeError(ErrPubKeyXTooBig, "invalid public key: x >= field prime")
	}
	if y.Cmp(p) >= 0 {
		return nil, makeError(ErrPubKeyYTooBig, "invalid public key: y >= field prime")
	}
	pt := &Point{X: x, Y: y}
	if !pt.IsOnCurve() {
		str := fmt.Sprintf("invalid public key: [%v,%v] not on secp256k1 curve", x, y)
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}

	return &PublicKey{point: pt, compressed: compressed}, nil
}

// SerializeUncompressed serializes a public key as 0x04 || X || Y.
func (pub *PublicKey) SerializeUncompressed() []byte {
	b := make([]byte, 0, PubKeyBytesLenUncompressed)
	b = append(b, pubkeyUncompressed)
	b = paddedAppend(32, b, pub.point.X.Bytes())
	return paddedAppend(32, b, pub.point.Y.Bytes())
}

// SerializeCompressed serializes a public key as {0x02|0x03} || X.
func (pub *PublicKey) SerializeCompressed() []byte {
	b := make([]byte, 0, PubKeyBytesLenCompressed)
	format := pubkeyCompressed
	if isOdd(pub.point.Y) {
		format |= 0x1
	}
	b = append(b, format)
	return paddedAppend(32, b, pub.point.X.Bytes())
}

// Serialize returns the public key encoded according to its compressed
// preference, as set at construction or parse time.
func (pub *PublicKey) Serialize() []byte {
	if pub.compressed {
		return pub.SerializeCompressed()
	}
	return pub.SerializeUncompressed()
}
