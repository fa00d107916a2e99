// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)

// Point is an affine point (x, y) on secp256k1. The point at infinity (the
// additive identity) is represented by the sentinel (0, 0); every method on
// Point treats that sentinel consistently as infinity rather than as the
// coordinates of an actual curve point.
type Point struct {
	X, Y *big.Int
}

// jacobianPoint is (X, Y, Z) representing the affine point (X/Z², Y/Z³) when
// Z ≠ 0. Z == 0 designates the point at infinity. This representation is
// used only inside the arithmetic in this file; every exported entry point
// accepts and returns affine Points.
type jacobianPoint struct {
	X, Y, Z *big.Int
}

var p = curveParams.P

// InfinityPoint returns the point at infinity in affine form.
func InfinityPoint() *Point {
	return &Point{X: big.NewInt(0), Y: big.NewInt(0)}
}

// IsInfinity reports whether P is the point at infinity.
func (pt *Point) IsInfinity() bool {
	return pt.X.Sign() == 0 && pt.Y.Sign() == 0
}

// IsOnCurve reports whether P satisfies y² ≡ x³ + 7 (mod p). The point at
// infinity is considered on-curve by convention.
func (pt *Point) IsOnCurve() bool {
	if pt.IsInfinity() {
		return true
	}
	y2 := mod(new(big.Int).Mul(pt.Y, pt.Y), p)
	x3 := mod(new(big.Int).Mul(pt.X, pt.X), p)
	x3.Mul(x3, pt.X)
	x3.Add(x3, curveParams.B)
	x3 = mod(x3, p)
	return y2.Cmp(x3) == 0
}

// Equals reports whether two affine points represent the same curve point.
func (pt *Point) Equals(other *Point) bool {
	if pt.IsInfinity() || other.IsInfinity() {
		return pt.IsInfinity() == other.IsInfinity()
	}
	return pt.X.Cmp(other.X) == 0 && pt.Y.Cmp(other.Y) == 0
}

// Negate returns (x, (−y) mod p). Negating the point at infinity returns
// the point at infinity.
func (pt *Point) Negate() *Point {
	if pt.IsInfinity() {
		return InfinityPoint()
	}
	return &Point{X: new(big.Int).Set(pt.X), Y: mod(new(big.Int).Neg(pt.Y), p)}
}

// toJacobian converts an affine point to Jacobian form, setting Z = 1 (or
// Z = 0 for the point at infinity).
func (pt *Point) toJacobian() *jacobianPoint {
	if pt.IsInfinity() {
		return &jacobianPoint{X: big.NewInt(0), Y: big.NewInt(0), Z: big.NewInt(0)}
	}
	return &jacobianPoint{X: new(big.Int).Set(pt.X), Y: new(big.Int).Set(pt.Y), Z: big.NewInt(1)}
}

// toAffine converts a Jacobian point back to affine coordinates.
func (j *jacobianPoint) toAffine() *Point {
	if j.Z.Sign() == 0 {
		return InfinityPoint()
	}
	zInv := inv(j.Z, p)
	zInv2 := mod(new(big.Int).Mul(zInv, zInv), p)
	zInv3 := mod(new(big.Int).Mul(zInv2, zInv), p)
	x := mod(new(big.Int).Mul(j.X, zInv2), p)
	y := mod(new(big.Int).Mul(j.Y, zInv3), p)
	return &Point{X: x, Y: y}
}

// addJacobian computes P + Q in Jacobian coordinates per [GECC] algorithm
// 3.21, specialized to a = 0.
func addJacobian(jp, jq *jacobianPoint) *jacobianPoint {
	if jp.Z.Sign() == 0 {
		return &jacobianPoint{X: new(big.Int).Set(jq.X), Y: new(big.Int).Set(jq.Y), Z: new(big.Int).Set(jq.Z)}
	}
	if jq.Z.Sign() == 0 {
		return &jacobianPoint{X: new(big.Int).Set(jp.X), Y: new(big.Int).Set(jp.Y), Z: new(big.Int).Set(jp.Z)}
	}

	zpSq := mod(new(big.Int).Mul(jp.Z, jp.Z), p)
	zqSq := mod(new(big.Int).Mul(jq.Z, jq.Z), p)
	u1 := mod(new(big.Int).Mul(jp.X, zqSq), p)
	u2 := mod(new(big.Int).Mul(jq.X, zpSq), p)
	s1 := mod(new(big.Int).Mul(jp.Y, mod(new(big.Int).Mul(zqSq, jq.Z), p)), p)
	s2 := mod(new(big.Int).Mul(jq.Y, mod(new(big.Int).Mul(zpSq, jp.Z), p)), p)

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) != 0 {
			return &jacobianPoint{X: big.NewInt(0), Y: big.NewInt(0), Z: big.NewInt(0)}
		}
		return doubleJacobian(jp)
	}

	h := mod(new(big.Int).Sub(u2, u1), p)
	r := mod(new(big.Int).Sub(s2, s1), p)
	h2 := mod(new(big.Int).Mul(h, h), p)
	h3 := mod(new(big.Int).Mul(h2, h), p)

	x := mod(new(big.Int).Sub(mod(new(big.Int).Mul(r, r), p), h3), p)
	twoU1h2 := mod(new(big.Int).Mul(big.NewInt(2), mod(new(big.Int).Mul(u1, h2), p)), p)
	x = mod(new(big.Int).Sub(x, twoU1h2), p)

	u1h2MinusX := mod(new(big.Int).Sub(mod(new(big.Int).Mul(u1, h2), p), x), p)
	y := mod(new(big.Int).Sub(mod(new(big.Int).Mul(r, u1h2MinusX), p), mod(new(big.Int).Mul(s1, h3), p)), p)

	z := mod(new(big.Int).Mul(h, mod(new(big.Int).Mul(jp.Z, jq.Z), p)), p)

	return &jacobianPoint{X: x, Y: y, Z: z}
}

// doubleJacobian computes 2P in Jacobian coordinates per [GECC] algorithm
// 3.21, specialized to a = 0 (the a·Z⁴ term in m vanishes).
func doubleJacobian(jp *jacobianPoint) *jacobianPoint {
	if jp.Z.Sign() == 0 || jp.Y.Sign() == 0 {
		return &jacobianPoint{X: big.NewInt(0), Y: big.NewInt(0), Z: big.NewInt(0)}
	}

	ysq := mod(new(big.Int).Mul(jp.Y, jp.Y), p)
	s := mod(new(big.Int).Mul(big.NewInt(4), mod(new(big.Int).Mul(jp.X, ysq), p)), p)
	xsq := mod(new(big.Int).Mul(jp.X, jp.X), p)
	m := mod(new(big.Int).Mul(big.NewInt(3), xsq), p)

	x := mod(new(big.Int).Sub(mod(new(big.Int).Mul(m, m), p), mod(new(big.Int).Mul(big.NewInt(2), s), p)), p)

	sMinusX := mod(new(big.Int).Sub(s, x), p)
	ysq2 := mod(new(big.Int).Mul(ysq, ysq), p)
	y := mod(new(big.Int).Sub(mod(new(big.Int).Mul(m, sMinusX), p), mod(new(big.Int).Mul(big.NewInt(8), ysq2), p)), p)

	z := mod(new(big.Int).Mul(big.NewInt(2), mod(new(big.Int).Mul(jp.Y, jp.Z), p)), p)

	return &jacobianPoint{X: x, Y: y, Z: z}
}

// Add returns P + Q in affine coordinates, converting to Jacobian
// coordinates internally and back.
func Add(pt, q *Point) *Point {
	if pt.IsInfinity() {
		return &Point{X: new(big.Int).Set(q.X), Y: new(big.Int).Set(q.Y)}
	}
	if q.IsInfinity() {
		return &Point{X: new(big.Int).Set(pt.X), Y: new(big.Int).Set(pt.Y)}
	}
	return addJacobian(pt.toJacobian(), q.toJacobian()).toAffine()
}

// Double returns 2P in affine coordinates.
func Double(pt *Point) *Point {
	return doubleJacobian(pt.toJacobian()).toAffine()
}

// ScalarMult returns k·P in affine coordinates using an iterative
// left-to-right double-and-add. The source this package is modeled on
// recurses on k/2; this is the stack-safe equivalent described as
// acceptable in the design notes, since the two produce the same
// group-theoretic result.
//
// k is reduced modulo the group order N before multiplication if it is
// negative or >= N. k·∞ is ∞ for any k.
func ScalarMult(pt *Point, k *big.Int) *Point {
	if pt.IsInfinity() {
		return InfinityPoint()
	}

	n := curveParams.N
	if k.Sign() == 0 {
		return InfinityPoint()
	}
	kk := k
	if k.Sign() < 0 || k.Cmp(n) >= 0 {
		kk = mod(k, n)
		if kk.Sign() == 0 {
			return InfinityPoint()
		}
	}
	if kk.Cmp(big.NewInt(1)) == 0 {
		return &Point{X: new(big.Int).Set(pt.X), Y: new(big.Int).Set(pt.Y)}
	}

	result := &jacobianPoint{X: big.NewInt(0), Y: big.NewInt(0), Z: big.NewInt(0)}
	base := pt.toJacobian()
	for i := kk.BitLen() - 1; i >= 0; i-- {
		result = doubleJacobian(result)
		if kk.Bit(i) == 1 {
			result = addJacobian(result, base)
		}
	}
	return result.toAffine()
}

// ScalarBaseMult returns k·G for the secp256k1 base point G.
func ScalarBaseMult(k *big.Int) *Point {
	return ScalarMult(generator(), k)
}
