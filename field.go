// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// mod returns the non-negative remainder of x modulo n, i.e. a value in
// [0, n). big.Int's own Mod already guarantees this for a positive modulus,
// but callers throughout this package route every reduction through here so
// the contract is explicit and in one place.
func mod(x, n *big.Int) *big.Int {
	r := new(big.Int).Mod(x, n)
	return r
}

// inv computes the modular multiplicative inverse of x modulo n using the
// extended binary GCD algorithm. It returns 0 if x has no inverse modulo n
// (x and n are not coprime, including x == 0); callers must treat a 0
// result as "undefined" rather than a valid inverse.
func inv(x, n *big.Int) *big.Int {
	if x.Sign() == 0 {
		return big.NewInt(0)
	}

	// u, v track the remaining GCD computation; A, C accumulate the
	// Bezout coefficient for u. This is the textbook extended binary GCD:
	// at every step either u or v is halved when even, or the smaller is
	// subtracted from the larger when both are odd.
	u := mod(x, n)
	v := new(big.Int).Set(n)
	A := big.NewInt(1)
	C := big.NewInt(0)

	two := big.NewInt(2)
	zero := big.NewInt(0)

	for u.Sign() != 0 {
		for u.Bit(0) == 0 {
			u.Div(u, two)
			if A.Bit(0) == 0 {
				A.Div(A, two)
			} else {
				A.Add(A, n)
				A.Div(A, two)
			}
		}
		for v.Bit(0) == 0 {
			v.Div(v, two)
			if C.Bit(0) == 0 {
				C.Div(C, two)
			} else {
				C.Add(C, n)
				C.Div(C, two)
			}
		}
		if u.Cmp(v) >= 0 {
			u.Sub(u, v)
			A.Sub(A, C)
		} else {
			v.Sub(v, u)
			C.Sub(C, A)
		}
	}

	if v.Cmp(big.NewInt(1)) != 0 {
		return big.NewInt(0)
	}
	r := mod(C, n)
	if r.Cmp(zero) < 0 {
		r.Add(r, n)
	}
	return r
}

// ipow computes base raised to the exponent power by repeated multiplication.
// It is intended for small, non-modular exponents only; callers needing
// modular exponentiation with large exponents (e.g. the field square root
// below) use math/big's Exp directly instead.
func ipow(base *big.Int, exponent int) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Set(base)
	for i := 0; i < exponent; i++ {
		result.Mul(result, b)
	}
	return result
}

// modSqrt computes a square root of a modulo the field prime p, relying on
// p ≡ 3 (mod 4) for secp256k1: √a ≡ a^((p+1)/4) (mod p). It does not verify
// that a is a quadratic residue; callers must check the result by squaring
// it back and comparing to a.
func modSqrt(a, p *big.Int) *big.Int {
	e := new(big.Int).Add(p, big.NewInt(1))
	e.Rsh(e, 2)
	return new(big.Int).Exp(a, e, p)
}
