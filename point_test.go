// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestGeneratorOnCurve ensures the base point G satisfies the curve
// equation.
func TestGeneratorOnCurve(t *testing.T) {
	g := generator()
	if !g.IsOnCurve() {
		t.Fatalf("generator is not on curve: %s", spew.Sdump(g))
	}
}

// TestScalarMultIdentities covers property 2 from the testable-properties
// list: 0*P = infinity, 1*P = P, n*P = infinity, for the base point.
func TestScalarMultIdentities(t *testing.T) {
	g := generator()

	if got := ScalarMult(g, big.NewInt(0)); !got.IsInfinity() {
		t.Errorf("0*G = %s, want infinity", spew.Sdump(got))
	}
	if got := ScalarMult(g, big.NewInt(1)); !got.Equals(g) {
		t.Errorf("1*G = %s, want %s", spew.Sdump(got), spew.Sdump(g))
	}
	if got := ScalarMult(g, curveParams.N); !got.IsInfinity() {
		t.Errorf("n*G = %s, want infinity", spew.Sdump(got))
	}
}

// TestScalarMultAssociativity covers property 3: (k1+k2)*G == k1*G + k2*G.
func TestScalarMultAssociativity(t *testing.T) {
	k1 := hexToBigInt("b1e4a1f7c6d2e3f4a5b6c7d8e9f0a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8")
	k2 := hexToBigInt("1a2b3c4d5e6f708192a3b4c5d6e7f809182a3b4c5d6e7f8091a2b3c4d5e6f70")

	lhs := ScalarBaseMult(mod(new(big.Int).Add(k1, k2), curveParams.N))
	rhs := Add(ScalarBaseMult(k1), ScalarBaseMult(k2))

	if !lhs.Equals(rhs) {
		t.Errorf("(k1+k2)*G = %s, k1*G + k2*G = %s", spew.Sdump(lhs), spew.Sdump(rhs))
	}
}

// TestDoubleMatchesAdd ensures Double(P) == Add(P, P).
func TestDoubleMatchesAdd(t *testing.T) {
	g := generator()
	dbl := Double(g)
	added := Add(g, g)
	if !dbl.Equals(added) {
		t.Errorf("Double(G) = %s, Add(G, G) = %s", spew.Sdump(dbl), spew.Sdump(added))
	}
}

// TestAddInfinityIdentity ensures the point at infinity behaves as the
// additive identity.
func TestAddInfinityIdentity(t *testing.T) {
	g := generator()
	inf := InfinityPoint()

	if got := Add(g, inf); !got.Equals(g) {
		t.Errorf("G + infinity = %s, want %s", spew.Sdump(got), spew.Sdump(g))
	}
	if got := Add(inf, g); !got.Equals(g) {
		t.Errorf("infinity + G = %s, want %s", spew.Sdump(got), spew.Sdump(g))
	}
}

// TestAddNegationYieldsInfinity ensures P + (-P) = infinity.
func TestAddNegationYieldsInfinity(t *testing.T) {
	g := generator()
	neg := g.Negate()
	got := Add(g, neg)
	if !got.IsInfinity() {
		t.Errorf("G + (-G) = %s, want infinity", spew.Sdump(got))
	}
}

// TestResultsStayOnCurve ensures Add, Double, and ScalarMult always produce
// points satisfying the curve equation.
func TestResultsStayOnCurve(t *testing.T) {
	g := generator()
	k := hexToBigInt("9f1c2d3e4f5061728394a5b6c7d8e9f0a1b2c3d4e5f60718293a4b5c6d7e8f9")
	p2 := ScalarBaseMult(k)

	points := []*Point{
		Add(g, p2),
		Double(g),
		ScalarMult(p2, hexToBigInt("64")),
	}
	for i, pt := range points {
		if !pt.IsOnCurve() {
			t.Errorf("point %d not on curve: %s", i, spew.Sdump(pt))
		}
	}
}
