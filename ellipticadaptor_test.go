// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"testing"
)

// TestIsOnCurveAdaptor ensures the IsOnCurve method used to satisfy the
// elliptic.Curve interface works as intended.
func TestIsOnCurveAdaptor(t *testing.T) {
	s256 := S256()
	if !s256.IsOnCurve(s256.Params().Gx, s256.Params().Gy) {
		t.Fatal("generator point does not claim to be on the curve")
	}
}

// TestScalarBaseMultAdaptor ensures the elliptic.Curve-shaped
// ScalarBaseMult agrees with this package's own ScalarBaseMult.
func TestScalarBaseMultAdaptor(t *testing.T) {
	k := hexToBigInt("eaf02ca348c524e6392655ba4d29603cd1a7347d9d65cfe93ce1ebffdca2269")

	want := ScalarBaseMult(k)
	gotX, gotY := S256().ScalarBaseMult(k.Bytes())
	if gotX.Cmp(want.X) != 0 || gotY.Cmp(want.Y) != 0 {
		t.Errorf("adaptor ScalarBaseMult = (%v, %v), want (%v, %v)", gotX, gotY, want.X, want.Y)
	}
}

// TestPrivateKeyToECDSA ensures the crypto/ecdsa conversion round trips the
// same scalar and public point.
func TestPrivateKeyToECDSA(t *testing.T) {
	priv, err := PrivKeyFromBytes(hexToBytes("0eaf02ca348c524e6392655ba4d29603cd1a7347d9d65cfe93ce1ebffdca2269"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	ecdsaPriv := priv.ToECDSA()
	if ecdsaPriv.D.Cmp(priv.Scalar()) != 0 {
		t.Errorf("D = %v, want %v", ecdsaPriv.D, priv.Scalar())
	}
	if ecdsaPriv.X.Cmp(priv.PubKey().X()) != 0 || ecdsaPriv.Y.Cmp(priv.PubKey().Y()) != 0 {
		t.Error("converted public point does not match")
	}
	if !ecdsaPriv.Curve.IsOnCurve(ecdsaPriv.X, ecdsaPriv.Y) {
		t.Error("converted public point does not satisfy the adaptor's IsOnCurve")
	}
}

// TestFromECDSARoundTrip ensures ToECDSA/FromECDSA round trip both key
// types.
func TestFromECDSARoundTrip(t *testing.T) {
	priv, err := PrivKeyFromBytes(hexToBytes("0eaf02ca348c524e6392655ba4d29603cd1a7347d9d65cfe93ce1ebffdca2269"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	gotPriv, err := FromECDSA(priv.ToECDSA())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if gotPriv.Scalar().Cmp(priv.Scalar()) != 0 {
		t.Errorf("scalar = %v, want %v", gotPriv.Scalar(), priv.Scalar())
	}

	gotPub, err := FromECDSAPub(priv.PubKey().ToECDSA())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !gotPub.IsEqual(priv.PubKey()) {
		t.Error("FromECDSAPub did not round trip the public point")
	}
}

// TestFromECDSAPubNotOnCurve ensures a point off the curve is rejected.
func TestFromECDSAPubNotOnCurve(t *testing.T) {
	bad := &ecdsa.PublicKey{Curve: S256(), X: big.NewInt(1), Y: big.NewInt(2)}
	if _, err := FromECDSAPub(bad); !errors.Is(err, ErrPubKeyNotOnCurve) {
		t.Errorf("got error %v, want ErrPubKeyNotOnCurve", err)
	}
}
