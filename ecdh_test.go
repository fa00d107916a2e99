// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"testing"
)

// TestGetSharedSecretS2 is scenario S2: the known S1 private key and a
// second known private scalar produce the documented shared secret.
func TestGetSharedSecretS2(t *testing.T) {
	privA, err := PrivKeyFromBytes(hexToBytes("5EC0A1AA3526F46E6251D8926922A4EF3D8B2198BFF538EC19C063638A5505B9"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	privB, err := PrivKeyFromBytes(hexToBytes("41149180B55B0B05E38BDFD18F9BAA9473F940358C46328C7DC44240CBBDAC01"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	shared := GetSharedSecret(privA, privB.PubKey())
	want := hexToBytes("F12F77194D54560ADC10A9409CA97A8FD23EE2CC8FFEC5F97D39D80FCD19AAD9")

	if len(shared) != 32 {
		t.Fatalf("shared secret length = %d, want 32", len(shared))
	}
	if !bytes.Equal(shared, want) {
		t.Errorf("shared secret = %x, want %x", shared, want)
	}
}

// TestGetSharedSecretSymmetric covers property 4: ECDH is symmetric between
// two arbitrary keypairs and always 32 bytes.
func TestGetSharedSecretSymmetric(t *testing.T) {
	privA, err := GeneratePrivateKey()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	privB, err := GeneratePrivateKey()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	sharedA := GetSharedSecret(privA, privB.PubKey())
	sharedB := GetSharedSecret(privB, privA.PubKey())

	if len(sharedA) != 32 || len(sharedB) != 32 {
		t.Fatalf("shared secret lengths = %d, %d, want 32, 32", len(sharedA), len(sharedB))
	}
	if !bytes.Equal(sharedA, sharedB) {
		t.Errorf("ECDH not symmetric: %x != %x", sharedA, sharedB)
	}
}

// TestPrivateKeyECDHMethod ensures the crypto/ecdh-shaped method alias
// matches GetSharedSecret.
func TestPrivateKeyECDHMethod(t *testing.T) {
	privA, err := GeneratePrivateKey()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	privB, err := GeneratePrivateKey()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := GetSharedSecret(privA, privB.PubKey())
	got, err := privA.ECDH(privB.PubKey())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ECDH method = %x, want %x", got, want)
	}
}
