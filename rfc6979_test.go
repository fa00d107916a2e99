// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/sha256"
	"errors"
	"math/big"
	"testing"
)

// TestNonceRFC6979Deterministic ensures the same (d, hash) pair always
// produces the same nonce.
func TestNonceRFC6979Deterministic(t *testing.T) {
	d := hexToBigInt("eaf02ca348c524e6392655ba4d29603cd1a7347d9d65cfe93ce1ebffdca2269")
	digest := sha256.Sum256([]byte("hello"))

	k1, err := NonceRFC6979(d, digest[:], nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	k2, err := NonceRFC6979(d, digest[:], nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if k1.Cmp(k2) != 0 {
		t.Errorf("NonceRFC6979 not deterministic: %v != %v", k1, k2)
	}
	if k1.Sign() <= 0 || k1.Cmp(curveParams.N) >= 0 {
		t.Errorf("nonce %v out of range [1, N)", k1)
	}
}

// TestNonceRFC6979ExtraEntropyChangesNonce ensures that supplying extra
// entropy deterministically produces a different nonce, per the extra-data
// construction used to avoid nonce collisions between related protocols.
func TestNonceRFC6979ExtraEntropyChangesNonce(t *testing.T) {
	d := hexToBigInt("eaf02ca348c524e6392655ba4d29603cd1a7347d9d65cfe93ce1ebffdca2269")
	digest := sha256.Sum256([]byte("hello"))

	k1, err := NonceRFC6979(d, digest[:], nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	extra := make([]byte, 32)
	extra[0] = 0x01
	k2, err := NonceRFC6979(d, digest[:], extra, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if k1.Cmp(k2) == 0 {
		t.Error("nonce did not change when extra entropy was supplied")
	}
}

// TestNonceRFC6979DifferentMessages ensures distinct messages under the
// same key produce distinct nonces (not a strict RFC 6979 requirement in
// general, but true with overwhelming probability and a useful smoke test).
func TestNonceRFC6979DifferentMessages(t *testing.T) {
	d := hexToBigInt("eaf02ca348c524e6392655ba4d29603cd1a7347d9d65cfe93ce1ebffdca2269")
	h1 := sha256.Sum256([]byte("hello"))
	h2 := sha256.Sum256([]byte("world"))

	k1, err := NonceRFC6979(d, h1[:], nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	k2, err := NonceRFC6979(d, h2[:], nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if k1.Cmp(k2) == 0 {
		t.Error("different messages produced the same nonce")
	}
}

// TestRFC6979CandidatesSharedBudget ensures an accept callback that never
// succeeds exhausts the same single 1000-iteration budget that out-of-range
// candidates count against, rather than being retried indefinitely.
func TestRFC6979CandidatesSharedBudget(t *testing.T) {
	d := hexToBigInt("eaf02ca348c524e6392655ba4d29603cd1a7347d9d65cfe93ce1ebffdca2269")
	digest := sha256.Sum256([]byte("hello"))

	calls := 0
	_, err := rfc6979Candidates(d, digest[:], nil, nil, func(*big.Int) bool {
		calls++
		return false
	})
	if !errors.Is(err, ErrNonceExhausted) {
		t.Fatalf("got error %v, want ErrNonceExhausted", err)
	}
	if calls == 0 {
		t.Error("accept was never called")
	}
	if calls > 1000 {
		t.Errorf("accept called %d times, want at most 1000", calls)
	}
}

// TestRFC6979CandidatesAcceptsFirstValid ensures the loop returns the first
// candidate accept reports true for, without consulting accept again.
func TestRFC6979CandidatesAcceptsFirstValid(t *testing.T) {
	d := hexToBigInt("eaf02ca348c524e6392655ba4d29603cd1a7347d9d65cfe93ce1ebffdca2269")
	digest := sha256.Sum256([]byte("hello"))

	want, err := NonceRFC6979(d, digest[:], nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	calls := 0
	got, err := rfc6979Candidates(d, digest[:], nil, nil, func(*big.Int) bool {
		calls++
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if calls != 1 {
		t.Errorf("accept called %d times, want 1", calls)
	}
	if got.Cmp(want) != 0 {
		t.Errorf("candidate = %v, want %v", got, want)
	}
}
