// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"math/big"
)

// HashAlgorithm selects the digest applied to a message before signing or
// verification. None means the caller has already hashed (or otherwise
// prepared) the message and it should be consumed as-is, truncated to the
// curve's bit length per RFC 6979/FIPS 186-4 section 6.4.
type HashAlgorithm int

const (
	HashSHA256 HashAlgorithm = iota
	HashSHA384
	HashSHA512
	HashNone
)

// SignOptions controls Sign's behavior. The zero value is not directly
// useful; construct with DefaultSignOptions and override selected fields.
type SignOptions struct {
	Hash       HashAlgorithm
	Normalize  bool
	Compact    bool
	Compressed bool
	Recovery   bool
	Encoding   Encoding
}

// DefaultSignOptions returns the conventional signing defaults: SHA-256
// digest, low-S normalized, DER-encoded, no recovery id, no transport
// encoding.
func DefaultSignOptions() SignOptions {
	return SignOptions{
		Hash:       HashSHA256,
		Normalize:  true,
		Compact:    false,
		Compressed: true,
		Recovery:   false,
		Encoding:   EncodingNone,
	}
}

// VerifyOptions controls Verify and RecoverKey. RecoveryID overrides the
// recovery id consulted by RecoverKey when the parsed signature carries
// none of its own, which is always the case for DER-encoded signatures.
type VerifyOptions struct {
	Hash       HashAlgorithm
	Encoding   Encoding
	RecoveryID *int
}

// DefaultVerifyOptions returns the conventional verification defaults:
// SHA-256 digest, no transport encoding, no recovery id override.
func DefaultVerifyOptions() VerifyOptions {
	return VerifyOptions{Hash: HashSHA256, Encoding: EncodingNone}
}

// digestMessage hashes message per alg, or returns it unchanged for
// HashNone.
func digestMessage(alg HashAlgorithm, message []byte) ([]byte, error) {
	var h hash.Hash
	switch alg {
	case HashSHA256:
		h = sha256.New()
	case HashSHA384:
		h = sha512.New384()
	case HashSHA512:
		h = sha512.New()
	case HashNone:
		return message, nil
	default:
		return nil, makeError(ErrHashUnsupported, "unsupported hash algorithm")
	}
	h.Write(message)
	return h.Sum(nil), nil
}

// Sign produces a deterministic ECDSA signature over message under privkey
// per RFC 6979, optionally DER- or compact-encoding and transport-encoding
// the result per opts. When opts.Recovery is true, the returned recid is the
// signature's recovery id (0..3); otherwise it is -1.
func Sign(privkey *PrivateKey, message []byte, opts SignOptions) ([]byte, int, error) {
	digest, err := digestMessage(opts.Hash, message)
	if err != nil {
		return nil, -1, err
	}

	sig, err := signHash(privkey, digest)
	if err != nil {
		return nil, -1, err
	}
	if opts.Normalize {
		sig = sig.Normalize()
	}

	recid := -1
	if opts.Recovery && sig.Recid != nil {
		recid = *sig.Recid
	}

	var raw []byte
	if opts.Compact {
		raw, err = sig.ToCompact(opts.Compressed, nil)
		if err != nil {
			return nil, -1, err
		}
	} else {
		raw = sig.Serialize()
	}

	encoded, err := encodeBytes(opts.Encoding, raw)
	if err != nil {
		return nil, -1, err
	}
	return encoded, recid, nil
}

// signHash implements the core RFC 6979 + ECDSA sign loop over an
// already-digested message. The nonce candidate, r, and s are all produced
// within rfc6979Candidates' single bounded loop: a candidate is accepted
// only once both r and s come out non-zero, so an unacceptable candidate
// costs one of the shared 1000-iteration budget and refreshes K/V in place
// rather than restarting the chain from fresh entropy (cryptographically
// unreachable in practice, but handled per the algorithm's own definition).
func signHash(privkey *PrivateKey, digest []byte) (*Signature, error) {
	n := curveParams.N
	d := privkey.Scalar()
	z := hashToInt(digest, n)

	var r, s *big.Int
	var recid int
	_, err := rfc6979Candidates(d, digest, nil, nil, func(k *big.Int) bool {
		pt := ScalarBaseMult(k)
		candR := mod(pt.X, n)
		if candR.Sign() == 0 {
			return false
		}

		kInv := inv(k, n)
		rd := mod(new(big.Int).Mul(candR, d), n)
		candS := mod(new(big.Int).Add(z, rd), n)
		candS = mod(new(big.Int).Mul(candS, kInv), n)
		if candS.Sign() == 0 {
			return false
		}

		candRecid := 0
		if pt.X.Cmp(candR) != 0 {
			// r was reduced mod N from a point.X >= N; bit 1 of the
			// documented recid scheme would record this, but per this
			// package's recovery-id limitation only bit 0 (Y parity) is
			// ever consulted on recovery.
			candRecid |= 2
		}
		if isOdd(pt.Y) {
			candRecid |= 1
		}

		r, s, recid = candR, candS, candRecid
		return true
	})
	if err != nil {
		return nil, err
	}

	return &Signature{R: r, S: s, Recid: &recid}, nil
}

// Verify reports whether sig is a valid ECDSA signature over message under
// pubkey.
func Verify(sigBytes, message []byte, pubkey *PublicKey, opts VerifyOptions) (bool, error) {
	raw, err := decodeBytes(opts.Encoding, sigBytes)
	if err != nil {
		return false, err
	}
	sig, err := ParseSignature(raw)
	if err != nil {
		return false, err
	}
	digest, err := digestMessage(opts.Hash, message)
	if err != nil {
		return false, err
	}
	return verifyHash(sig, digest, pubkey), nil
}

// verifyHash implements the core ECDSA verification equation over an
// already-digested message.
func verifyHash(sig *Signature, digest []byte, pubkey *PublicKey) bool {
	n := curveParams.N
	if sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return false
	}

	z := hashToInt(digest, n)
	sInv := inv(sig.S, n)
	u1 := mod(new(big.Int).Mul(z, sInv), n)
	u2 := mod(new(big.Int).Mul(sig.R, sInv), n)

	p1 := ScalarBaseMult(u1)
	p2 := ScalarMult(pubkey.Point(), u2)
	sum := Add(p1, p2)
	if sum.IsInfinity() {
		return false
	}

	return mod(sum.X, n).Cmp(sig.R) == 0
}

// RecoverKey recovers the public key that produced sig over message, using
// the recovery id carried by a compact signature, or opts.RecoveryID if
// supplied (the only way to recover from a DER-encoded signature, which
// never carries one of its own). It fails with ErrRecoveryIDMissing if sig
// carries no recovery id and opts.RecoveryID is nil, and with
// ErrPointNotOnCurve if the reconstructed candidate point does not satisfy
// the curve equation, which means (sig, message, recid) is not a
// self-consistent triple.
func RecoverKey(sigBytes, message []byte, opts VerifyOptions) (*PublicKey, error) {
	raw, err := decodeBytes(opts.Encoding, sigBytes)
	if err != nil {
		return nil, err
	}
	sig, err := ParseSignature(raw)
	if err != nil {
		return nil, err
	}
	recidPtr := sig.Recid
	if recidPtr == nil {
		recidPtr = opts.RecoveryID
	}
	if recidPtr == nil {
		return nil, makeError(ErrRecoveryIDMissing, "cannot recover a public key without a recovery id")
	}
	if *recidPtr < 0 || *recidPtr > 3 {
		return nil, makeError(ErrRecoveryIDOutOfRange, "recovery id must be in 0..3")
	}
	digest, err := digestMessage(opts.Hash, message)
	if err != nil {
		return nil, err
	}

	n := curveParams.N
	z := hashToInt(digest, n)
	recid := *recidPtr

	// Bit 1 of recid (point.X >= N) is part of the documented encoding but,
	// per this package's recovery-id limitation, only bit 0 (Y parity) is
	// consulted here; recovery assumes r was not reduced mod N, which holds
	// overwhelmingly in practice.
	wantOdd := recid&1 == 1

	rInv := inv(sig.R, n)
	y := decompressY(sig.R, wantOdd)
	rPt := &Point{X: new(big.Int).Set(sig.R), Y: y}
	if !rPt.IsOnCurve() {
		return nil, makeError(ErrPointNotOnCurve, "recovered R point does not lie on the curve")
	}

	sR := ScalarMult(rPt, sig.S)
	zG := ScalarBaseMult(z)
	numerator := Add(sR, zG.Negate())
	pub := ScalarMult(numerator, rInv)
	if !pub.IsOnCurve() || pub.IsInfinity() {
		return nil, makeError(ErrPointNotOnCurve, "recovered public key point does not lie on the curve")
	}

	return &PublicKey{point: pub, compressed: sig.CompressedHint}, nil
}
