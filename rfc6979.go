// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
)

// References:
//   [6979]: RFC 6979 (Deterministic Usage of DSA and ECDSA)

// hashToInt converts a hash digest to an integer per the bits2int procedure
// in RFC 6979 section 2.3.2: a digest wider than the curve order keeps only
// its leftmost n.BitLen() bits (for secp256k1, the first 32 bytes), and a
// narrower one is read as-is. The result is not reduced modulo n and may
// be >= n.
func hashToInt(hashBytes []byte, n *big.Int) *big.Int {
	orderBits := n.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hashBytes) > orderBytes {
		hashBytes = hashBytes[:orderBytes]
	}

	ret := new(big.Int).SetBytes(hashBytes)
	excess := len(hashBytes)*8 - orderBits
	if excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret
}

// int2octets is the RFC 6979 section 2.3.3 procedure: convert x to a
// rolen-byte big-endian string, where rolen is the group order's byte
// length.
func int2octets(x *big.Int, rolen int) []byte {
	out := make([]byte, 0, rolen)
	return paddedAppend(rolen, out, x.Bytes())
}

// bits2octets is the RFC 6979 section 2.3.4 procedure.
func bits2octets(in []byte, n *big.Int, rolen int) []byte {
	z1 := hashToInt(in, n)
	z2 := new(big.Int).Sub(z1, n)
	if z2.Sign() < 0 {
		return int2octets(z1, rolen)
	}
	return int2octets(z2, rolen)
}

// rfc6979Candidates runs the RFC 6979 section 3.2 K/V construction over the
// private key d, message digest hash, and optional extra/version byte
// strings, calling accept on each candidate t that lands in [1, N-1] and
// returning the first one accept reports true for. A candidate outside
// [1, N-1], or one accept rejects, costs one of a single shared budget of
// 1000 iterations: K and V are refreshed in place (K = HMAC(K, V||0x00);
// V = HMAC(K, V)) and the loop continues from that same chain, matching
// section 3.2's own retry step rather than restarting from fresh entropy.
// It returns an error of kind ErrNonceExhausted once that combined budget
// is exhausted without an accepted candidate, which is cryptographically
// unreachable for honest inputs.
func rfc6979Candidates(d *big.Int, hash, extra, version []byte, accept func(t *big.Int) bool) (*big.Int, error) {
	n := curveParams.N
	rolen := (n.BitLen() + 7) / 8

	privBytes := int2octets(d, rolen)
	bx := make([]byte, 0, len(privBytes)+rolen+len(extra)+len(version))
	bx = append(bx, privBytes...)
	bx = append(bx, bits2octets(hash, n, rolen)...)
	if len(extra) == 32 {
		bx = append(bx, extra...)
	}
	if len(version) == 16 && len(extra) == 32 {
		bx = append(bx, version...)
	} else if len(version) == 16 {
		bx = append(bx, make([]byte, 32)...)
		bx = append(bx, version...)
	}

	k := make([]byte, sha256.Size)
	v := make([]byte, sha256.Size)
	for i := range v {
		v[i] = 0x01
	}
	for i := range k {
		k[i] = 0x00
	}

	k = mac(k, append(append(append([]byte{}, v...), 0x00), bx...))
	v = mac(k, v)
	k = mac(k, append(append(append([]byte{}, v...), 0x01), bx...))
	v = mac(k, v)

	const maxIterations = 1000
	for i := 0; i < maxIterations; i++ {
		var t []byte
		for len(t) < rolen {
			v = mac(k, v)
			t = append(t, v...)
		}

		secret := hashToInt(t, n)
		if secret.Sign() > 0 && secret.Cmp(n) < 0 && accept(secret) {
			return secret, nil
		}

		k = mac(k, append(v, 0x00))
		v = mac(k, v)
	}

	return nil, makeError(ErrNonceExhausted, "RFC 6979 nonce generation exceeded iteration bound")
}

// NonceRFC6979 generates a deterministic ECDSA nonce k per RFC 6979 section
// 3.2, using the private key d, the message digest hash, and optionally
// extra and version byte strings folded into the initial HMAC input
// (matching the extra-entropy construction some callers use to produce a
// second, still-deterministic candidate signature). It returns the first
// candidate in [1, N-1], with no further acceptance criteria; see
// rfc6979Candidates for the shared iteration budget and ErrNonceExhausted
// condition.
func NonceRFC6979(d *big.Int, hash, extra, version []byte) (*big.Int, error) {
	return rfc6979Candidates(d, hash, extra, version, func(*big.Int) bool { return true })
}

func mac(key, msg []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(msg)
	return h.Sum(nil)
}
