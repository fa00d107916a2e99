// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// GetSharedSecret computes the ECDH shared secret between privkey and
// pubkey: the raw 32-byte big-endian X coordinate of privkey.Scalar() *
// pubkey.Point(), with no KDF applied. RFC 5903 section 9 specifies that
// only X should be returned; callers who need key material should hash the
// result with a KDF of their choosing before use, since this raw value is
// not itself uniformly distributed over all 256-bit strings.
//
// GetSharedSecret(a, B) == GetSharedSecret(b, A) for any keypairs (a, A)
// and (b, B), since both compute ab·G.
func GetSharedSecret(privkey *PrivateKey, pubkey *PublicKey) []byte {
	shared := ScalarMult(pubkey.Point(), privkey.Scalar())
	out := make([]byte, 0, 32)
	return paddedAppend(32, out, shared.X.Bytes())
}

// ECDH is an alias for GetSharedSecret hung off PrivateKey, matching the
// shape of the standard library's crypto/ecdh ECDH method.
func (priv *PrivateKey) ECDH(remote *PublicKey) ([]byte, error) {
	return GetSharedSecret(priv, remote), nil
}
