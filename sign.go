// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto"
	"io"
)

// Sign implements crypto.Signer. digest is treated as an already-hashed
// message (HashNone): signatures produced by this method are DER-encoded
// and low-S normalized, matching Sign's defaults. The rand argument is
// ignored, since signing here is deterministic per RFC 6979 rather than
// randomized; this is a deliberate deviation from crypto.Signer's usual
// contract, which exists to let *PrivateKey satisfy code written against
// the stdlib interface (e.g. tls.Certificate, x509 signing) without a
// shim.
func (priv *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	sig, err := signHash(priv, digest)
	if err != nil {
		return nil, err
	}
	return sig.Normalize().Serialize(), nil
}

// Public implements crypto.Signer.
func (priv *PrivateKey) Public() crypto.PublicKey {
	return priv.PubKey()
}
