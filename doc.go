// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements the secp256k1 elliptic curve in pure Go.

It provides field and point arithmetic in Jacobian projective coordinates,
private and public key generation, public key parsing per ANSI X9.62-1998 /
SEC1 (compressed, uncompressed, and hybrid forms) and serialization
(compressed and uncompressed forms),
Diffie-Hellman shared secret derivation, and deterministic ECDSA signing,
verification, and public-key recovery.

An overview of the features provided by this package:

  - Private key generation, serialization, and parsing
  - Public key generation, serialization (compressed, uncompressed), and
    parsing (compressed, uncompressed, hybrid)
  - Point addition, doubling, and scalar multiplication in Jacobian
    projective coordinates
  - Elliptic Curve Diffie-Hellman (ECDH) shared secret derivation
  - Deterministic ECDSA signing per RFC 6979, with BIP 62 low-S
    normalization
  - DER and 65-byte compact signature parsing and serialization
  - Public key recovery from a compact signature and message

It also provides an implementation of the standard library's crypto/elliptic
Curve interface via the S256 function, and PrivateKey satisfies
crypto.Signer, so values from this package can be used with crypto/tls,
crypto/x509, and crypto/ecdsa. For anything performance-sensitive, prefer
this package's own Sign/Verify/RecoverKey over going through crypto/ecdsa,
since the adaptor in ellipticadaptor.go does not share the optimizations
the rest of the package could grow.
*/
package secp256k1
