// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/base64"
	"encoding/hex"
)

// Encoding selects a transport representation for signatures: Sign encodes
// its output with it, and Verify and RecoverKey decode their signature input
// with it. GetSharedSecret and public key serialization take no Encoding and
// always return raw bytes. EncodingNone passes raw bytes through unchanged.
type Encoding int

const (
	EncodingNone Encoding = iota
	EncodingHex
	EncodingBase64
)

// encodeBytes renders raw per enc.
func encodeBytes(enc Encoding, raw []byte) ([]byte, error) {
	switch enc {
	case EncodingNone:
		return raw, nil
	case EncodingHex:
		return []byte(hex.EncodeToString(raw)), nil
	case EncodingBase64:
		return []byte(base64.StdEncoding.EncodeToString(raw)), nil
	default:
		return nil, makeError(ErrEncodingUnsupported, "unsupported output encoding")
	}
}

// decodeBytes parses data as enc back into raw bytes.
func decodeBytes(enc Encoding, data []byte) ([]byte, error) {
	switch enc {
	case EncodingNone:
		return data, nil
	case EncodingHex:
		raw, err := hex.DecodeString(string(data))
		if err != nil {
			return nil, makeError(ErrEncodingMalformed, "malformed hex input: "+err.Error())
		}
		return raw, nil
	case EncodingBase64:
		raw, err := base64.StdEncoding.DecodeString(string(data))
		if err != nil {
			return nil, makeError(ErrEncodingMalformed, "malformed base64 input: "+err.Error())
		}
		return raw, nil
	default:
		return nil, makeError(ErrEncodingUnsupported, "unsupported input encoding")
	}
}
