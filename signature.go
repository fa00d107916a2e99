// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// References:
//   [ISO/IEC 8825-1]: Information technology — ASN.1 encoding rules

// Signature is an ECDSA (r, s) pair over secp256k1 with an optional
// recovery id. A signature parsed from DER always has Recid == nil; a
// signature parsed from the 65-byte compact form always carries a Recid and
// sets CompressedHint to whatever the prefix byte recorded about the
// signing key's preferred serialization.
type Signature struct {
	R, S           *big.Int
	Recid          *int
	CompressedHint bool
}

// NewSignature instantiates a signature from r and s with no recovery id.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{R: new(big.Int).Set(r), S: new(big.Int).Set(s)}
}

// IsEqual reports whether two signatures have the same R and S.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}

// halfOrder is N/2, used for the low-S (BIP 62) normalization check.
var halfOrder = new(big.Int).Rsh(curveParams.N, 1)

// Normalize enforces S <= N/2 (BIP 62 low-S), replacing S with N-S and, if a
// recovery id is present, flipping its low bit to match. It returns a new
// Signature; the receiver is not mutated.
func (sig *Signature) Normalize() *Signature {
	if sig.S.Cmp(halfOrder) <= 0 {
		out := &Signature{R: new(big.Int).Set(sig.R), S: new(big.Int).Set(sig.S)}
		if sig.Recid != nil {
			r := *sig.Recid
			out.Recid = &r
		}
		return out
	}

	out := &Signature{
		R: new(big.Int).Set(sig.R),
		S: mod(new(big.Int).Sub(curveParams.N, sig.S), curveParams.N),
	}
	if sig.Recid != nil {
		flipped := *sig.Recid ^ 1
		out.Recid = &flipped
	}
	return out
}

// Serialize encodes the signature in DER: 0x30 len 0x02 rlen R 0x02 slen S,
// with R and S minimally encoded as unsigned big-endian integers (a leading
// 0x00 is inserted whenever the high bit of the first byte would otherwise
// make the value look negative).
func (sig *Signature) Serialize() []byte {
	const (
		asn1SequenceID = 0x30
		asn1IntegerID  = 0x02
	)

	canonR := canonicalDERInt(sig.R.Bytes())
	canonS := canonicalDERInt(sig.S.Bytes())

	totalLen := 4 + len(canonR) + len(canonS)
	b := make([]byte, 0, totalLen+2)
	b = append(b, asn1SequenceID, byte(totalLen))
	b = append(b, asn1IntegerID, byte(len(canonR)))
	b = append(b, canonR...)
	b = append(b, asn1IntegerID, byte(len(canonS)))
	b = append(b, canonS...)
	return b
}

// canonicalDERInt returns v's minimal unsigned big-endian DER encoding,
// inserting a leading zero byte when the first byte's high bit is set.
func canonicalDERInt(v []byte) []byte {
	if len(v) == 0 {
		v = []byte{0x00}
	}
	if v[0]&0x80 != 0 {
		out := make([]byte, len(v)+1)
		copy(out[1:], v)
		return out
	}
	return v
}

// ToCompact serializes the signature as a 65-byte compact blob:
// prefix || R(32) || S(32), where prefix = recid + 27 + (4 if compressed).
// The recid comes from the signature itself unless recidOverride is
// non-nil. It fails with ErrRecoveryIDMissing / ErrRecoveryIDOutOfRange if
// no usable recid in 0..3 is available.
func (sig *Signature) ToCompact(compressed bool, recidOverride *int) ([]byte, error) {
	var recid int
	switch {
	case recidOverride != nil:
		recid = *recidOverride
	case sig.Recid != nil:
		recid = *sig.Recid
	default:
		return nil, makeError(ErrRecoveryIDMissing, "cannot serialize compact signature without a recovery id")
	}
	if recid < 0 || recid > 3 {
		return nil, makeError(ErrRecoveryIDOutOfRange, fmt.Sprintf("recovery id %d out of range 0..3", recid))
	}

	prefix := byte(recid) + 27
	if compressed {
		prefix += 4
	}

	out := make([]byte, 0, 65)
	out = append(out, prefix)
	out = paddedAppend(32, out, sig.R.Bytes())
	out = paddedAppend(32, out, sig.S.Bytes())
	return out, nil
}

// canonicalPadding mirrors the DER integer well-formedness check: the first
// byte must not have the sign bit set (would read as negative), and there
// must be no unnecessary leading zero byte.
func canonicalPadding(b []byte) error {
	switch {
	case len(b) == 0:
		return nil
	case b[0]&0x80 == 0x80:
		return fmt.Errorf("value may be interpreted as negative")
	case len(b) > 1 && b[0] == 0x00 && b[1]&0x80 != 0x80:
		return fmt.Errorf("value is excessively padded")
	default:
		return nil
	}
}

// ParseDERSignature parses a DER-encoded signature:
// 0x30 <len> 0x02 <rlen> <R> 0x02 <slen> <S>.
func ParseDERSignature(data []byte) (*Signature, error) {
	if len(data) < 8 {
		return nil, makeError(ErrSigTooShort, "malformed signature: too short")
	}
	index := 0
	if data[index] != 0x30 {
		return nil, makeError(ErrSigInvalidSeqID, "malformed signature: no header magic")
	}
	index++

	siglen := data[index]
	index++
	if int(siglen)+2 > len(data) {
		return nil, makeError(ErrSigInvalidDataLen, "malformed signature: bad length")
	}
	data = data[:siglen+2]

	if data[index] != 0x02 {
		return nil, makeError(ErrSigInvalidRIntID, "malformed signature: no 1st int marker")
	}
	index++

	rLen := int(data[index])
	index++
	if rLen <= 0 || rLen > len(data)-index-3 {
		return nil, makeError(ErrSigZeroRLen, "malformed signature: bogus R length")
	}
	rBytes := data[index : index+rLen]
	if err := canonicalPadding(rBytes); err != nil {
		if err.Error() == "value may be interpreted as negative" {
			return nil, makeError(ErrSigNegativeR, "signature R is negative")
		}
		return nil, makeError(ErrSigTooMuchRPadding, "signature R is excessively padded")
	}
	r := new(big.Int).SetBytes(rBytes)
	index += rLen

	if data[index] != 0x02 {
		return nil, makeError(ErrSigInvalidSIntID, "malformed signature: no 2nd int marker")
	}
	index++

	sLen := int(data[index])
	index++
	if sLen <= 0 || sLen > len(data)-index {
		return nil, makeError(ErrSigZeroSLen, "malformed signature: bogus S length")
	}
	sBytes := data[index : index+sLen]
	if err := canonicalPadding(sBytes); err != nil {
		if err.Error() == "value may be interpreted as negative" {
			return nil, makeError(ErrSigNegativeS, "signature S is negative")
		}
		return nil, makeError(ErrSigTooMuchSPadding, "signature S is excessively padded")
	}
	s := new(big.Int).SetBytes(sBytes)
	index += sLen

	if index != len(data) {
		return nil, makeError(ErrSigInvalidDataLen,
			fmt.Sprintf("malformed signature: bad final length %d != %d", index, len(data)))
	}

	if r.Sign() != 1 {
		return nil, makeError(ErrSigRIsZero, "signature R isn't 1 or more")
	}
	if s.Sign() != 1 {
		return nil, makeError(ErrSigSIsZero, "signature S isn't 1 or more")
	}
	if r.Cmp(curveParams.N) >= 0 {
		return nil, makeError(ErrSigRTooBig, "signature R is >= curve.N")
	}
	if s.Cmp(curveParams.N) >= 0 {
		return nil, makeError(ErrSigSTooBig, "signature S is >= curve.N")
	}

	return &Signature{R: r, S: s}, nil
}

// ParseCompactSignature parses a 65-byte compact signature: prefix || R(32)
// || S(32), where prefix = recid + 27 + (4 if compressed). The recid is
// always populated on success.
func ParseCompactSignature(data []byte) (*Signature, error) {
	if len(data) != 65 {
		str := fmt.Sprintf("invalid compact signature length: %d", len(data))
		return nil, makeError(ErrSigInvalidCompactLen, str)
	}

	prefix := data[0]
	if prefix < 27 || prefix > 34 {
		str := fmt.Sprintf("invalid compact signature prefix: %d", prefix)
		return nil, makeError(ErrSigInvalidCompactPrefix, str)
	}

	compressed := (prefix-27)&4 == 4
	recid := int((prefix - 27) & ^byte(4))

	r := new(big.Int).SetBytes(data[1:33])
	s := new(big.Int).SetBytes(data[33:65])
	return &Signature{R: r, S: s, Recid: &recid, CompressedHint: compressed}, nil
}

// ParseSignature parses either a DER or a 65-byte compact signature,
// dispatching on length: exactly 65 bytes is parsed as compact, anything
// else as DER. Verify and RecoverKey accept either form through it.
func ParseSignature(data []byte) (*Signature, error) {
	if len(data) == 65 {
		return ParseCompactSignature(data)
	}
	return ParseDERSignature(data)
}
