// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "fmt"

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so callers can check against a specific kind without
// inspecting the error's Description string.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Is implements the interface to work with the standard library's
// errors.Is.
//
// It returns true in the following cases:
//   - The target is an Error and the kinds match
//   - The target is an ErrorKind and the kinds match
func (e ErrorKind) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return e == target.Err
	case ErrorKind:
		return e == target
	}
	return false
}

// Error identifies an error produced by this package along with a
// human-readable description of the specific condition. It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying kind.
type Error struct {
	Err         ErrorKind
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is implements the interface to work with the standard library's
// errors.Is.
func (e Error) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return e.Err == target.Err
	case ErrorKind:
		return target == e.Err
	}
	return false
}

// Unwrap returns the underlying wrapped error kind.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a kind and a description.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// Parse errors: malformed wire-format input supplied by a caller. These are
// always returned as values, never panics.
const (
	// ErrPubKeyInvalidLen indicates a public key with an unsupported
	// byte length was supplied.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat indicates a public key with an unrecognized
	// format/prefix byte was supplied.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig indicates a public key whose X coordinate is not
	// less than the field prime.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig indicates a public key whose Y coordinate is not
	// less than the field prime.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve indicates a public key whose coordinates do not
	// satisfy the curve equation.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrPubKeyMismatchedOddness indicates a hybrid-format public key
	// whose encoded y parity does not match the parity of the decoded Y.
	ErrPubKeyMismatchedOddness = ErrorKind("ErrPubKeyMismatchedOddness")

	// ErrPrivKeyInvalidLen indicates a private key that is not exactly
	// 32 bytes.
	ErrPrivKeyInvalidLen = ErrorKind("ErrPrivKeyInvalidLen")

	// ErrPrivKeyOutOfRange indicates a private key scalar outside
	// [1, N-1].
	ErrPrivKeyOutOfRange = ErrorKind("ErrPrivKeyOutOfRange")

	// ErrSigTooShort indicates a DER signature that is too short to be
	// valid.
	ErrSigTooShort = ErrorKind("ErrSigTooShort")

	// ErrSigTooLong indicates a DER signature that is too long to be
	// valid.
	ErrSigTooLong = ErrorKind("ErrSigTooLong")

	// ErrSigInvalidSeqID indicates a DER signature with an incorrect
	// ASN.1 sequence identifier.
	ErrSigInvalidSeqID = ErrorKind("ErrSigInvalidSeqID")

	// ErrSigInvalidDataLen indicates a DER signature whose declared
	// length does not match the remaining data.
	ErrSigInvalidDataLen = ErrorKind("ErrSigInvalidDataLen")

	// ErrSigInvalidRIntID indicates a DER signature with an incorrect
	// ASN.1 integer identifier for R.
	ErrSigInvalidRIntID = ErrorKind("ErrSigInvalidRIntID")

	// ErrSigZeroRLen indicates a DER signature with a zero-length R.
	ErrSigZeroRLen = ErrorKind("ErrSigZeroRLen")

	// ErrSigNegativeR indicates a DER signature whose R would be
	// interpreted as negative.
	ErrSigNegativeR = ErrorKind("ErrSigNegativeR")

	// ErrSigTooMuchRPadding indicates a DER signature with excessive
	// leading-zero padding on R.
	ErrSigTooMuchRPadding = ErrorKind("ErrSigTooMuchRPadding")

	// ErrSigInvalidSIntID indicates a DER signature with an incorrect
	// ASN.1 integer identifier for S.
	ErrSigInvalidSIntID = ErrorKind("ErrSigInvalidSIntID")

	// ErrSigZeroSLen indicates a DER signature with a zero-length S.
	ErrSigZeroSLen = ErrorKind("ErrSigZeroSLen")

	// ErrSigNegativeS indicates a DER signature whose S would be
	// interpreted as negative.
	ErrSigNegativeS = ErrorKind("ErrSigNegativeS")

	// ErrSigTooMuchSPadding indicates a DER signature with excessive
	// leading-zero padding on S.
	ErrSigTooMuchSPadding = ErrorKind("ErrSigTooMuchSPadding")

	// ErrSigRIsZero indicates a signature with R equal to zero.
	ErrSigRIsZero = ErrorKind("ErrSigRIsZero")

	// ErrSigSIsZero indicates a signature with S equal to zero.
	ErrSigSIsZero = ErrorKind("ErrSigSIsZero")

	// ErrSigRTooBig indicates a signature with R >= N.
	ErrSigRTooBig = ErrorKind("ErrSigRTooBig")

	// ErrSigSTooBig indicates a signature with S >= N.
	ErrSigSTooBig = ErrorKind("ErrSigSTooBig")

	// ErrSigInvalidCompactLen indicates a compact signature that is not
	// exactly 65 bytes.
	ErrSigInvalidCompactLen = ErrorKind("ErrSigInvalidCompactLen")

	// ErrSigInvalidCompactPrefix indicates a compact signature with a
	// prefix byte outside the valid 27-34 range.
	ErrSigInvalidCompactPrefix = ErrorKind("ErrSigInvalidCompactPrefix")

	// ErrEncodingUnsupported indicates an unsupported transport encoding
	// name was requested.
	ErrEncodingUnsupported = ErrorKind("ErrEncodingUnsupported")

	// ErrEncodingMalformed indicates a hex or base64 payload that failed
	// to decode.
	ErrEncodingMalformed = ErrorKind("ErrEncodingMalformed")

	// ErrHashUnsupported indicates an unsupported digest algorithm name
	// was requested.
	ErrHashUnsupported = ErrorKind("ErrHashUnsupported")
)

// Invariant/argument errors: conditions that should be unreachable absent
// caller misuse or a fundamental break in the arithmetic below.
const (
	// ErrRecoveryIDMissing indicates a caller requested recovery or
	// compact serialization without a recovery id available.
	ErrRecoveryIDMissing = ErrorKind("ErrRecoveryIDMissing")

	// ErrRecoveryIDOutOfRange indicates a recovery id outside 0..3.
	ErrRecoveryIDOutOfRange = ErrorKind("ErrRecoveryIDOutOfRange")

	// ErrNonceExhausted indicates the RFC 6979 nonce-generation loop
	// exceeded its 1000-iteration bound without producing a usable k.
	// This should be unreachable for any real message/key pair.
	ErrNonceExhausted = ErrorKind("ErrNonceExhausted")

	// ErrPointNotOnCurve indicates that reconstructing a point during
	// signature recovery produced coordinates that fail the curve
	// equation, which means the caller's (sig, message, recid) triple is
	// not self-consistent.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")
)

// String satisfies fmt.Stringer, primarily useful for debugging output.
func (e ErrorKind) String() string {
	return fmt.Sprintf("%s", string(e))
}
