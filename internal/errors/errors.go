// Package errors defines the flat error taxonomy for the quantum-go secure
// messaging envelope. Errors are surfaced as sentinel values so callers can
// use errors.Is, plus two wrapper types that attach operation context
// without leaking cryptographic intermediate state.
package errors

import (
	"errors"
	"fmt"
)

// Input-shape errors: preconditions checked before any cryptographic work.
var (
	// ErrInvalidKeySize indicates a key or secret has the wrong length.
	ErrInvalidKeySize = errors.New("envelope: invalid key size")

	// ErrInvalidPFSKeyLength indicates a PFS key is not exactly 32 bytes.
	ErrInvalidPFSKeyLength = errors.New("envelope: pfs key must be 32 bytes")

	// ErrInvalidSaltLength indicates an envelope or PFS-ratchet salt is not
	// exactly 16 bytes. A malformed ID-ratchet salt is reported as
	// ErrInvalidHexLength instead.
	ErrInvalidSaltLength = errors.New("envelope: invalid salt length")

	// ErrEnvelopeTooShort indicates an envelope is not long enough to
	// contain a KEM ciphertext and an IV.
	ErrEnvelopeTooShort = errors.New("envelope: message too short")

	// ErrInvalidHexLength indicates a hex-encoded identifier does not match
	// its required length or contains non-lowercase-hex characters.
	ErrInvalidHexLength = errors.New("identity: invalid hex identifier")

	// ErrEmptyModifier indicates a custom-temp-ID modifier was empty.
	ErrEmptyModifier = errors.New("identity: modifier must not be empty")

	// ErrEmptyKey indicates an empty key was passed where non-empty key
	// material is required (e.g. crypto.Dh, DeriveSecurityNumber).
	ErrEmptyKey = errors.New("envelope: key must not be empty")

	// ErrInvalidPublicKey indicates a public key is malformed or the wrong size.
	ErrInvalidPublicKey = errors.New("crypto: invalid public key")

	// ErrInvalidPrivateKey indicates a private key is malformed or missing.
	ErrInvalidPrivateKey = errors.New("crypto: invalid private key")

	// ErrInvalidCiphertext indicates a ciphertext is malformed or the wrong size.
	ErrInvalidCiphertext = errors.New("crypto: invalid ciphertext")
)

// Time-domain errors.
var (
	// ErrTimestampInFuture indicates a timestamp walk was asked to start
	// strictly after the current bucket.
	ErrTimestampInFuture = errors.New("identity: timestamp is in the future")

	// ErrTimestampParse indicates a timestamp string failed to parse
	// (wrong length, non-digit characters, or an out-of-range hour bucket).
	ErrTimestampParse = errors.New("identity: failed to parse timestamp")
)

// Cryptographic-opaque errors: reported generically so they never leak
// which byte of a ciphertext or signature diverged.
var (
	// ErrKEMSharedSecretFailed indicates KEM encapsulation failed.
	ErrKEMSharedSecretFailed = errors.New("envelope: failed to get kyber shared secret")

	// ErrKEMDecryptFailed indicates KEM decapsulation hit a structural error.
	ErrKEMDecryptFailed = errors.New("envelope: could not decrypt kyber secret")

	// ErrSymmetricEncryptionFailed indicates the CBC layer failed to encrypt
	// the signed blob.
	ErrSymmetricEncryptionFailed = errors.New("envelope: symmetric encryption failed")

	// ErrSymmetricDecryptionFailed indicates the CBC layer failed to decrypt
	// (bad padding, wrong key, or truncated ciphertext). This is also the
	// error surfaced when KEM implicit-rejection silently produced the
	// wrong session key.
	ErrSymmetricDecryptionFailed = errors.New("envelope: symmetric decryption failed")

	// ErrSignatureNotFound indicates the decrypted blob had no "." delimiter.
	ErrSignatureNotFound = errors.New("envelope: signature not found")

	// ErrSignatureParseFailed indicates the hex-encoded signature prefix
	// failed to decode.
	ErrSignatureParseFailed = errors.New("envelope: signature parsing failed")
)

// Authenticity failure: distinct from corruption so callers can tell the two apart.
var (
	// ErrSignatureVerificationFailed indicates a present signature did not
	// verify against the supplied peer public key.
	ErrSignatureVerificationFailed = errors.New("envelope: signature verification failed")
)

// Scheme/configuration errors.
var (
	// ErrUnsupportedCipherSuite indicates an unknown symmetric suite was requested.
	ErrUnsupportedCipherSuite = errors.New("crypto: unsupported cipher suite")
)

// CryptoError wraps a low-level cryptographic error with the operation name
// that produced it, without embedding any secret material.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// NewCryptoError creates a new CryptoError.
func NewCryptoError(op string, err error) *CryptoError {
	return &CryptoError{Op: op, Err: err}
}

// EnvelopeError wraps an error with the envelope phase it occurred in
// (e.g. "encrypt", "decrypt", "ratchet").
type EnvelopeError struct {
	Phase string
	Err   error
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("envelope %s: %v", e.Phase, e.Err)
}

func (e *EnvelopeError) Unwrap() error {
	return e.Err
}

// NewEnvelopeError creates a new EnvelopeError.
func NewEnvelopeError(phase string, err error) *EnvelopeError {
	return &EnvelopeError{Phase: phase, Err: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
