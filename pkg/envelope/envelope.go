// Package envelope implements the message envelope protocol: the layered
// construction that binds a fresh KEM encapsulation, a rolling
// forward-secrecy key, a hash-derived session key, an optional signature,
// and symmetric encryption into one byte stream.
//
// Wire layout (bit-exact):
//
//	offset 0         1568             1584                    end
//	       |  ct_kem  |      IV(16)    |  AES-256-CBC payload  |
//
// The CBC payload decrypts to UTF-8 bytes of the form
// "<hex-signature-or-empty>.<plaintext>".
//
// Grounded in style on pkg/chkem's KeyPair/PublicKey/Ciphertext value types
// and its Bytes()/Parse*/Zeroize conventions, but the actual composition —
// KEM ciphertext followed by IV-prefixed CBC payload, hex-signature-dot-
// plaintext framing, PFS ratchet folded into the session key — is this
// protocol's own, not chkem's hybrid-KEM construction. CurveDH stays an
// independent primitive; it is never merged into this envelope's KEM step.
package envelope

import (
	"bytes"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/cloudflare/circl/sign"

	"github.com/sara-star-quant/quantum-go/internal/constants"
	qerrors "github.com/sara-star-quant/quantum-go/internal/errors"
	"github.com/sara-star-quant/quantum-go/pkg/crypto"
	"github.com/sara-star-quant/quantum-go/pkg/qlog"
)

// Warnings is re-exported for callers that only import pkg/envelope.
type Warnings = constants.Warnings

// EncryptMessage composes a full envelope: KEM ciphertext, a PFS-ratcheted
// session key, an optional detached signature, and AES-256-CBC encryption
// of the signed blob.
//
// signerSK may be nil, selecting unsigned mode. pfsKey and salt must be
// exactly 32 and 16 bytes respectively. Returns the envelope bytes and the
// ratcheted successor PFS key.
func EncryptMessage(peerKEMPublicKey *crypto.KEMPublicKey, signerSK sign.PrivateKey, pfsKey, salt []byte, plaintext string) (envelopeOut []byte, nextPFSKey []byte, err error) {
	if len(pfsKey) != constants.PFSKeySize {
		return nil, nil, qerrors.ErrInvalidPFSKeyLength
	}
	if len(salt) != constants.EnvelopeSaltSize {
		return nil, nil, qerrors.ErrInvalidSaltLength
	}

	kemCiphertext, kemSharedSecret, err := crypto.KEMEncapsulate(peerKEMPublicKey)
	if err != nil {
		return nil, nil, qerrors.NewEnvelopeError("encrypt.kem_encapsulate", qerrors.ErrKEMSharedSecretFailed)
	}

	pfsShared, err := crypto.DerivePFS(pfsKey, salt)
	if err != nil {
		return nil, nil, qerrors.NewEnvelopeError("encrypt.derive_pfs", err)
	}

	sessionKey := deriveSessionKey(kemSharedSecret, pfsShared)

	var signatureHex string
	if signerSK != nil {
		signature := crypto.Sign(signerSK, []byte(plaintext))
		signatureHex = hex.EncodeToString(signature)
	}

	signedBlob := []byte(signatureHex + "." + plaintext)

	symmetricCiphertext, err := crypto.Encrypt(signedBlob, sessionKey)
	if err != nil {
		return nil, nil, qerrors.NewEnvelopeError("encrypt.symmetric", qerrors.ErrSymmetricEncryptionFailed)
	}
	// pfsShared is returned as nextPFSKey; only the session key and the raw
	// KEM secret are scratch values that can be zeroized here.
	crypto.ZeroizeMultiple(sessionKey, kemSharedSecret)

	envelopeOut = make([]byte, 0, len(kemCiphertext)+len(symmetricCiphertext))
	envelopeOut = append(envelopeOut, kemCiphertext...)
	envelopeOut = append(envelopeOut, symmetricCiphertext...)

	return envelopeOut, pfsShared, nil
}

// DecryptMessage inverts EncryptMessage: it splits the envelope, recovers
// the session key via KEM decapsulation and the PFS ratchet, decrypts the
// signed blob, and optionally verifies the detached signature.
//
// peerVerifierPK may be nil. When a signature is present but no verifier
// key was supplied, verification is silently skipped — the caller accepts
// whichever key signed the message. When the sender used unsigned mode,
// WarningNoSignature is set and the plaintext is returned without any
// attempt at verification, regardless of whether a verifier key was given.
func DecryptMessage(selfKEMPrivateKey *crypto.KEMPrivateKey, peerVerifierPK sign.PublicKey, pfsKey, salt []byte, envelopeIn []byte) (plaintext string, nextPFSKey []byte, warnings Warnings, err error) {
	if len(envelopeIn) <= constants.EnvelopeMinLength {
		return "", nil, constants.WarningNone, qerrors.ErrEnvelopeTooShort
	}
	if len(salt) != constants.EnvelopeSaltSize {
		return "", nil, constants.WarningNone, qerrors.ErrInvalidSaltLength
	}

	kemCiphertext := envelopeIn[:constants.KEMCiphertextSize]
	symmetricCiphertext := envelopeIn[constants.KEMCiphertextSize:]

	kemSharedSecret, err := crypto.KEMDecapsulate(selfKEMPrivateKey, kemCiphertext)
	if err != nil {
		return "", nil, constants.WarningNone, qerrors.NewEnvelopeError("decrypt.kem_decapsulate", qerrors.ErrKEMDecryptFailed)
	}

	if len(pfsKey) != constants.PFSKeySize {
		return "", nil, constants.WarningNone, qerrors.ErrInvalidPFSKeyLength
	}

	pfsShared, err := crypto.DerivePFS(pfsKey, salt)
	if err != nil {
		return "", nil, constants.WarningNone, qerrors.NewEnvelopeError("decrypt.derive_pfs", err)
	}

	sessionKey := deriveSessionKey(kemSharedSecret, pfsShared)

	signedBlob, err := crypto.Decrypt(symmetricCiphertext, sessionKey)
	if err != nil {
		return "", nil, constants.WarningNone, qerrors.NewEnvelopeError("decrypt.symmetric", qerrors.ErrSymmetricDecryptionFailed)
	}
	// pfsShared is returned as nextPFSKey; only the session key and the raw
	// KEM secret are scratch values that can be zeroized here.
	crypto.ZeroizeMultiple(sessionKey, kemSharedSecret)

	signatureHex, suffix, found := strings.Cut(string(signedBlob), ".")
	if !found {
		return "", nil, constants.WarningNone, qerrors.ErrSignatureNotFound
	}

	if signatureHex == "" {
		logWarnings(constants.WarningNoSignature)
		return suffix, pfsShared, constants.WarningNoSignature, nil
	}

	signatureBytes, err := hex.DecodeString(signatureHex)
	if err != nil {
		return "", nil, constants.WarningNone, qerrors.ErrSignatureParseFailed
	}

	if peerVerifierPK != nil {
		if !crypto.Verify(peerVerifierPK, []byte(suffix), signatureBytes) {
			return "", nil, constants.WarningNone, qerrors.ErrSignatureVerificationFailed
		}
	}

	return suffix, pfsShared, constants.WarningNone, nil
}

// logWarnings emits a single structured warn-level line when the decrypt
// path returns a non-zero warning bitfield. Never logs key material or
// plaintext, only the warning names.
func logWarnings(w constants.Warnings) {
	if w == constants.WarningNone {
		return
	}
	qlog.Warn("envelope decrypt completed with warnings", qlog.WarningFields(w))
}

// deriveSessionKey combines the KEM shared secret and the PFS-ratcheted
// secret into the per-message AES key: SHA-256(ss_kem ‖ ss_pfs). Plain
// concatenation, no domain separation tag — see DESIGN.md Open Question 2.
func deriveSessionKey(kemSharedSecret, pfsShared []byte) []byte {
	return crypto.HashBytes(append(append([]byte{}, kemSharedSecret...), pfsShared...))
}

// DeriveSecurityNumber computes an out-of-band fingerprint of a pair of
// public keys: hex(SHA-256(keyA ‖ keyB)). Callers must agree on which side
// is keyA (the initiator) so both parties derive the same value.
func DeriveSecurityNumber(keyA, keyB []byte) (string, error) {
	if len(keyA) == 0 {
		return "", qerrors.ErrEmptyKey
	}
	if len(keyB) == 0 {
		return "", qerrors.ErrEmptyKey
	}
	combined := append(append([]byte{}, keyA...), keyB...)
	return hex.EncodeToString(crypto.HashBytes(combined)), nil
}

// MDCGen generates a Message Detail Code: 8 lowercase-hex characters from 4
// cryptographically random bytes.
func MDCGen() (string, error) {
	b := make([]byte, constants.MDCByteLength)
	if err := crypto.SecureRandom(b); err != nil {
		return "", qerrors.NewCryptoError("envelope.MDCGen", err)
	}
	return hex.EncodeToString(b), nil
}

// SymKeyGen generates a fresh 32-byte symmetric key suitable for EncryptData.
func SymKeyGen() ([]byte, error) {
	key := make([]byte, constants.AESKeySize)
	if err := crypto.SecureRandom(key); err != nil {
		return nil, qerrors.NewCryptoError("envelope.SymKeyGen", err)
	}
	return key, nil
}

// EncryptData is a direct pass-through to the symmetric cipher, for
// out-of-band transport (e.g. file payloads keyed by an MDC-indexed key).
func EncryptData(plaintext, key []byte) ([]byte, error) {
	return crypto.Encrypt(plaintext, key)
}

// DecryptData is a direct pass-through to the symmetric cipher.
func DecryptData(ciphertext, key []byte) ([]byte, error) {
	return crypto.Decrypt(ciphertext, key)
}

// Bundle holds the identity material produced by Init: two KEM keypairs
// (one for messages, one reserved for salt exchange), two curve keypairs
// (the same split), and a fresh identifier seed.
type Bundle struct {
	KEMMain      *crypto.KEMKeyPair
	KEMForSalt   *crypto.KEMKeyPair
	CurveMain    *crypto.CurveDHKeyPair
	CurveForSalt *crypto.CurveDHKeyPair
	IdentitySeed string
}

// Init produces a fresh identity bundle: two KEM keypairs, two curve
// keypairs, and an identifier seed, in that order.
func Init(genSeed func() (string, error)) (*Bundle, error) {
	kemMain, err := crypto.GenerateKEMKeyPair()
	if err != nil {
		return nil, qerrors.NewCryptoError("envelope.Init.kem_main", err)
	}
	kemForSalt, err := crypto.GenerateKEMKeyPair()
	if err != nil {
		return nil, qerrors.NewCryptoError("envelope.Init.kem_for_salt", err)
	}
	curveMain, err := crypto.GenerateCurveDHKeyPair()
	if err != nil {
		return nil, qerrors.NewCryptoError("envelope.Init.curve_main", err)
	}
	curveForSalt, err := crypto.GenerateCurveDHKeyPair()
	if err != nil {
		return nil, qerrors.NewCryptoError("envelope.Init.curve_for_salt", err)
	}
	seed, err := genSeed()
	if err != nil {
		return nil, qerrors.NewCryptoError("envelope.Init.seed", err)
	}

	return &Bundle{
		KEMMain:      kemMain,
		KEMForSalt:   kemForSalt,
		CurveMain:    curveMain,
		CurveForSalt: curveForSalt,
		IdentitySeed: seed,
	}, nil
}

// PFSSequence is optional, additive instrumentation for callers that want
// to detect out-of-order envelope delivery. It is never required: a caller
// that never constructs one never sees WarningOutOfOrderPFS, so
// DecryptMessage's contract is unchanged for callers who don't opt in.
//
// Usage: construct one per channel direction and pass it to
// DecryptMessageTracked instead of calling DecryptMessage directly. The
// tracker remembers the PFS key it expects on the *next* call; if the
// caller supplies a different one (e.g. because a message was dropped or
// delivered out of order), the returned warnings gain WarningOutOfOrderPFS.
type PFSSequence struct {
	mu       sync.Mutex
	expected []byte
}

// NewPFSSequence returns a tracker with no expectation yet; its first
// observation never flags out-of-order delivery.
func NewPFSSequence() *PFSSequence {
	return &PFSSequence{}
}

// observe compares the PFS key the caller supplied against what the
// tracker expected, then remembers the ratcheted successor for next time.
func (s *PFSSequence) observe(suppliedPFSKey, nextPFSKey []byte) (outOfOrder bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outOfOrder = s.expected != nil && !bytes.Equal(suppliedPFSKey, s.expected)
	s.expected = nextPFSKey
	return outOfOrder
}

// DecryptMessageTracked wraps DecryptMessage with PFSSequence bookkeeping,
// setting WarningOutOfOrderPFS when pfsKey does not match the tracker's
// expectation from the previous call.
func DecryptMessageTracked(tracker *PFSSequence, selfKEMPrivateKey *crypto.KEMPrivateKey, peerVerifierPK sign.PublicKey, pfsKey, salt []byte, envelopeIn []byte) (plaintext string, nextPFSKey []byte, warnings Warnings, err error) {
	plaintext, nextPFSKey, warnings, err = DecryptMessage(selfKEMPrivateKey, peerVerifierPK, pfsKey, salt, envelopeIn)
	if err != nil {
		return "", nil, constants.WarningNone, err
	}

	if tracker != nil && tracker.observe(pfsKey, nextPFSKey) {
		warnings |= constants.WarningOutOfOrderPFS
		logWarnings(constants.WarningOutOfOrderPFS)
	}

	return plaintext, nextPFSKey, warnings, nil
}
