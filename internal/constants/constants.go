// Package constants defines the sizes and wire-format contracts used across
// the quantum-go secure messaging envelope. It defines no domain separators.
package constants

// Protocol identification, kept for logging and version reporting.
const (
	// ProtocolVersion is the wire version of the envelope format.
	ProtocolVersion uint16 = 0x0001

	// ProtocolName is used for log fields and diagnostics.
	ProtocolName = "QG-ENVELOPE-v1"
)

// KEM Parameters (NIST FIPS 203 ML-KEM-1024 profile — the spec's reference
// "Kyber-1024 profile"; sizes below are bit-for-bit identical between the
// two naming conventions).
const (
	// KEMPublicKeySize is the size of the KEM encapsulation key in bytes.
	KEMPublicKeySize = 1568

	// KEMPrivateKeySize is the size of the KEM decapsulation key in bytes.
	KEMPrivateKeySize = 3168

	// KEMCiphertextSize is the size of the KEM ciphertext in bytes. This is
	// a protocol-level constant: it marks the boundary between the KEM
	// ciphertext and the symmetric layer inside an envelope.
	KEMCiphertextSize = 1568

	// KEMSharedSecretSize is the size of the KEM shared secret in bytes.
	KEMSharedSecretSize = 32
)

// X25519 Parameters (RFC 7748).
const (
	X25519PublicKeySize    = 32
	X25519PrivateKeySize   = 32
	X25519SharedSecretSize = 32
)

// Symmetric encryption parameters (AES-256-CBC, the envelope's symmetric
// layer). There is deliberately no AEAD tag size here: authenticity in this
// protocol comes from the outer detached signature, not the cipher mode.
const (
	// AESKeySize is the size of the AES-256 key in bytes.
	AESKeySize = 32

	// AESBlockSize is the AES block size in bytes (also the IV size for CBC).
	AESBlockSize = 16

	// AESIVSize is the size of the random IV prefixed to CBC ciphertext.
	AESIVSize = AESBlockSize
)

// Signer parameters. Sizes are not fixed constants here because the
// SPHINCS+ scheme exposes them at runtime via the circl sign.Scheme
// interface (PublicKeySize/PrivateKeySize/SignatureSize) — see
// pkg/crypto/signer.go. SignerName documents the reference profile.
const (
	// SignerName identifies the reference signature profile in use.
	SignerName = "SPHINCS+-SHAKE-192f-simple"
)

// Envelope layout offsets and sizes.
const (
	// EnvelopeMinLength is the minimum byte length of a well-formed
	// envelope: KEM ciphertext + IV, with zero bytes of CBC payload.
	// Any envelope of this length or shorter is rejected outright.
	EnvelopeMinLength = KEMCiphertextSize + AESIVSize

	// EnvelopeIVOffset is the offset where the symmetric IV begins.
	EnvelopeIVOffset = KEMCiphertextSize

	// EnvelopeCiphertextOffset is the offset where the CBC payload begins.
	EnvelopeCiphertextOffset = KEMCiphertextSize + AESIVSize
)

// PFS ratchet parameters.
const (
	// PFSKeySize is the fixed size of the forward-secrecy key, in and out
	// of the ratchet.
	PFSKeySize = 32

	// EnvelopeSaltSize is the salt length required by encrypt_msg/decrypt_msg.
	// This is distinct from NextIDSaltSize below — see Open Question in
	// DESIGN.md about the spec's two different salt lengths.
	EnvelopeSaltSize = 16
)

// Identity derivation parameters.
const (
	// HexIDLength is the length of identifier seeds, temporary IDs,
	// security numbers, and the ID-ratchet "next" salt: 64 lowercase-hex
	// characters (32 bytes).
	HexIDLength = 64

	// NextIDSaltSize is the byte length backing a 64-hex-character
	// ID-ratchet salt — distinct from EnvelopeSaltSize.
	NextIDSaltSize = HexIDLength / 2

	// SeedByteLength is the number of random bytes hex-encoded into a
	// fresh identifier seed.
	SeedByteLength = 32

	// MDCHexLength is the length of a Message Detail Code: 8 lowercase-hex
	// characters (4 random bytes).
	MDCHexLength = 8

	// MDCByteLength is the number of random bytes behind an MDC.
	MDCByteLength = 4

	// TimestampLength is the fixed length of a bucketed timestamp string:
	// 8 digits of YYYYMMDD plus one digit for the 4-hour bucket.
	TimestampLength = 9

	// TimestampDateLength is the length of the YYYYMMDD portion.
	TimestampDateLength = 8

	// HourBucketSpan is the number of wall-clock hours per identity bucket.
	HourBucketSpan = 4

	// MaxHourBucket is the highest valid bucket digit (24/HourBucketSpan - 1).
	MaxHourBucket = 23 / HourBucketSpan
)

// Warnings is a single-byte bitfield returned alongside a successful
// decrypt_msg call.
type Warnings uint8

const (
	// WarningNone indicates nothing noteworthy happened.
	WarningNone Warnings = 0

	// WarningNoSignature indicates the sender chose unsigned mode; the
	// caller received plaintext without any signature verification.
	WarningNoSignature Warnings = 1 << 0

	// WarningOutOfOrderPFS indicates a decrypted message's PFS key did not
	// match what a PFSSequence tracker expected from the previous call,
	// for callers that opt into sequence tracking.
	WarningOutOfOrderPFS Warnings = 1 << 1
)

// Has reports whether the given bit is set.
func (w Warnings) Has(bit Warnings) bool {
	return w&bit != 0
}

// String renders the set bits for logging.
func (w Warnings) String() string {
	if w == WarningNone {
		return "none"
	}
	s := ""
	if w.Has(WarningNoSignature) {
		s += "no_signature|"
	}
	if w.Has(WarningOutOfOrderPFS) {
		s += "out_of_order_pfs|"
	}
	if s == "" {
		return "unknown"
	}
	return s[:len(s)-1]
}
