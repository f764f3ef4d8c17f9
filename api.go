package quantumgo

import (
	"github.com/cloudflare/circl/sign"

	"github.com/sara-star-quant/quantum-go/pkg/crypto"
	"github.com/sara-star-quant/quantum-go/pkg/envelope"
	"github.com/sara-star-quant/quantum-go/pkg/identity"
)

// Warnings is a bitfield returned alongside a successful DecryptMsg call.
type Warnings = envelope.Warnings

// InitBundle holds the identity material produced by Init: two KEM
// keypairs, two curve keypairs, and a fresh identifier seed.
type InitBundle = envelope.Bundle

// KyberKeygen generates a fresh KEM keypair (reference profile: ML-KEM-1024,
// the spec's "Kyber-1024 profile").
func KyberKeygen() (*crypto.KEMKeyPair, error) {
	return crypto.GenerateKEMKeyPair()
}

// SignKeygen generates a fresh detached-signature keypair (reference
// profile: SPHINCS+-SHAKE-192f-simple).
func SignKeygen() (*crypto.SignerKeyPair, error) {
	return crypto.GenerateSignerKeyPair()
}

// CurveKeygen generates a fresh X25519 static keypair.
func CurveKeygen() (*crypto.CurveDHKeyPair, error) {
	return crypto.GenerateCurveDHKeyPair()
}

// GetCurveSecret performs an X25519 Diffie-Hellman exchange between a
// caller's raw private key bytes and a peer's raw public key bytes.
func GetCurveSecret(privateKeyBytes, peerPublicKeyBytes []byte) ([]byte, error) {
	return crypto.Dh(privateKeyBytes, peerPublicKeyBytes)
}

// Init produces a fresh identity bundle: two KEM keypairs (one for
// messages, one reserved for salt exchange), two curve keypairs (the same
// split), and a fresh identifier seed, in that order.
func Init() (*InitBundle, error) {
	return envelope.Init(identity.GenID)
}

// IDGen generates a fresh identifier seed: 64 lowercase-hex characters
// derived from 32 random bytes.
func IDGen() (string, error) {
	return identity.GenID()
}

// MDCGen generates a Message Detail Code: 8 lowercase-hex characters.
func MDCGen() (string, error) {
	return envelope.MDCGen()
}

// SymKeyGen generates a fresh 32-byte symmetric key.
func SymKeyGen() ([]byte, error) {
	return envelope.SymKeyGen()
}

// GetTempID derives the current time-bucketed temporary ID for an
// identifier seed.
func GetTempID(id string) (string, error) {
	return identity.GetTempID(id)
}

// GetCustomTempID derives a temporary ID for an identifier seed under a
// caller-supplied modifier instead of the current timestamp bucket.
func GetCustomTempID(id, modifier string) (string, error) {
	return identity.GetCustomTempID(id, modifier)
}

// GetNextID advances a temporary ID by ratcheting it forward with a
// 64-hex-character salt.
func GetNextID(current, salt string) (string, error) {
	return identity.GetNextID(current, salt)
}

// EncryptMsg composes a full envelope: KEM ciphertext, a PFS-ratcheted
// session key, an optional detached signature, and AES-256-CBC encryption
// of the signed blob. signerSK may be nil, selecting unsigned mode.
func EncryptMsg(peerKEMPublicKey *crypto.KEMPublicKey, signerSK sign.PrivateKey, pfsKey, salt []byte, plaintext string) (env []byte, nextPFSKey []byte, err error) {
	return envelope.EncryptMessage(peerKEMPublicKey, signerSK, pfsKey, salt, plaintext)
}

// DecryptMsg inverts EncryptMsg. peerVerifierPK may be nil, in which case
// signature verification is skipped even if the message was signed.
func DecryptMsg(selfKEMPrivateKey *crypto.KEMPrivateKey, peerVerifierPK sign.PublicKey, pfsKey, salt []byte, env []byte) (plaintext string, nextPFSKey []byte, warnings Warnings, err error) {
	return envelope.DecryptMessage(selfKEMPrivateKey, peerVerifierPK, pfsKey, salt, env)
}

// EncryptData is a direct pass-through to the symmetric cipher, for
// out-of-band transport keyed by an MDC-indexed key.
func EncryptData(plaintext, key []byte) ([]byte, error) {
	return envelope.EncryptData(plaintext, key)
}

// DecryptData is a direct pass-through to the symmetric cipher.
func DecryptData(ciphertext, key []byte) ([]byte, error) {
	return envelope.DecryptData(ciphertext, key)
}

// DeriveSecurityNumber computes an out-of-band fingerprint of a pair of
// public keys, for users to compare verbally. The caller must pass the
// initiator's key as keyA and the responder's as keyB so both parties
// derive the same value.
func DeriveSecurityNumber(keyA, keyB []byte) (string, error) {
	return envelope.DeriveSecurityNumber(keyA, keyB)
}
