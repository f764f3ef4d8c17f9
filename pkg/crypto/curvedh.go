// curvedh.go implements the classical Diffie-Hellman primitive used
// alongside the KEM: X25519 (RFC 7748) over Curve25519. It is exposed as an
// independent operation (dh(sk, pk)) rather than folded into the KEM
// envelope path, so callers can run it standalone for out-of-band key
// agreement.
package crypto

import (
	"crypto/ecdh"

	"github.com/sara-star-quant/quantum-go/internal/constants"
	qerrors "github.com/sara-star-quant/quantum-go/internal/errors"
)

// CurveDHKeyPair represents an X25519 key pair for classical ECDH.
type CurveDHKeyPair struct {
	PublicKey  *ecdh.PublicKey
	PrivateKey *ecdh.PrivateKey
}

// GenerateCurveDHKeyPair generates a new X25519 key pair.
func GenerateCurveDHKeyPair() (*CurveDHKeyPair, error) {
	curve := ecdh.X25519()

	privateKey, err := curve.GenerateKey(Reader)
	if err != nil {
		return nil, qerrors.NewCryptoError("CurveDHKeyPair.Generate", err)
	}

	return &CurveDHKeyPair{
		PublicKey:  privateKey.PublicKey(),
		PrivateKey: privateKey,
	}, nil
}

// NewCurveDHKeyPairFromBytes creates a key pair from a 32-byte private key.
// Deterministic: the same bytes always produce the same key pair.
func NewCurveDHKeyPairFromBytes(privateKeyBytes []byte) (*CurveDHKeyPair, error) {
	if len(privateKeyBytes) != constants.X25519PrivateKeySize {
		return nil, qerrors.ErrInvalidKeySize
	}

	curve := ecdh.X25519()
	privateKey, err := curve.NewPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, qerrors.NewCryptoError("CurveDHKeyPair.FromBytes", err)
	}

	return &CurveDHKeyPair{
		PublicKey:  privateKey.PublicKey(),
		PrivateKey: privateKey,
	}, nil
}

// Dh computes the X25519 shared secret between a raw 32-byte private key
// and a raw 32-byte peer public key. Both arguments are validated at this
// boundary: an empty, short, or otherwise malformed peer key is rejected
// here rather than propagating into the symmetric layer.
//
// The returned secret is the raw ECDH output and must still be run through
// a hash or KDF before use as a symmetric key — see DerivePFS.
func Dh(privateKeyBytes, peerPublicKeyBytes []byte) ([]byte, error) {
	if len(privateKeyBytes) == 0 {
		return nil, qerrors.ErrEmptyKey
	}
	if len(peerPublicKeyBytes) == 0 {
		return nil, qerrors.ErrEmptyKey
	}

	curve := ecdh.X25519()

	privateKey, err := curve.NewPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, qerrors.NewCryptoError("Dh", qerrors.ErrInvalidPrivateKey)
	}

	peerPublic, err := curve.NewPublicKey(peerPublicKeyBytes)
	if err != nil {
		return nil, qerrors.NewCryptoError("Dh", qerrors.ErrInvalidPublicKey)
	}

	sharedSecret, err := privateKey.ECDH(peerPublic)
	if err != nil {
		return nil, qerrors.NewCryptoError("Dh", err)
	}

	return sharedSecret, nil
}

// PublicKeyBytes returns the encoded bytes of the public key.
func (kp *CurveDHKeyPair) PublicKeyBytes() []byte {
	return kp.PublicKey.Bytes()
}

// PrivateKeyBytes returns the encoded bytes of the private key.
func (kp *CurveDHKeyPair) PrivateKeyBytes() []byte {
	return kp.PrivateKey.Bytes()
}

// ParseCurveDHPublicKey parses an X25519 public key from its encoded form.
func ParseCurveDHPublicKey(data []byte) (*ecdh.PublicKey, error) {
	if len(data) != constants.X25519PublicKeySize {
		return nil, qerrors.ErrInvalidPublicKey
	}

	curve := ecdh.X25519()
	publicKey, err := curve.NewPublicKey(data)
	if err != nil {
		return nil, qerrors.NewCryptoError("ParseCurveDHPublicKey", err)
	}

	return publicKey, nil
}

// Zeroize drops the key pair's references.
func (kp *CurveDHKeyPair) Zeroize() {
	kp.PrivateKey = nil
	kp.PublicKey = nil
}
