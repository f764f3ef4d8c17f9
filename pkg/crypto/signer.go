// signer.go implements the envelope's detached-signature primitive:
// SPHINCS+-SHAKE-192f-simple, a stateless hash-based post-quantum signature
// scheme. Unlike the KEM, SPHINCS+ key and signature sizes are not fixed
// constants in this package — they are read from the circl sign.Scheme
// interface at runtime and cached once at init.
package crypto

import (
	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/schemes"

	"github.com/sara-star-quant/quantum-go/internal/constants"
	qerrors "github.com/sara-star-quant/quantum-go/internal/errors"
)

// signerScheme is resolved once at package init from the reference profile
// name in internal/constants.
var signerScheme = schemes.ByName(constants.SignerName)

// SignerPublicKeySize returns the encoded public key size for the configured scheme.
func SignerPublicKeySize() int { return signerScheme.PublicKeySize() }

// SignerPrivateKeySize returns the encoded private key size for the configured scheme.
func SignerPrivateKeySize() int { return signerScheme.PrivateKeySize() }

// SignerSignatureSize returns the detached signature size for the configured scheme.
func SignerSignatureSize() int { return signerScheme.SignatureSize() }

// SignerKeyPair holds a SPHINCS+ key pair.
type SignerKeyPair struct {
	PublicKey  sign.PublicKey
	PrivateKey sign.PrivateKey
}

// GenerateSignerKeyPair generates a new SPHINCS+ key pair.
func GenerateSignerKeyPair() (*SignerKeyPair, error) {
	pk, sk, err := signerScheme.GenerateKey()
	if err != nil {
		return nil, qerrors.NewCryptoError("SignerKeyPair.Generate", err)
	}
	return &SignerKeyPair{PublicKey: pk, PrivateKey: sk}, nil
}

// Sign produces a detached signature over message using sk.
func Sign(sk sign.PrivateKey, message []byte) []byte {
	return signerScheme.Sign(sk, message, nil)
}

// Verify checks a detached signature over message against pk.
func Verify(pk sign.PublicKey, message, signature []byte) bool {
	return signerScheme.Verify(pk, message, signature, nil)
}

// PublicKeyBytes returns the encoded bytes of the public key.
func (kp *SignerKeyPair) PublicKeyBytes() []byte {
	if kp == nil || kp.PublicKey == nil {
		return nil
	}
	b, err := kp.PublicKey.MarshalBinary()
	if err != nil {
		return nil
	}
	return b
}

// PrivateKeyBytes returns the encoded bytes of the private key.
func (kp *SignerKeyPair) PrivateKeyBytes() []byte {
	if kp == nil || kp.PrivateKey == nil {
		return nil
	}
	b, err := kp.PrivateKey.MarshalBinary()
	if err != nil {
		return nil
	}
	return b
}

// ParseSignerPublicKey parses a SPHINCS+ public key from its encoded form.
func ParseSignerPublicKey(data []byte) (sign.PublicKey, error) {
	if len(data) != signerScheme.PublicKeySize() {
		return nil, qerrors.ErrInvalidPublicKey
	}
	pk, err := signerScheme.UnmarshalBinaryPublicKey(data)
	if err != nil {
		return nil, qerrors.NewCryptoError("ParseSignerPublicKey", err)
	}
	return pk, nil
}

// ParseSignerPrivateKey parses a SPHINCS+ private key from its encoded form.
func ParseSignerPrivateKey(data []byte) (sign.PrivateKey, error) {
	if len(data) != signerScheme.PrivateKeySize() {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	sk, err := signerScheme.UnmarshalBinaryPrivateKey(data)
	if err != nil {
		return nil, qerrors.NewCryptoError("ParseSignerPrivateKey", err)
	}
	return sk, nil
}
