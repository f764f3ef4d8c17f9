// kem.go implements the key encapsulation mechanism used by the envelope:
// ML-KEM-1024 (NIST FIPS 203), matching the reference "Kyber-1024 profile"
// sizes bit-for-bit.
package crypto

import (
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"

	"github.com/sara-star-quant/quantum-go/internal/constants"
	qerrors "github.com/sara-star-quant/quantum-go/internal/errors"
)

// KEMPublicKey wraps an ML-KEM-1024 public key.
type KEMPublicKey struct {
	key *mlkem1024.PublicKey
}

// KEMPrivateKey wraps an ML-KEM-1024 private key.
type KEMPrivateKey struct {
	key *mlkem1024.PrivateKey
}

// KEMKeyPair represents a KEM key pair for post-quantum key encapsulation.
type KEMKeyPair struct {
	// EncapsulationKey is the public key used by others to encapsulate secrets.
	EncapsulationKey *KEMPublicKey

	// DecapsulationKey is the private key used to decapsulate secrets.
	DecapsulationKey *KEMPrivateKey
}

// GenerateKEMKeyPair generates a new KEM key pair.
func GenerateKEMKeyPair() (*KEMKeyPair, error) {
	pk, sk, err := mlkem1024.GenerateKeyPair(Reader)
	if err != nil {
		return nil, qerrors.NewCryptoError("KEMKeyPair.Generate", err)
	}

	return &KEMKeyPair{
		EncapsulationKey: &KEMPublicKey{key: pk},
		DecapsulationKey: &KEMPrivateKey{key: sk},
	}, nil
}

// NewKEMKeyPairFromSeed generates a KEM key pair from a 64-byte seed.
// This is deterministic: the same seed always produces the same key pair.
func NewKEMKeyPairFromSeed(seed []byte) (*KEMKeyPair, error) {
	if len(seed) != 64 {
		return nil, qerrors.ErrInvalidKeySize
	}

	pk, sk, err := mlkem1024.GenerateKeyPair(&deterministicReader{data: seed})
	if err != nil {
		return nil, qerrors.NewCryptoError("KEMKeyPair.FromSeed", err)
	}

	return &KEMKeyPair{
		EncapsulationKey: &KEMPublicKey{key: pk},
		DecapsulationKey: &KEMPrivateKey{key: sk},
	}, nil
}

// deterministicReader provides deterministic "randomness" from a seed.
type deterministicReader struct {
	data   []byte
	offset int
}

func (r *deterministicReader) Read(p []byte) (n int, err error) {
	n = copy(p, r.data[r.offset:])
	r.offset += n
	return n, nil
}

// KEMEncapsulate performs key encapsulation, producing a ciphertext the
// holder of ek's matching private key can later decapsulate to the same
// shared secret.
func KEMEncapsulate(ek *KEMPublicKey) (ciphertext, sharedSecret []byte, err error) {
	if ek == nil || ek.key == nil {
		return nil, nil, qerrors.ErrInvalidPublicKey
	}

	ct := make([]byte, mlkem1024.CiphertextSize)
	ss := make([]byte, mlkem1024.SharedKeySize)

	seed := make([]byte, mlkem1024.EncapsulationSeedSize)
	if err := SecureRandom(seed); err != nil {
		return nil, nil, qerrors.NewCryptoError("KEMEncapsulate", qerrors.ErrKEMSharedSecretFailed)
	}

	ek.key.EncapsulateTo(ct, ss, seed)

	return ct, ss, nil
}

// KEMDecapsulate performs key decapsulation. ML-KEM's implicit rejection
// means a corrupted ciphertext decapsulates to a pseudorandom value rather
// than an error; callers that need to detect corruption must rely on the
// signature/symmetric layer above this call succeeding or failing.
func KEMDecapsulate(dk *KEMPrivateKey, ciphertext []byte) ([]byte, error) {
	if dk == nil || dk.key == nil {
		return nil, qerrors.ErrInvalidPrivateKey
	}

	if len(ciphertext) != constants.KEMCiphertextSize {
		return nil, qerrors.NewCryptoError("KEMDecapsulate", qerrors.ErrKEMDecryptFailed)
	}

	ss := make([]byte, mlkem1024.SharedKeySize)
	dk.key.DecapsulateTo(ss, ciphertext)

	return ss, nil
}

// Bytes returns the encoded bytes of the public key.
func (pk *KEMPublicKey) Bytes() []byte {
	if pk == nil || pk.key == nil {
		return nil
	}
	buf := make([]byte, mlkem1024.PublicKeySize)
	pk.key.Pack(buf)
	return buf
}

// PublicKeyBytes returns the encoded bytes of the encapsulation key.
func (kp *KEMKeyPair) PublicKeyBytes() []byte {
	return kp.EncapsulationKey.Bytes()
}

// ParseKEMPublicKey parses a KEM public key from its encoded form.
func ParseKEMPublicKey(data []byte) (*KEMPublicKey, error) {
	if len(data) != constants.KEMPublicKeySize {
		return nil, qerrors.ErrInvalidPublicKey
	}

	pk := new(mlkem1024.PublicKey)
	if err := pk.Unpack(data); err != nil {
		return nil, qerrors.NewCryptoError("ParseKEMPublicKey", err)
	}

	return &KEMPublicKey{key: pk}, nil
}

// Zeroize clears the key pair's references. CIRCL does not expose direct
// memory wiping for ML-KEM keys; this drops our only references so the
// backing arrays become eligible for garbage collection.
func (kp *KEMKeyPair) Zeroize() {
	if kp.DecapsulationKey != nil {
		kp.DecapsulationKey = nil
	}
	kp.EncapsulationKey = nil
}
