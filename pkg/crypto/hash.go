// hash.go implements the envelope's hash and PFS ratchet primitives.
//
// Both operations are plain SHA-256: Hash is a general-purpose digest used
// for session keys and security numbers; DerivePFS is the forward
// secrecy ratchet step, defined as SHA-256(key || salt) with no domain
// separation. This is a deliberate divergence from the SHAKE-256
// domain-separated KDF elsewhere in this package's history — the ratchet's
// wire format is fixed by the envelope protocol, not chosen for comfort.
package crypto

import (
	"crypto/sha256"

	"github.com/sara-star-quant/quantum-go/internal/constants"
	qerrors "github.com/sara-star-quant/quantum-go/internal/errors"
)

// Hash returns the SHA-256 digest of data.
func Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// HashBytes returns the SHA-256 digest of data as a slice.
func HashBytes(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// DerivePFS advances the perfect-forward-secrecy ratchet: given the current
// 32-byte PFS key and a salt, it returns SHA-256(key || salt) as the next
// key. key must be exactly constants.PFSKeySize bytes and salt exactly
// constants.EnvelopeSaltSize bytes — the two lengths are intentionally
// distinct from the identity package's ratchet salt.
func DerivePFS(key, salt []byte) ([]byte, error) {
	if len(key) != constants.PFSKeySize {
		return nil, qerrors.ErrInvalidPFSKeyLength
	}
	if len(salt) != constants.EnvelopeSaltSize {
		return nil, qerrors.ErrInvalidSaltLength
	}

	buf := make([]byte, 0, len(key)+len(salt))
	buf = append(buf, key...)
	buf = append(buf, salt...)

	sum := sha256.Sum256(buf)
	return sum[:], nil
}
