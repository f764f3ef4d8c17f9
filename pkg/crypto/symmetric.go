// symmetric.go implements the envelope's symmetric cipher layer:
// AES-256-CBC with PKCS#7 padding and a random 16-byte IV prefixed to the
// ciphertext. There is deliberately no AEAD tag here — authenticity comes
// from the envelope's outer detached signature, not the cipher mode.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/sara-star-quant/quantum-go/internal/constants"
	qerrors "github.com/sara-star-quant/quantum-go/internal/errors"
)

// Encrypt encrypts plaintext under a 32-byte AES-256 key using CBC mode.
// A fresh random IV is generated, PKCS#7 padding is applied, and the
// returned slice is IV || ciphertext.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	if len(key) != constants.AESKeySize {
		return nil, qerrors.ErrInvalidKeySize
	}

	iv := make([]byte, constants.AESIVSize)
	if err := SecureRandom(iv); err != nil {
		return nil, qerrors.NewCryptoError("Encrypt", err)
	}

	padded := pkcs7Pad(plaintext, constants.AESBlockSize)

	ciphertext, err := encryptCBC(padded, key, iv)
	if err != nil {
		return nil, qerrors.NewCryptoError("Encrypt", err)
	}

	out := make([]byte, 0, len(iv)+len(ciphertext))
	out = append(out, iv...)
	out = append(out, ciphertext...)
	return out, nil
}

// encryptCBC runs a single AES-CBC encryption pass over already-padded data.
// Shared by Encrypt and the pooled encryption path in buffer_pool.go.
func encryptCBC(padded, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// Decrypt decrypts a blob produced by Encrypt: IV || ciphertext, both under
// the given 32-byte AES-256 key. A wrong key, corrupt padding, or a
// truncated blob all collapse to the single opaque
// ErrSymmetricDecryptionFailed so callers cannot distinguish the cause. A key
// that is not 32 bytes long is rejected first with ErrInvalidKeySize.
func Decrypt(blob, key []byte) ([]byte, error) {
	if len(key) != constants.AESKeySize {
		return nil, qerrors.ErrInvalidKeySize
	}
	if len(blob) < constants.AESIVSize+constants.AESBlockSize {
		return nil, qerrors.NewCryptoError("Decrypt", qerrors.ErrSymmetricDecryptionFailed)
	}

	iv := blob[:constants.AESIVSize]
	ciphertext := blob[constants.AESIVSize:]

	if len(ciphertext)%constants.AESBlockSize != 0 {
		return nil, qerrors.NewCryptoError("Decrypt", qerrors.ErrSymmetricDecryptionFailed)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, qerrors.NewCryptoError("Decrypt", err)
	}

	padded := make([]byte, len(ciphertext))
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, constants.AESBlockSize)
	if err != nil {
		return nil, qerrors.NewCryptoError("Decrypt", qerrors.ErrSymmetricDecryptionFailed)
	}

	return plaintext, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, qerrors.ErrInvalidCiphertext
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, qerrors.ErrInvalidCiphertext
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, qerrors.ErrInvalidCiphertext
		}
	}

	return data[:len(data)-padLen], nil
}
