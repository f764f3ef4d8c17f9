// Package crypto implements the cryptographic primitives behind the
// quantum-go secure messaging envelope.
//
// This file (buffer_pool.go) provides buffer pooling to reduce memory
// allocations during encryption (EncryptPooled), which matters for high-throughput
// callers. The pool uses size classes sized around the envelope's
// AES-256-CBC blobs (IV prefix + padded ciphertext).
package crypto

import (
	"sync"

	"github.com/sara-star-quant/quantum-go/internal/constants"
	qerrors "github.com/sara-star-quant/quantum-go/internal/errors"
)

// BufferPool provides pooled byte slices for cryptographic operations.
type BufferPool struct {
	// IV buffers (16 bytes for AES-256-CBC).
	iv sync.Pool

	// Small ciphertext buffers (typical messages up to 1KB).
	small sync.Pool

	// Medium ciphertext buffers (up to 16KB).
	medium sync.Pool

	// Large ciphertext buffers (up to 64KB).
	large sync.Pool
}

// Buffer size class thresholds for crypto operations.
const (
	ivBufferSize           = constants.AESIVSize
	smallCryptoBufferSize  = 1024 + constants.AESIVSize + constants.AESBlockSize
	mediumCryptoBufferSize = 16*1024 + constants.AESIVSize + constants.AESBlockSize
	largeCryptoBufferSize  = 64*1024 + constants.AESIVSize + constants.AESBlockSize
)

// globalCryptoPool is the default crypto buffer pool instance.
var globalCryptoPool = NewBufferPool()

// NewBufferPool creates a new crypto buffer pool.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		iv: sync.Pool{
			New: func() any {
				buf := make([]byte, ivBufferSize)
				return &buf
			},
		},
		small: sync.Pool{
			New: func() any {
				buf := make([]byte, smallCryptoBufferSize)
				return &buf
			},
		},
		medium: sync.Pool{
			New: func() any {
				buf := make([]byte, mediumCryptoBufferSize)
				return &buf
			},
		},
		large: sync.Pool{
			New: func() any {
				buf := make([]byte, largeCryptoBufferSize)
				return &buf
			},
		},
	}
}

// GetIV returns an IV buffer from the pool.
func (p *BufferPool) GetIV() []byte {
	bufPtr := p.iv.Get().(*[]byte)
	buf := *bufPtr
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// PutIV returns an IV buffer to the pool.
func (p *BufferPool) PutIV(buf []byte) {
	if buf == nil || cap(buf) != ivBufferSize {
		return
	}
	for i := range buf[:cap(buf)] {
		buf[i] = 0
	}
	buf = buf[:cap(buf)]
	p.iv.Put(&buf)
}

// GetCiphertext returns a ciphertext buffer of at least the requested size.
// The size should include space for IV and padding overhead.
func (p *BufferPool) GetCiphertext(size int) []byte {
	if size <= 0 {
		return nil
	}

	var bufPtr *[]byte

	switch {
	case size <= smallCryptoBufferSize:
		bufPtr = p.small.Get().(*[]byte)
	case size <= mediumCryptoBufferSize:
		bufPtr = p.medium.Get().(*[]byte)
	case size <= largeCryptoBufferSize:
		bufPtr = p.large.Get().(*[]byte)
	default:
		return make([]byte, size)
	}

	return (*bufPtr)[:size]
}

// PutCiphertext returns a ciphertext buffer to the pool.
func (p *BufferPool) PutCiphertext(buf []byte) {
	if buf == nil {
		return
	}

	bufCap := cap(buf)
	if bufCap == 0 {
		return
	}

	buf = buf[:bufCap]

	for i := range buf {
		buf[i] = 0
	}

	bufPtr := &buf

	switch bufCap {
	case smallCryptoBufferSize:
		p.small.Put(bufPtr)
	case mediumCryptoBufferSize:
		p.medium.Put(bufPtr)
	case largeCryptoBufferSize:
		p.large.Put(bufPtr)
	}
}

// GetCryptoBuffer returns a buffer from the global crypto pool.
func GetCryptoBuffer(size int) []byte {
	return globalCryptoPool.GetCiphertext(size)
}

// PutCryptoBuffer returns a buffer to the global crypto pool.
func PutCryptoBuffer(buf []byte) {
	globalCryptoPool.PutCiphertext(buf)
}

// GetIVBuffer returns an IV buffer from the global pool.
func GetIVBuffer() []byte {
	return globalCryptoPool.GetIV()
}

// PutIVBuffer returns an IV buffer to the global pool.
func PutIVBuffer(buf []byte) {
	globalCryptoPool.PutIV(buf)
}

// EncryptPooled encrypts plaintext under key using a pooled buffer for the
// IV||ciphertext output. The caller must call PutCryptoBuffer on the
// returned slice when done with it.
func EncryptPooled(plaintext, key []byte) ([]byte, error) {
	if len(key) != constants.AESKeySize {
		return nil, qerrors.ErrInvalidKeySize
	}

	iv := GetIVBuffer()
	defer PutIVBuffer(iv)
	if err := SecureRandom(iv); err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, constants.AESBlockSize)
	out := GetCryptoBuffer(len(iv) + len(padded))

	copy(out[:len(iv)], iv)

	ciphertext, err := encryptCBC(padded, key, iv)
	if err != nil {
		PutCryptoBuffer(out)
		return nil, err
	}
	copy(out[len(iv):], ciphertext)

	return out, nil
}
