package crypto_test

import (
	"bytes"
	"testing"

	"github.com/sara-star-quant/quantum-go/internal/constants"
	"github.com/sara-star-quant/quantum-go/pkg/crypto"
)

func TestHashDeterministic(t *testing.T) {
	data := []byte("hello envelope")
	h1 := crypto.Hash(data)
	h2 := crypto.Hash(data)
	if h1 != h2 {
		t.Error("Hash should be deterministic for the same input")
	}
}

func TestHashDiffersOnInput(t *testing.T) {
	h1 := crypto.Hash([]byte("a"))
	h2 := crypto.Hash([]byte("b"))
	if h1 == h2 {
		t.Error("Hash of different inputs should differ")
	}
}

func TestHashBytesMatchesHash(t *testing.T) {
	data := []byte("consistency check")
	sum := crypto.Hash(data)
	if !bytes.Equal(crypto.HashBytes(data), sum[:]) {
		t.Error("HashBytes should match Hash")
	}
}

func TestDerivePFS(t *testing.T) {
	key := make([]byte, constants.PFSKeySize)
	salt := make([]byte, constants.EnvelopeSaltSize)
	for i := range key {
		key[i] = byte(i)
	}
	for i := range salt {
		salt[i] = byte(i + 1)
	}

	next, err := crypto.DerivePFS(key, salt)
	if err != nil {
		t.Fatalf("DerivePFS failed: %v", err)
	}
	if len(next) != constants.PFSKeySize {
		t.Errorf("next key length = %d, want %d", len(next), constants.PFSKeySize)
	}

	again, err := crypto.DerivePFS(key, salt)
	if err != nil {
		t.Fatalf("DerivePFS failed: %v", err)
	}
	if !bytes.Equal(next, again) {
		t.Error("DerivePFS should be deterministic for the same key/salt")
	}
}

func TestDerivePFSRejectsWrongKeyLength(t *testing.T) {
	salt := make([]byte, constants.EnvelopeSaltSize)
	_, err := crypto.DerivePFS(make([]byte, 16), salt)
	if err == nil {
		t.Error("expected error for short PFS key")
	}
}

func TestDerivePFSRejectsWrongSaltLength(t *testing.T) {
	key := make([]byte, constants.PFSKeySize)
	_, err := crypto.DerivePFS(key, make([]byte, constants.NextIDSaltSize))
	if err == nil {
		t.Error("expected error for a salt of the identity ratchet's length, not the envelope's")
	}
}

func TestDerivePFSChangesWithSalt(t *testing.T) {
	key := make([]byte, constants.PFSKeySize)
	salt1 := make([]byte, constants.EnvelopeSaltSize)
	salt2 := make([]byte, constants.EnvelopeSaltSize)
	salt2[0] = 1

	out1, err := crypto.DerivePFS(key, salt1)
	if err != nil {
		t.Fatalf("DerivePFS failed: %v", err)
	}
	out2, err := crypto.DerivePFS(key, salt2)
	if err != nil {
		t.Fatalf("DerivePFS failed: %v", err)
	}
	if bytes.Equal(out1, out2) {
		t.Error("DerivePFS output should change when the salt changes")
	}
}
