package crypto_test

import (
	"bytes"
	"testing"

	"github.com/sara-star-quant/quantum-go/internal/constants"
	"github.com/sara-star-quant/quantum-go/pkg/crypto"
)

func TestKEMKeyPairSizes(t *testing.T) {
	kp, err := crypto.GenerateKEMKeyPair()
	if err != nil {
		t.Fatalf("GenerateKEMKeyPair failed: %v", err)
	}

	if len(kp.PublicKeyBytes()) != constants.KEMPublicKeySize {
		t.Errorf("public key size = %d, want %d", len(kp.PublicKeyBytes()), constants.KEMPublicKeySize)
	}
}

func TestKEMEncapsulateDecapsulateRoundTrip(t *testing.T) {
	kp, err := crypto.GenerateKEMKeyPair()
	if err != nil {
		t.Fatalf("GenerateKEMKeyPair failed: %v", err)
	}

	ciphertext, sharedSecret, err := crypto.KEMEncapsulate(kp.EncapsulationKey)
	if err != nil {
		t.Fatalf("KEMEncapsulate failed: %v", err)
	}
	if len(ciphertext) != constants.KEMCiphertextSize {
		t.Errorf("ciphertext size = %d, want %d", len(ciphertext), constants.KEMCiphertextSize)
	}
	if len(sharedSecret) != constants.KEMSharedSecretSize {
		t.Errorf("shared secret size = %d, want %d", len(sharedSecret), constants.KEMSharedSecretSize)
	}

	recovered, err := crypto.KEMDecapsulate(kp.DecapsulationKey, ciphertext)
	if err != nil {
		t.Fatalf("KEMDecapsulate failed: %v", err)
	}
	if !bytes.Equal(sharedSecret, recovered) {
		t.Error("decapsulated shared secret does not match encapsulated one")
	}
}

func TestKEMDecapsulateRejectsWrongCiphertextSize(t *testing.T) {
	kp, err := crypto.GenerateKEMKeyPair()
	if err != nil {
		t.Fatalf("GenerateKEMKeyPair failed: %v", err)
	}

	if _, err := crypto.KEMDecapsulate(kp.DecapsulationKey, make([]byte, 10)); err == nil {
		t.Error("expected error for a malformed ciphertext")
	}
}

func TestKEMFromSeedDeterministic(t *testing.T) {
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = byte(i)
	}

	kp1, err := crypto.NewKEMKeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("NewKEMKeyPairFromSeed failed: %v", err)
	}
	kp2, err := crypto.NewKEMKeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("NewKEMKeyPairFromSeed failed: %v", err)
	}

	if !bytes.Equal(kp1.PublicKeyBytes(), kp2.PublicKeyBytes()) {
		t.Error("same seed should produce the same public key")
	}
}

func TestParseKEMPublicKey(t *testing.T) {
	kp, err := crypto.GenerateKEMKeyPair()
	if err != nil {
		t.Fatalf("GenerateKEMKeyPair failed: %v", err)
	}

	parsed, err := crypto.ParseKEMPublicKey(kp.PublicKeyBytes())
	if err != nil {
		t.Fatalf("ParseKEMPublicKey failed: %v", err)
	}
	if !bytes.Equal(parsed.Bytes(), kp.PublicKeyBytes()) {
		t.Error("parsed public key should round-trip to the same bytes")
	}
}

func TestParseKEMPublicKeyRejectsWrongSize(t *testing.T) {
	if _, err := crypto.ParseKEMPublicKey(make([]byte, 10)); err == nil {
		t.Error("expected error for wrong-size public key")
	}
}
