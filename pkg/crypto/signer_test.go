package crypto_test

import (
	"testing"

	"github.com/sara-star-quant/quantum-go/pkg/crypto"
)

func TestSignerKeyPairSizesAreRuntimeResolved(t *testing.T) {
	kp, err := crypto.GenerateSignerKeyPair()
	if err != nil {
		t.Fatalf("GenerateSignerKeyPair failed: %v", err)
	}

	if len(kp.PublicKeyBytes()) != crypto.SignerPublicKeySize() {
		t.Errorf("public key size = %d, want %d", len(kp.PublicKeyBytes()), crypto.SignerPublicKeySize())
	}
	if len(kp.PrivateKeyBytes()) != crypto.SignerPrivateKeySize() {
		t.Errorf("private key size = %d, want %d", len(kp.PrivateKeyBytes()), crypto.SignerPrivateKeySize())
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	kp, err := crypto.GenerateSignerKeyPair()
	if err != nil {
		t.Fatalf("GenerateSignerKeyPair failed: %v", err)
	}

	message := []byte("sign this message")
	sig := crypto.Sign(kp.PrivateKey, message)

	if len(sig) != crypto.SignerSignatureSize() {
		t.Errorf("signature size = %d, want %d", len(sig), crypto.SignerSignatureSize())
	}

	if !crypto.Verify(kp.PublicKey, message, sig) {
		t.Error("Verify should accept a signature produced by Sign over the same message")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	kp, err := crypto.GenerateSignerKeyPair()
	if err != nil {
		t.Fatalf("GenerateSignerKeyPair failed: %v", err)
	}

	sig := crypto.Sign(kp.PrivateKey, []byte("original message"))

	if crypto.Verify(kp.PublicKey, []byte("tampered message"), sig) {
		t.Error("Verify should reject a signature over a different message")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	kp1, err := crypto.GenerateSignerKeyPair()
	if err != nil {
		t.Fatalf("GenerateSignerKeyPair failed: %v", err)
	}
	kp2, err := crypto.GenerateSignerKeyPair()
	if err != nil {
		t.Fatalf("GenerateSignerKeyPair failed: %v", err)
	}

	message := []byte("message")
	sig := crypto.Sign(kp1.PrivateKey, message)

	if crypto.Verify(kp2.PublicKey, message, sig) {
		t.Error("Verify should reject a signature checked against the wrong public key")
	}
}

func TestParseSignerPublicKeyRoundTrip(t *testing.T) {
	kp, err := crypto.GenerateSignerKeyPair()
	if err != nil {
		t.Fatalf("GenerateSignerKeyPair failed: %v", err)
	}

	pk, err := crypto.ParseSignerPublicKey(kp.PublicKeyBytes())
	if err != nil {
		t.Fatalf("ParseSignerPublicKey failed: %v", err)
	}

	message := []byte("round trip message")
	sig := crypto.Sign(kp.PrivateKey, message)
	if !crypto.Verify(pk, message, sig) {
		t.Error("signature should verify against a parsed public key")
	}
}

func TestParseSignerPublicKeyRejectsWrongSize(t *testing.T) {
	if _, err := crypto.ParseSignerPublicKey(make([]byte, 3)); err == nil {
		t.Error("expected error for wrong-size public key")
	}
}
