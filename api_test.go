package quantumgo_test

import (
	"bytes"
	"testing"

	quantumgo "github.com/sara-star-quant/quantum-go"
	"github.com/sara-star-quant/quantum-go/internal/constants"
)

func TestFullRoundTrip(t *testing.T) {
	aliceBundle, err := quantumgo.Init()
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	aliceSigner, err := quantumgo.SignKeygen()
	if err != nil {
		t.Fatalf("SignKeygen failed: %v", err)
	}

	pfs := make([]byte, constants.PFSKeySize)
	salt := make([]byte, constants.EnvelopeSaltSize)
	plaintext := "hello from alice"

	env, nextPFSEnc, err := quantumgo.EncryptMsg(aliceBundle.KEMMain.EncapsulationKey, aliceSigner.PrivateKey, pfs, salt, plaintext)
	if err != nil {
		t.Fatalf("EncryptMsg failed: %v", err)
	}

	got, nextPFSDec, warnings, err := quantumgo.DecryptMsg(aliceBundle.KEMMain.DecapsulationKey, aliceSigner.PublicKey, pfs, salt, env)
	if err != nil {
		t.Fatalf("DecryptMsg failed: %v", err)
	}
	if got != plaintext {
		t.Errorf("decrypted = %q, want %q", got, plaintext)
	}
	if warnings != constants.WarningNone {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if !bytes.Equal(nextPFSEnc, nextPFSDec) {
		t.Error("PFS ratchet output should match between encrypt and decrypt")
	}
}

func TestIdentityHelpers(t *testing.T) {
	id, err := quantumgo.IDGen()
	if err != nil {
		t.Fatalf("IDGen failed: %v", err)
	}

	tempID, err := quantumgo.GetTempID(id)
	if err != nil {
		t.Fatalf("GetTempID failed: %v", err)
	}
	if len(tempID) != constants.HexIDLength {
		t.Errorf("temp id length = %d, want %d", len(tempID), constants.HexIDLength)
	}

	salt, err := quantumgo.IDGen()
	if err != nil {
		t.Fatalf("IDGen failed: %v", err)
	}
	next, err := quantumgo.GetNextID(id, salt)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}
	if next == id {
		t.Error("ratcheted id should differ from the original")
	}
}

func TestMDCAndSymKeyGen(t *testing.T) {
	mdc, err := quantumgo.MDCGen()
	if err != nil {
		t.Fatalf("MDCGen failed: %v", err)
	}
	if len(mdc) != constants.MDCHexLength {
		t.Errorf("mdc length = %d, want %d", len(mdc), constants.MDCHexLength)
	}

	key, err := quantumgo.SymKeyGen()
	if err != nil {
		t.Fatalf("SymKeyGen failed: %v", err)
	}

	plaintext := []byte("payload keyed by mdc")
	ct, err := quantumgo.EncryptData(plaintext, key)
	if err != nil {
		t.Fatalf("EncryptData failed: %v", err)
	}
	pt, err := quantumgo.DecryptData(ct, key)
	if err != nil {
		t.Fatalf("DecryptData failed: %v", err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Errorf("decrypted = %q, want %q", pt, plaintext)
	}
}

func TestCurveKeygenAndSecretAgreement(t *testing.T) {
	alice, err := quantumgo.CurveKeygen()
	if err != nil {
		t.Fatalf("CurveKeygen failed: %v", err)
	}
	bob, err := quantumgo.CurveKeygen()
	if err != nil {
		t.Fatalf("CurveKeygen failed: %v", err)
	}

	secret1, err := quantumgo.GetCurveSecret(alice.PrivateKeyBytes(), bob.PublicKeyBytes())
	if err != nil {
		t.Fatalf("GetCurveSecret failed: %v", err)
	}
	secret2, err := quantumgo.GetCurveSecret(bob.PrivateKeyBytes(), alice.PublicKeyBytes())
	if err != nil {
		t.Fatalf("GetCurveSecret failed: %v", err)
	}
	if !bytes.Equal(secret1, secret2) {
		t.Error("both sides should derive the same shared secret")
	}
}

func TestDeriveSecurityNumberAgreement(t *testing.T) {
	alice, _ := quantumgo.CurveKeygen()
	bob, _ := quantumgo.CurveKeygen()

	numA, err := quantumgo.DeriveSecurityNumber(alice.PublicKeyBytes(), bob.PublicKeyBytes())
	if err != nil {
		t.Fatalf("DeriveSecurityNumber failed: %v", err)
	}
	numB, err := quantumgo.DeriveSecurityNumber(alice.PublicKeyBytes(), bob.PublicKeyBytes())
	if err != nil {
		t.Fatalf("DeriveSecurityNumber failed: %v", err)
	}
	if numA != numB {
		t.Error("both parties should derive the same security number given the same key order")
	}
	if len(numA) != constants.HexIDLength {
		t.Errorf("security number length = %d, want %d", len(numA), constants.HexIDLength)
	}
}

func TestKyberAndSignKeygenSizes(t *testing.T) {
	kemKP, err := quantumgo.KyberKeygen()
	if err != nil {
		t.Fatalf("KyberKeygen failed: %v", err)
	}
	if len(kemKP.PublicKeyBytes()) != constants.KEMPublicKeySize {
		t.Errorf("kem public key size = %d, want %d", len(kemKP.PublicKeyBytes()), constants.KEMPublicKeySize)
	}

	signerKP, err := quantumgo.SignKeygen()
	if err != nil {
		t.Fatalf("SignKeygen failed: %v", err)
	}
	if len(signerKP.PublicKeyBytes()) == 0 {
		t.Error("signer public key should not be empty")
	}
}
