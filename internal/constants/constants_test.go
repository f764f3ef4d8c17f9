package constants

import "testing"

func TestEnvelopeSizeConstants(t *testing.T) {
	if EnvelopeMinLength != KEMCiphertextSize+AESIVSize {
		t.Errorf("EnvelopeMinLength = %d, want %d", EnvelopeMinLength, KEMCiphertextSize+AESIVSize)
	}
	if EnvelopeIVOffset != KEMCiphertextSize {
		t.Errorf("EnvelopeIVOffset = %d, want %d", EnvelopeIVOffset, KEMCiphertextSize)
	}
	if EnvelopeCiphertextOffset != KEMCiphertextSize+AESIVSize {
		t.Errorf("EnvelopeCiphertextOffset = %d, want %d", EnvelopeCiphertextOffset, KEMCiphertextSize+AESIVSize)
	}
}

func TestKEMSizesMatchKyber1024Profile(t *testing.T) {
	// The spec names these sizes for the "Kyber-1024 profile"; they must
	// stay bit-for-bit identical to the ML-KEM-1024 sizes this package wraps.
	cases := map[string]int{
		"KEMPublicKeySize":    1568,
		"KEMPrivateKeySize":   3168,
		"KEMCiphertextSize":   1568,
		"KEMSharedSecretSize": 32,
	}
	got := map[string]int{
		"KEMPublicKeySize":    KEMPublicKeySize,
		"KEMPrivateKeySize":   KEMPrivateKeySize,
		"KEMCiphertextSize":   KEMCiphertextSize,
		"KEMSharedSecretSize": KEMSharedSecretSize,
	}
	for name, want := range cases {
		if got[name] != want {
			t.Errorf("%s = %d, want %d", name, got[name], want)
		}
	}
}

func TestPFSAndSaltSizesAreDistinct(t *testing.T) {
	if PFSKeySize != 32 {
		t.Errorf("PFSKeySize = %d, want 32", PFSKeySize)
	}
	if EnvelopeSaltSize != 16 {
		t.Errorf("EnvelopeSaltSize = %d, want 16", EnvelopeSaltSize)
	}
	if NextIDSaltSize != 32 {
		t.Errorf("NextIDSaltSize = %d, want 32", NextIDSaltSize)
	}
	if EnvelopeSaltSize == NextIDSaltSize {
		t.Error("EnvelopeSaltSize and NextIDSaltSize must remain distinct lengths")
	}
}

func TestHexIDLength(t *testing.T) {
	if HexIDLength != 64 {
		t.Errorf("HexIDLength = %d, want 64", HexIDLength)
	}
	if NextIDSaltSize*2 != HexIDLength {
		t.Errorf("NextIDSaltSize*2 = %d, want %d", NextIDSaltSize*2, HexIDLength)
	}
}

func TestMDCSizes(t *testing.T) {
	if MDCHexLength != 8 {
		t.Errorf("MDCHexLength = %d, want 8", MDCHexLength)
	}
	if MDCByteLength*2 != MDCHexLength {
		t.Errorf("MDCByteLength*2 = %d, want %d", MDCByteLength*2, MDCHexLength)
	}
}

func TestTimestampConstants(t *testing.T) {
	if TimestampLength != TimestampDateLength+1 {
		t.Errorf("TimestampLength = %d, want %d", TimestampLength, TimestampDateLength+1)
	}
	if MaxHourBucket != 5 {
		t.Errorf("MaxHourBucket = %d, want 5", MaxHourBucket)
	}
}

func TestWarningsBitflags(t *testing.T) {
	if WarningNone != 0 {
		t.Errorf("WarningNone = %d, want 0", WarningNone)
	}
	if WarningNoSignature != 1 {
		t.Errorf("WarningNoSignature = %d, want 1", WarningNoSignature)
	}
	if !WarningNoSignature.Has(WarningNoSignature) {
		t.Error("WarningNoSignature should report itself set")
	}
	if WarningNone.Has(WarningNoSignature) {
		t.Error("WarningNone should not report WarningNoSignature set")
	}

	combined := WarningNoSignature | WarningOutOfOrderPFS
	if !combined.Has(WarningNoSignature) || !combined.Has(WarningOutOfOrderPFS) {
		t.Error("combined warnings should report both bits set")
	}
}

func TestWarningsString(t *testing.T) {
	if WarningNone.String() != "none" {
		t.Errorf("WarningNone.String() = %q, want none", WarningNone.String())
	}
	if WarningNoSignature.String() != "no_signature" {
		t.Errorf("WarningNoSignature.String() = %q, want no_signature", WarningNoSignature.String())
	}
}
