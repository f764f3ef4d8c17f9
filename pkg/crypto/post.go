// Package crypto implements Power-On Self-Tests (POST) for FIPS 140-3 compliance.
//
// IMPORTANT: POST is production code, not test code. FIPS 140-3 requires self-tests
// to run at module load time (not just during development testing) to verify the
// cryptographic implementation before any operations are performed. This catches
// issues like corrupted binaries, hardware failures, or tampered code.
//
// POST runs automatically when the crypto package is loaded and verifies that
// all cryptographic primitives produce expected outputs using Known Answer Tests (KAT).
//
// The tests verify:
//   - SHA-256 (hash / PFS ratchet primitive)
//   - AES-256-CBC (symmetric cipher layer)
//   - KEM (post-quantum key encapsulation)
//
// In FIPS mode, POST failures cause a panic to prevent use of potentially
// compromised cryptographic implementations. In standard mode, failures are
// recorded in the POSTResult but do not prevent operation.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
)

// POST KAT (Known Answer Test) values.
var (
	// SHA-256 KAT: NIST's canonical "abc" test vector.
	postKATHashInput    = []byte("abc")
	postKATHashExpected, _ = hex.DecodeString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")

	// AES-256-CBC KAT: NIST SP 800-38A Appendix F.2.5, first block.
	postKATAESKey, _        = hex.DecodeString("603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	postKATAESIV, _         = hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	postKATAESPlaintext, _  = hex.DecodeString("6bc1bee22e409f96e93d7e117393172a")
	postKATAESCiphertext, _ = hex.DecodeString("f58c4c04d6e5f1ba779eabfb5f7bfbd6")

	// KEM KAT seed: used for a deterministic encapsulate/decapsulate
	// round-trip consistency check (encapsulation is randomized, so there
	// is no fixed expected ciphertext to pin).
	postKATKEMSeed, _ = hex.DecodeString(
		"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef" +
			"fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210")
)

// POSTResult contains the results of Power-On Self-Tests.
type POSTResult struct {
	Passed      bool
	HashPassed  bool
	AESPassed   bool
	KEMPassed   bool
	Errors      []string
}

var (
	postResult     *POSTResult
	postResultOnce sync.Once
	postRan        bool
)

// RunPOST executes the Power-On Self-Tests and returns the results.
// This function is safe to call multiple times; tests only run once.
func RunPOST() *POSTResult {
	postResultOnce.Do(func() {
		postResult = &POSTResult{Passed: true}

		if err := runHashKAT(); err != nil {
			postResult.HashPassed = false
			postResult.Passed = false
			postResult.Errors = append(postResult.Errors, fmt.Sprintf("Hash KAT failed: %v", err))
		} else {
			postResult.HashPassed = true
		}

		if err := runAESCBCKAT(); err != nil {
			postResult.AESPassed = false
			postResult.Passed = false
			postResult.Errors = append(postResult.Errors, fmt.Sprintf("AES-CBC KAT failed: %v", err))
		} else {
			postResult.AESPassed = true
		}

		if err := runKEMKAT(); err != nil {
			postResult.KEMPassed = false
			postResult.Passed = false
			postResult.Errors = append(postResult.Errors, fmt.Sprintf("KEM KAT failed: %v", err))
		} else {
			postResult.KEMPassed = true
		}

		postRan = true

		if FIPSMode() && !postResult.Passed {
			panic(fmt.Sprintf("FIPS POST failed: %v", postResult.Errors))
		}
	})

	return postResult
}

// POSTRan returns true if POST has been executed.
func POSTRan() bool {
	return postRan
}

// POSTPassed returns true if POST has run and all tests passed.
func POSTPassed() bool {
	if postResult == nil {
		return false
	}
	return postResult.Passed
}

// runHashKAT verifies SHA-256 with NIST's "abc" known answer test.
func runHashKAT() error {
	sum := Hash(postKATHashInput)
	if !bytes.Equal(sum[:], postKATHashExpected) {
		return fmt.Errorf("hash output mismatch: got %x, want %x", sum, postKATHashExpected)
	}
	return nil
}

// runAESCBCKAT verifies AES-256-CBC against a single NIST SP 800-38A block.
func runAESCBCKAT() error {
	block, err := aes.NewCipher(postKATAESKey)
	if err != nil {
		return fmt.Errorf("NewCipher failed: %w", err)
	}

	ciphertext := make([]byte, len(postKATAESPlaintext))
	cipher.NewCBCEncrypter(block, postKATAESIV).CryptBlocks(ciphertext, postKATAESPlaintext)
	if !bytes.Equal(ciphertext, postKATAESCiphertext) {
		return fmt.Errorf("AES-CBC encrypt mismatch: got %x, want %x", ciphertext, postKATAESCiphertext)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, postKATAESIV).CryptBlocks(plaintext, ciphertext)
	if !bytes.Equal(plaintext, postKATAESPlaintext) {
		return fmt.Errorf("AES-CBC decrypt mismatch: got %x, want %x", plaintext, postKATAESPlaintext)
	}

	return nil
}

// runKEMKAT verifies KEM with a deterministic-seed consistency test: since
// encapsulation is randomized, there is no fixed ciphertext to pin, so this
// checks that key sizes match the profile and that decapsulation recovers
// the encapsulated shared secret.
func runKEMKAT() error {
	kp, err := NewKEMKeyPairFromSeed(postKATKEMSeed)
	if err != nil {
		return fmt.Errorf("NewKEMKeyPairFromSeed failed: %w", err)
	}

	pkBytes := kp.PublicKeyBytes()
	if len(pkBytes) != 1568 {
		return fmt.Errorf("public key size mismatch: got %d, want 1568", len(pkBytes))
	}

	ciphertext, sharedSecret1, err := KEMEncapsulate(kp.EncapsulationKey)
	if err != nil {
		return fmt.Errorf("KEMEncapsulate failed: %w", err)
	}

	if len(ciphertext) != 1568 {
		return fmt.Errorf("ciphertext size mismatch: got %d, want 1568", len(ciphertext))
	}
	if len(sharedSecret1) != 32 {
		return fmt.Errorf("shared secret size mismatch: got %d, want 32", len(sharedSecret1))
	}

	sharedSecret2, err := KEMDecapsulate(kp.DecapsulationKey, ciphertext)
	if err != nil {
		return fmt.Errorf("KEMDecapsulate failed: %w", err)
	}

	if !bytes.Equal(sharedSecret1, sharedSecret2) {
		return fmt.Errorf("shared secret mismatch after decapsulation")
	}

	return nil
}

// ModuleIntegrity contains information about the crypto module's integrity.
type ModuleIntegrity struct {
	ExpectedHash string
	ActualHash   string
	Verified     bool
}

var (
	postIntegrity     *ModuleIntegrity
	postIntegrityOnce sync.Once
)

// CheckModuleIntegrity hashes the KAT values themselves. ExpectedHash is set
// to the same freshly computed hash as ActualHash, so Verified is always true;
// the result is not compared against any stored reference value, and
// tampering with the self-test fixtures is not detected.
func CheckModuleIntegrity() *ModuleIntegrity {
	postIntegrityOnce.Do(func() {
		h := sha256.New()
		h.Write(postKATHashInput)
		h.Write(postKATHashExpected)
		h.Write(postKATAESKey)
		h.Write(postKATAESIV)
		h.Write(postKATAESPlaintext)
		h.Write(postKATAESCiphertext)
		h.Write(postKATKEMSeed)

		actualHash := hex.EncodeToString(h.Sum(nil))

		postIntegrity = &ModuleIntegrity{
			ExpectedHash: actualHash,
			ActualHash:   actualHash,
			Verified:     true,
		}
	})

	return postIntegrity
}

// init runs POST automatically when the package is loaded.
func init() {
	RunPOST()
}
