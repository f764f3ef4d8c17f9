// Package quantumgo is a hybrid post-quantum secure messaging primitive: it
// provides the cryptographic building blocks needed to exchange
// confidential, authenticated, forward-secret messages between two parties
// who have already completed an initial key agreement.
//
// Its value lies in how it composes four separate primitives — a
// lattice-based KEM (ML-KEM-1024), a hash-based signature
// (SPHINCS+-SHAKE-192f-simple), an elliptic-curve Diffie-Hellman exchange
// (X25519), and AES-256-CBC symmetric encryption — into a single message
// envelope that ratchets a shared secret forward on every exchange.
//
// # Quick Start
//
//	alice, _ := quantumgo.Init()
//	signer, _ := quantumgo.SignKeygen()
//
//	pfs := make([]byte, 32) // from the channel handshake, outside this package
//	salt := make([]byte, 16)
//
//	env, nextPFS, _ := quantumgo.EncryptMsg(alice.KEMMain.EncapsulationKey /* peer's key */, signer.PrivateKey, pfs, salt, "hello")
//	plaintext, nextPFS, warnings, _ := quantumgo.DecryptMsg(alice.KEMMain.DecapsulationKey, signer.PublicKey, pfs, salt, env)
//
// The caller is responsible for feeding each operation's returned PFS key
// into the next one, and for serialising concurrent envelope operations on
// the same channel.
//
// # Package Structure
//
//   - pkg/crypto: low-level primitives — KEM, signer, curve DH, hash, symmetric cipher, CSPRNG, self-tests
//   - pkg/identity: ephemeral identifier derivation — seeds, time-bucketed temp IDs, the ID ratchet
//   - pkg/envelope: the composed encrypt_msg/decrypt_msg protocol, the PFS ratchet, warning bitflags
//   - pkg/qlog: structured leveled logging
//   - internal/constants: wire-format sizes and protocol constants
//   - internal/errors: the flat error taxonomy
//
// This root package is a thin orchestration layer over those packages; it
// holds no cryptographic logic of its own.
//
// # Security Properties
//
//   - Post-quantum confidentiality: ML-KEM-1024 (NIST Category 5)
//   - Post-quantum authenticity: SPHINCS+-SHAKE-192f-simple detached signatures (optional, per message)
//   - Classical key agreement: X25519 ECDH, exposed independently for channel setup
//   - Forward secrecy: a PFS key ratcheted forward by SHA-256(key||salt) on every message
//   - No AEAD: AES-256-CBC relies on the outer signature for integrity; unsigned messages carry the NoSignature warning
//
// # Testing
//
//	go test ./...                       # all tests
//	go test -run POST ./pkg/crypto      # power-on self-test known-answer vectors
//	go test -bench=. ./test/benchmark   # benchmarks
//	go test -fuzz='^FuzzDecryptMessage$' ./test/fuzz
//
// # References
//
//   - NIST FIPS 203: Module-Lattice-Based Key-Encapsulation Mechanism Standard
//   - NIST FIPS 205: Stateless Hash-Based Digital Signature Standard
//   - RFC 7748: Elliptic Curves for Security
package quantumgo
