package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/cloudflare/circl/sign"

	quantumgo "github.com/sara-star-quant/quantum-go"
	"github.com/sara-star-quant/quantum-go/internal/constants"
)

func runDemo(message string, signed, verbose bool) {
	bundle, err := quantumgo.Init()
	if err != nil {
		fatal("init failed: %v", err)
	}

	var signerSK sign.PrivateKey
	var signerPK sign.PublicKey
	if signed {
		signerKP, err := quantumgo.SignKeygen()
		if err != nil {
			fatal("sign keygen failed: %v", err)
		}
		signerSK = signerKP.PrivateKey
		signerPK = signerKP.PublicKey
	}

	pfs := make([]byte, constants.PFSKeySize)
	salt := make([]byte, constants.EnvelopeSaltSize)
	if _, err := rand.Read(salt); err != nil {
		fatal("salt generation failed: %v", err)
	}

	env, nextPFSEnc, err := quantumgo.EncryptMsg(bundle.KEMMain.EncapsulationKey, signerSK, pfs, salt, message)
	if err != nil {
		fatal("encrypt failed: %v", err)
	}

	plaintext, nextPFSDec, warnings, err := quantumgo.DecryptMsg(bundle.KEMMain.DecapsulationKey, signerPK, pfs, salt, env)
	if err != nil {
		fatal("decrypt failed: %v", err)
	}

	fmt.Printf("plaintext:  %q\n", plaintext)
	fmt.Printf("warnings:   %s\n", warnings)

	if verbose {
		fmt.Printf("envelope size: %d bytes\n", len(env))
		fmt.Printf("identity seed: %s\n", bundle.IdentitySeed)
		match := "yes"
		if string(nextPFSEnc) != string(nextPFSDec) {
			match = "NO (bug)"
		}
		fmt.Printf("pfs ratchet matches: %s\n", match)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
