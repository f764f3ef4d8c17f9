//go:build fips
// +build fips

// Package crypto implements the cryptographic primitives behind the
// quantum-go secure messaging envelope.
//
// This file is compiled when the "fips" build tag is specified.
// In FIPS mode, conditional and power-on self-tests panic on failure
// instead of merely reporting it.
package crypto

// FIPSMode reports whether the binary was built in FIPS mode.
func FIPSMode() bool { return true }
