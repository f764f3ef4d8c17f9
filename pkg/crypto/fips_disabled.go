//go:build !fips
// +build !fips

// Package crypto implements the cryptographic primitives behind the
// quantum-go secure messaging envelope.
//
// This file is compiled when the "fips" build tag is NOT specified.
// In standard mode, self-test failures are reported but non-fatal.
package crypto

// FIPSMode reports whether the binary was built in FIPS mode.
func FIPSMode() bool { return false }
