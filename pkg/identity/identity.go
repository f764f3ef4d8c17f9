// Package identity implements ephemeral identifier derivation: random
// identifier seeds, time-bucketed temporary IDs, and the ID ratchet used to
// advance a temporary ID without exposing the underlying seed.
//
// All identifiers are 64-character lowercase-hex strings. Validation is
// byte-level (no regexp): each function walks the string once checking that
// every byte is one of "0123456789abcdef".
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/sara-star-quant/quantum-go/internal/constants"
	qerrors "github.com/sara-star-quant/quantum-go/internal/errors"
	"github.com/sara-star-quant/quantum-go/pkg/crypto"
)

// GenID generates a fresh identifier seed: 32 random bytes, hex-encoded as a
// 64-character lowercase string.
func GenID() (string, error) {
	seed, err := crypto.SecureRandomBytes(constants.SeedByteLength)
	if err != nil {
		return "", qerrors.NewCryptoError("identity.GenID", err)
	}
	return hex.EncodeToString(seed), nil
}

// CurrentTimestamp returns the current UTC time bucket: "YYYYMMDD" followed
// by one digit naming the 4-hour bucket (hour/4, in [0,5]).
func CurrentTimestamp() string {
	return bucketTimestamp(time.Now().UTC())
}

func bucketTimestamp(t time.Time) string {
	bucket := t.Hour() / constants.HourBucketSpan
	return fmt.Sprintf("%04d%02d%02d%d", t.Year(), int(t.Month()), t.Day(), bucket)
}

// GetTempID derives a time-bucketed temporary ID from a seed:
// SHA-256(id || current_timestamp()), hex-encoded.
func GetTempID(id string) (string, error) {
	if !isValidHexID(id) {
		return "", qerrors.ErrInvalidHexLength
	}
	return GetCustomTempID(id, CurrentTimestamp())
}

// GetCustomTempID derives SHA-256(id || modifier), hex-encoded. The modifier
// is caller-supplied, in contrast to GetTempID which always uses the current
// timestamp bucket.
func GetCustomTempID(id, modifier string) (string, error) {
	if !isValidHexID(id) {
		return "", qerrors.ErrInvalidHexLength
	}
	if len(modifier) == 0 {
		return "", qerrors.ErrEmptyModifier
	}

	h := sha256.New()
	h.Write([]byte(id))
	h.Write([]byte(modifier))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// GetNextID advances a temporary ID by ratcheting it forward with a salt:
// SHA-256(current || salt), hex-encoded. Both current and salt must be
// 64-character lowercase-hex strings — this is the ID-ratchet salt, 32 bytes
// once decoded, distinct from the 16-byte salt used by the envelope's PFS
// ratchet.
func GetNextID(current, salt string) (string, error) {
	if !isValidHexID(current) {
		return "", qerrors.ErrInvalidHexLength
	}
	if !isValidHexID(salt) {
		return "", qerrors.ErrInvalidHexLength
	}

	h := sha256.New()
	h.Write([]byte(current))
	h.Write([]byte(salt))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// AllTimestampsSince walks forward in 4-hour steps from ts (inclusive) to
// the current bucket (inclusive), returning every bucket in between. Fails
// if ts is malformed or names a bucket strictly in the future.
func AllTimestampsSince(ts string) ([]string, error) {
	start, err := parseTimestamp(ts)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	current := bucketTime(now)
	if start.After(current) {
		return nil, qerrors.ErrTimestampInFuture
	}

	var out []string
	for t := start; !t.After(current); t = t.Add(constants.HourBucketSpan * time.Hour) {
		out = append(out, bucketTimestamp(t))
	}
	return out, nil
}

// bucketTime truncates t down to the start of its 4-hour bucket, dropping
// minutes/seconds/nanoseconds so bucket arithmetic is exact.
func bucketTime(t time.Time) time.Time {
	bucket := t.Hour() / constants.HourBucketSpan
	return time.Date(t.Year(), t.Month(), t.Day(), bucket*constants.HourBucketSpan, 0, 0, 0, time.UTC)
}

// parseTimestamp validates and decodes a 9-character timestamp string
// without using a regexp engine: every byte of the 8-digit date portion
// must be a decimal digit, and the trailing bucket digit must be in [0,5].
func parseTimestamp(ts string) (time.Time, error) {
	if len(ts) != constants.TimestampLength {
		return time.Time{}, qerrors.ErrTimestampParse
	}
	for i := 0; i < constants.TimestampDateLength; i++ {
		if !isDigit(ts[i]) {
			return time.Time{}, qerrors.ErrTimestampParse
		}
	}
	bucketDigit := ts[constants.TimestampDateLength]
	if !isDigit(bucketDigit) {
		return time.Time{}, qerrors.ErrTimestampParse
	}
	bucket := int(bucketDigit - '0')
	if bucket > constants.MaxHourBucket {
		return time.Time{}, qerrors.ErrTimestampParse
	}

	year := atoi(ts[0:4])
	month := atoi(ts[4:6])
	day := atoi(ts[6:8])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, qerrors.ErrTimestampParse
	}

	t := time.Date(year, time.Month(month), day, bucket*constants.HourBucketSpan, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, qerrors.ErrTimestampParse
	}
	return t, nil
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isValidHexID reports whether s is exactly HexIDLength bytes, all drawn
// from the lowercase hex alphabet. Uppercase hex is rejected, not folded.
func isValidHexID(s string) bool {
	if len(s) != constants.HexIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}
