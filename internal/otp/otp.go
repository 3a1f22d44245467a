// Package otp implements the one-time code handshake shared by student and
// institute logins: fixed-length numeric codes, stored with an expiry,
// validated once and cleared by the caller.
package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// CodeLength is the number of digits in a generated code.
const CodeLength = 4

// Distinct verification failures, kept separate for diagnostics.
var (
	ErrNotRequested = errors.New("otp not requested")
	ErrExpired      = errors.New("otp expired")
	ErrMismatch     = errors.New("otp mismatch")
)

// codeMax is 10^CodeLength, the exclusive upper bound for generated codes.
var codeMax = new(big.Int).Exp(big.NewInt(10), big.NewInt(CodeLength), nil)

// Generate returns a random zero-padded numeric code.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeMax)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}

// Check validates a presented code against the stored one. Expiry is checked
// before the match so a stale but correct code reports ErrExpired, not
// ErrMismatch.
func Check(stored string, expiresAt *time.Time, presented string, now time.Time) error {
	if stored == "" || expiresAt == nil {
		return ErrNotRequested
	}
	if now.After(*expiresAt) {
		return ErrExpired
	}
	if !strings.EqualFold(strings.TrimSpace(stored), strings.TrimSpace(presented)) {
		return ErrMismatch
	}
	return nil
}
