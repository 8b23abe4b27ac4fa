// Package confirm allocates appointment confirmation codes: short
// human-readable tokens a patient can use to confirm or cancel a visit
// without logging in.
package confirm

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet excludes visually confusable characters (0/O, 1/I).
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the length of a regularly allocated code.
const CodeLength = 6

// maxAttempts bounds the uniqueness-checked retries before falling back.
const maxAttempts = 10

// ExistsFunc reports whether a code is already held by an appointment.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// NewCode draws a CodeLength-character code uniformly from Alphabet.
func NewCode() (string, error) {
	var b strings.Builder
	b.Grow(CodeLength)
	max := big.NewInt(int64(len(Alphabet)))
	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("draw random character: %w", err)
		}
		b.WriteByte(Alphabet[n.Int64()])
	}
	return b.String(), nil
}

// Allocate returns a code not currently held by any appointment, retrying up
// to maxAttempts times on collision. If every attempt collides it falls back
// to an 8-character code (a fresh 6-character code plus the first two
// characters of another) WITHOUT a further uniqueness check. The fallback is
// a deliberate best-effort degradation, not a guaranteed-unique allocation;
// strengthening it would change observable behavior under contention.
func Allocate(ctx context.Context, exists ExistsFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		code, err := NewCode()
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code uniqueness: %w", err)
		}
		if !taken {
			return code, nil
		}
	}

	base, err := NewCode()
	if err != nil {
		return "", err
	}
	extra, err := NewCode()
	if err != nil {
		return "", err
	}
	return base + extra[:2], nil
}

// Normalize uppercases a code for lookup. Codes are compared
// case-insensitively on the public endpoints.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
