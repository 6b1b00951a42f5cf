package utils

import (
	"errors"
	"strings"
)

// ErrInvalidPhone is returned when a phone number cannot be brought
// into canonical form. Unrecognized shapes fail instead of being
// guessed at, so a malformed number can never slip past the
// contact-uniqueness check in a non-canonical spelling.
var ErrInvalidPhone = errors.New("invalid phone number")

const (
	phoneCountryCode = "971"
	phoneTrunkPrefix = "0"
	phoneNationalLen = 9
	phoneMaxDigits   = 15
)

// NormalizePhone turns a raw phone string into the canonical
// "+<country><digits>" form used for equality and uniqueness checks.
// "0501234567", "971501234567" and "+971 50 123 4567" all collapse to
// "+971501234567". Idempotent: canonical input maps to itself.
func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	if d == "" || len(d) > phoneMaxDigits {
		return "", ErrInvalidPhone
	}

	switch {
	case strings.HasPrefix(d, phoneCountryCode):
		return "+" + d, nil
	case strings.HasPrefix(d, phoneTrunkPrefix) && len(d) == phoneNationalLen+1:
		return "+" + phoneCountryCode + d[1:], nil
	case len(d) == phoneNationalLen:
		return "+" + phoneCountryCode + d, nil
	default:
		return "", ErrInvalidPhone
	}
}

// NormalizeEmail lower-cases and trims an email address. Total: empty
// or whitespace-only input normalizes to the empty string.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
