package utils_test

import (
	"testing"

	"cinema_reservation/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"trunk prefixed", "0501234567", "+971501234567"},
		{"country code bare", "971501234567", "+971501234567"},
		{"country code plus", "+971501234567", "+971501234567"},
		{"formatted", "+971 50 123 4567", "+971501234567"},
		{"dashes and parens", "(050) 123-4567", "+971501234567"},
		{"national length", "501234567", "+971501234567"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := utils.NormalizePhone(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Spellings of the same number must collapse to one canonical form, or
// the contact-uniqueness check could be bypassed.
func TestNormalizePhoneCollision(t *testing.T) {
	a, err := utils.NormalizePhone("0501234567")
	require.NoError(t, err)
	b, err := utils.NormalizePhone("971501234567")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	once, err := utils.NormalizePhone("050-123-4567")
	require.NoError(t, err)
	twice, err := utils.NormalizePhone(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizePhoneInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no digits", "call me"},
		{"too long", "9715012345678901234"},
		{"unrecognized shape", "12345"},
		{"wrong trunk length", "05012345"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := utils.NormalizePhone(tc.in)
			assert.ErrorIs(t, err, utils.ErrInvalidPhone)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", utils.NormalizeEmail("  Jane.Doe@Example.COM "))
	assert.Equal(t, "", utils.NormalizeEmail("   "))
	assert.Equal(t, utils.NormalizeEmail("A@B.C"), utils.NormalizeEmail(utils.NormalizeEmail("A@B.C")))
}
