package site

import (
	"errors"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, IsHashed(hash))
	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "S3cret"))
}

func TestVerifyPlaintext(t *testing.T) {
	assert.False(t, IsHashed("admin123"))
	assert.True(t, VerifyPassword("admin123", "admin123"))
	assert.False(t, VerifyPassword("admin123", "admin123 "))
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73))
	assert.True(t, errors.Is(err, errs.ErrPasswordTooLong))
}

func TestVerifyRejectsBytesPastBcryptLimit(t *testing.T) {
	long := strings.Repeat("a", 72)
	hash, err := HashPassword(long)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, long))
	assert.False(t, VerifyPassword(hash, long+"EXTRA"))
}

func TestValidatePasswordChange(t *testing.T) {
	tests := []struct {
		name     string
		newPass  string
		confirm  string
		expected error
	}{
		{"mismatch", "abcd", "abce", errs.ErrPasswordMismatch},
		{"mismatch wins over length", "ab", "abc", errs.ErrPasswordMismatch},
		{"too short", "abc", "abc", errs.ErrPasswordTooShort},
		{"minimum length", "abcd", "abcd", nil},
		{"multibyte counts runes", "ñañá", "ñañá", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordChange(tt.newPass, tt.confirm)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}
