package site

import (
	"crypto/subtle"
	"strings"
	"unicode/utf8"

	"github.com/rpupo63/portfolio-site/errs"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest admin password accepted on change.
const MinPasswordLength = 4

// HashPassword returns the bcrypt hash that is stored as the admin credential.
func HashPassword(password string) (string, error) {
	if len(password) > 72 {
		return "", errs.NewValidationError(errs.ErrPasswordTooLong, "newPassword")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("hash password", err)
	}
	return string(hash), nil
}

// IsHashed reports whether a stored credential is a bcrypt hash rather than a legacy plaintext value.
func IsHashed(stored string) bool {
	if len(stored) != 60 {
		return false
	}
	return strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$")
}

// VerifyPassword checks candidate against a stored credential. Comparison is exact and case-sensitive.
func VerifyPassword(stored, candidate string) bool {
	if IsHashed(stored) {
		// bcrypt ignores input past 72 bytes.
		if len(candidate) > 72 {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// ValidatePasswordChange checks confirmation first, then length.
func ValidatePasswordChange(newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return errs.NewValidationError(errs.ErrPasswordMismatch, "confirmPassword")
	}
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return errs.NewValidationError(errs.ErrPasswordTooShort, "newPassword")
	}
	return nil
}
