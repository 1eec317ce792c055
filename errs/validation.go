package errs

import (
	"errors"
	"net/http"
)

// Form validation failures. The sentinel text is what the admin sees inline.
var (
	ErrTitleRequired      = errors.New("Title is required")
	ErrPasswordMismatch   = errors.New("Passwords do not match")
	ErrPasswordTooShort   = errors.New("Password must be at least 4 characters")
	ErrPasswordTooLong    = errors.New("Password must be at most 72 bytes")
	ErrInvalidProjectType = errors.New("Unknown project type")
	ErrInvalidDifficulty  = errors.New("Unknown difficulty")
	ErrImageTooLarge      = errors.New("Image is too large")
	ErrNotAnImage         = errors.New("File is not an image")
	ErrInvalidOrder       = errors.New("Order must list every project exactly once")
	ErrInvalidMove        = errors.New("Move indices are out of range")
)

func NewValidationError(sentinel error, field string) *ApiErr {
	return Wrap(http.StatusBadRequest, sentinel, field)
}

// InlineMessage returns the message to render next to a form for err, or the empty string
// when err is not a user-facing validation or authentication failure.
func InlineMessage(err error) string {
	for _, sentinel := range []error{
		ErrTitleRequired, ErrPasswordMismatch, ErrPasswordTooShort, ErrPasswordTooLong, ErrInvalidProjectType,
		ErrInvalidDifficulty, ErrImageTooLarge, ErrNotAnImage, ErrInvalidOrder, ErrInvalidMove, ErrInvalidCredentials,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return ""
}
