package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// Durable store taxonomy. A corrupt value falls back to defaults; an unreadable store at startup is fatal.
var (
	ErrStorageCorrupt     = errors.New("stored value is corrupt")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUnknownStoreDriver = errors.New("unknown store driver")
)

// NewStorageCorruptError reports a stored value that failed to decode or validate.
func NewStorageCorruptError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageCorrupt,
		Details:    fmt.Sprintf("value under %q could not be decoded", key),
		Cause:      cause,
		Field:      key,
	}
}

// NewStorageUnavailableError reports a backend read or write that failed.
func NewStorageUnavailableError(operation, key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrStorageUnavailable,
		Details:    fmt.Sprintf("failed to %s %q", operation, key),
		Cause:      cause,
		Field:      key,
	}
}

func NewUnknownStoreDriverError(driver string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrUnknownStoreDriver,
		Details:    fmt.Sprintf("STORE_DRIVER %q is not supported", driver),
		Field:      "STORE_DRIVER",
	}
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		var apiErr *ApiErr
		if errors.As(cause, &apiErr) {
			return apiErr
		}
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s already exists", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    "Unable to connect to database",
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

func IsStorageCorrupt(err error) bool {
	return errors.Is(err, ErrStorageCorrupt)
}

func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
