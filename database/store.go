package database

import (
	"context"
	"encoding/json"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Backend is a durable key/value store holding serialized values.
type Backend interface {
	// Get returns ok=false when nothing is stored under key.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Store serializes values to JSON on top of a Backend and never lets a read failure escape.
type Store struct {
	backend Backend
	logger  zerolog.Logger
}

func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		logger:  log.With().Str("component", "store").Logger(),
	}
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// Load reads and decodes the value under key. Absence yields fallback silently; a backend error,
// a decode error, or a validate error yields fallback and is logged.
func Load[T any](ctx context.Context, s *Store, key string, fallback T, validate func(T) error) T {
	value, _ := LoadChecked(ctx, s, key, fallback, validate)
	return value
}

// LoadChecked is Load that also reports why it fell back. The error is nil when the value was
// found and valid or when nothing was stored.
func LoadChecked[T any](ctx context.Context, s *Store, key string, fallback T, validate func(T) error) (T, error) {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		apiErr := errs.NewStorageUnavailableError("read", key, err)
		s.logger.Error().Err(err).Str("key", key).Msg(apiErr.Error())
		return fallback, apiErr
	}
	if !ok {
		return fallback, nil
	}

	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		apiErr := errs.NewStorageCorruptError(key, err)
		s.logger.Error().Err(err).Str("key", key).Msg(apiErr.Error())
		return fallback, apiErr
	}
	if validate != nil {
		if err := validate(decoded); err != nil {
			apiErr := errs.NewStorageCorruptError(key, err)
			s.logger.Error().Err(err).Str("key", key).Msg(apiErr.Error())
			return fallback, apiErr
		}
	}
	return decoded, nil
}

// Save serializes value and writes it under key. On failure the previously stored value is left as
// it was and the error is logged and returned.
func Save(ctx context.Context, s *Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		apiErr := errs.NewInternalErrorWithCause("serialize "+key, err)
		s.logger.Error().Err(err).Str("key", key).Msg(apiErr.Error())
		return apiErr
	}
	if err := s.backend.Put(ctx, key, raw); err != nil {
		apiErr := errs.NewStorageUnavailableError("write", key, err)
		s.logger.Error().Err(err).Str("key", key).Msg(apiErr.Error())
		return apiErr
	}
	return nil
}
