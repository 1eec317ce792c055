package database

import (
	"context"
	"errors"
	"strings"
)

// PasswordKey holds the serialized admin credential string.
const PasswordKey = "portfolio-admin-password"

type CredentialRepo struct {
	store *Store
}

func NewCredentialRepo(store *Store) *CredentialRepo {
	return &CredentialRepo{store}
}

// Load returns the stored credential, or fallback when none is stored or it is blank.
func (r *CredentialRepo) Load(ctx context.Context, fallback string) string {
	credential, _ := r.LoadChecked(ctx, fallback)
	return credential
}

// LoadChecked is Load that also reports a corrupt value or an unreadable store.
func (r *CredentialRepo) LoadChecked(ctx context.Context, fallback string) (string, error) {
	return LoadChecked(ctx, r.store, PasswordKey, fallback, func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("credential is blank")
		}
		return nil
	})
}

func (r *CredentialRepo) Save(ctx context.Context, credential string) error {
	return Save(ctx, r.store, PasswordKey, credential)
}
