// Package credentials persists the local account registry used when the
// remote backend is unreachable.
package credentials

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dara283/clio-client/internal/client/models"
	"github.com/dara283/clio-client/internal/client/repositories/kv"
	"github.com/dara283/clio-client/internal/common"
)

// storageKey is kept name-stable for backward compatibility of persisted data.
const storageKey = "demo_users"

// Store maps normalized email to one Credential each, serialized as a single
// JSON document. The whole mapping is written in one key overwrite, so
// callers never observe partial state.
type Store struct {
	repo kv.Repository
}

func NewStore(repo kv.Repository) *Store {
	return &Store{repo: repo}
}

// Load returns the full credential mapping. A missing key yields an empty
// mapping, not an error.
func (s *Store) Load(ctx context.Context) (models.Credentials, error) {
	raw, err := s.repo.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: load credentials: %v", common.ErrInfra, err)
	}
	if raw == nil {
		return models.Credentials{}, nil
	}

	var creds models.Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("%w: decode credentials: %v", common.ErrInfra, err)
	}
	return creds, nil
}

// Save overwrites the persisted mapping.
func (s *Store) Save(ctx context.Context, creds models.Credentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("%w: encode credentials: %v", common.ErrInfra, err)
	}
	if err := s.repo.Set(ctx, storageKey, raw); err != nil {
		return fmt.Errorf("%w: save credentials: %v", common.ErrInfra, err)
	}
	return nil
}

// Exists reports whether an account is registered under the email.
// The email must already be normalized.
func (s *Store) Exists(ctx context.Context, email string) (bool, error) {
	creds, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	_, ok := creds[email]
	return ok, nil
}

// Get returns the credential registered under the email, if any.
func (s *Store) Get(ctx context.Context, email string) (models.Credential, bool, error) {
	creds, err := s.Load(ctx)
	if err != nil {
		return models.Credential{}, false, err
	}
	c, ok := creds[email]
	return c, ok, nil
}

// Put registers or replaces the credential stored under the email.
func (s *Store) Put(ctx context.Context, email string, cred models.Credential) error {
	creds, err := s.Load(ctx)
	if err != nil {
		return err
	}
	creds[email] = cred
	return s.Save(ctx, creds)
}
