// Package session holds the current authenticated session, persists it
// durably and restores it at startup.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dara283/clio-client/internal/client/models"
	"github.com/dara283/clio-client/internal/client/repositories/kv"
	"github.com/dara283/clio-client/internal/common"
	"github.com/dara283/clio-client/internal/dbx"
	"github.com/dara283/clio-client/internal/logging"
)

// Storage keys are kept name-stable for backward compatibility of persisted
// user data.
const (
	sessionKey = "demo_session"
	tokenKey   = "auth_token"
)

// Store keeps the session in memory and mirrors every change to durable
// storage. The session and its token are written in a single transaction so
// a reader never observes one without the other.
type Store struct {
	db  *sql.DB
	log logging.Logger

	mu  sync.RWMutex
	cur *models.Session
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

// Current returns a copy of the active session, or nil when unauthenticated.
func (s *Store) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return nil
	}
	cp := *s.cur
	return &cp
}

// IsAuthed reports whether a session is active. It is derived from Current
// and always consistent with it.
func (s *Store) IsAuthed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur != nil
}

// Set replaces the session and persists it. An empty token means a locally
// authenticated session: any previously stored token is removed.
func (s *Store) Set(ctx context.Context, user models.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: encode session: %v", common.ErrInfra, err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, sessionKey, raw); err != nil {
			return err
		}
		if token != "" {
			return repo.Set(ctx, tokenKey, []byte(token))
		}
		return repo.Delete(ctx, tokenKey)
	})
	if err != nil {
		return fmt.Errorf("%w: persist session: %v", common.ErrInfra, err)
	}

	s.mu.Lock()
	s.cur = &models.Session{User: user, Token: token}
	s.mu.Unlock()
	return nil
}

// Clear removes the session and token from memory and storage. Clearing an
// already-empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, sessionKey); err != nil {
			return err
		}
		return repo.Delete(ctx, tokenKey)
	})
	if err != nil {
		return fmt.Errorf("%w: clear session: %v", common.ErrInfra, err)
	}

	s.mu.Lock()
	s.cur = nil
	s.mu.Unlock()
	return nil
}

// Restore loads the persisted session into memory. Invoked once at startup.
// A malformed persisted value is treated as no session: startup must not
// fail because of stale local data.
func (s *Store) Restore(ctx context.Context) error {
	repo := kv.NewSQLiteRepository(s.db)

	raw, err := repo.Get(ctx, sessionKey)
	if err != nil {
		return fmt.Errorf("%w: read session: %v", common.ErrInfra, err)
	}
	if raw == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil || user.Email == "" {
		s.log.Warn(ctx, "discarding malformed persisted session")
		return nil
	}

	token, err := repo.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("%w: read token: %v", common.ErrInfra, err)
	}

	s.mu.Lock()
	s.cur = &models.Session{User: user, Token: string(token)}
	s.mu.Unlock()
	return nil
}
