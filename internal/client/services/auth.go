// Package services contains the application services of the client.
// This file defines the authentication service: remote-first login/signup
// with local fallback, session lifecycle, and authorization-aware fetching.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dara283/clio-client/internal/client/credentials"
	"github.com/dara283/clio-client/internal/client/models"
	"github.com/dara283/clio-client/internal/client/remote"
	"github.com/dara283/clio-client/internal/client/session"
	"github.com/dara283/clio-client/internal/common"
	"github.com/dara283/clio-client/internal/cryptox"
	"github.com/dara283/clio-client/internal/logging"
)

// AuthService defines the authentication operations exposed to the UI layer.
//
// Contract:
//   - Login / Signup: authenticate remote-first; an unreachable backend is
//     recovered locally and never surfaced to the caller, an explicit remote
//     rejection is authoritative and terminal.
//   - Logout: clear the session; idempotent, always succeeds on empty state.
//   - AuthFetch: perform a request with the current bearer token attached;
//     a 401 response is returned as common.ErrUnauthorized.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Signup(ctx context.Context, email, password, name string) (models.User, error)
	Logout(ctx context.Context) error
	AuthFetch(ctx context.Context, method, path string, body io.Reader, header http.Header) (*http.Response, error)
}

// now is a test seam.
var now = time.Now

type authService struct {
	client   remote.Client
	creds    *credentials.Store
	sessions *session.Store
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given remote client
// and local stores.
func NewAuthService(client remote.Client, creds *credentials.Store, sessions *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, creds: creds, sessions: sessions, log: log}
}

// Login authenticates the user. The remote backend is tried first when
// configured; on success the returned token is retained with the session.
// When the backend is unreachable the local credential store takes over and
// the resulting session carries no token.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	if a.client.Enabled() {
		res, err := a.client.Login(ctx, email, password)
		if err == nil {
			if err := a.sessions.Set(ctx, res.User, res.Token); err != nil {
				return models.User{}, err
			}
			return res.User, nil
		}
		if !errors.Is(err, common.ErrUnavailable) {
			// explicit remote rejection is authoritative, no fallback
			return models.User{}, err
		}
		a.log.Warn(ctx, "login: backend unavailable, falling back to local store", "err", err)
	}

	cred, ok, err := a.creds.Get(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !ok || !cryptox.VerifyPassword(password, cred.PasswordHash) {
		return models.User{}, common.ErrInvalidCredentials
	}

	user := models.User{Email: email, Name: cred.Name}
	if err := a.sessions.Set(ctx, user, ""); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Signup registers a new account. Remote-first like Login; the local
// fallback refuses duplicate emails and stores only the password hash.
func (a *authService) Signup(ctx context.Context, email, password, name string) (models.User, error) {
	email = models.NormalizeEmail(email)
	name = models.NormalizeName(name)
	if email == "" || password == "" || name == "" {
		return models.User{}, fmt.Errorf("%w: email, password and name are required", common.ErrValidation)
	}

	if a.client.Enabled() {
		res, err := a.client.Signup(ctx, email, password, name)
		if err == nil {
			if err := a.sessions.Set(ctx, res.User, res.Token); err != nil {
				return models.User{}, err
			}
			return res.User, nil
		}
		if !errors.Is(err, common.ErrUnavailable) {
			return models.User{}, err
		}
		a.log.Warn(ctx, "signup: backend unavailable, using local fallback", "err", err)
	}

	exists, err := a.creds.Exists(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, common.ErrAccountExists
	}

	cred := models.Credential{
		PasswordHash: cryptox.HashPassword(password),
		Name:         name,
		CreatedAt:    now().UTC(),
	}
	if err := a.creds.Put(ctx, email, cred); err != nil {
		return models.User{}, err
	}

	user := models.User{Email: email, Name: name}
	if err := a.sessions.Set(ctx, user, ""); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout clears the session and any stored token.
func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

// AuthFetch performs a request with the current session's bearer token
// attached when one exists. Responses other than 401 are returned to the
// caller unmodified; business-level error bodies are not interpreted here.
func (a *authService) AuthFetch(ctx context.Context, method, path string, body io.Reader, header http.Header) (*http.Response, error) {
	var token string
	if cur := a.sessions.Current(); cur != nil {
		token = cur.Token
	}
	return a.client.Do(ctx, method, path, body, header, token)
}
