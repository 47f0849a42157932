// Package remote talks to the backend auth API over HTTP JSON. A transport
// failure is classified separately from an explicit rejection so the caller
// can fall back to the local store only when the backend could not answer.
package remote

import (
	"context"
	"io"
	"net/http"

	"github.com/dara283/clio-client/internal/client/models"
)

// AuthResult is a successful remote authentication: the user identity and,
// when the backend issued one, an opaque bearer token.
type AuthResult struct {
	User  models.User
	Token string
}

// Client defines remote auth operations.
//
// Error contract (matched with errors.Is):
//   - common.ErrUnavailable — endpoint not configured, transport failure,
//     timeout, 5xx, or malformed response; the caller should fall back.
//   - common.ErrInvalidCredentials (Login) / common.ErrAccountExists
//     (Signup) — the backend explicitly rejected the request; authoritative,
//     no fallback.
type Client interface {
	// Enabled reports whether a remote endpoint is configured at all.
	Enabled() bool

	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, email, password, name string) (*AuthResult, error)

	// Do performs an authenticated request. Non-absolute paths are resolved
	// against the configured base; the bearer token is attached when
	// non-empty. A 401 response is returned as common.ErrUnauthorized, every
	// other response is handed back unmodified.
	Do(ctx context.Context, method, path string, body io.Reader, header http.Header, token string) (*http.Response, error)
}
