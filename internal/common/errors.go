// Package common contains shared sentinel errors used across the client.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (missing or empty required fields).
	ErrValidation = errors.New("validation error")

	// Auth errors surfaced to the user.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")

	// ErrUnauthorized means a previously valid token was rejected (401)
	// on an authenticated request. Callers are expected to clear the session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable is an internal signal: the remote endpoint could not be
	// reached (transport failure, timeout, malformed response). It tells the
	// auth service to fall back to the local store and must never be shown
	// to the user as a credential error.
	ErrUnavailable = errors.New("server unavailable")

	// ErrInfra wraps durable-storage failures (quota, corrupt serialized
	// data, driver errors).
	ErrInfra = errors.New("storage error")
)
