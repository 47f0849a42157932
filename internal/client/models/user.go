// Package models defines the client-side data model: users, credentials,
// sessions and saved items.
package models

import "strings"

// User identifies an authenticated person. Identity is the email.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NormalizeEmail canonicalizes an email for use as an identity key:
// surrounding whitespace removed, lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims surrounding whitespace from a display name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
