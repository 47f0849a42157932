package models

import "time"

// Credential is one registered local account. Only the password hash is ever
// stored; the raw password never touches durable storage or logs.
type Credential struct {
	PasswordHash string    `json:"passwordHash"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Credentials maps normalized email to the account registered under it.
// Emails are unique by construction.
type Credentials map[string]Credential
