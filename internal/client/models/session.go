package models

// Session is the in-memory plus persisted record identifying the currently
// authenticated user. Token is non-empty only for remote-authenticated
// sessions and is opaque to the client.
type Session struct {
	User  User
	Token string
}

// Remote reports whether the session was established against the remote
// backend (a bearer token is present).
func (s Session) Remote() bool {
	return s.Token != ""
}
